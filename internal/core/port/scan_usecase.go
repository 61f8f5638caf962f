package port

import (
	"context"

	"ooh-analytics/internal/core/domain"
)

// ScanUseCase defines the operations exposed by the scan analytics
// engine. This is the primary inbound port: the HTTP layer and any other
// presentation code may depend only on this surface.
type ScanUseCase interface {
	// Events returns the current event log, lazily generating and
	// persisting a synthetic 30-day history on first use. It never fails
	// the caller: storage problems degrade to freshly seeded data.
	Events(ctx context.Context) ([]domain.ScanEvent, error)

	// LogScan appends one event with the given provenance and conversion
	// flag, deriving the device type from the user agent. It returns the
	// created event.
	LogScan(ctx context.Context, billboardID string, source domain.Source, userAgent string, conversion bool) (domain.ScanEvent, error)

	// RecordConversion flips the conversion flag on the most recent
	// non-bot, not-yet-converted event for the billboard. When no such
	// event exists it is a silent no-op.
	RecordConversion(ctx context.Context, billboardID string) error

	// StatsFor computes derived metrics for one billboard. Unknown ids
	// yield all-zero stats, never an error.
	StatsFor(ctx context.Context, billboardID string) (domain.BillboardStats, error)

	// Overview computes fleet-wide dashboard aggregates across the whole
	// catalog.
	Overview(ctx context.Context) (OverviewStats, error)

	// HourlyBuckets returns exactly 24 zero-filled hour buckets counting
	// non-bot events within daysBack days, optionally scoped to one
	// billboard (empty id means all).
	HourlyBuckets(ctx context.Context, billboardID string, daysBack int) ([]HourlyPoint, error)

	// DailyBuckets returns exactly 30 zero-filled calendar-day buckets,
	// oldest first, counting non-bot scans and conversions.
	DailyBuckets(ctx context.Context, billboardID string) ([]DailyPoint, error)

	// RecentRealScans returns the newest non-seeded, non-bot events for
	// the billboard, newest first, truncated to limit.
	RecentRealScans(ctx context.Context, billboardID string, limit int) ([]domain.ScanEvent, error)

	// DeviceBreakdown groups non-bot, non-seeded events by device label,
	// optionally scoped to one billboard. Events without a label are
	// grouped under "Unknown".
	DeviceBreakdown(ctx context.Context, billboardID string) ([]DeviceCount, error)
}

// HourlyPoint is one hour-of-day bucket in a 24-entry series.
type HourlyPoint struct {
	Hour  string `json:"hour"`
	Scans int    `json:"scans"`
}

// DailyPoint is one calendar-day bucket in a 30-entry series. The date
// is a short display label such as "Aug 28".
type DailyPoint struct {
	Date        string `json:"date"`
	Scans       int    `json:"scans"`
	Conversions int    `json:"conversions"`
}

// DeviceCount is one slice of the device breakdown.
type DeviceCount struct {
	Device string `json:"device"`
	Count  int    `json:"count"`
}

// OverviewStats aggregates dashboard KPIs across all billboards. Totals
// count valid (non-bot, non-duplicate) events; DataQuality is the
// percentage of raw events that are valid.
type OverviewStats struct {
	TotalScans      int     `json:"totalScans"`
	Conversions     int     `json:"conversions"`
	ScansToday      int     `json:"scansToday"`
	ConversionRate  float64 `json:"conversionRate"`
	BotEvents       int     `json:"botEvents"`
	DuplicateEvents int     `json:"duplicateEvents"`
	TotalEvents     int     `json:"totalEvents"`
	DataQuality     float64 `json:"dataQuality"`
	TopBillboardID  string  `json:"topBillboardId"`
}
