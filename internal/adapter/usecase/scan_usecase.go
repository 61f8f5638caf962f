package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"ooh-analytics/internal/core/domain"
	"ooh-analytics/internal/core/port"
	"ooh-analytics/internal/core/seed"
)

// weather and traffic vocabularies assigned to real (non-seeded) events
// at ingest time. Narrower than the seeded vocabulary: a live scan never
// reports gridlock, that label is reserved for the rush-hour model.
var (
	liveWeathers = []string{"Sunny", "Partly Cloudy", "Cloudy", "Hot & Humid"}
	liveTraffic  = []domain.TrafficLevel{domain.TrafficLow, domain.TrafficModerate, domain.TrafficHigh}
)

const (
	historyDays        = 30
	defaultRecentLimit = 10
)

// ScanService implements port.ScanUseCase. It owns ingestion into the
// event log and all aggregation queries over it. The log itself is an
// injected port.EventLog, so tests run against the memory adapter and
// production against PostgreSQL.
//
// Mutations are serialized by a mutex: every write is a read-modify-write
// of the whole log, and without serialization two concurrent writers
// would silently clobber each other.
type ScanService struct {
	log        port.EventLog
	gen        *seed.Generator
	billboards []domain.Billboard
	logger     *slog.Logger

	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

// NewScanService constructs the service. The billboard slice is the
// read-only reference catalog; it is consulted for budgets and never
// modified.
func NewScanService(log port.EventLog, gen *seed.Generator, billboards []domain.Billboard, logger *slog.Logger) *ScanService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ScanService{
		log:        log,
		gen:        gen,
		billboards: billboards,
		logger:     logger,
		rand:       rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
}

// Events returns the current log, seeding it on first use. Storage-read
// failures are treated the same as an absent log: logged, then replaced
// by fresh synthetic history. A failed persist of that history degrades
// to in-memory data for this call only, never to an error.
func (s *ScanService) Events(ctx context.Context) ([]domain.ScanEvent, error) {
	return s.loadEvents(ctx), nil
}

func (s *ScanService) loadEvents(ctx context.Context) []domain.ScanEvent {
	events, err := s.log.Load(ctx)
	if err != nil {
		s.logger.Warn("event log unreadable, reseeding", slog.Any("error", err))
		events = nil
	}
	if events != nil {
		return events
	}
	events = s.gen.Generate(s.billboards)
	if err = s.log.Save(ctx, events); err != nil {
		s.logger.Warn("failed to persist seeded history", slog.Any("error", err))
	} else {
		s.logger.Info("seeded event history", slog.Int("events", len(events)))
	}
	return events
}

// LogScan appends a single qr or simulation event and persists the full
// log. Bot and duplicate flags are always false here; only the seed
// generator produces flagged events.
func (s *ScanService) LogScan(ctx context.Context, billboardID string, source domain.Source, userAgent string, conversion bool) (domain.ScanEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.loadEvents(ctx)
	event := domain.ScanEvent{
		ID:           uuid.NewString(),
		BillboardID:  billboardID,
		Timestamp:    s.now(),
		IsConversion: conversion,
		Source:       source,
		UserAgent:    userAgent,
		DeviceType:   domain.DetectDevice(userAgent),
		Weather:      liveWeathers[s.rand.Intn(len(liveWeathers))],
		TrafficLevel: liveTraffic[s.rand.Intn(len(liveTraffic))],
	}
	events = append(events, event)
	if err := s.log.Save(ctx, events); err != nil {
		// the event still counts for this session; see the error model
		s.logger.Warn("failed to persist scan event", slog.Any("error", err), slog.String("billboard", billboardID))
	}
	return event, nil
}

// RecordConversion walks the log newest-first and flips the first
// non-bot, not-yet-converted event for the billboard. Duplicates are
// eligible: attribution only requires that the scan was not a bot. When
// nothing matches this is a no-op, because the viewer has already been
// shown a confirmation regardless of whether their scan is on record.
func (s *ScanService) RecordConversion(ctx context.Context, billboardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	events := s.loadEvents(ctx)
	for i := len(events) - 1; i >= 0; i-- {
		e := &events[i]
		if e.BillboardID != billboardID || e.IsConversion || e.IsBot {
			continue
		}
		e.IsConversion = true
		if err := s.log.Save(ctx, events); err != nil {
			s.logger.Warn("failed to persist conversion", slog.Any("error", err), slog.String("billboard", billboardID))
		}
		return nil
	}
	return nil
}

// StatsFor computes derived metrics for one billboard from the full
// snapshot. A billboard with no valid scans reports zero rates and zero
// cost, never a division error.
func (s *ScanService) StatsFor(ctx context.Context, billboardID string) (domain.BillboardStats, error) {
	events := s.loadEvents(ctx)
	return s.statsFor(billboardID, events), nil
}

func (s *ScanService) statsFor(billboardID string, events []domain.ScanEvent) domain.BillboardStats {
	stats := domain.BillboardStats{BillboardID: billboardID}
	now := s.now()
	for _, e := range events {
		if e.BillboardID != billboardID {
			continue
		}
		stats.TotalScans++
		if !e.Valid() {
			continue
		}
		stats.ValidScans++
		if e.IsConversion {
			stats.Conversions++
		}
		if sameDay(e.Timestamp, now) {
			stats.ScansToday++
		}
	}
	if stats.ValidScans > 0 {
		stats.ConversionRate = float64(stats.Conversions) / float64(stats.ValidScans) * 100
		for _, b := range s.billboards {
			if b.ID == billboardID {
				stats.CostPerScan = b.Campaign.Budget / float64(stats.ValidScans)
				break
			}
		}
	}
	return stats
}

// Overview aggregates dashboard KPIs across the whole catalog.
func (s *ScanService) Overview(ctx context.Context) (port.OverviewStats, error) {
	events := s.loadEvents(ctx)
	now := s.now()

	var overview port.OverviewStats
	validPerBillboard := make(map[string]int, len(s.billboards))
	for _, e := range events {
		overview.TotalEvents++
		if e.IsBot {
			overview.BotEvents++
			continue
		}
		if e.IsDuplicate {
			overview.DuplicateEvents++
			continue
		}
		overview.TotalScans++
		validPerBillboard[e.BillboardID]++
		if e.IsConversion {
			overview.Conversions++
		}
		if sameDay(e.Timestamp, now) {
			overview.ScansToday++
		}
	}
	if overview.TotalScans > 0 {
		overview.ConversionRate = float64(overview.Conversions) / float64(overview.TotalScans) * 100
	}
	if overview.TotalEvents > 0 {
		overview.DataQuality = float64(overview.TotalScans) / float64(overview.TotalEvents) * 100
	} else {
		overview.DataQuality = 100
	}
	best := -1
	for _, b := range s.billboards {
		if n := validPerBillboard[b.ID]; n > best {
			best = n
			overview.TopBillboardID = b.ID
		}
	}
	return overview, nil
}

// HourlyBuckets counts non-bot events per hour of day over the trailing
// daysBack days. The series is built over a fixed [24] array and always
// carries all 24 entries, so chart consumers need no gap handling.
func (s *ScanService) HourlyBuckets(ctx context.Context, billboardID string, daysBack int) ([]port.HourlyPoint, error) {
	if daysBack <= 0 {
		daysBack = 1
	}
	events := s.loadEvents(ctx)
	cutoff := s.now().AddDate(0, 0, -daysBack)

	var buckets [24]int
	for _, e := range events {
		if e.IsBot {
			continue
		}
		if billboardID != "" && e.BillboardID != billboardID {
			continue
		}
		if e.Timestamp.Before(cutoff) {
			continue
		}
		buckets[e.Timestamp.Hour()]++
	}

	points := make([]port.HourlyPoint, len(buckets))
	for h, n := range buckets {
		points[h] = port.HourlyPoint{Hour: fmt.Sprintf("%d:00", h), Scans: n}
	}
	return points, nil
}

// DailyBuckets counts non-bot scans and conversions per calendar day for
// the trailing 30 days, oldest first. Events are bucketed by local
// calendar date, not by elapsed 24-hour windows; the short display label
// is applied only when projecting the response.
func (s *ScanService) DailyBuckets(ctx context.Context, billboardID string) ([]port.DailyPoint, error) {
	events := s.loadEvents(ctx)
	now := s.now()
	start := midnight(now).AddDate(0, 0, -(historyDays - 1))

	index := make(map[string]int, historyDays)
	for i := 0; i < historyDays; i++ {
		index[start.AddDate(0, 0, i).Format(time.DateOnly)] = i
	}

	type bucket struct{ scans, conversions int }
	var buckets [historyDays]bucket
	for _, e := range events {
		if e.IsBot {
			continue
		}
		if billboardID != "" && e.BillboardID != billboardID {
			continue
		}
		i, ok := index[e.Timestamp.Format(time.DateOnly)]
		if !ok {
			continue
		}
		buckets[i].scans++
		if e.IsConversion {
			buckets[i].conversions++
		}
	}

	points := make([]port.DailyPoint, historyDays)
	for i, b := range buckets {
		points[i] = port.DailyPoint{
			Date:        start.AddDate(0, 0, i).Format("Jan 2"),
			Scans:       b.scans,
			Conversions: b.conversions,
		}
	}
	return points, nil
}

// RecentRealScans returns the newest non-seeded, non-bot events for the
// billboard, newest first.
func (s *ScanService) RecentRealScans(ctx context.Context, billboardID string, limit int) ([]domain.ScanEvent, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	events := s.loadEvents(ctx)

	recent := make([]domain.ScanEvent, 0, limit)
	for _, e := range events {
		if e.BillboardID == billboardID && e.Source != domain.SourceSeeded && !e.IsBot {
			recent = append(recent, e)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].Timestamp.After(recent[j].Timestamp)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent, nil
}

// DeviceBreakdown groups non-bot, non-seeded events by device label.
// The result is ordered by count descending (label ascending on ties)
// purely for stable output; callers treat it as an unordered set.
func (s *ScanService) DeviceBreakdown(ctx context.Context, billboardID string) ([]port.DeviceCount, error) {
	events := s.loadEvents(ctx)

	counts := make(map[string]int)
	for _, e := range events {
		if e.IsBot || e.Source == domain.SourceSeeded {
			continue
		}
		if billboardID != "" && e.BillboardID != billboardID {
			continue
		}
		device := e.DeviceType
		if device == "" {
			device = "Unknown"
		}
		counts[device]++
	}

	breakdown := make([]port.DeviceCount, 0, len(counts))
	for device, count := range counts {
		breakdown = append(breakdown, port.DeviceCount{Device: device, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Device < breakdown[j].Device
	})
	return breakdown, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
