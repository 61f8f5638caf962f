package domain

import "time"

// Source tags the provenance of a scan event.
type Source string

const (
	// SourceQR marks a real-world scan of a billboard QR code.
	SourceQR Source = "qr"
	// SourceSimulation marks an operator-triggered test scan.
	SourceSimulation Source = "simulation"
	// SourceSeeded marks synthetic historical data generated at bootstrap.
	SourceSeeded Source = "seeded"
)

// TrafficLevel is the estimated road-traffic condition at scan time.
type TrafficLevel string

const (
	TrafficLow      TrafficLevel = "low"
	TrafficModerate TrafficLevel = "moderate"
	TrafficHigh     TrafficLevel = "high"
	TrafficGridlock TrafficLevel = "gridlock"
)

// ScanEvent is one recorded interaction attributable to a billboard.
// Seeded events never carry a user agent or device type. Apart from the
// conversion flag being flipped by a later attribution, events are never
// modified or deleted once logged.
type ScanEvent struct {
	ID           string       `json:"id"`
	BillboardID  string       `json:"billboardId"`
	Timestamp    time.Time    `json:"timestamp"`
	IsConversion bool         `json:"isConversion"`
	Source       Source       `json:"source"`
	UserAgent    string       `json:"userAgent,omitempty"`
	DeviceType   string       `json:"deviceType,omitempty"`
	IsBot        bool         `json:"isBot"`
	IsDuplicate  bool         `json:"isDuplicate"`
	Weather      string       `json:"weather,omitempty"`
	TrafficLevel TrafficLevel `json:"trafficLevel,omitempty"`
}

// Valid reports whether the event counts toward rate and cost metrics.
// Bot and duplicate events are excluded from every derived metric.
func (e ScanEvent) Valid() bool {
	return !e.IsBot && !e.IsDuplicate
}

// BillboardStats holds derived metrics for a single billboard. It is
// computed per query and never persisted.
type BillboardStats struct {
	BillboardID    string  `json:"billboardId"`
	TotalScans     int     `json:"totalScans"`
	ValidScans     int     `json:"validScans"`
	Conversions    int     `json:"conversions"`
	ConversionRate float64 `json:"conversionRate"`
	ScansToday     int     `json:"scansToday"`
	CostPerScan    float64 `json:"costPerScan"`
}
