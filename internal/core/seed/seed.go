// Package seed synthesizes a plausible 30-day scan history for the
// billboard catalog. It models time-of-day and weekend effects: rush
// hours and lunch produce most events, scaled by each billboard's
// estimated daily traffic, with small fractions flagged as bots or
// duplicates the way a real ingest pipeline would.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"ooh-analytics/internal/core/domain"
)

// peakHours cover morning rush, lunch and evening rush; normalHours are
// the remaining daytime hours. Hours outside both sets never receive
// synthetic events.
var (
	peakHours   = []int{7, 8, 12, 13, 17, 18, 19, 20}
	normalHours = []int{6, 9, 10, 11, 14, 15, 16, 21}
)

var weathers = []string{"Sunny", "Partly Cloudy", "Cloudy", "Light Rain", "Hot & Humid", "Clear"}

var trafficLevels = []domain.TrafficLevel{
	domain.TrafficLow,
	domain.TrafficModerate,
	domain.TrafficHigh,
	domain.TrafficGridlock,
}

// trafficBaseline normalizes a billboard's daily traffic into an event
// multiplier: a 150k-vehicle placement runs at 1x.
const trafficBaseline = 150000

const historyDays = 30

// Generator produces synthetic scan histories. The zero value is not
// usable; construct with NewGenerator.
type Generator struct {
	rand *rand.Rand
	now  func() time.Time
}

// NewGenerator returns a generator backed by r. Passing nil selects a
// time-seeded source, so runs are intentionally not reproducible unless
// the caller injects a fixed seed.
func NewGenerator(r *rand.Rand) *Generator {
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rand: r, now: time.Now}
}

// Generate builds seeded events for every billboard over the trailing 30
// calendar days, oldest day first. Seeded events carry no user agent or
// device type, and their ids are unique per (billboard, day, hour, slot).
func (g *Generator) Generate(billboards []domain.Billboard) []domain.ScanEvent {
	events := make([]domain.ScanEvent, 0)
	now := g.now()

	for _, bb := range billboards {
		multiplier := float64(bb.DailyTraffic) / trafficBaseline

		for day := historyDays - 1; day >= 0; day-- {
			date := now.AddDate(0, 0, -day)
			weekday := date.Weekday()
			isWeekend := weekday == time.Saturday || weekday == time.Sunday

			// Weekdays draw more scans than weekends.
			baseScans := 7.0
			if isWeekend {
				baseScans = 3.0
			}

			for _, hour := range peakHours {
				count := int((baseScans + g.rand.Float64()*5) * multiplier)
				for i := 0; i < count; i++ {
					isBot := g.rand.Float64() < 0.05
					isDuplicate := !isBot && g.rand.Float64() < 0.08
					events = append(events, domain.ScanEvent{
						ID:           fmt.Sprintf("seeded-%s-%d-%d-%d", bb.ID, day, hour, i),
						BillboardID:  bb.ID,
						Timestamp:    g.timestamp(date, hour),
						IsConversion: !isBot && !isDuplicate && g.rand.Float64() < 0.18,
						Source:       domain.SourceSeeded,
						IsBot:        isBot,
						IsDuplicate:  isDuplicate,
						Weather:      weathers[g.rand.Intn(len(weathers))],
						TrafficLevel: g.peakTraffic(hour),
					})
				}
			}

			for _, hour := range normalHours {
				count := int((1 + g.rand.Float64()*2) * multiplier)
				for i := 0; i < count; i++ {
					isBot := g.rand.Float64() < 0.04
					events = append(events, domain.ScanEvent{
						ID:           fmt.Sprintf("seeded-%s-%d-%d-n%d", bb.ID, day, hour, i),
						BillboardID:  bb.ID,
						Timestamp:    g.timestamp(date, hour),
						IsConversion: !isBot && g.rand.Float64() < 0.12,
						Source:       domain.SourceSeeded,
						IsBot:        isBot,
						Weather:      weathers[g.rand.Intn(len(weathers))],
						TrafficLevel: trafficLevels[g.rand.Intn(len(trafficLevels))],
					})
				}
			}
		}
	}

	return events
}

// timestamp places an event at a uniformly chosen minute within the hour.
func (g *Generator) timestamp(date time.Time, hour int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, g.rand.Intn(60), 0, 0, date.Location())
}

// peakTraffic forces gridlock during the evening rush and high during
// the morning rush; other peak hours draw from the calmer levels.
func (g *Generator) peakTraffic(hour int) domain.TrafficLevel {
	switch {
	case hour >= 17 && hour <= 20:
		return domain.TrafficGridlock
	case hour >= 7 && hour <= 9:
		return domain.TrafficHigh
	default:
		return trafficLevels[g.rand.Intn(3)]
	}
}
