package usecase

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ooh-analytics/internal/adapter/memory"
	"ooh-analytics/internal/core/catalog"
	"ooh-analytics/internal/core/domain"
	"ooh-analytics/internal/core/seed"
)

func newTestService(t *testing.T, events []domain.ScanEvent) *ScanService {
	t.Helper()
	log := memory.NewEventLog()
	if events != nil {
		require.NoError(t, log.Save(context.Background(), events))
	}
	gen := seed.NewGenerator(rand.New(rand.NewSource(1)))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewScanService(log, gen, catalog.All(), logger)
}

func cleanEvent(id, billboardID string, ts time.Time) domain.ScanEvent {
	return domain.ScanEvent{
		ID:          id,
		BillboardID: billboardID,
		Timestamp:   ts,
		Source:      domain.SourceQR,
		DeviceType:  "iPhone",
	}
}

func TestBootstrapIdempotence(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	first, err := svc.Events(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, first)

	second, err := svc.Events(ctx)
	require.NoError(t, err)
	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
}

func TestAppendMonotonicity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, []domain.ScanEvent{})

	before, err := svc.Events(ctx)
	require.NoError(t, err)

	event, err := svc.LogScan(ctx, "bb-001", domain.SourceQR, "Mozilla/5.0 (iPhone; CPU iPhone OS 16_0)", false)
	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "iPhone", event.DeviceType)
	assert.False(t, event.IsBot)
	assert.False(t, event.IsDuplicate)

	after, err := svc.Events(ctx)
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)

	found := false
	for _, e := range after {
		if e.ID == event.ID {
			found = true
			break
		}
	}
	assert.True(t, found, "appended event missing from reloaded log")
}

func TestRecordConversionTargetsMostRecent(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	oldest := cleanEvent("e1", "bb-001", now.Add(-3*time.Hour))
	oldest.IsConversion = true
	middle := cleanEvent("e2", "bb-001", now.Add(-2*time.Hour))
	newest := cleanEvent("e3", "bb-001", now.Add(-time.Hour))

	svc := newTestService(t, []domain.ScanEvent{oldest, middle, newest})
	require.NoError(t, svc.RecordConversion(ctx, "bb-001"))

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	byID := make(map[string]domain.ScanEvent, len(events))
	for _, e := range events {
		byID[e.ID] = e
	}
	assert.True(t, byID["e1"].IsConversion, "already-converted event left alone")
	assert.False(t, byID["e2"].IsConversion, "older candidate must not be flipped")
	assert.True(t, byID["e3"].IsConversion, "most recent candidate flipped")
}

func TestRecordConversionSkipsBots(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	human := cleanEvent("human", "bb-001", now.Add(-2*time.Hour))
	bot := cleanEvent("bot", "bb-001", now.Add(-time.Hour))
	bot.IsBot = true

	svc := newTestService(t, []domain.ScanEvent{human, bot})
	require.NoError(t, svc.RecordConversion(ctx, "bb-001"))

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	for _, e := range events {
		switch e.ID {
		case "human":
			assert.True(t, e.IsConversion)
		case "bot":
			assert.False(t, e.IsConversion)
		}
	}
}

func TestRecordConversionNoMatchIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, []domain.ScanEvent{})
	require.NoError(t, svc.RecordConversion(ctx, "bb-001"))

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStatsScenario(t *testing.T) {
	ctx := context.Background()
	now := time.Now()
	svc := newTestService(t, []domain.ScanEvent{
		cleanEvent("e1", "bb-001", now.Add(-2*time.Hour)),
		cleanEvent("e2", "bb-001", now.Add(-time.Hour)),
	})

	stats, err := svc.StatsFor(ctx, "bb-001")
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalScans)
	assert.Equal(t, 2, stats.ValidScans)
	assert.Equal(t, 0, stats.Conversions)
	assert.Zero(t, stats.ConversionRate)

	require.NoError(t, svc.RecordConversion(ctx, "bb-001"))

	stats, err = svc.StatsFor(ctx, "bb-001")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Conversions)
	assert.InDelta(t, 50.0, stats.ConversionRate, 0.0001)
}

func TestStatsZeroDivisionSafety(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, []domain.ScanEvent{})

	stats, err := svc.StatsFor(ctx, "bb-001")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalScans)
	assert.Zero(t, stats.ValidScans)
	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.CostPerScan)

	// same for an id absent from the catalog
	stats, err = svc.StatsFor(ctx, "no-such-billboard")
	require.NoError(t, err)
	assert.Zero(t, stats.ConversionRate)
	assert.Zero(t, stats.CostPerScan)
}

func TestStatsCountsExcludeBotsAndDuplicates(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	bot := cleanEvent("bot", "bb-001", now)
	bot.IsBot = true
	dup := cleanEvent("dup", "bb-001", now)
	dup.IsDuplicate = true
	converted := cleanEvent("conv", "bb-001", now)
	converted.IsConversion = true

	svc := newTestService(t, []domain.ScanEvent{bot, dup, converted, cleanEvent("ok", "bb-001", now)})

	stats, err := svc.StatsFor(ctx, "bb-001")
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalScans)
	assert.Equal(t, 2, stats.ValidScans)
	assert.Equal(t, 1, stats.Conversions)
	assert.Equal(t, 2, stats.ScansToday)
	// cost per scan = campaign budget / valid scans
	bb, ok := catalog.Find("bb-001")
	require.True(t, ok)
	assert.InDelta(t, bb.Campaign.Budget/2, stats.CostPerScan, 0.0001)
}

// TestValidCountInvariant runs the invariant over a full seeded history:
// validScans = totalScans - (bot or duplicate), conversions <= validScans.
func TestValidCountInvariant(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, nil)

	events, err := svc.Events(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, events)

	for _, bb := range catalog.All() {
		flagged := 0
		for _, e := range events {
			if e.BillboardID == bb.ID && !e.Valid() {
				flagged++
			}
		}
		stats, err := svc.StatsFor(ctx, bb.ID)
		require.NoError(t, err)
		assert.Equal(t, stats.TotalScans-flagged, stats.ValidScans, bb.ID)
		assert.LessOrEqual(t, stats.Conversions, stats.ValidScans, bb.ID)
	}
}

func TestHourlyBucketCompleteness(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, []domain.ScanEvent{})

	points, err := svc.HourlyBuckets(ctx, "", 1)
	require.NoError(t, err)
	require.Len(t, points, 24)
	assert.Equal(t, "0:00", points[0].Hour)
	assert.Equal(t, "23:00", points[23].Hour)
	for _, p := range points {
		assert.Zero(t, p.Scans)
	}
}

func TestHourlyBucketsCountAndFilter(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	inWindow := cleanEvent("in", "bb-001", now)
	otherBoard := cleanEvent("other", "bb-002", now)
	stale := cleanEvent("stale", "bb-001", now.AddDate(0, 0, -3))
	bot := cleanEvent("bot", "bb-001", now)
	bot.IsBot = true

	svc := newTestService(t, []domain.ScanEvent{inWindow, otherBoard, stale, bot})

	points, err := svc.HourlyBuckets(ctx, "bb-001", 1)
	require.NoError(t, err)
	require.Len(t, points, 24)

	total := 0
	for _, p := range points {
		total += p.Scans
	}
	assert.Equal(t, 1, total)
	assert.Equal(t, 1, points[now.Hour()].Scans)
}

func TestDailyBucketCompleteness(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, []domain.ScanEvent{})

	points, err := svc.DailyBuckets(ctx, "")
	require.NoError(t, err)
	require.Len(t, points, 30)
	for _, p := range points {
		assert.NotEmpty(t, p.Date)
		assert.Zero(t, p.Scans)
		assert.Zero(t, p.Conversions)
	}
	// oldest first: the last bucket is today
	assert.Equal(t, time.Now().Format("Jan 2"), points[29].Date)
}

func TestDailyBucketsPlaceEvents(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	today := cleanEvent("today", "bb-001", now)
	today.IsConversion = true
	lastWeek := cleanEvent("week", "bb-001", now.AddDate(0, 0, -7))
	ancient := cleanEvent("ancient", "bb-001", now.AddDate(0, 0, -45))

	svc := newTestService(t, []domain.ScanEvent{today, lastWeek, ancient})

	points, err := svc.DailyBuckets(ctx, "bb-001")
	require.NoError(t, err)
	require.Len(t, points, 30)
	assert.Equal(t, 1, points[29].Scans)
	assert.Equal(t, 1, points[29].Conversions)
	assert.Equal(t, 1, points[22].Scans)

	total := 0
	for _, p := range points {
		total += p.Scans
	}
	assert.Equal(t, 2, total, "events outside the trailing 30 days are dropped")
}

func TestRecentRealScans(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	seeded := cleanEvent("seeded", "bb-001", now)
	seeded.Source = domain.SourceSeeded
	bot := cleanEvent("bot", "bb-001", now)
	bot.IsBot = true

	events := []domain.ScanEvent{seeded, bot}
	for i := 0; i < 12; i++ {
		events = append(events, cleanEvent(
			string(rune('a'+i)), "bb-001", now.Add(-time.Duration(i)*time.Minute)))
	}
	svc := newTestService(t, events)

	recent, err := svc.RecentRealScans(ctx, "bb-001", 10)
	require.NoError(t, err)
	require.Len(t, recent, 10)
	assert.Equal(t, "a", recent[0].ID, "newest first")
	for i := 1; i < len(recent); i++ {
		assert.False(t, recent[i].Timestamp.After(recent[i-1].Timestamp))
	}
	for _, e := range recent {
		assert.NotEqual(t, domain.SourceSeeded, e.Source)
		assert.False(t, e.IsBot)
	}
}

func TestDeviceBreakdown(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	iphone1 := cleanEvent("i1", "bb-001", now)
	iphone2 := cleanEvent("i2", "bb-001", now)
	unlabeled := cleanEvent("u1", "bb-001", now)
	unlabeled.DeviceType = ""
	seeded := cleanEvent("s1", "bb-001", now)
	seeded.Source = domain.SourceSeeded
	seeded.DeviceType = ""
	otherBoard := cleanEvent("o1", "bb-002", now)
	otherBoard.DeviceType = "Mac"

	svc := newTestService(t, []domain.ScanEvent{iphone1, iphone2, unlabeled, seeded, otherBoard})

	breakdown, err := svc.DeviceBreakdown(ctx, "bb-001")
	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "iPhone", breakdown[0].Device)
	assert.Equal(t, 2, breakdown[0].Count)
	assert.Equal(t, "Unknown", breakdown[1].Device)
	assert.Equal(t, 1, breakdown[1].Count)

	all, err := svc.DeviceBreakdown(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestOverview(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	conv := cleanEvent("c1", "bb-001", now)
	conv.IsConversion = true
	bot := cleanEvent("b1", "bb-002", now)
	bot.IsBot = true
	dup := cleanEvent("d1", "bb-002", now)
	dup.IsDuplicate = true

	svc := newTestService(t, []domain.ScanEvent{
		conv, bot, dup,
		cleanEvent("v1", "bb-002", now),
		cleanEvent("v2", "bb-002", now),
	})

	overview, err := svc.Overview(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, overview.TotalEvents)
	assert.Equal(t, 3, overview.TotalScans)
	assert.Equal(t, 1, overview.Conversions)
	assert.Equal(t, 3, overview.ScansToday)
	assert.Equal(t, 1, overview.BotEvents)
	assert.Equal(t, 1, overview.DuplicateEvents)
	assert.InDelta(t, 60.0, overview.DataQuality, 0.0001)
	assert.Equal(t, "bb-002", overview.TopBillboardID)
}
