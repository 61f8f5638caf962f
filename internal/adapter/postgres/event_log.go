package postgres

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ooh-analytics/internal/core/domain"
)

// EventLog implements port.EventLog on PostgreSQL. The whole log lives
// in a single jsonb row keyed by name, so every mutation is a
// read-modify-write of one value; there is no partial or incremental
// write path.
type EventLog struct {
	pool *pgxpool.Pool
	key  string
}

// NewEventLog returns a log stored under the given key.
func NewEventLog(pool *pgxpool.Pool, key string) *EventLog {
	return &EventLog{pool: pool, key: key}
}

// Load reads the full event log. A missing row or an unmarshalable blob
// both read as (nil, nil): corruption is treated as "no data yet" so the
// caller reseeds instead of failing.
func (l *EventLog) Load(ctx context.Context) ([]domain.ScanEvent, error) {
	var data []byte
	err := l.pool.QueryRow(ctx, `SELECT data FROM event_logs WHERE key = $1`, l.key).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var events []domain.ScanEvent
	if err = json.Unmarshal(data, &events); err != nil {
		return nil, nil
	}
	return events, nil
}

// Save upserts the full log as one jsonb value.
func (l *EventLog) Save(ctx context.Context, events []domain.ScanEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return err
	}
	_, err = l.pool.Exec(ctx, `INSERT INTO event_logs (key, data, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`, l.key, data)
	return err
}
