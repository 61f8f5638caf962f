package port

import (
	"context"

	"ooh-analytics/internal/core/domain"
)

// EventLog is the outbound port owning the persisted scan-event log.
// The log is stored as one unit under a single named key: every write
// replaces the whole log, and reads always return all of it. This is an
// explicit single-writer design; implementations are not required to
// provide atomic append semantics.
type EventLog interface {
	// Load returns the full persisted log. A missing, unreadable or
	// corrupt payload is reported as (nil, nil) so callers can treat it
	// as "no data yet" and reseed. Errors are reserved for backend
	// failures such as lost connections.
	Load(ctx context.Context) ([]domain.ScanEvent, error)

	// Save persists the full log in one write, replacing any previous
	// contents.
	Save(ctx context.Context, events []domain.ScanEvent) error
}
