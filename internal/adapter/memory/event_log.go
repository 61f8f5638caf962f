// Package memory provides an in-memory port.EventLog used by tests and
// by deployments that can tolerate losing the log on restart.
package memory

import (
	"context"
	"slices"
	"sync"

	"ooh-analytics/internal/core/domain"
)

// EventLog keeps the whole log in memory behind a mutex. Load and Save
// copy the slice so callers cannot alias the stored log.
type EventLog struct {
	mu     sync.RWMutex
	events []domain.ScanEvent
	stored bool
}

// NewEventLog returns an empty, unseeded log.
func NewEventLog() *EventLog {
	return &EventLog{}
}

// Load returns a copy of the stored log, or (nil, nil) when nothing has
// been saved yet.
func (l *EventLog) Load(_ context.Context) ([]domain.ScanEvent, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.stored {
		return nil, nil
	}
	return slices.Clone(l.events), nil
}

// Save replaces the stored log with a copy of events.
func (l *EventLog) Save(_ context.Context, events []domain.ScanEvent) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.events = slices.Clone(events)
	l.stored = true
	return nil
}
