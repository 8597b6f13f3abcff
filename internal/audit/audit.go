// Package audit captures staff activity as event values emitted by the
// domain services and persisted by a single recorder. Recording is
// best-effort relative to the pricing mutation it describes: a failed
// insert is logged and dropped, never rolled back into the mutation.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Event is one staff action worth keeping in the activity log.
type Event struct {
	QuoteID   *uuid.UUID
	StaffID   string
	Action    string
	Detail    map[string]any
	CreatedAt time.Time
}

//go:generate mockgen -source=audit.go -destination=audit_mock.go -package=audit
type Repository interface {
	InsertEvent(ctx context.Context, e Event) error
}

// Recorder persists activity events. Implementations never fail the
// caller.
type Recorder interface {
	Record(ctx context.Context, e Event)
}

type Log struct {
	repo Repository
}

func NewLog(repo Repository) *Log {
	return &Log{repo: repo}
}

func (l *Log) Record(ctx context.Context, e Event) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	if err := l.repo.InsertEvent(ctx, e); err != nil {
		slog.Warn("activity log insert failed",
			"action", e.Action,
			"staff_id", e.StaffID,
			"error", err,
		)
	}
}

// Discard drops every event. Used in tests and tools that do not carry
// an activity log.
type Discard struct{}

func (Discard) Record(context.Context, Event) {}
