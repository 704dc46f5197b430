// Package tasks implements the scheduled background work of HabitBot: the
// minute-granularity reminder scan, the midnight daily-task reset, and
// history database maintenance.
package tasks

import (
	"context"
	"log/slog"
	"time"

	"github.com/edgard/habitbot/internal/config"
	"github.com/edgard/habitbot/internal/history"
	"github.com/edgard/habitbot/internal/store"
)

// Notifier delivers an outbound message to a user. Delivery is
// fire-and-forget: implementations log failures and never surface them to
// the schedulers.
type Notifier interface {
	Deliver(ctx context.Context, userID int64, text string)
}

// TaskDeps contains all dependencies required by scheduled tasks.
type TaskDeps struct {
	Logger   *slog.Logger
	Store    *store.Store
	History  history.Store
	Notifier Notifier
	Config   *config.Config

	// Location is the fixed reference timezone every wall-clock sample uses.
	Location *time.Location

	// Now is the clock source; nil means time.Now.
	Now func() time.Time
}

func (d TaskDeps) now() time.Time {
	if d.Now != nil {
		return d.Now()
	}
	return time.Now()
}
