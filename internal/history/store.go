package history

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/jmoiron/sqlx"
)

// Store defines the interface for history database operations.
// Methods accept context.Context for cancellation and timeouts.
type Store interface {
	// RecordDelivery inserts one fired-reminder event.
	RecordDelivery(ctx context.Context, userID int64, habit string, firedAt time.Time) error

	// RecordReset inserts one daily-reset event.
	RecordReset(ctx context.Context, usersCleared int, occurredAt time.Time) error

	// RecentDeliveries retrieves the most recent 'limit' reminder events for
	// a user, newest first.
	RecentDeliveries(ctx context.Context, userID int64, limit int) ([]ReminderEvent, error)

	// RunMaintenance prunes events older than the retention window and
	// compacts the database.
	RunMaintenance(ctx context.Context, retention time.Duration) error
}

// sqlxStore provides an implementation of the Store interface using sqlx.
type sqlxStore struct {
	db     *sqlx.DB
	logger *slog.Logger
}

// NewStore creates a new Store implementation backed by sqlx.
// It requires a connected sqlx.DB instance and a logger.
func NewStore(db *sqlx.DB, logger *slog.Logger) Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &sqlxStore{
		db:     db,
		logger: logger.With("component", "history"),
	}
}

func (s *sqlxStore) RecordDelivery(ctx context.Context, userID int64, habit string, firedAt time.Time) error {
	event := ReminderEvent{UserID: userID, Habit: habit, FiredAt: firedAt.UTC()}
	query := `INSERT INTO reminder_events (user_id, habit, fired_at) VALUES (:user_id, :habit, :fired_at);`
	if _, err := s.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to record delivery (user %d, habit %q): %w", userID, habit, err)
	}
	return nil
}

func (s *sqlxStore) RecordReset(ctx context.Context, usersCleared int, occurredAt time.Time) error {
	event := ResetEvent{UsersCleared: usersCleared, OccurredAt: occurredAt.UTC()}
	query := `INSERT INTO reset_events (users_cleared, occurred_at) VALUES (:users_cleared, :occurred_at);`
	if _, err := s.db.NamedExecContext(ctx, query, event); err != nil {
		return fmt.Errorf("failed to record reset: %w", err)
	}
	return nil
}

func (s *sqlxStore) RecentDeliveries(ctx context.Context, userID int64, limit int) ([]ReminderEvent, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}
	var events []ReminderEvent
	query := `SELECT id, user_id, habit, fired_at FROM reminder_events WHERE user_id = ? ORDER BY fired_at DESC, id DESC LIMIT ?;`
	if err := s.db.SelectContext(ctx, &events, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to query deliveries for user %d: %w", userID, err)
	}
	return events, nil
}

func (s *sqlxStore) RunMaintenance(ctx context.Context, retention time.Duration) error {
	cutoff := time.Now().UTC().Add(-retention)

	res, err := s.db.ExecContext(ctx, `DELETE FROM reminder_events WHERE fired_at < ?;`, cutoff)
	if err != nil {
		return fmt.Errorf("failed to prune reminder events: %w", err)
	}
	pruned, _ := res.RowsAffected()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM reset_events WHERE occurred_at < ?;`, cutoff); err != nil {
		return fmt.Errorf("failed to prune reset events: %w", err)
	}

	if _, err := s.db.ExecContext(ctx, `VACUUM;`); err != nil {
		return fmt.Errorf("failed to vacuum history database: %w", err)
	}

	s.logger.InfoContext(ctx, "History maintenance completed", "pruned_reminder_events", pruned, "cutoff", cutoff)
	return nil
}
