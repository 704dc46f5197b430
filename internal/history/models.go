package history

import "time"

// ReminderEvent records one reminder notification emitted by the scan loop.
type ReminderEvent struct {
	ID      uint      `db:"id"`
	UserID  int64     `db:"user_id"`
	Habit   string    `db:"habit"`
	FiredAt time.Time `db:"fired_at"`
}

// ResetEvent records one midnight daily-task reset cycle.
type ResetEvent struct {
	ID           uint      `db:"id"`
	UsersCleared int       `db:"users_cleared"`
	OccurredAt   time.Time `db:"occurred_at"`
}
