// Package store owns the per-user persistent state: the in-memory map of
// user records and its one-JSON-file-per-user backing on disk.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidTime is returned when a reminder time fails HH:MM validation.
var ErrInvalidTime = errors.New("invalid time of day")

// timeOfDayRe accepts zero-padded 24-hour HH:MM only (00:00 through 23:59).
var timeOfDayRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidateTimeOfDay reports whether s is a well-formed HH:MM time of day.
func ValidateTimeOfDay(s string) error {
	if !timeOfDayRe.MatchString(s) {
		return fmt.Errorf("%w: %q is not HH:MM between 00:00 and 23:59", ErrInvalidTime, s)
	}
	return nil
}

// Reminder binds a time of day to a habit name. The habit name is captured at
// creation time and is not re-validated afterwards.
type Reminder struct {
	Time  string `json:"time"`
	Habit string `json:"habit"`
}

// UserRecord is the complete mutable state for one user. All three slices are
// always non-nil once the record has been initialized. Entries are append-only
// and never deduplicated.
type UserRecord struct {
	Habits     []string   `json:"habits"`
	Reminders  []Reminder `json:"reminders"`
	DailyTasks []string   `json:"daily_tasks"`
}

// newUserRecord returns an empty, fully initialized record.
func newUserRecord() *UserRecord {
	return &UserRecord{
		Habits:     []string{},
		Reminders:  []Reminder{},
		DailyTasks: []string{},
	}
}

// userRecordJSON is the on-disk shape. New files carry a flat "reminders"
// list; files written by the previous generation of the bot instead nested
// the list under "notifications", keyed redundantly by the owning user's ID.
// Both shapes must load.
type userRecordJSON struct {
	Habits        []string              `json:"habits"`
	Reminders     []Reminder            `json:"reminders,omitempty"`
	Notifications map[string][]Reminder `json:"notifications,omitempty"`
	DailyTasks    []string              `json:"daily_tasks"`
}

// MarshalJSON writes the flat shape.
func (r *UserRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(userRecordJSON{
		Habits:     r.Habits,
		Reminders:  r.Reminders,
		DailyTasks: r.DailyTasks,
	})
}

// UnmarshalJSON reads either the flat shape or the legacy nested one. When
// both are somehow present the flat list wins; legacy entries are merged from
// every key of the nested map since the key only ever duplicated the file
// identity.
func (r *UserRecord) UnmarshalJSON(data []byte) error {
	var raw userRecordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Habits = raw.Habits
	r.Reminders = raw.Reminders
	r.DailyTasks = raw.DailyTasks

	if len(r.Reminders) == 0 && len(raw.Notifications) > 0 {
		for _, entries := range raw.Notifications {
			r.Reminders = append(r.Reminders, entries...)
		}
	}

	if r.Habits == nil {
		r.Habits = []string{}
	}
	if r.Reminders == nil {
		r.Reminders = []Reminder{}
	}
	if r.DailyTasks == nil {
		r.DailyTasks = []string{}
	}
	return nil
}

// clone returns a deep copy, used to hand out snapshots without holding locks.
func (r *UserRecord) clone() *UserRecord {
	c := &UserRecord{
		Habits:     make([]string, len(r.Habits)),
		Reminders:  make([]Reminder, len(r.Reminders)),
		DailyTasks: make([]string, len(r.DailyTasks)),
	}
	copy(c.Habits, r.Habits)
	copy(c.Reminders, r.Reminders)
	copy(c.DailyTasks, r.DailyTasks)
	return c
}
