package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// Validation errors surfaced to command handlers. State is never mutated when
// one of these is returned.
var (
	ErrNoHabits   = errors.New("no habits registered")
	ErrHabitIndex = errors.New("habit number out of range")
)

// DueReminder is one notification event produced by a scheduler scan.
type DueReminder struct {
	UserID int64
	Habit  string
}

// Store is the authoritative registry of user records. It is safe for
// concurrent use by the command handlers and both schedulers: a single
// store-wide mutex guards every read-modify-write, and persistence I/O is
// performed inside the critical section so a snapshot can never interleave
// with a mutation.
type Store struct {
	logger *slog.Logger
	dir    string

	mu    sync.RWMutex
	users map[int64]*UserRecord
}

// New creates a Store rooted at dir, creating the directory if needed.
func New(dir string, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if dir == "" {
		return nil, fmt.Errorf("store directory cannot be empty")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create store directory %q: %w", dir, err)
	}
	return &Store{
		logger: logger.With("component", "store"),
		dir:    dir,
		users:  make(map[int64]*UserRecord),
	}, nil
}

// path maps a user ID to its backing file. The mapping is stable and
// reversible: "<dir>/<id>.json".
func (s *Store) path(userID int64) string {
	return filepath.Join(s.dir, strconv.FormatInt(userID, 10)+".json")
}

// LoadAll populates the in-memory map from every persisted record found in
// the store directory. A file that fails to parse is replaced with a fresh
// empty record and logged; corruption never prevents startup. Files whose
// names are not "<id>.json" are skipped.
func (s *Store) LoadAll() error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return fmt.Errorf("failed to read store directory %q: %w", s.dir, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	loaded := 0
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		userID, err := strconv.ParseInt(strings.TrimSuffix(name, ".json"), 10, 64)
		if err != nil {
			s.logger.Warn("Skipping file with non-numeric name in store directory", "file", name)
			continue
		}
		s.loadLocked(userID)
		loaded++
	}

	s.logger.Info("Loaded user records", "count", loaded, "dir", s.dir)
	return nil
}

// LoadOne ensures the in-memory map has a valid entry for userID: the
// persisted record if one exists and parses, a fresh empty record otherwise.
// It never returns an error; read failures degrade to an empty record.
func (s *Store) LoadOne(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadLocked(userID)
}

// loadLocked implements LoadOne under an already-held write lock.
func (s *Store) loadLocked(userID int64) {
	data, err := os.ReadFile(s.path(userID))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Failed to read user record, starting fresh", "user_id", userID, "error", err)
		}
		if _, ok := s.users[userID]; !ok {
			s.users[userID] = newUserRecord()
		}
		return
	}

	rec := newUserRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		s.logger.Warn("Corrupt user record, replacing with empty record", "user_id", userID, "error", err)
		s.users[userID] = newUserRecord()
		return
	}
	s.users[userID] = rec
}

// SaveAll persists every in-memory record to its own file. Every record is
// attempted even if an earlier write fails; the joined error is returned.
func (s *Store) SaveAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveAllLocked()
}

// SaveOne persists the whole in-memory state. Saving a single record saves
// everything: the store's consistency mechanism is a whole-state snapshot on
// every mutation, trading write amplification for simplicity.
func (s *Store) SaveOne(userID int64) error {
	return s.SaveAll()
}

func (s *Store) saveAllLocked() error {
	var errs []error
	for userID, rec := range s.users {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to encode record for user %d: %w", userID, err))
			continue
		}
		if err := os.WriteFile(s.path(userID), data, 0o600); err != nil {
			errs = append(errs, fmt.Errorf("failed to write record for user %d: %w", userID, err))
		}
	}
	return errors.Join(errs...)
}

// AddHabit appends a habit to the user's list and persists all state.
func (s *Store) AddHabit(userID int64, habit string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID]
	rec.Habits = append(rec.Habits, habit)
	return s.saveAllLocked()
}

// AddReminder validates timeOfDay and the 1-based habit number, appends a
// reminder bound to the selected habit's name, and persists all state. It
// returns the habit name the reminder was bound to. On any validation error
// nothing is mutated.
func (s *Store) AddReminder(userID int64, timeOfDay string, habitNumber int) (string, error) {
	if err := ValidateTimeOfDay(timeOfDay); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID]
	if len(rec.Habits) == 0 {
		return "", ErrNoHabits
	}
	if habitNumber < 1 || habitNumber > len(rec.Habits) {
		return "", fmt.Errorf("%w: got %d, have %d habits", ErrHabitIndex, habitNumber, len(rec.Habits))
	}

	habit := rec.Habits[habitNumber-1]
	rec.Reminders = append(rec.Reminders, Reminder{Time: timeOfDay, Habit: habit})
	if err := s.saveAllLocked(); err != nil {
		return habit, err
	}
	return habit, nil
}

// AddDailyTask appends a task to the user's daily list and persists all state.
func (s *Store) AddDailyTask(userID int64, task string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID]
	rec.DailyTasks = append(rec.DailyTasks, task)
	return s.saveAllLocked()
}

// Habits returns a copy of the user's habit list, materializing the record
// if needed.
func (s *Store) Habits(userID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID].clone()
	return rec.Habits
}

// Reminders returns a copy of the user's reminder list.
func (s *Store) Reminders(userID int64) []Reminder {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID].clone()
	return rec.Reminders
}

// DailyTasks returns a copy of the user's daily task list.
func (s *Store) DailyTasks(userID int64) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loadLocked(userID)
	rec := s.users[userID].clone()
	return rec.DailyTasks
}

// DueReminders returns one event per reminder whose stored time equals the
// given HH:MM sample, across all cached records. Comparison is exact string
// match; duplicate entries produce duplicate events.
func (s *Store) DueReminders(hhmm string) []DueReminder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var due []DueReminder
	for userID, rec := range s.users {
		for _, rem := range rec.Reminders {
			if rem.Time == hhmm {
				due = append(due, DueReminder{UserID: userID, Habit: rem.Habit})
			}
		}
	}
	return due
}

// ClearDailyTasks empties every user's daily task list and persists all
// state. Habits and reminders are untouched.
func (s *Store) ClearDailyTasks() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		rec.DailyTasks = rec.DailyTasks[:0]
	}
	return s.saveAllLocked()
}

// Len reports the number of cached records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}
