// Package store_test tests the file-backed user record store.
package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/edgard/habitbot/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.New(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	return s
}

func TestAddHabitPreservesOrderAndDuplicates(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	added := []string{"read", "run", "read", "meditate"}
	for _, h := range added {
		if err := s.AddHabit(42, h); err != nil {
			t.Fatalf("AddHabit(%q) returned error: %v", h, err)
		}
	}

	if got := s.Habits(42); !reflect.DeepEqual(got, added) {
		t.Errorf("Habits(42) = %v, want %v", got, added)
	}
}

func TestAddReminderValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		habits      []string
		timeOfDay   string
		habitNumber int
		wantErr     error
	}{
		{
			name:        "valid reminder",
			habits:      []string{"read", "run"},
			timeOfDay:   "07:30",
			habitNumber: 1,
			wantErr:     nil,
		},
		{
			name:        "midnight is valid",
			habits:      []string{"read"},
			timeOfDay:   "00:00",
			habitNumber: 1,
			wantErr:     nil,
		},
		{
			name:        "last minute of day is valid",
			habits:      []string{"read"},
			timeOfDay:   "23:59",
			habitNumber: 1,
			wantErr:     nil,
		},
		{
			name:        "hour out of range",
			habits:      []string{"read"},
			timeOfDay:   "24:00",
			habitNumber: 1,
			wantErr:     store.ErrInvalidTime,
		},
		{
			name:        "minute out of range",
			habits:      []string{"read"},
			timeOfDay:   "12:60",
			habitNumber: 1,
			wantErr:     store.ErrInvalidTime,
		},
		{
			name:        "missing zero padding",
			habits:      []string{"read"},
			timeOfDay:   "7:30",
			habitNumber: 1,
			wantErr:     store.ErrInvalidTime,
		},
		{
			name:        "not a time at all",
			habits:      []string{"read"},
			timeOfDay:   "soon",
			habitNumber: 1,
			wantErr:     store.ErrInvalidTime,
		},
		{
			name:        "no habits registered",
			habits:      nil,
			timeOfDay:   "07:30",
			habitNumber: 1,
			wantErr:     store.ErrNoHabits,
		},
		{
			name:        "habit number too large",
			habits:      []string{"read"},
			timeOfDay:   "07:30",
			habitNumber: 2,
			wantErr:     store.ErrHabitIndex,
		},
		{
			name:        "habit number zero",
			habits:      []string{"read"},
			timeOfDay:   "07:30",
			habitNumber: 0,
			wantErr:     store.ErrHabitIndex,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			s := newTestStore(t)
			for _, h := range tc.habits {
				if err := s.AddHabit(1, h); err != nil {
					t.Fatalf("AddHabit(%q) returned error: %v", h, err)
				}
			}

			habit, err := s.AddReminder(1, tc.timeOfDay, tc.habitNumber)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("AddReminder() error = %v, want %v", err, tc.wantErr)
				}
				if got := s.Reminders(1); len(got) != 0 {
					t.Errorf("Reminders(1) = %v after rejected input, want empty", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("AddReminder() returned error: %v", err)
			}
			if want := tc.habits[tc.habitNumber-1]; habit != want {
				t.Errorf("AddReminder() habit = %q, want %q", habit, want)
			}
		})
	}
}

func TestAddReminderKeepsDuplicates(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	if err := s.AddHabit(5, "read"); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := s.AddReminder(5, "07:30", 1); err != nil {
			t.Fatalf("AddReminder() returned error: %v", err)
		}
	}

	if got := len(s.Reminders(5)); got != 2 {
		t.Fatalf("expected 2 independent reminder entries, got %d", got)
	}
	if got := len(s.DueReminders("07:30")); got != 2 {
		t.Errorf("DueReminders(07:30) = %d events, want 2 (duplicates fire independently)", got)
	}
}

func TestDueRemindersExactMatch(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, h := range []string{"read", "run"} {
		if err := s.AddHabit(42, h); err != nil {
			t.Fatalf("AddHabit(%q) returned error: %v", h, err)
		}
	}
	if _, err := s.AddReminder(42, "07:30", 1); err != nil {
		t.Fatalf("AddReminder() returned error: %v", err)
	}

	due := s.DueReminders("07:30")
	want := []store.DueReminder{{UserID: 42, Habit: "read"}}
	if !reflect.DeepEqual(due, want) {
		t.Errorf("DueReminders(07:30) = %v, want %v", due, want)
	}

	if due := s.DueReminders("07:31"); len(due) != 0 {
		t.Errorf("DueReminders(07:31) = %v, want none (no tolerance window)", due)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := store.New(dir, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	for _, h := range []string{"read", "run"} {
		if err := s.AddHabit(42, h); err != nil {
			t.Fatalf("AddHabit(%q) returned error: %v", h, err)
		}
	}
	if _, err := s.AddReminder(42, "07:30", 1); err != nil {
		t.Fatalf("AddReminder() returned error: %v", err)
	}
	if err := s.AddDailyTask(42, "buy milk"); err != nil {
		t.Fatalf("AddDailyTask() returned error: %v", err)
	}

	reloaded, err := store.New(dir, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := reloaded.LoadAll(); err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}

	if got, want := reloaded.Habits(42), []string{"read", "run"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Habits(42) = %v, want %v", got, want)
	}
	if got, want := reloaded.Reminders(42), []store.Reminder{{Time: "07:30", Habit: "read"}}; !reflect.DeepEqual(got, want) {
		t.Errorf("Reminders(42) = %v, want %v", got, want)
	}
	if got, want := reloaded.DailyTasks(42), []string{"buy milk"}; !reflect.DeepEqual(got, want) {
		t.Errorf("DailyTasks(42) = %v, want %v", got, want)
	}
}

func TestLoadOneCorruptFileRecoversTwice(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "99.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	s, err := store.New(dir, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	// Recovery must be idempotent: loading twice yields an empty default
	// record both times and never raises.
	for i := 0; i < 2; i++ {
		s.LoadOne(99)
		if got := s.Habits(99); len(got) != 0 {
			t.Errorf("load %d: Habits(99) = %v, want empty", i+1, got)
		}
	}
}

func TestLoadOneMissingFileYieldsEmptyRecord(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	s.LoadOne(7)
	if got := s.Habits(7); len(got) != 0 {
		t.Errorf("Habits(7) = %v, want empty", got)
	}
	if got := s.Len(); got != 1 {
		t.Errorf("Len() = %d, want 1", got)
	}
}

func TestLoadAllSkipsCorruptAndForeignFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	writeFile("1.json", `{"habits":["read"],"reminders":[],"daily_tasks":[]}`)
	writeFile("2.json", `}}} garbage`)
	writeFile("notes.txt", "not a record")

	s, err := store.New(dir, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := s.LoadAll(); err != nil {
		t.Fatalf("LoadAll() returned error: %v", err)
	}

	if got, want := s.Habits(1), []string{"read"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Habits(1) = %v, want %v", got, want)
	}
	if got := s.Habits(2); len(got) != 0 {
		t.Errorf("Habits(2) = %v, want empty record after corruption recovery", got)
	}
	if got := s.Len(); got != 2 {
		t.Errorf("Len() = %d, want 2", got)
	}
}

func TestClearDailyTasksOnlyClearsTasks(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	for _, id := range []int64{1, 2} {
		if err := s.AddHabit(id, "read"); err != nil {
			t.Fatalf("AddHabit() returned error: %v", err)
		}
		if _, err := s.AddReminder(id, "08:00", 1); err != nil {
			t.Fatalf("AddReminder() returned error: %v", err)
		}
		if err := s.AddDailyTask(id, "task"); err != nil {
			t.Fatalf("AddDailyTask() returned error: %v", err)
		}
	}

	if err := s.ClearDailyTasks(); err != nil {
		t.Fatalf("ClearDailyTasks() returned error: %v", err)
	}

	for _, id := range []int64{1, 2} {
		if got := s.DailyTasks(id); len(got) != 0 {
			t.Errorf("DailyTasks(%d) = %v, want empty", id, got)
		}
		if got := s.Habits(id); len(got) != 1 {
			t.Errorf("Habits(%d) = %v, want untouched", id, got)
		}
		if got := s.Reminders(id); len(got) != 1 {
			t.Errorf("Reminders(%d) = %v, want untouched", id, got)
		}
	}
}

func TestSaveOneSnapshotsWholeState(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s, err := store.New(dir, nil)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if err := s.AddHabit(1, "read"); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}
	if err := s.AddHabit(2, "run"); err != nil {
		t.Fatalf("AddHabit() returned error: %v", err)
	}

	if err := s.SaveOne(1); err != nil {
		t.Fatalf("SaveOne() returned error: %v", err)
	}

	// Saving one user persists every record.
	for _, id := range []string{"1.json", "2.json"} {
		if _, err := os.Stat(filepath.Join(dir, id)); err != nil {
			t.Errorf("expected %s to exist after SaveOne: %v", id, err)
		}
	}
}
