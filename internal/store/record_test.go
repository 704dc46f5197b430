package store_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/edgard/habitbot/internal/store"
)

func TestUserRecordDecodeShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  store.UserRecord
	}{
		{
			name:  "flat shape",
			input: `{"habits":["read"],"reminders":[{"time":"07:30","habit":"read"}],"daily_tasks":["milk"]}`,
			want: store.UserRecord{
				Habits:     []string{"read"},
				Reminders:  []store.Reminder{{Time: "07:30", Habit: "read"}},
				DailyTasks: []string{"milk"},
			},
		},
		{
			name:  "legacy nested notifications shape",
			input: `{"habits":["read"],"notifications":{"42":[{"time":"07:30","habit":"read"}]},"daily_tasks":[]}`,
			want: store.UserRecord{
				Habits:     []string{"read"},
				Reminders:  []store.Reminder{{Time: "07:30", Habit: "read"}},
				DailyTasks: []string{},
			},
		},
		{
			name:  "missing keys default to empty slices",
			input: `{}`,
			want: store.UserRecord{
				Habits:     []string{},
				Reminders:  []store.Reminder{},
				DailyTasks: []string{},
			},
		},
		{
			name:  "null values default to empty slices",
			input: `{"habits":null,"reminders":null,"daily_tasks":null}`,
			want: store.UserRecord{
				Habits:     []string{},
				Reminders:  []store.Reminder{},
				DailyTasks: []string{},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var got store.UserRecord
			if err := json.Unmarshal([]byte(tc.input), &got); err != nil {
				t.Fatalf("Unmarshal() returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestUserRecordEncodeIsFlat(t *testing.T) {
	t.Parallel()

	rec := store.UserRecord{
		Habits:     []string{"read"},
		Reminders:  []store.Reminder{{Time: "07:30", Habit: "read"}},
		DailyTasks: []string{},
	}
	data, err := json.Marshal(&rec)
	if err != nil {
		t.Fatalf("Marshal() returned error: %v", err)
	}
	if strings.Contains(string(data), "notifications") {
		t.Errorf("Marshal() emitted legacy key: %s", data)
	}

	var back store.UserRecord
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() returned error: %v", err)
	}
	if !reflect.DeepEqual(back, rec) {
		t.Errorf("round trip = %+v, want %+v", back, rec)
	}
}

func TestValidateTimeOfDay(t *testing.T) {
	t.Parallel()

	valid := []string{"00:00", "09:05", "12:30", "23:59"}
	invalid := []string{"", "24:00", "12:60", "1:30", "12:5", "ab:cd", "12-30", "12:30:00"}

	for _, s := range valid {
		if err := store.ValidateTimeOfDay(s); err != nil {
			t.Errorf("ValidateTimeOfDay(%q) = %v, want nil", s, err)
		}
	}
	for _, s := range invalid {
		if err := store.ValidateTimeOfDay(s); err == nil {
			t.Errorf("ValidateTimeOfDay(%q) = nil, want error", s)
		}
	}
}
