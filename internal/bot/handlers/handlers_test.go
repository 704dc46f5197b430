package handlers

import (
	"errors"
	"testing"
)

func TestParseReminderInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      string
		wantTime   string
		wantNumber int
		wantErr    bool
	}{
		{
			name:       "well formed",
			input:      "07:30 1",
			wantTime:   "07:30",
			wantNumber: 1,
		},
		{
			name:       "extra whitespace",
			input:      "  07:30   2  ",
			wantTime:   "07:30",
			wantNumber: 2,
		},
		{
			name:       "trailing junk ignored",
			input:      "07:30 1 please",
			wantTime:   "07:30",
			wantNumber: 1,
		},
		{
			name:    "missing habit number",
			input:   "07:30",
			wantErr: true,
		},
		{
			name:    "non-numeric habit number",
			input:   "07:30 one",
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			gotTime, gotNumber, err := parseReminderInput(tc.input)
			if tc.wantErr {
				if !errors.Is(err, errBadReminderFormat) {
					t.Fatalf("parseReminderInput(%q) error = %v, want errBadReminderFormat", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseReminderInput(%q) returned error: %v", tc.input, err)
			}
			if gotTime != tc.wantTime || gotNumber != tc.wantNumber {
				t.Errorf("parseReminderInput(%q) = (%q, %d), want (%q, %d)",
					tc.input, gotTime, gotNumber, tc.wantTime, tc.wantNumber)
			}
		})
	}
}

func TestFormatNumberedList(t *testing.T) {
	t.Parallel()

	got := formatNumberedList([]string{"read", "run"})
	want := "1. read\n2. run"
	if got != want {
		t.Errorf("formatNumberedList() = %q, want %q", got, want)
	}
}

func TestPromptRegistry(t *testing.T) {
	t.Parallel()

	p := NewPromptRegistry()

	if _, ok := p.Take(1); ok {
		t.Error("Take() on empty registry reported a pending prompt")
	}

	p.Await(1, PromptHabit)
	kind, ok := p.Take(1)
	if !ok || kind != PromptHabit {
		t.Errorf("Take(1) = (%v, %v), want (PromptHabit, true)", kind, ok)
	}
	if _, ok := p.Take(1); ok {
		t.Error("Take() must clear the pending prompt")
	}

	p.Await(2, PromptReminder)
	p.Clear(2)
	if _, ok := p.Take(2); ok {
		t.Error("Clear() must drop the pending prompt")
	}
}
