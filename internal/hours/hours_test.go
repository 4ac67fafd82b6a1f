package hours

import (
	"errors"
	"testing"
	"time"
)

func TestIsOpen(t *testing.T) {
	opens, closes := At(8, 0), At(22, 0)

	tests := []struct {
		name string
		now  TimeOfDay
		want bool
	}{
		{"opening instant", At(8, 0), true},
		{"closing instant", At(22, 0), true},
		{"midday", At(13, 30), true},
		{"minute before opening", At(7, 59), false},
		{"minute after closing", At(22, 1), false},
		{"midnight", At(0, 0), false},
		{"seconds past closing", At(22, 0) + TimeOfDay(30*time.Second), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOpen(tt.now, opens, closes); got != tt.want {
				t.Errorf("IsOpen(%s, %s, %s) = %v, want %v", tt.now, opens, closes, got, tt.want)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	w := Window{Open: At(8, 0), Close: At(22, 0)}

	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.Local)
	if !w.Contains(Of(day.Add(8 * time.Hour))) {
		t.Error("expected 08:00 to be inside the window")
	}
	if w.Contains(Of(day.Add(22*time.Hour + time.Nanosecond))) {
		t.Error("expected 22:00 plus one nanosecond to be outside the window")
	}
	if got := w.String(); got != "08:00 - 22:00" {
		t.Errorf("String() = %q, want %q", got, "08:00 - 22:00")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  TimeOfDay
		ok    bool
	}{
		{"08:00", At(8, 0), true},
		{"22:00", At(22, 0), true},
		{"07:59", At(7, 59), true},
		{"8am", 0, false},
		{"25:00", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.ok != (err == nil) {
				t.Fatalf("Parse(%q): got err=%v, want ok=%v", tt.input, err, tt.ok)
			}
			if !tt.ok {
				if !errors.Is(err, ErrInvalidTime) {
					t.Errorf("Parse(%q): got %v, want ErrInvalidTime", tt.input, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestOfKeepsSeconds(t *testing.T) {
	ts := time.Date(2026, 10, 19, 14, 5, 9, 0, time.UTC)
	want := At(14, 5) + TimeOfDay(9*time.Second)
	if got := Of(ts); got != want {
		t.Errorf("Of(%v) = %v, want %v", ts, time.Duration(got), time.Duration(want))
	}
}
