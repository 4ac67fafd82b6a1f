package hours

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTime is returned when a clock string is not in HH:MM form.
var ErrInvalidTime = errors.New("invalid time of day")

const layout = "15:04"

// TimeOfDay is a wall-clock instant measured from midnight.
type TimeOfDay time.Duration

// At builds a TimeOfDay from an hour and minute.
func At(hour, minute int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// Of extracts the clock reading of t, keeping seconds and nanoseconds.
func Of(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return At(h, m) + TimeOfDay(time.Duration(s)*time.Second+time.Duration(t.Nanosecond()))
}

// Parse reads an "HH:MM" clock string.
func Parse(s string) (TimeOfDay, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return Of(t), nil
}

func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d", int(d/time.Hour), int(d%time.Hour/time.Minute))
}

// Window is the span of the day during which the counter takes orders.
type Window struct {
	Open  TimeOfDay
	Close TimeOfDay
}

// Contains reports whether now falls inside the window, boundaries included.
func (w Window) Contains(now TimeOfDay) bool {
	return IsOpen(now, w.Open, w.Close)
}

func (w Window) String() string {
	return fmt.Sprintf("%s - %s", w.Open, w.Close)
}

// IsOpen reports whether opens <= now <= closes.
func IsOpen(now, opens, closes TimeOfDay) bool {
	return now >= opens && now <= closes
}
