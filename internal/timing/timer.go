// Package timing provides a scoped timer for reporting how long the
// phases of a conversion take. Purely a side channel for verbose
// output; correctness never depends on it.
package timing

import (
	"fmt"
	"strings"
	"time"
)

// Timer measures the elapsed time of one block of work.
type Timer struct {
	start time.Time
}

// Start returns a running timer.
func Start() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the time since Start.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Summary renders "<info> <elapsed>" or "Elapsed time: <elapsed>" when
// info is empty.
func (t *Timer) Summary(info string) string {
	if info == "" {
		return "Elapsed time: " + FormatDuration(t.Elapsed())
	}

	return info + " " + FormatDuration(t.Elapsed())
}

// FormatDuration renders a duration using hours, minutes, seconds and
// milliseconds as required, largest unit first. Seconds always appear;
// milliseconds appear only when the sub-second remainder is at least
// one millisecond.
func FormatDuration(d time.Duration) string {
	var units []string

	if h := int(d.Hours()); h >= 1 {
		units = append(units, fmt.Sprintf("%dh", h))
	}

	if m := int(d.Minutes()); m >= 1 {
		units = append(units, fmt.Sprintf("%dm", m%60))
	}

	units = append(units, fmt.Sprintf("%ds", int(d.Seconds())%60))

	if ms := int(d.Milliseconds()) % 1000; ms >= 1 {
		units = append(units, fmt.Sprintf("%dms", ms))
	}

	return strings.Join(units, " ")
}
