package utils

import "time"

// Stopwatch measures the wall-clock time since it was started.
type Stopwatch struct {
	start time.Time
}

// StartStopwatch returns a running stopwatch.
func StartStopwatch() Stopwatch {
	return Stopwatch{start: time.Now()}
}

// Elapsed returns the time since the stopwatch was started.
func (s Stopwatch) Elapsed() time.Duration {
	return time.Since(s.start)
}
