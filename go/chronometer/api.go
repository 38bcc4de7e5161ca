package chronometer

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/instant"
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
)

// TimeFunc runs f and returns how long it took according to the default
// monotonic clock.
func TimeFunc(f func()) duration.Duration {
	return TimeFuncWithClock(monotonic.Default(), f)
}

// TimeFuncWithClock works like TimeFunc but reads clock.
func TimeFuncWithClock(clock monotonic.Clock, f func()) duration.Duration {
	start := instant.NowFrom(clock)
	f()
	return start.ElapsedFrom(clock)
}

// Stopwatch starts a stopwatch on the default monotonic clock and returns
// a function that reports the time elapsed since the start.
// The returned function is safe to call from multiple goroutines.
func Stopwatch() (elapsed func() duration.Duration) {
	return StopwatchWithClock(monotonic.Default())
}

// StopwatchWithClock works like Stopwatch but reads clock.
func StopwatchWithClock(clock monotonic.Clock) (elapsed func() duration.Duration) {
	start := instant.NowFrom(clock)
	return func() duration.Duration {
		return start.ElapsedFrom(clock)
	}
}
