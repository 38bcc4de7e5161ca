// Package instant measures elapsed time with a monotonic clock and reports
// it as signed durations.
//
// An Instant is only meaningful relative to another Instant read from the
// same clock. INSTANTS ARE NOT REAL TIMES.
package instant

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
)

// Instant is a reading of a monotonic clock. The zero value is the
// origin of the clock.
type Instant struct {
	t monotonic.Time
}

// Now returns the current reading of the default monotonic clock.
func Now() Instant {
	return Instant{t: monotonic.Now()}
}

// NowFrom returns the current reading of clock.
func NowFrom(clock monotonic.Clock) Instant {
	return Instant{t: clock.Now()}
}

// FromTime wraps a raw monotonic reading.
func FromTime(t monotonic.Time) Instant {
	return Instant{t: t}
}

// Time returns the wrapped monotonic reading.
func (i Instant) Time() monotonic.Time {
	return i.t
}

// Elapsed returns the time since i according to the default clock.
// Elapsed is negative if i is in the future.
func (i Instant) Elapsed() duration.Duration {
	return Now().Sub(i)
}

// ElapsedFrom works like Elapsed but reads clock.
func (i Instant) ElapsedFrom(clock monotonic.Clock) duration.Duration {
	return NowFrom(clock).Sub(i)
}

// Sub returns i - other, which is negative when other is later than i.
// Sub panics if the difference is too large for a Duration.
func (i Instant) Sub(other Instant) duration.Duration {
	switch i.t.Compare(other.t) {
	case 0:
		return duration.Zero
	case 1:
		return mustSigned(i.t.Sub(other.t))
	default:
		return mustSigned(other.t.Sub(i.t)).Neg()
	}
}

// SubTime works like Sub for a raw monotonic reading.
func (i Instant) SubTime(t monotonic.Time) duration.Duration {
	return i.Sub(Instant{t: t})
}

// CheckedAdd returns i moved by d, which may be negative. ok is false if
// the result falls outside the range of the clock.
func (i Instant) CheckedAdd(d duration.Duration) (result Instant, ok bool) {
	var t monotonic.Time
	switch {
	case d.IsZero():
		return i, true
	case d.IsPositive():
		t, ok = i.t.CheckedAdd(d.UnsignedAbs())
	default:
		t, ok = i.t.CheckedSub(d.UnsignedAbs())
	}
	return Instant{t: t}, ok
}

// CheckedSub returns i moved back by d, which may be negative. ok is false
// if the result falls outside the range of the clock.
func (i Instant) CheckedSub(d duration.Duration) (result Instant, ok bool) {
	var t monotonic.Time
	switch {
	case d.IsZero():
		return i, true
	case d.IsPositive():
		t, ok = i.t.CheckedSub(d.UnsignedAbs())
	default:
		t, ok = i.t.CheckedAdd(d.UnsignedAbs())
	}
	return Instant{t: t}, ok
}

// Add works like CheckedAdd except that it panics instead of returning
// false.
func (i Instant) Add(d duration.Duration) Instant {
	result, ok := i.CheckedAdd(d)
	if !ok {
		panic("instant: overflow when adding duration to instant")
	}
	return result
}

// SubDuration works like CheckedSub except that it panics instead of
// returning false.
func (i Instant) SubDuration(d duration.Duration) Instant {
	result, ok := i.CheckedSub(d)
	if !ok {
		panic("instant: overflow when subtracting duration from instant")
	}
	return result
}

// AddUnsigned returns i advanced by u. AddUnsigned panics if the result
// falls outside the range of the clock.
func (i Instant) AddUnsigned(u monotonic.Duration) Instant {
	return Instant{t: i.t.AddDuration(u)}
}

// SubUnsigned returns i moved back by u. SubUnsigned panics if the result
// falls outside the range of the clock.
func (i Instant) SubUnsigned(u monotonic.Duration) Instant {
	return Instant{t: i.t.SubDuration(u)}
}

// Compare returns -1, 0, or 1 if i is before, the same as, or after other.
func (i Instant) Compare(other Instant) int {
	return i.t.Compare(other.t)
}

// Before returns true if i is before other.
func (i Instant) Before(other Instant) bool {
	return i.t.Before(other.t)
}

// After returns true if i is after other.
func (i Instant) After(other Instant) bool {
	return i.t.After(other.t)
}

// Equal returns true if i and other are the same reading.
func (i Instant) Equal(other Instant) bool {
	return i.t.Equal(other.t)
}

// CompareTime works like Compare for a raw monotonic reading.
func (i Instant) CompareTime(t monotonic.Time) int {
	return i.t.Compare(t)
}

// EqualTime works like Equal for a raw monotonic reading.
func (i Instant) EqualTime(t monotonic.Time) bool {
	return i.t.Equal(t)
}

func mustSigned(u monotonic.Duration) duration.Duration {
	result, err := duration.FromUnsigned(u)
	if err != nil {
		panic("instant: overflow converting difference to duration")
	}
	return result
}
