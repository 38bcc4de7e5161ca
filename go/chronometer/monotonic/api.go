// Package monotonic provides readings of a monotonically non-decreasing
// clock along with the unsigned durations that separate them.
//
// Readings are not wall clock times. They are only useful for measuring
// elapsed time within a single process, and the only way to inspect one is
// to subtract another reading from it.
package monotonic

import (
	"github.com/pkg/errors"
	"time"
)

var (
	// FromGoDuration returns this if given a negative duration.
	ErrNegative = errors.New("monotonic: negative duration")
)

// MaxDuration is the largest representable Duration.
var MaxDuration = Duration{secs: 1<<64 - 1, nanos: nanosPerSecond - 1}

// Duration is a non-negative span of time with nanosecond precision.
// The zero value is a zero length span.
type Duration struct {
	secs  uint64
	nanos uint32 // always < 1e9
}

// NewDuration returns a Duration of secs seconds plus nanos nanoseconds.
// nanos may exceed one second, in which case the excess carries into secs.
// NewDuration panics if the carry overflows the seconds count.
func NewDuration(secs uint64, nanos uint32) Duration {
	return newDuration(secs, nanos)
}

// FromNanos returns a Duration of n nanoseconds.
func FromNanos(n uint64) Duration {
	return fromNanos(n)
}

// FromSeconds returns a Duration of n whole seconds.
func FromSeconds(n uint64) Duration {
	return Duration{secs: n}
}

// FromGoDuration converts a go duration. FromGoDuration returns ErrNegative
// if d is negative.
func FromGoDuration(d time.Duration) (Duration, error) {
	if d < 0 {
		return Duration{}, ErrNegative
	}
	return fromNanos(uint64(d)), nil
}

// Seconds returns the number of whole seconds in d.
func (d Duration) Seconds() uint64 {
	return d.secs
}

// SubsecNanos returns the nanoseconds past the whole seconds in d.
// The result is always less than one billion.
func (d Duration) SubsecNanos() uint32 {
	return d.nanos
}

// IsZero returns true if d is zero length.
func (d Duration) IsZero() bool {
	return d.secs == 0 && d.nanos == 0
}

// AsSecondsFloat64 returns d in seconds.
func (d Duration) AsSecondsFloat64() float64 {
	return float64(d.secs) + float64(d.nanos)/nanosPerSecond
}

// AsSecondsFloat32 returns d in seconds.
func (d Duration) AsSecondsFloat32() float32 {
	return float32(d.secs) + float32(d.nanos)/nanosPerSecond
}

// CheckedAdd returns d + other. ok is false if the result overflows.
func (d Duration) CheckedAdd(other Duration) (result Duration, ok bool) {
	return d.checkedAdd(other)
}

// CheckedSub returns d - other. ok is false if other is longer than d.
func (d Duration) CheckedSub(other Duration) (result Duration, ok bool) {
	return d.checkedSub(other)
}

// Add returns d + other. Add panics if the result overflows.
func (d Duration) Add(other Duration) Duration {
	result, ok := d.checkedAdd(other)
	if !ok {
		panic("monotonic: overflow when adding durations")
	}
	return result
}

// Sub returns d - other. Sub panics if other is longer than d.
func (d Duration) Sub(other Duration) Duration {
	result, ok := d.checkedSub(other)
	if !ok {
		panic("monotonic: overflow when subtracting durations")
	}
	return result
}

// Compare returns -1, 0, or 1 if d is shorter than, the same as, or
// longer than other.
func (d Duration) Compare(other Duration) int {
	return d.compare(other)
}

// Less returns true if d is shorter than other.
func (d Duration) Less(other Duration) bool {
	return d.compare(other) < 0
}

// String shows in seconds
func (d Duration) String() string {
	return d.toString()
}

// Time is an opaque reading of a monotonic clock. Readings taken from
// different clocks must not be mixed.
type Time struct {
	ns uint64
}

// Sub returns t - u. Sub panics if u is later than t.
func (t Time) Sub(u Time) Duration {
	if u.ns > t.ns {
		panic("monotonic: reading is later than the one subtracted from")
	}
	return fromNanos(t.ns - u.ns)
}

// CheckedAdd returns t advanced by d. ok is false if the result falls
// outside the range of the clock.
func (t Time) CheckedAdd(d Duration) (result Time, ok bool) {
	return t.checkedAdd(d)
}

// CheckedSub returns t moved back by d. ok is false if the result
// falls before the origin of the clock.
func (t Time) CheckedSub(d Duration) (result Time, ok bool) {
	return t.checkedSub(d)
}

// AddDuration works like CheckedAdd except that it panics instead of
// returning false.
func (t Time) AddDuration(d Duration) Time {
	result, ok := t.checkedAdd(d)
	if !ok {
		panic("monotonic: overflow when adding duration to reading")
	}
	return result
}

// SubDuration works like CheckedSub except that it panics instead of
// returning false.
func (t Time) SubDuration(d Duration) Time {
	result, ok := t.checkedSub(d)
	if !ok {
		panic("monotonic: overflow when subtracting duration from reading")
	}
	return result
}

// Compare returns -1, 0, or 1 if t is before, the same as, or after u.
func (t Time) Compare(u Time) int {
	switch {
	case t.ns < u.ns:
		return -1
	case t.ns > u.ns:
		return 1
	default:
		return 0
	}
}

// Before returns true if t is before u.
func (t Time) Before(u Time) bool {
	return t.ns < u.ns
}

// After returns true if t is after u.
func (t Time) After(u Time) bool {
	return t.ns > u.ns
}

// Equal returns true if t and u are the same reading.
func (t Time) Equal(u Time) bool {
	return t.ns == u.ns
}

// Clock is a source of monotonic readings.
type Clock interface {
	// Now returns the current reading. Successive calls never go backwards.
	Now() Time
}

// System reads the monotonic clock of the operating system.
type System struct{}

// Now returns the current reading of the system monotonic clock.
func (System) Now() Time {
	return systemNow()
}

// Manual is a Clock that only moves when told to. Tests use it to get
// deterministic readings. A Manual instance is safe to use from multiple
// goroutines.
type Manual struct {
	manual
}

// NewManual returns a Manual clock reading the origin.
func NewManual() *Manual {
	return &Manual{}
}

// Now returns the current reading of m.
func (m *Manual) Now() Time {
	return m.now()
}

// Advance moves m forward by d. Advance panics if the reading would
// overflow.
func (m *Manual) Advance(d Duration) {
	m.advance(d)
}

// Set moves m to t. Set panics if t is before the current reading of m.
func (m *Manual) Set(t Time) {
	m.set(t)
}

// Default returns the clock that Now readings come from. Unless changed
// with SetDefault, it is System.
func Default() Clock {
	return defaultClock()
}

// SetDefault makes c the default clock and returns a function that
// restores the previous one.
func SetDefault(c Clock) (restore func()) {
	return setDefaultClock(c)
}

// Now returns the current reading of the default clock.
func Now() Time {
	return defaultClock().Now()
}
