package duration

import (
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
	"math"
)

// FromUnsigned converts an unsigned duration. FromUnsigned returns
// ErrConversionRange if u has more seconds than a Duration can hold.
func FromUnsigned(u monotonic.Duration) (Duration, error) {
	if u.Seconds() > math.MaxInt64 {
		return Duration{}, ErrConversionRange
	}
	return newUnchecked(int64(u.Seconds()), int32(u.SubsecNanos())), nil
}

// Unsigned converts d to an unsigned duration. Unsigned returns
// ErrConversionRange if d is negative.
func (d Duration) Unsigned() (monotonic.Duration, error) {
	if d.seconds < 0 || d.nanoseconds < 0 {
		return monotonic.Duration{}, ErrConversionRange
	}
	return monotonic.NewDuration(uint64(d.seconds), uint32(d.nanoseconds)), nil
}

// AddUnsigned returns d + u. AddUnsigned panics if u is out of range or
// if the result overflows.
func (d Duration) AddUnsigned(u monotonic.Duration) Duration {
	return d.Add(mustFromUnsigned(u))
}

// SubUnsigned returns d - u. SubUnsigned panics if u is out of range or
// if the result overflows.
func (d Duration) SubUnsigned(u monotonic.Duration) Duration {
	return d.Sub(mustFromUnsigned(u))
}

// UnsignedSub returns u - d. UnsignedSub panics if u is out of range or
// if the result overflows.
func UnsignedSub(u monotonic.Duration, d Duration) Duration {
	return mustFromUnsigned(u).Sub(d)
}

// AddToUnsigned returns u + d as an unsigned duration. AddToUnsigned
// panics if the result is negative or otherwise cannot be represented.
func AddToUnsigned(u monotonic.Duration, d Duration) monotonic.Duration {
	return mustUnsigned(d.AddUnsigned(u))
}

// SubFromUnsigned returns u - d as an unsigned duration. SubFromUnsigned
// panics if the result is negative or otherwise cannot be represented.
func SubFromUnsigned(u monotonic.Duration, d Duration) monotonic.Duration {
	return mustUnsigned(UnsignedSub(u, d))
}

// RatioUnsigned returns d / u as a float.
func (d Duration) RatioUnsigned(u monotonic.Duration) float64 {
	return d.AsSecondsFloat64() / u.AsSecondsFloat64()
}

// UnsignedRatio returns u / d as a float.
func UnsignedRatio(u monotonic.Duration, d Duration) float64 {
	return u.AsSecondsFloat64() / d.AsSecondsFloat64()
}

// EqualUnsigned returns true if d and u are the same length.
func (d Duration) EqualUnsigned(u monotonic.Duration) bool {
	converted, err := FromUnsigned(u)
	return err == nil && converted == d
}

// CompareUnsigned returns -1, 0, or 1 if d is less than, equal to, or
// greater than u. An unsigned duration with more seconds than a Duration
// can hold is always greater.
func (d Duration) CompareUnsigned(u monotonic.Duration) int {
	if u.Seconds() > math.MaxInt64 {
		return -1
	}
	return d.compare(
		newUnchecked(int64(u.Seconds()), int32(u.SubsecNanos())))
}

func mustFromUnsigned(u monotonic.Duration) Duration {
	result, err := FromUnsigned(u)
	if err != nil {
		panic("duration: overflow converting unsigned duration")
	}
	return result
}

func mustUnsigned(d Duration) monotonic.Duration {
	result, err := d.Unsigned()
	if err != nil {
		panic("duration: cannot represent result as an unsigned duration")
	}
	return result
}
