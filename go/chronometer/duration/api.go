// Package duration provides a signed span of time with nanosecond precision.
//
// A Duration is a whole number of seconds plus a fraction of a second in
// nanoseconds. For negative durations, both parts are negative. Unlike
// time.Duration, which tops out near 292 years, a Duration spans the full
// range of a 64 bit seconds count.
//
// A day is always exactly 86400 seconds and a week exactly 7 days.
// Duration knows nothing about calendars, leap seconds, or time zones.
//
// Arithmetic comes in three flavors. The Checked methods report overflow
// by returning false. The Saturating methods clamp to Min or Max. The
// remaining methods such as Add and MulInt panic on overflow.
package duration

import (
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
	"github.com/Symantec/chronometer/go/chronometer/units"
	"github.com/pkg/errors"
	"math"
	"math/big"
	"time"
)

var (
	// Returned when converting to or from a type that cannot hold the
	// value being converted.
	ErrConversionRange = errors.New("duration: value out of range for conversion")
	// Parse returns this if given string is not of the form S.NNNNNNNNN
	ErrInvalidFormat = errors.New("duration: invalid format")
)

// Duration represents a signed span of time.
// The zero value is a zero length span.
// Duration values can be compared with ==.
type Duration struct {
	seconds     int64
	nanoseconds int32 // always -1e9 < nanoseconds < 1e9
}

var (
	Zero        = Duration{}
	Nanosecond  = Nanoseconds(1)
	Microsecond = Microseconds(1)
	Millisecond = Milliseconds(1)
	Second      = Seconds(1)
	Minute      = Minutes(1)
	Hour        = Hours(1)
	Day         = Days(1)
	Week        = Weeks(1)

	// The most negative Duration. Subtracting any positive duration from
	// Min overflows.
	Min = newUnchecked(math.MinInt64, -(oneBillion - 1))
	// The most positive Duration. Adding any positive duration to Max
	// overflows.
	Max = newUnchecked(math.MaxInt64, oneBillion-1)
)

// New returns a Duration of seconds plus nanoseconds. If nanoseconds is at
// least one second in magnitude, the excess carries into the seconds.
// seconds and nanoseconds may have opposite signs, in which case New
// borrows from seconds so that the parts of the result agree in sign.
// For example New(-1, 500000000) is half a second before zero.
func New(seconds int64, nanoseconds int32) Duration {
	return newDuration(seconds, nanoseconds)
}

// Weeks returns a Duration of n weeks. Weeks does not check for overflow;
// use CheckedWeeks when n is not known to be small enough.
func Weeks(n int64) Duration {
	return Seconds(n * secondsPerWeek)
}

// Days returns a Duration of n days. Days does not check for overflow;
// use CheckedDays when n is not known to be small enough.
func Days(n int64) Duration {
	return Seconds(n * secondsPerDay)
}

// Hours returns a Duration of n hours. Hours does not check for overflow;
// use CheckedHours when n is not known to be small enough.
func Hours(n int64) Duration {
	return Seconds(n * secondsPerHour)
}

// Minutes returns a Duration of n minutes. Minutes does not check for
// overflow; use CheckedMinutes when n is not known to be small enough.
func Minutes(n int64) Duration {
	return Seconds(n * secondsPerMinute)
}

// Seconds returns a Duration of n seconds.
func Seconds(n int64) Duration {
	return newUnchecked(n, 0)
}

// CheckedWeeks works like Weeks except that it returns false on overflow.
func CheckedWeeks(n int64) (Duration, bool) {
	return checkedUnits(n, secondsPerWeek)
}

// CheckedDays works like Days except that it returns false on overflow.
func CheckedDays(n int64) (Duration, bool) {
	return checkedUnits(n, secondsPerDay)
}

// CheckedHours works like Hours except that it returns false on overflow.
func CheckedHours(n int64) (Duration, bool) {
	return checkedUnits(n, secondsPerHour)
}

// CheckedMinutes works like Minutes except that it returns false on
// overflow.
func CheckedMinutes(n int64) (Duration, bool) {
	return checkedUnits(n, secondsPerMinute)
}

// Milliseconds returns a Duration of n milliseconds.
func Milliseconds(n int64) Duration {
	return newUnchecked(n/oneThousand, int32(n%oneThousand)*oneMillion)
}

// Microseconds returns a Duration of n microseconds.
func Microseconds(n int64) Duration {
	return newUnchecked(n/oneMillion, int32(n%oneMillion)*oneThousand)
}

// Nanoseconds returns a Duration of n nanoseconds.
func Nanoseconds(n int64) Duration {
	return newUnchecked(n/oneBillion, int32(n%oneBillion))
}

// NanosecondsBig returns a Duration of n nanoseconds. NanosecondsBig
// returns ErrConversionRange if n is outside the range of Duration.
func NanosecondsBig(n *big.Int) (Duration, error) {
	return nanosecondsBig(n)
}

// SecondsFloat64 returns a Duration of seconds. Both the whole seconds and
// the fraction of a second truncate toward zero.
// SecondsFloat64 panics if seconds is NaN or outside the range of Duration.
func SecondsFloat64(seconds float64) Duration {
	result, ok := checkedSecondsFloat64(seconds)
	if !ok {
		panicFloat(math.IsNaN(seconds))
	}
	return result
}

// SecondsFloat32 works like SecondsFloat64 for float32 values.
func SecondsFloat32(seconds float32) Duration {
	result, ok := checkedSecondsFloat32(seconds)
	if !ok {
		panicFloat(seconds != seconds)
	}
	return result
}

// CheckedSecondsFloat64 works like SecondsFloat64 except that it returns
// false instead of panicking.
func CheckedSecondsFloat64(seconds float64) (Duration, bool) {
	return checkedSecondsFloat64(seconds)
}

// CheckedSecondsFloat32 works like SecondsFloat32 except that it returns
// false instead of panicking.
func CheckedSecondsFloat32(seconds float32) (Duration, bool) {
	return checkedSecondsFloat32(seconds)
}

// SaturatingSecondsFloat64 works like SecondsFloat64 except that values
// out of range become Min or Max and NaN becomes Zero.
func SaturatingSecondsFloat64(seconds float64) Duration {
	if result, ok := checkedSecondsFloat64(seconds); ok {
		return result
	}
	return saturateFloat(seconds)
}

// SaturatingSecondsFloat32 works like SaturatingSecondsFloat64 for float32
// values.
func SaturatingSecondsFloat32(seconds float32) Duration {
	if result, ok := checkedSecondsFloat32(seconds); ok {
		return result
	}
	return saturateFloat(float64(seconds))
}

// FromGoDuration converts a go duration.
func FromGoDuration(d time.Duration) Duration {
	return fromGoDuration(d)
}

// AsGoDuration converts this duration to a go duration.
// AsGoDuration returns ErrConversionRange if d is too long for a go
// duration.
func (d Duration) AsGoDuration() (time.Duration, error) {
	return d.asGoDuration()
}

// IsZero returns true if d is zero length.
func (d Duration) IsZero() bool {
	return d.seconds == 0 && d.nanoseconds == 0
}

// IsNegative returns true if this duration is negative.
func (d Duration) IsNegative() bool {
	return d.seconds < 0 || d.nanoseconds < 0
}

// IsPositive returns true if this duration is positive.
func (d Duration) IsPositive() bool {
	return d.seconds > 0 || d.nanoseconds > 0
}

// Abs returns the absolute value of d. Abs returns Max when d has the most
// negative seconds count since its absolute value does not fit.
func (d Duration) Abs() Duration {
	return d.abs()
}

// UnsignedAbs returns the absolute value of d as an unsigned duration.
// Unlike Abs, UnsignedAbs never saturates.
func (d Duration) UnsignedAbs() monotonic.Duration {
	return monotonic.NewDuration(
		unsignedAbs64(d.seconds), unsignedAbs32(d.nanoseconds))
}

// WholeWeeks returns the number of whole weeks in d rounded toward zero.
func (d Duration) WholeWeeks() int64 {
	return d.seconds / secondsPerWeek
}

// WholeDays returns the number of whole days in d rounded toward zero.
func (d Duration) WholeDays() int64 {
	return d.seconds / secondsPerDay
}

// WholeHours returns the number of whole hours in d rounded toward zero.
func (d Duration) WholeHours() int64 {
	return d.seconds / secondsPerHour
}

// WholeMinutes returns the number of whole minutes in d rounded toward zero.
// For example, minus 90 seconds is minus 1 whole minute.
func (d Duration) WholeMinutes() int64 {
	return d.seconds / secondsPerMinute
}

// WholeSeconds returns the number of whole seconds in d.
func (d Duration) WholeSeconds() int64 {
	return d.seconds
}

// WholeMilliseconds returns the number of whole milliseconds in d.
func (d Duration) WholeMilliseconds() *big.Int {
	return d.whole(oneThousand, oneMillion)
}

// WholeMicroseconds returns the number of whole microseconds in d.
func (d Duration) WholeMicroseconds() *big.Int {
	return d.whole(oneMillion, oneThousand)
}

// WholeNanoseconds returns the number of nanoseconds in d.
func (d Duration) WholeNanoseconds() *big.Int {
	return d.whole(oneBillion, 1)
}

// SubsecMilliseconds returns the milliseconds past the whole seconds of d.
// The result is always strictly between -1000 and 1000.
func (d Duration) SubsecMilliseconds() int16 {
	return int16(d.nanoseconds / oneMillion)
}

// SubsecMicroseconds returns the microseconds past the whole seconds of d.
// The result is always strictly between -1e6 and 1e6.
func (d Duration) SubsecMicroseconds() int32 {
	return d.nanoseconds / oneThousand
}

// SubsecNanoseconds returns the nanoseconds past the whole seconds of d.
// The result is always strictly between -1e9 and 1e9.
func (d Duration) SubsecNanoseconds() int32 {
	return d.nanoseconds
}

// AsSecondsFloat64 returns this duration in seconds.
func (d Duration) AsSecondsFloat64() float64 {
	return float64(d.seconds) + float64(d.nanoseconds)/oneBillion
}

// AsSecondsFloat32 returns this duration in seconds.
func (d Duration) AsSecondsFloat32() float32 {
	return float32(d.seconds) + float32(d.nanoseconds)/oneBillion
}

// Compare returns -1, 0, or 1 if d is less than, equal to, or greater
// than other.
func (d Duration) Compare(other Duration) int {
	return d.compare(other)
}

// Less returns true if d is less than other.
func (d Duration) Less(other Duration) bool {
	return d.compare(other) < 0
}

// String shows in seconds e.g "-53.200000000"
func (d Duration) String() string {
	return d.stringUsingUnits(units.Second)
}

// StringUsingUnits shows in specified time unit.
// If unit not a time, shows in seconds.
func (d Duration) StringUsingUnits(unit units.Unit) string {
	return d.stringUsingUnits(unit)
}

// PrettyFormat pretty formats this duration e.g "2d 7h 33m 20s".
// Negative durations get a leading minus sign.
func (d Duration) PrettyFormat() string {
	return d.prettyFormat()
}

// Parse parses a duration in seconds of the form produced by String.
func Parse(str string) (Duration, error) {
	return parseWithUnit(str, units.Second)
}

// ParseWithUnit works like Parse except that str is in the given unit.
// ParseWithUnit("8078.211436", units.Millisecond) is 8.078211436 seconds.
// If unit not a time, str is in seconds.
func ParseWithUnit(str string, unit units.Unit) (Duration, error) {
	return parseWithUnit(str, unit)
}
