// Package units contains the units of time understood by chronometer.
package units

import (
	"github.com/pkg/errors"
)

// Unit represents a unit of time
type Unit string

const (
	None        Unit = "None"
	Nanosecond  Unit = "Nanoseconds"
	Microsecond Unit = "Microseconds"
	Millisecond Unit = "Milliseconds"
	Second      Unit = "Seconds"
	Minute      Unit = "Minutes"
	Hour        Unit = "Hours"
	Day         Unit = "Days"
	Week        Unit = "Weeks"
)

var (
	// Parse returns this if given string names no unit.
	ErrUnknownUnit = errors.New("units: unknown unit")
)

// All lists the time units from smallest to largest.
var All = []Unit{
	Nanosecond, Microsecond, Millisecond, Second, Minute, Hour, Day, Week}

// IsTime returns true if u is a unit of time.
func IsTime(u Unit) bool {
	return nanosecondsPer(u) != 0
}

// NanosecondsPer returns the exact length of u in nanoseconds.
// For example NanosecondsPer(Millisecond) returns 1000000.
// Returns 0 if u is not a time unit.
func NanosecondsPer(u Unit) int64 {
	return nanosecondsPer(u)
}

// SecondsPer returns the exact length of u in whole seconds.
// For example SecondsPer(Day) returns 86400.
// Returns 0 if u is shorter than a second or not a time unit.
func SecondsPer(u Unit) int64 {
	return nanosecondsPer(u) / nanosecondsPer(Second)
}

// Returns the conversion factor between seconds and u.
// For example FromSeconds(Millisecond) returns 1000.
// Returns 1.0 if u is not a time unit.
func FromSeconds(u Unit) float64 {
	if !IsTime(u) {
		return 1.0
	}
	return float64(nanosecondsPer(Second)) / float64(nanosecondsPer(u))
}

// Abbreviation returns the short suffix for u such as "ms" or "μs".
// Returns the empty string if u is not a time unit.
func (u Unit) Abbreviation() string {
	return abbreviations[u]
}

// Parse returns the unit named by s. s may be either the full unit name
// such as "Milliseconds" or an abbreviation such as "ms".
func Parse(s string) (Unit, error) {
	return parse(s)
}
