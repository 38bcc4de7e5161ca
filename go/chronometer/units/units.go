package units

import (
	"github.com/pkg/errors"
)

var abbreviations = map[Unit]string{
	Nanosecond:  "ns",
	Microsecond: "μs",
	Millisecond: "ms",
	Second:      "s",
	Minute:      "m",
	Hour:        "h",
	Day:         "d",
	Week:        "w",
}

func nanosecondsPer(u Unit) int64 {
	switch u {
	case Nanosecond:
		return 1
	case Microsecond:
		return 1000
	case Millisecond:
		return 1000 * 1000
	case Second:
		return 1000 * 1000 * 1000
	case Minute:
		return 60 * nanosecondsPer(Second)
	case Hour:
		return 60 * nanosecondsPer(Minute)
	case Day:
		return 24 * nanosecondsPer(Hour)
	case Week:
		return 7 * nanosecondsPer(Day)
	default:
		return 0
	}
}

func parse(s string) (Unit, error) {
	// Accept the ASCII spelling and the micro sign as well as the greek mu.
	if s == "us" || s == "µs" {
		return Microsecond, nil
	}
	for _, u := range All {
		if s == string(u) || s == abbreviations[u] {
			return u, nil
		}
	}
	return None, errors.Wrapf(ErrUnknownUnit, "%q", s)
}
