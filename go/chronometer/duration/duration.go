package duration

import (
	"fmt"
	"github.com/Symantec/chronometer/go/chronometer/units"
	"github.com/pkg/errors"
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	oneThousand = 1000
	oneMillion  = 1000000
	oneBillion  = 1000000000

	// 2^63, the first float past the range of int64
	floatSecondsLimit = 9223372036854775808.0
)

var (
	secondsPerMinute = units.SecondsPer(units.Minute)
	secondsPerHour   = units.SecondsPer(units.Hour)
	secondsPerDay    = units.SecondsPer(units.Day)
	secondsPerWeek   = units.SecondsPer(units.Week)

	bigBillion = big.NewInt(oneBillion)
)

// newUnchecked trusts the caller that seconds and nanoseconds agree in
// sign and that nanoseconds is less than a second in magnitude.
func newUnchecked(seconds int64, nanoseconds int32) Duration {
	return Duration{seconds: seconds, nanoseconds: nanoseconds}
}

func newDuration(seconds int64, nanoseconds int32) Duration {
	seconds += int64(nanoseconds / oneBillion)
	nanoseconds %= oneBillion
	if seconds > 0 && nanoseconds < 0 {
		seconds--
		nanoseconds += oneBillion
	} else if seconds < 0 && nanoseconds > 0 {
		seconds++
		nanoseconds -= oneBillion
	}
	return newUnchecked(seconds, nanoseconds)
}

func checkedUnits(n, secondsPerUnit int64) (Duration, bool) {
	seconds, ok := mulInt64(n, secondsPerUnit)
	if !ok {
		return Duration{}, false
	}
	return Seconds(seconds), true
}

func nanosecondsBig(n *big.Int) (Duration, error) {
	quo, rem := new(big.Int).QuoRem(n, bigBillion, new(big.Int))
	if !quo.IsInt64() {
		return Duration{}, ErrConversionRange
	}
	return newUnchecked(quo.Int64(), int32(rem.Int64())), nil
}

func checkedSecondsFloat64(seconds float64) (Duration, bool) {
	if math.IsNaN(seconds) ||
		seconds >= floatSecondsLimit || seconds < -floatSecondsLimit {
		return Duration{}, false
	}
	frac := math.Mod(seconds, 1)
	// frac*1e9 can round up to a full second so let New carry it.
	return newDuration(int64(seconds), int32(frac*oneBillion)), true
}

func checkedSecondsFloat32(seconds float32) (Duration, bool) {
	wide := float64(seconds)
	if math.IsNaN(wide) ||
		wide >= floatSecondsLimit || wide < -floatSecondsLimit {
		return Duration{}, false
	}
	frac := float32(math.Mod(wide, 1))
	return newDuration(int64(seconds), int32(float32(frac*oneBillion))), true
}

func saturateFloat(seconds float64) Duration {
	switch {
	case math.IsNaN(seconds):
		return Zero
	case seconds < 0:
		return Min
	default:
		return Max
	}
}

func panicFloat(isNaN bool) {
	if isNaN {
		panic("duration: NaN passed where seconds expected")
	}
	panic("duration: overflow constructing duration from seconds")
}

func fromGoDuration(d time.Duration) Duration {
	return newUnchecked(
		int64(d/time.Second), int32((d%time.Second)/time.Nanosecond))
}

func (d Duration) asGoDuration() (time.Duration, error) {
	nanos, ok := mulInt64(d.seconds, oneBillion)
	if ok {
		nanos, ok = addInt64(nanos, int64(d.nanoseconds))
	}
	if !ok {
		return 0, ErrConversionRange
	}
	return time.Duration(nanos), nil
}

func (d Duration) abs() Duration {
	if d.seconds == math.MinInt64 {
		return Max
	}
	seconds, nanoseconds := d.seconds, d.nanoseconds
	if seconds < 0 {
		seconds = -seconds
	}
	if nanoseconds < 0 {
		nanoseconds = -nanoseconds
	}
	return newUnchecked(seconds, nanoseconds)
}

// whole returns d in a unit of which there are perSecond in a second
// and which is nanosPer nanoseconds long.
func (d Duration) whole(perSecond, nanosPer int64) *big.Int {
	result := big.NewInt(d.seconds)
	result.Mul(result, big.NewInt(perSecond))
	return result.Add(result, big.NewInt(int64(d.nanoseconds)/nanosPer))
}

func (d Duration) compare(other Duration) int {
	switch {
	case d.seconds < other.seconds:
		return -1
	case d.seconds > other.seconds:
		return 1
	case d.nanoseconds < other.nanoseconds:
		return -1
	case d.nanoseconds > other.nanoseconds:
		return 1
	default:
		return 0
	}
}

// scaled returns the magnitude of d in unit as a fixed point number with
// nine decimal places.
func (d Duration) scaled(unit units.Unit) *big.Int {
	magnitude := d.UnsignedAbs()
	result := new(big.Int).SetUint64(magnitude.Seconds())
	result.Mul(result, bigBillion)
	result.Add(result, big.NewInt(int64(magnitude.SubsecNanos())))
	if !units.IsTime(unit) || unit == units.Second {
		return result
	}
	result.Mul(result, bigBillion)
	return result.Quo(result, big.NewInt(units.NanosecondsPer(unit)))
}

func (d Duration) stringUsingUnits(unit units.Unit) string {
	whole, frac := new(big.Int).QuoRem(
		d.scaled(unit), bigBillion, new(big.Int))
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%s%s.%09d", sign, whole.String(), frac.Int64())
}

func (d Duration) prettyFormat() string {
	magnitude := d.UnsignedAbs()
	secs := magnitude.Seconds()
	nanos := magnitude.SubsecNanos()
	sign := ""
	if d.IsNegative() {
		sign = "-"
	}
	s := units.Second.Abbreviation()
	m := units.Minute.Abbreviation()
	h := units.Hour.Abbreviation()
	switch {
	case secs == 0 && nanos < 10000:
		return fmt.Sprintf("%s%d%s", sign, nanos, units.Nanosecond.Abbreviation())
	case secs == 0 && nanos < 10000000:
		return fmt.Sprintf(
			"%s%d%s", sign, nanos/1000, units.Microsecond.Abbreviation())
	case secs == 0:
		return fmt.Sprintf(
			"%s%d%s", sign, nanos/1000000, units.Millisecond.Abbreviation())
	case secs < 60:
		return fmt.Sprintf("%s%d.%03d%s", sign, secs, nanos/1000000, s)
	case secs < 60*60:
		return fmt.Sprintf(
			"%s%d%s %d.%03d%s",
			sign,
			secs/60, m,
			secs%60,
			nanos/1000000, s)
	case secs < 24*60*60:
		return fmt.Sprintf(
			"%s%d%s %d%s %d%s",
			sign,
			secs/(60*60), h,
			(secs%(60*60))/60, m,
			secs%60, s)
	default:
		return fmt.Sprintf(
			"%s%d%s %d%s %d%s %d%s",
			sign,
			secs/(24*60*60), units.Day.Abbreviation(),
			(secs%(24*60*60))/(60*60), h,
			(secs%(60*60))/60, m,
			secs%60, s)

	}
}

func parseWithUnit(str string, unit units.Unit) (result Duration, err error) {
	original := str
	var bNegative bool
	if strings.HasPrefix(str, "-") {
		bNegative = true
		str = str[1:]
	}
	number := strings.SplitN(str, ".", 2)
	whole, err := strconv.ParseUint(number[0], 10, 64)
	if err != nil {
		err = errors.Wrapf(ErrInvalidFormat, "%q", original)
		return
	}
	var frac uint64
	if len(number) == 2 {
		fracStr := number[1]
		if !isDigits(fracStr) {
			err = errors.Wrapf(ErrInvalidFormat, "%q", original)
			return
		}
		if len(fracStr) < 9 {
			fracStr = fracStr + strings.Repeat("0", 9-len(fracStr))
		} else {
			fracStr = fracStr[:9]
		}
		frac, err = strconv.ParseUint(fracStr, 10, 32)
		if err != nil {
			err = errors.Wrapf(ErrInvalidFormat, "%q", original)
			return
		}
	}
	nanos := new(big.Int).SetUint64(whole)
	nanos.Mul(nanos, bigBillion)
	nanos.Add(nanos, new(big.Int).SetUint64(frac))
	if units.IsTime(unit) && unit != units.Second {
		nanos.Mul(nanos, big.NewInt(units.NanosecondsPer(unit)))
		nanos.Quo(nanos, bigBillion)
	}
	if bNegative {
		nanos.Neg(nanos)
	}
	result, err = nanosecondsBig(nanos)
	if err != nil {
		err = errors.Wrapf(err, "%q", original)
	}
	return
}

// isDigits reports whether s holds only the ASCII digits 0 through 9.
func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func unsignedAbs64(x int64) uint64 {
	if x < 0 {
		return uint64(^x) + 1
	}
	return uint64(x)
}

func unsignedAbs32(x int32) uint32 {
	if x < 0 {
		return uint32(^x) + 1
	}
	return uint32(x)
}

func addInt64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

func subInt64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return c, false
	}
	return c, true
}

func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return c, false
	}
	return c, true
}
