package duration

import (
	"math"
)

// CheckedAdd returns d + other. ok is false if the result overflows.
func (d Duration) CheckedAdd(other Duration) (result Duration, ok bool) {
	seconds, ok := addInt64(d.seconds, other.seconds)
	if !ok {
		return
	}
	return carry(seconds, d.nanoseconds+other.nanoseconds)
}

// CheckedSub returns d - other. ok is false if the result overflows.
func (d Duration) CheckedSub(other Duration) (result Duration, ok bool) {
	seconds, ok := subInt64(d.seconds, other.seconds)
	if !ok {
		// Zero whole seconds minus the most negative seconds count can
		// still borrow its way down to a representable result.
		nanoseconds := d.nanoseconds - other.nanoseconds
		if d.seconds == 0 && nanoseconds < 0 {
			return newUnchecked(math.MaxInt64, oneBillion+nanoseconds), true
		}
		return
	}
	return carry(seconds, d.nanoseconds-other.nanoseconds)
}

// CheckedMul returns d * n. ok is false if the result overflows.
func (d Duration) CheckedMul(n int32) (result Duration, ok bool) {
	return d.checkedMul(int64(n))
}

// CheckedDiv returns d / n rounded toward zero to the nearest nanosecond.
// ok is false if n is zero or if the result overflows.
func (d Duration) CheckedDiv(n int32) (result Duration, ok bool) {
	return d.checkedDiv(int64(n))
}

// CheckedNeg returns -d. ok is false if d has the most negative seconds
// count.
func (d Duration) CheckedNeg() (result Duration, ok bool) {
	if d.seconds == math.MinInt64 {
		return
	}
	return newUnchecked(-d.seconds, -d.nanoseconds), true
}

// SaturatingAdd returns d + other clamped to the range [Min, Max].
func (d Duration) SaturatingAdd(other Duration) Duration {
	if result, ok := d.CheckedAdd(other); ok {
		return result
	}
	if d.IsPositive() || other.IsPositive() {
		return Max
	}
	return Min
}

// SaturatingSub returns d - other clamped to the range [Min, Max].
func (d Duration) SaturatingSub(other Duration) Duration {
	if result, ok := d.CheckedSub(other); ok {
		return result
	}
	if other.IsNegative() {
		return Max
	}
	return Min
}

// SaturatingMul returns d * n clamped to the range [Min, Max].
func (d Duration) SaturatingMul(n int32) Duration {
	if result, ok := d.checkedMul(int64(n)); ok {
		return result
	}
	if d.IsNegative() == (n < 0) {
		return Max
	}
	return Min
}

// Add returns d + other. Add panics if the result overflows.
func (d Duration) Add(other Duration) Duration {
	result, ok := d.CheckedAdd(other)
	if !ok {
		panic("duration: overflow when adding durations")
	}
	return result
}

// Sub returns d - other. Sub panics if the result overflows.
func (d Duration) Sub(other Duration) Duration {
	result, ok := d.CheckedSub(other)
	if !ok {
		panic("duration: overflow when subtracting durations")
	}
	return result
}

// Neg returns -d. Neg panics if d has the most negative seconds count.
func (d Duration) Neg() Duration {
	result, ok := d.CheckedNeg()
	if !ok {
		panic("duration: overflow when negating duration")
	}
	return result
}

// MulInt returns d * n. MulInt panics if the result overflows.
func (d Duration) MulInt(n int32) Duration {
	return d.mustMul(int64(n))
}

// MulUint returns d * n. MulUint panics if the result overflows.
func (d Duration) MulUint(n uint32) Duration {
	return d.mustMul(int64(n))
}

// MulFloat64 returns d * f truncated to the nanosecond.
// MulFloat64 panics if the result is NaN or overflows.
func (d Duration) MulFloat64(f float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() * f)
}

// MulFloat32 returns d * f truncated to the nanosecond.
// MulFloat32 panics if the result is NaN or overflows.
func (d Duration) MulFloat32(f float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() * f)
}

// DivInt returns d / n rounded toward zero to the nearest nanosecond.
// DivInt panics if n is zero or if the result overflows.
func (d Duration) DivInt(n int32) Duration {
	return d.mustDiv(int64(n))
}

// DivUint returns d / n rounded toward zero to the nearest nanosecond.
// DivUint panics if n is zero.
func (d Duration) DivUint(n uint32) Duration {
	return d.mustDiv(int64(n))
}

// DivFloat64 returns d / f truncated to the nanosecond.
// DivFloat64 panics if the result is NaN or overflows.
func (d Duration) DivFloat64(f float64) Duration {
	return SecondsFloat64(d.AsSecondsFloat64() / f)
}

// DivFloat32 returns d / f truncated to the nanosecond.
// DivFloat32 panics if the result is NaN or overflows.
func (d Duration) DivFloat32(f float32) Duration {
	return SecondsFloat32(d.AsSecondsFloat32() / f)
}

// Ratio returns d / other as a float.
func (d Duration) Ratio(other Duration) float64 {
	return d.AsSecondsFloat64() / other.AsSecondsFloat64()
}

// Sum returns the total of durations. Sum returns Zero when given no
// durations and panics if the total overflows.
func Sum(durations ...Duration) Duration {
	total := Zero
	for _, d := range durations {
		total = total.Add(d)
	}
	return total
}

// carry settles a nanoseconds count of less than two seconds in magnitude
// into seconds so that both agree in sign.
func carry(seconds int64, nanoseconds int32) (result Duration, ok bool) {
	ok = true
	if nanoseconds >= oneBillion || seconds < 0 && nanoseconds > 0 {
		nanoseconds -= oneBillion
		seconds, ok = addInt64(seconds, 1)
	} else if nanoseconds <= -oneBillion || seconds > 0 && nanoseconds < 0 {
		nanoseconds += oneBillion
		seconds, ok = subInt64(seconds, 1)
	}
	if !ok {
		return
	}
	return newUnchecked(seconds, nanoseconds), true
}

// checkedMul requires n to fit in 32 bits, signed or unsigned, so that the
// nanoseconds product fits in 64 bits.
func (d Duration) checkedMul(n int64) (result Duration, ok bool) {
	totalNanos := int64(d.nanoseconds) * n
	extraSeconds := totalNanos / oneBillion
	nanoseconds := int32(totalNanos % oneBillion)
	seconds, ok := mulInt64(d.seconds, n)
	if !ok {
		return
	}
	seconds, ok = addInt64(seconds, extraSeconds)
	if !ok {
		return
	}
	return newUnchecked(seconds, nanoseconds), true
}

// checkedDiv requires n to fit in 32 bits, signed or unsigned.
// The remainder of the seconds is scaled to nanoseconds before dividing
// so the result is exact to the nanosecond.
func (d Duration) checkedDiv(n int64) (result Duration, ok bool) {
	if n == 0 || n == -1 && d.seconds == math.MinInt64 {
		return
	}
	seconds := d.seconds / n
	remainder := d.seconds - seconds*n
	nanoseconds := (remainder*oneBillion + int64(d.nanoseconds)) / n
	return newUnchecked(seconds, int32(nanoseconds)), true
}

func (d Duration) mustMul(n int64) Duration {
	result, ok := d.checkedMul(n)
	if !ok {
		panic("duration: overflow when multiplying duration")
	}
	return result
}

func (d Duration) mustDiv(n int64) Duration {
	if n == 0 {
		panic("duration: division by zero")
	}
	result, ok := d.checkedDiv(n)
	if !ok {
		panic("duration: overflow when dividing duration")
	}
	return result
}
