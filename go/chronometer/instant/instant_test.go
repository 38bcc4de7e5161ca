package instant_test

import (
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/instant"
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestSub(t *testing.T) {
	clock := monotonic.NewManual()
	earlier := instant.NowFrom(clock)
	clock.Advance(monotonic.NewDuration(1, 500000000))
	later := instant.NowFrom(clock)

	assert.Equal(t, duration.New(1, 500000000), later.Sub(earlier))
	assert.Equal(t, duration.New(-1, -500000000), earlier.Sub(later))
	assert.Equal(t, duration.Zero, later.Sub(later))
	assert.Equal(t, duration.New(1, 500000000), later.SubTime(earlier.Time()))
}

func TestElapsed(t *testing.T) {
	clock := monotonic.NewManual()
	clock.Advance(monotonic.FromSeconds(100))
	start := instant.NowFrom(clock)
	clock.Advance(monotonic.FromSeconds(5))
	assert.Equal(t, duration.Seconds(5), start.ElapsedFrom(clock))

	future := start.Add(duration.Seconds(10))
	assert.Equal(t, duration.Seconds(-5), future.ElapsedFrom(clock))

	restore := monotonic.SetDefault(clock)
	defer restore()
	assert.Equal(t, duration.Seconds(5), start.Elapsed())
}

func TestElapsedSystemClock(t *testing.T) {
	start := instant.Now()
	assert.False(t, start.Elapsed().IsNegative())
	assert.False(t, instant.Now().Before(start))
}

func TestCheckedAddSub(t *testing.T) {
	origin := instant.FromTime(monotonic.Time{})
	_, ok := origin.CheckedSub(duration.Nanosecond)
	assert.False(t, ok)
	_, ok = origin.CheckedAdd(duration.Nanoseconds(-1))
	assert.False(t, ok)
	same, ok := origin.CheckedAdd(duration.Zero)
	assert.True(t, ok)
	assert.True(t, same.Equal(origin))
	same, ok = origin.CheckedSub(duration.Zero)
	assert.True(t, ok)
	assert.True(t, same.Equal(origin))

	later, ok := origin.CheckedAdd(duration.Seconds(3))
	assert.True(t, ok)
	assert.Equal(t, duration.Seconds(3), later.Sub(origin))
	back, ok := later.CheckedSub(duration.Seconds(3))
	assert.True(t, ok)
	assert.True(t, back.Equal(origin))
	back, ok = later.CheckedAdd(duration.Seconds(-3))
	assert.True(t, ok)
	assert.True(t, back.Equal(origin))
	forward, ok := origin.CheckedSub(duration.Seconds(-3))
	assert.True(t, ok)
	assert.True(t, forward.Equal(later))

	nearMax := instant.FromTime(monotonic.Time{}.AddDuration(
		monotonic.FromNanos(math.MaxUint64)))
	_, ok = nearMax.CheckedAdd(duration.Nanosecond)
	assert.False(t, ok)
	_, ok = origin.CheckedAdd(duration.Max)
	assert.False(t, ok)
	_, ok = later.CheckedSub(duration.Min)
	assert.False(t, ok)
}

func TestPanickingMoves(t *testing.T) {
	origin := instant.FromTime(monotonic.Time{})
	assert.PanicsWithValue(t, "instant: overflow when subtracting duration from instant", func() {
		origin.SubDuration(duration.Nanosecond)
	})
	assert.PanicsWithValue(t, "instant: overflow when adding duration to instant", func() {
		origin.Add(duration.Max)
	})
	later := origin.AddUnsigned(monotonic.FromSeconds(2))
	assert.Equal(t, duration.Seconds(2), later.Sub(origin))
	assert.True(t, later.SubUnsigned(monotonic.FromSeconds(2)).Equal(origin))
	assert.True(t, later.SubDuration(duration.Seconds(2)).Equal(origin))
	assert.Panics(t, func() { origin.SubUnsigned(monotonic.FromNanos(1)) })
}

func TestCompare(t *testing.T) {
	clock := monotonic.NewManual()
	first := instant.NowFrom(clock)
	clock.Advance(monotonic.FromNanos(1))
	second := instant.NowFrom(clock)

	assert.True(t, first.Before(second))
	assert.True(t, second.After(first))
	assert.False(t, first.Equal(second))
	assert.Equal(t, -1, first.Compare(second))
	assert.Equal(t, 1, second.Compare(first))
	assert.Equal(t, 0, first.Compare(first))
	assert.Equal(t, 1, second.CompareTime(first.Time()))
	assert.True(t, second.EqualTime(clock.Now()))
}
