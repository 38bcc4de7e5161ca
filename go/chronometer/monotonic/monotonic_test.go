package monotonic

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"sync"
	"testing"
	"time"
)

func TestDuration(t *testing.T) {
	assert.Equal(t, Duration{secs: 3, nanos: 500000000}, NewDuration(1, 2500000000))
	assert.Equal(t, Duration{secs: 1, nanos: 5}, FromNanos(1000000005))
	assert.Equal(t, Duration{secs: 7}, FromSeconds(7))
	assert.True(t, Duration{}.IsZero())
	assert.False(t, FromNanos(1).IsZero())
	assert.Panics(t, func() { NewDuration(math.MaxUint64, 1000000000) })
	assert.Equal(t, "2.000000007", NewDuration(2, 7).String())
	assert.Equal(t, 2.5, NewDuration(2, 500000000).AsSecondsFloat64())
	assert.Equal(t, float32(2.5), NewDuration(2, 500000000).AsSecondsFloat32())

	d, err := FromGoDuration(1500 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, NewDuration(1, 500000000), d)
	_, err = FromGoDuration(-time.Nanosecond)
	assert.ErrorIs(t, err, ErrNegative)
}

func TestDurationArithmetic(t *testing.T) {
	sum, ok := NewDuration(1, 600000000).CheckedAdd(NewDuration(1, 600000000))
	assert.True(t, ok)
	assert.Equal(t, NewDuration(3, 200000000), sum)
	_, ok = MaxDuration.CheckedAdd(FromNanos(1))
	assert.False(t, ok)
	_, ok = FromSeconds(math.MaxUint64).CheckedAdd(FromSeconds(1))
	assert.False(t, ok)

	diff, ok := FromSeconds(2).CheckedSub(FromNanos(1))
	assert.True(t, ok)
	assert.Equal(t, NewDuration(1, 999999999), diff)
	_, ok = FromNanos(5).CheckedSub(FromNanos(6))
	assert.False(t, ok)
	_, ok = FromSeconds(1).CheckedSub(FromSeconds(2))
	assert.False(t, ok)

	assert.Equal(t, FromSeconds(3), FromSeconds(1).Add(FromSeconds(2)))
	assert.Equal(t, FromSeconds(1), FromSeconds(3).Sub(FromSeconds(2)))
	assert.Panics(t, func() { MaxDuration.Add(FromNanos(1)) })
	assert.Panics(t, func() { Duration{}.Sub(FromNanos(1)) })

	assert.Equal(t, -1, FromNanos(1).Compare(FromNanos(2)))
	assert.Equal(t, 0, FromNanos(2).Compare(FromNanos(2)))
	assert.Equal(t, 1, FromSeconds(1).Compare(FromNanos(999999999)))
	assert.True(t, FromNanos(1).Less(FromSeconds(1)))
}

func TestTime(t *testing.T) {
	origin := Time{}
	later := origin.AddDuration(NewDuration(2, 5))
	assert.Equal(t, NewDuration(2, 5), later.Sub(origin))
	assert.Equal(t, Duration{}, later.Sub(later))
	assert.Panics(t, func() { origin.Sub(later) })

	assert.True(t, origin.Before(later))
	assert.True(t, later.After(origin))
	assert.True(t, later.Equal(Time{ns: 2000000005}))
	assert.Equal(t, -1, origin.Compare(later))
	assert.Equal(t, 1, later.Compare(origin))
	assert.Equal(t, 0, later.Compare(later))

	back, ok := later.CheckedSub(NewDuration(2, 5))
	assert.True(t, ok)
	assert.Equal(t, origin, back)
	_, ok = origin.CheckedSub(FromNanos(1))
	assert.False(t, ok)
	_, ok = Time{ns: math.MaxUint64}.CheckedAdd(FromNanos(1))
	assert.False(t, ok)
	_, ok = origin.CheckedAdd(MaxDuration)
	assert.False(t, ok)
	assert.Panics(t, func() { origin.SubDuration(FromNanos(1)) })
	assert.Panics(t, func() { origin.AddDuration(MaxDuration) })
}

func TestManual(t *testing.T) {
	clock := NewManual()
	start := clock.Now()
	assert.Equal(t, Time{}, start)
	clock.Advance(FromSeconds(5))
	assert.Equal(t, FromSeconds(5), clock.Now().Sub(start))
	clock.Set(Time{ns: 7000000000})
	assert.Equal(t, FromSeconds(7), clock.Now().Sub(start))
	assert.Panics(t, func() { clock.Set(start) })

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			clock.Advance(FromNanos(1))
		}()
	}
	wg.Wait()
	assert.Equal(t, NewDuration(7, 10), clock.Now().Sub(start))
}

func TestSystem(t *testing.T) {
	var clock Clock = System{}
	first := clock.Now()
	second := clock.Now()
	assert.False(t, second.Before(first))
}

func TestDefault(t *testing.T) {
	assert.Equal(t, System{}, Default())
	clock := NewManual()
	clock.Advance(FromSeconds(42))
	restore := SetDefault(clock)
	assert.Equal(t, Time{ns: 42000000000}, Now())
	restore()
	assert.Equal(t, System{}, Default())
}
