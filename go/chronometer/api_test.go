package chronometer_test

import (
	"github.com/Symantec/chronometer/go/chronometer"
	"github.com/Symantec/chronometer/go/chronometer/duration"
	"github.com/Symantec/chronometer/go/chronometer/monotonic"
	"github.com/stretchr/testify/assert"
	"sync"
	"testing"
)

func TestTimeFunc(t *testing.T) {
	clock := monotonic.NewManual()
	called := false
	elapsed := chronometer.TimeFuncWithClock(clock, func() {
		called = true
		clock.Advance(monotonic.NewDuration(2, 250000000))
	})
	assert.True(t, called)
	assert.Equal(t, duration.New(2, 250000000), elapsed)
}

func TestTimeFuncDefaultClock(t *testing.T) {
	clock := monotonic.NewManual()
	restore := monotonic.SetDefault(clock)
	defer restore()
	elapsed := chronometer.TimeFunc(func() {
		clock.Advance(monotonic.FromSeconds(3))
	})
	assert.Equal(t, duration.Seconds(3), elapsed)
}

func TestTimeFuncSystemClock(t *testing.T) {
	elapsed := chronometer.TimeFunc(func() {})
	assert.False(t, elapsed.IsNegative())
}

func TestStopwatch(t *testing.T) {
	clock := monotonic.NewManual()
	elapsed := chronometer.StopwatchWithClock(clock)
	assert.Equal(t, duration.Zero, elapsed())
	clock.Advance(monotonic.FromNanos(1500))
	assert.Equal(t, duration.Nanoseconds(1500), elapsed())
	clock.Advance(monotonic.FromSeconds(60))
	assert.Equal(t, "1m 0.000s", elapsed().PrettyFormat())

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.False(t, elapsed().IsNegative())
		}()
	}
	wg.Wait()
}

func TestStopwatchDefaultClock(t *testing.T) {
	clock := monotonic.NewManual()
	restore := monotonic.SetDefault(clock)
	defer restore()
	elapsed := chronometer.Stopwatch()
	clock.Advance(monotonic.FromSeconds(1))
	assert.Equal(t, duration.Second, elapsed())
}
