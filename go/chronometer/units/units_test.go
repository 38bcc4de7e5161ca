package units_test

import (
	"github.com/Symantec/chronometer/go/chronometer/units"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNanosecondsPer(t *testing.T) {
	assert.Equal(t, int64(1), units.NanosecondsPer(units.Nanosecond))
	assert.Equal(t, int64(1000), units.NanosecondsPer(units.Microsecond))
	assert.Equal(t, int64(1000000), units.NanosecondsPer(units.Millisecond))
	assert.Equal(t, int64(1000000000), units.NanosecondsPer(units.Second))
	assert.Equal(t, int64(604800000000000), units.NanosecondsPer(units.Week))
	assert.Equal(t, int64(0), units.NanosecondsPer(units.None))
}

func TestSecondsPer(t *testing.T) {
	assert.Equal(t, int64(0), units.SecondsPer(units.Millisecond))
	assert.Equal(t, int64(1), units.SecondsPer(units.Second))
	assert.Equal(t, int64(60), units.SecondsPer(units.Minute))
	assert.Equal(t, int64(3600), units.SecondsPer(units.Hour))
	assert.Equal(t, int64(86400), units.SecondsPer(units.Day))
	assert.Equal(t, int64(604800), units.SecondsPer(units.Week))
}

func TestFromSeconds(t *testing.T) {
	assert.Equal(t, 1000.0, units.FromSeconds(units.Millisecond))
	assert.Equal(t, 1.0, units.FromSeconds(units.Second))
	assert.Equal(t, 1.0, units.FromSeconds(units.None))
	assert.True(t, units.IsTime(units.Day))
	assert.False(t, units.IsTime(units.None))
}

func TestAbbreviation(t *testing.T) {
	assert.Equal(t, "μs", units.Microsecond.Abbreviation())
	assert.Equal(t, "d", units.Day.Abbreviation())
	assert.Equal(t, "", units.None.Abbreviation())
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want units.Unit
	}{
		{"ns", units.Nanosecond},
		{"us", units.Microsecond},
		{"µs", units.Microsecond},
		{"μs", units.Microsecond},
		{"Milliseconds", units.Millisecond},
		{"s", units.Second},
		{"m", units.Minute},
		{"h", units.Hour},
		{"Days", units.Day},
		{"w", units.Week},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := units.Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
	_, err := units.Parse("fortnight")
	assert.True(t, errors.Is(err, units.ErrUnknownUnit))
}
