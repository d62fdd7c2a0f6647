package aggregator

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func utc(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestNextFixedUnits(t *testing.T) {
	start := utc(2024, time.March, 9, 22)

	next, err := Next(start, Hour, 6)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, time.March, 10, 4), next)

	next, err = Next(start, Day, 1)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, time.March, 10, 22), next)

	next, err = Next(utc(2024, time.December, 31, 0), Day, 2)
	require.NoError(t, err)
	assert.Equal(t, utc(2025, time.January, 2, 0), next)
}

func TestNextIgnoresLocation(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	local := time.Date(2024, time.January, 31, 23, 30, 0, 0, loc)

	next, err := Next(local, Month, 1)
	require.NoError(t, err)
	// 2024-01-31T23:30+05:00 is 2024-01-31T18:30Z, so the next month is February.
	assert.Equal(t, utc(2024, time.February, 1, 0), next)
	assert.Equal(t, time.UTC, next.Location())
}

func TestNextMonthSnapsToFirstDay(t *testing.T) {
	b := time.Date(2024, time.January, 15, 0, 0, 0, 0, time.UTC)
	expected := []time.Time{
		utc(2024, time.February, 1, 0),
		utc(2024, time.March, 1, 0),
		utc(2024, time.April, 1, 0),
		utc(2024, time.May, 1, 0),
	}
	for _, want := range expected {
		var err error
		b, err = Next(b, Month, 1)
		require.NoError(t, err)
		assert.Equal(t, want, b)
	}
}

func TestNextMonthStride(t *testing.T) {
	next, err := Next(utc(2023, time.November, 20, 13), Month, 3)
	require.NoError(t, err)
	assert.Equal(t, utc(2024, time.February, 1, 0), next)
}

func TestNextYear(t *testing.T) {
	next, err := Next(time.Date(2020, time.June, 3, 7, 15, 0, 0, time.UTC), Year, 2)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2022, time.June, 3, 7, 15, 0, 0, time.UTC), next)

	// Feb 29 normalises forward into March on non-leap years.
	next, err = Next(utc(2024, time.February, 29, 0), Year, 1)
	require.NoError(t, err)
	assert.Equal(t, utc(2025, time.March, 1, 0), next)
}

func TestNextIsStrictlyAfter(t *testing.T) {
	start := utc(2021, time.April, 1, 0)
	for _, unit := range []Unit{Hour, Day, Month, Year} {
		next, err := Next(start, unit, 1)
		require.NoError(t, err, unit.String())
		assert.True(t, next.After(start), "%s boundary must be after its start", unit)
	}
}

func TestNextLargeHourStride(t *testing.T) {
	start := utc(2021, time.January, 1, 0)

	next, err := Next(start, Hour, 3_000_000)
	require.NoError(t, err)
	assert.True(t, next.After(start))
	assert.Equal(t, start.AddDate(0, 0, 125_000), next)

	next, err = Next(start, Hour, 3_000_005)
	require.NoError(t, err)
	assert.Equal(t, start.AddDate(0, 0, 125_000).Add(5*time.Hour), next)
}

func TestNextOutOfMillisecondRange(t *testing.T) {
	_, err := Next(time.UnixMilli(math.MaxInt64-10), Hour, 1)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Next(utc(2021, time.January, 1, 0), Year, 500_000_000)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = nextMilli(math.MaxInt64-10, Day, 1)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestNextConfigurationErrors(t *testing.T) {
	_, err := Next(utc(2021, time.April, 1, 0), Unit(42), 1)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Next(utc(2021, time.April, 1, 0), Day, 0)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = Next(utc(2021, time.April, 1, 0), Hour, -3)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestParseUnit(t *testing.T) {
	for in, want := range map[string]Unit{
		"hour":   Hour,
		"Hours":  Hour,
		"DAY":    Day,
		"month":  Month,
		" year ": Year,
		"years":  Year,
	} {
		got, err := ParseUnit(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseUnit("fortnight")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "Month", Month.String())
	assert.Equal(t, "Unit(9)", Unit(9).String())
}
