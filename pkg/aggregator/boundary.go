package aggregator

import (
	"fmt"
	"math"
	"time"
)

var (
	minInstant = time.UnixMilli(math.MinInt64).UTC()
	maxInstant = time.UnixMilli(math.MaxInt64).UTC()
)

// Next returns the exclusive end of the period that starts at instant.
// All arithmetic happens in UTC. Month periods snap to the first day of the
// resulting month, so month grids converge on calendar months.
// The result is always after instant and representable as a millisecond timestamp.
func Next(instant time.Time, unit Unit, stride int) (time.Time, error) {
	if stride <= 0 {
		return time.Time{}, fmt.Errorf("%w: stride must be positive, got %d", ErrConfiguration, stride)
	}
	t := instant.UTC()

	var next time.Time
	switch unit {
	case Hour:
		// UTC days are always 24 hours; whole days go through AddDate so
		// large strides do not overflow time.Duration.
		next = t.AddDate(0, 0, stride/24).Add(time.Duration(stride%24) * time.Hour)
	case Day:
		next = t.AddDate(0, 0, stride)
	case Month:
		next = time.Date(t.Year(), t.Month()+time.Month(stride), 1, 0, 0, 0, 0, time.UTC)
	case Year:
		next = t.AddDate(stride, 0, 0)
	default:
		return time.Time{}, fmt.Errorf("%w: unknown unit %s", ErrConfiguration, unit)
	}

	if !next.After(t) || next.Before(minInstant) || next.After(maxInstant) {
		return time.Time{}, fmt.Errorf("%w: %d %s after %s is out of range",
			ErrConfiguration, stride, unit, t.Format(time.RFC3339))
	}
	return next, nil
}

// nextMilli is Next on millisecond timestamps.
func nextMilli(instant int64, unit Unit, stride int) (int64, error) {
	t, err := Next(time.UnixMilli(instant), unit, stride)
	if err != nil {
		return 0, err
	}
	next := t.UnixMilli()
	if next <= instant {
		return 0, fmt.Errorf("%w: boundary %d does not advance past %d", ErrConfiguration, next, instant)
	}
	return next, nil
}
