// Package aggregator sums rainfall readings into consecutive calendar periods.
package aggregator

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// walker carries the cursor and the current period across one Aggregate call.
type walker struct {
	series Series
	keys   []int64
	end    int64
	unit   Unit
	stride int

	cursor      int
	periodStart int64
	periodEnd   int64
	out         []Period
}

// Aggregate partitions [startTime, endTime) into consecutive periods of stride
// units and sums the readings of series falling into each of them.
// Periods without readings are emitted with a zero volume. The first period
// starts at startTime and the last one ends on the first boundary at or after
// endTime. Readings outside [startTime, endTime) are ignored.
func Aggregate(series Series, startTime, endTime int64, unit Unit, stride int) ([]Period, error) {
	firstEnd, err := nextMilli(startTime, unit, stride)
	if err != nil {
		return nil, err
	}
	if startTime >= endTime {
		return nil, fmt.Errorf("%w: start %d is not before end %d", ErrConfiguration, startTime, endTime)
	}
	keys, err := sortedKeys(series)
	if err != nil {
		return nil, err
	}

	w := &walker{
		series:      series,
		keys:        keys,
		end:         endTime,
		unit:        unit,
		stride:      stride,
		periodStart: startTime,
		periodEnd:   firstEnd,
	}
	if err := w.walk(); err != nil {
		return nil, err
	}
	return w.out, nil
}

// sortedKeys validates every reading and returns the timestamps in ascending order.
func sortedKeys(series Series) ([]int64, error) {
	keys := make([]int64, 0, len(series))
	for ts, v := range series {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: %v at %d", ErrInvalidReading, v, ts)
		}
		keys = append(keys, ts)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

func (w *walker) walk() error {
	// Readings before the window never belong to any period.
	for w.cursor < len(w.keys) && w.keys[w.cursor] < w.periodStart {
		w.cursor++
	}

	for w.periodStart < w.end {
		for w.periodStart < w.end && !w.pendingInPeriod() {
			if err := w.emit(decimal.Zero); err != nil {
				return err
			}
		}
		if w.periodStart >= w.end {
			break
		}

		sum, updated := w.accumulate()
		if updated {
			if err := w.emit(sum); err != nil {
				return err
			}
			continue
		}

		// Only reachable when a key sits before the current period, which
		// sorted input rules out.
		log.WithFields(log.Fields{
			"cursor":       w.cursor,
			"key":          w.keys[w.cursor],
			"period_start": w.periodStart,
		}).Warn("reading precedes current period, skipping it")
		w.cursor++
	}
	return nil
}

// pendingInPeriod reports whether the reading under the cursor lies inside
// both the current period and the query window.
func (w *walker) pendingInPeriod() bool {
	if w.cursor >= len(w.keys) {
		return false
	}
	k := w.keys[w.cursor]
	return k < w.end && k < w.periodEnd
}

// accumulate consumes every reading in [periodStart, periodEnd).
func (w *walker) accumulate() (decimal.Decimal, bool) {
	sum := decimal.Zero
	updated := false
	for w.cursor < len(w.keys) {
		k := w.keys[w.cursor]
		if k >= w.periodEnd || k >= w.end || k < w.periodStart {
			break
		}
		sum = sum.Add(decimal.NewFromFloat(w.series[k]))
		w.cursor++
		updated = true
	}
	return sum, updated
}

// emit closes the current period with volume and slides the window forward.
func (w *walker) emit(volume decimal.Decimal) error {
	w.out = append(w.out, Period{
		Start:  w.periodStart,
		End:    w.periodEnd,
		Volume: volume.InexactFloat64(),
	})

	next, err := nextMilli(w.periodEnd, w.unit, w.stride)
	if err != nil {
		return err
	}
	w.periodStart, w.periodEnd = w.periodEnd, next
	return nil
}

// ToSeries keys every period volume by the period start.
func ToSeries(periods []Period) Series {
	series := make(Series, len(periods))
	for _, p := range periods {
		series[p.Start] = p.Volume
	}
	return series
}

// TotalVolume returns the summed volume of periods.
func TotalVolume(periods []Period) float64 {
	total := decimal.Zero
	for _, p := range periods {
		total = total.Add(decimal.NewFromFloat(p.Volume))
	}
	return total.InexactFloat64()
}
