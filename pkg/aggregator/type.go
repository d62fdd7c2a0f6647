package aggregator

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrConfiguration is returned for an unknown unit, a non-positive stride
	// or an empty query range.
	ErrConfiguration = errors.New("invalid aggregation configuration")
	// ErrInvalidReading is returned when a reading is negative or not finite.
	ErrInvalidReading = errors.New("invalid reading")
)

// Series maps a timestamp in milliseconds since the Unix epoch to a rainfall depth.
type Series map[int64]float64

type Unit uint8

const (
	Hour Unit = iota + 1
	Day
	Month
	Year
)

func (u Unit) String() string {
	switch u {
	case Hour:
		return "Hour"
	case Day:
		return "Day"
	case Month:
		return "Month"
	case Year:
		return "Year"
	}
	return fmt.Sprintf("Unit(%d)", uint8(u))
}

// ParseUnit accepts the unit names case-insensitively, singular or plural.
func ParseUnit(s string) (Unit, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s") {
	case "hour":
		return Hour, nil
	case "day":
		return Day, nil
	case "month":
		return Month, nil
	case "year":
		return Year, nil
	}
	return 0, fmt.Errorf("%w: unknown unit %q", ErrConfiguration, s)
}

// Period is a half-open interval [Start, End) with the summed depth of the
// readings inside it. Start and End are milliseconds since the Unix epoch.
type Period struct {
	Start  int64   `json:"start"`
	End    int64   `json:"end"`
	Volume float64 `json:"volume"`
}

func (p Period) StartTime() time.Time {
	return time.UnixMilli(p.Start).UTC()
}

func (p Period) EndTime() time.Time {
	return time.UnixMilli(p.End).UTC()
}
