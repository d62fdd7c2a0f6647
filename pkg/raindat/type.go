package raindat

import (
	"fmt"
	"sort"

	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
)

var (
	ErrMalformedLine    = fmt.Errorf("malformed rainfall line")
	ErrDuplicateReading = fmt.Errorf("duplicate reading")
	ErrUnknownGage      = fmt.Errorf("unknown rain gage")
)

// File holds the readings of every gage found in a rainfall file.
type File struct {
	Gages map[string]aggregator.Series
	// CRC16/ARC over the raw file contents.
	Checksum uint16
}

func (f *File) GageIDs() []string {
	ids := make([]string, 0, len(f.Gages))
	for id := range f.Gages {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (f *File) Gage(id string) (aggregator.Series, error) {
	series, ok := f.Gages[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGage, id)
	}
	return series, nil
}
