package raindat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
	"github.com/sigurn/crc16"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `; Rain gage export
STA01 2004 6 12 00 00 0.12
STA01 2004 6 12 01 00 0.30   ; peak
STA02 2004 6 12 00 15 0.05

STA01 2004 6 13 00 00 0.01
`

func at(year int, month time.Month, day, hour, minute int) int64 {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC).UnixMilli()
}

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	assert.Equal(t, []string{"STA01", "STA02"}, f.GageIDs())
	assert.Equal(t, aggregator.Series{
		at(2004, time.June, 12, 0, 0): 0.12,
		at(2004, time.June, 12, 1, 0): 0.30,
		at(2004, time.June, 13, 0, 0): 0.01,
	}, f.Gages["STA01"])
	assert.Equal(t, aggregator.Series{at(2004, time.June, 12, 0, 15): 0.05}, f.Gages["STA02"])
	assert.Equal(t, crc16.Checksum([]byte(sample), crc16.MakeTable(crc16.CRC16_ARC)), f.Checksum)
}

func TestParseErrors(t *testing.T) {
	for name, input := range map[string]string{
		"too few fields": "STA01 2004 6 12 00 0.12\n",
		"bad number":     "STA01 2004 six 12 00 00 0.12\n",
		"bad date":       "STA01 2004 2 30 00 00 0.12\n",
		"bad hour":       "STA01 2004 2 3 25 00 0.12\n",
		"negative depth": "STA01 2004 2 3 01 00 -0.12\n",
		"nan depth":      "STA01 2004 2 3 01 00 NaN\n",
	} {
		_, err := Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrMalformedLine, name)
		assert.ErrorContains(t, err, "line 1", name)
	}

	_, err := Parse(strings.NewReader("A 2004 2 3 01 00 1\nA 2004 2 3 01 00 2\n"))
	assert.ErrorIs(t, err, ErrDuplicateReading)
	assert.ErrorContains(t, err, "line 2")
}

func TestGage(t *testing.T) {
	f, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	series, err := f.Gage("STA02")
	require.NoError(t, err)
	assert.Len(t, series, 1)

	_, err = f.Gage("STA99")
	assert.ErrorIs(t, err, ErrUnknownGage)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rain.dat")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	f, err := LoadFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Gages, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSpan(t *testing.T) {
	_, _, ok := Span(aggregator.Series{})
	assert.False(t, ok)

	first, last, ok := Span(aggregator.Series{30: 1, 10: 1, 20: 1})
	require.True(t, ok)
	assert.Equal(t, int64(10), first)
	assert.Equal(t, int64(30), last)
}
