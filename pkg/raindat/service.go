// Package raindat reads SWMM user-prepared rainfall files.
//
// Every data line holds one reading:
//
//	STA01  2004  6  12  00  00  0.12
//
// station id, year, month, day, hour, minute and depth, separated by
// whitespace. A ';' starts a comment. Timestamps are taken as UTC.
package raindat

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
	"github.com/sigurn/crc16"
	log "github.com/sirupsen/logrus"
)

var crcTable = crc16.MakeTable(crc16.CRC16_ARC)

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":  path,
		"gages": len(f.Gages),
	}).Debug("loaded rainfall file")
	return f, nil
}

func Parse(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return parse(data)
}

func parse(data []byte) (*File, error) {
	f := &File{
		Gages:    make(map[string]aggregator.Series),
		Checksum: crc16.Checksum(data, crcTable),
	}

	scanner := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if i := strings.IndexByte(line, ';'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		gage, ts, value, err := parseReading(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		series, ok := f.Gages[gage]
		if !ok {
			series = make(aggregator.Series)
			f.Gages[gage] = series
		}
		if _, dup := series[ts]; dup {
			return nil, fmt.Errorf("line %d: %w: %s at %s",
				lineNo, ErrDuplicateReading, gage, time.UnixMilli(ts).UTC().Format(time.RFC3339))
		}
		series[ts] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return f, nil
}

func parseReading(fields []string) (string, int64, float64, error) {
	if len(fields) != 7 {
		return "", 0, 0, fmt.Errorf("%w: expected 7 fields, got %d", ErrMalformedLine, len(fields))
	}

	var parts [5]int
	for i := range parts {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return "", 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
		}
		parts[i] = n
	}
	year, month, day, hour, minute := parts[0], parts[1], parts[2], parts[3], parts[4]
	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalises out of range fields, reject them instead.
	if ts.Year() != year || int(ts.Month()) != month || ts.Day() != day ||
		ts.Hour() != hour || ts.Minute() != minute {
		return "", 0, 0, fmt.Errorf("%w: invalid date %04d-%02d-%02d %02d:%02d",
			ErrMalformedLine, year, month, day, hour, minute)
	}

	value, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", ErrMalformedLine, err)
	}
	if value < 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "", 0, 0, fmt.Errorf("%w: depth %v", ErrMalformedLine, value)
	}
	return fields[0], ts.UnixMilli(), value, nil
}

// Span returns the first and last reading timestamps of series.
func Span(series aggregator.Series) (first, last int64, ok bool) {
	for ts := range series {
		if !ok || ts < first {
			first = ts
		}
		if !ok || ts > last {
			last = ts
		}
		ok = true
	}
	return first, last, ok
}
