// Package report renders aggregated periods for people and scripts.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
	"github.com/NotCoffee418/rain_periods/pkg/depthutils"
	"github.com/dustin/go-humanize"
)

const (
	labelWidth  = 10
	volumeWidth = 24
)

func columnsFor(unit aggregator.Unit) []column {
	cols := []column{{"Year", labelWidth}}
	switch unit {
	case aggregator.Hour:
		cols = append(cols, column{"Month", labelWidth}, column{"Day", labelWidth}, column{"Hour", labelWidth})
	case aggregator.Day:
		cols = append(cols, column{"Month", labelWidth}, column{"Day", labelWidth})
	case aggregator.Month:
		cols = append(cols, column{"Month", labelWidth})
	}
	return append(cols, column{"Vol.", volumeWidth})
}

// columnHeaders renders the padded header row followed by a dashed rule.
func columnHeaders(cols []column) string {
	var sb strings.Builder
	total := 0
	for _, c := range cols {
		sb.WriteString(padEnd(c.name, c.width))
		total += c.width
	}
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("-", total))
	sb.WriteByte('\n')
	return sb.String()
}

func padEnd(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func row(unit aggregator.Unit, p aggregator.Period) string {
	t := p.StartTime()
	labels := []int{t.Year()}
	switch unit {
	case aggregator.Hour:
		labels = append(labels, int(t.Month()), t.Day(), t.Hour())
	case aggregator.Day:
		labels = append(labels, int(t.Month()), t.Day())
	case aggregator.Month:
		labels = append(labels, int(t.Month()))
	}

	var sb strings.Builder
	for _, l := range labels {
		sb.WriteString(padEnd(strconv.Itoa(l), labelWidth))
	}
	sb.WriteString(padEnd(strconv.FormatFloat(p.Volume, 'f', 1, 64), volumeWidth))
	return strings.TrimRight(sb.String(), " ") + "\n"
}

// WriteTable writes periods as a fixed width table with a summary footer.
func WriteTable(w io.Writer, meta Meta, periods []aggregator.Period) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Gage: %s  Period: %d %s  Depth: %s  CRC16: 0x%04X\n\n",
		meta.Gage, meta.Stride, meta.Unit, meta.DepthUnit, meta.Checksum)
	sb.WriteString(columnHeaders(columnsFor(meta.Unit)))

	wet := 0
	for _, p := range periods {
		sb.WriteString(row(meta.Unit, p))
		if p.Volume > 0 {
			wet++
		}
	}

	fmt.Fprintf(&sb, "\nPeriods: %s  With rain: %s  Total: %.1f %s\n",
		humanize.Comma(int64(len(periods))),
		humanize.Comma(int64(wet)),
		aggregator.TotalVolume(periods),
		meta.DepthUnit,
	)
	_, err := io.WriteString(w, sb.String())
	return err
}

// WriteJSON writes periods as an indented JSON document.
func WriteJSON(w io.Writer, meta Meta, periods []aggregator.Period) error {
	if periods == nil {
		periods = []aggregator.Period{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonReport{
		Meta:     meta,
		UnitName: meta.Unit.String(),
		Periods:  periods,
		Total:    aggregator.TotalVolume(periods),
	})
}

// Convert returns a copy of periods with volumes expressed in to.
func Convert(periods []aggregator.Period, from, to depthutils.DepthUnit) []aggregator.Period {
	out := make([]aggregator.Period, len(periods))
	for i, p := range periods {
		p.Volume = depthutils.Convert(p.Volume, from, to)
		out[i] = p
	}
	return out
}
