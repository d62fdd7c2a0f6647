package main

import (
	"fmt"
	"time"

	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
	"github.com/NotCoffee418/rain_periods/pkg/config"
	"github.com/NotCoffee418/rain_periods/pkg/depthutils"
	"github.com/NotCoffee418/rain_periods/pkg/raindat"
	"github.com/NotCoffee418/rain_periods/pkg/report"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func newPeriodsCommand() *cli.Command {
	return &cli.Command{
		Name:  "periods",
		Usage: "print the rainfall volume of every period in a window",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "rainfall file, overrides data_file"},
			&cli.StringFlag{Name: "gage", Usage: "rain gage id, defaults to the first gage in the file"},
			&cli.StringFlag{Name: "unit", Usage: "Hour, Day, Month or Year"},
			&cli.IntFlag{Name: "stride", Usage: "units per period"},
			&cli.StringFlag{Name: "start", Usage: "window start, RFC3339 or YYYY-MM-DD"},
			&cli.StringFlag{Name: "end", Usage: "window end (exclusive), RFC3339 or YYYY-MM-DD"},
			&cli.StringFlag{Name: "format", Usage: "table or json"},
			&cli.StringFlag{Name: "out-depth", Usage: "output depth unit, in or mm"},
		},
		Action: runPeriods,
	}
}

func newGagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "gages",
		Usage: "list the gages in the rainfall file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Usage: "rainfall file, overrides data_file"},
		},
		Action: runGages,
	}
}

func setup(c *cli.Context) error {
	var err error
	if path := c.String("config"); path != "" {
		err = config.LoadReportConfigFrom(path)
	} else {
		err = config.LoadReportConfig()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if c.Bool("debug") || config.ActiveReportConfig.Debug {
		log.SetLevel(log.DebugLevel)
	}
	return nil
}

// applyFlags returns a copy of the active config with the set flags applied.
func applyFlags(c *cli.Context) (*config.ReportConfig, error) {
	cfg := *config.ActiveReportConfig
	overrides := map[string]*string{
		"file":      &cfg.DataFile,
		"gage":      &cfg.Gage,
		"unit":      &cfg.Unit,
		"start":     &cfg.Start,
		"end":       &cfg.End,
		"format":    &cfg.Format,
		"out-depth": &cfg.OutputDepthUnit,
	}
	for name, dst := range overrides {
		if c.IsSet(name) {
			*dst = c.String(name)
		}
	}
	if c.IsSet("stride") {
		cfg.Stride = c.Int("stride")
	}
	return &cfg, cfg.Validate()
}

func runPeriods(c *cli.Context) error {
	cfg, err := applyFlags(c)
	if err != nil {
		return err
	}

	file, err := raindat.LoadFile(cfg.DataFile)
	if err != nil {
		return err
	}
	gage := cfg.Gage
	if gage == "" {
		ids := file.GageIDs()
		if len(ids) == 0 {
			return fmt.Errorf("%s contains no readings", cfg.DataFile)
		}
		gage = ids[0]
	}
	series, err := file.Gage(gage)
	if err != nil {
		return err
	}

	start, end, err := window(cfg, series)
	if err != nil {
		return err
	}
	unit, err := aggregator.ParseUnit(cfg.Unit)
	if err != nil {
		return err
	}
	inUnit, err := depthutils.ParseDepthUnit(cfg.InputDepthUnit)
	if err != nil {
		return err
	}
	outUnit, err := depthutils.ParseDepthUnit(cfg.OutputDepthUnit)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"gage":   gage,
		"unit":   unit,
		"stride": cfg.Stride,
		"start":  start.Format(time.RFC3339),
		"end":    end.Format(time.RFC3339),
	}).Debug("aggregating")

	periods, err := aggregator.Aggregate(series, start.UnixMilli(), end.UnixMilli(), unit, cfg.Stride)
	if err != nil {
		return err
	}
	periods = report.Convert(periods, inUnit, outUnit)

	meta := report.Meta{
		Gage:      gage,
		Unit:      unit,
		Stride:    cfg.Stride,
		DepthUnit: string(outUnit),
		Checksum:  file.Checksum,
	}
	if cfg.Format == "json" {
		return report.WriteJSON(c.App.Writer, meta, periods)
	}
	return report.WriteTable(c.App.Writer, meta, periods)
}

// window resolves the query range, defaulting to the whole years the
// readings of series fall in.
func window(cfg *config.ReportConfig, series aggregator.Series) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if cfg.Start != "" {
		if start, err = config.ParseTime(cfg.Start); err != nil {
			return start, end, err
		}
	}
	if cfg.End != "" {
		if end, err = config.ParseTime(cfg.End); err != nil {
			return start, end, err
		}
	}
	if cfg.Start == "" || cfg.End == "" {
		first, last, ok := raindat.Span(series)
		if !ok {
			return start, end, fmt.Errorf("gage has no readings, start and end are required")
		}
		if cfg.Start == "" {
			start = time.Date(time.UnixMilli(first).UTC().Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		}
		if cfg.End == "" {
			end = time.Date(time.UnixMilli(last).UTC().Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC)
		}
	}
	if !start.Before(end) {
		return start, end, fmt.Errorf("start %s is not before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return start, end, nil
}

func runGages(c *cli.Context) error {
	path := config.ActiveReportConfig.DataFile
	if c.IsSet("file") {
		path = c.String("file")
	}
	file, err := raindat.LoadFile(path)
	if err != nil {
		return err
	}

	out := c.App.Writer
	fmt.Fprintf(out, "%-12s%-12s%-22s%s\n", "Gage", "Readings", "First", "Last")
	for _, id := range file.GageIDs() {
		series := file.Gages[id]
		first, last, _ := raindat.Span(series)
		fmt.Fprintf(out, "%-12s%-12s%-22s%s\n",
			id,
			humanize.Comma(int64(len(series))),
			time.UnixMilli(first).UTC().Format(time.RFC3339),
			time.UnixMilli(last).UTC().Format(time.RFC3339),
		)
	}
	return nil
}
