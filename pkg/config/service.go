package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/NotCoffee418/rain_periods/pkg/aggregator"
	"github.com/NotCoffee418/rain_periods/pkg/depthutils"
	"github.com/NotCoffee418/rain_periods/pkg/pathing"
)

var ActiveReportConfig *ReportConfig

var ErrInvalidConfig = errors.New("invalid config")

func DefaultReportConfig() *ReportConfig {
	return &ReportConfig{
		DataFile:        filepath.Join(pathing.GetConfigDir(), "rainfall.dat"),
		Unit:            "Day",
		Stride:          1,
		InputDepthUnit:  "in",
		OutputDepthUnit: "in",
		Format:          "table",
	}
}

func LoadReportConfig() error {
	return LoadReportConfigFrom(pathing.GetReportConfigPath())
}

// LoadReportConfigFrom decodes the config at configPath into
// ActiveReportConfig, writing the defaults there first if the file is missing.
func LoadReportConfigFrom(configPath string) error {
	// Create default if not exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultReportConfig()
		if err := pathing.EnsureDir(filepath.Dir(configPath)); err != nil {
			return err
		}
		cfgFile, err := os.Create(configPath)
		if err != nil {
			return err
		}
		if err := toml.NewEncoder(cfgFile).Encode(cfg); err != nil {
			cfgFile.Close()
			return err
		}
		if err := cfgFile.Close(); err != nil {
			return err
		}
		ActiveReportConfig = cfg
		return nil
	}

	// Load existing config on top of the defaults
	config := DefaultReportConfig()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return err
	}
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%s: %w", configPath, err)
	}
	ActiveReportConfig = config
	return nil
}

func (c *ReportConfig) Validate() error {
	if _, err := aggregator.ParseUnit(c.Unit); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Stride <= 0 {
		return fmt.Errorf("%w: stride must be positive, got %d", ErrInvalidConfig, c.Stride)
	}
	for _, u := range []string{c.InputDepthUnit, c.OutputDepthUnit} {
		if _, err := depthutils.ParseDepthUnit(u); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	if c.Format != "table" && c.Format != "json" {
		return fmt.Errorf("%w: unknown format %q", ErrInvalidConfig, c.Format)
	}
	for _, s := range []string{c.Start, c.End} {
		if s == "" {
			continue
		}
		if _, err := ParseTime(s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
	}
	return nil
}

// ParseTime accepts RFC3339 timestamps and plain dates, both read as UTC.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("cannot parse time %q", s)
	}
	return t, nil
}
