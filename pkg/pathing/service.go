package pathing

import (
	"os"
	"path/filepath"
)

const configDirEnv = "RAIN_PERIODS_CONFIG_DIR"

func GetConfigDir() string {
	if dir := os.Getenv(configDirEnv); dir != "" {
		return dir
	}
	return "/etc/rain_periods"
}

func GetReportConfigPath() string {
	return filepath.Join(GetConfigDir(), "rain_periods.toml")
}

// EnsureDir creates dir and its parents when missing.
func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, 0755)
	}
	return nil
}
