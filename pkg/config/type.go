package config

type ReportConfig struct {
	// SWMM user-prepared rainfall file.
	DataFile string `toml:"data_file"`
	// Gage id inside DataFile, empty selects the first one.
	Gage   string `toml:"gage"`
	Unit   string `toml:"unit"`
	Stride int    `toml:"stride"`
	// RFC3339 or 2006-01-02. Empty uses the whole years covered by the data.
	Start           string `toml:"start"`
	End             string `toml:"end"`
	InputDepthUnit  string `toml:"input_depth_unit"`
	OutputDepthUnit string `toml:"output_depth_unit"`
	// table or json
	Format string `toml:"format"`
	Debug  bool   `toml:"debug"`
}
