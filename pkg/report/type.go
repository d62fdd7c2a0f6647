package report

import "github.com/NotCoffee418/rain_periods/pkg/aggregator"

// Meta describes where a set of periods came from.
type Meta struct {
	Gage      string          `json:"gage"`
	Unit      aggregator.Unit `json:"-"`
	Stride    int             `json:"stride"`
	DepthUnit string          `json:"depth_unit"`
	Checksum  uint16          `json:"checksum"`
}

type column struct {
	name  string
	width int
}

type jsonReport struct {
	Meta
	UnitName string              `json:"unit"`
	Periods  []aggregator.Period `json:"periods"`
	Total    float64             `json:"total"`
}
