package depthutils

import (
	"fmt"
	"strings"
)

type DepthUnit string

const (
	Inches      DepthUnit = "in"
	Millimeters DepthUnit = "mm"
)

const mmPerInch = 25.4

var ErrUnknownDepthUnit = fmt.Errorf("unknown depth unit")

func ParseDepthUnit(s string) (DepthUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in", "inch", "inches":
		return Inches, nil
	case "mm", "millimeter", "millimeters", "millimetre", "millimetres":
		return Millimeters, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDepthUnit, s)
}

func InToMm(in float64) float64 {
	return in * mmPerInch
}

func MmToIn(mm float64) float64 {
	return mm / mmPerInch
}

// Convert returns depth, given in from, expressed in to.
func Convert(depth float64, from, to DepthUnit) float64 {
	switch {
	case from == to:
		return depth
	case from == Inches && to == Millimeters:
		return InToMm(depth)
	case from == Millimeters && to == Inches:
		return MmToIn(depth)
	}
	return depth
}
