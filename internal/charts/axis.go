package charts

import "github.com/akjorns/color-viewer-app/internal/dataset"

// Axis selects one of the three L*a*b* coordinates.
type Axis int

const (
	AxisL Axis = iota
	AxisA
	AxisB
)

func (a Axis) Label() string {
	switch a {
	case AxisL:
		return "L*"
	case AxisA:
		return "a*"
	case AxisB:
		return "b*"
	default:
		return "Unknown"
	}
}

// Value extracts this axis' coordinate from a record.
func (a Axis) Value(r dataset.Record) float64 {
	switch a {
	case AxisL:
		return r.L
	case AxisA:
		return r.A
	case AxisB:
		return r.B
	default:
		return 0
	}
}
