package commands

import (
	"time"

	"github.com/akjorns/color-viewer-app/internal/charts"
	"github.com/akjorns/color-viewer-app/internal/dataset"
)

// ViewMode selects which visualization the dashboard shows.
type ViewMode int

const (
	ModeScatter ViewMode = iota
	ModeAxes
	ModeTable
	ModeGroups
)

func (m ViewMode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeAxes:
		return "axes"
	case ModeTable:
		return "records"
	case ModeGroups:
		return "groups"
	default:
		return "Unknown"
	}
}

// Plane is the projection plane for the scatter view.
type Plane int

const (
	PlaneAB Plane = iota
	PlaneAL
	PlaneBL
)

func (p Plane) String() string {
	x, y := p.Axes()
	return x.Label() + "/" + y.Label()
}

// Axes returns the x and y axes of this projection plane.
func (p Plane) Axes() (charts.Axis, charts.Axis) {
	switch p {
	case PlaneAL:
		return charts.AxisA, charts.AxisL
	case PlaneBL:
		return charts.AxisB, charts.AxisL
	default:
		return charts.AxisA, charts.AxisB
	}
}

func (p Plane) next() Plane {
	switch p {
	case PlaneAB:
		return PlaneAL
	case PlaneAL:
		return PlaneBL
	default:
		return PlaneAB
	}
}

// TUIState represents the current state of the dashboard.
type TUIState int

const (
	StateLoading TUIState = iota
	StateResults
	StateError
)

// FocusedPane tracks which pane has focus.
type FocusedPane int

const (
	PaneMain FocusedPane = iota
	PaneLegend
)

// datasetResultMsg carries the result of a dataset load.
type datasetResultMsg struct {
	ds       *dataset.Dataset
	err      error
	duration time.Duration
}
