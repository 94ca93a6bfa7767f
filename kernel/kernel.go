// Package kernel is the facade spec.md §6 calls the external interface:
// a single entry point that wires together entity, construct, isect and
// constraint so a host (editor UI, batch importer, test harness) never
// has to sequence those packages itself. It also carries the UI-facing
// state (active tool, viewport, selection, measurement history) that
// spec.md's data model is silent on but any real editor needs —
// SPEC_FULL.md §6's UI-facing fields.
package kernel

import (
	"github.com/tanmay-deshpand3/geometry-solver/constraint"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// Tool names the active editing tool. The kernel never branches on it —
// it is pure UI state a host can read back after a SetActiveTool call.
type Tool string

const (
	ToolSelect         Tool = "select"
	ToolPoint          Tool = "point"
	ToolSegmentTwo     Tool = "segment_two_points"
	ToolSegmentAngle   Tool = "segment_angle"
	ToolCircleRadius   Tool = "circle_radius"
	ToolCircleThree    Tool = "circle_three_points"
	ToolArc            Tool = "arc"
	ToolConstraint     Tool = "constraint"
	ToolMeasureDistance Tool = "measure_distance"
)

// Config bundles every tunable the kernel exposes, per SPEC_FULL.md
// §7a. The zero value is valid: Solver resolves to constraint's
// defaults on first use.
type Config struct {
	Solver  constraint.Config `json:"solver"`
	Verbose bool              `json:"verbose"`
}

// DefaultConfig returns the spec's default tuning.
func DefaultConfig() Config {
	return Config{Solver: constraint.DefaultConfig(), Verbose: false}
}

// Measurement is one entry in a State's MeasureHistory: a read-only
// scalar a host recorded for its own display, never consumed by the
// solver.
type Measurement struct {
	Label string
	Value float64
}

// State is the full session the kernel operates on: the geometric store
// plus everything a host needs to drive an interactive editor. State
// has no internal locking and is not safe for concurrent use; the host
// must serialize access to it.
type State struct {
	Store *entity.Store
	Cfg   Config

	ActiveTool     Tool
	Zoom           float64
	OffsetX        float64
	OffsetY        float64
	SelectedIDs    []entity.ID
	MeasureHistory []Measurement
	Verbose        bool
}

// CreateInitialState returns an empty session ready for construction
// calls, with the viewport centered and unzoomed.
func CreateInitialState(cfg Config) *State {
	return &State{
		Store:   entity.NewStore(),
		Cfg:     cfg,
		Zoom:    1.0,
		Verbose: cfg.Verbose,
	}
}

// SetActiveTool records the host's current tool selection. It never
// touches the store.
func (st *State) SetActiveTool(t Tool) {
	st.ActiveTool = t
}

// AddToMeasureHistory appends a host-computed measurement. It is
// display-only bookkeeping and never feeds the solver.
func (st *State) AddToMeasureHistory(label string, value float64) {
	st.MeasureHistory = append(st.MeasureHistory, Measurement{Label: label, Value: value})
}

// ClearMeasureHistory empties the measurement log.
func (st *State) ClearMeasureHistory() {
	st.MeasureHistory = nil
}
