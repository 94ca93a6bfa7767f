package kernel

import "github.com/tanmay-deshpand3/geometry-solver/entity"

// Snapshot is an opaque, independent copy of a State's geometry and UI
// state, suitable for an undo stack (SPEC_FULL.md §9 supplemental
// scope — spec.md's data model has no history concept of its own).
type Snapshot struct {
	store          *entity.Store
	activeTool     Tool
	zoom           float64
	offsetX        float64
	offsetY        float64
	selectedIDs    []entity.ID
	measureHistory []Measurement
}

// Snapshot captures the current session. Mutating st afterwards never
// affects the returned Snapshot, and vice versa.
func (st *State) Snapshot() *Snapshot {
	return &Snapshot{
		store:          st.Store.Clone(),
		activeTool:     st.ActiveTool,
		zoom:           st.Zoom,
		offsetX:        st.OffsetX,
		offsetY:        st.OffsetY,
		selectedIDs:    append([]entity.ID(nil), st.SelectedIDs...),
		measureHistory: append([]Measurement(nil), st.MeasureHistory...),
	}
}

// Restore replaces st's geometry and UI state with snap's, leaving
// snap itself untouched so it can be restored again later.
func (st *State) Restore(snap *Snapshot) {
	st.Store = snap.store.Clone()
	st.ActiveTool = snap.activeTool
	st.Zoom = snap.zoom
	st.OffsetX = snap.offsetX
	st.OffsetY = snap.offsetY
	st.SelectedIDs = append([]entity.ID(nil), snap.selectedIDs...)
	st.MeasureHistory = append([]Measurement(nil), snap.measureHistory...)
}
