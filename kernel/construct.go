package kernel

import (
	"github.com/tanmay-deshpand3/geometry-solver/construct"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
	"github.com/tanmay-deshpand3/geometry-solver/isect"
)

// The point, segment and circle wrappers below follow the same shape:
// delegate to construct for the entity itself, then run one
// intersection-synthesis pass so newly introduced geometry is
// immediately cross-referenced against everything already in the store
// (spec.md §4.9). AddArc and AddVariable delegate only; they run no
// synthesis pass.

func (st *State) AddPoint(x, y float64, isFloating bool) *entity.Point {
	p := construct.AddPoint(st.Store, x, y, isFloating)
	isect.FindAllIntersections(st.Store)
	return p
}

func (st *State) AddSegmentTwoPoints(p1, p2 entity.ID) *entity.Segment {
	seg := construct.AddSegmentTwoPoints(st.Store, p1, p2)
	if seg != nil {
		isect.FindAllIntersections(st.Store)
	}
	return seg
}

func (st *State) AddSegmentAbsAngle(p1 entity.ID, length, angleDeg float64) *entity.Segment {
	seg := construct.AddSegmentAbsAngle(st.Store, p1, length, angleDeg)
	if seg != nil {
		isect.FindAllIntersections(st.Store)
	}
	return seg
}

func (st *State) AddSegmentRelAngle(p1, refSegment entity.ID, length, relAngleDeg float64) *entity.Segment {
	seg := construct.AddSegmentRelAngle(st.Store, p1, refSegment, length, relAngleDeg)
	if seg != nil {
		isect.FindAllIntersections(st.Store)
	}
	return seg
}

func (st *State) AddCircleRadius(center entity.ID, radius float64) *entity.Circle {
	c := construct.AddCircleRadius(st.Store, center, radius)
	if c != nil {
		isect.FindAllIntersections(st.Store)
	}
	return c
}

func (st *State) AddCircleCircumference(center, circumPoint entity.ID) *entity.Circle {
	c := construct.AddCircleCircumference(st.Store, center, circumPoint)
	if c != nil {
		isect.FindAllIntersections(st.Store)
	}
	return c
}

func (st *State) AddCircleThreePoints(p1, p2, p3 entity.ID) *entity.Circle {
	c := construct.AddCircleThreePoints(st.Store, p1, p2, p3)
	if c != nil {
		isect.FindAllIntersections(st.Store)
	}
	return c
}

func (st *State) AddArc(circleID, start, end entity.ID) *entity.Arc {
	return construct.AddArc(st.Store, circleID, start, end)
}

func (st *State) AddVariable(name string, value float64, isDetermined bool) *entity.Variable {
	return construct.AddVariable(st.Store, name, value, isDetermined)
}

// DeleteEntity removes id and everything that transitively depends on
// it (spec.md §3 invariant 1). It is a thin passthrough to
// entity.Store.Delete; no further synthesis pass runs since deletion
// never creates new geometry to cross-reference.
func (st *State) DeleteEntity(id entity.ID) {
	st.Store.Delete(id)
}

// FindAllIntersections exposes the synthesizer directly, for hosts that
// want to force a re-scan (e.g. after a batch of edits made through
// Snapshot/Restore rather than the per-call wrappers above).
func (st *State) FindAllIntersections() []*entity.Point {
	return isect.FindAllIntersections(st.Store)
}
