// Package construct implements the entity constructors of spec.md §4.3:
// operations that materialize new points, segments, circles and arcs in
// an entity.Store and wire the child-link bookkeeping described by
// spec.md §3 invariant 2. Every constructor returns nil, leaving the
// store unchanged, when a referenced parent id does not resolve
// (spec.md §7 "silent null on bad reference").
package construct

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
	"github.com/tanmay-deshpand3/geometry-solver/geom"
)

// AddPoint creates a free-standing point. It never fails.
func AddPoint(s *entity.Store, x, y float64, isFloating bool) *entity.Point {
	p := &entity.Point{
		ID:         s.NextID(),
		X:          x,
		Y:          y,
		Label:      s.NextLabel(),
		IsFloating: isFloating,
	}
	s.Points[p.ID] = p
	return p
}

// AddSegmentTwoPoints connects two existing, distinct points. It
// returns nil if either id is unknown or if p1 == p2 (spec.md §3
// invariant 3).
func AddSegmentTwoPoints(s *entity.Store, p1, p2 entity.ID) *entity.Segment {
	if p1 == p2 {
		return nil
	}
	if s.Points[p1] == nil || s.Points[p2] == nil {
		return nil
	}
	seg := &entity.Segment{
		ID:   s.NextID(),
		P1:   p1,
		P2:   p2,
		Type: entity.TwoPoints,
	}
	s.Segments[seg.ID] = seg
	s.AddChild(p1, seg.ID)
	s.AddChild(p2, seg.ID)
	return seg
}

// farEndpoint computes the far endpoint of a segment anchored at p1
// with the given length and math-convention angle in degrees, applying
// the screen-Y-inversion from spec.md §4.3/§3 invariant 6.
func farEndpoint(p1 entity.Point, length, angleDeg float64) (x, y float64) {
	rad := angleDeg * math.Pi / 180
	return p1.X + length*math.Cos(rad), p1.Y - length*math.Sin(rad)
}

// AddSegmentAbsAngle creates a segment from an existing point p1 at the
// given length and absolute construction angle (degrees, math
// convention), materializing the far endpoint as a new point. Returns
// nil if p1 is unknown.
func AddSegmentAbsAngle(s *entity.Store, p1 entity.ID, length, angleDeg float64) *entity.Segment {
	anchor := s.Points[p1]
	if anchor == nil {
		return nil
	}
	fx, fy := farEndpoint(*anchor, length, angleDeg)
	far := AddPoint(s, fx, fy, false)

	seg := &entity.Segment{
		ID:     s.NextID(),
		P1:     p1,
		P2:     far.ID,
		Type:   entity.AbsAngle,
		Length: length,
		Angle:  angleDeg,
	}
	s.Segments[seg.ID] = seg
	s.AddChild(p1, seg.ID)
	s.AddChild(far.ID, seg.ID)
	return seg
}

// AddSegmentRelAngle creates a segment from an existing point p1 whose
// construction angle is refSegment's current angle plus relAngleDeg.
// Returns nil if p1 or refSegment is unknown.
func AddSegmentRelAngle(s *entity.Store, p1, refSegment entity.ID, length, relAngleDeg float64) *entity.Segment {
	anchor := s.Points[p1]
	ref := s.Segments[refSegment]
	if anchor == nil || ref == nil {
		return nil
	}
	refP1 := s.Points[ref.P1]
	refP2 := s.Points[ref.P2]
	if refP1 == nil || refP2 == nil {
		chk.Panic("construct: reference segment %d has a dangling endpoint", refSegment)
	}
	refAngle := geom.SegmentAngle(
		geom.Point2D{X: refP1.X, Y: refP1.Y},
		geom.Point2D{X: refP2.X, Y: refP2.Y},
	)
	angleDeg := refAngle + relAngleDeg

	fx, fy := farEndpoint(*anchor, length, angleDeg)
	far := AddPoint(s, fx, fy, false)

	seg := &entity.Segment{
		ID:            s.NextID(),
		P1:            p1,
		P2:            far.ID,
		Type:          entity.RelAngle,
		Length:        length,
		Angle:         angleDeg,
		RefSegmentID:  refSegment,
		HasRefSegment: true,
	}
	s.Segments[seg.ID] = seg
	s.AddChild(p1, seg.ID)
	s.AddChild(far.ID, seg.ID)
	s.AddChild(refSegment, seg.ID)
	return seg
}

// AddCircleRadius creates a circle with an explicit center and scalar
// radius. Returns nil if center is unknown.
func AddCircleRadius(s *entity.Store, center entity.ID, radius float64) *entity.Circle {
	if s.Points[center] == nil {
		return nil
	}
	c := &entity.Circle{
		ID:        s.NextID(),
		Type:      entity.Radius,
		CenterID:  center,
		HasCenter: true,
		Radius:    radius,
	}
	s.Circles[c.ID] = c
	s.AddChild(center, c.ID)
	return c
}

// AddCircleCircumference creates a circle with an explicit center
// passing through circumPoint; the radius is computed once from the
// distance between them and never recomputed dynamically (spec.md
// §4.3, §9). Returns nil if either id is unknown.
func AddCircleCircumference(s *entity.Store, center, circumPoint entity.ID) *entity.Circle {
	cp := s.Points[center]
	fp := s.Points[circumPoint]
	if cp == nil || fp == nil {
		return nil
	}
	radius := math.Hypot(fp.X-cp.X, fp.Y-cp.Y)
	c := &entity.Circle{
		ID:        s.NextID(),
		Type:      entity.Radius,
		CenterID:  center,
		HasCenter: true,
		Radius:    radius,
		PointIDs:  []entity.ID{circumPoint},
	}
	s.Circles[c.ID] = c
	s.AddChild(center, c.ID)
	s.AddChild(circumPoint, c.ID)
	return c
}

// AddCircleThreePoints materializes the circumcenter of p1,p2,p3 as a
// new point and creates a circle around it, with radius frozen at
// construction time. Returns nil if any id is unknown or the three
// points are (near-)collinear.
func AddCircleThreePoints(s *entity.Store, p1, p2, p3 entity.ID) *entity.Circle {
	a := s.Points[p1]
	b := s.Points[p2]
	c := s.Points[p3]
	if a == nil || b == nil || c == nil {
		return nil
	}
	cx, cy, r, ok := geom.Circumcircle(
		geom.Point2D{X: a.X, Y: a.Y},
		geom.Point2D{X: b.X, Y: b.Y},
		geom.Point2D{X: c.X, Y: c.Y},
	)
	if !ok {
		return nil
	}
	center := AddPoint(s, cx, cy, false)

	circle := &entity.Circle{
		ID:        s.NextID(),
		Type:      entity.ThreePoints,
		CenterID:  center.ID,
		HasCenter: true,
		Radius:    r,
		PointIDs:  []entity.ID{p1, p2, p3},
	}
	s.Circles[circle.ID] = circle
	s.AddChild(center.ID, circle.ID)
	s.AddChild(p1, circle.ID)
	s.AddChild(p2, circle.ID)
	s.AddChild(p3, circle.ID)
	return circle
}

// AddArc creates a counter-clockwise arc from start to end around
// circle's center. Returns nil if any id is unknown, or if circle does
// not have a center (it always does once constructed, but a stale id
// after a cascading delete resolves to nil here rather than panicking).
func AddArc(s *entity.Store, circleID, start, end entity.ID) *entity.Arc {
	circle := s.Circles[circleID]
	if circle == nil || !circle.HasCenter {
		return nil
	}
	if s.Points[start] == nil || s.Points[end] == nil {
		return nil
	}
	arc := &entity.Arc{
		ID:       s.NextID(),
		CircleID: circleID,
		StartID:  start,
		EndID:    end,
	}
	s.Arcs[arc.ID] = arc
	s.AddChild(circleID, arc.ID)
	s.AddChild(start, arc.ID)
	s.AddChild(end, arc.ID)
	return arc
}

// AddVariable declares a new named variable. Returns nil if the name
// already exists (spec.md §3 invariant 5: variable names are unique).
func AddVariable(s *entity.Store, name string, value float64, isDetermined bool) *entity.Variable {
	if _, exists := s.Variables[name]; exists {
		return nil
	}
	v := &entity.Variable{Name: name, Value: value, IsDetermined: isDetermined}
	s.Variables[name] = v
	return v
}
