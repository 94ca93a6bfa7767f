// Package entity defines the geometric data model — points, segments,
// circles, arcs, variables and constraints — and the in-memory Store
// that owns them by identifier, with cascading delete and the
// child-link bookkeeping described in spec.md §3.
package entity

// ID is a stable opaque identifier drawn from Store's monotonic
// allocator. Zero is never issued and is used as the "no id" value.
type ID uint64

// SegmentType distinguishes how a segment's geometry was constructed.
type SegmentType int

const (
	TwoPoints SegmentType = iota
	AbsAngle
	RelAngle
)

// CircleType distinguishes how a circle's geometry was constructed.
type CircleType int

const (
	Radius CircleType = iota
	ThreePoints
)

// ConstraintType enumerates the residual kinds in spec.md §4.4.
type ConstraintType int

const (
	Distance ConstraintType = iota
	Angle
	PointOnSegment
	PointOnCircle
	PointOnArc
	Equation
)

// Point is a floating or fixed vertex in abstract plane units.
type Point struct {
	ID          ID
	X, Y        float64
	Label       string
	ChildrenIDs []ID
	IsFloating  bool
}

// Segment connects two distinct points. ABS_ANGLE segments additionally
// carry their construction angle/length; REL_ANGLE segments also carry
// the id of the segment their angle is relative to.
type Segment struct {
	ID            ID
	P1, P2        ID
	Type          SegmentType
	Length        float64 // meaningful for AbsAngle/RelAngle
	Angle         float64 // degrees, math convention; meaningful for AbsAngle/RelAngle
	RefSegmentID  ID      // meaningful for RelAngle
	HasRefSegment bool
	ChildrenIDs   []ID
}

// Circle is either defined by an explicit center and radius, or by
// three points (whose circumcenter is materialized as a regular point
// at construction time). In both cases the radius is frozen at
// construction and never recomputed (spec.md §4.3, §9).
type Circle struct {
	ID          ID
	Type        CircleType
	CenterID    ID // resolves for both kinds
	HasCenter   bool
	Radius      float64
	PointIDs    []ID // empty for AddCircleRadius, 1 for AddCircleCircumference (the circumference point, unused dynamically), 3 for ThreePoints
	ChildrenIDs []ID
}

// Arc runs counter-clockwise from StartID to EndID around its circle's
// center.
type Arc struct {
	ID          ID
	CircleID    ID
	StartID     ID
	EndID       ID
	ChildrenIDs []ID
}

// Variable is a named numeric value. Determined variables are chosen by
// the solver; non-determined variables are pinned by the user.
type Variable struct {
	Name         string
	Value        float64
	IsDetermined bool
}

// Constraint couples points, circles/segments/arcs or free-standing
// expressions into a residual the solver tries to drive to zero.
// Which fields are meaningful depends on Type; see constraint.KindFor
// for the shape each kind expects.
type Constraint struct {
	ID         ID
	Type       ConstraintType
	PointIDs   []ID
	TargetID   ID // segment/circle/arc id for POINT_ON_*
	HasTarget  bool
	Expression string // for Distance, Angle, Equation
}
