package constraint

import (
	"math"
	"sort"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
	"github.com/tanmay-deshpand3/geometry-solver/expr"
	"github.com/tanmay-deshpand3/geometry-solver/geom"
)

// ResidualVector evaluates every constraint in s, in ascending id order
// (so the Jacobian's columns stay stable across calls), and returns the
// residual vector r used by the LM driver in lm.go. A constraint whose
// referenced entities have since been deleted contributes 0 — by the
// time Solve runs, construct.Commit/entity.Delete have already kept the
// child-link graph consistent, so a dangling reference here would be a
// programmer error upstream, not a user-facing failure mode to surface
// through the residual.
func ResidualVector(s *entity.Store) []float64 {
	ids := make([]entity.ID, 0, len(s.Constraints))
	for id := range s.Constraints {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	r := make([]float64, len(ids))
	for i, id := range ids {
		r[i] = residualFor(s, s.Constraints[id])
	}
	return r
}

func residualFor(s *entity.Store, c *entity.Constraint) float64 {
	switch c.Type {
	case entity.Distance:
		return distanceResidual(s, c)
	case entity.Angle:
		return angleResidual(s, c)
	case entity.PointOnSegment:
		return pointOnSegmentResidual(s, c)
	case entity.PointOnCircle:
		return pointOnCircleResidual(s, c)
	case entity.PointOnArc:
		return pointOnArcResidual(s, c)
	case entity.Equation:
		return equationResidual(s, c)
	default:
		return 0
	}
}

// exprVars builds the variable environment an expression sees: every
// named variable currently in the store, all considered set (the store
// never holds a variable without a concrete value — "undetermined" in
// spec.md §4.1(a) describes a name the solver has not been told to
// control, not a missing value).
func exprVars(s *entity.Store) expr.Vars {
	vars := make(expr.Vars, len(s.Variables))
	for name, v := range s.Variables {
		vars[name] = expr.Value{Num: v.Value, IsSet: true}
	}
	return vars
}

// evalTarget resolves a constraint's Expression field to a number. A
// bare numeric literal parses through the same grammar as any other
// expression, so no separate fast path is needed.
func evalTarget(s *entity.Store, expression string) (float64, bool) {
	return expr.Evaluate(expression, exprVars(s))
}

func distanceResidual(s *entity.Store, c *entity.Constraint) float64 {
	p1, p2 := s.Points[c.PointIDs[0]], s.Points[c.PointIDs[1]]
	if p1 == nil || p2 == nil {
		return 0
	}
	target, ok := evalTarget(s, c.Expression)
	if !ok {
		return 0
	}
	dist := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	return dist - target
}

func angleResidual(s *entity.Store, c *entity.Constraint) float64 {
	p1, p2 := s.Points[c.PointIDs[0]], s.Points[c.PointIDs[1]]
	if p1 == nil || p2 == nil {
		return 0
	}
	target, ok := evalTarget(s, c.Expression)
	if !ok {
		return 0
	}
	actual := geom.SegmentAngle(geom.Point2D{X: p1.X, Y: p1.Y}, geom.Point2D{X: p2.X, Y: p2.Y})
	return wrapAngle(actual - target)
}

// wrapAngle folds a degree difference into (-180, 180].
func wrapAngle(deg float64) float64 {
	for deg <= -180 {
		deg += 360
	}
	for deg > 180 {
		deg -= 360
	}
	return deg
}

func pointOnSegmentResidual(s *entity.Store, c *entity.Constraint) float64 {
	p := s.Points[c.PointIDs[0]]
	seg := s.Segments[c.TargetID]
	if p == nil || seg == nil {
		return 0
	}
	a, b := s.Points[seg.P1], s.Points[seg.P2]
	if a == nil || b == nil {
		return 0
	}
	return geom.PointSegmentDistance(
		geom.Point2D{X: p.X, Y: p.Y},
		geom.Point2D{X: a.X, Y: a.Y},
		geom.Point2D{X: b.X, Y: b.Y},
	)
}

func pointOnCircleResidual(s *entity.Store, c *entity.Constraint) float64 {
	p := s.Points[c.PointIDs[0]]
	circle := s.Circles[c.TargetID]
	if p == nil || circle == nil {
		return 0
	}
	center := s.Points[circle.CenterID]
	if center == nil {
		return 0
	}
	return math.Abs(math.Hypot(p.X-center.X, p.Y-center.Y) - circle.Radius)
}

// pointOnArcResidual adds an angular penalty to the radial term whenever
// p's bearing from the circle's center falls outside the arc's
// counter-clockwise span from StartID to EndID, per spec.md §4.4's
// PointOnArc formula: the penalty is the shorter of the two angular
// distances to the span's endpoints, scaled by the radius so it is
// commensurate with the radial term.
func pointOnArcResidual(s *entity.Store, c *entity.Constraint) float64 {
	p := s.Points[c.PointIDs[0]]
	arc := s.Arcs[c.TargetID]
	if p == nil || arc == nil {
		return 0
	}
	circle := s.Circles[arc.CircleID]
	if circle == nil {
		return 0
	}
	center := s.Points[circle.CenterID]
	start := s.Points[arc.StartID]
	end := s.Points[arc.EndID]
	if center == nil || start == nil || end == nil {
		return 0
	}

	radial := math.Abs(math.Hypot(p.X-center.X, p.Y-center.Y) - circle.Radius)

	theta := bearing(center, p)
	thetaStart := bearing(center, start)
	thetaEnd := bearing(center, end)

	if inArcSpan(theta, thetaStart, thetaEnd) {
		return radial
	}
	dStart := angularDist(theta, thetaStart)
	dEnd := angularDist(theta, thetaEnd)
	penalty := dStart
	if dEnd < penalty {
		penalty = dEnd
	}
	return radial + penalty*circle.Radius
}

func bearing(center, p *entity.Point) float64 {
	return normalizeAngle(math.Atan2(p.Y-center.Y, p.X-center.X))
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

func angularDist(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

func inArcSpan(theta, start, end float64) bool {
	if start <= end {
		return theta >= start && theta <= end
	}
	return theta >= start || theta <= end
}

func equationResidual(s *entity.Store, c *entity.Constraint) float64 {
	v, ok := expr.Evaluate(c.Expression, exprVars(s))
	if !ok {
		return 0
	}
	return v
}
