// Package geom implements the pure geometric primitives used by the
// constructors, the intersection synthesizer and the constraint kernel:
// circumcircle, point-to-segment projection, segment angle, and the
// three pairwise intersection routines (segment/segment, segment/circle,
// circle/circle). Every function here is a closed-form computation with
// no dependency on the entity store.
package geom

import "math"

// tolerances match spec.md §4.2 exactly.
const (
	collinearEps = 1e-10
	degenSegEps  = 1e-6
	paramEps     = 1e-3 // ε for open-interval t,u ∈ (ε, 1-ε)
	parallelEps  = 1e-10
	tangentEps   = 1e-3
)

// Point2D is a plain Cartesian coordinate pair, independent of any
// entity identity.
type Point2D struct {
	X, Y float64
}

// Circumcircle computes the unique circle through three points using
// the determinant form in spec.md §4.2. ok is false for (near)
// collinear input, in which case cx, cy, r are zero.
func Circumcircle(p1, p2, p3 Point2D) (cx, cy, r float64, ok bool) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	cxp, cyp := p3.X, p3.Y

	d := 2 * (ax*(by-cyp) + bx*(cyp-ay) + cxp*(ay-by))
	if math.Abs(d) < collinearEps {
		return 0, 0, 0, false
	}

	aSq := ax*ax + ay*ay
	bSq := bx*bx + by*by
	cSq := cxp*cxp + cyp*cyp

	cx = (aSq*(by-cyp) + bSq*(cyp-ay) + cSq*(ay-by)) / d
	cy = (aSq*(cxp-bx) + bSq*(ax-cxp) + cSq*(bx-ax)) / d
	r = math.Hypot(cx-ax, cy-ay)
	return cx, cy, r, true
}

// SegmentAngle returns the math-convention angle in degrees (0° east,
// positive counter-clockwise) of the segment from p1 to p2, accounting
// for screen-space Y inversion per spec.md §3 invariant 6.
func SegmentAngle(p1, p2 Point2D) float64 {
	return math.Atan2(-(p2.Y-p1.Y), p2.X-p1.X) * 180 / math.Pi
}

// PointSegmentDistance returns the Euclidean distance from p to the
// segment [p1,p2], clamping the projection parameter to [0,1]. If the
// segment's squared length is below the degeneracy threshold, it
// returns the distance to p1.
func PointSegmentDistance(p, p1, p2 Point2D) float64 {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	segLenSq := dx*dx + dy*dy
	if segLenSq < degenSegEps {
		return math.Hypot(p.X-p1.X, p.Y-p1.Y)
	}
	t := ((p.X-p1.X)*dx + (p.Y-p1.Y)*dy) / segLenSq
	t = clamp01(t)
	projX := p1.X + t*dx
	projY := p1.Y + t*dy
	return math.Hypot(p.X-projX, p.Y-projY)
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// SegmentSegmentIntersection returns the unique interior intersection
// point of segments [a1,a2] and [b1,b2], if any. Endpoint intersections
// are excluded: both line parameters must lie in the open interval
// (ε, 1-ε) with ε = 1e-3.
func SegmentSegmentIntersection(a1, a2, b1, b2 Point2D) (pt Point2D, ok bool) {
	rX, rY := a2.X-a1.X, a2.Y-a1.Y
	sX, sY := b2.X-b1.X, b2.Y-b1.Y
	denom := rX*sY - rY*sX
	if math.Abs(denom) < parallelEps {
		return Point2D{}, false
	}
	qpX, qpY := b1.X-a1.X, b1.Y-a1.Y
	t := (qpX*sY - qpY*sX) / denom
	u := (qpX*rY - qpY*rX) / denom
	if !inOpenUnit(t) || !inOpenUnit(u) {
		return Point2D{}, false
	}
	return Point2D{X: a1.X + t*rX, Y: a1.Y + t*rY}, true
}

func inOpenUnit(t float64) bool {
	return t > paramEps && t < 1-paramEps
}

// SegmentCircleIntersection returns the 0, 1 or 2 points where segment
// [p1,p2] crosses the circle with the given center and radius, keeping
// only roots whose parameter lies in (ε, 1-ε) and discarding a
// near-duplicate second root.
func SegmentCircleIntersection(p1, p2, center Point2D, radius float64) []Point2D {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	fx := p1.X - center.X
	fy := p1.Y - center.Y

	a := dx*dx + dy*dy
	if a < degenSegEps {
		return nil
	}
	b := 2 * (fx*dx + fy*dy)
	c := fx*fx + fy*fy - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sqrtDisc := math.Sqrt(disc)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	var roots []float64
	if inOpenUnit(t1) {
		roots = append(roots, t1)
	}
	if inOpenUnit(t2) {
		if len(roots) == 0 || math.Abs(t2-roots[0]) > paramEps {
			roots = append(roots, t2)
		}
	}

	pts := make([]Point2D, len(roots))
	for i, t := range roots {
		pts[i] = Point2D{X: p1.X + t*dx, Y: p1.Y + t*dy}
	}
	return pts
}

// CircleCircleIntersection returns the 0, 1 or 2 intersection points of
// two circles, applying the standard disjoint/contained/concentric
// exclusions and the tangent-case single-point emission from
// spec.md §4.2.
func CircleCircleIntersection(c1 Point2D, r1 float64, c2 Point2D, r2 float64) []Point2D {
	dx := c2.X - c1.X
	dy := c2.Y - c1.Y
	d := math.Hypot(dx, dy)

	if d > r1+r2 || d < math.Abs(r1-r2) || d < tangentEps {
		return nil
	}

	a := (r1*r1 - r2*r2 + d*d) / (2 * d)
	hSq := r1*r1 - a*a
	if hSq < 0 {
		hSq = 0
	}
	h := math.Sqrt(hSq)

	midX := c1.X + a*dx/d
	midY := c1.Y + a*dy/d

	if h < tangentEps {
		return []Point2D{{X: midX, Y: midY}}
	}

	offX := -h * dy / d
	offY := h * dx / d
	return []Point2D{
		{X: midX + offX, Y: midY + offY},
		{X: midX - offX, Y: midY - offY},
	}
}
