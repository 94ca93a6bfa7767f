package geom_test

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/tanmay-deshpand3/geometry-solver/geom"
)

func TestCircumcircle(t *testing.T) {
	cx, cy, r, ok := geom.Circumcircle(
		geom.Point2D{X: 0, Y: 0},
		geom.Point2D{X: 4, Y: 0},
		geom.Point2D{X: 0, Y: 3},
	)
	if !ok {
		t.Fatal("expected a circumcircle")
	}
	chk.Scalar(t, "cx", 1e-9, cx, 2.0)
	chk.Scalar(t, "cy", 1e-9, cy, 1.5)
	chk.Scalar(t, "r", 1e-9, r, 2.5)
}

func TestCircumcircleEquidistance(t *testing.T) {
	p1 := geom.Point2D{X: 1, Y: 7}
	p2 := geom.Point2D{X: -3, Y: 2}
	p3 := geom.Point2D{X: 5, Y: -4}
	cx, cy, r, ok := geom.Circumcircle(p1, p2, p3)
	if !ok {
		t.Fatal("expected non-collinear circumcircle")
	}
	for i, p := range []geom.Point2D{p1, p2, p3} {
		d := math.Hypot(p.X-cx, p.Y-cy)
		chk.Scalar(t, "dist", 1e-9*r, d, r)
		_ = i
	}
}

func TestCircumcircleCollinearFails(t *testing.T) {
	_, _, _, ok := geom.Circumcircle(
		geom.Point2D{X: 0, Y: 0},
		geom.Point2D{X: 1, Y: 1},
		geom.Point2D{X: 2, Y: 2},
	)
	if ok {
		t.Fatal("expected collinear failure")
	}
}

func TestPointSegmentDistanceClampsToEndpoint(t *testing.T) {
	d := geom.PointSegmentDistance(
		geom.Point2D{X: -5, Y: 0},
		geom.Point2D{X: 0, Y: 0},
		geom.Point2D{X: 10, Y: 0},
	)
	chk.Scalar(t, "d", 1e-12, d, 5.0)
}

func TestPointSegmentDistanceDegenerate(t *testing.T) {
	d := geom.PointSegmentDistance(
		geom.Point2D{X: 3, Y: 4},
		geom.Point2D{X: 0, Y: 0},
		geom.Point2D{X: 1e-4, Y: 0},
	)
	chk.Scalar(t, "d", 1e-9, d, 5.0)
}

func TestSegmentAngleMathConvention(t *testing.T) {
	a := geom.SegmentAngle(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 1, Y: 0})
	chk.Scalar(t, "east", 1e-12, a, 0)

	a = geom.SegmentAngle(geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 0, Y: -1})
	chk.Scalar(t, "screen-down is math-up", 1e-12, a, 90)
}

func TestSegmentSegmentIntersectionCross(t *testing.T) {
	pt, ok := geom.SegmentSegmentIntersection(
		geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 10, Y: 10},
		geom.Point2D{X: 0, Y: 10}, geom.Point2D{X: 10, Y: 0},
	)
	if !ok {
		t.Fatal("expected intersection")
	}
	chk.Scalar(t, "x", 1e-9, pt.X, 5)
	chk.Scalar(t, "y", 1e-9, pt.Y, 5)
}

func TestSegmentSegmentIntersectionExcludesEndpoint(t *testing.T) {
	_, ok := geom.SegmentSegmentIntersection(
		geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 10, Y: 0},
		geom.Point2D{X: 10, Y: 0}, geom.Point2D{X: 10, Y: 10},
	)
	if ok {
		t.Fatal("endpoint-touching segments should not intersect")
	}
}

func TestSegmentSegmentParallelNoIntersection(t *testing.T) {
	_, ok := geom.SegmentSegmentIntersection(
		geom.Point2D{X: 0, Y: 0}, geom.Point2D{X: 10, Y: 0},
		geom.Point2D{X: 0, Y: 1}, geom.Point2D{X: 10, Y: 1},
	)
	if ok {
		t.Fatal("parallel segments should not intersect")
	}
}

func TestSegmentCircleIntersectionTwoPoints(t *testing.T) {
	pts := geom.SegmentCircleIntersection(
		geom.Point2D{X: -10, Y: 0}, geom.Point2D{X: 10, Y: 0},
		geom.Point2D{X: 0, Y: 0}, 5,
	)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
}

func TestCircleCircleIntersectionTwoPoints(t *testing.T) {
	pts := geom.CircleCircleIntersection(
		geom.Point2D{X: 0, Y: 0}, 5,
		geom.Point2D{X: 6, Y: 0}, 5,
	)
	if len(pts) != 2 {
		t.Fatalf("expected 2 points, got %d", len(pts))
	}
}

func TestCircleCircleIntersectionDisjoint(t *testing.T) {
	pts := geom.CircleCircleIntersection(
		geom.Point2D{X: 0, Y: 0}, 1,
		geom.Point2D{X: 100, Y: 0}, 1,
	)
	if pts != nil {
		t.Fatalf("expected no intersection, got %v", pts)
	}
}
