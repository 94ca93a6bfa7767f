package isect_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/tanmay-deshpand3/geometry-solver/construct"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
	"github.com/tanmay-deshpand3/geometry-solver/isect"
)

func TestCrossingSegmentsProduceOneIntersection(t *testing.T) {
	s := entity.NewStore()
	a := construct.AddPoint(s, 0, 0, false)
	b := construct.AddPoint(s, 10, 10, false)
	c := construct.AddPoint(s, 0, 10, false)
	d := construct.AddPoint(s, 10, 0, false)
	construct.AddSegmentTwoPoints(s, a.ID, b.ID)
	construct.AddSegmentTwoPoints(s, c.ID, d.ID)

	added := isect.FindAllIntersections(s)
	if len(added) != 1 {
		t.Fatalf("expected 1 new point, got %d", len(added))
	}
	chk.Scalar(t, "x", 1e-9, added[0].X, 5)
	chk.Scalar(t, "y", 1e-9, added[0].Y, 5)
}

func TestSecondPassAddsNothing(t *testing.T) {
	s := entity.NewStore()
	a := construct.AddPoint(s, 0, 0, false)
	b := construct.AddPoint(s, 10, 10, false)
	c := construct.AddPoint(s, 0, 10, false)
	d := construct.AddPoint(s, 10, 0, false)
	construct.AddSegmentTwoPoints(s, a.ID, b.ID)
	construct.AddSegmentTwoPoints(s, c.ID, d.ID)

	isect.FindAllIntersections(s)
	secondPass := isect.FindAllIntersections(s)
	if len(secondPass) != 0 {
		t.Fatalf("expected idempotence, got %d new points", len(secondPass))
	}
}

func TestSegmentCircleIntersectionAddsTwoPoints(t *testing.T) {
	s := entity.NewStore()
	center := construct.AddPoint(s, 0, 0, false)
	construct.AddCircleRadius(s, center.ID, 5)
	a := construct.AddPoint(s, -10, 0, false)
	b := construct.AddPoint(s, 10, 0, false)
	construct.AddSegmentTwoPoints(s, a.ID, b.ID)

	added := isect.FindAllIntersections(s)
	if len(added) != 2 {
		t.Fatalf("expected 2 new points, got %d", len(added))
	}
}

func TestNoDuplicateWhenThreeSegmentsMeetAtSamePoint(t *testing.T) {
	s := entity.NewStore()
	a := construct.AddPoint(s, 0, 0, false)
	b := construct.AddPoint(s, 10, 10, false)
	c := construct.AddPoint(s, 0, 10, false)
	d := construct.AddPoint(s, 10, 0, false)
	e := construct.AddPoint(s, 5, -10, false)
	f := construct.AddPoint(s, 5, 20, false)
	construct.AddSegmentTwoPoints(s, a.ID, b.ID)
	construct.AddSegmentTwoPoints(s, c.ID, d.ID)
	construct.AddSegmentTwoPoints(s, e.ID, f.ID) // also passes through (5,5)

	added := isect.FindAllIntersections(s)
	if len(added) != 1 {
		t.Fatalf("expected the three pairwise crossings to collapse to 1 point, got %d", len(added))
	}
}
