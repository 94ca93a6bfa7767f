// Package isect implements the intersection synthesizer: after every
// construction, it enumerates all entity pairs and inserts a new point
// at each intersection that is not within tolerance of an existing
// point (spec.md §4.9). The pass is single-shot: newly added points do
// not trigger further discovery within the same call.
package isect

import (
	"sort"

	"github.com/cpmech/gosl/gm"

	"github.com/tanmay-deshpand3/geometry-solver/construct"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
	"github.com/tanmay-deshpand3/geometry-solver/geom"
)

// sameEps is ε_same from spec.md §4.9: a Chebyshev-distance tolerance
// (both |Δx| and |Δy| must be below it) for deciding a candidate
// intersection point already exists.
const sameEps = 1e-3

// index is a broad-phase spatial lookup over the store's existing
// points, backed by gosl's gm.Bins (the same structure gofem's output
// layer uses to map coordinates to node/integration-point ids within a
// tolerance, out/out.go). Its nearest point is checked first, so a
// candidate that duplicates it is rejected without a scan; any other
// candidate still gets the exact scan in contains below.
type index struct {
	bins   gm.Bins
	byInt  map[int]entity.ID
	active bool
}

func newIndex(s *entity.Store) *index {
	idx := &index{byInt: make(map[int]entity.ID, len(s.Points))}
	if len(s.Points) == 0 {
		return idx
	}
	xi := []float64{s.Points[firstKey(s.Points)].X, s.Points[firstKey(s.Points)].Y}
	xf := append([]float64(nil), xi...)
	for _, p := range s.Points {
		if p.X < xi[0] {
			xi[0] = p.X
		}
		if p.Y < xi[1] {
			xi[1] = p.Y
		}
		if p.X > xf[0] {
			xf[0] = p.X
		}
		if p.Y > xf[1] {
			xf[1] = p.Y
		}
	}
	// pad the bounding box so points exactly on the boundary, and
	// future intersection points slightly outside today's hull, still
	// fall within the grid.
	pad := 1.0
	xi[0] -= pad
	xi[1] -= pad
	xf[0] += pad
	xf[1] += pad

	if err := idx.bins.Init(xi, xf, 20); err != nil {
		// Bins is a pure acceleration structure; if it cannot be
		// initialised (degenerate bounding box) we fall back to the
		// exact O(n) scan in contains below.
		idx.active = false
		return idx
	}
	idx.active = true
	n := 0
	for id, p := range s.Points {
		intID := n
		n++
		idx.byInt[intID] = id
		_ = idx.bins.Append([]float64{p.X, p.Y}, intID)
	}
	return idx
}

func firstKey(m map[entity.ID]*entity.Point) entity.ID {
	for k := range m {
		return k
	}
	return 0
}

// contains reports whether some existing point lies within the
// Chebyshev tolerance of (x,y).
func (idx *index) contains(s *entity.Store, x, y float64) bool {
	if idx.active {
		intID, _, ok := idx.bins.FindClosest([]float64{x, y})
		if ok {
			if id, found := idx.byInt[intID]; found {
				p := s.Points[id]
				if p != nil && chebyshev(p.X, p.Y, x, y) {
					return true
				}
			}
		}
	}
	// Bins.FindClosest only guarantees the nearest candidate, which is
	// sufficient whenever points are well separated relative to
	// sameEps; fall back to an exact scan so the tolerance contract
	// from spec.md §4.9 holds regardless of point density.
	for _, p := range s.Points {
		if chebyshev(p.X, p.Y, x, y) {
			return true
		}
	}
	return false
}

// add registers a freshly synthesized point so later candidates in the
// same pass see it as "existing" (spec.md §8 intersection idempotence
// is about repeated calls to FindAllIntersections, not about
// deduplicating within one call).
func (idx *index) add(s *entity.Store, p *entity.Point) {
	intID := len(idx.byInt)
	idx.byInt[intID] = p.ID
	if idx.active {
		_ = idx.bins.Append([]float64{p.X, p.Y}, intID)
	}
}

func chebyshev(x1, y1, x2, y2 float64) bool {
	return absf(x1-x2) < sameEps && absf(y1-y2) < sameEps
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func segPoints(s *entity.Store, seg *entity.Segment) (p1, p2 geom.Point2D, ok bool) {
	a := s.Points[seg.P1]
	b := s.Points[seg.P2]
	if a == nil || b == nil {
		return geom.Point2D{}, geom.Point2D{}, false
	}
	return geom.Point2D{X: a.X, Y: a.Y}, geom.Point2D{X: b.X, Y: b.Y}, true
}

func circleGeom(s *entity.Store, c *entity.Circle) (center geom.Point2D, radius float64, ok bool) {
	cp := s.Points[c.CenterID]
	if cp == nil {
		return geom.Point2D{}, 0, false
	}
	return geom.Point2D{X: cp.X, Y: cp.Y}, c.Radius, true
}

// FindAllIntersections runs one synthesis pass over s, inserting a new
// point (via construct.AddPoint, inheriting the next id/label) at every
// novel intersection, and returns the points it added.
func FindAllIntersections(s *entity.Store) []*entity.Point {
	idx := newIndex(s)
	var added []*entity.Point

	tryAdd := func(candidates []geom.Point2D) {
		for _, c := range candidates {
			if idx.contains(s, c.X, c.Y) {
				continue
			}
			p := construct.AddPoint(s, c.X, c.Y, false)
			idx.add(s, p)
			added = append(added, p)
		}
	}

	segIDs := sortedSegmentIDs(s)
	circleIDs := sortedCircleIDs(s)

	for i := 0; i < len(segIDs); i++ {
		for j := i + 1; j < len(segIDs); j++ {
			a1, a2, okA := segPoints(s, s.Segments[segIDs[i]])
			b1, b2, okB := segPoints(s, s.Segments[segIDs[j]])
			if !okA || !okB {
				continue
			}
			if pt, ok := geom.SegmentSegmentIntersection(a1, a2, b1, b2); ok {
				tryAdd([]geom.Point2D{pt})
			}
		}
	}

	for _, segID := range segIDs {
		p1, p2, okSeg := segPoints(s, s.Segments[segID])
		if !okSeg {
			continue
		}
		for _, circID := range circleIDs {
			center, r, okC := circleGeom(s, s.Circles[circID])
			if !okC {
				continue
			}
			tryAdd(geom.SegmentCircleIntersection(p1, p2, center, r))
		}
	}

	for i := 0; i < len(circleIDs); i++ {
		for j := i + 1; j < len(circleIDs); j++ {
			c1, r1, ok1 := circleGeom(s, s.Circles[circleIDs[i]])
			c2, r2, ok2 := circleGeom(s, s.Circles[circleIDs[j]])
			if !ok1 || !ok2 {
				continue
			}
			tryAdd(geom.CircleCircleIntersection(c1, r1, c2, r2))
		}
	}

	return added
}

func sortedSegmentIDs(s *entity.Store) []entity.ID {
	ids := make([]entity.ID, 0, len(s.Segments))
	for id := range s.Segments {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortedCircleIDs(s *entity.Store) []entity.ID {
	ids := make([]entity.ID, 0, len(s.Circles))
	for id := range s.Circles {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

func sortIDs(ids []entity.ID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
