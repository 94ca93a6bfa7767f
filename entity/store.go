package entity

import "github.com/tanmay-deshpand3/geometry-solver/label"

// Store owns every entity by id. Cross-references between entities are
// always ids, never pointers into these maps, so entities can be
// relocated, cloned or deleted without invalidating other entities'
// references (spec.md §3, §9).
type Store struct {
	Points      map[ID]*Point
	Segments    map[ID]*Segment
	Circles     map[ID]*Circle
	Arcs        map[ID]*Arc
	Variables   map[string]*Variable
	Constraints map[ID]*Constraint

	nextID ID
	labels label.Allocator
}

// NewStore returns an empty store, ready to use.
func NewStore() *Store {
	return &Store{
		Points:      make(map[ID]*Point),
		Segments:    make(map[ID]*Segment),
		Circles:     make(map[ID]*Circle),
		Arcs:        make(map[ID]*Arc),
		Variables:   make(map[string]*Variable),
		Constraints: make(map[ID]*Constraint),
	}
}

// NextID draws the next identifier from the store's single monotonic
// counter, shared by every entity kind (spec.md §9 "arena-with-indices"
// design note).
func (s *Store) NextID() ID {
	s.nextID++
	return s.nextID
}

// NextLabel draws the next point label from the store's label
// allocator. It advances on every call, including solver-internal
// calls (e.g. a THREE_POINTS circle's materialized center).
func (s *Store) NextLabel() string {
	return s.labels.Next()
}

// AddChild appends childID to parentID's ChildrenIDs if parentID
// resolves to a known entity and childID is not already present
// (spec.md §3 invariant 2: a child appears at most once).
func (s *Store) AddChild(parentID, childID ID) {
	switch {
	case s.Points[parentID] != nil:
		appendUnique(&s.Points[parentID].ChildrenIDs, childID)
	case s.Segments[parentID] != nil:
		appendUnique(&s.Segments[parentID].ChildrenIDs, childID)
	case s.Circles[parentID] != nil:
		appendUnique(&s.Circles[parentID].ChildrenIDs, childID)
	case s.Arcs[parentID] != nil:
		appendUnique(&s.Arcs[parentID].ChildrenIDs, childID)
	}
}

func appendUnique(ids *[]ID, id ID) {
	for _, existing := range *ids {
		if existing == id {
			return
		}
	}
	*ids = append(*ids, id)
}

func removeID(ids []ID, id ID) []ID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}

// removeChild drops childID from parentID's ChildrenIDs, a no-op if
// parentID is stale.
func (s *Store) removeChild(parentID, childID ID) {
	switch {
	case s.Points[parentID] != nil:
		s.Points[parentID].ChildrenIDs = removeID(s.Points[parentID].ChildrenIDs, childID)
	case s.Segments[parentID] != nil:
		s.Segments[parentID].ChildrenIDs = removeID(s.Segments[parentID].ChildrenIDs, childID)
	case s.Circles[parentID] != nil:
		s.Circles[parentID].ChildrenIDs = removeID(s.Circles[parentID].ChildrenIDs, childID)
	case s.Arcs[parentID] != nil:
		s.Arcs[parentID].ChildrenIDs = removeID(s.Arcs[parentID].ChildrenIDs, childID)
	}
}

// PointCoords returns the coordinates of id as a pair, or (0,0,false)
// if the point does not exist.
func (s *Store) PointCoords(id ID) (x, y float64, ok bool) {
	p, found := s.Points[id]
	if !found {
		return 0, 0, false
	}
	return p.X, p.Y, true
}

// StoreStats summarizes entity counts, used for host-facing diagnostics
// (SPEC_FULL.md §9) and internally by constraint.ExtractFreeParams to
// pre-size its parameter vector.
type StoreStats struct {
	Points          int
	FloatingPoints  int
	Segments        int
	Circles         int
	Arcs            int
	Variables       int
	DeterminedVars  int
	Constraints     int
	NextLabelSerial int
}

// Stats computes a snapshot of store sizes in one pass over each map.
func (s *Store) Stats() StoreStats {
	st := StoreStats{
		Points:          len(s.Points),
		Segments:        len(s.Segments),
		Circles:         len(s.Circles),
		Arcs:            len(s.Arcs),
		Variables:       len(s.Variables),
		Constraints:     len(s.Constraints),
		NextLabelSerial: s.labels.Count(),
	}
	for _, p := range s.Points {
		if p.IsFloating {
			st.FloatingPoints++
		}
	}
	for _, v := range s.Variables {
		if v.IsDetermined {
			st.DeterminedVars++
		}
	}
	return st
}
