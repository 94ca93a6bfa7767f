package entity

// Clone returns a copy for trial solving: every point, segment,
// circle, arc, variable and constraint is copied by value, together
// with its id slices (ChildrenIDs, PointIDs), so no entity or slice is
// shared with s. Mutating the result never affects s.
func (s *Store) Clone() *Store {
	clone := &Store{
		Points:      make(map[ID]*Point, len(s.Points)),
		Segments:    make(map[ID]*Segment, len(s.Segments)),
		Circles:     make(map[ID]*Circle, len(s.Circles)),
		Arcs:        make(map[ID]*Arc, len(s.Arcs)),
		Variables:   make(map[string]*Variable, len(s.Variables)),
		Constraints: make(map[ID]*Constraint, len(s.Constraints)),
		nextID:      s.nextID,
		labels:      s.labels,
	}
	for id, p := range s.Points {
		cp := *p
		cp.ChildrenIDs = append([]ID(nil), p.ChildrenIDs...)
		clone.Points[id] = &cp
	}
	for id, seg := range s.Segments {
		cp := *seg
		cp.ChildrenIDs = append([]ID(nil), seg.ChildrenIDs...)
		clone.Segments[id] = &cp
	}
	for id, c := range s.Circles {
		cp := *c
		cp.PointIDs = append([]ID(nil), c.PointIDs...)
		cp.ChildrenIDs = append([]ID(nil), c.ChildrenIDs...)
		clone.Circles[id] = &cp
	}
	for id, a := range s.Arcs {
		cp := *a
		cp.ChildrenIDs = append([]ID(nil), a.ChildrenIDs...)
		clone.Arcs[id] = &cp
	}
	for name, v := range s.Variables {
		cp := *v
		clone.Variables[name] = &cp
	}
	for id, c := range s.Constraints {
		cp := *c
		cp.PointIDs = append([]ID(nil), c.PointIDs...)
		clone.Constraints[id] = &cp
	}
	return clone
}

// WithExtraConstraint returns a clone of s with c appended to its
// constraint list, used by constraint.Validate to trial-solve a
// candidate constraint in isolation (spec.md §4.8).
func (s *Store) WithExtraConstraint(c *Constraint) *Store {
	clone := s.Clone()
	clone.Constraints[c.ID] = c
	return clone
}
