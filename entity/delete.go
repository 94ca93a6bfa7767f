package entity

// Delete removes id and, transitively, every entity that was
// constructed in reference to it, by DFS post-order over a snapshot of
// ChildrenIDs (spec.md §4.3). It is idempotent: deleting an id that
// does not resolve to any entity is a no-op.
func (s *Store) Delete(id ID) {
	switch {
	case s.Points[id] != nil:
		s.deletePoint(id)
	case s.Segments[id] != nil:
		s.deleteSegment(id)
	case s.Circles[id] != nil:
		s.deleteCircle(id)
	case s.Arcs[id] != nil:
		s.deleteArc(id)
	case s.Constraints[id] != nil:
		s.deleteConstraint(id)
	}
}

func (s *Store) deleteConstraint(id ID) {
	c := s.Constraints[id]
	if c == nil {
		return
	}
	for _, pid := range c.PointIDs {
		s.removeChild(pid, id)
	}
	if c.HasTarget {
		s.removeChild(c.TargetID, id)
	}
	delete(s.Constraints, id)
}

func (s *Store) deleteChildrenOf(childrenIDs []ID) {
	// snapshot before recursing: a child's own deletion mutates other
	// ChildrenIDs slices, never this local copy.
	snapshot := append([]ID(nil), childrenIDs...)
	for _, childID := range snapshot {
		s.Delete(childID)
	}
}

func (s *Store) deletePoint(id ID) {
	p := s.Points[id]
	if p == nil {
		return
	}
	s.deleteChildrenOf(p.ChildrenIDs)
	delete(s.Points, id)
}

func (s *Store) deleteSegment(id ID) {
	seg := s.Segments[id]
	if seg == nil {
		return
	}
	s.deleteChildrenOf(seg.ChildrenIDs)
	s.removeChild(seg.P1, id)
	s.removeChild(seg.P2, id)
	delete(s.Segments, id)
}

func (s *Store) deleteCircle(id ID) {
	c := s.Circles[id]
	if c == nil {
		return
	}
	s.deleteChildrenOf(c.ChildrenIDs)
	if c.HasCenter {
		s.removeChild(c.CenterID, id)
	}
	for _, pid := range c.PointIDs {
		s.removeChild(pid, id)
	}
	delete(s.Circles, id)
}

func (s *Store) deleteArc(id ID) {
	a := s.Arcs[id]
	if a == nil {
		return
	}
	s.deleteChildrenOf(a.ChildrenIDs)
	s.removeChild(a.CircleID, id)
	s.removeChild(a.StartID, id)
	s.removeChild(a.EndID, id)
	delete(s.Arcs, id)
}
