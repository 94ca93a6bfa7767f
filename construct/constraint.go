package construct

import "github.com/tanmay-deshpand3/geometry-solver/entity"

// BuildConstraint allocates a candidate Constraint and checks that
// every point id and (if present) target id resolves in s. It does not
// insert the candidate into s — the caller (kernel.AddConstraint) only
// commits it after the trial-solve validation in spec.md §4.8 succeeds.
// Returns nil if any referenced id is unknown (spec.md §7 "silent null
// on bad reference").
func BuildConstraint(s *entity.Store, typ entity.ConstraintType, pointIDs []entity.ID, targetID entity.ID, hasTarget bool, expression string) *entity.Constraint {
	for _, pid := range pointIDs {
		if s.Points[pid] == nil {
			return nil
		}
	}
	if hasTarget {
		if s.Segments[targetID] == nil && s.Circles[targetID] == nil && s.Arcs[targetID] == nil {
			return nil
		}
	}
	return &entity.Constraint{
		ID:         s.NextID(),
		Type:       typ,
		PointIDs:   append([]entity.ID(nil), pointIDs...),
		TargetID:   targetID,
		HasTarget:  hasTarget,
		Expression: expression,
	}
}

// Commit inserts a validated constraint into s and wires its
// child-link back-references, so a later cascading delete of any
// referenced point/segment/circle/arc also removes c (spec.md §3
// invariant 1: cascading delete must leave no dangling reference).
func Commit(s *entity.Store, c *entity.Constraint) {
	s.Constraints[c.ID] = c
	for _, pid := range c.PointIDs {
		s.AddChild(pid, c.ID)
	}
	if c.HasTarget {
		s.AddChild(c.TargetID, c.ID)
	}
}
