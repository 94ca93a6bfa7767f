package constraint

import "github.com/tanmay-deshpand3/geometry-solver/entity"

// Validate reports whether candidate, added to a scratch clone of s, can
// be driven to convergence together with every constraint already in s
// (spec.md §4.8). It never mutates s: the trial solve runs entirely on
// the full copy made by entity.Store.Clone.
func Validate(s *entity.Store, candidate *entity.Constraint, cfg Config) bool {
	if err := KindFor(candidate); err != nil {
		return false
	}
	trial := s.WithExtraConstraint(candidate)
	result := Solve(trial, cfg, false)
	return result.Success
}
