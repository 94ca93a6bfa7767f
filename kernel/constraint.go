package kernel

import (
	"github.com/tanmay-deshpand3/geometry-solver/constraint"
	"github.com/tanmay-deshpand3/geometry-solver/construct"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// AddConstraint builds a candidate constraint, rejects it outright if
// its referenced ids or shape are wrong, trial-solves it on a scratch
// clone (spec.md §4.8), and only on success commits it to the live
// store and re-solves for real. It returns the committed constraint and
// true, or nil and false if the candidate was rejected at either stage.
func (st *State) AddConstraint(typ entity.ConstraintType, pointIDs []entity.ID, targetID entity.ID, hasTarget bool, expression string) (*entity.Constraint, bool) {
	candidate := construct.BuildConstraint(st.Store, typ, pointIDs, targetID, hasTarget, expression)
	if candidate == nil {
		return nil, false
	}
	if !constraint.Validate(st.Store, candidate, st.Cfg.Solver) {
		return nil, false
	}
	construct.Commit(st.Store, candidate)
	constraint.Solve(st.Store, st.Cfg.Solver, st.Verbose)
	return candidate, true
}

// ValidateConstraint reports whether a not-yet-committed candidate
// would solve, without touching the live store. Hosts use this to
// preview a constraint (e.g. live-validate while dragging a constraint
// tool) before calling AddConstraint.
func (st *State) ValidateConstraint(typ entity.ConstraintType, pointIDs []entity.ID, targetID entity.ID, hasTarget bool, expression string) bool {
	candidate := construct.BuildConstraint(st.Store, typ, pointIDs, targetID, hasTarget, expression)
	if candidate == nil {
		return false
	}
	return constraint.Validate(st.Store, candidate, st.Cfg.Solver)
}

// Solve re-runs the LM driver over every constraint currently in the
// store, e.g. after a host directly edited a fixed point's coordinates.
func (st *State) Solve() constraint.Result {
	return constraint.Solve(st.Store, st.Cfg.Solver, st.Verbose)
}
