// Package constraint implements the constraint kernel of spec.md §4.4
// through §4.8: per-kind residuals, free-parameter extraction/
// application, a finite-difference Jacobian, a Levenberg–Marquardt
// driver, and clone-based trial validation.
package constraint

import (
	"fmt"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// KindFor checks that c's payload shape matches its declared Type
// before it is ever handed to the residual function, so a malformed
// constraint is rejected by Validate (and so by kernel.AddConstraint)
// instead of silently contributing a zero residual (SPEC_FULL.md §9). It does not check
// that referenced ids resolve — construct.BuildConstraint already did
// that — only that the right fields are populated for the kind.
func KindFor(c *entity.Constraint) error {
	switch c.Type {
	case entity.Distance, entity.Angle:
		if len(c.PointIDs) != 2 {
			return fmt.Errorf("constraint: %v requires exactly 2 points, got %d", c.Type, len(c.PointIDs))
		}
		if c.Expression == "" {
			return fmt.Errorf("constraint: %v requires an expression", c.Type)
		}
	case entity.PointOnSegment, entity.PointOnCircle, entity.PointOnArc:
		if len(c.PointIDs) != 1 {
			return fmt.Errorf("constraint: %v requires exactly 1 point, got %d", c.Type, len(c.PointIDs))
		}
		if !c.HasTarget {
			return fmt.Errorf("constraint: %v requires a target segment/circle/arc", c.Type)
		}
	case entity.Equation:
		if c.Expression == "" {
			return fmt.Errorf("constraint: EQUATION requires an expression")
		}
	default:
		return fmt.Errorf("constraint: unknown constraint type %v", c.Type)
	}
	return nil
}
