package constraint_test

import (
	"fmt"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/num"

	"github.com/tanmay-deshpand3/geometry-solver/constraint"
	"github.com/tanmay-deshpand3/geometry-solver/construct"
	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// TestJacobianMatchesCentralDifference cross-checks the hand-rolled
// forward-difference Jacobian against num.DerivCen's central-difference
// reference, the same way mdl/solid/driver.go's CheckD validates an
// analytic/forward-difference stiffness matrix against num.DerivCen.
func TestJacobianMatchesCentralDifference(t *testing.T) {
	s := entity.NewStore()
	fixed := construct.AddPoint(s, 0, 0, false)
	free := construct.AddPoint(s, 3, 4, true)
	c := construct.BuildConstraint(s, entity.Distance, []entity.ID{fixed.ID, free.ID}, 0, false, "10")
	construct.Commit(s, c)

	tmpl, params := constraint.ExtractFreeParams(s)
	constraint.ApplyParams(s, tmpl, params)
	r := constraint.ResidualVector(s)
	j := constraint.Jacobian(s, tmpl, params, r)

	tol := 1e-4
	verb := false
	for i := range params {
		for k := range r {
			dnum := num.DerivCen(func(x float64, args ...interface{}) (res float64) {
				trial := append([]float64(nil), params...)
				trial[i] = x
				constraint.ApplyParams(s, tmpl, trial)
				res = constraint.ResidualVector(s)[k]
				constraint.ApplyParams(s, tmpl, params)
				return
			}, params[i])
			chk.AnaNum(t, fmt.Sprintf("J[%d][%d]", i, k), tol, j[i][k], dnum, verb)
		}
	}
}
