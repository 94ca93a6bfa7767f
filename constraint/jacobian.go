package constraint

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// Jacobian computes the forward-difference Jacobian of the residual
// vector with respect to the free parameters, per spec.md §4.6: row i
// (one per parameter) holds (r(p + ε_i·e_i) − r(p)) / ε_i, with
// ε_i = max(1e-6, |p_i|·1e-6). baseParams/baseResiduals must already be
// consistent with s (i.e. s was last touched by ApplyParams(s, tmpl,
// baseParams)). The store is restored to baseParams before returning,
// so callers see no side effect from the perturbation.
func Jacobian(s *entity.Store, tmpl Template, baseParams, baseResiduals []float64) [][]float64 {
	n := len(baseParams)
	m := len(baseResiduals)
	j := la.MatAlloc(n, m)
	if n == 0 {
		return j
	}

	trial := append([]float64(nil), baseParams...)
	for i := 0; i < n; i++ {
		eps := math.Abs(baseParams[i]) * 1e-6
		if eps < 1e-6 {
			eps = 1e-6
		}
		trial[i] = baseParams[i] + eps
		ApplyParams(s, tmpl, trial)
		perturbed := ResidualVector(s)
		for k := 0; k < m; k++ {
			v := (perturbed[k] - baseResiduals[k]) / eps
			if math.IsNaN(v) || math.IsInf(v, 0) {
				v = 0
			}
			j[i][k] = v
		}
		trial[i] = baseParams[i]
	}
	ApplyParams(s, tmpl, baseParams)
	return j
}
