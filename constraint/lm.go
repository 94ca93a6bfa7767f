package constraint

import (
	"math"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"

	"github.com/tanmay-deshpand3/geometry-solver/entity"
)

// Config holds the Levenberg–Marquardt tuning constants of spec.md
// §4.7. It is JSON-tagged so it can be embedded in kernel.Config
// (SPEC_FULL.md §7a); the zero value resolves to DefaultConfig via
// resolve.
type Config struct {
	MaxIterations int     `json:"max_iterations"`
	ConvEps       float64 `json:"conv_eps"`
	Lambda0       float64 `json:"lambda0"`
	LambdaUp      float64 `json:"lambda_up"`
	LambdaDown    float64 `json:"lambda_down"`
}

// DefaultConfig returns the constants named in spec.md §4.7.
func DefaultConfig() Config {
	return Config{
		MaxIterations: 100,
		ConvEps:       1e-4,
		Lambda0:       0.01,
		LambdaUp:      10,
		LambdaDown:    0.1,
	}
}

func (c Config) resolve() Config {
	d := DefaultConfig()
	if c.MaxIterations == 0 {
		c.MaxIterations = d.MaxIterations
	}
	if c.ConvEps == 0 {
		c.ConvEps = d.ConvEps
	}
	if c.Lambda0 == 0 {
		c.Lambda0 = d.Lambda0
	}
	if c.LambdaUp == 0 {
		c.LambdaUp = d.LambdaUp
	}
	if c.LambdaDown == 0 {
		c.LambdaDown = d.LambdaDown
	}
	return c
}

// Result reports the outcome of one Solve call.
type Result struct {
	Success    bool
	Iterations int
	FinalError float64
}

// Solve runs the damped Gauss-Newton loop of spec.md §4.7 against s's
// current constraints, mutating the free points/variables in place.
// verbose enables per-iteration tracing in the teacher's io.Pfcyan
// (accepted step) / io.Pfyel (rejected step) / io.Pfred (did not
// converge) style.
func Solve(s *entity.Store, cfg Config, verbose bool) Result {
	cfg = cfg.resolve()

	tmpl, params := ExtractFreeParams(s)
	ApplyParams(s, tmpl, params)
	r := ResidualVector(s)
	norm := la.VecNorm(r)

	if norm < cfg.ConvEps {
		return Result{Success: true, Iterations: 0, FinalError: norm}
	}
	if tmpl.Len() == 0 {
		// no free parameters to move; the residual can never change.
		return Result{Success: false, Iterations: 0, FinalError: norm}
	}

	lambda := cfg.Lambda0
	iter := 0
	for iter < cfg.MaxIterations {
		iter++

		j := Jacobian(s, tmpl, params, r)
		n := tmpl.Len()
		m := len(r)

		h := la.MatAlloc(n, n)
		g := make([]float64, n)
		for i := 0; i < n; i++ {
			for k := 0; k < n; k++ {
				sum := 0.0
				for c := 0; c < m; c++ {
					sum += j[i][c] * j[k][c]
				}
				h[i][k] = sum
			}
			gi := 0.0
			for c := 0; c < m; c++ {
				gi += j[i][c] * r[c]
			}
			g[i] = gi
		}
		for i := 0; i < n; i++ {
			floor := h[i][i]
			if floor < 1e-6 {
				floor = 1e-6
			}
			h[i][i] += lambda * floor
		}

		negG := make([]float64, n)
		for i := range g {
			negG[i] = -g[i]
		}
		delta := gaussianSolve(h, negG)

		trial := make([]float64, n)
		for i := range trial {
			trial[i] = params[i] + delta[i]
		}
		ApplyParams(s, tmpl, trial)
		rTrial := ResidualVector(s)
		trialNorm := la.VecNorm(rTrial)

		if trialNorm < norm {
			params, r, norm = trial, rTrial, trialNorm
			lambda *= cfg.LambdaDown
			if verbose {
				io.Pfcyan("lm: iter=%d accepted |r|=%.6e lambda=%.3e\n", iter, norm, lambda)
			}
		} else {
			ApplyParams(s, tmpl, params)
			lambda *= cfg.LambdaUp
			if verbose {
				io.Pfyel("lm: iter=%d rejected |r|=%.6e lambda=%.3e\n", iter, norm, lambda)
			}
		}

		if norm < cfg.ConvEps {
			return Result{Success: true, Iterations: iter, FinalError: norm}
		}
	}

	ApplyParams(s, tmpl, params)
	if verbose {
		io.Pfred("lm: did not converge after %d iterations, |r|=%.6e\n", iter, norm)
	}
	return Result{Success: norm < cfg.ConvEps, Iterations: iter, FinalError: norm}
}

// gaussianSolve solves A·x = b for square A via Gaussian elimination
// with partial pivoting. A column with no pivot candidate above 1e-12
// in magnitude is treated as singular and its solution component is
// left at zero, rather than failing the whole solve — the LM damping
// term keeps H well conditioned in practice, but an isolated
// under-determined parameter (e.g. a coordinate no constraint yet
// touches) must not abort convergence of the rest.
func gaussianSolve(a [][]float64, b []float64) []float64 {
	n := len(b)
	m := make([][]float64, n)
	for i := range m {
		m[i] = append([]float64(nil), a[i]...)
	}
	rhs := append([]float64(nil), b...)
	x := make([]float64, n)
	hasPivot := make([]bool, n)

	for col := 0; col < n; col++ {
		maxRow, maxVal := -1, 1e-12
		for row := col; row < n; row++ {
			if v := math.Abs(m[row][col]); v > maxVal {
				maxVal, maxRow = v, row
			}
		}
		if maxRow == -1 {
			continue
		}
		m[col], m[maxRow] = m[maxRow], m[col]
		rhs[col], rhs[maxRow] = rhs[maxRow], rhs[col]
		hasPivot[col] = true

		pivot := m[col][col]
		for row := col + 1; row < n; row++ {
			factor := m[row][col] / pivot
			if factor == 0 {
				continue
			}
			for k := col; k < n; k++ {
				m[row][k] -= factor * m[col][k]
			}
			rhs[row] -= factor * rhs[col]
		}
	}

	for row := n - 1; row >= 0; row-- {
		if !hasPivot[row] {
			x[row] = 0
			continue
		}
		sum := rhs[row]
		for k := row + 1; k < n; k++ {
			sum -= m[row][k] * x[k]
		}
		x[row] = sum / m[row][row]
	}
	return x
}
