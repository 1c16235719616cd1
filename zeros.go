package bracket

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

// OpenSolver is the collaborator contract for an open, derivative-free
// solver (e.g. an Order8-style method), consumed as a fallback by
// FindZeros on sub-intervals that don't bracket a sign change.
type OpenSolver func(f func(float64) float64, x0 float64, maxevals int, abstol, reltol float64) (float64, error)

// maxOscillationRetries bounds the oscillation heuristic's retry
// recursion: each retry multiplies the grid by 10, so 4 retries caps
// the grid at 10,000x the initial NPts before FindZeros gives up and
// returns its best-effort result.
const maxOscillationRetries = 4

// ZerosOptions configures FindZeros.
type ZerosOptions struct {
	// NPts is the number of interior random sample points; default 100.
	NPts int
	// AbsTol and RelTol bound what counts as "within tolerance of zero"
	// and feed the per-sub-interval Bisection calls; default 10*eps each.
	AbsTol, RelTol float64
	// Open is the optional non-bracketing fallback solver for
	// sub-intervals without a sign change. Nil disables the fallback.
	Open OpenSolver
	// Rand supplies the uniform samples that spread the grid
	// unpredictably; a package-seeded source is used if nil.
	Rand *rand.Rand
}

func (o ZerosOptions) withDefaults() ZerosOptions {
	if o.NPts <= 0 {
		o.NPts = 100
	}
	if o.AbsTol <= 0 {
		o.AbsTol = 10 * epsilon
	}
	if o.RelTol <= 0 {
		o.RelTol = 10 * epsilon
	}
	if o.Rand == nil {
		o.Rand = rand.New(rand.NewSource(1))
	}
	return o
}

// FindZeros subdivides [a,b] into a randomized sample grid and
// dispatches each sign-changing sub-interval to Bisection, falling
// back to ZerosOptions.Open on sub-intervals that don't bracket a sign
// change. It is heuristic: subdivision is not guaranteed to find every
// zero in the interval.
func FindZeros(f func(float64) float64, a, b float64, opts ZerosOptions) []float64 {
	opts = opts.withDefaults()
	if a > b {
		a, b = b, a
	}
	return findZeros(f, a, b, opts, 0)
}

func findZeros(f func(float64) float64, a, b float64, opts ZerosOptions, retry int) []float64 {
	xs := buildGrid(a, b, opts)
	near := func(v float64) bool { return math.Abs(v) <= opts.AbsTol }

	var roots []float64
	if near(f(xs[0])) {
		roots = append(roots, xs[0])
	}
	for i := 0; i < len(xs)-1; i++ {
		ai, bi := xs[i], xs[i+1]
		fai, fbi := f(ai), f(bi)
		switch {
		case near(fai):
			roots = append(roots, ai)
		case sign(fai)*sign(fbi) < 0:
			if x, _, err := Bisection(f, ai, bi, Options{XTol: opts.AbsTol, XRelTol: opts.RelTol}); err == nil {
				roots = append(roots, x)
			}
		case opts.Open != nil:
			mid := (ai + bi) / 2
			if x, err := opts.Open(f, mid, 50, opts.AbsTol, opts.RelTol); err == nil && x > ai && x < bi {
				roots = append(roots, x)
			}
		}
	}
	if near(f(xs[len(xs)-1])) {
		roots = append(roots, xs[len(xs)-1])
	}
	roots = dedupeSorted(roots, opts.AbsTol)

	if len(roots) > opts.NPts/4 && retry < maxOscillationRetries {
		opts.NPts *= 10
		return findZeros(f, a, b, opts, retry+1)
	}
	return roots
}

// resize grows or truncates s to exactly dim elements, reusing the
// underlying array when it already has enough capacity instead of
// always reallocating.
func resize(s []float64, dim int) []float64 {
	if cap(s) >= dim {
		return s[:dim]
	}
	return make([]float64, dim)
}

func buildGrid(a, b float64, opts ZerosOptions) []float64 {
	samples := resize(nil, opts.NPts)
	for i := range samples {
		samples[i] = opts.Rand.Float64()
	}
	sort.Float64s(samples)

	xs := make([]float64, 0, opts.NPts+2)
	xs = append(xs, a)
	for _, s := range samples {
		xs = append(xs, a+(b-a)*s)
	}
	xs = append(xs, b)
	return xs
}

func dedupeSorted(xs []float64, tol float64) []float64 {
	sort.Float64s(xs)
	out := xs[:0]
	for _, x := range xs {
		if len(out) == 0 || x-out[len(out)-1] > tol {
			out = append(out, x)
		}
	}
	return out
}
