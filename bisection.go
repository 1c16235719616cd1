package bracket

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/floats"
)

// Bisection locates a root of f within [a,b] using bitwise bisection.
// The inputs must satisfy sign(f(a))*sign(f(b)) <= 0; violating
// brackets raise NotABracket.
//
// Convergence is reached when the midpoint coincides with an endpoint
// at the float64 bit level, when f evaluates to 0/+-Inf/NaN at the
// midpoint, or when the bracket width falls within the tolerance
// scaled by Options.XTol/XRelTol.
func Bisection(f func(float64) float64, a0, b0 float64, opts Options) (float64, *SolverState, error) {
	opts = opts.withDefaults()
	if opts.XTol < 0 || opts.XRelTol < 0 {
		return math.NaN(), nil, &SolverError{Kind: BadTolerance}
	}

	st := &SolverState{}
	a, b, fa, fb, done, x, err := newBracket(f, a0, b0)
	st.FnEvals += 2
	if err != nil {
		return math.NaN(), st, err
	}
	if done {
		st.Converged = true
		st.A, st.B = x, x
		return x, st, nil
	}
	st.record(0, a, b, fa, fb, opts)

	for n := 1; ; n++ {
		if n > opts.MaxEvals || st.capExceeded(opts) {
			st.Stopped = true
			return math.NaN(), st, &SolverError{Kind: MaxIterations, A: a, B: b}
		}

		m := middle(a, b)
		if !(m > a && m < b) {
			st.Converged = true
			st.A, st.B = m, m
			return m, st, nil
		}

		fm := f(m)
		st.FnEvals++
		if isTerminal(fm) {
			st.Converged = true
			st.A, st.B = m, m
			return m, st, nil
		}

		if sign(fa)*sign(fm) < 0 {
			b, fb = m, fm
		} else {
			a, fa = m, fm
		}
		st.record(n, a, b, fa, fb, opts)

		if (opts.XTol > 0 || opts.XRelTol > 0) && floats.EqualWithinAbsOrRel(a, b, opts.XTol, opts.XRelTol) {
			st.Converged = true
			x := a
			if math.Abs(fb) < math.Abs(fa) {
				x = b
			}
			return x, st, nil
		}
	}
}

// BisectionBig is the arbitrary-precision entry point. Bitwise
// midpoint is meaningless once the representation isn't a fixed-width
// binary float, so this transparently delegates to A42Big instead of
// reimplementing bisection's bit trick on big.Float.
func BisectionBig(f func(*big.Float) *big.Float, a, b *big.Float, prec uint, opts Options) (*big.Float, *SolverState, error) {
	return A42Big(f, a, b, prec, opts)
}
