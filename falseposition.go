package bracket

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Reduction selects one of the 12 Galdino reduction factors
// FalsePosition applies to the stuck endpoint's cached function value.
// The named aliases forward to their numeric equivalents; dispatch
// happens once per call via apply, not per step.
type Reduction int

const (
	Reduction1 Reduction = iota + 1
	Reduction2
	Reduction3
	Reduction4
	Reduction5
	Reduction6
	Reduction7
	Reduction8
	Reduction9
	Reduction10
	Reduction11
	Reduction12
)

const (
	// Pegasus is reduction factor #1.
	Pegasus = Reduction1
	// Illinois is reduction factor #8.
	Illinois = Reduction8
	// AndersonBjork is reduction factor #12, the default.
	AndersonBjork = Reduction12
)

// apply computes the reduced fa used to seed the next iteration's
// stuck endpoint, from the cached (fa,fb) and the freshly evaluated fx.
func (r Reduction) apply(fa, fb, fx float64) float64 {
	switch r {
	case Reduction1:
		return fa * fb / (fb + fx)
	case Reduction2:
		return (fa - fb) / 2
	case Reduction3:
		return (fa - fx) / (2 + fx/fb)
	case Reduction4:
		t := 1 + fx/fb
		return (fa - fx) / (t * t)
	case Reduction5:
		t := 1.5 + fx/fb
		return (fa - fx) / (t * t)
	case Reduction6:
		t := 2 + fx/fb
		return (fa - fx) / (t * t)
	case Reduction7:
		t := 2 + fx/fb
		return (fa + fx) / (t * t)
	case Reduction8:
		return fa / 2
	case Reduction9:
		t := 1 + fx/fb
		return fa / (t * t)
	case Reduction10:
		return (fa - fx) / 4
	case Reduction11:
		return fx * fa / (fb + fx)
	case Reduction12:
		m := 1 - fx/fb
		if m <= 0 {
			m = 0.5
		}
		return fa * m
	default:
		return AndersonBjork.apply(fa, fb, fx)
	}
}

// falsePositionTau guards lambda against stalling against one endpoint.
const falsePositionTau = 1e-10

// FalsePosition locates a root of f within [a,b] using regula falsi
// with the reduction factor selected by Options.Reduction, defaulting
// to AndersonBjork.
func FalsePosition(f func(float64) float64, a0, b0 float64, opts Options) (float64, *SolverState, error) {
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

		lambda := fb / (fb - fa)
		if !(math.Abs(lambda) > falsePositionTau && math.Abs(lambda) < 1-falsePositionTau) {
			lambda = 0.5
		}
		x := b - lambda*(b-a)
		fx := f(x)
		st.FnEvals++

		if isTerminal(fx) {
			st.Converged = true
			st.A, st.B = x, x
			return x, st, nil
		}

		if sign(fx)*sign(fb) < 0 {
			a, fa = b, fb
		} else {
			fa = opts.Reduction.apply(fa, fb, fx)
		}
		b, fb = x, fx
		st.record(n, a, b, fa, fb, opts)

		// Converged once |fx| is within ftol of zero, the bracket has
		// closed to adjacent floats, or it has closed to within
		// xtol/xreltol of itself.
		if floats.EqualWithinAbsOrRel(fx, 0, opts.FTol, 0) ||
			math.Nextafter(a, b) == b ||
			(opts.XTol > 0 || opts.XRelTol > 0) && floats.EqualWithinAbsOrRel(a, b, opts.XTol, opts.XRelTol) {
			st.Converged = true
			return x, st, nil
		}
	}
}
