package bracket

import "math"

// sign returns -1, 0, or 1 according to the sign of v. NaN returns 0,
// which is deliberate: a NaN function value is handled by isTerminal
// before sign is ever consulted.
func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// isTerminal reports whether v is 0, +-Inf, or NaN — the three
// function-return values every solver in this package treats as an
// immediate convergence signal at the point that produced them.
func isTerminal(v float64) bool {
	return v == 0 || math.IsInf(v, 0) || math.IsNaN(v)
}

// tole computes the scaled termination tolerance at a bracket
// (a,b,fa,fb) given a user tolerance tol:
//
//	tole = 2*u*eps + tol,  u = |a| if |fa| < |fb| else |b|
func tole(a, b, fa, fb, tol float64) float64 {
	u := math.Abs(b)
	if math.Abs(fa) < math.Abs(fb) {
		u = math.Abs(a)
	}
	return 2*u*epsilon + tol
}

// newBracket normalizes a caller-supplied pair (u,v) into an ordered,
// finite bracket and evaluates f at both endpoints.
//
// It returns done=true with x set when an endpoint's function value is
// itself a termination signal (0, +-Inf, or NaN), and a non-nil err
// when the pair cannot form a bracket at all.
func newBracket(f func(float64) float64, u, v float64) (a, b, fa, fb float64, done bool, x float64, err error) {
	if u > v {
		u, v = v, u
	}
	a, b = u, v
	if math.IsInf(a, -1) {
		a = math.Nextafter(a, math.Inf(1))
	}
	if math.IsInf(b, 1) {
		b = math.Nextafter(b, math.Inf(-1))
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return 0, 0, 0, 0, false, 0, &SolverError{Kind: UnboundedBracket, A: u, B: v}
	}

	fa, fb = f(a), f(b)
	if sign(fa)*sign(fb) > 0 {
		return 0, 0, 0, 0, false, 0, &SolverError{Kind: NotABracket, A: a, B: b}
	}
	if isTerminal(fa) {
		return a, b, fa, fb, true, a, nil
	}
	if isTerminal(fb) {
		return a, b, fa, fb, true, b, nil
	}
	return a, b, fa, fb, false, 0, nil
}
