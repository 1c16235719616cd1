package bracket

import "math"

// secant computes the standard secant step c = a - fa*(b-a)/(fb-fa),
// falling back to the arithmetic midpoint when c is NaN or too close
// to an endpoint to make progress. The 5*eps guard constants are
// Alefeld-Potra-Shi's own, preserved exactly.
func secant(a, fa, b, fb float64, f func(float64) float64) (c, fc float64) {
	c = a - fa*(b-a)/(fb-fa)
	if math.IsNaN(c) || math.Abs(c-a) <= 5*epsilon*math.Abs(a) || math.Abs(c-b) <= 5*epsilon*math.Abs(b) {
		c = (a + b) / 2
	}
	return c, f(c)
}

// newtonQuadratic performs k Newton iterations against the quadratic
// interpolant through (a,fa), (b,fb), (d,fd), falling back to secant
// when the quadratic degenerates (A == 0) or the iterate leaves (a,b).
func newtonQuadratic(a, fa, b, fb, d, fd float64, k int, f func(float64) float64) (c, fc float64) {
	B := (fb - fa) / (b - a)
	A := ((fd-fb)/(d-b) - B) / (d - a)
	if A == 0 {
		return secant(a, fa, b, fb, f)
	}

	r := b
	if A*fa > 0 {
		r = a
	}
	for i := 0; i < k; i++ {
		p := fa + (B+A*(r-b))*(r-a)
		pPrime := B + A*(2*r-a-b)
		r -= p / pPrime
	}
	if math.IsNaN(r) || r <= a || r >= b {
		return secant(a, fa, b, fb, f)
	}
	return r, f(r)
}

// ipzero performs inverse cubic interpolation through (a,fa), (b,fb),
// (c,fc), (d,fd) via divided differences, falling back to
// newton_quadratic(k=3) when the result leaves (a,b).
func ipzero(a, fa, b, fb, c, fc, d, fd float64, f func(float64) float64) (float64, float64) {
	Q11 := (c - d) * fc / (fd - fc)
	Q21 := (b - c) * fb / (fc - fb)
	Q31 := (a - b) * fa / (fb - fa)
	D21 := (b - c) * fc / (fc - fb)
	D31 := (a - b) * fb / (fb - fa)
	Q22 := (D21 - Q11) * fb / (fd - fb)
	Q32 := (D31 - Q21) * fa / (fc - fa)
	D32 := (D31 - Q21) * fc / (fc - fa)
	Q33 := (D32 - Q22) * fa / (fd - fa)
	cp := a + (Q31 + Q32 + Q33)
	if !(cp > a && cp < b) {
		return newtonQuadratic(a, fa, b, fb, d, fd, 3, f)
	}
	return cp, f(cp)
}

// almostEqualGap guards the cubic divided-difference formulas against
// division by (near-)zero function-value differences.
const almostEqualGap = 32 * 2.2250738585072014e-308 // 32 * smallest positive normal float64

// distinct reports whether every pair among the given function values
// differs by more than almostEqualGap.
func distinct(vals ...float64) bool {
	for i := range vals {
		for j := i + 1; j < len(vals); j++ {
			if math.Abs(vals[i]-vals[j]) <= almostEqualGap {
				return false
			}
		}
	}
	return true
}

// rebracketResult is the explicit sum-type return from bracketStep:
// either a narrower enclosing bracket to continue from, or a converged
// answer, in place of a thrown/sentinel convergence signal.
type rebracketResult struct {
	converged bool
	x         float64
	a, fa     float64
	b, fb     float64
	d, fd     float64
}

// bracketStep re-localizes c inside [a,b] using the delta safeguard,
// evaluates it if it was moved, and forms the new enclosing pair. The
// 0.7 factor is Alefeld-Potra-Shi's own, preserved exactly.
func bracketStep(a, fa, b, fb, c, fc, tol float64, f func(float64) float64, st *SolverState) rebracketResult {
	delta := 0.7 * tole(a, b, fa, fb, tol)
	switch {
	case b-a <= 4*delta:
		c = (a + b) / 2
		fc = f(c)
		st.FnEvals++
	case c <= a+2*delta:
		c = a + 2*delta
		fc = f(c)
		st.FnEvals++
	case c >= b-2*delta:
		c = b - 2*delta
		fc = f(c)
		st.FnEvals++
	}
	if isTerminal(fc) {
		return rebracketResult{converged: true, x: c}
	}

	var na, nfa, nb, nfb, nd, nfd float64
	if sign(fa)*sign(fc) < 0 {
		na, nfa, nb, nfb, nd, nfd = a, fa, c, fc, b, fb
	} else {
		na, nfa, nb, nfb, nd, nfd = c, fc, b, fb, a, fa
	}
	if nb-na < 2*tole(na, nb, nfa, nfb, tol) {
		x := na
		if math.Abs(nfb) < math.Abs(nfa) {
			x = nb
		}
		return rebracketResult{converged: true, x: x}
	}
	return rebracketResult{a: na, fa: nfa, b: nb, fb: nfb, d: nd, fd: nfd}
}

// A42 locates a root of f within [a,b] using the Alefeld-Potra-Shi
// Algorithm 748: inverse-cubic/quadratic interpolation with a
// bisection safeguard that halves the bracket width at least once per
// outer iteration.
func A42(f func(float64) float64, a0, b0 float64, opts Options) (float64, *SolverState, error) {
	opts = opts.withDefaults()
	if opts.XTol < 0 || opts.XRelTol < 0 {
		return math.NaN(), nil, &SolverError{Kind: BadTolerance}
	}
	tol := opts.XTol

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

	converge := func(x float64, n int) (float64, *SolverState, error) {
		st.Converged = true
		st.Steps = n
		st.A, st.B = x, x
		return x, st, nil
	}

	c, fc := secant(a, fa, b, fb, f)
	st.FnEvals++
	r0 := bracketStep(a, fa, b, fb, c, fc, tol, f, st)
	if r0.converged {
		return converge(r0.x, 1)
	}
	a, fa, b, fb, d, fd := r0.a, r0.fa, r0.b, r0.fb, r0.d, r0.fd
	e, fe := d, fd
	st.record(1, a, b, fa, fb, opts)

	for n := 2; n <= opts.MaxEvals; n++ {
		if st.capExceeded(opts) {
			break
		}
		startWidth := b - a

		// Phase 1: speculative high-order step.
		var c1, fc1 float64
		if n > 2 && distinct(fa, fb, fd, fe) {
			c1, fc1 = ipzero(a, fa, b, fb, d, fd, e, fe, f)
		} else {
			c1, fc1 = newtonQuadratic(a, fa, b, fb, d, fd, 2, f)
		}
		st.FnEvals++
		r1 := bracketStep(a, fa, b, fb, c1, fc1, tol, f, st)
		if r1.converged {
			return converge(r1.x, n)
		}
		ep, fep := d, fd // previous d, carried forward for the next phase's distinctness check
		a, fa, b, fb, d, fd = r1.a, r1.fa, r1.b, r1.fb, r1.d, r1.fd

		// Phase 2: refine.
		var c2, fc2 float64
		if distinct(fa, fb, fd, fep) {
			c2, fc2 = ipzero(a, fa, b, fb, d, fd, ep, fep, f)
		} else {
			c2, fc2 = newtonQuadratic(a, fa, b, fb, d, fd, 3, f)
		}
		st.FnEvals++
		r2 := bracketStep(a, fa, b, fb, c2, fc2, tol, f, st)
		if r2.converged {
			return converge(r2.x, n)
		}
		a, fa, b, fb, d, fd = r2.a, r2.fa, r2.b, r2.fb, r2.d, r2.fd

		// Phase 3: guarded double-length secant step.
		u, fu := a, fa
		if math.Abs(fb) < math.Abs(fa) {
			u, fu = b, fb
		}
		c3 := u - 2*fu*(b-a)/(fb-fa)
		if math.Abs(c3-u) > (b-a)/2 {
			c3 = (a + b) / 2
		}
		fc3 := f(c3)
		st.FnEvals++
		r3 := bracketStep(a, fa, b, fb, c3, fc3, tol, f, st)
		if r3.converged {
			return converge(r3.x, n)
		}

		// Bisection safeguard: every outer iteration must at least
		// halve the bracket; force a bisection rebracket if it didn't.
		if r3.b-r3.a < 0.5*startWidth {
			e, fe = d, fd
			a, fa, b, fb, d, fd = r3.a, r3.fa, r3.b, r3.fb, r3.d, r3.fd
		} else {
			e, fe = r3.d, r3.fd
			mid := (r3.a + r3.b) / 2
			fmid := f(mid)
			st.FnEvals++
			r4 := bracketStep(r3.a, r3.fa, r3.b, r3.fb, mid, fmid, tol, f, st)
			if r4.converged {
				return converge(r4.x, n)
			}
			a, fa, b, fb, d, fd = r4.a, r4.fa, r4.b, r4.fb, r4.d, r4.fd
		}

		if math.Nextafter(a, math.Inf(1)) >= b {
			return converge(a, n)
		}

		st.record(n, a, b, fa, fb, opts)
	}

	st.Stopped = true
	return math.NaN(), st, &SolverError{Kind: MaxIterations, A: a, B: b}
}
