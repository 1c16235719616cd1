package bracket

import "math/big"

// A42Big is the arbitrary-precision counterpart to A42, operating on
// *big.Float at a fixed precision instead of float64. None of
// Algorithm 748's primitives actually need the bitwise midpoint trick
// — secant, newton_quadratic, and bracket are all ordinary arithmetic
// — so the same enclosing strategy serves both precisions. This is a
// concrete, non-generic mirror rather than a shared generic
// implementation: *big.Float exposes arithmetic through methods, not
// operators, so genericizing across float64 and big.Float would
// obscure the formulas behind an operator-abstraction interface for no
// benefit on a path callers reach for rarely, only when float64
// precision genuinely isn't enough. It runs one Newton-quadratic
// interpolation per outer step, followed on every step by a midpoint
// rebracket; unlike A42, the bisection step is not skipped when the
// interpolation alone has already halved the bracket.
func A42Big(f func(*big.Float) *big.Float, a0, b0 *big.Float, prec uint, opts Options) (*big.Float, *SolverState, error) {
	if prec == 0 {
		prec = 128
	}
	sub := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Sub(x, y) }
	mul := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Mul(x, y) }
	quo := func(x, y *big.Float) *big.Float { return new(big.Float).SetPrec(prec).Quo(x, y) }
	isZero := func(x *big.Float) bool { return x.Sign() == 0 }

	st := &SolverState{}
	if a0.Cmp(b0) > 0 {
		a0, b0 = b0, a0
	}
	fa, fb := f(a0), f(b0)
	st.FnEvals += 2
	if isZero(fa) {
		v, _ := a0.Float64()
		st.Converged, st.A, st.B = true, v, v
		return a0, st, nil
	}
	if isZero(fb) {
		v, _ := b0.Float64()
		st.Converged, st.A, st.B = true, v, v
		return b0, st, nil
	}
	if fa.Sign()*fb.Sign() > 0 {
		av, _ := a0.Float64()
		bv, _ := b0.Float64()
		return nil, st, &SolverError{Kind: NotABracket, A: av, B: bv}
	}
	a, b, d, fd := a0, b0, a0, fa

	// secant, generalized from a42.go's secant to big.Float arithmetic.
	secantBig := func(a, fa, b, fb *big.Float) *big.Float {
		c := sub(a, quo(mul(fa, sub(b, a)), sub(fb, fa)))
		if c.IsInf() {
			return middleBig(a, b)
		}
		return c
	}

	// newtonQuadraticBig mirrors a42.go's newtonQuadratic with a single
	// Newton step (k=1 suffices at the precisions this path targets),
	// falling back to secant when the quadratic degenerates.
	newtonQuadraticBig := func(a, fa, b, fb, d, fd *big.Float) *big.Float {
		B := quo(sub(fb, fa), sub(b, a))
		A := quo(sub(quo(sub(fd, fb), sub(d, b)), B), sub(d, a))
		if isZero(A) {
			return secantBig(a, fa, b, fb)
		}
		r := new(big.Float).SetPrec(prec).Set(b)
		if A.Sign()*fa.Sign() > 0 {
			r.Set(a)
		}
		// P(r) = fa + (B + A*(r-b))*(r-a)
		p := new(big.Float).SetPrec(prec).Add(fa, mul(new(big.Float).SetPrec(prec).Add(B, mul(A, sub(r, b))), sub(r, a)))
		// P'(r) = B + A*(2r - a - b)
		twoR := mul(big.NewFloat(2).SetPrec(prec), r)
		deriv := new(big.Float).SetPrec(prec).Add(B, mul(A, sub(sub(twoR, a), b)))
		r = sub(r, quo(p, deriv))
		if r.IsInf() || r.Cmp(a) <= 0 || r.Cmp(b) >= 0 {
			return secantBig(a, fa, b, fb)
		}
		return r
	}

	// rebracket also returns the dropped endpoint as the new third point
	// d, so d never coincides with a or b.
	rebracket := func(a, fa, b, fb, c, fc *big.Float) (na, nfa, nb, nfb, nd, nfd *big.Float, converged bool, x *big.Float) {
		if isZero(fc) {
			return nil, nil, nil, nil, nil, nil, true, c
		}
		if fa.Sign()*fc.Sign() < 0 {
			na, nfa, nb, nfb, nd, nfd = a, fa, c, fc, b, fb
		} else {
			na, nfa, nb, nfb, nd, nfd = c, fc, b, fb, a, fa
		}
		return na, nfa, nb, nfb, nd, nfd, false, nil
	}

	c := secantBig(a, fa, b, fb)
	fc := f(c)
	st.FnEvals++
	na, nfa, nb, nfb, nd, nfd, conv, x := rebracket(a, fa, b, fb, c, fc)
	if conv {
		v, _ := x.Float64()
		st.Converged, st.A, st.B = true, v, v
		return x, st, nil
	}
	a, fa, b, fb, d, fd = na, nfa, nb, nfb, nd, nfd

	for n := 1; n <= opts.withDefaults().MaxEvals; n++ {
		if st.capExceeded(opts) {
			break
		}
		c = newtonQuadraticBig(a, fa, b, fb, d, fd)
		fc = f(c)
		st.FnEvals++
		na, nfa, nb, nfb, nd, nfd, conv, x = rebracket(a, fa, b, fb, c, fc)
		if conv {
			v, _ := x.Float64()
			st.Converged, st.Steps, st.A, st.B = true, n, v, v
			return x, st, nil
		}
		a, fa, b, fb, d, fd = na, nfa, nb, nfb, nd, nfd

		av, _ := a.Float64()
		bv, _ := b.Float64()
		fav, _ := fa.Float64()
		fbv, _ := fb.Float64()
		st.record(n, av, bv, fav, fbv, opts)

		if b.Cmp(a) <= 0 {
			continue
		}
		width := sub(b, a)
		halfTol := new(big.Float).SetPrec(prec).SetFloat64(tole(av, bv, fav, fbv, opts.XTol))
		if width.Cmp(halfTol) <= 0 {
			x := a
			if fb.MantExp(nil) < fa.MantExp(nil) {
				x = b
			}
			v, _ := x.Float64()
			st.Converged, st.A, st.B = true, v, v
			return x, st, nil
		}

		// Bisection safeguard: a midpoint rebracket follows every
		// interpolation step, so each outer step at least halves the
		// bracket.
		mid := middleBig(a, b)
		fmid := f(mid)
		st.FnEvals++
		na, nfa, nb, nfb, nd, nfd, conv, x = rebracket(a, fa, b, fb, mid, fmid)
		if conv {
			v, _ := x.Float64()
			st.Converged, st.Steps, st.A, st.B = true, n, v, v
			return x, st, nil
		}
		a, fa, b, fb, d, fd = na, nfa, nb, nfb, nd, nfd
	}

	st.Stopped = true
	av, _ := a.Float64()
	bv, _ := b.Float64()
	return nil, st, &SolverError{Kind: MaxIterations, A: av, B: bv}
}
