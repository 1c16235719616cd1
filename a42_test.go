package bracket

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestA42ExpMinusCos(t *testing.T) {
	f := func(v float64) float64 { return math.Exp(v) - math.Cos(v) }
	x, st, err := A42(f, -1, 1, Options{})
	require.NoError(t, err)
	require.True(t, st.Converged)
	require.InDelta(t, 0, x, 1e-9)
}

func TestA42QuinticMatchesBisection(t *testing.T) {
	f := func(v float64) float64 { return v*v*v*v*v - v - 1 }
	x, st, err := A42(f, -2, 2, Options{})
	require.NoError(t, err)
	require.True(t, st.Converged)
	require.InDelta(t, 1.1673039782614187, x, 1e-9)
}

func TestA42RejectsBadBracket(t *testing.T) {
	evals := 0
	f := func(v float64) float64 {
		evals++
		return v * v
	}
	_, _, err := A42(f, 1, 2, Options{})
	var serr *SolverError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, NotABracket, serr.Kind)
	require.LessOrEqual(t, evals, 2)
}

func TestA42BigAgreesWithA42(t *testing.T) {
	f64 := func(v float64) float64 { return v*v*v - 2 }
	x64, _, err := A42(f64, 0, 2, Options{})
	require.NoError(t, err)
	require.InDelta(t, math.Cbrt(2), x64, 1e-9)

	fbig := func(v *big.Float) *big.Float {
		cube := new(big.Float).SetPrec(128).Mul(v, v)
		cube.Mul(cube, v)
		return cube.Sub(cube, big.NewFloat(2))
	}
	xbig, stbig, err := A42Big(fbig, big.NewFloat(0), big.NewFloat(2), 128, Options{})
	require.NoError(t, err)
	require.True(t, stbig.Converged)
	got, _ := xbig.Float64()
	require.InDelta(t, math.Cbrt(2), got, 1e-9)
}
