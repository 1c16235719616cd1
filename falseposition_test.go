package bracket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFalsePositionCubic(t *testing.T) {
	f := func(v float64) float64 { return v*v*v - 1 }
	x, st, err := FalsePosition(f, 0, 2, Options{Reduction: AndersonBjork})
	require.NoError(t, err)
	require.True(t, st.Converged)
	require.InDelta(t, 1.0, x, 1e-7)
}

func TestFalsePositionDefaultsToAndersonBjork(t *testing.T) {
	f := func(v float64) float64 { return v*v*v - 1 }
	x, _, err := FalsePosition(f, 0, 2, Options{})
	require.NoError(t, err)
	require.InDelta(t, 1.0, x, 1e-7)
}

func TestFalsePositionAllReductionsConverge(t *testing.T) {
	// Every Galdino reduction factor converges within tolerance on a
	// well-behaved monotone bracket.
	f := func(v float64) float64 { return v*v*v - 1 }
	for r := Reduction1; r <= Reduction12; r++ {
		x, st, err := FalsePosition(f, 0, 2, Options{Reduction: r})
		require.NoErrorf(t, err, "reduction %d", r)
		require.Truef(t, st.Converged, "reduction %d", r)
		require.InDeltaf(t, 1.0, x, 1e-4, "reduction %d", r)
	}
}

func TestFalsePositionRejectsBadBracket(t *testing.T) {
	_, _, err := FalsePosition(func(v float64) float64 { return v * v }, 1, 2, Options{})
	var serr *SolverError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, NotABracket, serr.Kind)
}

func TestReductionApplyIllinoisHalvesFa(t *testing.T) {
	require.Equal(t, 1.5, Illinois.apply(3, 9, 2))
}

func TestReductionApplyAndersonBjorkFallsBackOnNegativeM(t *testing.T) {
	// When fx/fb >= 1, m := 1-fx/fb is non-positive and must clamp to 0.5.
	got := AndersonBjork.apply(4, 1, 2)
	require.Equal(t, 2.0, got)
}

func TestFalsePositionBoundedByMaxEvals(t *testing.T) {
	// A jump discontinuity has no point where f is zero, and five steps
	// are far too few to close the bracket to adjacent floats, so the
	// solver must give up at MaxEvals.
	f := func(v float64) float64 {
		if v < 1 {
			return -1
		}
		return 1
	}
	_, _, err := FalsePosition(f, 0, 2, Options{MaxEvals: 5, XTol: 0, XRelTol: 0})
	var serr *SolverError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, MaxIterations, serr.Kind)
}

