package bracket

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindZeroBracketDispatchesByMethod(t *testing.T) {
	f := func(v float64) float64 { return v*v*v - 1 }
	for _, m := range []Method{MethodBisection, MethodA42, MethodFalsePosition} {
		x, err := FindZeroBracket(f, 0, 2, m, Options{})
		require.NoError(t, err)
		require.InDelta(t, 1.0, x, 1e-6)
	}
}

func TestFindZeroBracketPropagatesNotABracket(t *testing.T) {
	_, err := FindZeroBracket(func(v float64) float64 { return v * v }, 1, 2, MethodA42, Options{})
	var serr *SolverError
	require.ErrorAs(t, err, &serr)
	require.Equal(t, NotABracket, serr.Kind)
}

func TestErrorKindStrings(t *testing.T) {
	require.Equal(t, "not a bracket", NotABracket.String())
	require.Equal(t, "unbounded bracket", UnboundedBracket.String())
	require.Equal(t, "bad tolerance", BadTolerance.String())
	require.Equal(t, "max iterations", MaxIterations.String())
}

func TestSolverErrorMessage(t *testing.T) {
	err := &SolverError{Kind: NotABracket, A: 1, B: 2}
	require.Contains(t, err.Error(), "not a bracket")
	require.Contains(t, err.Error(), "1")
	require.Contains(t, err.Error(), "2")
}

func TestSolverErrorIsErrorInterface(t *testing.T) {
	var err error = &SolverError{Kind: BadTolerance}
	require.Error(t, err)
}
