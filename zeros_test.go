package bracket

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nearestTo(xs []float64, target float64) float64 {
	best := math.Inf(1)
	for _, x := range xs {
		if d := math.Abs(x - target); d < math.Abs(best-target) {
			best = x
		}
	}
	return best
}

func TestFindZerosSine(t *testing.T) {
	roots := FindZeros(math.Sin, 0, 10, ZerosOptions{NPts: 2000})
	require.GreaterOrEqual(t, len(roots), 3)

	require.InDelta(t, 0, nearestTo(roots, 0), 1e-3)
	require.InDelta(t, math.Pi, nearestTo(roots, math.Pi), 1e-3)
	require.InDelta(t, 2*math.Pi, nearestTo(roots, 2*math.Pi), 1e-3)
}

func TestFindZerosEmptyOnConstant(t *testing.T) {
	roots := FindZeros(func(float64) float64 { return 1 }, 0, 1, ZerosOptions{NPts: 50})
	require.Empty(t, roots)
}

func TestFindZerosOrderIndependentBounds(t *testing.T) {
	// [a,b] is normalized before sampling, so swapped endpoints with the
	// same default seed reproduce the identical result.
	f := math.Sin
	forward := FindZeros(f, 0, 10, ZerosOptions{NPts: 500})
	backward := FindZeros(f, 10, 0, ZerosOptions{NPts: 500})
	require.Equal(t, forward, backward)
}

func TestZerosOptionsDefaults(t *testing.T) {
	got := ZerosOptions{}.withDefaults()
	require.Equal(t, 100, got.NPts)
	require.Equal(t, 10*epsilon, got.AbsTol)
	require.Equal(t, 10*epsilon, got.RelTol)
	require.NotNil(t, got.Rand)
}

func TestDedupeSortedCollapsesWithinTolerance(t *testing.T) {
	got := dedupeSorted([]float64{1.0, 1.0000001, 5.0, 5.0000002}, 1e-4)
	require.Equal(t, []float64{1.0, 5.0}, got)
}
