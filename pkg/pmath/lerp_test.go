package pmath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 5.0, Lerp(0, 10, 0.5, false))
	require.Equal(t, 15.0, Lerp(0, 10, 1.5, false))
	require.Equal(t, 10.0, Lerp(0, 10, 1.5, true))
	require.Equal(t, -5.0, Lerp(0, 10, -0.5, false))
	require.Equal(t, 0.0, Lerp(0, 10, -0.5, true))
	// reversed range clamps to the same interval
	require.Equal(t, 0.0, Lerp(10, 0, 1.5, true))
	require.Equal(t, 7.5, Lerp(10, 0, 0.25, true))
}

func TestUnlerp(t *testing.T) {
	require.Equal(t, 0.5, Unlerp[float64](0, 10, 5, false))
	require.Equal(t, 1.5, Unlerp[float64](0, 10, 15, false))
	require.Equal(t, 1.0, Unlerp[float64](0, 10, 15, true))
	require.Equal(t, 0.0, Unlerp[float64](0, 10, -3, true))
	require.Equal(t, 0.25, Unlerp(10, 0, 7.5, false))
}

func TestUnlerpZeroWidth(t *testing.T) {
	require.True(t, math.IsInf(Unlerp[float64](2, 2, 3, false), 1))
	require.True(t, math.IsInf(Unlerp[float64](2, 2, 1, false), -1))
	require.True(t, math.IsNaN(Unlerp[float64](2, 2, 2, false)))
	require.Equal(t, 1.0, Unlerp[float64](2, 2, 3, true))
	require.Equal(t, 0.0, Unlerp[float64](2, 2, 1, true))
}

func TestLerpRoundTrip(t *testing.T) {
	ranges := [][2]float64{{0, 10}, {-3, 7}, {100, -100}, {0.001, 0.002}, {-1e6, 1e6}}
	for _, r := range ranges {
		for i := 0; i <= 100; i++ {
			tt := float64(i) / 100
			got := Unlerp(r[0], r[1], Lerp(r[0], r[1], tt, false), false)
			require.InDelta(t, tt, got, 1e-9, "range %v t=%v", r, tt)
		}
	}
}
