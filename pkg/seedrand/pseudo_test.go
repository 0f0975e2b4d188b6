package seedrand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPseudoRandomPinned(t *testing.T) {
	cases := []struct {
		seed any
		want float64
	}{
		{42, 0.17992336838506162},
		{1, 0.7338240270037204},
		{2, 0.4851315792184323},
		{5, 0.31343647954054177},
		{"", 0.9128079584334046},
		{0.1, 0.5128073005471379},
		{-7, 0.186070223338902},
		{true, 0.030347085325047374},
		{1e21, 0.31083410955034196},
		{1e-7, 0.5184524653013796},
		{123.456, 0.695710287662223},
		{math.Copysign(0, -1), 0.6890812239143997},
		{float64(1 << 53), 0.8105361904017627},
	}
	for _, c := range cases {
		got, err := PseudoRandomAny(c.seed)
		require.NoError(t, err)
		require.Equal(t, c.want, got, "seed %#v", c.seed)
	}
}

func TestPseudoRandom(t *testing.T) {
	require.Equal(t, PseudoRandom(42), PseudoRandom(42))
	require.NotEqual(t, PseudoRandom(1), PseudoRandom(2))
	require.Equal(t, PseudoRandom(5), PseudoRandom("5"))
	require.Equal(t, PseudoRandom(5), PseudoRandom(5.0))
	require.Equal(t, PseudoRandom(int64(5)), PseudoRandom(uint8(5)))
}

func TestPseudoRandomSalted(t *testing.T) {
	// first value of the unsalted stream differs from the salted one
	require.NotEqual(t, New(42).Float64(), PseudoRandom(42))
	require.Equal(t, NewString(Salt+"42").Float64(), PseudoRandom(42))
}

func TestPseudoRandomSequentialSeeds(t *testing.T) {
	seen := make(map[float64]int, 1000)
	for i := 0; i < 1000; i++ {
		v := PseudoRandom(i)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 1.0)
		if prev, ok := seen[v]; ok {
			t.Fatalf("seeds %d and %d collide", prev, i)
		}
		seen[v] = i
	}
}

func TestPseudoRandomAnyNil(t *testing.T) {
	_, err := PseudoRandomAny(nil)
	require.ErrorIs(t, err, ErrNilSeed)
	require.True(t, IsInvalidSeed(err))
}
