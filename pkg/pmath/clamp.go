package pmath

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Clamp restricts input to [min, max]. The bounds may be given in either
// order. NaN in any argument yields NaN.
func Clamp[F constraints.Float](min, max, input F) F {
	if min > max {
		min, max = max, min
	}
	return F(math.Max(float64(min), math.Min(float64(max), float64(input))))
}
