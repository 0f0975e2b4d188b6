package pmath

import "golang.org/x/exp/constraints"

// Lerp maps input from [0,1] onto [start,end]. Inputs outside [0,1]
// extrapolate unless clamp is set.
func Lerp[F constraints.Float](start, end, input F, clamp bool) F {
	result := start + (end-start)*input
	if clamp {
		return Clamp(start, end, result)
	}
	return result
}

// Unlerp is the inverse of Lerp. start == end divides by zero and returns
// ±Inf or NaN.
func Unlerp[F constraints.Float](start, end, input F, clamp bool) F {
	result := (input - start) / (end - start)
	if clamp {
		return Clamp(0, 1, result)
	}
	return result
}
