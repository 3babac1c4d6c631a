package core

import "math"

const defaultEpsilon = 1e-12

// Float is the set of floating-point sample types a filter can run on.
type Float interface {
	~float32 | ~float64
}

// Integer is the set of fixed-width integer types used for raw
// converter counts and actuator commands.
type Integer interface {
	~int16 | ~int32 | ~int64 | ~uint16 | ~uint32 | ~uint64
}

// Number is any value the limiter and scale families accept.
type Number interface {
	Integer | Float
}

// NearlyEqual reports whether a and b are equal within eps, either
// absolutely or relative to the larger magnitude.
func NearlyEqual[F Float](a, b, eps F) bool {
	if eps <= 0 {
		eps = F(defaultEpsilon)
	}

	diff := F(math.Abs(float64(a - b)))
	if diff <= eps {
		return true
	}

	largest := F(math.Max(math.Abs(float64(a)), math.Abs(float64(b))))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// LinearToDB converts linear amplitude to dB (20*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearToDB(linear float64) float64 {
	if linear < 0 {
		return math.NaN()
	}

	if linear == 0 {
		return math.Inf(-1)
	}

	return 20 * math.Log10(linear)
}
