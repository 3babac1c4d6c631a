// Package scale remaps values linearly from one range onto another, e.g.
// raw ADC counts onto engineering units or a control effort onto a PWM
// compare register.
package scale

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/internal/debug"
	"github.com/cwbudde/algo-vecmath"
)

// ErrZeroSpan is returned when the input range is empty (inMax == inMin).
var ErrZeroSpan = errors.New("scale: input range has zero span")

// Scale maps input from [inMin, inMax] onto [outMin, outMax]. Inputs outside
// the input range extrapolate. Integer results are rounded to nearest; an
// integer result that does not fit in T is undefined.
//
// Scale is unchecked: inMax == inMin divides by zero. Use ScaleChecked at
// configuration boundaries.
func Scale[T core.Number](input, inMax, inMin, outMax, outMin T) T {
	if debug.Enabled {
		debug.Assert(inMax != inMin, "scale: zero input span at %v", inMax)
	}

	in0 := float64(inMin)
	out0 := float64(outMin)
	v := (float64(input)-in0)*(float64(outMax)-out0)/(float64(inMax)-in0) + out0

	if isInteger[T]() {
		v = math.Round(v)
		if debug.Enabled {
			debug.Assert(float64(T(v)) == v, "scale: result %v out of range", v)
		}
	}
	return T(v)
}

// ScaleChecked is Scale with the zero-span case reported as an error.
func ScaleChecked[T core.Number](input, inMax, inMin, outMax, outMin T) (T, error) {
	if inMax == inMin {
		return 0, fmt.Errorf("[%v, %v]: %w", inMin, inMax, ErrZeroSpan)
	}
	return Scale(input, inMax, inMin, outMax, outMin), nil
}

// ScaleBlock maps every sample of src onto dst. Both slices must have the
// same length. Zero-alloc.
func ScaleBlock(dst, src []float64, inMax, inMin, outMax, outMin float64) {
	if debug.Enabled {
		debug.Assert(inMax != inMin, "scale: zero input span at %v", inMax)
	}

	if len(src) == 0 {
		return
	}

	gain := (outMax - outMin) / (inMax - inMin)
	offset := outMin - inMin*gain

	vecmath.ScaleBlock(dst, src, gain)
	for i := range dst[:len(src)] {
		dst[i] += offset
	}
}

func isInteger[T core.Number]() bool {
	return T(1)/T(2) == 0
}
