package limit

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/internal/debug"
)

// ErrInvertedBounds is returned by Validate when Low > High.
var ErrInvertedBounds = errors.New("limit: low bound above high bound")

// ErrEmptyRange is returned by RangeLimiter.Validate when Low == High.
var ErrEmptyRange = errors.New("limit: range has zero amplitude")

// Clamp limits value to the inclusive range [low, high]. low must not
// exceed high.
func Clamp[T core.Number](value, low, high T) T {
	if value < low {
		return low
	}

	if value > high {
		return high
	}

	return value
}

// Limiter clamps values into [Low, High].
type Limiter[T core.Number] struct {
	High T
	Low  T
}

// NewLimiter returns a Limiter for [low, high].
func NewLimiter[T core.Number](high, low T) Limiter[T] {
	return Limiter[T]{High: high, Low: low}
}

// Do returns value clamped into the limiter range.
func (l Limiter[T]) Do(value T) T {
	return Clamp(value, l.Low, l.High)
}

// Validate reports inverted bounds.
func (l Limiter[T]) Validate() error {
	return checkBounds(l.Low, l.High)
}

// RangeLimiter clamps into [Low, High] and rescales the clamped value by
// Amplitude (High - Low), giving its position in the range as a fraction in
// [0, 1].
type RangeLimiter[T core.Number] struct {
	High      T
	Low       T
	Amplitude T
}

// NewRangeLimiter returns a RangeLimiter for [low, high]. high - low must be
// representable in T.
func NewRangeLimiter[T core.Number](high, low T) RangeLimiter[T] {
	return RangeLimiter[T]{High: high, Low: low, Amplitude: high - low}
}

// Do clamps value and returns (clamped - Low) / Amplitude. An empty range
// divides by zero.
func (l RangeLimiter[T]) Do(value T) float64 {
	if debug.Enabled {
		debug.Assert(l.Amplitude != 0, "limit: zero amplitude range at %v", l.Low)
	}

	return float64(Clamp(value, l.Low, l.High)-l.Low) / float64(l.Amplitude)
}

// Wrap keeps a periodic value such as an electrical angle inside
// [Low, High]: a value that left the range is shifted back by one Amplitude
// and then clamped.
func (l RangeLimiter[T]) Wrap(value T) T {
	if value > l.High {
		value -= l.Amplitude
	} else if value < l.Low {
		value += l.Amplitude
	}

	return Clamp(value, l.Low, l.High)
}

// Validate reports inverted bounds and an empty range.
func (l RangeLimiter[T]) Validate() error {
	if err := checkBounds(l.Low, l.High); err != nil {
		return err
	}
	if l.Amplitude == 0 {
		return fmt.Errorf("[%v, %v]: %w", l.Low, l.High, ErrEmptyRange)
	}
	return nil
}

// UpperLimiter caps values at High.
type UpperLimiter[T core.Number] struct {
	High T
}

// NewUpperLimiter returns an UpperLimiter capping at high.
func NewUpperLimiter[T core.Number](high T) UpperLimiter[T] {
	return UpperLimiter[T]{High: high}
}

// Do returns min(value, High).
func (l UpperLimiter[T]) Do(value T) T {
	return min(value, l.High)
}

// LowerLimiter floors values at Low.
type LowerLimiter[T core.Number] struct {
	Low T
}

// NewLowerLimiter returns a LowerLimiter flooring at low.
func NewLowerLimiter[T core.Number](low T) LowerLimiter[T] {
	return LowerLimiter[T]{Low: low}
}

// Do returns max(value, Low).
func (l LowerLimiter[T]) Do(value T) T {
	return max(value, l.Low)
}

func checkBounds[T core.Number](low, high T) error {
	if low > high {
		return fmt.Errorf("[%v, %v]: %w", low, high, ErrInvertedBounds)
	}
	return nil
}
