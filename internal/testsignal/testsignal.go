// Package testsignal measures the settled response of a filter to sine
// probes. It backs the package tests and is not part of the public API.
package testsignal

import (
	"errors"
	"math"
	"math/bits"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/tphakala/simd/f64"
	"gonum.org/v1/gonum/floats"
)

// Flat-top window terms; the coherent gain is the first term.
var flatTop = [...]float64{0.21557895, 0.41663158, 0.277263158, 0.083578947, 0.006947368}

// ToneAmplitude returns the amplitude of the freq component of x by
// projecting onto a quadrature reference. x should span a whole number of
// periods for an exact result.
func ToneAmplitude(x []float64, freq, sampleRate float64) float64 {
	n := len(x)
	if n == 0 {
		return 0
	}

	phase := make([]float64, n)
	floats.Span(phase, 0, 2*math.Pi*freq/sampleRate*float64(n-1))

	c := make([]float64, n)
	s := make([]float64, n)
	for i, p := range phase {
		c[i] = math.Cos(p)
		s[i] = math.Sin(p)
	}

	re := f64.DotProduct(x, c)
	im := f64.DotProduct(x, s)
	return 2 * math.Hypot(re, im) / float64(n)
}

// BinAmplitudes returns the amplitude of each freq in x, read from a
// flat-top windowed FFT of the longest power-of-two prefix of x. Tones
// should be at least six bins apart.
func BinAmplitudes(x []float64, sampleRate float64, freqs ...float64) ([]float64, error) {
	if len(x) < 16 {
		return nil, errors.New("testsignal: need at least 16 samples")
	}

	n := 1 << (bits.Len(uint(len(x))) - 1)
	in := make([]complex128, n)
	for i := range in {
		w := 0.0
		arg := 2 * math.Pi * float64(i) / float64(n)
		for k, a := range flatTop {
			sign := 1.0
			if k%2 == 1 {
				sign = -1
			}
			w += sign * a * math.Cos(float64(k)*arg)
		}
		in[i] = complex(x[i]*w, 0)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, err
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, err
	}

	mag := make([]float64, n/2+1)
	for i := range mag {
		re, im := real(out[i]), imag(out[i])
		mag[i] = 2 * math.Hypot(re, im) / (float64(n) * flatTop[0])
	}

	amps := make([]float64, len(freqs))
	for i, f := range freqs {
		center := int(math.Round(f * float64(n) / sampleRate))
		lo := max(center-2, 0)
		hi := min(center+3, len(mag))
		amps[i] = floats.Max(mag[lo:hi])
	}
	return amps, nil
}

// Settled returns the tail of x after skip samples.
func Settled(x []float64, skip int) []float64 {
	if skip >= len(x) {
		return nil
	}
	return x[skip:]
}
