package dfi

import "github.com/cwbudde/algo-ctrl/dsp/core"

// Coefficients1 holds the recurrence coefficients of a first-order section.
// a0 is normalized to 1 and not stored.
//
//	y[n] = B0*x[n] + B1*x[n-1] - A1*y[n-1]
type Coefficients1[F core.Float] struct {
	A1     F // feedback
	B0, B1 F // feedforward
}

// State1 is the delay line of a first-order section.
type State1[F core.Float] struct {
	InputZ1  F // x[n-1]
	OutputZ1 F // y[n-1]
}

// FirstOrder is a first-order Direct Form I filter. The zero value is
// unconfigured and must be designed before it is stepped.
type FirstOrder[F core.Float] struct {
	Coefficients1[F]
	State1[F]

	configured bool
}

func (f *FirstOrder[F]) setCoefficients(a1, b0, b1 float64) {
	f.A1 = F(a1)
	f.B0 = F(b0)
	f.B1 = F(b1)
	f.configured = true
}

// Configured reports whether a Design* method has run on f.
func (f *FirstOrder[F]) Configured() bool {
	return f.configured
}

// DesignAllPass designs a unity-magnitude section whose phase passes
// through -90 degrees at freq.
func (f *FirstOrder[F]) DesignAllPass(freq, ts F) {
	k := prewarp(float64(freq), float64(ts))
	a1 := (k - 1) / (k + 1)
	f.setCoefficients(a1, a1, 1)
}

// DesignHighPass designs a high-pass section with its -3 dB corner at freq.
func (f *FirstOrder[F]) DesignHighPass(freq, ts F) {
	k := prewarp(float64(freq), float64(ts))
	n := 1 / (k + 1)
	f.setCoefficients((k-1)*n, n, -n)
}

// DesignLowPass designs a low-pass section with its -3 dB corner at freq.
func (f *FirstOrder[F]) DesignLowPass(freq, ts F) {
	k := prewarp(float64(freq), float64(ts))
	n := 1 / (k + 1)
	f.setCoefficients((k-1)*n, k*n, k*n)
}

// DesignBandPass designs the band-pass half of the complementary pair
// (1 - A(z))/2, where A is the all-pass tuned to the centre of
// [freq1, freq2]. A single real pole has a monotonic magnitude, so the
// result blocks DC and passes everything well above the band centre.
func (f *FirstOrder[F]) DesignBandPass(freq1, freq2, ts F) {
	center, _ := bandCenter(float64(freq1), float64(freq2))
	k := prewarp(center, float64(ts))
	a1 := (k - 1) / (k + 1)
	g := (1 - a1) / 2
	f.setCoefficients(a1, g, -g)
}

// DesignBandStop designs the band-stop half (1 + A(z))/2 of the pair
// described on DesignBandPass. The two designs sum to unity.
func (f *FirstOrder[F]) DesignBandStop(freq1, freq2, ts F) {
	center, _ := bandCenter(float64(freq1), float64(freq2))
	k := prewarp(center, float64(ts))
	a1 := (k - 1) / (k + 1)
	g := (1 + a1) / 2
	f.setCoefficients(a1, g, g)
}

// ResetState clears the delay line and keeps the coefficients.
func (f *FirstOrder[F]) ResetState() {
	f.State1 = State1[F]{}
}

// Step filters one input sample and returns the output.
func (f *FirstOrder[F]) Step(x F) F {
	y := f.B0*x + f.B1*f.InputZ1 - f.A1*f.OutputZ1
	f.InputZ1 = x
	f.OutputZ1 = y

	return y
}

// ProcessBlock filters buf in place. Zero-alloc.
func (f *FirstOrder[F]) ProcessBlock(buf []F) {
	b0, b1, a1 := f.B0, f.B1, f.A1
	x1, y1 := f.InputZ1, f.OutputZ1

	for i, x := range buf {
		y := b0*x + b1*x1 - a1*y1
		x1 = x
		y1 = y
		buf[i] = y
	}

	f.InputZ1, f.OutputZ1 = x1, y1
}
