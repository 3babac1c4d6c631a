package dfi

import "github.com/cwbudde/algo-ctrl/dsp/core"

// Coefficients2 holds the recurrence coefficients of a second-order
// section. a0 is normalized to 1 and not stored.
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients2[F core.Float] struct {
	A1, A2     F // feedback
	B0, B1, B2 F // feedforward
}

// State2 is the delay line of a second-order section.
type State2[F core.Float] struct {
	InputZ1, InputZ2   F // x[n-1], x[n-2]
	OutputZ1, OutputZ2 F // y[n-1], y[n-2]
}

// SecondOrder is a second-order Direct Form I filter (a DF-I biquad). The
// zero value is unconfigured and must be designed before it is stepped.
type SecondOrder[F core.Float] struct {
	Coefficients2[F]
	State2[F]

	configured bool
}

func (f *SecondOrder[F]) setCoefficients(a1, a2, b0, b1, b2 float64) {
	f.A1 = F(a1)
	f.A2 = F(a2)
	f.B0 = F(b0)
	f.B1 = F(b1)
	f.B2 = F(b2)
	f.configured = true
}

// Configured reports whether a Design* method has run on f.
func (f *SecondOrder[F]) Configured() bool {
	return f.configured
}

// DesignAllPass designs a unity-magnitude section whose phase passes
// through -180 degrees at freq. q sets how fast the phase turns.
func (f *SecondOrder[F]) DesignAllPass(freq, q, ts F) {
	r := newRBJ(float64(freq), float64(q), float64(ts))
	f.setCoefficients(r.normalize(1-r.alpha, -2*r.cw, 1+r.alpha))
}

// DesignHighPass designs a high-pass section with corner freq and
// resonance q (1/sqrt(2) is maximally flat).
func (f *SecondOrder[F]) DesignHighPass(freq, q, ts F) {
	r := newRBJ(float64(freq), float64(q), float64(ts))
	b := (1 + r.cw) / 2
	f.setCoefficients(r.normalize(b, -2*b, b))
}

// DesignLowPass designs a low-pass section with corner freq and
// resonance q (1/sqrt(2) is maximally flat).
func (f *SecondOrder[F]) DesignLowPass(freq, q, ts F) {
	r := newRBJ(float64(freq), float64(q), float64(ts))
	b := (1 - r.cw) / 2
	f.setCoefficients(r.normalize(b, 2*b, b))
}

// DesignBandPass designs a band-pass section with 0 dB gain at the centre
// of [freq1, freq2]. With q = 1 the -3 dB points sit near the band edges;
// larger q narrows the band.
func (f *SecondOrder[F]) DesignBandPass(freq1, freq2, q, ts F) {
	center, bq := bandQ(float64(freq1), float64(freq2), float64(q))
	r := newRBJ(center, bq, float64(ts))
	f.setCoefficients(r.normalize(r.alpha, 0, -r.alpha))
}

// DesignBandStop designs a notch with a null at the centre of
// [freq1, freq2]. q scales the stop band the same way as DesignBandPass.
func (f *SecondOrder[F]) DesignBandStop(freq1, freq2, q, ts F) {
	center, bq := bandQ(float64(freq1), float64(freq2), float64(q))
	r := newRBJ(center, bq, float64(ts))
	f.setCoefficients(r.normalize(1, -2*r.cw, 1))
}

// ResetState clears the delay line and keeps the coefficients.
func (f *SecondOrder[F]) ResetState() {
	f.State2 = State2[F]{}
}

// Step filters one input sample and returns the output.
func (f *SecondOrder[F]) Step(x F) F {
	y := f.B0*x + f.B1*f.InputZ1 + f.B2*f.InputZ2 - f.A1*f.OutputZ1 - f.A2*f.OutputZ2
	f.InputZ2 = f.InputZ1
	f.InputZ1 = x
	f.OutputZ2 = f.OutputZ1
	f.OutputZ1 = y

	return y
}

// ProcessBlock filters buf in place. Zero-alloc.
func (f *SecondOrder[F]) ProcessBlock(buf []F) {
	b0, b1, b2 := f.B0, f.B1, f.B2
	a1, a2 := f.A1, f.A2
	x1, x2 := f.InputZ1, f.InputZ2
	y1, y2 := f.OutputZ1, f.OutputZ2

	for i, x := range buf {
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	f.InputZ1, f.InputZ2 = x1, x2
	f.OutputZ1, f.OutputZ2 = y1, y2
}
