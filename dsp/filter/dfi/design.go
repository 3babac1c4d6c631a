package dfi

import (
	"math"

	"github.com/cwbudde/algo-ctrl/internal/debug"
)

// prewarp maps an analog corner frequency onto the bilinear-transform
// frequency axis, K = tan(pi*freq*ts).
func prewarp(freq, ts float64) float64 {
	return math.Tan(math.Pi * freq * ts)
}

// bandCenter returns the centre frequency and bandwidth of [freq1, freq2].
func bandCenter(freq1, freq2 float64) (center, width float64) {
	if debug.Enabled {
		debug.Assert(freq1 < freq2, "dfi: band edges out of order: freq1 %g >= freq2 %g", freq1, freq2)
	}

	return (freq1 + freq2) / 2, freq2 - freq1
}

// bandQ folds the band width into the quality factor so that q = 1 puts
// the -3 dB points near the band edges.
func bandQ(freq1, freq2, q float64) (center, effectiveQ float64) {
	center, width := bandCenter(freq1, freq2)
	return center, q * center / width
}

// rbj holds the shared intermediate terms of the RBJ cookbook designs.
type rbj struct {
	cw, alpha float64
}

func newRBJ(freq, q, ts float64) rbj {
	w0 := 2 * math.Pi * freq * ts
	return rbj{
		cw:    math.Cos(w0),
		alpha: math.Sin(w0) / (2 * q),
	}
}

// normalize divides all terms by a0 = 1 + alpha.
func (r rbj) normalize(b0, b1, b2 float64) (a1, a2, nb0, nb1, nb2 float64) {
	inv := 1 / (1 + r.alpha)
	return -2 * r.cw * inv, (1 - r.alpha) * inv, b0 * inv, b1 * inv, b2 * inv
}
