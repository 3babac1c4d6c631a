package dfi

import (
	"testing"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/dsp/signal"
	"github.com/cwbudde/algo-ctrl/internal/testsignal"
	"github.com/stretchr/testify/require"
)

const (
	testTs   = 1e-4
	testRate = 1 / testTs

	// settle covers the transient of every design used in the tests.
	settle = 4000
	// measure spans one second so every integer-Hz tone fits whole periods.
	measure = 10000
)

type stepper interface {
	Step(x float64) float64
}

// run feeds x through f sample by sample and returns the outputs.
func run(f stepper, x []float64) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = f.Step(v)
	}
	return y
}

// toneGain drives f with a unit sine at freq and returns the settled
// output amplitude.
func toneGain(t *testing.T, f stepper, freq float64) float64 {
	t.Helper()

	g := signal.NewGenerator(core.WithSampleRate(testRate))
	x, err := g.Sine(freq, 1, settle+measure)
	require.NoError(t, err)

	y := run(f, x)
	return testsignal.ToneAmplitude(testsignal.Settled(y, settle), freq, g.Config().SampleRate)
}
