package dfi

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/dsp/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func TestFirstOrderZeroValueUnconfigured(t *testing.T) {
	var f FirstOrder[float64]
	assert.False(t, f.Configured())
	assert.Zero(t, f.Step(1))

	f.DesignLowPass(100, testTs)
	assert.True(t, f.Configured())
}

func TestFirstOrderStepHandTraced(t *testing.T) {
	// y[n] = 0.25*x[n] + 0.25*x[n-1] + 0.5*y[n-1]
	f := FirstOrder[float64]{Coefficients1: Coefficients1[float64]{A1: -0.5, B0: 0.25, B1: 0.25}}

	want := []float64{0.25, 0.375, 0.1875, 0.09375}
	got := run(&f, []float64{1, 0, 0, 0})
	assert.InDeltaSlice(t, want, got, 1e-15)
	assert.Equal(t, State1[float64]{InputZ1: 0, OutputZ1: 0.09375}, f.State1)
}

func TestFirstOrderLowPassUnityDCGain(t *testing.T) {
	for _, freq := range []float64{1, 10, 100, 1000, 4000} {
		var f FirstOrder[float64]
		f.DesignLowPass(freq, testTs)

		var y float64
		for range 60000 {
			y = f.Step(3.5)
		}
		assert.InDelta(t, 3.5, y, 1e-9, "freq=%v", freq)
	}
}

func TestFirstOrderCornerGain(t *testing.T) {
	var lp, hp FirstOrder[float64]
	lp.DesignLowPass(500, testTs)
	hp.DesignHighPass(500, testTs)

	assert.InDelta(t, math.Sqrt2/2, toneGain(t, &lp, 500), 1e-6)
	assert.InDelta(t, math.Sqrt2/2, toneGain(t, &hp, 500), 1e-6)

	assert.InDelta(t, 0, hp.B0+hp.B1, 1e-15, "high-pass DC gain")
	assert.InDelta(t, 1, (hp.B0-hp.B1)/(1-hp.A1), 1e-12, "high-pass Nyquist gain")
	assert.InDelta(t, 0, (lp.B0-lp.B1)/(1-lp.A1), 1e-12, "low-pass Nyquist gain")
}

func TestFirstOrderAllPassUnitMagnitude(t *testing.T) {
	var f FirstOrder[float64]
	f.DesignAllPass(500, testTs)

	for _, freq := range []float64{20, 150, 500, 1200, 3000, 4800} {
		f.ResetState()
		assert.InDelta(t, 1, toneGain(t, &f, freq), 1e-6, "freq=%v", freq)
	}
}

func TestFirstOrderBandPairComplementary(t *testing.T) {
	var bp, bs FirstOrder[float64]
	bp.DesignBandPass(400, 600, testTs)
	bs.DesignBandStop(400, 600, testTs)

	assert.Equal(t, bp.A1, bs.A1)
	assert.InDelta(t, 1, bp.B0+bs.B0, 1e-15)
	assert.InDelta(t, bp.A1, bp.B1+bs.B1, 1e-15)

	g := signal.NewGeneratorWithOptions(nil, signal.WithSeed(3))
	x, err := g.WhiteNoise(1, 512)
	require.NoError(t, err)

	sum := run(&bp, x)
	floats.Add(sum, run(&bs, x))
	assert.InDeltaSlice(t, x, sum, 1e-12)

	// Power complementary at the band centre.
	bp.ResetState()
	bs.ResetState()
	p, s := toneGain(t, &bp, 500), toneGain(t, &bs, 500)
	assert.InDelta(t, 1, p*p+s*s, 1e-6)
	assert.InDelta(t, math.Sqrt2/2, p, 1e-6)
}

func TestFirstOrderResetStateIdempotent(t *testing.T) {
	var f FirstOrder[float64]
	f.DesignHighPass(200, testTs)
	run(&f, []float64{1, -2, 3})
	coeffs := f.Coefficients1

	f.ResetState()
	once := f
	f.ResetState()

	assert.Equal(t, once, f)
	assert.Equal(t, State1[float64]{}, f.State1)
	assert.Equal(t, coeffs, f.Coefficients1)
}

func TestFirstOrderRedesignKeepsHistory(t *testing.T) {
	var f FirstOrder[float64]
	f.DesignLowPass(100, testTs)
	run(&f, []float64{0.5, 1, 1.5})
	before := f.State1

	f.DesignHighPass(2000, testTs)
	assert.Equal(t, before, f.State1)

	y := f.Step(2)
	assert.Equal(t, 2.0, f.InputZ1)
	assert.Equal(t, y, f.OutputZ1)
	assert.InDelta(t, f.B0*2+f.B1*before.InputZ1-f.A1*before.OutputZ1, y, 1e-15)
}

func TestFirstOrderResetThenDesignComposes(t *testing.T) {
	var a, b FirstOrder[float64]
	a.DesignLowPass(100, testTs)
	b.DesignLowPass(100, testTs)
	run(&a, []float64{1, 2, 3})
	run(&b, []float64{1, 2, 3})

	a.ResetState()
	a.DesignBandStop(300, 700, testTs)
	b.DesignBandStop(300, 700, testTs)
	b.ResetState()

	assert.Equal(t, a, b)
}

func TestFirstOrderStepDeterministic(t *testing.T) {
	var f FirstOrder[float64]
	f.DesignLowPass(321, testTs)
	run(&f, []float64{0.1, -0.7, 0.33})

	g := f
	assert.Equal(t, f.Step(0.123456789), g.Step(0.123456789))
	assert.Equal(t, f, g)
}

func TestFirstOrderProcessBlockMatchesStep(t *testing.T) {
	g := signal.NewGenerator(core.WithSampleRate(testRate))
	x, err := g.WhiteNoise(1, 257)
	require.NoError(t, err)

	var ref, blk FirstOrder[float64]
	ref.DesignHighPass(50, testTs)
	blk.DesignHighPass(50, testTs)

	want := run(&ref, x)
	buf := append([]float64(nil), x...)
	blk.ProcessBlock(buf[:100])
	blk.ProcessBlock(buf[100:])

	assert.InDeltaSlice(t, want, buf, 1e-12)
	assert.InDelta(t, ref.OutputZ1, blk.OutputZ1, 1e-12)
	assert.Equal(t, ref.InputZ1, blk.InputZ1)
}

func TestFirstOrderFloat32(t *testing.T) {
	var f FirstOrder[float32]
	f.DesignLowPass(50, 1e-4)

	var y float32
	for range 20000 {
		y = f.Step(-1.25)
	}
	assert.True(t, core.NearlyEqual(y, -1.25, 1e-4), "y=%v", y)
}
