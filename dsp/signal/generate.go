// Package signal generates deterministic probe signals for control and
// filter loops running at a fixed rate.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-ctrl/dsp/core"
)

// Generator creates deterministic signals from a shared loop configuration.
type Generator struct {
	cfg  core.LoopConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.LoopOption) *Generator {
	return &Generator{
		cfg:  core.ApplyLoopOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(loopOpts []core.LoopOption, opts ...Option) *Generator {
	g := NewGenerator(loopOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator loop configuration.
func (g *Generator) Config() core.LoopConfig {
	return g.cfg
}

// Sine generates a sine wave starting at phase zero.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.Multisine([]float64{freqHz}, amplitude, samples)
}

// Multisine generates the sum of equal-amplitude sines, one per frequency.
func (g *Generator) Multisine(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("sine needs at least one frequency")
	}

	ts := g.cfg.SamplePeriod()
	out := make([]float64, samples)
	for _, f := range freqsHz {
		if f < 0 || f >= g.cfg.SampleRate/2 {
			return nil, fmt.Errorf("sine frequency %g Hz outside [0, %g) Hz", f, g.cfg.SampleRate/2)
		}
		step := 2 * math.Pi * f * ts
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}
	return out, nil
}

// Step generates a unit step scaled to level: zero before at, level from at on.
func (g *Generator) Step(level float64, at, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if at < 0 || at >= samples {
		return nil, fmt.Errorf("step index %d outside [0, %d)", at, samples)
	}
	out := make([]float64, samples)
	for i := at; i < samples; i++ {
		out[i] = level
	}
	return out, nil
}

// Impulse generates a single sample of the given amplitude at index at.
func (g *Generator) Impulse(amplitude float64, at, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("impulse samples must be > 0: %d", samples)
	}
	if at < 0 || at >= samples {
		return nil, fmt.Errorf("impulse index %d outside [0, %d)", at, samples)
	}
	out := make([]float64, samples)
	out[at] = amplitude
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}
