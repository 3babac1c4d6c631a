package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cwbudde/algo-ctrl/dsp/core"
	"github.com/cwbudde/algo-ctrl/dsp/filter/dfi"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// sampleFilter is the part of the dfi filters the command drives.
type sampleFilter interface {
	Step(x float64) float64
	ProcessBlock(buf []float64)
}

// designConfig collects the design flags shared by all commands.
type designConfig struct {
	order    int
	response string
	freq     float64
	freq2    float64
	q        float64
	ts       float64
	rate     float64
	block    int
}

func (c *designConfig) flags(withRate bool) []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{Name: "order", Aliases: []string{"o"}, Value: 2, Usage: "filter order, 1 or 2", Destination: &c.order},
		&cli.StringFlag{Name: "response", Aliases: []string{"r"}, Value: "lowpass", Usage: "allpass, lowpass, highpass, bandpass or bandstop", Destination: &c.response},
		&cli.Float64Flag{Name: "freq", Aliases: []string{"f"}, Usage: "corner frequency or lower band edge in Hz", Required: true, Destination: &c.freq},
		&cli.Float64Flag{Name: "freq2", Usage: "upper band edge in Hz (band responses)", Destination: &c.freq2},
		&cli.Float64Flag{Name: "q", Value: 1 / math.Sqrt2, Usage: "quality factor, second order only (ignored with --order 1)", Destination: &c.q},
		&cli.IntFlag{Name: "block", Value: core.DefaultLoopConfig().BlockSize, Usage: "samples per processing block", Destination: &c.block},
	}
	if withRate {
		flags = append(flags,
			&cli.Float64Flag{Name: "ts", Usage: "sample period in seconds (overrides --rate)", Destination: &c.ts},
			&cli.Float64Flag{Name: "rate", Value: core.DefaultLoopConfig().SampleRate, Usage: "sample rate in Hz", Destination: &c.rate},
		)
	}
	return flags
}

// loop resolves the loop configuration for the given sample rate. An
// explicit sample period wins over the rate.
func (c *designConfig) loop(rate float64) core.LoopConfig {
	return core.ApplyLoopOptions(
		core.WithSampleRate(rate),
		core.WithSamplePeriod(c.ts),
		core.WithBlockSize(c.block),
	)
}

func (c *designConfig) params(loop core.LoopConfig) (dfi.Params, error) {
	resp, err := dfi.ParseResponse(c.response)
	if err != nil {
		return dfi.Params{}, err
	}

	return dfi.Params{
		Response: resp,
		Freq:     c.freq,
		Freq2:    c.freq2,
		Q:        c.q,
		Ts:       loop.SamplePeriod(),
	}, nil
}

// build designs a filter for a loop running at rate.
func (c *designConfig) build(rate float64) (sampleFilter, error) {
	loop := c.loop(rate)
	p, err := c.params(loop)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"order":    c.order,
		"response": p.Response,
		"freq":     p.Freq,
		"freq2":    p.Freq2,
		"q":        p.Q,
		"rate":     loop.SampleRate,
	}).Debug("designing filter")

	switch c.order {
	case 1:
		f := &dfi.FirstOrder[float64]{}
		if err := f.Design(p); err != nil {
			return nil, err
		}
		return f, nil
	case 2:
		f := &dfi.SecondOrder[float64]{}
		if err := f.Design(p); err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("order %d: must be 1 or 2", c.order)
	}
}

func printCoefficients(w io.Writer, f sampleFilter) error {
	var err error
	switch f := f.(type) {
	case *dfi.FirstOrder[float64]:
		_, err = fmt.Fprintf(w, "a1=%.12g\nb0=%.12g\nb1=%.12g\n", f.A1, f.B0, f.B1)
	case *dfi.SecondOrder[float64]:
		_, err = fmt.Fprintf(w, "a1=%.12g\na2=%.12g\nb0=%.12g\nb1=%.12g\nb2=%.12g\n", f.A1, f.A2, f.B0, f.B1, f.B2)
	}
	return err
}
