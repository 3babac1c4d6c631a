// Command dfifilter designs Direct Form I filters and runs WAV files
// through them.
//
// Usage:
//
//	dfifilter design --order 2 --response bandstop --freq 900 --freq2 1100 --q 1 --rate 10000
//	dfifilter apply --order 1 --response lowpass --freq 200 --limit 0.9 in.wav out.wav
//
// design prints the recurrence coefficients. apply filters every channel
// of the input with its own filter instance, optionally limits the peak,
// and writes the result with the input's format.
package main

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(w io.Writer) *cli.App {
	var (
		cfg      designConfig
		logLevel string
		peak     float64
	)

	return &cli.App{
		Name:   "dfifilter",
		Usage:  "Design and apply first/second-order Direct Form I filters",
		Writer: w,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "trace, debug, info, warn or error",
				Destination: &logLevel,
			},
		},
		Before: func(*cli.Context) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:    "design",
				Aliases: []string{"d"},
				Usage:   "Print the coefficients of a filter design",
				Flags:   cfg.flags(true),
				Action: func(cCtx *cli.Context) error {
					f, err := cfg.build(cfg.rate)
					if err != nil {
						return err
					}
					return printCoefficients(cCtx.App.Writer, f)
				},
			},
			{
				Name:      "apply",
				Aliases:   []string{"a"},
				Usage:     "Filter a WAV file",
				ArgsUsage: "<input.wav> <output.wav>",
				Flags: append(cfg.flags(false), &cli.Float64Flag{
					Name:        "limit",
					Value:       1,
					Usage:       "output peak limit relative to full scale (0..1]",
					Destination: &peak,
				}),
				Action: func(cCtx *cli.Context) error {
					if cCtx.NArg() != 2 {
						return cli.Exit("apply needs an input and an output file", 2)
					}
					return applyWAV(cCtx.Args().Get(0), cCtx.Args().Get(1), cfg, peak)
				},
			},
		},
	}
}
