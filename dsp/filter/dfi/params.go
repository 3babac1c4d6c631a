package dfi

import (
	"errors"
	"fmt"
	"strings"
)

// Response selects the frequency-domain shape of a design.
type Response int

const (
	AllPass Response = iota
	LowPass
	HighPass
	BandPass
	BandStop
)

var responseNames = [...]string{
	AllPass:  "allpass",
	LowPass:  "lowpass",
	HighPass: "highpass",
	BandPass: "bandpass",
	BandStop: "bandstop",
}

func (r Response) String() string {
	if r < 0 || int(r) >= len(responseNames) {
		return fmt.Sprintf("Response(%d)", int(r))
	}
	return responseNames[r]
}

// IsBand reports whether r is specified by two band edges.
func (r Response) IsBand() bool {
	return r == BandPass || r == BandStop
}

// ParseResponse maps a name such as "lowpass" or "band-stop" to a Response.
func ParseResponse(name string) (Response, error) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(name))
	for r, n := range responseNames {
		if n == key {
			return Response(r), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownResponse, name)
}

var (
	// ErrUnknownResponse is returned for a Response outside the five shapes.
	ErrUnknownResponse = errors.New("dfi: unknown response")
	// ErrNonPositive is returned when a frequency, q or ts is not > 0.
	ErrNonPositive = errors.New("dfi: parameter must be > 0")
	// ErrBandOrder is returned when a band design has freq1 >= freq2.
	ErrBandOrder = errors.New("dfi: band edges must satisfy freq1 < freq2")
	// ErrAboveNyquist is returned when a frequency is at or above 1/(2*ts).
	ErrAboveNyquist = errors.New("dfi: frequency must be below Nyquist")
)

// Params is a complete filter specification as read from configuration.
// Freq2 is used by band responses only, Q by second-order designs only.
type Params struct {
	Response Response
	Freq     float64 // corner, or lower band edge
	Freq2    float64 // upper band edge
	Q        float64
	Ts       float64 // sample period in seconds
}

// Validate checks p for a design of the given order (1 or 2).
func (p Params) Validate(order int) error {
	if p.Response < AllPass || p.Response > BandStop {
		return fmt.Errorf("%w: %d", ErrUnknownResponse, int(p.Response))
	}

	if !(p.Ts > 0) {
		return fmt.Errorf("ts %g: %w", p.Ts, ErrNonPositive)
	}

	if !(p.Freq > 0) {
		return fmt.Errorf("freq %g: %w", p.Freq, ErrNonPositive)
	}

	nyquist := 1 / (2 * p.Ts)
	if p.Freq >= nyquist {
		return fmt.Errorf("freq %g Hz, nyquist %g Hz: %w", p.Freq, nyquist, ErrAboveNyquist)
	}

	if p.Response.IsBand() {
		if !(p.Freq < p.Freq2) {
			return fmt.Errorf("freq1 %g, freq2 %g: %w", p.Freq, p.Freq2, ErrBandOrder)
		}
		if p.Freq2 >= nyquist {
			return fmt.Errorf("freq2 %g Hz, nyquist %g Hz: %w", p.Freq2, nyquist, ErrAboveNyquist)
		}
	}

	if order == 2 && !(p.Q > 0) {
		return fmt.Errorf("q %g: %w", p.Q, ErrNonPositive)
	}

	return nil
}

// Design validates p and runs the matching first-order designer. On error
// f is left unchanged.
func (f *FirstOrder[F]) Design(p Params) error {
	if err := p.Validate(1); err != nil {
		return err
	}

	freq, freq2, ts := F(p.Freq), F(p.Freq2), F(p.Ts)
	switch p.Response {
	case AllPass:
		f.DesignAllPass(freq, ts)
	case LowPass:
		f.DesignLowPass(freq, ts)
	case HighPass:
		f.DesignHighPass(freq, ts)
	case BandPass:
		f.DesignBandPass(freq, freq2, ts)
	case BandStop:
		f.DesignBandStop(freq, freq2, ts)
	}

	return nil
}

// Design validates p and runs the matching second-order designer. On error
// f is left unchanged.
func (f *SecondOrder[F]) Design(p Params) error {
	if err := p.Validate(2); err != nil {
		return err
	}

	freq, freq2, q, ts := F(p.Freq), F(p.Freq2), F(p.Q), F(p.Ts)
	switch p.Response {
	case AllPass:
		f.DesignAllPass(freq, q, ts)
	case LowPass:
		f.DesignLowPass(freq, q, ts)
	case HighPass:
		f.DesignHighPass(freq, q, ts)
	case BandPass:
		f.DesignBandPass(freq, freq2, q, ts)
	case BandStop:
		f.DesignBandStop(freq, freq2, q, ts)
	}

	return nil
}
