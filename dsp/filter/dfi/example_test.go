package dfi_test

import (
	"fmt"

	"github.com/cwbudde/algo-ctrl/dsp/filter/dfi"
)

func ExampleFirstOrder_Step() {
	var f dfi.FirstOrder[float32]
	f.DesignLowPass(100, 1e-3)

	var y float32
	for range 200 {
		y = f.Step(1)
	}
	fmt.Printf("settled: %.4f\n", y)

	// Output:
	// settled: 1.0000
}

func ExampleSecondOrder_DesignBandStop() {
	var f dfi.SecondOrder[float64]
	f.DesignBandStop(900, 1100, 1, 1e-4)

	fmt.Printf("a1=%.6f a2=%.6f\n", f.A1, f.A2)
	fmt.Printf("b0=%.6f b1=%.6f b2=%.6f\n", f.B0, f.B1, f.B2)

	// Output:
	// a1=-1.528208 a2=0.888969
	// b0=0.944485 b1=-1.528208 b2=0.944485
}

func ExampleSecondOrder_Design() {
	var f dfi.SecondOrder[float64]
	err := f.Design(dfi.Params{Response: dfi.BandPass, Freq: 1100, Freq2: 900, Q: 1, Ts: 1e-4})
	fmt.Println(err)
	fmt.Println(f.Configured())

	// Output:
	// freq1 1100, freq2 900: dfi: band edges must satisfy freq1 < freq2
	// false
}
