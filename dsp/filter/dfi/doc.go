// Package dfi provides first- and second-order IIR filters in Direct Form I.
//
// A filter instance couples two independent parts:
//
//   - coefficients ([Coefficients1], [Coefficients2]), written only by the
//     Design* methods, and
//   - the delay line ([State1], [State2]), written only by Step,
//     ProcessBlock and ResetState.
//
// Redesigning a running filter keeps its delay line, so the response can be
// changed on the fly. ResetState clears the delay line and keeps the design.
// The two operations compose in either order.
//
// Five responses are available for each order: all-pass, low-pass,
// high-pass, band-pass and band-stop. Frequencies are in Hz and the sample
// period ts in seconds. The Design* methods are unchecked; callers that take
// parameters from configuration go through [Params.Validate] or the
// Design method, which validates before dispatching.
//
// Step costs a fixed multiply-accumulate chain (three terms for first
// order, five for second order), never allocates and never branches. An
// instance must be driven from one goroutine at a time.
package dfi
