// Package limit bounds scalar values for control loops.
//
// [Limiter] clamps into [Low, High], [UpperLimiter] and [LowerLimiter]
// enforce a single bound, and [RangeLimiter] clamps and rescales by the range
// amplitude; its Wrap method folds periodic quantities such as electrical
// angles back into range. All types are
// generic over the integer and floating-point widths in [core.Number].
//
// The Do methods are unchecked; call Validate once after configuration.
package limit
