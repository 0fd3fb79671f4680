// Package absratio computes absolute ratios: the larger magnitude of two
// numbers divided by the smaller.
//
// Variants are provided for float64 ([AbsRatioFloat64]), 128-bit signed
// integers ([AbsRatioInt128], [CheckedAbsRatioInt128]), non-zero 128-bit
// signed integers ([AbsRatioNonZero]), and any type implementing [Number]
// ([AbsRatio]). There are also [math/big] counterparts, [AbsRatioBigInt] and
// [AbsRatioRat].
//
// Everything in this package is pure, and safe for concurrent use. Aside from
// the [math/big] variants, and the string conversions, nothing allocates.
package absratio
