package absratio

import (
	"lukechampine.com/uint128"
)

// AbsRatioInt128 returns the larger of |x| and |y|, divided by the smaller,
// truncated. The magnitude of [MinInt128] is handled without overflow.
//
// A panic (integer divide by zero) will occur if either x or y are zero. See
// also [CheckedAbsRatioInt128].
func AbsRatioInt128(x, y Int128) uint128.Uint128 {
	return ratioU128(x.UnsignedAbs(), y.UnsignedAbs())
}

// CheckedAbsRatioInt128 is like [AbsRatioInt128], but returns false instead
// of panicking, if either x or y are zero.
func CheckedAbsRatioInt128(x, y Int128) (uint128.Uint128, bool) {
	a, b := x.UnsignedAbs(), y.UnsignedAbs()
	if a.IsZero() || b.IsZero() {
		return uint128.Zero, false
	}
	return ratioU128(a, b), true
}

// AbsRatioNonZero is like [AbsRatioInt128], but never panics, as neither
// value may be zero.
func AbsRatioNonZero(x, y NonZeroInt128) uint128.Uint128 {
	return ratioU128(x.Get().UnsignedAbs(), y.Get().UnsignedAbs())
}

func ratioU128(a, b uint128.Uint128) uint128.Uint128 {
	if a.Cmp(b) < 0 {
		return b.Div(a)
	}
	return a.Div(b)
}
