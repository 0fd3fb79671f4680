package absratio

import (
	"math"
)

// fabs branches on the sign bit, rather than using [math.Abs], which means
// the sign of NaN is normalized as well.
func fabs(x float64) float64 {
	if math.Signbit(x) {
		return -x
	}
	return x
}

func fabs32(x float32) float32 {
	if math.Float32bits(x)&(1<<31) != 0 {
		return -x
	}
	return x
}

// AbsRatioFloat64 returns the larger of |x| and |y|, divided by the smaller.
//
// The result follows IEEE-754 division. Special cases are:
//
//	AbsRatioFloat64(x, ±0)     = +Inf (for x != ±0)
//	AbsRatioFloat64(±0, ±0)    = NaN
//	AbsRatioFloat64(±Inf, ±Inf) = NaN
//	AbsRatioFloat64(x, NaN)    = NaN
//	AbsRatioFloat64(NaN, y)    = NaN
func AbsRatioFloat64(x, y float64) float64 {
	x, y = fabs(x), fabs(y)
	return max(x, y) / min(x, y)
}

// AbsRatioFloat32 is the float32 equivalent of [AbsRatioFloat64].
func AbsRatioFloat32(x, y float32) float32 {
	x, y = fabs32(x), fabs32(y)
	return max(x, y) / min(x, y)
}
