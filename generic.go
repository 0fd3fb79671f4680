package absratio

import (
	"golang.org/x/exp/constraints"
)

// Number models a totally ordered type, supporting negation and division.
// It is implemented by [Int128], and is intended for things like fixed-point
// or checked arithmetic types.
type Number[T any] interface {
	// Cmp behaves like [cmp.Compare].
	Cmp(y T) int
	Neg() T
	Quo(y T) T
}

// AbsRatio returns the larger of |x| and |y|, divided by the smaller, where
// |v| is the larger of v and v.Neg().
//
// No additional checks are performed. Division by zero and overflow behave
// however T's Quo and Neg behave.
func AbsRatio[T Number[T]](x, y T) T {
	x, y = absNumber(x), absNumber(y)
	if x.Cmp(y) < 0 {
		return y.Quo(x)
	}
	return x.Quo(y)
}

func absNumber[T Number[T]](x T) T {
	if n := x.Neg(); x.Cmp(n) < 0 {
		return n
	}
	return x
}

// AbsRatioOf is [AbsRatio] for builtin signed integer and float types, using
// the language operators. Integer division by zero will panic, and overflow
// wraps, e.g. the magnitude of [math.MinInt8], as an int8, is itself.
//
// Unlike [AbsRatioFloat64], the magnitude of NaN is not normalized, which has
// no effect on the result.
func AbsRatioOf[T constraints.Signed | constraints.Float](x, y T) T {
	x, y = max(x, -x), max(y, -y)
	return max(x, y) / min(x, y)
}
