package absratio

import (
	"math/big"
)

// AbsRatioBigInt assigns to z the larger of |x| and |y|, divided by the
// smaller, truncated, and returns it. If z is nil, a new [math/big.Int] will
// be allocated. The returned value will be nil if either x or y are nil or
// zero, in which case z is left unmodified.
//
// Unlike [AbsRatioInt128], this function doesn't panic on zero inputs, see
// also [CheckedAbsRatioInt128].
func AbsRatioBigInt(z, x, y *big.Int) *big.Int {
	if x == nil || y == nil || x.Sign() == 0 || y.Sign() == 0 {
		return nil
	}
	if z == nil {
		z = new(big.Int)
	}
	if x.CmpAbs(y) < 0 {
		x, y = y, x
	}
	// y may alias z
	var b big.Int
	b.Abs(y)
	z.Abs(x)
	return z.Quo(z, &b)
}

// AbsRatioRat assigns to z the exact larger of |x| and |y|, divided by the
// smaller, and returns it. Nil and zero handling is as per [AbsRatioBigInt].
func AbsRatioRat(z, x, y *big.Rat) *big.Rat {
	if x == nil || y == nil || x.Sign() == 0 || y.Sign() == 0 {
		return nil
	}
	if z == nil {
		z = new(big.Rat)
	}
	var a, b big.Rat
	a.Abs(x)
	b.Abs(y)
	if a.Cmp(&b) < 0 {
		return z.Quo(&b, &a)
	}
	return z.Quo(&a, &b)
}
