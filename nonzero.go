package absratio

import (
	"math/bits"
)

// NonZeroInt128 is an [Int128] that is known not to be zero.
//
// The zero value is valid, and represents 1. Positive values are stored
// offset by one, which is what makes that possible.
type NonZeroInt128 struct {
	v Int128
}

// NewNonZeroInt128 returns v as a [NonZeroInt128], or false if v is zero.
func NewNonZeroInt128(v Int128) (NonZeroInt128, bool) {
	if v.IsZero() {
		return NonZeroInt128{}, false
	}
	if v.hi >= 0 {
		lo, borrow := bits.Sub64(v.lo, 1, 0)
		v = Int128{hi: v.hi - int64(borrow), lo: lo}
	}
	return NonZeroInt128{v: v}, true
}

// MustNonZeroInt128 is like [NewNonZeroInt128], but panics if v is zero.
func MustNonZeroInt128(v Int128) NonZeroInt128 {
	x, ok := NewNonZeroInt128(v)
	if !ok {
		panic(`absratio: must non-zero int128: value is zero`)
	}
	return x
}

// Get returns the value, which will never be zero.
func (x NonZeroInt128) Get() Int128 {
	v := x.v
	if v.hi >= 0 {
		lo, carry := bits.Add64(v.lo, 1, 0)
		v = Int128{hi: v.hi + int64(carry), lo: lo}
	}
	return v
}

func (x NonZeroInt128) String() string {
	return x.Get().String()
}
