package absratio

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"math/bits"

	"lukechampine.com/uint128"
)

var (
	// MinInt128 is the smallest value representable by [Int128], -2^127.
	MinInt128 = Int128{hi: math.MinInt64}

	// MaxInt128 is the largest value representable by [Int128], 2^127-1.
	MaxInt128 = Int128{hi: math.MaxInt64, lo: math.MaxUint64}

	// ErrSyntax indicates that a value does not have the right syntax.
	ErrSyntax = errors.New(`absratio: invalid syntax`)

	// ErrRange indicates that a value is out of range for the target type.
	ErrRange = errors.New(`absratio: value out of range`)
)

// Int128 is an immutable, two's complement, 128-bit signed integer. The zero
// value is 0.
//
// Overflow wraps, in the same way as int64. In particular, the negation of
// [MinInt128] is [MinInt128], as is [MinInt128] divided by -1.
type Int128 struct {
	hi int64
	lo uint64
}

// Int128From64 converts an int64 to an [Int128].
func Int128From64(v int64) Int128 {
	// sign extension
	return Int128{hi: v >> 63, lo: uint64(v)}
}

// Int128FromRaw builds an [Int128] from the high and low 64 bits of its two's
// complement representation.
func Int128FromRaw(hi int64, lo uint64) Int128 {
	return Int128{hi: hi, lo: lo}
}

// Int128FromBig converts a [math/big.Int] to an [Int128], returning false if
// v is nil or out of range.
func Int128FromBig(v *big.Int) (Int128, bool) {
	if v == nil {
		return Int128{}, false
	}
	neg := v.Sign() < 0
	if v.BitLen() > 127 {
		if neg && v.BitLen() == 128 && v.TrailingZeroBits() == 127 {
			// -2^127
			return MinInt128, true
		}
		return Int128{}, false
	}
	return fromMagnitude(neg, uint128.FromBig(new(big.Int).Abs(v))), true
}

// ParseInt128 interprets s as a base 10 [Int128]. A leading sign is allowed.
// Returned errors wrap either [ErrSyntax] or [ErrRange].
func ParseInt128(s string) (Int128, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int128{}, fmt.Errorf(`absratio: parse int128 %q: %w`, s, ErrSyntax)
	}
	x, ok := Int128FromBig(v)
	if !ok {
		return Int128{}, fmt.Errorf(`absratio: parse int128 %q: %w`, s, ErrRange)
	}
	return x, nil
}

// fromMagnitude returns the value with magnitude m, negated if neg is set.
// The magnitude is reinterpreted as two's complement, wrapping on overflow.
func fromMagnitude(neg bool, m uint128.Uint128) Int128 {
	x := Int128{hi: int64(m.Hi), lo: m.Lo}
	if neg {
		return x.Neg()
	}
	return x
}

// Hi returns the high 64 bits of the two's complement representation.
func (x Int128) Hi() int64 { return x.hi }

// Lo returns the low 64 bits of the two's complement representation.
func (x Int128) Lo() uint64 { return x.lo }

// Sign returns -1, 0, or +1, depending on the sign of x.
func (x Int128) Sign() int {
	switch {
	case x.hi < 0:
		return -1
	case x.hi == 0 && x.lo == 0:
		return 0
	default:
		return 1
	}
}

func (x Int128) IsZero() bool {
	return x.hi == 0 && x.lo == 0
}

// Cmp compares x and y, behaving like [cmp.Compare].
func (x Int128) Cmp(y Int128) int {
	switch {
	case x.hi < y.hi:
		return -1
	case x.hi > y.hi:
		return 1
	case x.lo < y.lo:
		return -1
	case x.lo > y.lo:
		return 1
	default:
		return 0
	}
}

// Neg returns -x, wrapping on overflow.
func (x Int128) Neg() Int128 {
	lo, carry := bits.Add64(^x.lo, 1, 0)
	hi, _ := bits.Add64(^uint64(x.hi), 0, carry)
	return Int128{hi: int64(hi), lo: lo}
}

// Quo returns the quotient x/y, truncated towards zero, wrapping on
// overflow. A panic will occur if y is zero.
func (x Int128) Quo(y Int128) Int128 {
	return fromMagnitude((x.hi < 0) != (y.hi < 0), x.UnsignedAbs().Div(y.UnsignedAbs()))
}

// UnsignedAbs returns the magnitude of x, which never overflows, as the
// magnitude of [MinInt128] (2^127) fits in 128 unsigned bits.
func (x Int128) UnsignedAbs() uint128.Uint128 {
	if x.hi < 0 {
		x = x.Neg()
	}
	return uint128.New(x.lo, uint64(x.hi))
}

// Big returns x as a new [math/big.Int].
func (x Int128) Big() *big.Int {
	v := x.UnsignedAbs().Big()
	if x.hi < 0 {
		v.Neg(v)
	}
	return v
}

func (x Int128) String() string {
	if x.hi < 0 {
		return `-` + x.UnsignedAbs().String()
	}
	return x.UnsignedAbs().String()
}
