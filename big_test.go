package absratio

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAbsRatioBigInt(t *testing.T) {
	for _, tc := range [...]struct {
		name     string
		x, y     *big.Int
		expected *big.Int
	}{
		{name: `2 and 2`, x: big.NewInt(2), y: big.NewInt(2), expected: big.NewInt(1)},
		{name: `-7 and 2`, x: big.NewInt(-7), y: big.NewInt(2), expected: big.NewInt(3)},
		{name: `2 and -7`, x: big.NewInt(2), y: big.NewInt(-7), expected: big.NewInt(3)},
		{name: `-2^200 and 3`, x: new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 200)), y: big.NewInt(3), expected: new(big.Int).Quo(new(big.Int).Lsh(big.NewInt(1), 200), big.NewInt(3))},
		{name: `1 and 0`, x: big.NewInt(1), y: big.NewInt(0)},
		{name: `0 and 1`, x: big.NewInt(0), y: big.NewInt(1)},
		{name: `nil and 1`, y: big.NewInt(1)},
		{name: `1 and nil`, x: big.NewInt(1)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			x, y := copyInt(tc.x), copyInt(tc.y)
			actual := AbsRatioBigInt(nil, x, y)
			if tc.expected == nil {
				assert.Nil(t, actual)
			} else {
				require.NotNil(t, actual)
				assert.Equal(t, 0, actual.Cmp(tc.expected), actual.String())
			}
			// inputs unmodified
			assert.Equal(t, tc.x.String(), x.String())
			assert.Equal(t, tc.y.String(), y.String())
		})
	}
}

func copyInt(v *big.Int) *big.Int {
	if v == nil {
		return nil
	}
	return new(big.Int).Set(v)
}

func TestAbsRatioBigInt_alias(t *testing.T) {
	x, y := big.NewInt(3), big.NewInt(-10)
	if v := AbsRatioBigInt(x, x, y); v != x || v.Int64() != 3 {
		t.Fatal(v)
	}
	x, y = big.NewInt(3), big.NewInt(-10)
	if v := AbsRatioBigInt(y, x, y); v != y || v.Int64() != 3 {
		t.Fatal(v)
	}
	x = big.NewInt(-4)
	if v := AbsRatioBigInt(x, x, x); v != x || v.Int64() != 1 {
		t.Fatal(v)
	}
	z := big.NewInt(99)
	if v := AbsRatioBigInt(z, big.NewInt(0), big.NewInt(1)); v != nil || z.Int64() != 99 {
		t.Fatal(v, z)
	}
}

func TestAbsRatioRat(t *testing.T) {
	assert.Equal(t, `3/2`, AbsRatioRat(nil, big.NewRat(3, 1), big.NewRat(-2, 1)).RatString())
	assert.Equal(t, `3/2`, AbsRatioRat(nil, big.NewRat(-1, 3), big.NewRat(1, 2)).RatString())
	assert.Equal(t, `1`, AbsRatioRat(nil, big.NewRat(-5, 7), big.NewRat(5, 7)).RatString())
	assert.Nil(t, AbsRatioRat(nil, big.NewRat(0, 1), big.NewRat(5, 7)))
	assert.Nil(t, AbsRatioRat(nil, nil, big.NewRat(5, 7)))

	x := big.NewRat(-1, 4)
	if v := AbsRatioRat(x, x, big.NewRat(2, 1)); v != x || v.RatString() != `8` {
		t.Fatal(v)
	}
}
