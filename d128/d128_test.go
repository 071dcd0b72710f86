package d128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFromString(t *testing.T) {
	d, err := NewFromString("1.4142")
	require.NoError(t, err)
	require.Equal(t, int32(4), d.Scale())
	require.Equal(t, "1.4142", d.String())

	// 29 fractional digits round half to even into 28
	d, err = NewFromString("0.12345678901234567890123456789")
	require.NoError(t, err)
	require.Equal(t, "0.1234567890123456789012345679", d.String())

	_, err = NewFromString("1.2.3")
	require.Error(t, err)
	require.True(t, Error.Has(err))

	_, err = NewFromString("79228162514264337593543950336")
	require.ErrorIs(t, err, ErrOverflow)

	d, err = NewFromString("79228162514264337593543950335")
	require.NoError(t, err)
	require.Equal(t, "79228162514264337593543950335", d.String())
}

func TestNewFromFloat(t *testing.T) {
	d, err := NewFromFloat(0.3)
	require.NoError(t, err)
	require.Equal(t, "0.3", d.String())

	d, err = NewFromFloat(100)
	require.NoError(t, err)
	require.True(t, d.Equal(OneHundred))

	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err = NewFromFloat(f)
		require.ErrorIs(t, err, ErrNotRepresentable)
	}
}

func TestConstants(t *testing.T) {
	require.Equal(t, "0", Zero.String())
	require.Equal(t, "0.5", Half.String())
	require.True(t, Zero.IsZero())
	require.True(t, Decimal{}.IsZero())
	require.True(t, Two.Equal(NewFromInt(2)))
	require.True(t, OneHundred.Equal(NewFromUint64(100)))
}

func TestAddSubMul(t *testing.T) {
	a := RequireFromString("0.1")
	b := RequireFromString("0.2")

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, "0.3", sum.String())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.Equal(t, "-0.1", diff.String())
	require.True(t, diff.IsNegative())
	require.Equal(t, -1, diff.Sign())

	prod, err := RequireFromString("1.5").Mul(RequireFromString("-2"))
	require.NoError(t, err)
	require.Equal(t, "-3", prod.String())

	max := RequireFromString("79228162514264337593543950335")
	_, err = max.Add(One)
	require.ErrorIs(t, err, ErrOverflow)
	_, err = max.Mul(Two)
	require.ErrorIs(t, err, ErrOverflow)

	// the product needs 56 fractional digits and is cut back to 28
	third, err := One.Div(NewFromInt(3))
	require.NoError(t, err)
	sq, err := third.Mul(third)
	require.NoError(t, err)
	require.Equal(t, int32(MaxScale), sq.Scale())
	require.Equal(t, "0.1111111111111111111111111111", sq.String())
}

func TestDiv(t *testing.T) {
	tcs := []struct {
		x, y, want string
	}{
		{x: "1", y: "3", want: "0.3333333333333333333333333333"},
		{x: "2", y: "3", want: "0.6666666666666666666666666667"},
		{x: "10", y: "3", want: "3.3333333333333333333333333333"},
		{x: "100", y: "3", want: "33.333333333333333333333333333"},
		{x: "3", y: "1", want: "3"},
		{x: "-1", y: "4", want: "-0.25"},
		{x: "1.2", y: "0.4", want: "3"},
	}
	for _, tc := range tcs {
		got, err := RequireFromString(tc.x).Div(RequireFromString(tc.y))
		require.NoError(t, err)
		require.Equal(t, tc.want, got.String(), "%s / %s", tc.x, tc.y)
	}

	_, err := One.Div(Zero)
	require.ErrorIs(t, err, ErrDivisionByZero)
	require.True(t, Error.Has(err))

	_, err = RequireFromString("79228162514264337593543950335").Div(RequireFromString("0.1"))
	require.ErrorIs(t, err, ErrOverflow)
}

func TestSqrt(t *testing.T) {
	got, err := One.Sqrt()
	require.NoError(t, err)
	require.True(t, got.Equal(One))

	got, err = NewFromInt(4).Sqrt()
	require.NoError(t, err)
	require.True(t, got.Equal(Two))

	got, err = Two.Sqrt()
	require.NoError(t, err)
	require.Equal(t, "1.4142135623730950488016887242", got.String())

	got, err = Zero.Sqrt()
	require.NoError(t, err)
	require.True(t, got.IsZero())

	_, err = NewFromInt(-1).Sqrt()
	require.ErrorIs(t, err, ErrNegativeSqrt)
}

func TestFloorAndUint64(t *testing.T) {
	require.Equal(t, "-2", RequireFromString("-1.5").Floor().String())
	require.Equal(t, "12", RequireFromString("12.9").Floor().String())

	v, err := RequireFromString("12.9").Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(12), v)

	v, err = RequireFromString("18446744073709551615.7").Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), v)

	_, err = RequireFromString("18446744073709551616").Uint64()
	require.ErrorIs(t, err, ErrOverflow)

	_, err = RequireFromString("-0.5").Uint64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestCompare(t *testing.T) {
	a := RequireFromString("1.10")
	b := RequireFromString("1.1")
	require.True(t, a.Equal(b))
	require.Equal(t, 0, a.Cmp(b))

	c := RequireFromString("2")
	require.True(t, a.LessThan(c))
	require.True(t, c.GreaterThan(a))
	require.True(t, Min(a, c).Equal(a))
	require.True(t, Max(a, c).Equal(c))
	require.True(t, Min(c, a).Equal(a))
	require.True(t, Max(c, a).Equal(c))
}
