package d128

import (
	"math/big"

	dmath "github.com/krazyTry/vyper-go/decimal_math"

	"github.com/shopspring/decimal"
)

func (d Decimal) Add(d2 Decimal) (Decimal, error) {
	return fromDecimal(d.v.Add(d2.v))
}

func (d Decimal) Sub(d2 Decimal) (Decimal, error) {
	return fromDecimal(d.v.Sub(d2.v))
}

func (d Decimal) Mul(d2 Decimal) (Decimal, error) {
	return fromDecimal(d.v.Mul(d2.v))
}

// Div returns d / d2 with the largest scale whose mantissa still fits.
func (d Decimal) Div(d2 Decimal) (Decimal, error) {
	if d2.IsZero() {
		return Decimal{}, Error.Wrap(ErrDivisionByZero)
	}

	n, sn := d.Mantissa(), d.Scale()
	m, sm := d2.Mantissa(), d2.Scale()

	// q * 10^-s = (n * 10^-sn) / (m * 10^-sm)  =>  q = n * 10^(s+sm-sn) / m
	for s := int32(MaxScale); s >= 0; s-- {
		num, den := n, m
		if e := s + sm - sn; e >= 0 {
			num = new(big.Int).Mul(n, dmath.Pow10(e))
		} else {
			den = new(big.Int).Mul(m, dmath.Pow10(-e))
		}
		q, err := dmath.QuoRound(num, den)
		if err != nil {
			return Decimal{}, Error.Wrap(err)
		}
		if new(big.Int).Abs(q).Cmp(mantissaBound) < 0 {
			return Decimal{v: decimal.NewFromBigInt(q, -s)}, nil
		}
	}
	return Decimal{}, Error.Wrap(ErrOverflow)
}

// Sqrt returns the square root of d to MaxScale fractional digits, or fewer
// when the integer part needs the room.
func (d Decimal) Sqrt() (Decimal, error) {
	if d.IsNegative() {
		return Decimal{}, Error.Wrap(ErrNegativeSqrt)
	}
	r, err := dmath.Sqrt(d.v, MaxScale)
	if err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return fromDecimal(r)
}

// Floor rounds toward negative infinity.
func (d Decimal) Floor() Decimal {
	return Decimal{v: d.v.Floor()}
}

// Uint64 returns the floor of d, failing when it does not fit in 64 bits.
func (d Decimal) Uint64() (uint64, error) {
	f := d.v.Floor()
	if f.Sign() < 0 {
		return 0, Error.Wrap(ErrOverflow)
	}
	i := f.BigInt()
	if !i.IsUint64() {
		return 0, Error.Wrap(ErrOverflow)
	}
	return i.Uint64(), nil
}

func (d Decimal) Cmp(d2 Decimal) int {
	return d.v.Cmp(d2.v)
}

func (d Decimal) Equal(d2 Decimal) bool {
	return d.v.Equal(d2.v)
}

func (d Decimal) LessThan(d2 Decimal) bool {
	return d.v.LessThan(d2.v)
}

func (d Decimal) GreaterThan(d2 Decimal) bool {
	return d.v.GreaterThan(d2.v)
}

func (d Decimal) Sign() int {
	return d.v.Sign()
}

func (d Decimal) IsZero() bool {
	return d.v.IsZero()
}

func (d Decimal) IsNegative() bool {
	return d.v.IsNegative()
}

// Min returns the smaller of a and b, a when equal.
func Min(a, b Decimal) Decimal {
	if b.LessThan(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b, a when equal.
func Max(a, b Decimal) Decimal {
	if b.GreaterThan(a) {
		return b
	}
	return a
}
