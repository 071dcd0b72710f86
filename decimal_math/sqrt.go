package decimal_math

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

// Sqrt returns the square root of x with scale fractional digits.
// The digit after the last one kept is rounded half up; perfect squares are exact.
func Sqrt(x decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if x.Sign() < 0 {
		return decimal.Zero, errors.New("sqrt on negative decimal")
	}
	if x.IsZero() {
		return decimal.Zero, nil
	}

	// x = m * 10^e, so sqrt(x) * 10^(scale+1) = sqrt(m * 10^(e + 2*(scale+1)))
	m := x.Coefficient()
	shift := x.Exponent() + 2*(scale+1)
	if shift >= 0 {
		m.Mul(m, Pow10(shift))
	} else {
		m.Quo(m, Pow10(-shift))
	}

	r := new(big.Int).Sqrt(m)
	r.Add(r, big.NewInt(5))
	r.Quo(r, ten)

	return decimal.NewFromBigInt(r, -scale), nil
}
