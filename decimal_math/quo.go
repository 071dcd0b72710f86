package decimal_math

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"
)

var (
	roundUp   = decimal.New(6, -1)
	roundHalf = decimal.New(5, -1)
)

// QuoRound returns x / y rounded to the nearest integer, ties to even.
func QuoRound(x, y *big.Int) (*big.Int, error) {
	if y.Sign() == 0 {
		return nil, errors.New("QuoRound: division by zero")
	}

	dx := decimal.NewFromBigInt(x, 0)
	dy := decimal.NewFromBigInt(y, 0)

	// q is truncated toward zero
	q, r := dx.QuoRem(dy, 0)

	// 2|r| vs |y| picks the fraction handed to banker's rounding
	var frac decimal.Decimal
	switch r.Abs().Add(r.Abs()).Cmp(dy.Abs()) {
	case 1:
		frac = roundUp
	case 0:
		frac = roundHalf
	default:
		return q.BigInt(), nil
	}
	if dx.Sign()*dy.Sign() < 0 {
		frac = frac.Neg()
	}
	return q.Add(frac).RoundBank(0).BigInt(), nil
}
