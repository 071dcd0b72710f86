package decimal_math

import (
	"math/big"

	"github.com/shopspring/decimal"
)

var ten = big.NewInt(10)

// Pow10 returns 10^n as an exact integer. n must not be negative.
func Pow10(n int32) *big.Int {
	if n < 0 {
		panic("negative power of ten")
	}
	return decimal.New(1, n).BigInt()
}
