// Package d128 implements a fixed point decimal with a 96 bit mantissa and a
// base 10 scale between 0 and 28, serialized in 16 bytes.
//
//	number = mantissa * 10 ^ -scale
//
// Every operation keeps its result inside that domain. Results that need more
// fractional digits are rounded half to even; results that need more than 96
// bits with no fractional digits left fail with ErrOverflow.
package d128

import (
	"errors"
	"math"
	"math/big"

	dmath "github.com/krazyTry/vyper-go/decimal_math"

	"github.com/shopspring/decimal"
	"github.com/zeebo/errs"
)

const (
	// MaxScale is the largest number of fractional digits.
	MaxScale = 28
	// MantissaBits is the width of the unsigned mantissa.
	MantissaBits = 96
)

// Error is the class of every error returned by this package.
var Error = errs.Class("d128")

var (
	ErrOverflow         = errors.New("overflow")
	ErrDivisionByZero   = errors.New("division by zero")
	ErrNegativeSqrt     = errors.New("sqrt of negative value")
	ErrNotRepresentable = errors.New("value not representable")
	ErrInvalidEncoding  = errors.New("invalid encoding")
)

var mantissaBound = new(big.Int).Lsh(big.NewInt(1), MantissaBits)

var (
	Zero       = New(0, 0)
	One        = New(1, 0)
	Two        = New(2, 0)
	OneHundred = New(100, 0)
	Half       = New(5, 1)
)

// Decimal is an immutable value. The zero value is 0.
type Decimal struct {
	v decimal.Decimal
}

// New returns value * 10^-scale. It panics if the result cannot be represented.
func New(value int64, scale int32) Decimal {
	return mustFit(big.NewInt(value), scale)
}

func NewFromInt(value int64) Decimal {
	return New(value, 0)
}

func NewFromUint64(value uint64) Decimal {
	return mustFit(new(big.Int).SetUint64(value), 0)
}

// NewFromString parses a decimal string such as "1.4142" or "-3e-2".
// Digits beyond MaxScale are rounded half to even.
func NewFromString(value string) (Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Decimal{}, Error.Wrap(err)
	}
	return fromDecimal(d)
}

// RequireFromString is NewFromString for constants and tests. It panics on error.
func RequireFromString(value string) Decimal {
	d, err := NewFromString(value)
	if err != nil {
		panic(err)
	}
	return d
}

// NewFromFloat converts f using the shortest decimal that reads back as f.
func NewFromFloat(f float64) (Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Decimal{}, Error.Wrap(ErrNotRepresentable)
	}
	return fromDecimal(decimal.NewFromFloat(f))
}

func fromDecimal(d decimal.Decimal) (Decimal, error) {
	return fit(d.Coefficient(), -d.Exponent())
}

func mustFit(m *big.Int, scale int32) Decimal {
	d, err := fit(m, scale)
	if err != nil {
		panic(err)
	}
	return d
}

// fit brings mantissa and scale into the representable domain, dropping one
// fractional digit at a time.
func fit(m *big.Int, scale int32) (Decimal, error) {
	if scale < 0 {
		m = new(big.Int).Mul(m, dmath.Pow10(-scale))
		scale = 0
	}
	for scale > MaxScale || new(big.Int).Abs(m).Cmp(mantissaBound) >= 0 {
		if scale == 0 {
			return Decimal{}, Error.Wrap(ErrOverflow)
		}
		m, _ = dmath.QuoRound(m, big.NewInt(10))
		scale--
	}
	return Decimal{v: decimal.NewFromBigInt(m, -scale)}, nil
}

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int32 {
	return -d.v.Exponent()
}

// Mantissa returns the signed unscaled integer.
func (d Decimal) Mantissa() *big.Int {
	return d.v.Coefficient()
}

func (d Decimal) String() string {
	return d.v.String()
}

// Decimal exposes the value as a shopspring decimal.
func (d Decimal) Decimal() decimal.Decimal {
	return d.v
}
