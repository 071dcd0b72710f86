package redeem_logic_farming

import (
	"math/bits"

	"github.com/krazyTry/vyper-go/d128"
)

// Outcome names the branch an evaluation ended in.
type Outcome string

const (
	OutcomeOneSided     Outcome = "one_sided"
	OutcomeDefault      Outcome = "default"
	OutcomeComputed     Outcome = "computed"
	OutcomeInvalidInput Outcome = "invalid_input"
	OutcomeMathError    Outcome = "math_error"
)

// ExecutePlugin splits the pooled quantity between the senior (index 0) and
// junior (index 1) classes after the LP and underlying fair values moved.
//
// The returned quantities plus the fee always add up to
// oldQuantity[0] + oldQuantity[1]; the fee is the rounding residual and is
// either 0 or 1.
func ExecutePlugin(
	oldQuantity [2]uint64,
	oldLpFairValue d128.Decimal,
	oldUlFairValue d128.Decimal,
	newLpFairValue d128.Decimal,
	newUlFairValue d128.Decimal,
	interestSplit d128.Decimal,
	capLow d128.Decimal,
	capHigh d128.Decimal,
) (*RedeemLogicExecuteResult, error) {
	result, _, err := executePlugin(
		oldQuantity,
		oldLpFairValue, oldUlFairValue,
		newLpFairValue, newUlFairValue,
		interestSplit, capLow, capHigh,
	)
	return result, err
}

// Execute runs the engine on the program level input, reading the LP share
// from index 0 and the underlying from index 1 of each fair value array.
func Execute(input *RedeemLogicExecuteInput, config *RedeemLogicConfig) (*RedeemLogicExecuteResult, error) {
	result, _, err := ExecuteWithOutcome(input, config)
	return result, err
}

// ExecuteWithOutcome is Execute that also reports which branch was taken.
func ExecuteWithOutcome(input *RedeemLogicExecuteInput, config *RedeemLogicConfig) (*RedeemLogicExecuteResult, Outcome, error) {
	if err := input.IsValid(); err != nil {
		return nil, OutcomeInvalidInput, err
	}
	return executePlugin(
		input.OldQuantity,
		input.OldReserveFairValue[0], input.OldReserveFairValue[1],
		input.NewReserveFairValue[0], input.NewReserveFairValue[1],
		config.InterestSplit, config.CapLow, config.CapHigh,
	)
}

func executePlugin(
	oldQuantity [2]uint64,
	oldLpFairValue, oldUlFairValue d128.Decimal,
	newLpFairValue, newUlFairValue d128.Decimal,
	interestSplit, capLow, capHigh d128.Decimal,
) (*RedeemLogicExecuteResult, Outcome, error) {
	for _, v := range []d128.Decimal{oldLpFairValue, oldUlFairValue, newLpFairValue, newUlFairValue} {
		if v.IsNegative() {
			return nil, OutcomeInvalidInput, InvalidInput.New("negative fair value %s", v)
		}
	}
	if interestSplit.IsNegative() || interestSplit.GreaterThan(d128.One) {
		return nil, OutcomeInvalidInput, InvalidInput.New("interest split %s out of [0, 1]", interestSplit)
	}

	// nothing to redistribute with an empty class
	if oldQuantity[0] == 0 || oldQuantity[1] == 0 {
		return &RedeemLogicExecuteResult{
			NewQuantity: oldQuantity,
			FeeQuantity: 0,
		}, OutcomeOneSided, nil
	}

	// unusable prices hand everything to senior
	if oldLpFairValue.IsZero() || oldUlFairValue.IsZero() || newLpFairValue.IsZero() || newUlFairValue.IsZero() {
		total, carry := bits.Add64(oldQuantity[0], oldQuantity[1], 0)
		if carry != 0 {
			return nil, OutcomeMathError, MathError.New("total quantity overflows uint64")
		}
		return &RedeemLogicExecuteResult{
			NewQuantity: [2]uint64{total, 0},
			FeeQuantity: 0,
		}, OutcomeDefault, nil
	}

	v := valuate(oldQuantity, oldLpFairValue, oldUlFairValue, newLpFairValue, newUlFairValue, interestSplit, capLow, capHigh)
	if v.err != nil {
		return nil, OutcomeMathError, MathError.Wrap(v.err)
	}

	seniorNew, err := v.seniorQuantity.Uint64()
	if err != nil {
		return nil, OutcomeMathError, MathError.Wrap(err)
	}
	juniorNew, err := v.juniorQuantity.Uint64()
	if err != nil {
		return nil, OutcomeMathError, MathError.Wrap(err)
	}

	total, carry := bits.Add64(oldQuantity[0], oldQuantity[1], 0)
	if carry != 0 {
		return nil, OutcomeMathError, MathError.New("total quantity overflows uint64")
	}
	// senior + junior <= total since both come from the same decimal total
	fee := total - seniorNew - juniorNew

	return &RedeemLogicExecuteResult{
		NewQuantity: [2]uint64{seniorNew, juniorNew},
		FeeQuantity: fee,
	}, OutcomeComputed, nil
}

type valuation struct {
	err error

	cappedRatio    d128.Decimal
	baseInLp       d128.Decimal
	lpDelta        d128.Decimal
	lpIl           d128.Decimal
	capLpIl        d128.Decimal
	accrued        d128.Decimal
	netValue       d128.Decimal
	seniorQuantity d128.Decimal
	juniorQuantity d128.Decimal
}

func valuate(
	oldQuantity [2]uint64,
	oldLpFairValue, oldUlFairValue d128.Decimal,
	newLpFairValue, newUlFairValue d128.Decimal,
	interestSplit, capLow, capHigh d128.Decimal,
) *valuation {
	v := &valuation{}
	c := &calc{}

	seniorOld := d128.NewFromUint64(oldQuantity[0])
	total := c.add(seniorOld, d128.NewFromUint64(oldQuantity[1]))

	v.cappedRatio = d128.Max(capLow, d128.Min(capHigh, c.div(newUlFairValue, oldUlFairValue)))
	capNewUlFairValue := c.mul(oldUlFairValue, v.cappedRatio)

	v.baseInLp = c.mul(c.div(oldLpFairValue, oldUlFairValue), d128.Half)
	v.lpDelta = c.mul(v.baseInLp, c.sub(newUlFairValue, oldUlFairValue))

	v.lpIl = c.mul(v.baseInLp, c.sub(c.sub(
		c.mul(d128.Two, c.sqrt(c.mul(oldUlFairValue, newUlFairValue))),
		oldUlFairValue), newUlFairValue))
	v.capLpIl = c.mul(v.baseInLp, c.sub(c.sub(
		c.mul(d128.Two, c.sqrt(c.mul(oldUlFairValue, capNewUlFairValue))),
		oldUlFairValue), capNewUlFairValue))

	lpNoAccrued := c.add(c.add(oldLpFairValue, v.lpDelta), v.lpIl)
	v.accrued = c.sub(newLpFairValue, lpNoAccrued)

	accruedShare := v.accrued
	if !v.accrued.IsNegative() {
		accruedShare = c.mul(v.accrued, c.sub(d128.One, interestSplit))
	}
	v.netValue = c.add(c.sub(c.add(c.add(oldLpFairValue, v.lpDelta), v.lpIl), v.capLpIl), accruedShare)

	v.seniorQuantity = d128.Min(total, c.div(c.mul(seniorOld, v.netValue), newLpFairValue))
	v.juniorQuantity = d128.Max(d128.Zero, c.sub(total, v.seniorQuantity))

	v.seniorQuantity = v.seniorQuantity.Floor()
	v.juniorQuantity = v.juniorQuantity.Floor()
	v.err = c.err
	return v
}

// calc chains decimal operations and keeps the first error.
type calc struct {
	err error
}

func (c *calc) do(fn func() (d128.Decimal, error)) d128.Decimal {
	if c.err != nil {
		return d128.Zero
	}
	r, err := fn()
	if err != nil {
		c.err = err
		return d128.Zero
	}
	return r
}

func (c *calc) add(a, b d128.Decimal) d128.Decimal {
	return c.do(func() (d128.Decimal, error) { return a.Add(b) })
}

func (c *calc) sub(a, b d128.Decimal) d128.Decimal {
	return c.do(func() (d128.Decimal, error) { return a.Sub(b) })
}

func (c *calc) mul(a, b d128.Decimal) d128.Decimal {
	return c.do(func() (d128.Decimal, error) { return a.Mul(b) })
}

func (c *calc) div(a, b d128.Decimal) d128.Decimal {
	return c.do(func() (d128.Decimal, error) { return a.Div(b) })
}

func (c *calc) sqrt(a d128.Decimal) d128.Decimal {
	return c.do(a.Sqrt)
}
