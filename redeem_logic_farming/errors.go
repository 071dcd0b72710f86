package redeem_logic_farming

import "github.com/zeebo/errs"

var (
	// InvalidInput marks arguments rejected before any arithmetic runs.
	InvalidInput = errs.Class("invalid input")
	// MathError marks an undefined or unrepresentable arithmetic step.
	MathError = errs.Class("math error")
)
