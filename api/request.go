package api

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/krazyTry/vyper-go/d128"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gagliardetto/solana-go"
	"github.com/tidwall/gjson"
)

// ExecuteRequest is a decoded execute call. Config is never nil; fields the
// body leaves out come from the defaults. ConfigAddress is set when the body
// names an on-chain config to run against instead.
type ExecuteRequest struct {
	Input         *rlf.RedeemLogicExecuteInput
	Config        *rlf.RedeemLogicConfig
	ConfigAddress *solana.PublicKey
}

// ParseExecuteRequest reads
//
//	{"old_quantity":[10000,10000],
//	 "old_lp_fair_value":"2","old_ul_fair_value":"1",
//	 "new_lp_fair_value":"3","new_ul_fair_value":"1",
//	 "interest_split":"0.3","cap_low":"0","cap_high":"100",
//	 "config_address":"..."}
//
// Decimals may be JSON strings or numbers. Numbers are taken digit for digit.
func ParseExecuteRequest(body []byte, defaults *rlf.RedeemLogicConfig) (*ExecuteRequest, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("malformed json")
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errors.New("request must be a json object")
	}

	oldQuantity, err := parseQuantities(root.Get("old_quantity"))
	if err != nil {
		return nil, err
	}

	var fairValues [4]d128.Decimal
	for i, key := range []string{"old_lp_fair_value", "old_ul_fair_value", "new_lp_fair_value", "new_ul_fair_value"} {
		if fairValues[i], err = parseDecimal(root.Get(key), key, nil); err != nil {
			return nil, err
		}
	}

	req := &ExecuteRequest{
		Input: rlf.NewRedeemLogicExecuteInput(oldQuantity, fairValues[0], fairValues[1], fairValues[2], fairValues[3]),
	}

	if v := root.Get("config_address"); v.Exists() {
		pk, err := solana.PublicKeyFromBase58(v.String())
		if err != nil {
			return nil, fmt.Errorf("config_address: %w", err)
		}
		req.ConfigAddress = &pk
	}

	config := &rlf.RedeemLogicConfig{}
	if defaults != nil {
		*config = *defaults
	}
	if config.InterestSplit, err = parseDecimal(root.Get("interest_split"), "interest_split", &config.InterestSplit); err != nil {
		return nil, err
	}
	if config.CapLow, err = parseDecimal(root.Get("cap_low"), "cap_low", &config.CapLow); err != nil {
		return nil, err
	}
	if config.CapHigh, err = parseDecimal(root.Get("cap_high"), "cap_high", &config.CapHigh); err != nil {
		return nil, err
	}
	req.Config = config
	return req, nil
}

func parseQuantities(v gjson.Result) ([2]uint64, error) {
	var out [2]uint64
	if !v.IsArray() {
		return out, errors.New("old_quantity: want an array of two integers")
	}
	items := v.Array()
	if len(items) != 2 {
		return out, fmt.Errorf("old_quantity: want 2 items, got %d", len(items))
	}
	for i, item := range items {
		raw := item.Raw
		if item.Type == gjson.String {
			raw = item.Str
		} else if item.Type != gjson.Number {
			return out, fmt.Errorf("old_quantity[%d]: not a number", i)
		}
		q, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return out, fmt.Errorf("old_quantity[%d]: %w", i, err)
		}
		out[i] = q
	}
	return out, nil
}

// parseDecimal reads a string or number field. A missing field falls back to
// def, or is an error when def is nil.
func parseDecimal(v gjson.Result, key string, def *d128.Decimal) (d128.Decimal, error) {
	var text string
	switch v.Type {
	case gjson.Null:
		if !v.Exists() && def != nil {
			return *def, nil
		}
		return d128.Decimal{}, fmt.Errorf("%s: required", key)
	case gjson.String:
		text = v.Str
	case gjson.Number:
		text = v.Raw
	default:
		return d128.Decimal{}, fmt.Errorf("%s: want a decimal string or number", key)
	}
	d, err := d128.NewFromString(text)
	if err != nil {
		return d128.Decimal{}, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
