package vyper

import (
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"
)

// NewRedeemLogicFarmingClient creates a new farming redeem logic client.
//
// Example:
//
// client := NewRedeemLogicFarmingClient(rpcClient, redeem_logic_farming.WithLogger(logger))
//
// client.Initialize(ctx, configWallet, owner, payerWallet, redeem_logic_farming.ConfigArgs{InterestSplit: 0.5, CapHigh: 100})
//
// client.Execute(ctx, config, input)
var NewRedeemLogicFarmingClient = rlf.NewRedeemLogicFarming

// ExecutePlugin splits two tranche quantities after a fair value move without
// touching the chain.
//
// Example:
//
// result, _ := ExecutePlugin([2]uint64{10000, 10000}, oldLp, oldUl, newLp, newUl, split, capLow, capHigh)
var ExecutePlugin = rlf.ExecutePlugin
