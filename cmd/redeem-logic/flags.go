package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var (
	configFileFlag = cli.StringFlag{
		Name:   "config",
		EnvVar: "VYPER_CONFIG",
		Usage:  "path to a YAML config file",
	}
	verbosityFlag = cli.StringFlag{
		Name:  "verbosity",
		Usage: "log level (trace|debug|info|warn|error), overrides the config",
	}
	rpcEndpointFlag = cli.StringFlag{
		Name:  "rpc",
		Usage: "solana RPC endpoint, overrides the config",
	}

	seniorQuantityFlag = cli.Uint64Flag{
		Name:  "senior-quantity",
		Usage: "old senior class quantity",
	}
	juniorQuantityFlag = cli.Uint64Flag{
		Name:  "junior-quantity",
		Usage: "old junior class quantity",
	}
	oldLpFairValueFlag = cli.StringFlag{
		Name:  "old-lp",
		Usage: "previous LP share fair value",
	}
	oldUlFairValueFlag = cli.StringFlag{
		Name:  "old-ul",
		Usage: "previous underlying fair value",
	}
	newLpFairValueFlag = cli.StringFlag{
		Name:  "new-lp",
		Usage: "current LP share fair value",
	}
	newUlFairValueFlag = cli.StringFlag{
		Name:  "new-ul",
		Usage: "current underlying fair value",
	}
	interestSplitFlag = cli.StringFlag{
		Name:  "interest-split",
		Usage: "share of positive accrual that goes to junior, defaults to the config",
	}
	capLowFlag = cli.StringFlag{
		Name:  "cap-low",
		Usage: "lower bound of the underlying price ratio, defaults to the config",
	}
	capHighFlag = cli.StringFlag{
		Name:  "cap-high",
		Usage: "upper bound of the underlying price ratio, defaults to the config",
	}
	requestFileFlag = cli.StringFlag{
		Name:  "request",
		Usage: "read the execute request from a JSON file instead of flags",
	}
	addressFlag = cli.StringFlag{
		Name:  "address",
		Usage: "redeem logic config account",
	}
	addressesFlag = cli.StringSliceFlag{
		Name:  "address",
		Usage: "redeem logic config account, repeatable",
	}
	ownerFlag = cli.StringFlag{
		Name:  "owner",
		Usage: "config owner",
	}
	payerFlag = cli.StringFlag{
		Name:  "payer",
		Usage: "fee payer for initialize",
	}
	apiAddrFlag = cli.StringFlag{
		Name:  "api-addr",
		Usage: "API listening address, overrides the config",
	}
	splitFloatFlag = cli.Float64Flag{
		Name:  "interest-split",
		Value: 0.5,
		Usage: "interest split stored in the config",
	}
	capLowFloatFlag = cli.Float64Flag{
		Name:  "cap-low",
		Value: 0,
		Usage: "cap low stored in the config",
	}
	capHighFloatFlag = cli.Float64Flag{
		Name:  "cap-high",
		Value: 100,
		Usage: "cap high stored in the config",
	}
)
