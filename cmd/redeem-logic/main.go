package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/krazyTry/vyper-go/api"
	"github.com/krazyTry/vyper-go/d128"
	redeemlogicgen "github.com/krazyTry/vyper-go/gen/redeem_logic_farming"
	"github.com/krazyTry/vyper-go/internal/config"
	"github.com/krazyTry/vyper-go/internal/log"
	"github.com/krazyTry/vyper-go/internal/metrics"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	cli "gopkg.in/urfave/cli.v1"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "redeem-logic"
	app.Usage = "Farming redeem logic for senior/junior tranches"
	app.Writer = out
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		rpcEndpointFlag,
	}
	app.Commands = []cli.Command{
		{
			Name:  "execute",
			Usage: "split the old quantities after a fair value move",
			Flags: []cli.Flag{
				seniorQuantityFlag,
				juniorQuantityFlag,
				oldLpFairValueFlag,
				oldUlFairValueFlag,
				newLpFairValueFlag,
				newUlFairValueFlag,
				interestSplitFlag,
				capLowFlag,
				capHighFlag,
				requestFileFlag,
				addressFlag,
			},
			Action: executeAction,
		},
		{
			Name:   "config",
			Usage:  "read config accounts and print them",
			Flags:  []cli.Flag{addressesFlag},
			Action: configAction,
		},
		{
			Name:   "serve",
			Usage:  "run the HTTP API",
			Flags:  []cli.Flag{apiAddrFlag},
			Action: serveAction,
		},
		{
			Name:      "instruction",
			Usage:     "print the data and accounts of an initialize or update instruction",
			ArgsUsage: "initialize|update",
			Flags: []cli.Flag{
				addressFlag,
				ownerFlag,
				payerFlag,
				splitFloatFlag,
				capLowFloatFlag,
				capHighFloatFlag,
			},
			Action: instructionAction,
		},
	}
	return app
}

type env struct {
	cfg    config.Config
	logger log.Logger
}

func loadEnv(ctx *cli.Context) (*env, error) {
	cfg, err := config.LoadFrom(ctx.GlobalString(configFileFlag.Name))
	if err != nil {
		return nil, err
	}
	if v := ctx.GlobalString(verbosityFlag.Name); v != "" {
		cfg.Logging.Level = v
	}
	if v := ctx.GlobalString(rpcEndpointFlag.Name); v != "" {
		cfg.RPC.Endpoint = v
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	redeemlogicgen.ProgramID = solana.MustPublicKeyFromBase58(cfg.RedeemLogic.ProgramID)
	return &env{cfg: cfg, logger: log.NewLogger(cfg)}, nil
}

func (e *env) client(opts ...rlf.Option) *rlf.RedeemLogicFarming {
	opts = append([]rlf.Option{
		rlf.WithLogger(e.logger),
		rlf.WithCommitment(e.cfg.Commitment()),
	}, opts...)
	return rlf.NewRedeemLogicFarming(rpc.New(e.cfg.RPC.Endpoint), opts...)
}

func executeAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	defaults, err := e.cfg.DefaultRedeemLogicConfig()
	if err != nil {
		return err
	}

	var req *api.ExecuteRequest
	if path := ctx.String(requestFileFlag.Name); path != "" {
		body, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if req, err = api.ParseExecuteRequest(body, defaults); err != nil {
			return err
		}
	} else if req, err = requestFromFlags(ctx, defaults); err != nil {
		return err
	}

	var result *rlf.RedeemLogicExecuteResult
	if req.ConfigAddress != nil {
		c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		result, err = e.client().Execute(c, *req.ConfigAddress, req.Input)
	} else {
		result, err = e.client().ExecuteWithConfig(req.Input, req.Config)
	}
	if err != nil {
		return err
	}
	return writeJSON(ctx.App.Writer, result)
}

func requestFromFlags(ctx *cli.Context, defaults *rlf.RedeemLogicConfig) (*api.ExecuteRequest, error) {
	var fairValues [4]d128.Decimal
	for i, f := range []cli.StringFlag{oldLpFairValueFlag, oldUlFairValueFlag, newLpFairValueFlag, newUlFairValueFlag} {
		v := ctx.String(f.Name)
		if v == "" {
			return nil, fmt.Errorf("--%s is required", f.Name)
		}
		d, err := d128.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", f.Name, err)
		}
		fairValues[i] = d
	}

	cfg := *defaults
	for _, p := range []struct {
		flag cli.StringFlag
		dst  *d128.Decimal
	}{
		{interestSplitFlag, &cfg.InterestSplit},
		{capLowFlag, &cfg.CapLow},
		{capHighFlag, &cfg.CapHigh},
	} {
		v := ctx.String(p.flag.Name)
		if v == "" {
			continue
		}
		d, err := d128.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", p.flag.Name, err)
		}
		*p.dst = d
	}

	req := &api.ExecuteRequest{
		Input: rlf.NewRedeemLogicExecuteInput(
			[2]uint64{ctx.Uint64(seniorQuantityFlag.Name), ctx.Uint64(juniorQuantityFlag.Name)},
			fairValues[0], fairValues[1], fairValues[2], fairValues[3],
		),
		Config: &cfg,
	}
	if v := ctx.String(addressFlag.Name); v != "" {
		pk, err := solana.PublicKeyFromBase58(v)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", addressFlag.Name, err)
		}
		req.ConfigAddress = &pk
	}
	return req, nil
}

type configOutput struct {
	Address       solana.PublicKey `json:"address"`
	InterestSplit d128.Decimal     `json:"interest_split"`
	CapLow        d128.Decimal     `json:"cap_low"`
	CapHigh       d128.Decimal     `json:"cap_high"`
	Owner         solana.PublicKey `json:"owner"`
}

func configAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	values := ctx.StringSlice(addressesFlag.Name)
	if len(values) == 0 {
		return fmt.Errorf("--%s is required", addressesFlag.Name)
	}
	addresses := make([]solana.PublicKey, 0, len(values))
	for _, v := range values {
		pk, err := solana.PublicKeyFromBase58(v)
		if err != nil {
			return fmt.Errorf("--%s %s: %w", addressesFlag.Name, v, err)
		}
		addresses = append(addresses, pk)
	}

	c, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	configs, err := e.client().GetConfigs(c, addresses)
	if err != nil {
		return err
	}

	out := make([]configOutput, 0, len(configs))
	for i, cfg := range configs {
		if cfg == nil {
			return fmt.Errorf("config %s not found", addresses[i])
		}
		cfg.Dump(e.logger)
		out = append(out, configOutput{
			Address:       addresses[i],
			InterestSplit: cfg.InterestSplit,
			CapLow:        cfg.CapLow,
			CapHigh:       cfg.CapHigh,
			Owner:         cfg.Owner,
		})
	}
	return writeJSON(ctx.App.Writer, out)
}

func serveAction(ctx *cli.Context) error {
	e, err := loadEnv(ctx)
	if err != nil {
		return err
	}
	if v := ctx.String(apiAddrFlag.Name); v != "" {
		e.cfg.Server.Addr = v
	}
	defaults, err := e.cfg.DefaultRedeemLogicConfig()
	if err != nil {
		return err
	}

	m := metrics.New()
	handler := api.New(e.client(rlf.WithRecorder(m)), defaults, m, e.logger)

	c, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return api.Serve(c, e.cfg.Server.Addr, handler,
		time.Duration(e.cfg.Server.ReadTimeoutSeconds)*time.Second,
		time.Duration(e.cfg.Server.WriteTimeoutSeconds)*time.Second,
		e.logger,
	)
}

func instructionAction(ctx *cli.Context) error {
	if _, err := loadEnv(ctx); err != nil {
		return err
	}
	args := rlf.ConfigArgs{
		InterestSplit: ctx.Float64(splitFloatFlag.Name),
		CapLow:        ctx.Float64(capLowFloatFlag.Name),
		CapHigh:       ctx.Float64(capHighFloatFlag.Name),
	}

	keys := map[string]solana.PublicKey{}
	for _, f := range []cli.StringFlag{addressFlag, ownerFlag, payerFlag} {
		if v := ctx.String(f.Name); v != "" {
			pk, err := solana.PublicKeyFromBase58(v)
			if err != nil {
				return fmt.Errorf("--%s: %w", f.Name, err)
			}
			keys[f.Name] = pk
		}
	}

	var (
		ix  solana.Instruction
		err error
	)
	switch ctx.Args().First() {
	case "initialize":
		if _, err = rlf.NewRedeemLogicConfig(keys[ownerFlag.Name], args.InterestSplit, args.CapLow, args.CapHigh); err != nil {
			return err
		}
		ix, err = rlf.NewInitializeInstruction(args, keys[addressFlag.Name], keys[ownerFlag.Name], keys[payerFlag.Name])
	case "update":
		if _, err = rlf.NewRedeemLogicConfig(keys[ownerFlag.Name], args.InterestSplit, args.CapLow, args.CapHigh); err != nil {
			return err
		}
		ix, err = rlf.NewUpdateInstruction(args, keys[addressFlag.Name], keys[ownerFlag.Name])
	default:
		return errors.New("want initialize or update")
	}
	if err != nil {
		return err
	}

	data, err := ix.Data()
	if err != nil {
		return err
	}
	accounts := make([]map[string]interface{}, 0, len(ix.Accounts()))
	for _, a := range ix.Accounts() {
		accounts = append(accounts, map[string]interface{}{
			"pubkey":   a.PublicKey,
			"signer":   a.IsSigner,
			"writable": a.IsWritable,
		})
	}
	return writeJSON(ctx.App.Writer, map[string]interface{}{
		"program_id": ix.ProgramID(),
		"accounts":   accounts,
		"data":       base64.StdEncoding.EncodeToString(data),
	})
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
