package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/krazyTry/vyper-go/d128"
	rlf "github.com/krazyTry/vyper-go/redeem_logic_farming"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logging struct {
		Level  string `yaml:"level"`
		Pretty bool   `yaml:"pretty"`
	} `yaml:"logging"`
	RPC struct {
		Endpoint   string `yaml:"endpoint"`
		Commitment string `yaml:"commitment"`
	} `yaml:"rpc"`
	Server struct {
		Addr                string `yaml:"addr"`
		ReadTimeoutSeconds  int    `yaml:"read_timeout_seconds"`
		WriteTimeoutSeconds int    `yaml:"write_timeout_seconds"`
	} `yaml:"server"`
	RedeemLogic struct {
		ProgramID     string `yaml:"program_id"`
		InterestSplit string `yaml:"interest_split"`
		CapLow        string `yaml:"cap_low"`
		CapHigh       string `yaml:"cap_high"`
	} `yaml:"redeem_logic"`
}

func defaultConfig() Config {
	var c Config
	c.Logging.Level = "info"
	c.Logging.Pretty = false
	c.RPC.Endpoint = rpc.MainNetBeta_RPC
	c.RPC.Commitment = string(rpc.CommitmentFinalized)
	c.Server.Addr = ":8669"
	c.Server.ReadTimeoutSeconds = 5
	c.Server.WriteTimeoutSeconds = 10
	c.RedeemLogic.ProgramID = "Fd87TGcYmWs1Gfa7XXZycJwt9kXjRs8axMtxCWtCmowN"
	c.RedeemLogic.InterestSplit = "0.5"
	c.RedeemLogic.CapLow = "0"
	c.RedeemLogic.CapHigh = "100"
	return c
}

// Load applies defaults, then the YAML file named by VYPER_CONFIG, then the
// VYPER_* environment overrides.
func Load() (Config, error) {
	return LoadFrom(os.Getenv("VYPER_CONFIG"))
}

// LoadFrom is Load with an explicit file; an empty path skips the file.
func LoadFrom(path string) (Config, error) {
	c := defaultConfig()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config: %w", err)
		}
		if err = yaml.Unmarshal(b, &c); err != nil {
			return c, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if v := os.Getenv("VYPER_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("VYPER_LOG_PRETTY"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Pretty = b
		}
	}
	if v := os.Getenv("VYPER_RPC_ENDPOINT"); v != "" {
		c.RPC.Endpoint = v
	}
	if v := os.Getenv("VYPER_RPC_COMMITMENT"); v != "" {
		c.RPC.Commitment = v
	}
	if v := os.Getenv("VYPER_HTTP_ADDR"); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv("VYPER_PROGRAM_ID"); v != "" {
		c.RedeemLogic.ProgramID = v
	}
	if v := os.Getenv("VYPER_INTEREST_SPLIT"); v != "" {
		c.RedeemLogic.InterestSplit = v
	}
	if v := os.Getenv("VYPER_CAP_LOW"); v != "" {
		c.RedeemLogic.CapLow = v
	}
	if v := os.Getenv("VYPER_CAP_HIGH"); v != "" {
		c.RedeemLogic.CapHigh = v
	}
	return c, nil
}

// Validate checks everything Load cannot: commitment name, program id and
// the default redeem parameters.
func (c Config) Validate() error {
	switch rpc.CommitmentType(c.RPC.Commitment) {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
	default:
		return fmt.Errorf("unknown commitment %q", c.RPC.Commitment)
	}
	if _, err := solana.PublicKeyFromBase58(c.RedeemLogic.ProgramID); err != nil {
		return fmt.Errorf("program id: %w", err)
	}
	_, err := c.DefaultRedeemLogicConfig()
	return err
}

// DefaultRedeemLogicConfig is the parameter set used when a request does not
// carry its own. It has no owner.
func (c Config) DefaultRedeemLogicConfig() (*rlf.RedeemLogicConfig, error) {
	split, err := d128.NewFromString(c.RedeemLogic.InterestSplit)
	if err != nil {
		return nil, fmt.Errorf("interest_split: %w", err)
	}
	if split.IsNegative() || split.GreaterThan(d128.One) {
		return nil, fmt.Errorf("interest_split %s out of [0, 1]", split)
	}
	low, err := d128.NewFromString(c.RedeemLogic.CapLow)
	if err != nil {
		return nil, fmt.Errorf("cap_low: %w", err)
	}
	high, err := d128.NewFromString(c.RedeemLogic.CapHigh)
	if err != nil {
		return nil, fmt.Errorf("cap_high: %w", err)
	}
	return &rlf.RedeemLogicConfig{InterestSplit: split, CapLow: low, CapHigh: high}, nil
}

func (c Config) Commitment() rpc.CommitmentType {
	return rpc.CommitmentType(c.RPC.Commitment)
}
