package redeem_logic_farming

import (
	"context"
	"fmt"

	redeemlogicgen "github.com/krazyTry/vyper-go/gen/redeem_logic_farming"
	solanago "github.com/krazyTry/vyper-go/solana"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

type ProgramAccount[T any] struct {
	Pubkey  solana.PublicKey
	Account *T
}

// GetConfig loads a config account. It returns nil, nil when the account
// does not exist.
func (r *RedeemLogicFarming) GetConfig(ctx context.Context, config solana.PublicKey) (*RedeemLogicConfig, error) {
	out, err := solanago.GetAccountInfo(ctx, r.rpcClient, config, r.commitment)
	if err != nil {
		if err == rpc.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	if out == nil || out.Value == nil {
		return nil, nil
	}
	return decodeConfigAccount(config, out.Value)
}

// GetConfigs loads several config accounts in one request. Entries for
// missing accounts are nil.
func (r *RedeemLogicFarming) GetConfigs(ctx context.Context, configs []solana.PublicKey) ([]*RedeemLogicConfig, error) {
	if len(configs) == 0 {
		return nil, nil
	}
	out, err := solanago.GetMultipleAccountInfo(ctx, r.rpcClient, configs, r.commitment)
	if err != nil {
		return nil, err
	}
	if len(out.Value) != len(configs) {
		return nil, fmt.Errorf("asked for %d accounts, got %d", len(configs), len(out.Value))
	}

	result := make([]*RedeemLogicConfig, len(configs))
	for i, acc := range out.Value {
		if acc == nil {
			continue
		}
		if result[i], err = decodeConfigAccount(configs[i], acc); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func decodeConfigAccount(address solana.PublicKey, acc *rpc.Account) (*RedeemLogicConfig, error) {
	if !acc.Owner.Equals(redeemlogicgen.ProgramID) {
		return nil, InvalidInput.New("account %s is owned by %s", address, acc.Owner)
	}
	return new(RedeemLogicConfig).Decode(acc.Data.GetBinary())
}

// GetConfigsByOwner lists every config account owned by owner.
func (r *RedeemLogicFarming) GetConfigsByOwner(ctx context.Context, owner solana.PublicKey) ([]ProgramAccount[RedeemLogicConfig], error) {
	opts := solanago.GenProgramAccountFilter(AccountKeyRedeemLogicConfig, &solanago.Filter{
		Owner:  owner,
		Offset: redeemLogicConfigOwnerOffset,
	}, r.commitment)

	accounts, err := r.rpcClient.GetProgramAccountsWithOpts(ctx, redeemlogicgen.ProgramID, opts)
	if err != nil {
		return nil, err
	}
	out := make([]ProgramAccount[RedeemLogicConfig], 0, len(accounts))
	for _, acc := range accounts {
		parsed, err := new(RedeemLogicConfig).Decode(acc.Account.Data.GetBinary())
		if err != nil {
			r.logger.Warn().Err(err).Stringer("account", acc.Pubkey).Msg("skip undecodable config")
			continue
		}
		out = append(out, ProgramAccount[RedeemLogicConfig]{Pubkey: acc.Pubkey, Account: parsed})
	}
	return out, nil
}

// Execute reads the config account and runs the engine against it off chain.
func (r *RedeemLogicFarming) Execute(ctx context.Context, config solana.PublicKey, input *RedeemLogicExecuteInput) (*RedeemLogicExecuteResult, error) {
	cfg, err := r.GetConfig(ctx, config)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, fmt.Errorf("redeem logic config %s not found", config)
	}
	return r.ExecuteWithConfig(input, cfg)
}
