package redeem_logic_farming

import (
	"context"
	"fmt"

	solanago "github.com/krazyTry/vyper-go/solana"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Initialize creates a config account at configWallet. The arguments are
// checked locally first so an invalid split never reaches the network.
func (r *RedeemLogicFarming) Initialize(ctx context.Context, configWallet *solana.Wallet, owner solana.PublicKey, payerWallet *solana.Wallet, args ConfigArgs) (string, error) {
	if _, err := NewRedeemLogicConfig(owner, args.InterestSplit, args.CapLow, args.CapHigh); err != nil {
		return "", err
	}

	ix, err := NewInitializeInstruction(args, configWallet.PublicKey(), owner, payerWallet.PublicKey())
	if err != nil {
		return "", err
	}
	return r.send(ctx, ix, payerWallet, configWallet)
}

// Update replaces the parameters of an existing config. ownerWallet pays and signs.
func (r *RedeemLogicFarming) Update(ctx context.Context, config solana.PublicKey, ownerWallet *solana.Wallet, args ConfigArgs) (string, error) {
	cfg, err := r.GetConfig(ctx, config)
	if err != nil {
		return "", err
	}
	if cfg == nil {
		return "", fmt.Errorf("redeem logic config %s not found", config)
	}
	if err = cfg.Update(ownerWallet.PublicKey(), args.InterestSplit, args.CapLow, args.CapHigh); err != nil {
		return "", err
	}

	ix, err := NewUpdateInstruction(args, config, ownerWallet.PublicKey())
	if err != nil {
		return "", err
	}
	return r.send(ctx, ix, ownerWallet)
}

func (r *RedeemLogicFarming) send(ctx context.Context, ix solana.Instruction, payer *solana.Wallet, signers ...*solana.Wallet) (string, error) {
	latestBlockhash, err := solanago.GetLatestBlockhash(ctx, r.rpcClient, r.commitment)
	if err != nil {
		return "", err
	}

	tx, err := solana.NewTransaction([]solana.Instruction{ix}, latestBlockhash, solana.TransactionPayer(payer.PublicKey()))
	if err != nil {
		return "", err
	}

	wallets := append([]*solana.Wallet{payer}, signers...)
	if _, err = tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for _, w := range wallets {
			if key.Equals(w.PublicKey()) {
				return &w.PrivateKey
			}
		}
		return nil
	}); err != nil {
		return "", err
	}

	sig, err := r.rpcClient.SendTransactionWithOpts(ctx, tx, rpc.TransactionOpts{
		PreflightCommitment: r.commitment,
	})
	if err != nil {
		return "", err
	}
	r.logger.Info().Stringer("signature", sig).Msg("redeem logic transaction sent")
	return sig.String(), nil
}
