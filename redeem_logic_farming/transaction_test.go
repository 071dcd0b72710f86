package redeem_logic_farming

import (
	"context"
	"testing"

	redeemlogicgen "github.com/krazyTry/vyper-go/gen/redeem_logic_farming"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/require"
)

func decodeSentArgs(t *testing.T, tx *solana.Transaction, disc [8]byte) ConfigArgs {
	t.Helper()
	require.Len(t, tx.Message.Instructions, 1)
	ix := tx.Message.Instructions[0]
	require.Equal(t, redeemlogicgen.ProgramID, tx.Message.AccountKeys[ix.ProgramIDIndex])

	data := []byte(ix.Data)
	require.Len(t, data, 8+3*8)
	require.Equal(t, disc[:], data[:8])

	var args ConfigArgs
	require.NoError(t, binary.NewBorshDecoder(data[8:]).Decode(&args))
	return args
}

func TestInitialize(t *testing.T) {
	stub, client := newRPCStub(t)
	ctx := context.Background()

	configWallet := solana.NewWallet()
	payerWallet := solana.NewWallet()
	owner := solana.NewWallet().PublicKey()
	args := ConfigArgs{InterestSplit: 0.5, CapLow: 0.5, CapHigh: 1.5}

	sig, err := client.Initialize(ctx, configWallet, owner, payerWallet, args)
	require.NoError(t, err)

	sent := stub.sentTransactions()
	require.Len(t, sent, 1)
	tx := sent[0]
	require.Equal(t, tx.Signatures[0].String(), sig)
	require.Len(t, tx.Signatures, 2)
	require.NoError(t, tx.VerifySignatures())
	require.Equal(t, payerWallet.PublicKey(), tx.Message.AccountKeys[0])
	require.Equal(t, stub.blockhash.String(), tx.Message.RecentBlockhash.String())
	require.Equal(t, args, decodeSentArgs(t, tx, initializeDiscriminator))
	require.Equal(t, "confirmed", stub.lastParams("sendTransaction").Get("1.preflightCommitment").String())

	// rejected before anything reaches the network
	_, err = client.Initialize(ctx, configWallet, owner, payerWallet, ConfigArgs{InterestSplit: 1.5, CapHigh: 100})
	require.True(t, InvalidInput.Has(err), "%v", err)
	require.Len(t, stub.sentTransactions(), 1)
}

func TestUpdate(t *testing.T) {
	stub, client := newRPCStub(t)
	ctx := context.Background()

	ownerWallet := solana.NewWallet()
	config := stub.put(redeemlogicgen.ProgramID, encodeConfig(t, ownerWallet.PublicKey(), 0.5, 0, 100))
	args := ConfigArgs{InterestSplit: 0.3, CapLow: 0.5, CapHigh: 2}

	sig, err := client.Update(ctx, config, ownerWallet, args)
	require.NoError(t, err)

	sent := stub.sentTransactions()
	require.Len(t, sent, 1)
	tx := sent[0]
	require.Equal(t, tx.Signatures[0].String(), sig)
	require.Len(t, tx.Signatures, 1)
	require.NoError(t, tx.VerifySignatures())
	require.Equal(t, ownerWallet.PublicKey(), tx.Message.AccountKeys[0])
	require.Equal(t, args, decodeSentArgs(t, tx, updateDiscriminator))

	tcs := []struct {
		name    string
		config  solana.PublicKey
		signer  *solana.Wallet
		args    ConfigArgs
		invalid bool
	}{
		{name: "not the owner", config: config, signer: solana.NewWallet(), args: args, invalid: true},
		{name: "split out of range", config: config, signer: ownerWallet, args: ConfigArgs{InterestSplit: -0.1, CapHigh: 100}, invalid: true},
		{name: "foreign program", config: stub.put(solana.SystemProgramID, encodeConfig(t, ownerWallet.PublicKey(), 0.5, 0, 100)), signer: ownerWallet, args: args, invalid: true},
		{name: "missing config", config: solana.NewWallet().PublicKey(), signer: ownerWallet, args: args},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			_, err := client.Update(ctx, tc.config, tc.signer, tc.args)
			require.Error(t, err)
			require.Equal(t, tc.invalid, InvalidInput.Has(err), "%v", err)
			require.Len(t, stub.sentTransactions(), 1)
		})
	}
}
