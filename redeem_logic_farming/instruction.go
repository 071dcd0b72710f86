package redeem_logic_farming

import (
	"bytes"

	redeemlogicgen "github.com/krazyTry/vyper-go/gen/redeem_logic_farming"
	solanago "github.com/krazyTry/vyper-go/solana"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

var (
	initializeDiscriminator = solanago.InstructionDiscriminator("initialize")
	updateDiscriminator     = solanago.InstructionDiscriminator("update")
	executeDiscriminator    = solanago.InstructionDiscriminator("execute")
)

// ConfigArgs are the arguments shared by initialize and update.
type ConfigArgs struct {
	InterestSplit float64
	CapLow        float64
	CapHigh       float64
}

func (a ConfigArgs) MarshalWithEncoder(encoder *binary.Encoder) error {
	for _, f := range []float64{a.InterestSplit, a.CapLow, a.CapHigh} {
		if err := encoder.WriteFloat64(f, binary.LE); err != nil {
			return err
		}
	}
	return nil
}

func (a *ConfigArgs) UnmarshalWithDecoder(decoder *binary.Decoder) (err error) {
	for _, f := range []*float64{&a.InterestSplit, &a.CapLow, &a.CapHigh} {
		if *f, err = decoder.ReadFloat64(binary.LE); err != nil {
			return err
		}
	}
	return nil
}

func instructionData(disc [8]byte, args binary.BinaryMarshaler) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := binary.NewBorshEncoder(buf)
	if err := enc.WriteBytes(disc[:], false); err != nil {
		return nil, err
	}
	if err := args.MarshalWithEncoder(enc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// NewInitializeInstruction creates config with owner as its owner. config and
// payer sign.
func NewInitializeInstruction(
	// Params:
	args ConfigArgs,

	// Accounts:
	config solana.PublicKey,
	owner solana.PublicKey,
	payer solana.PublicKey,
) (solana.Instruction, error) {
	data, err := instructionData(initializeDiscriminator, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		redeemlogicgen.ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(config, true, true),
			solana.NewAccountMeta(owner, false, false),
			solana.NewAccountMeta(payer, true, true),
			solana.NewAccountMeta(solana.SystemProgramID, false, false),
		},
		data,
	), nil
}

// NewUpdateInstruction replaces the config parameters. owner signs.
func NewUpdateInstruction(
	// Params:
	args ConfigArgs,

	// Accounts:
	config solana.PublicKey,
	owner solana.PublicKey,
) (solana.Instruction, error) {
	data, err := instructionData(updateDiscriminator, args)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		redeemlogicgen.ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(config, true, false),
			solana.NewAccountMeta(owner, false, true),
		},
		data,
	), nil
}

// NewExecuteInstruction runs the engine on chain against config. The result
// comes back as transaction return data.
func NewExecuteInstruction(
	// Params:
	input *RedeemLogicExecuteInput,

	// Accounts:
	config solana.PublicKey,
) (solana.Instruction, error) {
	data, err := instructionData(executeDiscriminator, input)
	if err != nil {
		return nil, err
	}
	return solana.NewInstruction(
		redeemlogicgen.ProgramID,
		solana.AccountMetaSlice{
			solana.NewAccountMeta(config, false, false),
		},
		data,
	), nil
}
