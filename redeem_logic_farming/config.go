package redeem_logic_farming

import (
	"bytes"

	"github.com/krazyTry/vyper-go/d128"
	solanago "github.com/krazyTry/vyper-go/solana"

	binary "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
	"github.com/rs/zerolog"
)

const (
	AccountKeyRedeemLogicConfig = "RedeemLogicConfig"

	// RedeemLogicConfigLen is discriminator + three decimals + owner.
	RedeemLogicConfigLen = 8 + 3*d128.Size + 32

	// redeemLogicConfigOwnerOffset is where the owner key starts in account data.
	redeemLogicConfigOwnerOffset = 8 + 3*d128.Size
)

var redeemLogicConfigDiscriminator = solanago.AccountDiscriminator(AccountKeyRedeemLogicConfig)

// RedeemLogicConfig is the on-chain parameter record read by execute.
type RedeemLogicConfig struct {
	InterestSplit d128.Decimal
	CapLow        d128.Decimal
	CapHigh       d128.Decimal
	Owner         solana.PublicKey
}

// NewRedeemLogicConfig builds the record the initialize instruction stores.
func NewRedeemLogicConfig(owner solana.PublicKey, interestSplit, capLow, capHigh float64) (*RedeemLogicConfig, error) {
	c := &RedeemLogicConfig{Owner: owner}
	if err := c.set(interestSplit, capLow, capHigh); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces the three parameters. Only the owner may update; on any
// error the record is left as it was.
func (c *RedeemLogicConfig) Update(signer solana.PublicKey, interestSplit, capLow, capHigh float64) error {
	if !signer.Equals(c.Owner) {
		return InvalidInput.New("signer %s is not the config owner %s", signer, c.Owner)
	}
	return c.set(interestSplit, capLow, capHigh)
}

func (c *RedeemLogicConfig) set(interestSplit, capLow, capHigh float64) error {
	// written so that NaN fails too
	if !(interestSplit >= 0 && interestSplit <= 1) {
		return InvalidInput.New("interest split %v out of [0, 1]", interestSplit)
	}

	split, err := d128.NewFromFloat(interestSplit)
	if err != nil {
		return MathError.Wrap(err)
	}
	low, err := d128.NewFromFloat(capLow)
	if err != nil {
		return MathError.Wrap(err)
	}
	high, err := d128.NewFromFloat(capHigh)
	if err != nil {
		return MathError.Wrap(err)
	}

	c.InterestSplit, c.CapLow, c.CapHigh = split, low, high
	return nil
}

func (c RedeemLogicConfig) MarshalWithEncoder(encoder *binary.Encoder) error {
	if err := encoder.WriteBytes(redeemLogicConfigDiscriminator[:], false); err != nil {
		return err
	}
	for _, v := range []d128.Decimal{c.InterestSplit, c.CapLow, c.CapHigh} {
		if err := v.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	return encoder.WriteBytes(c.Owner[:], false)
}

func (c *RedeemLogicConfig) UnmarshalWithDecoder(decoder *binary.Decoder) error {
	disc, err := decoder.ReadNBytes(8)
	if err != nil {
		return err
	}
	if !bytes.Equal(disc, redeemLogicConfigDiscriminator[:]) {
		return InvalidInput.New("wrong discriminator for %s: %x", AccountKeyRedeemLogicConfig, disc)
	}
	for _, v := range []*d128.Decimal{&c.InterestSplit, &c.CapLow, &c.CapHigh} {
		if err = v.UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	owner, err := decoder.ReadNBytes(solana.PublicKeyLength)
	if err != nil {
		return err
	}
	c.Owner = solana.PublicKeyFromBytes(owner)
	return nil
}

// Encode returns the full account data, discriminator included.
func (c *RedeemLogicConfig) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := c.MarshalWithEncoder(binary.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses account data as stored on chain.
func (c *RedeemLogicConfig) Decode(data []byte) (*RedeemLogicConfig, error) {
	if len(data) < RedeemLogicConfigLen {
		return nil, InvalidInput.New("%s: want %d bytes, got %d", AccountKeyRedeemLogicConfig, RedeemLogicConfigLen, len(data))
	}
	if err := c.UnmarshalWithDecoder(binary.NewBorshDecoder(data)); err != nil {
		return nil, InvalidInput.Wrap(err)
	}
	return c, nil
}

// Dump logs the parameters the way execute reports them.
func (c *RedeemLogicConfig) Dump(logger zerolog.Logger) {
	logger.Info().
		Stringer("interest_split", c.InterestSplit).
		Stringer("cap_low", c.CapLow).
		Stringer("cap_high", c.CapHigh).
		Stringer("owner", c.Owner).
		Msg("redeem logic config")
}
