package redeem_logic_farming

import (
	"bytes"

	"github.com/krazyTry/vyper-go/d128"

	binary "github.com/gagliardetto/binary"
)

const (
	// ReserveFairValueLen is the number of fair value slots in an execute input.
	ReserveFairValueLen = 10

	RedeemLogicExecuteInputLen  = 2*8 + 2*ReserveFairValueLen*d128.Size
	RedeemLogicExecuteResultLen = 3 * 8
)

// RedeemLogicExecuteInput is the argument of the execute instruction.
// Slot 0 of each fair value array is the LP share, slot 1 the underlying.
type RedeemLogicExecuteInput struct {
	OldQuantity         [2]uint64
	OldReserveFairValue [ReserveFairValueLen]d128.Decimal
	NewReserveFairValue [ReserveFairValueLen]d128.Decimal
}

// IsValid rejects any negative fair value.
func (in *RedeemLogicExecuteInput) IsValid() error {
	for i, v := range in.OldReserveFairValue {
		if v.IsNegative() {
			return InvalidInput.New("old reserve fair value %d is negative: %s", i, v)
		}
	}
	for i, v := range in.NewReserveFairValue {
		if v.IsNegative() {
			return InvalidInput.New("new reserve fair value %d is negative: %s", i, v)
		}
	}
	return nil
}

func (in RedeemLogicExecuteInput) MarshalWithEncoder(encoder *binary.Encoder) error {
	for _, q := range in.OldQuantity {
		if err := encoder.WriteUint64(q, binary.LE); err != nil {
			return err
		}
	}
	for _, v := range in.OldReserveFairValue {
		if err := v.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	for _, v := range in.NewReserveFairValue {
		if err := v.MarshalWithEncoder(encoder); err != nil {
			return err
		}
	}
	return nil
}

func (in *RedeemLogicExecuteInput) UnmarshalWithDecoder(decoder *binary.Decoder) (err error) {
	for i := range in.OldQuantity {
		if in.OldQuantity[i], err = decoder.ReadUint64(binary.LE); err != nil {
			return err
		}
	}
	for i := range in.OldReserveFairValue {
		if err = in.OldReserveFairValue[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	for i := range in.NewReserveFairValue {
		if err = in.NewReserveFairValue[i].UnmarshalWithDecoder(decoder); err != nil {
			return err
		}
	}
	return nil
}

func (in RedeemLogicExecuteInput) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := in.MarshalWithEncoder(binary.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeRedeemLogicExecuteInput(data []byte) (*RedeemLogicExecuteInput, error) {
	if len(data) != RedeemLogicExecuteInputLen {
		return nil, InvalidInput.New("execute input: want %d bytes, got %d", RedeemLogicExecuteInputLen, len(data))
	}
	out := new(RedeemLogicExecuteInput)
	if err := out.UnmarshalWithDecoder(binary.NewBorshDecoder(data)); err != nil {
		return nil, InvalidInput.Wrap(err)
	}
	return out, nil
}

// RedeemLogicExecuteResult is what the program sets as return data.
type RedeemLogicExecuteResult struct {
	NewQuantity [2]uint64 `json:"new_quantity"`
	FeeQuantity uint64    `json:"fee_quantity"`
}

func (r RedeemLogicExecuteResult) MarshalWithEncoder(encoder *binary.Encoder) error {
	for _, q := range r.NewQuantity {
		if err := encoder.WriteUint64(q, binary.LE); err != nil {
			return err
		}
	}
	return encoder.WriteUint64(r.FeeQuantity, binary.LE)
}

func (r *RedeemLogicExecuteResult) UnmarshalWithDecoder(decoder *binary.Decoder) (err error) {
	for i := range r.NewQuantity {
		if r.NewQuantity[i], err = decoder.ReadUint64(binary.LE); err != nil {
			return err
		}
	}
	r.FeeQuantity, err = decoder.ReadUint64(binary.LE)
	return err
}

func (r RedeemLogicExecuteResult) Marshal() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := r.MarshalWithEncoder(binary.NewBorshEncoder(buf)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func DecodeRedeemLogicExecuteResult(data []byte) (*RedeemLogicExecuteResult, error) {
	if len(data) != RedeemLogicExecuteResultLen {
		return nil, InvalidInput.New("execute result: want %d bytes, got %d", RedeemLogicExecuteResultLen, len(data))
	}
	out := new(RedeemLogicExecuteResult)
	if err := out.UnmarshalWithDecoder(binary.NewBorshDecoder(data)); err != nil {
		return nil, InvalidInput.Wrap(err)
	}
	return out, nil
}

// NewRedeemLogicExecuteInput fills slots 0 and 1 of both fair value arrays
// and leaves the rest zero.
func NewRedeemLogicExecuteInput(oldQuantity [2]uint64, oldLpFairValue, oldUlFairValue, newLpFairValue, newUlFairValue d128.Decimal) *RedeemLogicExecuteInput {
	in := &RedeemLogicExecuteInput{OldQuantity: oldQuantity}
	in.OldReserveFairValue[0] = oldLpFairValue
	in.OldReserveFairValue[1] = oldUlFairValue
	in.NewReserveFairValue[0] = newLpFairValue
	in.NewReserveFairValue[1] = newUlFairValue
	return in
}
