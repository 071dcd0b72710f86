package redeem_logic_farming

import (
	"testing"

	"github.com/krazyTry/vyper-go/d128"

	"github.com/stretchr/testify/require"
)

func TestRedeemLogicExecuteInputCodec(t *testing.T) {
	input := NewRedeemLogicExecuteInput([2]uint64{29995133, 10004866},
		d128.RequireFromString("1.14306704624445"), d128.RequireFromString("31.754346528125"),
		d128.RequireFromString("1.13844621756989"), d128.RequireFromString("31.506774725"),
	)

	data, err := input.Marshal()
	require.NoError(t, err)
	require.Len(t, data, RedeemLogicExecuteInputLen)
	require.Equal(t, []byte{0x7d, 0xb0, 0xc9, 0x01, 0, 0, 0, 0}, data[:8])

	got, err := DecodeRedeemLogicExecuteInput(data)
	require.NoError(t, err)
	require.Equal(t, input.OldQuantity, got.OldQuantity)
	for i := range input.OldReserveFairValue {
		require.True(t, input.OldReserveFairValue[i].Equal(got.OldReserveFairValue[i]))
		require.True(t, input.NewReserveFairValue[i].Equal(got.NewReserveFairValue[i]))
	}

	_, err = DecodeRedeemLogicExecuteInput(data[:100])
	require.True(t, InvalidInput.Has(err))

	// scale 29 in the first fair value
	data[16+2] = 29
	_, err = DecodeRedeemLogicExecuteInput(data)
	require.True(t, InvalidInput.Has(err))
	require.ErrorIs(t, err, d128.ErrInvalidEncoding)
}

func TestRedeemLogicExecuteInputIsValid(t *testing.T) {
	input := NewRedeemLogicExecuteInput([2]uint64{1, 1}, d128.One, d128.One, d128.One, d128.One)
	require.NoError(t, input.IsValid())

	input.OldReserveFairValue[5] = d128.NewFromInt(-1)
	require.True(t, InvalidInput.Has(input.IsValid()))
}

func TestRedeemLogicExecuteResultCodec(t *testing.T) {
	result := RedeemLogicExecuteResult{NewQuantity: [2]uint64{9166, 10833}, FeeQuantity: 1}

	data, err := result.Marshal()
	require.NoError(t, err)
	require.Equal(t, []byte{
		0xce, 0x23, 0, 0, 0, 0, 0, 0,
		0x51, 0x2a, 0, 0, 0, 0, 0, 0,
		1, 0, 0, 0, 0, 0, 0, 0,
	}, data)

	got, err := DecodeRedeemLogicExecuteResult(data)
	require.NoError(t, err)
	require.Equal(t, result, *got)

	_, err = DecodeRedeemLogicExecuteResult(data[:16])
	require.True(t, InvalidInput.Has(err))
}
