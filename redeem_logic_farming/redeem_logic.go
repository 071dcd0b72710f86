package redeem_logic_farming

import (
	"time"

	"github.com/gagliardetto/solana-go/rpc"
	"github.com/rs/zerolog"
)

// Recorder receives one observation per engine run.
type Recorder interface {
	ObserveExecution(outcome string, feeQuantity uint64, elapsed time.Duration)
}

type RedeemLogicFarming struct {
	rpcClient  *rpc.Client
	commitment rpc.CommitmentType
	logger     zerolog.Logger
	recorder   Recorder
}

func NewRedeemLogicFarming(
	rpcClient *rpc.Client,
	opts ...Option,
) *RedeemLogicFarming {
	o := &RedeemLogicFarming{
		rpcClient:  rpcClient,
		commitment: rpc.CommitmentFinalized,
		logger:     zerolog.Nop(),
	}
	for _, fn := range opts {
		fn(o)
	}
	return o
}

type Option func(*RedeemLogicFarming)

func WithLogger(logger zerolog.Logger) Option {
	return func(r *RedeemLogicFarming) {
		r.logger = logger
	}
}

func WithRecorder(recorder Recorder) Option {
	return func(r *RedeemLogicFarming) {
		r.recorder = recorder
	}
}

func WithCommitment(commitment rpc.CommitmentType) Option {
	return func(r *RedeemLogicFarming) {
		r.commitment = commitment
	}
}

// ExecuteWithConfig runs the engine off chain against an already loaded config.
func (r *RedeemLogicFarming) ExecuteWithConfig(input *RedeemLogicExecuteInput, config *RedeemLogicConfig) (*RedeemLogicExecuteResult, error) {
	config.Dump(r.logger)

	start := time.Now()
	result, outcome, err := ExecuteWithOutcome(input, config)
	elapsed := time.Since(start)

	var fee uint64
	if result != nil {
		fee = result.FeeQuantity
	}
	if r.recorder != nil {
		r.recorder.ObserveExecution(string(outcome), fee, elapsed)
	}

	if err != nil {
		r.logger.Warn().Err(err).Str("outcome", string(outcome)).Msg("redeem logic execute failed")
		return nil, err
	}

	r.logger.Debug().
		Str("outcome", string(outcome)).
		Uints64("old_quantity", input.OldQuantity[:]).
		Uints64("new_quantity", result.NewQuantity[:]).
		Uint64("fee_quantity", result.FeeQuantity).
		Dur("elapsed", elapsed).
		Msg("redeem logic execute")
	return result, nil
}
