package solana

import "github.com/gagliardetto/solana-go"

// Filter selects program accounts holding Owner at byte Offset.
type Filter struct {
	Owner  solana.PublicKey // key to match
	Offset uint64           // byte offset inside account data
}
