package redeemlogicfarming

import solanago "github.com/gagliardetto/solana-go"

// ProgramID is the farming redeem logic program address.
var ProgramID = solanago.MustPublicKeyFromBase58("Fd87TGcYmWs1Gfa7XXZycJwt9kXjRs8axMtxCWtCmowN")
