package vesting

import (
	"math/big"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
)

// Largest total that may be placed under vesting: the maximum of a signed 128-bit integer.
var MaxTokenAmount abi.TokenAmount

// Bitwidth of the AMT holding the claim history.
// Claims are few and appended in order, so a narrow tree keeps the root small.
const ClaimHistoryAmtBitwidth = 3

func init() {
	max := new(big.Int).Lsh(big.NewInt(1), 127)
	MaxTokenAmount = abi.TokenAmount{Int: max.Sub(max, big.NewInt(1))}
}
