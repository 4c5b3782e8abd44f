package vesting

import (
	"github.com/filecoin-project/go-state-types/big"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
)

// UnlockedAmount computes the cumulative amount of `total` that has unlocked at time `now`
// under a linear schedule beginning at `start` and lasting `duration` seconds.
//
// Nothing is unlocked at or before the start, everything is unlocked at or after the end,
// and in between the unlocked amount is floor(total * elapsed / duration).
// The product is computed at arbitrary precision, so a 128-bit total multiplied by a 64-bit
// elapsed time cannot overflow before the division narrows it back to the range of total.
func UnlockedAmount(total abi.TokenAmount, start abi.Timestamp, duration abi.Duration, now abi.Timestamp) abi.TokenAmount {
	if now <= start {
		return big.Zero()
	}
	// Compare elapsed time against the duration rather than now against start+duration,
	// so no end timestamp is ever computed.
	elapsed := uint64(now - start)
	if elapsed >= uint64(duration) {
		return total
	}

	return big.Div(big.Mul(total, abi.NewTokenAmountFromUint64(elapsed)), abi.NewTokenAmountFromUint64(uint64(duration)))
}
