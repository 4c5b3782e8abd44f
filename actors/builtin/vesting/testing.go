package vesting

import (
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
)

type StateSummary struct {
	Status      Status
	Claimed     abi.TokenAmount
	Remaining   abi.TokenAmount
	ClaimCount  int
	UnlockedNow abi.TokenAmount
}

// Checks internal invariants of vesting state.
// The balance is the actor's balance as held by the host, which must cover everything not yet claimed.
func CheckStateInvariants(st *State, store adt.Store, balance abi.TokenAmount, now abi.Timestamp) (*StateSummary, *builtin.MessageAccumulator, error) {
	acc := &builtin.MessageAccumulator{}

	acc.Require(!st.Claimed.Nil() && st.Claimed.GreaterThanEqual(big.Zero()), "claimed %v is negative", st.Claimed)

	if st.Status == StatusUninitialized {
		acc.Require(st.Schedule == nil, "uninitialized escrow has schedule %v", st.Schedule)
		acc.Require(st.Claimed.Sign() == 0, "uninitialized escrow has claimed %v", st.Claimed)
	} else {
		acc.Require(st.Status == StatusActive || st.Status == StatusFullyClaimed, "unknown status %v", st.Status)
		if st.Schedule == nil {
			acc.Addf("%v escrow has no schedule", st.Status)
			return nil, acc, nil
		}
		sched := st.Schedule
		acc.Require(sched.Grantor.Protocol() == address.ID, "grantor is not ID address %v", sched.Grantor)
		acc.Require(sched.Beneficiary.Protocol() == address.ID, "beneficiary is not ID address %v", sched.Beneficiary)
		acc.Require(sched.TotalAmount.GreaterThan(big.Zero()), "total amount %v is not positive", sched.TotalAmount)
		acc.Require(sched.TotalAmount.LessThanEqual(MaxTokenAmount), "total amount %v exceeds maximum", sched.TotalAmount)
		acc.Require(sched.Duration > 0, "duration is zero")
		_, ok := sched.StartTime.Add(sched.Duration)
		acc.Require(ok, "end time overflows: start %d duration %d", sched.StartTime, sched.Duration)

		acc.Require(st.Claimed.LessThanEqual(sched.TotalAmount), "claimed %v exceeds total %v", st.Claimed, sched.TotalAmount)
		acc.Require(st.Claimed.LessThanEqual(st.UnlockedAt(now)), "claimed %v ahead of unlocked %v at %d",
			st.Claimed, st.UnlockedAt(now), now)
		fullyClaimed := st.Claimed.Equals(sched.TotalAmount)
		acc.Require(fullyClaimed == (st.Status == StatusFullyClaimed), "status %v inconsistent with claimed %v of %v",
			st.Status, st.Claimed, sched.TotalAmount)
	}

	acc.Require(balance.GreaterThanEqual(st.Remaining()), "balance %v less than remaining %v", balance, st.Remaining())

	history, err := st.LoadClaimHistory(store)
	if err != nil {
		return nil, acc, err
	}
	sum := big.Zero()
	var last abi.Timestamp
	for i, rec := range history {
		recAcc := acc.WithPrefix(fmt.Sprintf("claim %d: ", i))
		recAcc.Require(rec.Amount.GreaterThan(big.Zero()), "amount %v is not positive", rec.Amount)
		recAcc.Require(rec.Time >= last, "time %d precedes previous claim at %d", rec.Time, last)
		last = rec.Time
		sum = big.Add(sum, rec.Amount)
	}
	acc.Require(sum.Equals(st.Claimed), "claim history sums to %v, claimed %v", sum, st.Claimed)

	return &StateSummary{
		Status:      st.Status,
		Claimed:     st.Claimed,
		Remaining:   st.Remaining(),
		ClaimCount:  len(history),
		UnlockedNow: st.UnlockedAt(now),
	}, acc, nil
}
