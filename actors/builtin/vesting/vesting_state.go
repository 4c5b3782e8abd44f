package vesting

import (
	"fmt"

	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	cid "github.com/ipfs/go-cid"
	"golang.org/x/xerrors"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/util"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
)

// Status of a vesting escrow. Transitions only move forward:
// Uninitialized -> Active -> FullyClaimed.
type Status uint64

const (
	StatusUninitialized Status = iota
	StatusActive
	StatusFullyClaimed
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusActive:
		return "active"
	case StatusFullyClaimed:
		return "fully-claimed"
	default:
		return fmt.Sprintf("status(%d)", uint64(s))
	}
}

type State struct {
	Status Status

	// The immutable terms of the escrow, set once by Create. Nil while uninitialized.
	Schedule *Schedule

	// Cumulative amount withdrawn by the beneficiary.
	// Invariant: 0 <= Claimed <= Schedule.TotalAmount
	Claimed abi.TokenAmount

	// AMT[index]ClaimRecord, one entry per successful claim in order.
	// Retained after the escrow is fully claimed as an audit trail.
	ClaimHistory cid.Cid
}

// Schedule holds the terms of a linear vesting escrow.
type Schedule struct {
	// The party that funded the escrow. Always an ID-address.
	Grantor addr.Address
	// The party entitled to withdraw unlocked funds. Always an ID-address.
	Beneficiary addr.Address
	// Amount placed under vesting.
	TotalAmount abi.TokenAmount
	// Time at which funds begin to unlock.
	StartTime abi.Timestamp
	// Seconds from StartTime until the full amount is unlocked.
	Duration abi.Duration
}

// ClaimRecord describes one successful withdrawal.
type ClaimRecord struct {
	Time   abi.Timestamp
	Amount abi.TokenAmount
}

// ScheduleInfo is a read-only view of an escrow at a point in time.
type ScheduleInfo struct {
	Beneficiary addr.Address
	Status      Status
	TotalAmount abi.TokenAmount
	StartTime   abi.Timestamp
	Duration    abi.Duration
	Claimed     abi.TokenAmount
	Remaining   abi.TokenAmount
	UnlockedNow abi.TokenAmount
}

// ConstructState builds the state of a freshly deployed, uninitialized escrow.
func ConstructState(store adt.Store) (*State, error) {
	emptyHistory, err := adt.StoreEmptyArray(store, ClaimHistoryAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to create empty claim history: %w", err)
	}
	return &State{
		Status:       StatusUninitialized,
		Schedule:     nil,
		Claimed:      big.Zero(),
		ClaimHistory: emptyHistory,
	}, nil
}

// EndTime returns the time at which the full amount is unlocked.
// Validated schedules never overflow.
func (s *Schedule) EndTime() abi.Timestamp {
	end, ok := s.StartTime.Add(s.Duration)
	util.AssertMsg(ok, "schedule end overflows: start %d duration %d", s.StartTime, s.Duration)
	return end
}

// Validate checks the terms of a schedule, returning an error carrying the exit code for
// the first violated constraint.
func (s *Schedule) Validate() error {
	if s.TotalAmount.Nil() || s.TotalAmount.Sign() <= 0 {
		return ErrInvalidAmount.Wrapf("vesting amount must be positive, was %v", s.TotalAmount)
	}
	if s.TotalAmount.GreaterThan(MaxTokenAmount) {
		return ErrInvalidAmount.Wrapf("vesting amount %v exceeds maximum %v", s.TotalAmount, MaxTokenAmount)
	}
	if s.Duration == 0 {
		return ErrInvalidDuration.Wrapf("vesting duration must be positive")
	}
	if _, ok := s.StartTime.Add(s.Duration); !ok {
		return ErrTimeOverflow.Wrapf("vesting end time overflows: start %d duration %d", s.StartTime, s.Duration)
	}
	if s.Beneficiary.Protocol() != addr.ID {
		return exitcode.ErrIllegalArgument.Wrapf("beneficiary must be an ID-address, %v is %v", s.Beneficiary, s.Beneficiary.Protocol())
	}
	if s.Grantor.Protocol() != addr.ID {
		return exitcode.ErrIllegalArgument.Wrapf("grantor must be an ID-address, %v is %v", s.Grantor, s.Grantor.Protocol())
	}
	return nil
}

// Initialize records the escrow terms and moves the state from uninitialized to active.
func (st *State) Initialize(sched Schedule) error {
	if st.Status != StatusUninitialized {
		return ErrAlreadyInitialized.Wrapf("vesting schedule already created, status %v", st.Status)
	}
	if err := sched.Validate(); err != nil {
		return err
	}
	st.Schedule = &sched
	st.Claimed = big.Zero()
	st.Status = StatusActive
	return nil
}

// UnlockedAt returns the cumulative amount unlocked at a time.
func (st *State) UnlockedAt(now abi.Timestamp) abi.TokenAmount {
	if st.Schedule == nil {
		return big.Zero()
	}
	return UnlockedAmount(st.Schedule.TotalAmount, st.Schedule.StartTime, st.Schedule.Duration, now)
}

// AvailableAt returns the amount unlocked but not yet claimed at a time.
func (st *State) AvailableAt(now abi.Timestamp) abi.TokenAmount {
	return big.Max(big.Sub(st.UnlockedAt(now), st.Claimed), big.Zero())
}

// Remaining returns the amount not yet claimed.
func (st *State) Remaining() abi.TokenAmount {
	if st.Schedule == nil {
		return big.Zero()
	}
	return big.Sub(st.Schedule.TotalAmount, st.Claimed)
}

// RecordClaim updates the bookkeeping for a withdrawal at time `now` and returns the amount
// to be paid out. A nil request withdraws everything available; otherwise the lesser of the
// request and the available amount is withdrawn.
func (st *State) RecordClaim(store adt.Store, now abi.Timestamp, requested *abi.TokenAmount) (abi.TokenAmount, error) {
	if st.Status == StatusUninitialized {
		return big.Zero(), ErrNotInitialized.Wrapf("vesting schedule not created")
	}
	if requested != nil && (requested.Nil() || requested.Sign() <= 0) {
		return big.Zero(), ErrInvalidAmount.Wrapf("requested claim must be positive, was %v", *requested)
	}

	available := st.AvailableAt(now)
	if available.Sign() <= 0 {
		return big.Zero(), ErrNothingToClaim.Wrapf("nothing to claim at %d: unlocked %v, claimed %v",
			now, st.UnlockedAt(now), st.Claimed)
	}
	amount := available
	if requested != nil {
		amount = big.Min(*requested, available)
	}

	history, err := adt.AsArray(store, st.ClaimHistory, ClaimHistoryAmtBitwidth)
	if err != nil {
		return big.Zero(), xerrors.Errorf("failed to load claim history: %w", err)
	}
	last, found, err := lastClaim(history)
	if err != nil {
		return big.Zero(), err
	}
	if found && now < last.Time {
		return big.Zero(), exitcode.ErrIllegalState.Wrapf("claim at %d precedes previous claim at %d", now, last.Time)
	}
	if err := history.AppendContinuous(&ClaimRecord{Time: now, Amount: amount}); err != nil {
		return big.Zero(), xerrors.Errorf("failed to append claim record: %w", err)
	}
	if st.ClaimHistory, err = history.Root(); err != nil {
		return big.Zero(), xerrors.Errorf("failed to flush claim history: %w", err)
	}

	st.Claimed = big.Add(st.Claimed, amount)
	if st.Claimed.Equals(st.Schedule.TotalAmount) {
		st.Status = StatusFullyClaimed
	}
	return amount, nil
}

// LastClaim returns the most recent claim record, if any.
func (st *State) LastClaim(store adt.Store) (*ClaimRecord, bool, error) {
	history, err := adt.AsArray(store, st.ClaimHistory, ClaimHistoryAmtBitwidth)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to load claim history: %w", err)
	}
	return lastClaim(history)
}

func lastClaim(history *adt.Array) (*ClaimRecord, bool, error) {
	if history.Length() == 0 {
		return nil, false, nil
	}
	var rec ClaimRecord
	found, err := history.Get(history.Length()-1, &rec)
	if err != nil {
		return nil, false, xerrors.Errorf("failed to read claim %d: %w", history.Length()-1, err)
	}
	return &rec, found, nil
}

// LoadClaimHistory reads all claim records in the order they were made.
func (st *State) LoadClaimHistory(store adt.Store) ([]ClaimRecord, error) {
	history, err := adt.AsArray(store, st.ClaimHistory, ClaimHistoryAmtBitwidth)
	if err != nil {
		return nil, xerrors.Errorf("failed to load claim history: %w", err)
	}
	records := make([]ClaimRecord, 0, history.Length())
	var rec ClaimRecord
	err = history.ForEach(&rec, func(_ int64) error {
		records = append(records, rec)
		return nil
	})
	if err != nil {
		return nil, xerrors.Errorf("failed to iterate claim history: %w", err)
	}
	return records, nil
}

// Info returns the read-only view of the escrow at a time.
func (st *State) Info(now abi.Timestamp) (*ScheduleInfo, error) {
	if st.Schedule == nil {
		return nil, ErrNotInitialized.Wrapf("vesting schedule not created")
	}
	return &ScheduleInfo{
		Beneficiary: st.Schedule.Beneficiary,
		Status:      st.Status,
		TotalAmount: st.Schedule.TotalAmount,
		StartTime:   st.Schedule.StartTime,
		Duration:    st.Schedule.Duration,
		Claimed:     st.Claimed,
		Remaining:   st.Remaining(),
		UnlockedNow: st.UnlockedAt(now),
	}, nil
}
