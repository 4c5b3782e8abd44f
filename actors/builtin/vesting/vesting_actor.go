package vesting

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	cid "github.com/ipfs/go-cid"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
)

// Vesting actor exit codes.
const (
	ErrInvalidAmount = exitcode.FirstActorSpecificExitCode + iota
	ErrInvalidDuration
	ErrTimeOverflow
	ErrAlreadyInitialized
	ErrNotInitialized
	ErrNothingToClaim
	ErrTransferFailed
)

// Raised by caller validation when a claim comes from anyone but the beneficiary.
const ErrUnauthorized = exitcode.ErrForbidden

type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
		2:                         a.Create,
		3:                         a.Claim,
		4:                         a.GetSchedule,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.VestingActorCodeID
}

func (a Actor) IsSingleton() bool {
	return false
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

// Constructor deploys an uninitialized escrow. The terms are supplied later by Create.
func (a Actor) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	st, err := ConstructState(adt.AsStore(rt))
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to construct state")
	rt.StateCreate(st)
	return nil
}

type CreateParams struct {
	Beneficiary addr.Address
	TotalAmount abi.TokenAmount
	StartTime   abi.Timestamp
	Duration    abi.Duration
}

// Create records the escrow terms, with the caller as grantor. The grantor must attach
// exactly TotalAmount as the message value; the host credits it to this actor's balance
// before invocation and returns it if the method aborts.
func (a Actor) Create(rt runtime.Runtime, params *CreateParams) *abi.EmptyValue {
	rt.ValidateImmediateCallerAcceptAny()

	sched := Schedule{
		Grantor:     rt.Caller(),
		Beneficiary: params.Beneficiary,
		TotalAmount: params.TotalAmount,
		StartTime:   params.StartTime,
		Duration:    params.Duration,
	}

	var st State
	rt.StateTransaction(&st, func() {
		err := st.Initialize(sched)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalArgument, "failed to create vesting schedule")

		if deposit := rt.ValueReceived(); !deposit.Equals(sched.TotalAmount) {
			rt.Abortf(ErrTransferFailed, "deposit %v does not match vesting amount %v", deposit, sched.TotalAmount)
		}
	})

	rt.EmitEvent(&VestingCreatedEvent{
		Beneficiary: sched.Beneficiary,
		Amount:      sched.TotalAmount,
		StartTime:   sched.StartTime,
		Duration:    sched.Duration,
	})
	rt.Log(builtin.GetActorLogLevel(a, rtt.INFO), "vesting %v to %v from %d until %d",
		sched.TotalAmount, sched.Beneficiary, sched.StartTime, sched.EndTime())
	return nil
}

type ClaimParams struct {
	// Amount to withdraw. If nil, everything unlocked and unclaimed is withdrawn.
	Amount *abi.TokenAmount
}

type ClaimReturn struct {
	AmountClaimed abi.TokenAmount
	Remaining     abi.TokenAmount
}

// Claim pays the beneficiary from escrow up to the amount unlocked so far.
func (a Actor) Claim(rt runtime.Runtime, params *ClaimParams) *ClaimReturn {
	var st State
	rt.StateReadonly(&st)
	if st.Status == StatusUninitialized {
		rt.Abortf(ErrNotInitialized, "vesting schedule not created")
	}
	rt.ValidateImmediateCallerIs(st.Schedule.Beneficiary)

	now := rt.CurrTime()
	var amount, remaining abi.TokenAmount
	var beneficiary addr.Address
	rt.StateTransaction(&st, func() {
		var err error
		amount, err = st.RecordClaim(adt.AsStore(rt), now, params.Amount)
		builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to claim")
		remaining = st.Remaining()
		beneficiary = st.Schedule.Beneficiary
	})
	builtin.RequireState(rt, amount.Sign() > 0, "claim recorded non-positive amount %v", amount)

	// The transfer happens after the bookkeeping is committed to the transaction, and its
	// failure aborts the whole method, so the claimed amount is never paid twice.
	code := rt.Send(beneficiary, builtin.MethodSend, nil, amount, &builtin.Discard{})
	if !code.IsSuccess() {
		rt.Abortf(ErrTransferFailed, "failed to send %v to beneficiary %v: exit code %v", amount, beneficiary, code)
	}

	rt.EmitEvent(&TokensClaimedEvent{
		Beneficiary:   beneficiary,
		AmountClaimed: amount,
		Remaining:     remaining,
	})
	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "claimed %v at %d, %v remaining", amount, now, remaining)
	return &ClaimReturn{
		AmountClaimed: amount,
		Remaining:     remaining,
	}
}

// GetSchedule returns the current terms and balances of the escrow without modifying it.
func (a Actor) GetSchedule(rt runtime.Runtime, _ *abi.EmptyValue) *ScheduleInfo {
	rt.ValidateImmediateCallerAcceptAny()

	var st State
	rt.StateReadonly(&st)
	info, err := st.Info(rt.CurrTime())
	builtin.RequireNoErr(rt, err, exitcode.ErrIllegalState, "failed to read vesting schedule")
	return info
}
