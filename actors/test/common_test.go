package test

import (
	"testing"

	addr "github.com/filecoin-project/go-address"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/builtin/vesting"
	"github.com/ledgerkit/vesting-actors/support/vm"
)

func createVesting(t *testing.T, v *vm.VM, escrow, grantor, beneficiary addr.Address, total abi.TokenAmount, start abi.Timestamp, duration abi.Duration) {
	params := vesting.CreateParams{
		Beneficiary: beneficiary,
		TotalAmount: total,
		StartTime:   start,
		Duration:    duration,
	}
	vm.ApplyOk(t, v, grantor, escrow, total, builtin.MethodsVesting.Create, &params)
}

func claim(t *testing.T, v *vm.VM, escrow, beneficiary addr.Address, requested *abi.TokenAmount) *vesting.ClaimReturn {
	ret := vm.ApplyOk(t, v, beneficiary, escrow, abi.NewTokenAmount(0), builtin.MethodsVesting.Claim, &vesting.ClaimParams{Amount: requested})
	claimRet, ok := ret.(*vesting.ClaimReturn)
	require.True(t, ok)
	return claimRet
}

func getSchedule(t *testing.T, v *vm.VM, escrow, caller addr.Address) *vesting.ScheduleInfo {
	ret := vm.ApplyOk(t, v, caller, escrow, abi.NewTokenAmount(0), builtin.MethodsVesting.GetSchedule, nil)
	info, ok := ret.(*vesting.ScheduleInfo)
	require.True(t, ok)
	return info
}

func vestingState(t *testing.T, v *vm.VM, escrow addr.Address) *vesting.State {
	var st vesting.State
	require.NoError(t, v.GetState(escrow, &st))
	return &st
}

// checkVestingInvariants asserts the escrow's state is consistent with its balance at the current time.
func checkVestingInvariants(t *testing.T, v *vm.VM, escrow addr.Address) *vesting.StateSummary {
	st := vestingState(t, v, escrow)
	summary, msgs, err := vesting.CheckStateInvariants(st, v.Store(), v.GetBalance(escrow), v.GetTime())
	require.NoError(t, err)
	assert.True(t, msgs.IsEmpty(), "%v", msgs.Messages())
	return summary
}

func advanceTime(t *testing.T, v *vm.VM, to abi.Timestamp) {
	require.NoError(t, v.AdvanceTime(to))
}
