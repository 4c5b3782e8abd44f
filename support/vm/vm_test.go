package vm_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	vm "github.com/ledgerkit/vesting-actors/support/vm"
	tutil "github.com/ledgerkit/vesting-actors/support/testing"
)

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	v, addrs := vm.NewVMWithSingletons(ctx, t, 2, abi.NewTokenAmount(100))
	from, to := addrs[0], addrs[1]

	t.Run("value moves between accounts", func(t *testing.T) {
		_, code := v.ApplyMessage(from, to, abi.NewTokenAmount(30), builtin.MethodSend, nil)
		require.Equal(t, exitcode.Ok, code)
		assert.Equal(t, "70", v.GetBalance(from).String())
		assert.Equal(t, "130", v.GetBalance(to).String())
		assert.Equal(t, "200", v.TotalBalance().String())
	})

	t.Run("insufficient funds leave balances unchanged", func(t *testing.T) {
		root := v.StateRoot()
		_, code := v.ApplyMessage(from, to, abi.NewTokenAmount(1000), builtin.MethodSend, nil)
		assert.Equal(t, exitcode.SysErrInsufficientFunds, code)
		assert.Equal(t, root, v.StateRoot())
		assert.Equal(t, "70", v.GetBalance(from).String())
	})

	t.Run("unknown receiver", func(t *testing.T) {
		_, code := v.ApplyMessage(from, tutil.NewIDAddr(t, 9999), abi.NewTokenAmount(1), builtin.MethodSend, nil)
		assert.Equal(t, exitcode.SysErrInvalidReceiver, code)
		assert.Equal(t, "70", v.GetBalance(from).String())
	})

	t.Run("unknown sender", func(t *testing.T) {
		_, code := v.ApplyMessage(tutil.NewIDAddr(t, 9999), to, big.Zero(), builtin.MethodSend, nil)
		assert.Equal(t, exitcode.SysErrSenderInvalid, code)
	})

	t.Run("sender must be an account", func(t *testing.T) {
		_, code := v.ApplyMessage(builtin.SystemActorAddr, to, big.Zero(), builtin.MethodSend, nil)
		assert.Equal(t, exitcode.SysErrSenderInvalid, code)
	})

	t.Run("accounts expose their key", func(t *testing.T) {
		ret, code := v.ApplyMessage(from, to, big.Zero(), builtin.MethodsAccount.PubkeyAddress, nil)
		require.Equal(t, exitcode.Ok, code)
		key, ok := ret.(*address.Address)
		require.True(t, ok)
		assert.Equal(t, address.BLS, key.Protocol())
	})

	t.Run("accounts are constructed only by the system", func(t *testing.T) {
		key := tutil.NewBLSAddr(t, 7)
		_, code := v.ApplyMessage(from, to, big.Zero(), builtin.MethodsAccount.Constructor, &key)
		assert.Equal(t, exitcode.ErrForbidden, code)
	})

	t.Run("unknown method", func(t *testing.T) {
		_, code := v.ApplyMessage(from, to, big.Zero(), 99, nil)
		assert.Equal(t, exitcode.SysErrInvalidMethod, code)
	})
}

func TestClock(t *testing.T) {
	v, _ := vm.NewVMWithSingletons(context.Background(), t, 0, big.Zero())
	assert.Equal(t, abi.Timestamp(0), v.GetTime())

	require.NoError(t, v.AdvanceTime(10))
	require.NoError(t, v.AdvanceTime(10))
	assert.Equal(t, abi.Timestamp(10), v.GetTime())

	assert.Error(t, v.AdvanceTime(9))
	assert.Equal(t, abi.Timestamp(10), v.GetTime())
}

func TestCreateAccountAssignsSequentialIDs(t *testing.T) {
	v, addrs := vm.NewVMWithSingletons(context.Background(), t, 2, big.Zero())
	assert.Equal(t, tutil.NewIDAddr(t, builtin.FirstNonSingletonActorId), addrs[0])
	assert.Equal(t, tutil.NewIDAddr(t, builtin.FirstNonSingletonActorId+1), addrs[1])

	next := v.CreateAccount(t, abi.NewTokenAmount(5))
	assert.Equal(t, tutil.NewIDAddr(t, builtin.FirstNonSingletonActorId+2), next)
	assert.Equal(t, "5", v.GetBalance(next).String())

	act, found, err := v.GetActor(next)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, builtin.AccountActorCodeID, act.Code)
}

func TestAbortsAreLogged(t *testing.T) {
	v, addrs := vm.NewVMWithSingletons(context.Background(), t, 1, abi.NewTokenAmount(1))
	_, code := v.ApplyMessage(addrs[0], addrs[0], abi.NewTokenAmount(2), builtin.MethodSend, nil)
	require.Equal(t, exitcode.SysErrInsufficientFunds, code)

	logs := v.Logs()
	require.Len(t, logs, 1)
	assert.Equal(t, rtt.WARN, logs[0].Level)
	assert.Equal(t, addrs[0], logs[0].Actor)
	assert.Contains(t, logs[0].Msg, "insufficient balance")
	assert.Empty(t, v.Events())
}
