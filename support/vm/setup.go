package vm

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/require"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/builtin/account"
	"github.com/ledgerkit/vesting-actors/actors/builtin/system"
	"github.com/ledgerkit/vesting-actors/actors/builtin/vesting"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
	"github.com/ledgerkit/vesting-actors/support/ipld"
	tutil "github.com/ledgerkit/vesting-actors/support/testing"
)

// Token base unit multiplier used to fund test accounts.
var Tokens = builtin.TokenPrecision

// BuiltinActors returns the actor implementations the VM can dispatch to.
func BuiltinActors() []runtime.VMActor {
	return []runtime.VMActor{
		system.Actor{},
		account.Actor{},
		vesting.Actor{},
	}
}

// NewVMWithSingletons creates a new VM holding the system actor and a number of funded accounts.
func NewVMWithSingletons(ctx context.Context, t testing.TB, accounts int, balance abi.TokenAmount) (*VM, []address.Address) {
	store := ipld.NewADTStore(ctx)

	lookup := ActorImplLookup{}
	for _, ba := range BuiltinActors() {
		lookup[ba.Code()] = ba
	}

	vm := NewVM(ctx, lookup, store)
	initializeActor(t, vm, builtin.SystemActorCodeID, builtin.SystemActorAddr, big.Zero())
	_, code := vm.apply(builtin.SystemActorAddr, builtin.SystemActorAddr, big.Zero(), builtin.MethodConstructor, nil)
	require.Equal(t, exitcode.Ok, code, "system constructor failed")

	addrs := make([]address.Address, accounts)
	for i := range addrs {
		addrs[i] = vm.CreateAccount(t, balance)
	}

	_, err := vm.commit()
	require.NoError(t, err)
	return vm, addrs
}

// CreateAccount adds an account actor with the given balance at the next free ID address,
// controlled by a BLS key derived from the ID.
func (vm *VM) CreateAccount(t testing.TB, balance abi.TokenAmount) address.Address {
	a := vm.nextIDAddress(t)
	id, err := address.IDFromAddress(a)
	require.NoError(t, err)
	key := tutil.NewBLSAddr(t, int64(id))

	initializeActor(t, vm, builtin.AccountActorCodeID, a, balance)
	_, code := vm.apply(builtin.SystemActorAddr, a, big.Zero(), builtin.MethodConstructor, &key)
	require.Equal(t, exitcode.Ok, code, "account constructor failed")
	return a
}

// DeployVesting creates an unfunded vesting escrow at the next free ID address and runs its constructor
// as the system actor.
func (vm *VM) DeployVesting(t testing.TB) address.Address {
	a := vm.nextIDAddress(t)
	initializeActor(t, vm, builtin.VestingActorCodeID, a, big.Zero())

	_, code := vm.apply(builtin.SystemActorAddr, a, big.Zero(), builtin.MethodsVesting.Constructor, nil)
	require.Equal(t, exitcode.Ok, code, "vesting constructor failed")
	return a
}

func (vm *VM) nextIDAddress(t testing.TB) address.Address {
	a, err := address.NewIDAddress(uint64(vm.nextID))
	require.NoError(t, err)
	vm.nextID++
	return a
}

func initializeActor(t testing.TB, vm *VM, code cid.Cid, a address.Address, balance abi.TokenAmount) {
	require.True(t, builtin.IsBuiltinActor(code), "unknown actor code %v", code)
	actor := &LedgerActor{
		Head:    vm.emptyObject,
		Code:    code,
		Balance: balance,
	}
	err := vm.setActor(a, actor)
	require.NoError(t, err)
}

// ApplyOk applies a message and requires it to succeed, returning the method's return value.
func ApplyOk(t testing.TB, v *VM, from, to address.Address, value abi.TokenAmount, method abi.MethodNum, params interface{}) cbor.Marshaler {
	return ApplyCode(t, v, from, to, value, method, params, exitcode.Ok)
}

// ApplyCode applies a message and requires it to exit with the given code.
func ApplyCode(t testing.TB, v *VM, from, to address.Address, value abi.TokenAmount, method abi.MethodNum, params interface{}, code exitcode.ExitCode) cbor.Marshaler {
	ret, actual := v.ApplyMessage(from, to, value, method, params)
	require.Equal(t, code, actual, "unexpected exit code for method %d on %v", method, to)
	return ret
}
