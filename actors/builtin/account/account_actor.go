package account

import (
	addr "github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/ipfs/go-cid"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

// An account is a party controlled by a key held outside the ledger: the grantor and
// beneficiary of an escrow are accounts.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		1: a.Constructor,
		2: a.PubkeyAddress,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.AccountActorCodeID
}

func (a Actor) State() cbor.Er {
	return new(State)
}

func (a Actor) IsSingleton() bool {
	return false
}

var _ runtime.VMActor = Actor{}

type State struct {
	Address addr.Address
}

func (a Actor) Constructor(rt runtime.Runtime, address *addr.Address) *abi.EmptyValue {
	// Accounts are created by the host, never by another actor.
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)
	builtin.RequireParam(rt, address.Protocol() == addr.SECP256K1 || address.Protocol() == addr.BLS,
		"address must use BLS or SECP protocol, got %v", address.Protocol())
	st := State{Address: *address}
	rt.StateCreate(&st)
	return nil
}

// Fetches the pubkey-type address from this actor.
func (a Actor) PubkeyAddress(rt runtime.Runtime, _ *abi.EmptyValue) *addr.Address {
	rt.ValidateImmediateCallerAcceptAny()
	var st State
	rt.StateReadonly(&st)
	return &st.Address
}
