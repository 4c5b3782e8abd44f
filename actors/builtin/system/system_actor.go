package system

import (
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/ipfs/go-cid"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

// The system actor is the sender of host-initiated messages such as actor deployment.
type Actor struct{}

func (a Actor) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
	}
}

func (a Actor) Code() cid.Cid {
	return builtin.SystemActorCodeID
}

func (a Actor) IsSingleton() bool {
	return true
}

func (a Actor) State() cbor.Er {
	return new(State)
}

var _ runtime.VMActor = Actor{}

type State struct{}

func (a Actor) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.ValidateImmediateCallerIs(builtin.SystemActorAddr)

	rt.StateCreate(&State{})
	return nil
}
