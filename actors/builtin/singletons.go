package builtin

import (
	addr "github.com/filecoin-project/go-address"
	autil "github.com/ledgerkit/vesting-actors/actors/util"
)

// Addresses for singleton system actors.
var (
	// The system actor is the caller of actor constructors.
	SystemActorAddr = mustMakeAddress(0)
)

const FirstNonSingletonActorId = 100

func mustMakeAddress(id uint64) addr.Address {
	address, err := addr.NewIDAddress(id)
	autil.AssertMsg(err == nil, "failed to make ID address %d: %v", id, err)
	return address
}
