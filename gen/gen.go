package main

import (
	gen "github.com/whyrusleeping/cbor-gen"

	account "github.com/ledgerkit/vesting-actors/actors/builtin/account"
	system "github.com/ledgerkit/vesting-actors/actors/builtin/system"
	vesting "github.com/ledgerkit/vesting-actors/actors/builtin/vesting"
	vm "github.com/ledgerkit/vesting-actors/support/vm"
)

func main() {
	// Actors
	if err := gen.WriteTupleEncodersToFile("./actors/builtin/system/cbor_gen.go", "system",
		// actor state
		system.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/account/cbor_gen.go", "account",
		// actor state
		account.State{},
	); err != nil {
		panic(err)
	}

	if err := gen.WriteTupleEncodersToFile("./actors/builtin/vesting/cbor_gen.go", "vesting",
		// actor state
		vesting.State{},
		vesting.Schedule{},
		vesting.ClaimRecord{},
		// method params and returns
		vesting.CreateParams{},
		vesting.ClaimParams{},
		vesting.ClaimReturn{},
		vesting.ScheduleInfo{},
		// events
		vesting.VestingCreatedEvent{},
		vesting.TokensClaimedEvent{},
	); err != nil {
		panic(err)
	}

	// Test harness
	if err := gen.WriteTupleEncodersToFile("./support/vm/cbor_gen.go", "vm",
		vm.LedgerActor{},
	); err != nil {
		panic(err)
	}
}
