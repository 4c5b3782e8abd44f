package abi

import (
	"math/big"
	"strconv"

	stabi "github.com/filecoin-project/go-state-types/abi"
	stbig "github.com/filecoin-project/go-state-types/big"
)

// The abi package contains definitions of all types that cross the VM boundary and are used
// within actor code.
//
// Types shared with the wider ecosystem are aliased from go-state-types so that values flow
// between this module and other tooling without conversion.

// Ledger time in seconds since the unix epoch, as supplied by the host.
// Actor code must never take a timestamp from message parameters as the current time.
type Timestamp uint64

func (t Timestamp) String() string {
	return strconv.FormatUint(uint64(t), 10)
}

// Add returns t+d and whether the sum is representable.
func (t Timestamp) Add(d Duration) (Timestamp, bool) {
	end := t + Timestamp(d)
	return end, end >= t
}

// A span of ledger time in seconds.
type Duration uint64

func (d Duration) String() string {
	return strconv.FormatUint(uint64(d), 10)
}

// A sequential number assigned to an actor by the host. This ID is embedded in ID-type addresses.
type ActorID = stabi.ActorID

// MethodNum is an integer that represents a particular method in an actor's function table.
type MethodNum = stabi.MethodNum

// TokenAmount is an amount of the escrowed asset.
//
// BigInt types are aliases rather than new types because the latter introduce incredible amounts of noise converting to
// and from types in order to manipulate values. We give up some type safety for ergonomics.
type TokenAmount = stbig.Int

func NewTokenAmount(t int64) TokenAmount {
	return stbig.NewInt(t)
}

// NewTokenAmountFromUint64 converts an unsigned quantity without passing through int64.
func NewTokenAmountFromUint64(t uint64) TokenAmount {
	return stbig.Int{Int: new(big.Int).SetUint64(t)}
}

