package vesting

import (
	addr "github.com/filecoin-project/go-address"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

const (
	EventTypeVestingCreated = "vesting_created"
	EventTypeTokensClaimed  = "tokens_claimed"
)

// VestingCreatedEvent is emitted once, when the grantor funds the escrow.
type VestingCreatedEvent struct {
	Beneficiary addr.Address
	Amount      abi.TokenAmount
	StartTime   abi.Timestamp
	Duration    abi.Duration
}

func (e *VestingCreatedEvent) Type() string         { return EventTypeVestingCreated }
func (e *VestingCreatedEvent) Topic() addr.Address { return e.Beneficiary }

// TokensClaimedEvent is emitted for every successful claim.
type TokensClaimedEvent struct {
	Beneficiary   addr.Address
	AmountClaimed abi.TokenAmount
	Remaining     abi.TokenAmount
}

func (e *TokensClaimedEvent) Type() string         { return EventTypeTokensClaimed }
func (e *TokensClaimedEvent) Topic() addr.Address { return e.Beneficiary }

var _ runtime.Event = (*VestingCreatedEvent)(nil)
var _ runtime.Event = (*TokensClaimedEvent)(nil)
