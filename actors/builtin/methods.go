package builtin

import (
	abi "github.com/ledgerkit/vesting-actors/actors/abi"
)

const (
	MethodSend        = abi.MethodNum(0)
	MethodConstructor = abi.MethodNum(1)
)

var MethodsAccount = struct {
	Constructor   abi.MethodNum
	PubkeyAddress abi.MethodNum
}{MethodConstructor, 2}

var MethodsVesting = struct {
	Constructor abi.MethodNum
	Create      abi.MethodNum
	Claim       abi.MethodNum
	GetSchedule abi.MethodNum
}{MethodConstructor, 2, 3, 4}
