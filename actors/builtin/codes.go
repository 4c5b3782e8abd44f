package builtin

import (
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// The built-in actor code IDs
var SystemActorCodeID cid.Cid
var AccountActorCodeID cid.Cid
var VestingActorCodeID cid.Cid

// Set of actor code types that can represent external signing parties.
var CallerTypesSignable []cid.Cid

var builtinActorNames = map[cid.Cid]string{}

func init() {
	builder := cid.V1Builder{Codec: cid.Raw, MhType: mh.IDENTITY}
	makeBuiltin := func(s string) cid.Cid {
		c, err := builder.Sum([]byte(s))
		if err != nil {
			panic(err)
		}
		builtinActorNames[c] = s
		return c
	}

	SystemActorCodeID = makeBuiltin("ledger/1/system")
	AccountActorCodeID = makeBuiltin("ledger/1/account")
	VestingActorCodeID = makeBuiltin("ledger/1/vesting")

	CallerTypesSignable = []cid.Cid{AccountActorCodeID}
}

// ActorNameByCode returns the (string) name of the actor given a cid code.
// When the actor code is not a builtin code, it returns "<unknown>".
func ActorNameByCode(code cid.Cid) string {
	if name, ok := builtinActorNames[code]; ok {
		return name
	}
	return "<unknown>"
}

// IsBuiltinActor tests whether a code CID represents a builtin actor.
func IsBuiltinActor(code cid.Cid) bool {
	_, ok := builtinActorNames[code]
	return ok
}
