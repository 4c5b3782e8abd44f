package builtin_test

import (
	"io"
	"testing"

	"github.com/filecoin-project/go-state-types/cbor"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	"github.com/stretchr/testify/assert"
	cbg "github.com/whyrusleeping/cbor-gen"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

type stateMock struct{}

func (s *stateMock) MarshalCBOR(w io.Writer) error {
	if s == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}
	return nil
}

func (s *stateMock) UnmarshalCBOR(r io.Reader) error {
	*s = stateMock{}
	return nil
}

type actorMock struct{}

func (a actorMock) Exports() []interface{} {
	return []interface{}{
		builtin.MethodConstructor: a.Constructor,
	}
}

func (a actorMock) Code() cid.Cid {
	return builtin.SystemActorCodeID
}

func (a actorMock) IsSingleton() bool {
	return true
}

func (a actorMock) State() cbor.Er { return new(stateMock) }

func (a actorMock) Constructor(rt runtime.Runtime, _ *abi.EmptyValue) *abi.EmptyValue {
	rt.Log(builtin.GetActorLogLevel(a, rtt.DEBUG), "Constructor func")
	return nil
}

func TestActorLogLevel(t *testing.T) {
	actor := actorMock{}
	levels := []rtt.LogLevel{rtt.DEBUG, rtt.INFO, rtt.WARN, rtt.ERROR}

	t.Run("log with default", func(t *testing.T) {
		for _, def := range levels {
			assert.Equal(t, def, builtin.GetActorLogLevel(actor, def))
		}
	})

	t.Run("override ignores default", func(t *testing.T) {
		defer builtin.ResetActorsLogLevel(actor)
		for _, def := range levels {
			for _, set := range levels {
				builtin.SetActorsLogLevel(set, actor)
				assert.Equal(t, set, builtin.GetActorLogLevel(actor, def))
			}
		}
	})

	t.Run("reset restores default", func(t *testing.T) {
		builtin.SetActorsLogLevel(rtt.ERROR, actor)
		builtin.ResetActorsLogLevel(actor)
		assert.Equal(t, rtt.INFO, builtin.GetActorLogLevel(actor, rtt.INFO))
	})
}

func TestMessageAccumulator(t *testing.T) {
	acc := &builtin.MessageAccumulator{}
	assert.True(t, acc.IsEmpty())

	acc.Require(true, "not added")
	acc.Require(false, "claimed %d of %d", 5, 3)
	acc.Addf("status %s", "active")

	other := &builtin.MessageAccumulator{}
	other.Add("from other")
	acc.AddAll(other)

	assert.False(t, acc.IsEmpty())
	assert.Equal(t, []string{"claimed 5 of 3", "status active", "from other"}, acc.Messages())

	t.Run("prefixed accumulators share messages", func(t *testing.T) {
		acc := &builtin.MessageAccumulator{}
		claims := acc.WithPrefix("claim 1: ")
		assert.True(t, acc.IsEmpty())

		claims.Require(false, "amount %d is not positive", 0)
		claims.WithPrefix("time: ").Add("regressed")
		acc.Add("top level")

		assert.False(t, acc.IsEmpty())
		assert.False(t, claims.IsEmpty())
		assert.Equal(t, []string{"claim 1: amount 0 is not positive", "claim 1: time: regressed", "top level"}, acc.Messages())

		// the returned slice is a copy
		msgs := acc.Messages()
		msgs[0] = "changed"
		assert.Equal(t, "claim 1: amount 0 is not positive", acc.Messages()[0])
	})
}
