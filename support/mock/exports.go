package mock

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

// CheckActorExports checks that every exported method of an actor has a signature the runtime can dispatch.
func CheckActorExports(t *testing.T, act runtime.VMActor) {
	for i, m := range act.Exports() {
		if i == 0 { // Send is implicit
			assert.Nil(t, m, "method 0 is reserved for send")
			continue
		}
		if m == nil {
			continue
		}
		mt := reflect.TypeOf(m)
		assert.Equal(t, reflect.Func, mt.Kind(), "method %d is not a function", i)
		if mt.Kind() != reflect.Func {
			continue
		}
		assert.Equal(t, 2, mt.NumIn(), "method %d must take a runtime and params", i)
		assert.Equal(t, 1, mt.NumOut(), "method %d must return a single value", i)
		if mt.NumIn() != 2 || mt.NumOut() != 1 {
			continue
		}
		assert.Equal(t, typeOfRuntimeInterface, mt.In(0), "method %d first parameter must be runtime", i)
		assert.Equal(t, reflect.Ptr, mt.In(1).Kind(), "method %d params must be a pointer", i)
		assert.True(t, mt.In(1).Implements(typeOfCborUnmarshaler), "method %d params must be CBOR-unmarshalable", i)
		assert.True(t, mt.Out(0).Implements(typeOfCborMarshaler), "method %d return must be CBOR-marshalable", i)
	}
}
