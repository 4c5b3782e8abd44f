package vm

import (
	"bytes"
	"context"
	"fmt"
	"reflect"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
)

// Context for a top-level invocation sequence.
type topLevelContext struct {
	// Events staged by this message and its sub-calls, committed only if the message succeeds.
	events []EmittedEvent
}

// Context for an individual message invocation, including inter-actor sends.
type invocationContext struct {
	rt               *VM
	topLevel         *topLevelContext
	msg              internalMessage // The message being processed
	emptyObject      cid.Cid
	allowSideEffects bool
	callerValidated  bool
}

func newInvocationContext(rt *VM, topLevel *topLevelContext, msg internalMessage, emptyObject cid.Cid) invocationContext {
	return invocationContext{
		rt:               rt,
		topLevel:         topLevel,
		msg:              msg,
		emptyObject:      emptyObject,
		allowSideEffects: true,
		callerValidated:  false,
	}
}

var _ runtime.StateHandle = (*invocationContext)(nil)

func (ic *invocationContext) loadState(obj cbor.Unmarshaler) cid.Cid {
	// The returned CID may be used to check that the state hasn't been modified.
	c := ic.actor().Head
	if !c.Defined() {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to load undefined state, must construct first")
	}
	err := ic.rt.store.Get(ic.rt.ctx, c, obj)
	if err != nil {
		panic(fmt.Errorf("failed to load state for actor %s, CID %s: %w", ic.msg.to, c, err))
	}
	return c
}

func (ic *invocationContext) putState(obj cbor.Marshaler) {
	c, err := ic.rt.store.Put(ic.rt.ctx, obj)
	if err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to store state: %s", err)
	}
	act := ic.actor()
	act.Head = c
	if err := ic.rt.setActor(ic.msg.to, act); err != nil {
		panic(err)
	}
}

// actor reloads the receiver from the actor table, picking up balance changes made by sub-calls.
func (ic *invocationContext) actor() *LedgerActor {
	act, found, err := ic.rt.GetActor(ic.msg.to)
	if err != nil {
		panic(err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrorIllegalActor, "receiver %v no longer exists", ic.msg.to)
	}
	return act
}

/////////////////////////////////////////////
//          Runtime methods
/////////////////////////////////////////////

var _ runtime.Runtime = (*invocationContext)(nil)

// Store implementation
func (ic *invocationContext) StoreGet(c cid.Cid, o cbor.Unmarshaler) bool {
	if err := ic.rt.store.Get(ic.rt.ctx, c, o); err != nil {
		// assume no error is because not found
		return false
	}
	return true
}

func (ic *invocationContext) StorePut(x cbor.Marshaler) cid.Cid {
	c, err := ic.rt.store.Put(ic.rt.ctx, x)
	if err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to put object in store: %s", err)
	}
	return c
}

// Message implementation
func (ic *invocationContext) Caller() address.Address {
	return ic.msg.Caller()
}

func (ic *invocationContext) Receiver() address.Address {
	return ic.msg.Receiver()
}

func (ic *invocationContext) ValueReceived() abi.TokenAmount {
	return ic.msg.ValueReceived()
}

// StateHandle implementation
func (ic *invocationContext) StateCreate(obj cbor.Marshaler) {
	if !ic.actor().Head.Equals(ic.emptyObject) {
		ic.Abortf(exitcode.SysErrorIllegalActor, "failed to construct state: already initialized")
	}
	ic.putState(obj)
}

func (ic *invocationContext) StateReadonly(obj cbor.Unmarshaler) {
	ic.loadState(obj)
}

func (ic *invocationContext) StateTransaction(obj cbor.Er, f func()) {
	if obj == nil {
		ic.Abortf(exitcode.SysErrorIllegalActor, "Must not pass nil to Transaction()")
	}

	// load state from storage
	ic.loadState(obj)

	// Make the transaction
	ic.allowSideEffects = false
	f()
	ic.allowSideEffects = true

	ic.putState(obj)
}

func (ic *invocationContext) CurrTime() abi.Timestamp {
	return ic.rt.currentTime
}

func (ic *invocationContext) ValidateImmediateCallerAcceptAny() {
	ic.assertf(!ic.callerValidated, "caller has been double validated")
	ic.callerValidated = true
}

func (ic *invocationContext) ValidateImmediateCallerIs(addrs ...address.Address) {
	ic.assertf(!ic.callerValidated, "caller has been double validated")
	ic.callerValidated = true
	for _, a := range addrs {
		if a == ic.msg.from {
			return
		}
	}
	ic.Abortf(exitcode.ErrForbidden, "caller %s is not one of supported", ic.msg.from)
}

func (ic *invocationContext) CurrentBalance() abi.TokenAmount {
	return ic.actor().Balance
}

func (ic *invocationContext) Send(toAddr address.Address, methodNum abi.MethodNum, params cbor.Marshaler, value abi.TokenAmount, out cbor.Er) exitcode.ExitCode {
	// check if side-effects are allowed
	if !ic.allowSideEffects {
		ic.Abortf(exitcode.SysErrorIllegalActor, "Calling Send() is not allowed during side-effect lock")
	}
	if code, ok := ic.rt.sendFailures[toAddr]; ok {
		ic.rt.log(ic.msg.to, rtt.WARN, "send to %v failed by injection with exit code %v", toAddr, code)
		return code
	}

	// build internal message
	newMsg := internalMessage{
		from:   ic.msg.to,
		to:     toAddr,
		value:  value,
		method: methodNum,
		params: params,
	}

	newCtx := newInvocationContext(ic.rt, ic.topLevel, newMsg, ic.emptyObject)
	ret, code := newCtx.invoke()

	if code.IsSuccess() && ret.inner != nil && out != nil {
		if err := ret.Into(out); err != nil {
			ic.Abortf(exitcode.ErrSerialization, "failed to unmarshal return value: %s", err)
		}
	}
	return code
}

func (ic *invocationContext) EmitEvent(evt runtime.Event) {
	if !ic.allowSideEffects {
		ic.Abortf(exitcode.SysErrorIllegalActor, "Calling EmitEvent() is not allowed during side-effect lock")
	}
	var buf bytes.Buffer
	if err := evt.MarshalCBOR(&buf); err != nil {
		ic.Abortf(exitcode.ErrSerialization, "failed to marshal %s event: %s", evt.Type(), err)
	}
	ic.topLevel.events = append(ic.topLevel.events, EmittedEvent{
		Emitter: ic.msg.to,
		Type:    evt.Type(),
		Topic:   evt.Topic(),
		Data:    buf.Bytes(),
	})
}

func (ic *invocationContext) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	ic.rt.Abortf(errExitCode, msg, args...)
}

func (ic *invocationContext) Context() context.Context {
	return ic.rt.ctx
}

func (ic *invocationContext) Log(level rtt.LogLevel, msg string, args ...interface{}) {
	ic.rt.log(ic.msg.to, level, msg, args...)
}

// Starts a new invocation.
func (ic *invocationContext) invoke() (ret returnWrapper, errcode exitcode.ExitCode) {
	// Checkpoint state, for restoration on rollback
	priorRoot, err := ic.rt.checkpoint()
	if err != nil {
		panic(err)
	}
	eventMark := len(ic.topLevel.events)

	// Install handler for abort, which rolls back all state changes from this and any nested invocations.
	// This is the only path by which a non-OK exit code may be returned.
	defer func() {
		if r := recover(); r != nil {
			a, ok := r.(abort)
			if !ok {
				panic(r)
			}
			if err := ic.rt.rollback(priorRoot); err != nil {
				panic(err)
			}
			ic.topLevel.events = ic.topLevel.events[:eventMark]
			ic.rt.log(ic.msg.to, rtt.WARN, "method %d from %v aborted: %s", ic.msg.method, ic.msg.from, a)
			ret = returnWrapper{nil}
			errcode = a.code
		}
	}()

	// pre-dispatch
	// 1. credit the receiver with the value of the message
	// 2. load the receiver actor
	// 3. short-circuit _Send_ method
	// 4. load target actor code
	// 5. dispatch the method

	if ic.msg.value.GreaterThan(big.Zero()) {
		ic.rt.transfer(ic.msg.from, ic.msg.to, ic.msg.value)
	} else if ic.msg.value.LessThan(big.Zero()) {
		ic.Abortf(exitcode.SysErrForbidden, "attempt to transfer negative value %s from %s to %s",
			ic.msg.value, ic.msg.from, ic.msg.to)
	}

	toActor, found, err := ic.rt.GetActor(ic.msg.to)
	if err != nil {
		panic(err)
	}
	if !found {
		ic.Abortf(exitcode.SysErrInvalidReceiver, "actor %s does not exist", ic.msg.to)
	}

	// 3. if we are just sending funds, there is nothing else to do.
	if ic.msg.method == builtin.MethodSend {
		return returnWrapper{abi.Empty}, exitcode.Ok
	}

	// 4. load actor code
	actorImpl := ic.rt.getActorImpl(toActor.Code)

	// 5. dispatch method
	ret = ic.dispatch(actorImpl, ic.msg.method, ic.msg.params)

	// post-dispatch
	// 1. check caller was validated
	if !ic.callerValidated {
		ic.rt.Abortf(exitcode.SysErrorIllegalActor, "Caller MUST be validated during method execution")
	}

	// 2. success!
	return ret, exitcode.Ok
}

var typeOfRuntimeInterface = reflect.TypeOf((*runtime.Runtime)(nil)).Elem()
var typeOfCborUnmarshaler = reflect.TypeOf((*cbor.Unmarshaler)(nil)).Elem()
var typeOfCborMarshaler = reflect.TypeOf((*cbor.Marshaler)(nil)).Elem()

// dispatch looks up the exported method, decodes the params into its parameter type and calls it.
// Params always pass through CBOR so the method sees exactly what would arrive over the wire.
func (ic *invocationContext) dispatch(actor runtime.VMActor, method abi.MethodNum, arg interface{}) returnWrapper {
	exports := actor.Exports()
	if uint64(method) >= uint64(len(exports)) || exports[method] == nil {
		ic.rt.Abortf(exitcode.SysErrInvalidMethod, "method undefined. method: %d, exports %d", method, len(exports))
	}

	meth := reflect.ValueOf(exports[method])
	t := meth.Type()
	if t.NumIn() != 2 || t.In(0) != typeOfRuntimeInterface || t.In(1).Kind() != reflect.Ptr ||
		!t.In(1).Implements(typeOfCborUnmarshaler) || t.NumOut() != 1 || !t.Out(0).Implements(typeOfCborMarshaler) {
		ic.rt.Abortf(exitcode.SysErrorIllegalActor, "method %d of %s has an invalid signature %v",
			method, builtin.ActorNameByCode(actor.Code()), t)
	}

	var encoded bytes.Buffer
	switch p := arg.(type) {
	case nil:
		_ = abi.Empty.MarshalCBOR(&encoded)
	case cbor.Marshaler:
		if err := p.MarshalCBOR(&encoded); err != nil {
			ic.rt.Abortf(exitcode.ErrSerialization, "failed to marshal params: %s", err)
		}
	case []byte:
		_ = runtime.CBORBytes(p).MarshalCBOR(&encoded)
	default:
		ic.rt.Abortf(exitcode.ErrSerialization, "params of type %T are not CBOR-marshalable", arg)
	}

	param := reflect.New(t.In(1).Elem())
	if err := param.Interface().(cbor.Unmarshaler).UnmarshalCBOR(&encoded); err != nil {
		ic.rt.Abortf(exitcode.ErrSerialization, "failed to decode params for method %d: %s", method, err)
	}

	out := meth.Call([]reflect.Value{reflect.ValueOf(ic), param})
	return returnWrapper{out[0].Interface().(cbor.Marshaler)}
}

// assertf panics with a non-abort error, escaping the VM: the actor code is broken, not the message.
func (ic *invocationContext) assertf(condition bool, msg string, args ...interface{}) {
	if !condition {
		panic(fmt.Errorf(msg, args...))
	}
}

type returnWrapper struct {
	inner cbor.Marshaler
}

func (r returnWrapper) Into(o cbor.Unmarshaler) error {
	if r.inner == nil {
		return fmt.Errorf("failed to unmarshal nil return (did you mean abi.Empty?)")
	}
	b := bytes.Buffer{}
	if err := r.inner.MarshalCBOR(&b); err != nil {
		return err
	}
	return o.UnmarshalCBOR(&b)
}
