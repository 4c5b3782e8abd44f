package vm

import (
	"bytes"
	"context"
	"fmt"

	"github.com/filecoin-project/go-address"
	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/cbor"
	"github.com/filecoin-project/go-state-types/exitcode"
	rtt "github.com/filecoin-project/go-state-types/rt"
	"github.com/ipfs/go-cid"
	"github.com/pkg/errors"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin"
	"github.com/ledgerkit/vesting-actors/actors/runtime"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
)

// VM holds the state and executes messages over the state.
type VM struct {
	ctx   context.Context
	store adt.Store

	currentTime abi.Timestamp
	nextID      abi.ActorID

	actorImpls  ActorImplLookup
	actorRoot   cid.Cid  // The last committed root.
	actors      *adt.Map // The current (not necessarily committed) root node.
	actorsDirty bool

	emptyObject cid.Cid

	// Committed events, in order of emission, and their positions by topic.
	events     []EmittedEvent
	eventIndex map[address.Address][]int

	// Exit codes returned in place of executing sends to an address.
	sendFailures map[address.Address]exitcode.ExitCode

	logs []LogLine
}

// VM types

// LedgerActor is an entry in the actor table.
type LedgerActor struct {
	Head    cid.Cid
	Code    cid.Cid
	Balance abi.TokenAmount
}

type ActorImplLookup map[cid.Cid]runtime.VMActor

// EmittedEvent is a committed entry in the event log.
type EmittedEvent struct {
	Emitter address.Address
	Type    string
	Topic   address.Address
	// CBOR encoding of the event.
	Data []byte
}

// Decode unmarshals the event payload into out.
func (e EmittedEvent) Decode(out cbor.Unmarshaler) error {
	return out.UnmarshalCBOR(bytes.NewReader(e.Data))
}

type LogLine struct {
	Actor address.Address
	Level rtt.LogLevel
	Msg   string
}

type internalMessage struct {
	from   address.Address
	to     address.Address
	value  abi.TokenAmount
	method abi.MethodNum
	params interface{}
}

// NewVM creates a new runtime for executing messages.
func NewVM(ctx context.Context, actorImpls ActorImplLookup, store adt.Store) *VM {
	actors, err := adt.MakeEmptyMap(store)
	if err != nil {
		panic(err)
	}
	actorRoot, err := actors.Root()
	if err != nil {
		panic(err)
	}

	emptyObject, err := store.Put(ctx, []struct{}{})
	if err != nil {
		panic("could not create empty object")
	}

	return &VM{
		ctx:          ctx,
		actorImpls:   actorImpls,
		store:        store,
		actors:       actors,
		actorRoot:    actorRoot,
		actorsDirty:  false,
		emptyObject:  emptyObject,
		nextID:       abi.ActorID(builtin.FirstNonSingletonActorId),
		eventIndex:   make(map[address.Address][]int),
		sendFailures: make(map[address.Address]exitcode.ExitCode),
	}
}

func (vm *VM) rollback(root cid.Cid) error {
	var err error
	vm.actors, err = adt.AsMap(vm.store, root)
	if err != nil {
		return errors.Wrapf(err, "failed to load node for %s", root)
	}

	// reset the root node
	vm.actorRoot = root
	vm.actorsDirty = false
	return nil
}

func (vm *VM) GetActor(a address.Address) (*LedgerActor, bool, error) {
	var act LedgerActor
	found, err := vm.actors.Get(adt.AddrKey(a), &act)
	return &act, found, err
}

// setActor sets the actor to the given value whether it previously existed or not.
func (vm *VM) setActor(key address.Address, a *LedgerActor) error {
	if err := vm.actors.Put(adt.AddrKey(key), a); err != nil {
		return errors.Wrap(err, "setting actor in state tree failed")
	}
	vm.actorsDirty = true
	return nil
}

func (vm *VM) checkpoint() (cid.Cid, error) {
	return vm.commit()
}

func (vm *VM) commit() (cid.Cid, error) {
	// commit the vm state
	root, err := vm.actors.Root()
	if err != nil {
		return cid.Undef, err
	}
	vm.actorRoot = root
	vm.actorsDirty = false

	return root, nil
}

// StateRoot returns the root of the actor table as of the last committed message.
func (vm *VM) StateRoot() cid.Cid {
	return vm.actorRoot
}

// ApplyMessage applies the message to the current state. On any failure all state changes and events
// of the message are discarded.
func (vm *VM) ApplyMessage(from, to address.Address, value abi.TokenAmount, method abi.MethodNum, params interface{}) (cbor.Marshaler, exitcode.ExitCode) {
	// This method does not actually execute the message itself,
	// but rather deals with the pre/post processing of a message.
	// (see: `invocationContext.invoke()` for the dispatch and execution)

	fromActor, found, err := vm.GetActor(from)
	if err != nil {
		panic(err)
	}
	if !found {
		// Execution error; sender does not exist at time of message execution.
		return nil, exitcode.SysErrSenderInvalid
	}

	signable := false
	for _, code := range builtin.CallerTypesSignable {
		signable = signable || fromActor.Code.Equals(code)
	}
	if !signable {
		// Execution error; sender is not an account.
		return nil, exitcode.SysErrSenderInvalid
	}

	return vm.apply(from, to, value, method, params)
}

// apply executes a top-level message from any sender, committing its events only on success.
func (vm *VM) apply(from, to address.Address, value abi.TokenAmount, method abi.MethodNum, params interface{}) (cbor.Marshaler, exitcode.ExitCode) {
	priorRoot, err := vm.checkpoint()
	if err != nil {
		panic(err)
	}

	topLevel := topLevelContext{}
	imsg := internalMessage{
		from:   from,
		to:     to,
		value:  value,
		method: method,
		params: params,
	}

	ctx := newInvocationContext(vm, &topLevel, imsg, vm.emptyObject)
	ret, exitCode := ctx.invoke()

	// Roll back all state if the receipt's exit code is not ok.
	// This is required in addition to rollback within the invocation context since top level messages can fail for
	// more reasons than internal ones. Invocation context still needs its own rollback so actors can recover and
	// proceed from a nested call failure.
	if exitCode != exitcode.Ok {
		if err := vm.rollback(priorRoot); err != nil {
			panic(err)
		}
		return nil, exitCode
	}

	if _, err := vm.commit(); err != nil {
		panic(err)
	}
	for _, evt := range topLevel.events {
		vm.eventIndex[evt.Topic] = append(vm.eventIndex[evt.Topic], len(vm.events))
		vm.events = append(vm.events, evt)
	}
	return ret.inner, exitCode
}

func (vm *VM) GetState(addr address.Address, out cbor.Unmarshaler) error {
	act, found, err := vm.GetActor(addr)
	if err != nil {
		return err
	}
	if !found {
		return errors.Errorf("actor %v not found", addr)
	}
	return vm.store.Get(vm.ctx, act.Head, out)
}

// GetBalance returns the balance of an actor, or zero if it does not exist.
func (vm *VM) GetBalance(addr address.Address) abi.TokenAmount {
	act, found, err := vm.GetActor(addr)
	if err != nil {
		panic(err)
	}
	if !found {
		return big.Zero()
	}
	return act.Balance
}

// ForEachActor calls fn for every actor in the current actor table.
func (vm *VM) ForEachActor(fn func(a address.Address, act *LedgerActor) error) error {
	var act LedgerActor
	return vm.actors.ForEach(&act, func(k string) error {
		a, err := address.NewFromBytes([]byte(k))
		if err != nil {
			return err
		}
		actCopy := act
		return fn(a, &actCopy)
	})
}

// TotalBalance sums the balances of all actors. Messages move value but never create or destroy it.
func (vm *VM) TotalBalance() abi.TokenAmount {
	total := big.Zero()
	err := vm.ForEachActor(func(_ address.Address, act *LedgerActor) error {
		total = big.Add(total, act.Balance)
		return nil
	})
	if err != nil {
		panic(err)
	}
	return total
}

func (vm *VM) Store() adt.Store {
	return vm.store
}

// GetTime returns the current ledger time.
func (vm *VM) GetTime() abi.Timestamp {
	return vm.currentTime
}

// AdvanceTime moves the ledger clock forward. The clock never moves backwards.
func (vm *VM) AdvanceTime(to abi.Timestamp) error {
	if to < vm.currentTime {
		return errors.Errorf("cannot move time backwards from %d to %d", vm.currentTime, to)
	}
	vm.currentTime = to
	return nil
}

// FailSendsTo makes every subsequent send to an address return the given exit code without executing.
// Passing exitcode.Ok removes the failure.
func (vm *VM) FailSendsTo(to address.Address, code exitcode.ExitCode) {
	if code.IsSuccess() {
		delete(vm.sendFailures, to)
		return
	}
	vm.sendFailures[to] = code
}

// Events returns all committed events in order of emission.
func (vm *VM) Events() []EmittedEvent {
	return vm.events
}

// EventsByTopic returns the committed events indexed under a topic, in order of emission.
func (vm *VM) EventsByTopic(topic address.Address) []EmittedEvent {
	idx := vm.eventIndex[topic]
	out := make([]EmittedEvent, len(idx))
	for i, pos := range idx {
		out[i] = vm.events[pos]
	}
	return out
}

// Logs returns everything actors have logged, including from messages that failed.
func (vm *VM) Logs() []LogLine {
	return vm.logs
}

// transfer debits money from one account and credits it to another.
//
// WARNING: this method will panic if the the amount is negative or accounts dont exist.
// Insufficient funds abort the current invocation.
func (vm *VM) transfer(debitFrom address.Address, creditTo address.Address, amount abi.TokenAmount) (*LedgerActor, *LedgerActor) {
	// allow only for positive amounts
	if amount.LessThan(big.Zero()) {
		panic("unreachable: negative funds transfer not allowed")
	}

	// retrieve debit account
	fromActor, found, err := vm.GetActor(debitFrom)
	if err != nil {
		panic(err)
	}
	if !found {
		panic(fmt.Errorf("unreachable: debit account %v not found", debitFrom))
	}

	// check that account has enough balance for transfer
	if fromActor.Balance.LessThan(amount) {
		vm.Abortf(exitcode.SysErrInsufficientFunds, "insufficient balance %v on %v to transfer %v", fromActor.Balance, debitFrom, amount)
	}

	// debit funds
	fromActor.Balance = big.Sub(fromActor.Balance, amount)
	if err := vm.setActor(debitFrom, fromActor); err != nil {
		panic(err)
	}

	// retrieve credit account
	toActor, found, err := vm.GetActor(creditTo)
	if err != nil {
		panic(err)
	}
	if !found {
		vm.Abortf(exitcode.SysErrInvalidReceiver, "credit account %v not found", creditTo)
	}

	// credit funds
	toActor.Balance = big.Add(toActor.Balance, amount)
	if err := vm.setActor(creditTo, toActor); err != nil {
		panic(err)
	}
	return toActor, fromActor
}

func (vm *VM) getActorImpl(code cid.Cid) runtime.VMActor {
	actorImpl, ok := vm.actorImpls[code]
	if !ok {
		vm.Abortf(exitcode.SysErrInvalidReceiver, "actor implementation not found for code %v", code)
	}
	return actorImpl
}

func (vm *VM) log(actor address.Address, level rtt.LogLevel, msg string, args ...interface{}) {
	vm.logs = append(vm.logs, LogLine{Actor: actor, Level: level, Msg: fmt.Sprintf(msg, args...)})
}

type abort struct {
	code exitcode.ExitCode
	msg  string
}

func (a abort) String() string {
	return fmt.Sprintf("abort(%v): %s", a.code, a.msg)
}

func (vm *VM) Abortf(errExitCode exitcode.ExitCode, msg string, args ...interface{}) {
	panic(abort{errExitCode, fmt.Sprintf(msg, args...)})
}

//
// implement runtime.Message for internalMessage
//

var _ runtime.Message = (*internalMessage)(nil)

// ValueReceived implements runtime.Message.
func (msg internalMessage) ValueReceived() abi.TokenAmount {
	return msg.value
}

// Caller implements runtime.Message.
func (msg internalMessage) Caller() address.Address {
	return msg.from
}

// Receiver implements runtime.Message.
func (msg internalMessage) Receiver() address.Address {
	return msg.to
}
