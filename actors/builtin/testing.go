package builtin

import (
	"fmt"
)

// MessageAccumulator collects invariant violations.
// Accumulators derived with WithPrefix share the same message list.
type MessageAccumulator struct {
	prefix string
	msgs   *[]string
}

func (ma *MessageAccumulator) list() *[]string {
	if ma.msgs == nil {
		ma.msgs = &[]string{}
	}
	return ma.msgs
}

// WithPrefix returns an accumulator writing into this one, prepending prefix to each message.
func (ma *MessageAccumulator) WithPrefix(prefix string) *MessageAccumulator {
	return &MessageAccumulator{
		prefix: ma.prefix + prefix,
		msgs:   ma.list(),
	}
}

func (ma *MessageAccumulator) IsEmpty() bool {
	return ma.msgs == nil || len(*ma.msgs) == 0
}

func (ma *MessageAccumulator) Messages() []string {
	if ma.msgs == nil {
		return nil
	}
	return append([]string(nil), (*ma.msgs)...)
}

func (ma *MessageAccumulator) Add(msgs ...string) {
	list := ma.list()
	for _, m := range msgs {
		*list = append(*list, ma.prefix+m)
	}
}

func (ma *MessageAccumulator) Addf(msg string, args ...interface{}) {
	ma.Add(fmt.Sprintf(msg, args...))
}

// AddAll copies the messages of another accumulator under this one's prefix.
func (ma *MessageAccumulator) AddAll(other *MessageAccumulator) {
	ma.Add(other.Messages()...)
}

// Require adds a message if predicate is false.
func (ma *MessageAccumulator) Require(predicate bool, msg string, args ...interface{}) {
	if !predicate {
		ma.Addf(msg, args...)
	}
}
