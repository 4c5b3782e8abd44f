package util

import (
	"fmt"
)

// AssertMsg halts execution on a condition that validated state can never reach.
// It panics outside the abort mechanism, so the host treats it as a broken actor rather than a bad message.
func AssertMsg(b bool, format string, a ...interface{}) {
	if !b {
		panic(fmt.Sprintf(format, a...))
	}
}
