package abi

import (
	"fmt"
	"io"

	"github.com/filecoin-project/go-state-types/cbor"
)

// EmptyValue is the parameter and return value for methods that take or produce nothing.
// A nil *EmptyValue encodes the same as a non-nil one.
type EmptyValue struct{}

// Empty is the canonical empty method value.
var Empty = &EmptyValue{}

var _ cbor.Marshaler = (*EmptyValue)(nil)
var _ cbor.Unmarshaler = (*EmptyValue)(nil)

// 0x80 is empty list (major type 4 with zero length)
// This is encoded with empty-list since we use tuple-encoding for everything.
const emptyListEncoded = 0x80

func (*EmptyValue) MarshalCBOR(w io.Writer) error {
	_, err := w.Write([]byte{emptyListEncoded})
	return err
}

func (*EmptyValue) UnmarshalCBOR(r io.Reader) error {
	buf := make([]byte, 1)
	if _, err := io.ReadFull(r, buf); err != nil {
		return err
	}
	if buf[0] != emptyListEncoded {
		return fmt.Errorf("invalid empty value %x", buf[0])
	}
	return nil
}
