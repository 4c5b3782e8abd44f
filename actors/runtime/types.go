package runtime

import (
	"io"

	"github.com/filecoin-project/go-state-types/rt"
)

// Concrete types associated with the runtime interface.

// VMActor is the interface all actor code satisfies to be invoked by a host.
type VMActor = rt.VMActor

// Wraps already-serialized bytes as CBOR-marshalable.
type CBORBytes []byte

func (b CBORBytes) MarshalCBOR(w io.Writer) error {
	_, err := w.Write(b)
	return err
}
