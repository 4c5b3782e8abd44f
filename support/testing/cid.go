package testing

import (
	"testing"

	"github.com/ipfs/go-cid"
	cbor "github.com/ipfs/go-ipld-cbor"
	mh "github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/require"
)

// MakeCID returns the CID a cbor store assigns to obj, which must not be a cbor-gen type.
func MakeCID(t testing.TB, obj interface{}) cid.Cid {
	node, err := cbor.WrapObject(obj, uint64(mh.BLAKE2B_MIN+31), -1)
	require.NoError(t, err)
	return node.Cid()
}

// NewCidForTestGetter returns a generator of CIDs that are distinct from each other
// and from anything stored by a test, so they resolve to nothing.
func NewCidForTestGetter() func() cid.Cid {
	next := uint64(0)
	return func() cid.Cid {
		next++
		node, err := cbor.WrapObject([]interface{}{"missing", next}, mh.SHA2_256, -1)
		if err != nil {
			panic(err)
		}
		return node.Cid()
	}
}
