package ipld_test

import (
	"context"
	"testing"

	block "github.com/ipfs/go-block-format"
	ipldcbor "github.com/ipfs/go-ipld-cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
	"github.com/ledgerkit/vesting-actors/support/ipld"
	tutil "github.com/ledgerkit/vesting-actors/support/testing"
)

func TestBlockStoreInMemory(t *testing.T) {
	bs := ipld.NewBlockStoreInMemory()
	assert.Equal(t, 0, bs.Len())

	blk := block.NewBlock([]byte("claim history"))
	require.NoError(t, bs.Put(blk))
	require.NoError(t, bs.Put(blk))
	assert.Equal(t, 1, bs.Len())

	got, err := bs.Get(blk.Cid())
	require.NoError(t, err)
	assert.Equal(t, blk.RawData(), got.RawData())

	_, err = bs.Get(block.NewBlock([]byte("absent")).Cid())
	assert.Error(t, err)
}

func TestADTStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	bs := ipld.NewBlockStoreInMemory()
	store := adt.WrapStore(ctx, ipldcbor.NewCborStore(bs))

	c, err := store.Put(ctx, abi.Empty)
	require.NoError(t, err)
	assert.Equal(t, 1, bs.Len())

	var out abi.EmptyValue
	require.NoError(t, store.Get(ctx, c, &out))
	assert.Equal(t, ctx, store.Context())
}

func TestADTStoreAssignsContentAddress(t *testing.T) {
	ctx := context.Background()
	store := ipld.NewADTStore(ctx)

	c, err := store.Put(ctx, []uint64{1000, 250})
	require.NoError(t, err)
	assert.Equal(t, tutil.MakeCID(t, []uint64{1000, 250}), c)
	assert.NotEqual(t, tutil.MakeCID(t, []uint64{1000, 251}), c)

	missing := tutil.NewCidForTestGetter()
	first, second := missing(), missing()
	assert.NotEqual(t, first, second)
	var out []uint64
	assert.Error(t, store.Get(ctx, first, &out))
}
