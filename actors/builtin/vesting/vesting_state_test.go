package vesting_test

import (
	"context"
	"testing"

	"github.com/filecoin-project/go-state-types/big"
	"github.com/filecoin-project/go-state-types/exitcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	abi "github.com/ledgerkit/vesting-actors/actors/abi"
	"github.com/ledgerkit/vesting-actors/actors/builtin/vesting"
	"github.com/ledgerkit/vesting-actors/actors/util/adt"
	"github.com/ledgerkit/vesting-actors/support/ipld"
	tutil "github.com/ledgerkit/vesting-actors/support/testing"
)

func TestScheduleValidate(t *testing.T) {
	grantor := tutil.NewIDAddr(t, 100)
	beneficiary := tutil.NewIDAddr(t, 101)
	valid := func() vesting.Schedule {
		return vesting.Schedule{
			Grantor:     grantor,
			Beneficiary: beneficiary,
			TotalAmount: abi.NewTokenAmount(1000),
			StartTime:   100,
			Duration:    100,
		}
	}

	t.Run("valid schedule", func(t *testing.T) {
		s := valid()
		require.NoError(t, s.Validate())
		assert.Equal(t, abi.Timestamp(200), s.EndTime())
	})

	t.Run("maximum amount is accepted", func(t *testing.T) {
		s := valid()
		s.TotalAmount = vesting.MaxTokenAmount
		require.NoError(t, s.Validate())
	})

	t.Run("end at the top of the time domain is accepted", func(t *testing.T) {
		s := valid()
		s.StartTime = 1
		s.Duration = abi.Duration(^uint64(0) - 1)
		require.NoError(t, s.Validate())
		assert.Equal(t, abi.Timestamp(^uint64(0)), s.EndTime())
	})

	t.Run("end time of an overflowing schedule is not representable", func(t *testing.T) {
		s := valid()
		s.StartTime = 2
		s.Duration = abi.Duration(^uint64(0) - 1)
		assert.Panics(t, func() { s.EndTime() })
	})

	testCases := []struct {
		desc   string
		mutate func(s *vesting.Schedule)
		code   exitcode.ExitCode
	}{
		{"zero amount", func(s *vesting.Schedule) { s.TotalAmount = big.Zero() }, vesting.ErrInvalidAmount},
		{"negative amount", func(s *vesting.Schedule) { s.TotalAmount = abi.NewTokenAmount(-1) }, vesting.ErrInvalidAmount},
		{"nil amount", func(s *vesting.Schedule) { s.TotalAmount = big.Int{} }, vesting.ErrInvalidAmount},
		{"amount above maximum", func(s *vesting.Schedule) {
			s.TotalAmount = big.Add(vesting.MaxTokenAmount, big.NewInt(1))
		}, vesting.ErrInvalidAmount},
		{"zero duration", func(s *vesting.Schedule) { s.Duration = 0 }, vesting.ErrInvalidDuration},
		{"end time overflows", func(s *vesting.Schedule) {
			s.StartTime = abi.Timestamp(^uint64(0) - 10)
			s.Duration = 11
		}, vesting.ErrTimeOverflow},
		{"non-ID beneficiary", func(s *vesting.Schedule) {
			s.Beneficiary = tutil.NewSECP256K1Addr(t, "beneficiary")
		}, exitcode.ErrIllegalArgument},
		{"non-ID grantor", func(s *vesting.Schedule) {
			s.Grantor = tutil.NewBLSAddr(t, 1)
		}, exitcode.ErrIllegalArgument},
		{"amount checked before duration", func(s *vesting.Schedule) {
			s.TotalAmount = big.Zero()
			s.Duration = 0
		}, vesting.ErrInvalidAmount},
		{"duration checked before overflow", func(s *vesting.Schedule) {
			s.StartTime = abi.Timestamp(^uint64(0))
			s.Duration = 0
		}, vesting.ErrInvalidDuration},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			s := valid()
			tc.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Equal(t, tc.code, exitcode.Unwrap(err, exitcode.Ok))
		})
	}
}

func TestStateLifecycle(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	grantor := tutil.NewIDAddr(t, 100)
	beneficiary := tutil.NewIDAddr(t, 101)
	sched := vesting.Schedule{
		Grantor:     grantor,
		Beneficiary: beneficiary,
		TotalAmount: abi.NewTokenAmount(1000),
		StartTime:   100,
		Duration:    100,
	}

	t.Run("constructed state is uninitialized", func(t *testing.T) {
		st, err := vesting.ConstructState(store)
		require.NoError(t, err)
		assert.Equal(t, vesting.StatusUninitialized, st.Status)
		assert.Nil(t, st.Schedule)
		assert.True(t, st.Claimed.Sign() == 0)
		assert.True(t, st.Remaining().Sign() == 0)
		assert.True(t, st.UnlockedAt(150).Sign() == 0)

		_, err = st.RecordClaim(store, 150, nil)
		assert.Equal(t, vesting.ErrNotInitialized, exitcode.Unwrap(err, exitcode.Ok))
		_, err = st.Info(150)
		assert.Equal(t, vesting.ErrNotInitialized, exitcode.Unwrap(err, exitcode.Ok))

		checkState(t, st, store, big.Zero(), 150)
	})

	t.Run("initialize once", func(t *testing.T) {
		st, err := vesting.ConstructState(store)
		require.NoError(t, err)
		require.NoError(t, st.Initialize(sched))
		assert.Equal(t, vesting.StatusActive, st.Status)
		assert.Equal(t, sched, *st.Schedule)

		err = st.Initialize(sched)
		assert.Equal(t, vesting.ErrAlreadyInitialized, exitcode.Unwrap(err, exitcode.Ok))
		// An invalid second schedule still reports the escrow as initialized.
		bad := sched
		bad.Duration = 0
		err = st.Initialize(bad)
		assert.Equal(t, vesting.ErrAlreadyInitialized, exitcode.Unwrap(err, exitcode.Ok))
	})

	t.Run("invalid schedule leaves state uninitialized", func(t *testing.T) {
		st, err := vesting.ConstructState(store)
		require.NoError(t, err)
		bad := sched
		bad.TotalAmount = big.Zero()
		err = st.Initialize(bad)
		assert.Equal(t, vesting.ErrInvalidAmount, exitcode.Unwrap(err, exitcode.Ok))
		assert.Equal(t, vesting.StatusUninitialized, st.Status)
		assert.Nil(t, st.Schedule)
	})

	t.Run("claims accumulate to the total", func(t *testing.T) {
		st := activeState(t, store, sched)

		_, err := st.RecordClaim(store, 100, nil)
		assert.Equal(t, vesting.ErrNothingToClaim, exitcode.Unwrap(err, exitcode.Ok))

		amt, err := st.RecordClaim(store, 125, nil)
		require.NoError(t, err)
		assertAmount(t, abi.NewTokenAmount(250), amt)

		// nothing more unlocked at the same time
		_, err = st.RecordClaim(store, 125, nil)
		assert.Equal(t, vesting.ErrNothingToClaim, exitcode.Unwrap(err, exitcode.Ok))

		amt, err = st.RecordClaim(store, 150, nil)
		require.NoError(t, err)
		assertAmount(t, abi.NewTokenAmount(250), amt)
		assert.Equal(t, vesting.StatusActive, st.Status)
		checkState(t, st, store, st.Remaining(), 150)

		amt, err = st.RecordClaim(store, 500, nil)
		require.NoError(t, err)
		assertAmount(t, abi.NewTokenAmount(500), amt)
		assert.Equal(t, vesting.StatusFullyClaimed, st.Status)
		assert.True(t, st.Remaining().Sign() == 0)

		_, err = st.RecordClaim(store, 600, nil)
		assert.Equal(t, vesting.ErrNothingToClaim, exitcode.Unwrap(err, exitcode.Ok))

		history, err := st.LoadClaimHistory(store)
		require.NoError(t, err)
		require.Len(t, history, 3)
		assert.Equal(t, abi.Timestamp(125), history[0].Time)
		assert.Equal(t, abi.Timestamp(150), history[1].Time)
		assert.Equal(t, abi.Timestamp(500), history[2].Time)
		assertAmount(t, abi.NewTokenAmount(500), history[2].Amount)

		summary := checkState(t, st, store, big.Zero(), 600)
		assert.Equal(t, 3, summary.ClaimCount)
	})

	t.Run("partial claims are capped at the available amount", func(t *testing.T) {
		st := activeState(t, store, sched)

		requested := abi.NewTokenAmount(100)
		amt, err := st.RecordClaim(store, 150, &requested)
		require.NoError(t, err)
		assertAmount(t, requested, amt)
		assertAmount(t, abi.NewTokenAmount(400), st.AvailableAt(150))

		requested = abi.NewTokenAmount(10_000)
		amt, err = st.RecordClaim(store, 150, &requested)
		require.NoError(t, err)
		assertAmount(t, abi.NewTokenAmount(400), amt)
		assertAmount(t, abi.NewTokenAmount(500), st.Claimed)

		for _, bad := range []abi.TokenAmount{big.Zero(), abi.NewTokenAmount(-5)} {
			bad := bad
			_, err = st.RecordClaim(store, 200, &bad)
			assert.Equal(t, vesting.ErrInvalidAmount, exitcode.Unwrap(err, exitcode.Ok))
		}
		assertAmount(t, abi.NewTokenAmount(500), st.Claimed)
		checkState(t, st, store, st.Remaining(), 200)
	})

	t.Run("claims cannot precede the last claim", func(t *testing.T) {
		st := activeState(t, store, sched)
		_, found, err := st.LastClaim(store)
		require.NoError(t, err)
		assert.False(t, found)

		requested := abi.NewTokenAmount(100)
		_, err = st.RecordClaim(store, 150, &requested)
		require.NoError(t, err)
		last, found, err := st.LastClaim(store)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, abi.Timestamp(150), last.Time)
		assertAmount(t, requested, last.Amount)

		// funds unlocked at 140 remain unclaimed, but the ledger cannot go back in time
		_, err = st.RecordClaim(store, 140, nil)
		assert.Equal(t, exitcode.ErrIllegalState, exitcode.Unwrap(err, exitcode.Ok))
		assertAmount(t, requested, st.Claimed)

		amt, err := st.RecordClaim(store, 150, nil)
		require.NoError(t, err)
		assertAmount(t, abi.NewTokenAmount(400), amt)
	})

	t.Run("info reports the schedule at a time", func(t *testing.T) {
		st := activeState(t, store, sched)
		_, err := st.RecordClaim(store, 110, nil)
		require.NoError(t, err)

		info, err := st.Info(130)
		require.NoError(t, err)
		assert.Equal(t, beneficiary, info.Beneficiary)
		assert.Equal(t, vesting.StatusActive, info.Status)
		assertAmount(t, abi.NewTokenAmount(1000), info.TotalAmount)
		assert.Equal(t, abi.Timestamp(100), info.StartTime)
		assert.Equal(t, abi.Duration(100), info.Duration)
		assertAmount(t, abi.NewTokenAmount(100), info.Claimed)
		assertAmount(t, abi.NewTokenAmount(900), info.Remaining)
		assertAmount(t, abi.NewTokenAmount(300), info.UnlockedNow)
	})
}

func TestCheckStateInvariantsReportsViolations(t *testing.T) {
	store := ipld.NewADTStore(context.Background())
	sched := vesting.Schedule{
		Grantor:     tutil.NewIDAddr(t, 100),
		Beneficiary: tutil.NewIDAddr(t, 101),
		TotalAmount: abi.NewTokenAmount(1000),
		StartTime:   100,
		Duration:    100,
	}

	t.Run("claimed ahead of schedule", func(t *testing.T) {
		st := activeState(t, store, sched)
		st.Claimed = abi.NewTokenAmount(600)
		_, msgs, err := vesting.CheckStateInvariants(st, store, st.Remaining(), 150)
		require.NoError(t, err)
		assert.False(t, msgs.IsEmpty())
	})

	t.Run("status inconsistent with claimed", func(t *testing.T) {
		st := activeState(t, store, sched)
		st.Status = vesting.StatusFullyClaimed
		_, msgs, err := vesting.CheckStateInvariants(st, store, st.Remaining(), 150)
		require.NoError(t, err)
		assert.False(t, msgs.IsEmpty())
	})

	t.Run("balance does not cover remaining", func(t *testing.T) {
		st := activeState(t, store, sched)
		_, msgs, err := vesting.CheckStateInvariants(st, store, abi.NewTokenAmount(999), 150)
		require.NoError(t, err)
		assert.Equal(t, []string{"balance 999 less than remaining 1000"}, msgs.Messages())
	})

	t.Run("history does not sum to claimed", func(t *testing.T) {
		st := activeState(t, store, sched)
		_, err := st.RecordClaim(store, 150, nil)
		require.NoError(t, err)
		st.Claimed = abi.NewTokenAmount(400)
		_, msgs, err := vesting.CheckStateInvariants(st, store, st.Remaining(), 150)
		require.NoError(t, err)
		assert.Contains(t, msgs.Messages(), "claim history sums to 500, claimed 400")
	})

	t.Run("missing history is an error", func(t *testing.T) {
		st := activeState(t, store, sched)
		st.ClaimHistory = tutil.NewCidForTestGetter()()
		_, _, err := vesting.CheckStateInvariants(st, store, st.Remaining(), 150)
		assert.Error(t, err)
	})
}

func activeState(t *testing.T, store adt.Store, sched vesting.Schedule) *vesting.State {
	st, err := vesting.ConstructState(store)
	require.NoError(t, err)
	require.NoError(t, st.Initialize(sched))
	return st
}

func checkState(t *testing.T, st *vesting.State, store adt.Store, balance abi.TokenAmount, now abi.Timestamp) *vesting.StateSummary {
	t.Helper()
	summary, msgs, err := vesting.CheckStateInvariants(st, store, balance, now)
	require.NoError(t, err)
	assert.True(t, msgs.IsEmpty(), "state invariants violated: %v", msgs.Messages())
	return summary
}
