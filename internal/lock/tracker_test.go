package lock_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/testutil"
)

func TestLockUnlockRoundTrip(t *testing.T) {
	base := lock.Empty().Lock(parts.Head, testutil.Part(t, "hd-heavy"))

	for _, slot := range parts.Slots() {
		if slot == parts.Head {
			continue
		}
		t.Run(string(slot), func(t *testing.T) {
			p := testutil.Pools().Get(slot)[0]
			roundTrip := base.Lock(slot, p).Unlock(slot)
			assert.True(t, roundTrip.Equal(base))
			assert.Equal(t, base, roundTrip)
		})
	}

	assert.Equal(t, lock.Empty(), lock.Empty().Lock(parts.Core, testutil.Part(t, "co-std")).Unlock(parts.Core))
}

func TestLockIsPersistent(t *testing.T) {
	empty := lock.Empty()
	locked := empty.Lock(parts.Legs, testutil.Part(t, "lg-tank"))

	assert.False(t, empty.IsLocking(parts.Legs))
	assert.True(t, locked.IsLocking(parts.Legs))
	assert.False(t, locked.IsLocking(parts.Booster), "pinning legs never pins the booster")

	relocked := locked.Lock(parts.Legs, testutil.Part(t, "lg-biped"))
	got, ok := relocked.Pinned(parts.Legs)
	require.True(t, ok)
	assert.Equal(t, "lg-biped", got.ID)
	assert.Equal(t, []parts.Slot{parts.Legs}, relocked.LockedKeys())
}

func TestUnlockUnpinnedSlot(t *testing.T) {
	base := lock.Empty().Lock(parts.FCS, testutil.Part(t, "fc-std"))
	assert.True(t, base.Unlock(parts.Head).Equal(base))
}

func TestLockedKeysCanonicalOrder(t *testing.T) {
	tracker := lock.Empty().
		Lock(parts.Expansion, testutil.Part(t, "ex-assault")).
		Lock(parts.RightArmUnit, testutil.Part(t, "ru-rifle")).
		Lock(parts.Core, testutil.Part(t, "co-gen"))

	assert.Equal(t, []parts.Slot{parts.RightArmUnit, parts.Core, parts.Expansion}, tracker.LockedKeys())
	assert.Len(t, tracker.Selection(), 3)
}

func TestGetUsesFallbackOnlyForFreeSlots(t *testing.T) {
	tracker := lock.Empty().Lock(parts.Head, testutil.Part(t, "hd-heavy"))
	calls := 0
	fallback := func() parts.Part {
		calls++
		return testutil.Part(t, "hd-light")
	}

	assert.Equal(t, "hd-heavy", tracker.Get(parts.Head, fallback).ID)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "hd-light", tracker.Get(parts.Core, fallback).ID)
	assert.Equal(t, 1, calls)
}

func TestContradiction(t *testing.T) {
	tank := testutil.Part(t, "lg-tank")
	booster := testutil.Part(t, "bo-std")

	assert.NoError(t, lock.Empty().Lock(parts.Legs, tank).Contradiction())
	assert.NoError(t, lock.Empty().Lock(parts.Legs, tank).Lock(parts.Booster, testutil.NotEquipped(parts.KindBooster)).Contradiction())

	err := lock.Empty().Lock(parts.Legs, tank).Lock(parts.Booster, booster).Contradiction()
	var contradiction *lock.ContradictionError
	require.True(t, errors.As(err, &contradiction))
	assert.Equal(t, "lg-tank", contradiction.Legs.ID)
	assert.Equal(t, "bo-std", contradiction.Booster.ID)
}
