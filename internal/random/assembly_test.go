package random_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/assembly"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/filter"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/lock"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/parts"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/random"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/testutil"
	"github.com/tooppoo/ac6-assemble-tool-sub001/internal/validation"
)

func mustInit(t *testing.T, limit int) random.RandomAssembly {
	t.Helper()
	a, err := random.Init(limit)
	require.NoError(t, err)
	return a
}

func alwaysFail(calls *int) validation.Validator {
	return validation.Func(func(b assembly.Build) validation.Result {
		*calls++
		return validation.Failure(fmt.Errorf("attempt %d rejected", *calls))
	})
}

func TestInitRejectsNonPositiveLimit(t *testing.T) {
	_, err := random.Init(0)
	require.ErrorIs(t, err, random.ErrInvalidLimit)

	a := mustInit(t, 7)
	assert.Equal(t, 7, a.Limit())
}

func TestReservedKeys(t *testing.T) {
	a := mustInit(t, 10)
	a, err := a.AddValidator("energy", validation.NotOverEnergyOutput())
	require.NoError(t, err)

	for _, key := range []string{random.KeyTankBoosterCoupling, random.ReservedPrefix + "anything"} {
		t.Run(key, func(t *testing.T) {
			added, err := a.AddValidator(key, validation.NotOverLoadLimit())
			var reserved *random.ReservedKeyError
			require.True(t, errors.As(err, &reserved))
			assert.Equal(t, key, reserved.Key)
			assert.ErrorIs(t, err, random.ErrReservedKey)
			assert.Equal(t, []string{"energy"}, added.ValidatorKeys())

			removed, err := a.RemoveValidator(key)
			require.True(t, errors.As(err, &reserved))
			assert.Equal(t, key, reserved.Key)
			assert.Equal(t, []string{"energy"}, removed.ValidatorKeys())
		})
	}
}

func TestValidatorRegistry(t *testing.T) {
	a := mustInit(t, 10)
	a, err := a.AddValidator("energy", validation.NotOverEnergyOutput())
	require.NoError(t, err)
	a, err = a.AddValidator("load", validation.NotOverLoadLimit())
	require.NoError(t, err)
	assert.Equal(t, []string{"energy", "load"}, a.ValidatorKeys())

	replaced, err := a.AddValidator("energy", validation.TotalCoamNotOverMax(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"energy", "load"}, replaced.ValidatorKeys())

	_, ok := a.GetValidator("load")
	assert.True(t, ok)
	_, ok = a.GetValidator(random.KeySlotFit)
	assert.False(t, ok, "internal validators are not exposed")

	removed, err := a.RemoveValidator("energy")
	require.NoError(t, err)
	assert.Equal(t, []string{"load"}, removed.ValidatorKeys())
	assert.Equal(t, []string{"energy", "load"}, a.ValidatorKeys(), "remove returns a new assembler")

	same, err := removed.RemoveValidator("missing")
	require.NoError(t, err)
	assert.Equal(t, []string{"load"}, same.ValidatorKeys())
}

func TestAssembleReturnsBuildThatValidates(t *testing.T) {
	a := mustInit(t, 100)
	a, err := a.AddValidator(validation.KeyNotOverEnergyOutput, validation.NotOverEnergyOutput())
	require.NoError(t, err)
	a, err = a.AddValidator(validation.KeyNoSameWeaponPerSide, validation.NoSameWeaponPerSide())
	require.NoError(t, err)

	for seed := uint64(0); seed < 50; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.True(t, a.Validate(b).IsSuccess())
		assert.Equal(t, b.Legs.IsTank(), b.Booster.IsNotEquipped(), "seed %d", seed)
	}
}

func TestAssembleGivesUpAfterLimit(t *testing.T) {
	calls := 0
	a := mustInit(t, 5)
	a, err := a.AddValidator("never", alwaysFail(&calls))
	require.NoError(t, err)

	_, err = a.WithPicker(random.SeededPicker(1)).Assemble(testutil.Pools())
	var exhausted *random.ExhaustedError
	require.True(t, errors.As(err, &exhausted))
	assert.ErrorIs(t, err, random.ErrExhausted)
	assert.Equal(t, 5, exhausted.Limit)
	assert.Equal(t, 5, calls)
	require.Len(t, exhausted.Errors, 5)
	assert.EqualError(t, exhausted.Errors[0], "attempt 1 rejected")
	assert.EqualError(t, exhausted.Errors[4], "attempt 5 rejected")
}

func TestAssembleIsReusableAfterFailure(t *testing.T) {
	calls := 0
	a := mustInit(t, 3)
	failing, err := a.AddValidator("never", alwaysFail(&calls))
	require.NoError(t, err)

	_, err = failing.Assemble(testutil.Pools())
	require.Error(t, err)
	_, err = failing.Assemble(testutil.Pools())
	require.Error(t, err)
	assert.Equal(t, 6, calls)

	_, err = a.Assemble(testutil.Pools())
	require.NoError(t, err)
}

func TestAssembleEmptyPoolFailsBeforeDrawing(t *testing.T) {
	calls := 0
	a := mustInit(t, 5)
	a, err := a.AddValidator("never", alwaysFail(&calls))
	require.NoError(t, err)

	pools := testutil.Pools().With(parts.FCS, nil)
	_, err = a.Assemble(pools)
	var empty *random.EmptyPoolError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, parts.FCS, empty.Slot)
	assert.ErrorIs(t, err, random.ErrEmptyPool)
	assert.Equal(t, 0, calls)
}

func TestAssembleEmptyPoolIsFineWhenPinned(t *testing.T) {
	a := mustInit(t, 5).WithLocks(lock.Empty().Lock(parts.FCS, testutil.Part(t, "fc-std")))
	b, err := a.Assemble(testutil.Pools().With(parts.FCS, nil))
	require.NoError(t, err)
	assert.Equal(t, "fc-std", b.FCS.ID)
}

func TestAssembleUsesPinsOutsideThePool(t *testing.T) {
	custom := parts.Part{ID: "custom-head", Kind: parts.KindHead, AP: 1}
	a := mustInit(t, 5).WithLocks(lock.Empty().Lock(parts.Head, custom))

	b, err := a.Assemble(testutil.Pools())
	require.NoError(t, err)
	assert.Equal(t, custom, b.Head)
}

func TestAssemblePropagatesTankLegs(t *testing.T) {
	a := mustInit(t, 20).WithLocks(lock.Empty().Lock(parts.Legs, testutil.Part(t, "lg-tank")))
	for seed := uint64(0); seed < 20; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.True(t, b.Booster.IsNotEquipped())
	}
}

func TestAssembleBoosterPinDrivesLegs(t *testing.T) {
	a := mustInit(t, 20).WithLocks(lock.Empty().Lock(parts.Booster, testutil.NotEquipped(parts.KindBooster)))
	for seed := uint64(0); seed < 20; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.Equal(t, "lg-tank", b.Legs.ID)
	}
}

func TestAssembleRejectsContradictoryLocks(t *testing.T) {
	tracker := lock.Empty().
		Lock(parts.Legs, testutil.Part(t, "lg-tank")).
		Lock(parts.Booster, testutil.Part(t, "bo-std"))

	_, err := mustInit(t, 5).WithLocks(tracker).Assemble(testutil.Pools())
	assert.ErrorIs(t, err, random.ErrContradictoryLocks)
	var contradiction *lock.ContradictionError
	assert.True(t, errors.As(err, &contradiction))
}

func TestAssembleAppliesFilters(t *testing.T) {
	set := filter.NewSet().
		Add(filter.ExcludeNotEquipped(), filter.Options{Enabled: true}).
		Add(filter.ExcludeParts("hd-light"), filter.Options{Enabled: true})
	a := mustInit(t, 20).WithFilters(set)

	for seed := uint64(0); seed < 30; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.Equal(t, "hd-heavy", b.Head.ID)
		for _, slot := range filter.WeaponSlots {
			assert.False(t, b.Get(slot).IsNotEquipped(), "slot %s", slot)
		}
	}
}

func TestAssemblePinnedLegsSurviveFilterThatDropsThem(t *testing.T) {
	a := mustInit(t, 20).
		WithLocks(lock.Empty().Lock(parts.Legs, testutil.Part(t, "lg-biped"))).
		WithFilters(filter.NewSet().Add(filter.ExcludeParts("lg-biped"), filter.Options{Enabled: true}))

	for seed := uint64(0); seed < 10; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.Equal(t, "lg-biped", b.Legs.ID)
		assert.Equal(t, "bo-std", b.Booster.ID)
	}
}

func TestAssemblePinnedEmptyBoosterSurvivesExcludeNotEquipped(t *testing.T) {
	a := mustInit(t, 20).
		WithLocks(lock.Empty().Lock(parts.Booster, testutil.NotEquipped(parts.KindBooster))).
		WithFilters(filter.NewSet().Add(filter.ExcludeNotEquipped(parts.Booster), filter.Options{Enabled: true}))

	for seed := uint64(0); seed < 10; seed++ {
		b, err := a.WithPicker(random.SeededPicker(seed)).Assemble(testutil.Pools())
		require.NoError(t, err)
		assert.True(t, b.Booster.IsNotEquipped())
		assert.Equal(t, "lg-tank", b.Legs.ID)
	}
}

func TestAssembleCouplingClosureReportsImpossibleLegs(t *testing.T) {
	onlyNothing := testutil.Pools().
		Filter(parts.Booster, func(p parts.Part) bool { return p.IsNotEquipped() }).
		Filter(parts.Legs, func(p parts.Part) bool { return !p.IsTank() })

	_, err := mustInit(t, 5).Assemble(onlyNothing)
	var empty *random.EmptyPoolError
	require.True(t, errors.As(err, &empty))
	assert.Equal(t, parts.Legs, empty.Slot)
}

func TestSeededPickerIsDeterministic(t *testing.T) {
	a := mustInit(t, 10)
	first, err := a.WithPicker(random.SeededPicker(42)).Assemble(testutil.Pools())
	require.NoError(t, err)
	second, err := a.WithPicker(random.SeededPicker(42)).Assemble(testutil.Pools())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestObserverSeesEveryAttempt(t *testing.T) {
	var seen []int
	calls := 0
	a := mustInit(t, 4).WithObserver(func(at random.Attempt) {
		seen = append(seen, at.Number)
		assert.False(t, at.Result.IsSuccess())
	})
	a, err := a.AddValidator("never", alwaysFail(&calls))
	require.NoError(t, err)

	_, err = a.Assemble(testutil.Pools())
	require.Error(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, seen)
}

func TestValidateRunsInternalValidators(t *testing.T) {
	a := mustInit(t, 1)
	result := a.Validate(assembly.Build{})

	require.False(t, result.IsSuccess())
	for _, err := range result.Errors() {
		var verr validation.Error
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, random.KeySlotFit, verr.Validator)
	}
	assert.Len(t, result.Errors(), len(parts.Slots()))
}

func TestValidateCollectsEveryFailure(t *testing.T) {
	b, err := assembly.New(testutil.Selection(t))
	require.NoError(t, err)

	a := mustInit(t, 1)
	a, err = a.AddValidator("coam", validation.TotalCoamNotOverMax(1))
	require.NoError(t, err)
	a, err = a.AddValidator("load", validation.TotalLoadNotOverMax(1))
	require.NoError(t, err)

	errs := a.Validate(b).Errors()
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0].Error(), validation.KeyTotalCoamNotOverMax)
	assert.Contains(t, errs[1].Error(), validation.KeyTotalLoadNotOverMax)
}
