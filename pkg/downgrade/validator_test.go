package downgrade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinickit/pkg/downgrade"
	"github.com/clinicore/clinickit/pkg/plan"
	"github.com/clinicore/clinickit/pkg/usage"
)

func currentPlanResolver(key string) downgrade.PlanKeyResolver {
	return func(_ context.Context, _ uuid.UUID) (string, error) {
		return key, nil
	}
}

func newValidator(t *testing.T, snapshots map[uuid.UUID]usage.Snapshot, currentKey string) *downgrade.Validator {
	t.Helper()

	return downgrade.NewValidator(
		plan.DefaultCatalog(),
		usage.NewStaticProvider(snapshots),
		currentPlanResolver(currentKey),
	)
}

func TestValidate_OverLimitUsageBlocks(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	snap := usage.Snapshot{Pets: 700, Users: 5, StorageBytes: 10 * plan.GiB}
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{tenantID: snap}, "PROFESIONAL")

	result, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.NoError(t, err)

	assert.False(t, result.CanDowngrade)
	require.Len(t, result.Blockers, 3)

	pets := result.Blockers[0]
	assert.Equal(t, usage.ResourcePets, pets.Resource)
	assert.Equal(t, int64(700), pets.Current)
	assert.Equal(t, int64(500), pets.NewLimit)
	assert.Equal(t, int64(200), pets.Excess)
	assert.Contains(t, pets.Suggestion, "200 pet records")

	users := result.Blockers[1]
	assert.Equal(t, usage.ResourceUsers, users.Resource)
	assert.Equal(t, int64(2), users.Excess)
	assert.Contains(t, users.Suggestion, "Deactivate 2 user accounts")

	storage := result.Blockers[2]
	assert.Equal(t, usage.ResourceStorage, storage.Resource)
	assert.Equal(t, int64(10), storage.Current)
	assert.Equal(t, int64(5), storage.NewLimit)
	assert.Equal(t, int64(5), storage.Excess)
	assert.Contains(t, storage.Suggestion, "Free up 5 GiB")

	assert.Equal(t, snap, result.CurrentUsage)
	assert.Equal(t, "BASICO", result.TargetPlan.Key)
}

func TestValidate_UsageWithinLimits(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{
		tenantID: {Pets: 100, Users: 2, MonthlyMessages: 50, StorageBytes: plan.GiB},
	}, "PROFESIONAL")

	result, err := v.Validate(context.Background(), tenantID, "basico")
	require.NoError(t, err)

	assert.True(t, result.CanDowngrade)
	assert.Empty(t, result.Blockers)
}

func TestValidate_UnlimitedTargetNeverBlocks(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{
		tenantID: {Pets: 10000, Users: 500, MonthlyMessages: 99999, StorageBytes: 50 * plan.GiB},
	}, "PROFESIONAL")

	result, err := v.Validate(context.Background(), tenantID, "EMPRESARIAL")
	require.NoError(t, err)

	assert.True(t, result.CanDowngrade)
	assert.Empty(t, result.Blockers)
}

func TestValidate_BoundaryEqualUsageAllowed(t *testing.T) {
	t.Parallel()

	// Usage exactly at the target limit is not an excess.
	tenantID := uuid.New()
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{
		tenantID: {Pets: 500, Users: 3, MonthlyMessages: 1000, StorageBytes: 5 * plan.GiB},
	}, "PROFESIONAL")

	result, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.NoError(t, err)

	assert.True(t, result.CanDowngrade)
	assert.Empty(t, result.Blockers)
}

func TestValidate_StorageRoundsUpToGiB(t *testing.T) {
	t.Parallel()

	// 5 GiB + 1 byte must block and report 6 GiB current, never 5.
	tenantID := uuid.New()
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{
		tenantID: {StorageBytes: 5*plan.GiB + 1},
	}, "PROFESIONAL")

	result, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.NoError(t, err)

	require.Len(t, result.Blockers, 1)
	storage := result.Blockers[0]
	assert.Equal(t, usage.ResourceStorage, storage.Resource)
	assert.Equal(t, int64(6), storage.Current)
	assert.Equal(t, int64(1), storage.Excess)
}

func TestValidate_UnknownTargetPlan(t *testing.T) {
	t.Parallel()

	v := newValidator(t, map[uuid.UUID]usage.Snapshot{}, "PROFESIONAL")

	_, err := v.Validate(context.Background(), uuid.New(), "GOLD")
	require.Error(t, err)
	assert.ErrorIs(t, err, plan.ErrPlanNotFound)
	assert.Contains(t, err.Error(), "GOLD")
}

func TestValidate_UsageFetchFailure(t *testing.T) {
	t.Parallel()

	// Unknown tenant in the static provider simulates a usage outage.
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{}, "PROFESIONAL")

	_, err := v.Validate(context.Background(), uuid.New(), "BASICO")
	require.Error(t, err)
	assert.ErrorIs(t, err, downgrade.ErrFailedToFetchUsage)
	assert.ErrorIs(t, err, usage.ErrNoSnapshot)
}

func TestValidate_ResolverFailure(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	resolverDown := errors.New("billing service unavailable")

	v := downgrade.NewValidator(
		plan.DefaultCatalog(),
		usage.NewStaticProvider(map[uuid.UUID]usage.Snapshot{tenantID: {}}),
		func(_ context.Context, _ uuid.UUID) (string, error) {
			return "", resolverDown
		},
	)

	_, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.Error(t, err)
	assert.ErrorIs(t, err, downgrade.ErrFailedToResolvePlan)
	assert.ErrorIs(t, err, resolverDown)
}

func TestValidate_FeatureLossWarnings(t *testing.T) {
	t.Parallel()

	t.Run("downgrade loses features", func(t *testing.T) {
		t.Parallel()

		tenantID := uuid.New()
		v := newValidator(t, map[uuid.UUID]usage.Snapshot{tenantID: {}}, "EMPRESARIAL")

		result, err := v.Validate(context.Background(), tenantID, "BASICO")
		require.NoError(t, err)

		require.NotEmpty(t, result.Warnings)
		for _, w := range result.Warnings {
			assert.Equal(t, downgrade.WarningFeatureLoss, w.Type)
			assert.Contains(t, w.Message, "Basico")
		}
		// Warnings never block on their own.
		assert.True(t, result.CanDowngrade)
	})

	t.Run("unknown current plan yields no warnings", func(t *testing.T) {
		t.Parallel()

		tenantID := uuid.New()
		v := newValidator(t, map[uuid.UUID]usage.Snapshot{tenantID: {}}, "LEGACY")

		result, err := v.Validate(context.Background(), tenantID, "BASICO")
		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
	})
}

func TestValidate_Idempotent(t *testing.T) {
	t.Parallel()

	tenantID := uuid.New()
	v := newValidator(t, map[uuid.UUID]usage.Snapshot{
		tenantID: {Pets: 700, Users: 5, StorageBytes: 10 * plan.GiB},
	}, "PROFESIONAL")

	first, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.NoError(t, err)
	second, err := v.Validate(context.Background(), tenantID, "BASICO")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolutionSteps(t *testing.T) {
	t.Parallel()

	t.Run("suggestions plus proceed step", func(t *testing.T) {
		t.Parallel()

		v := &downgrade.Validation{
			Blockers: []downgrade.Blocker{
				{Suggestion: "Archive or delete 200 pet records to fit the Basico plan"},
				{Suggestion: "Deactivate 2 user accounts to fit the Basico plan"},
			},
		}

		steps := downgrade.ResolutionSteps(v)
		require.Len(t, steps, 3)
		assert.Equal(t, "Once resolved, you can proceed with the downgrade", steps[2])
	})

	t.Run("no blockers means no steps", func(t *testing.T) {
		t.Parallel()

		steps := downgrade.ResolutionSteps(&downgrade.Validation{CanDowngrade: true})
		assert.Empty(t, steps)
	})

	t.Run("blocker without suggestion contributes nothing", func(t *testing.T) {
		t.Parallel()

		steps := downgrade.ResolutionSteps(&downgrade.Validation{
			Blockers: []downgrade.Blocker{{Message: "over limit"}},
		})
		assert.Empty(t, steps)
	})
}
