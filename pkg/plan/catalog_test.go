package plan_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicore/clinickit/pkg/plan"
)

func TestCatalog_Get(t *testing.T) {
	t.Parallel()

	catalog := plan.DefaultCatalog()

	t.Run("case-insensitive lookup", func(t *testing.T) {
		t.Parallel()

		for _, key := range []string{"PROFESIONAL", "profesional", "Profesional", " profesional "} {
			p, err := catalog.Get(key)
			require.NoError(t, err, "key %q", key)
			assert.Equal(t, "PROFESIONAL", p.Key)
		}
	})

	t.Run("miss names the offending key", func(t *testing.T) {
		t.Parallel()

		_, err := catalog.Get("GOLD")
		require.Error(t, err)
		assert.ErrorIs(t, err, plan.ErrPlanNotFound)
		assert.Contains(t, err.Error(), "GOLD")
	})
}

func TestCatalog_TierOrder(t *testing.T) {
	t.Parallel()

	catalog := plan.DefaultCatalog()
	assert.Equal(t, []string{"BASICO", "PROFESIONAL", "EMPRESARIAL"}, catalog.TierOrder())

	plans := catalog.Plans()
	require.Len(t, plans, 3)
	for i := 1; i < len(plans); i++ {
		assert.Greater(t, plans[i].TierRank, plans[i-1].TierRank)
	}
}

func TestCatalog_IsDowngrade(t *testing.T) {
	t.Parallel()

	catalog := plan.DefaultCatalog()

	tests := []struct {
		name    string
		current string
		target  string
		want    bool
	}{
		{"higher to lower tier", "PROFESIONAL", "BASICO", true},
		{"lower to higher tier", "BASICO", "PROFESIONAL", false},
		{"same tier", "BASICO", "basico", false},
		{"case-insensitive", "empresarial", "Basico", true},
		// Position -1 asymmetry: an unknown current plan never
		// registers as downgrading, an unknown target always does.
		{"unknown current plan", "UNKNOWN", "PROFESIONAL", false},
		{"unknown target plan", "PROFESIONAL", "UNKNOWN", true},
		{"both unknown", "UNKNOWN", "ALSO_UNKNOWN", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, catalog.IsDowngrade(tt.current, tt.target))
		})
	}
}

func TestNewCatalog_Validation(t *testing.T) {
	t.Parallel()

	t.Run("duplicate keys rejected", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewCatalog([]plan.Plan{
			{Key: "basico", Name: "Basico", TierRank: 1},
			{Key: "BASICO", Name: "Basico Again", TierRank: 2},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("duplicate tier ranks rejected", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewCatalog([]plan.Plan{
			{Key: "A", Name: "A", TierRank: 1},
			{Key: "B", Name: "B", TierRank: 1},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("empty key rejected", func(t *testing.T) {
		t.Parallel()

		_, err := plan.NewCatalog([]plan.Plan{{Key: "  ", Name: "Blank", TierRank: 1}})
		require.Error(t, err)
		assert.ErrorIs(t, err, plan.ErrInvalidPlanConfiguration)
	})

	t.Run("keys canonicalized to uppercase", func(t *testing.T) {
		t.Parallel()

		catalog, err := plan.NewCatalog([]plan.Plan{{Key: "starter", Name: "Starter", TierRank: 1}})
		require.NoError(t, err)

		p, err := catalog.Get("STARTER")
		require.NoError(t, err)
		assert.Equal(t, "STARTER", p.Key)
	})
}

func TestNewCatalogFromSource(t *testing.T) {
	t.Parallel()

	src := plan.NewInMemSource(
		plan.Plan{Key: "BASICO", Name: "Basico", TierRank: 1},
		plan.Plan{Key: "PROFESIONAL", Name: "Profesional", TierRank: 2},
	)

	catalog, err := plan.NewCatalogFromSource(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, []string{"BASICO", "PROFESIONAL"}, catalog.TierOrder())
}

func TestDefaultCatalog_Limits(t *testing.T) {
	t.Parallel()

	catalog := plan.DefaultCatalog()

	basico, err := catalog.Get("BASICO")
	require.NoError(t, err)
	assert.Equal(t, int64(500), basico.Limits.MaxPets)
	assert.Equal(t, int64(3), basico.Limits.MaxUsers)
	assert.Equal(t, 5*plan.GiB, basico.Limits.MaxStorageBytes)

	empresarial, err := catalog.Get("EMPRESARIAL")
	require.NoError(t, err)
	assert.Equal(t, plan.Unlimited, empresarial.Limits.MaxPets)
	assert.Equal(t, plan.Unlimited, empresarial.Limits.MaxUsers)
	assert.True(t, empresarial.HasFeature(plan.FeatureAPI))
}
