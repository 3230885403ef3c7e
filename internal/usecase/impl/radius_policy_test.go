package impl

import (
	"testing"

	"jobmatch/config"
	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func TestRadiusPolicy_Resolve_NilDefaultsToCap(t *testing.T) {
	policy := newRadiusPolicy(config.DefaultMatching())

	free, err := policy.resolve(nil, entity.TierFree)
	require.NoError(t, err)
	assert.Equal(t, 10.0, free)

	premium, err := policy.resolve(nil, entity.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, 100.0, premium)
}

func TestRadiusPolicy_Resolve_ClampsToTierCap(t *testing.T) {
	policy := newRadiusPolicy(config.DefaultMatching())

	// A free-tier caller asking for 500km is silently capped, not rejected.
	radius, err := policy.resolve(float64Ptr(500), entity.TierFree)
	require.NoError(t, err)
	assert.Equal(t, 10.0, radius)

	radius, err = policy.resolve(float64Ptr(500), entity.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, 100.0, radius)
}

func TestRadiusPolicy_Resolve_RequestBelowCapWins(t *testing.T) {
	policy := newRadiusPolicy(config.DefaultMatching())

	radius, err := policy.resolve(float64Ptr(5), entity.TierFree)
	require.NoError(t, err)
	assert.Equal(t, 5.0, radius)

	radius, err = policy.resolve(float64Ptr(42.5), entity.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, 42.5, radius)
}

func TestRadiusPolicy_Resolve_RejectsNonPositive(t *testing.T) {
	policy := newRadiusPolicy(config.DefaultMatching())

	for _, requested := range []float64{0, -1, -100} {
		_, err := policy.resolve(float64Ptr(requested), entity.TierFree)
		assert.Equal(t, domainerrors.ErrInvalidRadius, err)
	}
}

func TestRadiusPolicy_CapFor_UnknownTierFallsBackToFree(t *testing.T) {
	policy := newRadiusPolicy(config.DefaultMatching())

	assert.Equal(t, 10.0, policy.capFor(entity.SubscriptionTier("enterprise")))
	assert.Equal(t, 10.0, policy.capFor(entity.SubscriptionTier("")))
}

func TestRadiusPolicy_ConfigurableCaps(t *testing.T) {
	policy := newRadiusPolicy(&config.MatchingConfig{
		FreeRadiusKm:    25,
		PremiumRadiusKm: 250,
	})

	radius, err := policy.resolve(float64Ptr(500), entity.TierFree)
	require.NoError(t, err)
	assert.Equal(t, 25.0, radius)

	radius, err = policy.resolve(nil, entity.TierPremium)
	require.NoError(t, err)
	assert.Equal(t, 250.0, radius)
}

func TestRadiusPolicy_ZeroConfigUsesDefaults(t *testing.T) {
	policy := newRadiusPolicy(&config.MatchingConfig{})

	assert.Equal(t, config.DefaultFreeRadiusKm, policy.freeCapKm)
	assert.Equal(t, config.DefaultPremiumRadiusKm, policy.premiumCapKm)
}
