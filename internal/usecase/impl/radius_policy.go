package impl

import (
	"jobmatch/config"
	"jobmatch/internal/domain/entity"
	domainerrors "jobmatch/internal/domain/errors"
)

// radiusPolicy resolves the effective search radius from the requested value
// and the caller's subscription tier. Caps come from configuration; a premium
// subscription widens the cap, it never bypasses it.
type radiusPolicy struct {
	freeCapKm    float64
	premiumCapKm float64
}

func newRadiusPolicy(cfg *config.MatchingConfig) *radiusPolicy {
	freeCap := cfg.FreeRadiusKm
	if freeCap <= 0 {
		freeCap = config.DefaultFreeRadiusKm
	}

	premiumCap := cfg.PremiumRadiusKm
	if premiumCap <= 0 {
		premiumCap = config.DefaultPremiumRadiusKm
	}

	return &radiusPolicy{
		freeCapKm:    freeCap,
		premiumCapKm: premiumCap,
	}
}

// capFor returns the radius cap for a tier. Unknown tiers fall back to the
// free cap so a corrupt tier value never widens a search.
func (p *radiusPolicy) capFor(tier entity.SubscriptionTier) float64 {
	if tier == entity.TierPremium {
		return p.premiumCapKm
	}

	return p.freeCapKm
}

// resolve returns min(requested, cap) for the tier. A nil request means
// "as far as my plan allows" and resolves to the cap; zero or negative
// requests are rejected.
func (p *radiusPolicy) resolve(requestedKm *float64, tier entity.SubscriptionTier) (float64, error) {
	capKm := p.capFor(tier)

	if requestedKm == nil {
		return capKm, nil
	}

	if *requestedKm <= 0 {
		return 0, domainerrors.ErrInvalidRadius
	}

	if *requestedKm < capKm {
		return *requestedKm, nil
	}

	return capKm, nil
}
