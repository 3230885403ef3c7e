package repository

import (
	"context"

	"jobmatch/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscriptionRepository exposes the subscription status the radius policy
// consumes. Plan management and payment handling live in the billing service.
type SubscriptionRepository interface {
	// TierOf returns the subscription tier for a user. Users without an active
	// premium plan resolve to the free tier; unknown users do too, so an
	// anonymous caller is always capped at the free radius.
	TierOf(ctx context.Context, userID uuid.UUID) (entity.SubscriptionTier, error)
}
