package postgres

import (
	"context"
	"time"

	"jobmatch/internal/domain/entity"
	"jobmatch/internal/domain/repository"
	"jobmatch/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// TierOf returns the subscription tier for a user. Unknown users, expired
// plans, and unrecognized tier values all resolve to the free tier so a caller
// is never granted a wider radius than their plan warrants.
func (repo *subscriptionRepository) TierOf(ctx context.Context, userID uuid.UUID) (entity.SubscriptionTier, error) {
	return lookupTier(ctx, repo.db, userID)
}

// lookupTier resolves a user's effective tier. It is shared with the candidate
// repository, which needs the tier when hydrating a caller's profile.
func lookupTier(ctx context.Context, db *gorm.DB, userID uuid.UUID) (entity.SubscriptionTier, error) {
	var subscriptionM model.UserSubscriptionModel

	if err := db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entity.TierFree, nil
		}

		return entity.TierFree, errors.Wrap(err, "failed to look up subscription tier")
	}

	tier := entity.SubscriptionTier(subscriptionM.Tier)
	if !tier.IsValid() {
		return entity.TierFree, nil
	}
	if subscriptionM.ExpiresAt != nil && subscriptionM.ExpiresAt.Before(time.Now()) {
		return entity.TierFree, nil
	}

	return tier, nil
}
