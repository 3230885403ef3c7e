package model

import (
	"time"

	"github.com/google/uuid"
)

// UserSubscriptionModel is the GORM-specific struct for the 'user_subscriptions' table.
// It mirrors the subscription state owned by the billing service; the matching
// engine only reads it to resolve the radius cap for a caller.
type UserSubscriptionModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Tier      string    `gorm:"type:varchar(32);not null;default:'free'"`
	ExpiresAt *time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserSubscriptionModel) TableName() string {
	return "user_subscriptions"
}
