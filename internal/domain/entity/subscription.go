// Package entity contains the core business objects of the project.
package entity

// SubscriptionTier represents the subscription level of an account.
// The tier caps the search radius a caller may request.
type SubscriptionTier string

const (
	// TierFree is the default tier with the smaller radius cap.
	TierFree SubscriptionTier = "free"
	// TierPremium unlocks the extended search radius.
	TierPremium SubscriptionTier = "premium"
)

// String returns the string representation of the SubscriptionTier.
func (t SubscriptionTier) String() string {
	return string(t)
}

// IsValid checks if the SubscriptionTier is a valid value.
func (t SubscriptionTier) IsValid() bool {
	switch t {
	case TierFree, TierPremium:
		return true
	default:
		return false
	}
}
