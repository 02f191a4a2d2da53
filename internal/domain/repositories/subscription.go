package repositories

import (
	"context"

	"lipi/internal/domain/models"
)

// SubscriptionGateway exposes read access to billing state. The sync engine
// only ever consumes the subscription status.
type SubscriptionGateway interface {
	// GetByUser retrieves a user's subscription. Returns ErrNotFound when
	// the user has never subscribed (treated as free tier by callers).
	GetByUser(ctx context.Context, userID string) (*models.Subscription, error)
}
