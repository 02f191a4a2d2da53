package httpapi

import (
	"context"
	"net/http"

	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

// subscriptionGateway implements repositories.SubscriptionGateway over the
// REST API. The endpoint is always scoped to the session's own user.
type subscriptionGateway struct {
	c *Client
}

// Subscriptions returns the subscription gateway view of the client.
func (c *Client) Subscriptions() repositories.SubscriptionGateway {
	return subscriptionGateway{c: c}
}

func (g subscriptionGateway) GetByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	var out models.Subscription
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/users/me/subscription", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
