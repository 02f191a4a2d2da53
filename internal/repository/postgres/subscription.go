package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

// PostgresSubscriptionRepository implements the SubscriptionGateway
// interface. Rows are written by the billing webhook pipeline; this side is
// read-only.
type PostgresSubscriptionRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(config *RepositoryConfig) repositories.SubscriptionGateway {
	return &PostgresSubscriptionRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// GetByUser retrieves a user's subscription, or ErrNotFound if the user
// never subscribed.
func (r *PostgresSubscriptionRepository) GetByUser(ctx context.Context, userID string) (*models.Subscription, error) {
	query := fmt.Sprintf(`
		SELECT id, user_id, status, price_id, quantity, cancel_at_period_end,
		       created, current_period_start, current_period_end
		FROM %s
		WHERE user_id = $1
		ORDER BY created DESC
		LIMIT 1
	`, r.tables.Subscriptions)

	var sub models.Subscription
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&sub.ID,
		&sub.UserID,
		&sub.Status,
		&sub.PriceID,
		&sub.Quantity,
		&sub.CancelAtPeriodEnd,
		&sub.Created,
		&sub.CurrentPeriodStart,
		&sub.CurrentPeriodEnd,
	)

	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("subscription for user %s: %w", userID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get subscription: %w", err)
	}

	return &sub, nil
}
