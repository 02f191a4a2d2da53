package models

import (
	"time"
)

// SubscriptionStatus mirrors the Stripe subscription lifecycle states.
type SubscriptionStatus string

const (
	SubscriptionActive            SubscriptionStatus = "active"
	SubscriptionTrialing          SubscriptionStatus = "trialing"
	SubscriptionPastDue           SubscriptionStatus = "past_due"
	SubscriptionCanceled          SubscriptionStatus = "canceled"
	SubscriptionIncomplete        SubscriptionStatus = "incomplete"
	SubscriptionIncompleteExpired SubscriptionStatus = "incomplete_expired"
	SubscriptionUnpaid            SubscriptionStatus = "unpaid"
)

// Valid reports whether s is one of the known lifecycle states.
func (s SubscriptionStatus) Valid() bool {
	switch s {
	case SubscriptionActive, SubscriptionTrialing, SubscriptionPastDue,
		SubscriptionCanceled, SubscriptionIncomplete,
		SubscriptionIncompleteExpired, SubscriptionUnpaid:
		return true
	}
	return false
}

// Subscription is read-only to the sync engine; only its status is consumed.
// Any status other than "active" is billed as free tier.
type Subscription struct {
	ID                 string             `json:"id" db:"id"`
	UserID             string             `json:"user_id" db:"user_id"`
	Status             SubscriptionStatus `json:"status" db:"status"`
	PriceID            *string            `json:"price_id,omitempty" db:"price_id"`
	Quantity           int                `json:"quantity" db:"quantity"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end" db:"cancel_at_period_end"`
	Created            time.Time          `json:"created" db:"created"`
	CurrentPeriodStart time.Time          `json:"current_period_start" db:"current_period_start"`
	CurrentPeriodEnd   time.Time          `json:"current_period_end" db:"current_period_end"`
}

// IsActive reports whether the subscription grants paid-tier entitlements.
// Trialing deliberately does not count: trials keep free-tier quotas.
func (s *Subscription) IsActive() bool {
	return s != nil && s.Status == SubscriptionActive
}
