package handler

import (
	"log/slog"
	"net/http"

	"lipi/internal/domain/repositories"
	"lipi/internal/httputil"
)

// SubscriptionHandler serves the authenticated user's billing state
type SubscriptionHandler struct {
	subscriptions repositories.SubscriptionGateway
	logger        *slog.Logger
}

// NewSubscriptionHandler creates a new subscription handler
func NewSubscriptionHandler(subscriptions repositories.SubscriptionGateway, logger *slog.Logger) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// GetSubscription returns the caller's current subscription record.
// A user who has never subscribed gets a 404; clients treat that as
// the free tier.
// GET /api/users/me/subscription
func (h *SubscriptionHandler) GetSubscription(w http.ResponseWriter, r *http.Request) {
	sub, err := h.subscriptions.GetByUser(r.Context(), httputil.GetUserID(r))
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, sub)
}
