package engine

import (
	"errors"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
)

// Hydrate seeds the store once at session start: both folder lists (active
// and trashed), the workspace's files, and the user's subscription status.
// It is the only place the engine fetches; afterwards the mirror moves only
// through dispatched mutations.
func (e *Engine) Hydrate(user *models.User) error {
	active, err := e.folders.ListByWorkspace(e.ctx, e.workspaceID, false)
	if err != nil {
		return &domain.PersistenceError{Op: "list folders", Cause: err}
	}

	trashed, err := e.folders.ListByWorkspace(e.ctx, e.workspaceID, true)
	if err != nil {
		return &domain.PersistenceError{Op: "list folders", Cause: err}
	}

	files, err := e.files.ListByWorkspace(e.ctx, e.workspaceID)
	if err != nil {
		return &domain.PersistenceError{Op: "list files", Cause: err}
	}

	var sub *models.Subscription
	if user != nil {
		sub, err = e.subs.GetByUser(e.ctx, user.ID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return &domain.PersistenceError{Op: "get subscription", Cause: err}
		}
		// No subscription row means the user never subscribed: free tier.
	}

	folders := make([]models.Folder, 0, len(active)+len(trashed))
	folders = append(folders, active...)
	folders = append(folders, trashed...)

	e.store.Seed(user, folders, files)

	e.mu.Lock()
	e.sub = sub
	e.mu.Unlock()

	e.logger.Info("session hydrated",
		"workspace_id", e.workspaceID,
		"folders", len(folders),
		"files", len(files),
		"plan", e.plans.ForSubscription(sub).ID,
	)
	return nil
}

// RefreshSubscription re-reads the subscription status, e.g. after the
// billing provider confirms an upgrade.
func (e *Engine) RefreshSubscription(userID string) error {
	sub, err := e.subs.GetByUser(e.ctx, userID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return &domain.PersistenceError{Op: "get subscription", Cause: err}
	}

	e.mu.Lock()
	e.sub = sub
	e.mu.Unlock()

	e.logger.Debug("subscription refreshed", "plan", e.plans.ForSubscription(sub).ID)
	return nil
}
