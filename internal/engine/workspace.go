package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
)

// CreateWorkspace persists a new workspace for the given owner. Workspaces
// are not mirrored in the store (the session is pinned to one workspace),
// so creation is synchronous rather than optimistic: the caller navigates
// to the new workspace only once it exists.
func (e *Engine) CreateWorkspace(ctx context.Context, ownerID, title, iconID string) (*models.Workspace, error) {
	const op = "create workspace"

	if err := validateTitle(title); err != nil {
		e.notifier.Warn(op, err.Error())
		return nil, err
	}

	workspace := &models.Workspace{
		ID:        uuid.NewString(),
		Title:     title,
		IconID:    iconID,
		OwnerID:   ownerID,
		CreatedAt: time.Now().UTC(),
	}

	persisted, err := e.workspaces.Create(ctx, workspace)
	if err != nil {
		perr := &domain.PersistenceError{Op: op, Cause: err}
		e.notifier.Error(op, perr.Error())
		return nil, perr
	}

	e.notifier.Success(op, fmt.Sprintf("Workspace %q created.", persisted.Title))
	return persisted, nil
}
