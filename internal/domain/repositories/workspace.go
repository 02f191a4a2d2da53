package repositories

import (
	"context"

	"lipi/internal/domain/models"
)

// WorkspaceGateway defines remote persistence operations for workspaces.
type WorkspaceGateway interface {
	// Create persists a workspace with a client-minted ID and returns the
	// persisted record.
	Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)

	// GetByID retrieves a workspace by ID
	GetByID(ctx context.Context, id string) (*models.Workspace, error)

	// ListByOwner lists an owner's workspaces ordered by creation time
	ListByOwner(ctx context.Context, ownerID string) ([]models.Workspace, error)

	// Update replaces a workspace record and returns the persisted record
	Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error)

	// Delete permanently removes a workspace and returns the deleted record
	Delete(ctx context.Context, id string) (*models.Workspace, error)
}
