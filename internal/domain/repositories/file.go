package repositories

import (
	"context"

	"lipi/internal/domain/models"
)

// FileGateway defines remote persistence operations for files.
type FileGateway interface {
	// Create persists a file with a client-minted ID and returns the
	// persisted record.
	Create(ctx context.Context, file *models.File) (*models.File, error)

	// GetByID retrieves a file by ID
	GetByID(ctx context.Context, id string) (*models.File, error)

	// Update replaces a full file record and returns the persisted record
	Update(ctx context.Context, file *models.File) (*models.File, error)

	// Delete permanently removes a file and returns the deleted record
	Delete(ctx context.Context, id string) (*models.File, error)

	// ListByWorkspace lists all files in a workspace (trashed included,
	// views filter locally), ordered by creation time.
	ListByWorkspace(ctx context.Context, workspaceID string) ([]models.File, error)
}
