package repositories

import (
	"context"

	"lipi/internal/domain/models"
)

// FolderGateway defines remote persistence operations for folders.
// All calls return the persisted record or an error; the sync engine wraps
// failures as PersistenceError.
type FolderGateway interface {
	// Create persists a folder with a client-minted ID and returns the
	// persisted record.
	Create(ctx context.Context, folder *models.Folder) (*models.Folder, error)

	// GetByID retrieves a folder by ID
	GetByID(ctx context.Context, id string) (*models.Folder, error)

	// Update replaces a full folder record and returns the persisted record
	Update(ctx context.Context, folder *models.Folder) (*models.Folder, error)

	// Delete permanently removes a folder and returns the deleted record
	Delete(ctx context.Context, id string) (*models.Folder, error)

	// ListByWorkspace lists a workspace's folders with the given trash
	// flag, ordered by creation time.
	ListByWorkspace(ctx context.Context, workspaceID string, inTrash bool) ([]models.Folder, error)
}
