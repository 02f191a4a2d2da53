package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

const folderColumns = "id, title, icon_id, data, banner_url, workspace_id, in_trash, created_at"

// PostgresFolderRepository implements the FolderGateway interface
type PostgresFolderRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFolderRepository creates a new folder repository
func NewFolderRepository(config *RepositoryConfig) repositories.FolderGateway {
	return &PostgresFolderRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a folder under its client-minted ID
func (r *PostgresFolderRepository) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, icon_id, data, banner_url, workspace_id, in_trash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`, r.tables.Folders, folderColumns)

	row := r.pool.QueryRow(ctx, query,
		folder.ID,
		folder.Title,
		folder.IconID,
		folder.Data,
		folder.BannerURL,
		folder.WorkspaceID,
		folder.InTrash,
		folder.CreatedAt,
	)

	persisted, err := scanFolder(row)
	if err != nil {
		if isPgDuplicateError(err) {
			return nil, fmt.Errorf("folder %s: %w", folder.ID, domain.ErrConflict)
		}
		if isPgForeignKeyError(err) {
			return nil, fmt.Errorf("workspace %s: %w", folder.WorkspaceID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("create folder: %w", err)
	}

	return persisted, nil
}

// GetByID retrieves a folder by ID
func (r *PostgresFolderRepository) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, folderColumns, r.tables.Folders)

	folder, err := scanFolder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get folder: %w", err)
	}

	return folder, nil
}

// Update replaces a full folder record
func (r *PostgresFolderRepository) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, icon_id = $2, data = $3, banner_url = $4, in_trash = $5
		WHERE id = $6
		RETURNING %s
	`, r.tables.Folders, folderColumns)

	row := r.pool.QueryRow(ctx, query,
		folder.Title,
		folder.IconID,
		folder.Data,
		folder.BannerURL,
		folder.InTrash,
		folder.ID,
	)

	persisted, err := scanFolder(row)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", folder.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update folder: %w", err)
	}

	return persisted, nil
}

// Delete permanently removes a folder
func (r *PostgresFolderRepository) Delete(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING %s
	`, r.tables.Folders, folderColumns)

	deleted, err := scanFolder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("folder %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete folder: %w", err)
	}

	return deleted, nil
}

// ListByWorkspace lists folders with the given trash flag, oldest first
func (r *PostgresFolderRepository) ListByWorkspace(ctx context.Context, workspaceID string, inTrash bool) ([]models.Folder, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE workspace_id = $1 AND in_trash = $2
		ORDER BY created_at
	`, folderColumns, r.tables.Folders)

	rows, err := r.pool.Query(ctx, query, workspaceID, inTrash)
	if err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	defer rows.Close()

	var folders []models.Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folders = append(folders, *folder)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}

	return folders, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (*models.Folder, error) {
	var folder models.Folder
	err := row.Scan(
		&folder.ID,
		&folder.Title,
		&folder.IconID,
		&folder.Data,
		&folder.BannerURL,
		&folder.WorkspaceID,
		&folder.InTrash,
		&folder.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &folder, nil
}
