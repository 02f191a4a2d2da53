package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

const fileColumns = "id, title, icon_id, data, banner_url, workspace_id, folder_id, in_trash, created_at"

// PostgresFileRepository implements the FileGateway interface
type PostgresFileRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewFileRepository creates a new file repository
func NewFileRepository(config *RepositoryConfig) repositories.FileGateway {
	return &PostgresFileRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a file under its client-minted ID
func (r *PostgresFileRepository) Create(ctx context.Context, file *models.File) (*models.File, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, icon_id, data, banner_url, workspace_id, folder_id, in_trash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, r.tables.Files, fileColumns)

	row := r.pool.QueryRow(ctx, query,
		file.ID,
		file.Title,
		file.IconID,
		file.Data,
		file.BannerURL,
		file.WorkspaceID,
		file.FolderID,
		file.InTrash,
		file.CreatedAt,
	)

	persisted, err := scanFile(row)
	if err != nil {
		if isPgDuplicateError(err) {
			return nil, fmt.Errorf("file %s: %w", file.ID, domain.ErrConflict)
		}
		if isPgForeignKeyError(err) {
			return nil, fmt.Errorf("folder %s: %w", file.FolderID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("create file: %w", err)
	}

	return persisted, nil
}

// GetByID retrieves a file by ID
func (r *PostgresFileRepository) GetByID(ctx context.Context, id string) (*models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, fileColumns, r.tables.Files)

	file, err := scanFile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get file: %w", err)
	}

	return file, nil
}

// Update replaces a full file record
func (r *PostgresFileRepository) Update(ctx context.Context, file *models.File) (*models.File, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, icon_id = $2, data = $3, banner_url = $4, in_trash = $5
		WHERE id = $6
		RETURNING %s
	`, r.tables.Files, fileColumns)

	row := r.pool.QueryRow(ctx, query,
		file.Title,
		file.IconID,
		file.Data,
		file.BannerURL,
		file.InTrash,
		file.ID,
	)

	persisted, err := scanFile(row)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", file.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update file: %w", err)
	}

	return persisted, nil
}

// Delete permanently removes a file
func (r *PostgresFileRepository) Delete(ctx context.Context, id string) (*models.File, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING %s
	`, r.tables.Files, fileColumns)

	deleted, err := scanFile(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("file %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete file: %w", err)
	}

	return deleted, nil
}

// ListByWorkspace lists all of a workspace's files, oldest first. Trashed
// files are included; the client mirror filters its own views.
func (r *PostgresFileRepository) ListByWorkspace(ctx context.Context, workspaceID string) ([]models.File, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE workspace_id = $1
		ORDER BY created_at
	`, fileColumns, r.tables.Files)

	rows, err := r.pool.Query(ctx, query, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}
	defer rows.Close()

	var files []models.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, fmt.Errorf("scan file: %w", err)
		}
		files = append(files, *file)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	return files, nil
}

func scanFile(row rowScanner) (*models.File, error) {
	var file models.File
	err := row.Scan(
		&file.ID,
		&file.Title,
		&file.IconID,
		&file.Data,
		&file.BannerURL,
		&file.WorkspaceID,
		&file.FolderID,
		&file.InTrash,
		&file.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}
