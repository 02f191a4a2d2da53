package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

const workspaceColumns = "id, title, icon_id, data, logo, banner_url, owner_id, in_trash, created_at"

// PostgresWorkspaceRepository implements the WorkspaceGateway interface
type PostgresWorkspaceRepository struct {
	pool   *pgxpool.Pool
	tables *TableNames
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(config *RepositoryConfig) repositories.WorkspaceGateway {
	return &PostgresWorkspaceRepository{
		pool:   config.Pool,
		tables: config.Tables,
	}
}

// Create persists a workspace under its client-minted ID
func (r *PostgresWorkspaceRepository) Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		INSERT INTO %s (id, title, icon_id, data, logo, banner_url, owner_id, in_trash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %s
	`, r.tables.Workspaces, workspaceColumns)

	row := r.pool.QueryRow(ctx, query,
		workspace.ID,
		workspace.Title,
		workspace.IconID,
		workspace.Data,
		workspace.Logo,
		workspace.BannerURL,
		workspace.OwnerID,
		workspace.InTrash,
		workspace.CreatedAt,
	)

	persisted, err := scanWorkspace(row)
	if err != nil {
		if isPgDuplicateError(err) {
			return nil, fmt.Errorf("workspace %s: %w", workspace.ID, domain.ErrConflict)
		}
		return nil, fmt.Errorf("create workspace: %w", err)
	}

	return persisted, nil
}

// GetByID retrieves a workspace by ID
func (r *PostgresWorkspaceRepository) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1
	`, workspaceColumns, r.tables.Workspaces)

	workspace, err := scanWorkspace(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("get workspace: %w", err)
	}

	return workspace, nil
}

// ListByOwner lists an owner's workspaces, oldest first
func (r *PostgresWorkspaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.Workspace, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE owner_id = $1
		ORDER BY created_at
	`, workspaceColumns, r.tables.Workspaces)

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}
	defer rows.Close()

	var workspaces []models.Workspace
	for rows.Next() {
		workspace, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("scan workspace: %w", err)
		}
		workspaces = append(workspaces, *workspace)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list workspaces: %w", err)
	}

	return workspaces, nil
}

// Update replaces a full workspace record
func (r *PostgresWorkspaceRepository) Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		UPDATE %s
		SET title = $1, icon_id = $2, data = $3, logo = $4, banner_url = $5, in_trash = $6
		WHERE id = $7
		RETURNING %s
	`, r.tables.Workspaces, workspaceColumns)

	row := r.pool.QueryRow(ctx, query,
		workspace.Title,
		workspace.IconID,
		workspace.Data,
		workspace.Logo,
		workspace.BannerURL,
		workspace.InTrash,
		workspace.ID,
	)

	persisted, err := scanWorkspace(row)
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %s: %w", workspace.ID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update workspace: %w", err)
	}

	return persisted, nil
}

// Delete permanently removes a workspace. Folders and files cascade at the
// database level.
func (r *PostgresWorkspaceRepository) Delete(ctx context.Context, id string) (*models.Workspace, error) {
	query := fmt.Sprintf(`
		DELETE FROM %s
		WHERE id = $1
		RETURNING %s
	`, r.tables.Workspaces, workspaceColumns)

	deleted, err := scanWorkspace(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if isPgNoRowsError(err) {
			return nil, fmt.Errorf("workspace %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("delete workspace: %w", err)
	}

	return deleted, nil
}

func scanWorkspace(row rowScanner) (*models.Workspace, error) {
	var workspace models.Workspace
	err := row.Scan(
		&workspace.ID,
		&workspace.Title,
		&workspace.IconID,
		&workspace.Data,
		&workspace.Logo,
		&workspace.BannerURL,
		&workspace.OwnerID,
		&workspace.InTrash,
		&workspace.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &workspace, nil
}
