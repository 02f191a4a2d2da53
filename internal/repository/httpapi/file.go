package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

// fileGateway implements repositories.FileGateway over the REST API.
type fileGateway struct {
	c *Client
}

// Files returns the file gateway view of the client.
func (c *Client) Files() repositories.FileGateway {
	return fileGateway{c: c}
}

func (g fileGateway) Create(ctx context.Context, file *models.File) (*models.File, error) {
	var out models.File
	if err := g.c.doJSON(ctx, http.MethodPost, "/api/files", nil, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g fileGateway) GetByID(ctx context.Context, id string) (*models.File, error) {
	var out models.File
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/files/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g fileGateway) Update(ctx context.Context, file *models.File) (*models.File, error) {
	var out models.File
	if err := g.c.doJSON(ctx, http.MethodPut, "/api/files/"+file.ID, nil, file, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g fileGateway) Delete(ctx context.Context, id string) (*models.File, error) {
	var out models.File
	if err := g.c.doJSON(ctx, http.MethodDelete, "/api/files/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g fileGateway) ListByWorkspace(ctx context.Context, workspaceID string) ([]models.File, error) {
	query := url.Values{
		"workspace_id": {workspaceID},
	}
	var out []models.File
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/files", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
