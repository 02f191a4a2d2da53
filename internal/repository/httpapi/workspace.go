package httpapi

import (
	"context"
	"net/http"
	"net/url"

	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

// workspaceGateway implements repositories.WorkspaceGateway over the REST
// API.
type workspaceGateway struct {
	c *Client
}

// Workspaces returns the workspace gateway view of the client.
func (c *Client) Workspaces() repositories.WorkspaceGateway {
	return workspaceGateway{c: c}
}

func (g workspaceGateway) Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	var out models.Workspace
	if err := g.c.doJSON(ctx, http.MethodPost, "/api/workspaces", nil, workspace, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g workspaceGateway) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	var out models.Workspace
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/workspaces/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g workspaceGateway) ListByOwner(ctx context.Context, ownerID string) ([]models.Workspace, error) {
	// The server scopes the listing to the token's subject; owner_id is
	// passed for verification only.
	query := url.Values{
		"owner_id": {ownerID},
	}
	var out []models.Workspace
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/workspaces", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g workspaceGateway) Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	var out models.Workspace
	if err := g.c.doJSON(ctx, http.MethodPut, "/api/workspaces/"+workspace.ID, nil, workspace, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g workspaceGateway) Delete(ctx context.Context, id string) (*models.Workspace, error) {
	var out models.Workspace
	if err := g.c.doJSON(ctx, http.MethodDelete, "/api/workspaces/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
