package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
)

// folderGateway implements repositories.FolderGateway over the REST API.
type folderGateway struct {
	c *Client
}

// Folders returns the folder gateway view of the client.
func (c *Client) Folders() repositories.FolderGateway {
	return folderGateway{c: c}
}

func (g folderGateway) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	var out models.Folder
	if err := g.c.doJSON(ctx, http.MethodPost, "/api/folders", nil, folder, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g folderGateway) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	var out models.Folder
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/folders/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g folderGateway) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	var out models.Folder
	if err := g.c.doJSON(ctx, http.MethodPut, "/api/folders/"+folder.ID, nil, folder, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g folderGateway) Delete(ctx context.Context, id string) (*models.Folder, error) {
	var out models.Folder
	if err := g.c.doJSON(ctx, http.MethodDelete, "/api/folders/"+id, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (g folderGateway) ListByWorkspace(ctx context.Context, workspaceID string, inTrash bool) ([]models.Folder, error) {
	query := url.Values{
		"workspace_id": {workspaceID},
		"in_trash":     {strconv.FormatBool(inTrash)},
	}
	var out []models.Folder
	if err := g.c.doJSON(ctx, http.MethodGet, "/api/folders", query, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
