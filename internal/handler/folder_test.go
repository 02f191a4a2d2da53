package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/httputil"
)

const (
	testUserID      = "11111111-1111-1111-1111-111111111111"
	testOtherUserID = "22222222-2222-2222-2222-222222222222"
	testWorkspaceID = "33333333-3333-3333-3333-333333333333"
	testFolderID    = "44444444-4444-4444-4444-444444444444"
)

type stubFolderGateway struct {
	persisted *models.Folder // returned by GetByID; defaults to a folder in the test workspace
	created   *models.Folder
	updated   *models.Folder
	deleted   []string
	list      []models.Folder
	err       error
}

func (s *stubFolderGateway) Create(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.created = folder
	return folder, nil
}

func (s *stubFolderGateway) GetByID(ctx context.Context, id string) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.persisted != nil {
		return s.persisted, nil
	}
	return &models.Folder{ID: id, Title: "Persisted", WorkspaceID: testWorkspaceID}, nil
}

func (s *stubFolderGateway) Update(ctx context.Context, folder *models.Folder) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.updated = folder
	return folder, nil
}

func (s *stubFolderGateway) Delete(ctx context.Context, id string) (*models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.deleted = append(s.deleted, id)
	return &models.Folder{ID: id, Title: "Deleted"}, nil
}

func (s *stubFolderGateway) ListByWorkspace(ctx context.Context, workspaceID string, inTrash bool) ([]models.Folder, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.list, nil
}

type stubWorkspaceGateway struct {
	ownerID string
	err     error
}

func (s *stubWorkspaceGateway) Create(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	return workspace, nil
}

func (s *stubWorkspaceGateway) GetByID(ctx context.Context, id string) (*models.Workspace, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Workspace{ID: id, Title: "Workspace", OwnerID: s.ownerID}, nil
}

func (s *stubWorkspaceGateway) ListByOwner(ctx context.Context, ownerID string) ([]models.Workspace, error) {
	return nil, nil
}

func (s *stubWorkspaceGateway) Update(ctx context.Context, workspace *models.Workspace) (*models.Workspace, error) {
	return workspace, nil
}

func (s *stubWorkspaceGateway) Delete(ctx context.Context, id string) (*models.Workspace, error) {
	return &models.Workspace{ID: id}, nil
}

// newFolderMux routes requests the way the server does, with the test user
// pre-authenticated.
func newFolderMux(folders *stubFolderGateway, workspaces *stubWorkspaceGateway) http.Handler {
	h := NewFolderHandler(folders, workspaces, slog.Default())

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/folders", h.ListFolders)
	mux.HandleFunc("POST /api/folders", h.CreateFolder)
	mux.HandleFunc("GET /api/folders/{id}", h.GetFolder)
	mux.HandleFunc("PUT /api/folders/{id}", h.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", h.DeleteFolder)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mux.ServeHTTP(w, httputil.WithUserID(r, testUserID))
	})
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(data)
}

func TestListFolders(t *testing.T) {
	folders := &stubFolderGateway{
		list: []models.Folder{{ID: testFolderID, Title: "Docs", WorkspaceID: testWorkspaceID}},
	}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodGet, "/api/folders?workspace_id="+testWorkspaceID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got []models.Folder
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Docs" {
		t.Errorf("response = %+v", got)
	}
}

func TestListFoldersRejectsBadWorkspaceID(t *testing.T) {
	mux := newFolderMux(&stubFolderGateway{}, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodGet, "/api/folders?workspace_id=not-a-uuid", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestListFoldersForbiddenForForeignWorkspace(t *testing.T) {
	mux := newFolderMux(&stubFolderGateway{}, &stubWorkspaceGateway{ownerID: testOtherUserID})

	req := httptest.NewRequest(http.MethodGet, "/api/folders?workspace_id="+testWorkspaceID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
}

func TestListFoldersEmptyIsJSONArray(t *testing.T) {
	mux := newFolderMux(&stubFolderGateway{}, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodGet, "/api/folders?workspace_id="+testWorkspaceID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if body := rec.Body.String(); body != "[]" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestCreateFolder(t *testing.T) {
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	body := jsonBody(t, models.Folder{
		ID:          testFolderID,
		Title:       "Research",
		WorkspaceID: testWorkspaceID,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/folders", body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if folders.created == nil || folders.created.ID != testFolderID {
		t.Errorf("gateway got %+v, want the client-minted ID kept", folders.created)
	}
	if folders.created.CreatedAt.IsZero() {
		t.Error("handler should default a missing created_at")
	}
}

func TestCreateFolderValidation(t *testing.T) {
	tests := []struct {
		name   string
		folder models.Folder
	}{
		{
			name: "short title",
			folder: models.Folder{
				ID:          testFolderID,
				Title:       "ab",
				WorkspaceID: testWorkspaceID,
			},
		},
		{
			name: "missing ID",
			folder: models.Folder{
				Title:       "Valid title",
				WorkspaceID: testWorkspaceID,
			},
		},
		{
			name: "non-UUID workspace",
			folder: models.Folder{
				ID:          testFolderID,
				Title:       "Valid title",
				WorkspaceID: "nope",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			folders := &stubFolderGateway{}
			mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

			req := httptest.NewRequest(http.MethodPost, "/api/folders", jsonBody(t, tt.folder))
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if folders.created != nil {
				t.Error("invalid folder must not reach the gateway")
			}
		})
	}
}

func TestUpdateFolderUsesPathID(t *testing.T) {
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	body := jsonBody(t, models.Folder{
		ID:          "99999999-9999-9999-9999-999999999999", // ignored
		Title:       "Renamed",
		WorkspaceID: testWorkspaceID,
		InTrash:     true,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/folders/"+testFolderID, body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if folders.updated == nil || folders.updated.ID != testFolderID {
		t.Errorf("gateway got %+v, want path ID to win", folders.updated)
	}
	if !folders.updated.InTrash {
		t.Error("trash flag should pass through the update")
	}
}

func TestDeleteFolder(t *testing.T) {
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodDelete, "/api/folders/"+testFolderID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	if len(folders.deleted) != 1 || folders.deleted[0] != testFolderID {
		t.Errorf("deleted = %v", folders.deleted)
	}
}

func TestDeleteFolderForbiddenForForeignWorkspace(t *testing.T) {
	// The folder's persisted workspace belongs to someone else; the delete
	// must be rejected before the gateway is reached.
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testOtherUserID})

	req := httptest.NewRequest(http.MethodDelete, "/api/folders/"+testFolderID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if len(folders.deleted) != 0 {
		t.Errorf("deleted = %v, foreign folder must not reach the gateway", folders.deleted)
	}
}

func TestUpdateFolderForbiddenForForeignWorkspace(t *testing.T) {
	// The caller owns the workspace named in the body, but the persisted
	// folder lives in someone else's workspace. Authorization must follow
	// the persisted record.
	attackerWorkspace := "55555555-5555-5555-5555-555555555555"
	folders := &stubFolderGateway{
		persisted: &models.Folder{
			ID:          testFolderID,
			Title:       "Victim folder",
			WorkspaceID: testWorkspaceID,
		},
	}
	workspaces := &stubWorkspaceGateway{ownerID: testOtherUserID}
	mux := newFolderMux(folders, workspaces)

	body := jsonBody(t, models.Folder{
		ID:          testFolderID,
		Title:       "Hijacked",
		WorkspaceID: attackerWorkspace,
	})
	req := httptest.NewRequest(http.MethodPut, "/api/folders/"+testFolderID, body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want 403", rec.Code)
	}
	if folders.updated != nil {
		t.Errorf("gateway got %+v, foreign folder must not be updated", folders.updated)
	}
}

func TestUpdateFolderRejectsWorkspaceChange(t *testing.T) {
	// Caller owns both the folder's workspace and the one in the body, but
	// moving a folder between workspaces via update is not allowed.
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	body := jsonBody(t, models.Folder{
		Title:       "Relocated",
		WorkspaceID: "55555555-5555-5555-5555-555555555555",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/folders/"+testFolderID, body)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
	if folders.updated != nil {
		t.Error("workspace change must not reach the gateway")
	}
}

func TestGetFolder(t *testing.T) {
	folders := &stubFolderGateway{}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodGet, "/api/folders/"+testFolderID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got models.Folder
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != testFolderID {
		t.Errorf("folder = %+v", got)
	}
}

func TestDeleteFolderNotFound(t *testing.T) {
	folders := &stubFolderGateway{
		err: fmt.Errorf("folder: %w", domain.ErrNotFound),
	}
	mux := newFolderMux(folders, &stubWorkspaceGateway{ownerID: testUserID})

	req := httptest.NewRequest(http.MethodDelete, "/api/folders/"+testFolderID, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want problem+json", ct)
	}
}
