package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
)

func TestFolderCreateSendsBearerTokenAndJSON(t *testing.T) {
	var gotAuth, gotContentType, gotPath string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path

		var folder models.Folder
		if err := json.NewDecoder(r.Body).Decode(&folder); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(folder)
	}))
	defer server.Close()

	client := NewClient(server.URL, "session-jwt")
	folder, err := client.Folders().Create(context.Background(), &models.Folder{
		ID:          "f1",
		Title:       "Synced",
		WorkspaceID: "ws-1",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if gotAuth != "Bearer session-jwt" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type = %q", gotContentType)
	}
	if gotPath != "/api/folders" {
		t.Errorf("path = %q", gotPath)
	}
	if folder.ID != "f1" || folder.Title != "Synced" {
		t.Errorf("persisted = %+v", folder)
	}
}

func TestFolderListBuildsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("workspace_id"); got != "ws-1" {
			t.Errorf("workspace_id = %q", got)
		}
		if got := r.URL.Query().Get("in_trash"); got != "true" {
			t.Errorf("in_trash = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Folder{{ID: "f1", InTrash: true}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "t")
	folders, err := client.Folders().ListByWorkspace(context.Background(), "ws-1", true)
	if err != nil {
		t.Fatalf("ListByWorkspace: %v", err)
	}
	if len(folders) != 1 || !folders[0].InTrash {
		t.Errorf("folders = %+v", folders)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{"not found", http.StatusNotFound, domain.ErrNotFound},
		{"unauthorized", http.StatusUnauthorized, domain.ErrUnauthorized},
		{"forbidden", http.StatusForbidden, domain.ErrForbidden},
		{"conflict", http.StatusConflict, domain.ErrConflict},
		{"bad request", http.StatusBadRequest, domain.ErrValidation},
		{"payment required", http.StatusPaymentRequired, domain.ErrQuotaExceeded},
		{"server error", http.StatusInternalServerError, domain.ErrPersistence},
		{"bad gateway", http.StatusBadGateway, domain.ErrPersistence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/problem+json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"title":  http.StatusText(tt.status),
					"status": tt.status,
					"detail": "something specific went wrong",
				})
			}))
			defer server.Close()

			client := NewClient(server.URL, "t")
			_, err := client.Folders().Delete(context.Background(), "f1")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSubscriptionNotFoundMapsToErrNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/users/me/subscription" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, "t")
	_, err := client.Subscriptions().GetByUser(context.Background(), "u1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
