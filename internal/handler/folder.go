package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"lipi/internal/config"
	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/domain/repositories"
	"lipi/internal/httputil"
)

// FolderHandler handles folder HTTP requests
type FolderHandler struct {
	folders    repositories.FolderGateway
	workspaces repositories.WorkspaceGateway
	logger     *slog.Logger
}

// NewFolderHandler creates a new folder handler
func NewFolderHandler(folders repositories.FolderGateway, workspaces repositories.WorkspaceGateway, logger *slog.Logger) *FolderHandler {
	return &FolderHandler{
		folders:    folders,
		workspaces: workspaces,
		logger:     logger,
	}
}

// ListFolders lists a workspace's folders, split by trash flag
// GET /api/folders?workspace_id=...&in_trash=false
func (h *FolderHandler) ListFolders(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.URL.Query().Get("workspace_id")
	if err := uuid.Validate(workspaceID); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid workspace ID")
		return
	}

	if err := h.authorizeWorkspace(r, workspaceID); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	inTrash := r.URL.Query().Get("in_trash") == "true"

	folders, err := h.folders.ListByWorkspace(r.Context(), workspaceID, inTrash)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	httputil.RespondJSON(w, http.StatusOK, folders)
}

// CreateFolder persists a folder under its client-minted ID
// POST /api/folders
func (h *FolderHandler) CreateFolder(w http.ResponseWriter, r *http.Request) {
	var folder models.Folder
	if err := httputil.ParseJSON(w, r, &folder); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateFolder(&folder); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	if err := h.authorizeWorkspace(r, folder.WorkspaceID); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = time.Now().UTC()
	}

	persisted, err := h.folders.Create(r.Context(), &folder)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("folder created",
		"id", persisted.ID,
		"title", persisted.Title,
		"workspace_id", persisted.WorkspaceID,
	)

	httputil.RespondJSON(w, http.StatusCreated, persisted)
}

// GetFolder fetches a single folder
// GET /api/folders/{id}
func (h *FolderHandler) GetFolder(w http.ResponseWriter, r *http.Request) {
	folder, err := h.authorizedFolder(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, folder)
}

// UpdateFolder replaces a full folder record. Ownership is checked against
// the persisted record's workspace, not the request body's, so a caller
// cannot smuggle a folder into a workspace they own.
// PUT /api/folders/{id}
func (h *FolderHandler) UpdateFolder(w http.ResponseWriter, r *http.Request) {
	existing, err := h.authorizedFolder(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	var folder models.Folder
	if err := httputil.ParseJSON(w, r, &folder); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	folder.ID = existing.ID

	if folder.WorkspaceID == "" {
		folder.WorkspaceID = existing.WorkspaceID
	}
	if folder.WorkspaceID != existing.WorkspaceID {
		httputil.RespondDomainError(w, &domain.ValidationError{
			Message: "workspace_id cannot be changed",
		})
		return
	}

	if err := validateFolder(&folder); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	persisted, err := h.folders.Update(r.Context(), &folder)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, persisted)
}

// DeleteFolder permanently removes a folder owned by the requesting user
// DELETE /api/folders/{id}
func (h *FolderHandler) DeleteFolder(w http.ResponseWriter, r *http.Request) {
	existing, err := h.authorizedFolder(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	deleted, err := h.folders.Delete(r.Context(), existing.ID)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("folder deleted", "id", existing.ID, "title", deleted.Title)
	httputil.RespondJSON(w, http.StatusOK, deleted)
}

// authorizedFolder loads the folder named by the path ID and verifies the
// caller owns its workspace.
func (h *FolderHandler) authorizedFolder(r *http.Request) (*models.Folder, error) {
	id := r.PathValue("id")
	if err := uuid.Validate(id); err != nil {
		return nil, &domain.ValidationError{Message: "invalid folder ID"}
	}

	folder, err := h.folders.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if err := h.authorizeWorkspace(r, folder.WorkspaceID); err != nil {
		return nil, err
	}
	return folder, nil
}

// authorizeWorkspace ensures the workspace exists and belongs to the
// requesting user.
func (h *FolderHandler) authorizeWorkspace(r *http.Request, workspaceID string) error {
	workspace, err := h.workspaces.GetByID(r.Context(), workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != httputil.GetUserID(r) {
		return &domain.ForbiddenError{Message: "workspace belongs to another user"}
	}
	return nil
}

func validateFolder(folder *models.Folder) error {
	err := validation.ValidateStruct(folder,
		validation.Field(&folder.ID, validation.Required, validation.By(validUUID)),
		validation.Field(&folder.Title, validation.Required, validation.RuneLength(config.MinTitleLength, config.MaxTitleLength)),
		validation.Field(&folder.WorkspaceID, validation.Required, validation.By(validUUID)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}

func validUUID(value interface{}) error {
	s, _ := value.(string)
	if err := uuid.Validate(s); err != nil {
		return fmt.Errorf("must be a valid UUID")
	}
	return nil
}
