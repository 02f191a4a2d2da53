package handler

import (
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

// FileHandler handles file HTTP requests
type FileHandler struct {
	files      repositories.FileGateway
	workspaces repositories.WorkspaceGateway
	logger     *slog.Logger
}

// NewFileHandler creates a new file handler
func NewFileHandler(files repositories.FileGateway, workspaces repositories.WorkspaceGateway, logger *slog.Logger) *FileHandler {
	return &FileHandler{
		files:      files,
		workspaces: workspaces,
		logger:     logger,
	}
}

// ListFiles lists all of a workspace's files
// GET /api/files?workspace_id=...
func (h *FileHandler) ListFiles(w http.ResponseWriter, r *http.Request) {
	workspaceID := r.URL.Query().Get("workspace_id")
	if err := uuid.Validate(workspaceID); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid workspace ID")
		return
	}

	if err := h.authorizeWorkspace(r, workspaceID); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	files, err := h.files.ListByWorkspace(r.Context(), workspaceID)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if files == nil {
		files = []models.File{}
	}

	httputil.RespondJSON(w, http.StatusOK, files)
}

// CreateFile persists a file under its client-minted ID
// POST /api/files
func (h *FileHandler) CreateFile(w http.ResponseWriter, r *http.Request) {
	var file models.File
	if err := httputil.ParseJSON(w, r, &file); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := validateFile(&file); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	if err := h.authorizeWorkspace(r, file.WorkspaceID); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}

	persisted, err := h.files.Create(r.Context(), &file)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("file created",
		"id", persisted.ID,
		"title", persisted.Title,
		"folder_id", persisted.FolderID,
		"workspace_id", persisted.WorkspaceID,
	)

	httputil.RespondJSON(w, http.StatusCreated, persisted)
}

// GetFile fetches a single file
// GET /api/files/{id}
func (h *FileHandler) GetFile(w http.ResponseWriter, r *http.Request) {
	file, err := h.authorizedFile(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, file)
}

// UpdateFile replaces a full file record. Ownership is checked against the
// persisted record's workspace, not the request body's.
// PUT /api/files/{id}
func (h *FileHandler) UpdateFile(w http.ResponseWriter, r *http.Request) {
	existing, err := h.authorizedFile(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	var file models.File
	if err := httputil.ParseJSON(w, r, &file); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	file.ID = existing.ID

	if file.WorkspaceID == "" {
		file.WorkspaceID = existing.WorkspaceID
	}
	if file.WorkspaceID != existing.WorkspaceID {
		httputil.RespondDomainError(w, &domain.ValidationError{
			Message: "workspace_id cannot be changed",
		})
		return
	}
	if file.FolderID == "" {
		file.FolderID = existing.FolderID
	}

	if err := validateFile(&file); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	persisted, err := h.files.Update(r.Context(), &file)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, persisted)
}

// DeleteFile permanently removes a file owned by the requesting user
// DELETE /api/files/{id}
func (h *FileHandler) DeleteFile(w http.ResponseWriter, r *http.Request) {
	existing, err := h.authorizedFile(r)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	deleted, err := h.files.Delete(r.Context(), existing.ID)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("file deleted", "id", existing.ID, "title", deleted.Title)
	httputil.RespondJSON(w, http.StatusOK, deleted)
}

// authorizedFile loads the file named by the path ID and verifies the
// caller owns its workspace.
func (h *FileHandler) authorizedFile(r *http.Request) (*models.File, error) {
	id := r.PathValue("id")
	if err := uuid.Validate(id); err != nil {
		return nil, &domain.ValidationError{Message: "invalid file ID"}
	}

	file, err := h.files.GetByID(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if err := h.authorizeWorkspace(r, file.WorkspaceID); err != nil {
		return nil, err
	}
	return file, nil
}

func (h *FileHandler) authorizeWorkspace(r *http.Request, workspaceID string) error {
	workspace, err := h.workspaces.GetByID(r.Context(), workspaceID)
	if err != nil {
		return err
	}
	if workspace.OwnerID != httputil.GetUserID(r) {
		return &domain.ForbiddenError{Message: "workspace belongs to another user"}
	}
	return nil
}

func validateFile(file *models.File) error {
	err := validation.ValidateStruct(file,
		validation.Field(&file.ID, validation.Required, validation.By(validUUID)),
		validation.Field(&file.Title, validation.Required, validation.RuneLength(config.MinTitleLength, config.MaxTitleLength)),
		validation.Field(&file.WorkspaceID, validation.Required, validation.By(validUUID)),
		validation.Field(&file.FolderID, validation.Required, validation.By(validUUID)),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}
