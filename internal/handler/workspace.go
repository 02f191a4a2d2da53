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

// WorkspaceHandler handles workspace HTTP requests
type WorkspaceHandler struct {
	workspaces repositories.WorkspaceGateway
	logger     *slog.Logger
}

// NewWorkspaceHandler creates a new workspace handler
func NewWorkspaceHandler(workspaces repositories.WorkspaceGateway, logger *slog.Logger) *WorkspaceHandler {
	return &WorkspaceHandler{
		workspaces: workspaces,
		logger:     logger,
	}
}

// ListWorkspaces lists the authenticated user's workspaces
// GET /api/workspaces
func (h *WorkspaceHandler) ListWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.workspaces.ListByOwner(r.Context(), httputil.GetUserID(r))
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if workspaces == nil {
		workspaces = []models.Workspace{}
	}

	httputil.RespondJSON(w, http.StatusOK, workspaces)
}

// GetWorkspace fetches a single workspace owned by the authenticated user
// GET /api/workspaces/{id}
func (h *WorkspaceHandler) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := uuid.Validate(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid workspace ID")
		return
	}

	workspace, err := h.workspaces.GetByID(r.Context(), id)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if workspace.OwnerID != httputil.GetUserID(r) {
		httputil.RespondDomainError(w, &domain.ForbiddenError{Message: "workspace belongs to another user"})
		return
	}

	httputil.RespondJSON(w, http.StatusOK, workspace)
}

// CreateWorkspace persists a workspace under its client-minted ID
// POST /api/workspaces
func (h *WorkspaceHandler) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var workspace models.Workspace
	if err := httputil.ParseJSON(w, r, &workspace); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	workspace.OwnerID = httputil.GetUserID(r)
	if err := validateWorkspace(&workspace); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	if workspace.CreatedAt.IsZero() {
		workspace.CreatedAt = time.Now().UTC()
	}

	persisted, err := h.workspaces.Create(r.Context(), &workspace)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("workspace created",
		"id", persisted.ID,
		"title", persisted.Title,
		"owner_id", persisted.OwnerID,
	)

	httputil.RespondJSON(w, http.StatusCreated, persisted)
}

// UpdateWorkspace replaces a full workspace record
// PUT /api/workspaces/{id}
func (h *WorkspaceHandler) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := uuid.Validate(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid workspace ID")
		return
	}

	existing, err := h.workspaces.GetByID(r.Context(), id)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if existing.OwnerID != httputil.GetUserID(r) {
		httputil.RespondDomainError(w, &domain.ForbiddenError{Message: "workspace belongs to another user"})
		return
	}

	var workspace models.Workspace
	if err := httputil.ParseJSON(w, r, &workspace); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	workspace.ID = id
	workspace.OwnerID = existing.OwnerID

	if err := validateWorkspace(&workspace); err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	persisted, err := h.workspaces.Update(r.Context(), &workspace)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, persisted)
}

// DeleteWorkspace permanently removes a workspace
// DELETE /api/workspaces/{id}
func (h *WorkspaceHandler) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := uuid.Validate(id); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid workspace ID")
		return
	}

	existing, err := h.workspaces.GetByID(r.Context(), id)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}
	if existing.OwnerID != httputil.GetUserID(r) {
		httputil.RespondDomainError(w, &domain.ForbiddenError{Message: "workspace belongs to another user"})
		return
	}

	deleted, err := h.workspaces.Delete(r.Context(), id)
	if err != nil {
		httputil.RespondDomainError(w, err)
		return
	}

	h.logger.Info("workspace deleted", "id", id, "title", deleted.Title)
	httputil.RespondJSON(w, http.StatusOK, deleted)
}

func validateWorkspace(workspace *models.Workspace) error {
	err := validation.ValidateStruct(workspace,
		validation.Field(&workspace.ID, validation.Required, validation.By(validUUID)),
		validation.Field(&workspace.Title, validation.Required, validation.RuneLength(config.MinTitleLength, config.MaxTitleLength)),
		validation.Field(&workspace.OwnerID, validation.Required),
	)
	if err != nil {
		return &domain.ValidationError{Message: err.Error()}
	}
	return nil
}
