package models

import (
	"time"
)

// Folder is a mid-level grouping inside a Workspace.
// Invariant: WorkspaceID references an existing, non-deleted workspace.
type Folder struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	IconID      string    `json:"icon_id" db:"icon_id"`
	Data        *string   `json:"data,omitempty" db:"data"`
	BannerURL   *string   `json:"banner_url,omitempty" db:"banner_url"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	InTrash     bool      `json:"in_trash" db:"in_trash"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
