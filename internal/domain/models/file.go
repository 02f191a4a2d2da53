package models

import (
	"time"
)

// File is a leaf document entity inside a Folder. It redundantly carries
// its WorkspaceID so workspace-wide listings never need a join.
// Invariant: FolderID references a folder whose WorkspaceID matches.
type File struct {
	ID          string    `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	IconID      string    `json:"icon_id" db:"icon_id"`
	Data        *string   `json:"data,omitempty" db:"data"`
	BannerURL   *string   `json:"banner_url,omitempty" db:"banner_url"`
	WorkspaceID string    `json:"workspace_id" db:"workspace_id"`
	FolderID    string    `json:"folder_id" db:"folder_id"`
	InTrash     bool      `json:"in_trash" db:"in_trash"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
