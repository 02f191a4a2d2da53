package models

import (
	"time"
)

// Workspace is the root container of the hierarchy, owned by exactly one user.
type Workspace struct {
	ID        string    `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	IconID    string    `json:"icon_id" db:"icon_id"`
	Data      *string   `json:"data,omitempty" db:"data"`
	Logo      *string   `json:"logo,omitempty" db:"logo"`
	BannerURL *string   `json:"banner_url,omitempty" db:"banner_url"`
	OwnerID   string    `json:"owner_id" db:"owner_id"`
	InTrash   bool      `json:"in_trash" db:"in_trash"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
