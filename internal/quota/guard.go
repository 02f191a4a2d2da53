// Package quota implements the plan-based creation guard. Its predicates are
// pure: they read an immutable snapshot plus the subscription and never touch
// the store or the network. A rejection is terminal and synchronous.
package quota

import (
	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/plans"
	"lipi/internal/state"
)

// CanCreateFolder reports whether another folder may be created in the
// workspace. An active subscription is never limited; otherwise the count of
// non-trashed folders must stay below the plan limit. Trashed folders do not
// count against the quota until restored.
func CanCreateFolder(snap state.Snapshot, sub *models.Subscription, limits plans.PlanLimits) error {
	if sub.IsActive() || limits.MaxFolders == nil {
		return nil
	}
	if len(snap.ActiveFolders()) >= *limits.MaxFolders {
		return &domain.QuotaExceededError{Kind: "folder", Limit: *limits.MaxFolders}
	}
	return nil
}

// CanCreateFile reports whether another file may be created in the target
// folder. The limit applies per folder, over non-trashed files only.
func CanCreateFile(snap state.Snapshot, sub *models.Subscription, limits plans.PlanLimits, folderID string) error {
	if sub.IsActive() || limits.MaxFilesPerFolder == nil {
		return nil
	}
	if len(snap.ActiveFiles(folderID)) >= *limits.MaxFilesPerFolder {
		return &domain.QuotaExceededError{Kind: "file", Limit: *limits.MaxFilesPerFolder}
	}
	return nil
}
