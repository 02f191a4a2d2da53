package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"lipi/internal/domain"
	"lipi/internal/domain/models"
	"lipi/internal/quota"
	"lipi/internal/trash"
)

// CreateFolder applies the optimistic create protocol: validate, check
// quota, mint a collision-resistant ID, make the folder visible in the
// store, then confirm with the gateway in the background. On failure the
// compensating remove is applied unless a newer action already touched the
// entity.
func (e *Engine) CreateFolder(title, iconID string) (*models.Folder, error) {
	const op = "create folder"

	if err := validateTitle(title); err != nil {
		e.notifier.Warn(op, err.Error())
		return nil, err
	}

	if err := quota.CanCreateFolder(e.store.Snapshot(), e.subscription(), e.limits()); err != nil {
		e.notifier.Error(op, err.Error())
		e.notifier.PromptUpgrade()
		return nil, err
	}

	folder := models.Folder{
		ID:          uuid.NewString(),
		Title:       title,
		IconID:      iconID,
		WorkspaceID: e.workspaceID,
		CreatedAt:   time.Now().UTC(),
	}

	e.mu.Lock()
	e.store.AddFolder(folder)
	seq := e.bumpLocked(folder.ID)
	e.mu.Unlock()

	e.dispatch(func() {
		persisted, err := e.folders.Create(e.ctx, &folder)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(folder.ID, seq, op) {
			return
		}

		if err != nil {
			e.store.RemoveFolder(folder.ID)
			e.bumpLocked(folder.ID)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		if persisted.ID != folder.ID {
			// The gateway issued its own identifier. The optimistic
			// record is discarded and replaced with the persisted
			// one; keeping both would duplicate the folder.
			e.store.RemoveFolder(folder.ID)
			e.bumpLocked(folder.ID)
			e.store.AddFolder(*persisted)
			e.bumpLocked(persisted.ID)
			e.notifier.Error(op, (&domain.PersistenceError{
				Op:    op,
				Cause: fmt.Errorf("folder persisted under a different identifier %s", persisted.ID),
			}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("Folder %q created.", folder.Title))
	})

	return &folder, nil
}

// TrashFolder soft-deletes a folder: it disappears from the primary tree
// and appears in the trash view. Its files keep their own trash state.
func (e *Engine) TrashFolder(id string) error {
	return e.transitionFolder("move folder to trash", id, trash.MoveToTrash)
}

// RestoreFolder returns a trashed folder to the primary tree.
func (e *Engine) RestoreFolder(id string) error {
	return e.transitionFolder("restore folder", id, trash.Restore)
}

// RenameFolder optimistically renames a folder, reverting on failure.
func (e *Engine) RenameFolder(id, title string) error {
	const op = "rename folder"
	if err := validateTitle(title); err != nil {
		e.notifier.Warn(op, err.Error())
		return err
	}
	return e.updateFolder(op, id, func(f *models.Folder) {
		f.Title = title
	})
}

// SetFolderIcon optimistically changes a folder's icon, reverting on failure.
func (e *Engine) SetFolderIcon(id, iconID string) error {
	return e.updateFolder("change folder icon", id, func(f *models.Folder) {
		f.IconID = iconID
	})
}

// DeleteFolderForever permanently removes a trashed folder from the store
// and from persistence. On gateway failure the captured record is
// re-inserted with its original fields.
func (e *Engine) DeleteFolderForever(id string) error {
	const op = "delete folder"

	folder, ok := e.store.Folder(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	if _, err := trash.Next(trash.StateOf(folder.InTrash), trash.PurgeForever); err != nil {
		cerr := &domain.ConflictError{
			Message:      "folder must be moved to trash before it can be deleted forever",
			ResourceType: "folder",
			ResourceID:   id,
		}
		e.notifier.Error(op, cerr.Message)
		return cerr
	}

	e.mu.Lock()
	e.store.RemoveFolder(id)
	seq := e.bumpLocked(id)
	e.mu.Unlock()

	e.dispatch(func() {
		_, err := e.folders.Delete(e.ctx, id)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(id, seq, op) {
			return
		}

		if err != nil {
			e.store.AddFolder(folder)
			e.bumpLocked(id)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("Folder %q deleted.", folder.Title))
	})

	return nil
}

// transitionFolder runs a trash lifecycle transition through the state
// machine before handing off to the generic optimistic update.
func (e *Engine) transitionFolder(op, id string, action trash.Action) error {
	folder, ok := e.store.Folder(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	next, err := trash.Next(trash.StateOf(folder.InTrash), action)
	if err != nil {
		cerr := &domain.ConflictError{
			Message:      err.Error(),
			ResourceType: "folder",
			ResourceID:   id,
		}
		e.notifier.Error(op, cerr.Message)
		return cerr
	}

	return e.updateFolder(op, id, func(f *models.Folder) {
		f.InTrash = next == trash.Trashed
	})
}

// updateFolder is the shared optimistic-update path: apply the mutation to
// the mirror synchronously, send the full record to the gateway, and revert
// to the captured copy if the remote update fails. The same rollback policy
// applies to every update, trash toggles included.
func (e *Engine) updateFolder(op, id string, mutate func(*models.Folder)) error {
	before, ok := e.store.Folder(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	updated := before
	mutate(&updated)

	e.mu.Lock()
	e.store.UpdateFolder(updated)
	seq := e.bumpLocked(id)
	e.mu.Unlock()

	e.dispatch(func() {
		_, err := e.folders.Update(e.ctx, &updated)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(id, seq, op) {
			return
		}

		if err != nil {
			e.store.UpdateFolder(before)
			e.bumpLocked(id)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("Folder %q updated.", updated.Title))
	})

	return nil
}
