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

// CreateFile optimistically creates a file inside a folder. The target
// folder must exist in the mirror; the file inherits its workspace so the
// folder/workspace invariant holds by construction.
func (e *Engine) CreateFile(folderID, title, iconID string) (*models.File, error) {
	const op = "create file"

	if err := validateTitle(title); err != nil {
		e.notifier.Warn(op, err.Error())
		return nil, err
	}

	folder, ok := e.store.Folder(folderID)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("folder %s not found", folderID)}
		e.notifier.Error(op, err.Message)
		return nil, err
	}

	if err := quota.CanCreateFile(e.store.Snapshot(), e.subscription(), e.limits(), folderID); err != nil {
		e.notifier.Error(op, err.Error())
		e.notifier.PromptUpgrade()
		return nil, err
	}

	file := models.File{
		ID:          uuid.NewString(),
		Title:       title,
		IconID:      iconID,
		WorkspaceID: folder.WorkspaceID,
		FolderID:    folder.ID,
		CreatedAt:   time.Now().UTC(),
	}

	e.mu.Lock()
	e.store.AddFile(file)
	seq := e.bumpLocked(file.ID)
	e.mu.Unlock()

	e.dispatch(func() {
		persisted, err := e.files.Create(e.ctx, &file)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(file.ID, seq, op) {
			return
		}

		if err != nil {
			e.store.RemoveFile(file.ID)
			e.bumpLocked(file.ID)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		if persisted.ID != file.ID {
			e.store.RemoveFile(file.ID)
			e.bumpLocked(file.ID)
			e.store.AddFile(*persisted)
			e.bumpLocked(persisted.ID)
			e.notifier.Error(op, (&domain.PersistenceError{
				Op:    op,
				Cause: fmt.Errorf("file persisted under a different identifier %s", persisted.ID),
			}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("File %q created.", file.Title))
	})

	return &file, nil
}

// TrashFile soft-deletes a file.
func (e *Engine) TrashFile(id string) error {
	return e.transitionFile("move file to trash", id, trash.MoveToTrash)
}

// RestoreFile returns a trashed file to the primary tree.
func (e *Engine) RestoreFile(id string) error {
	return e.transitionFile("restore file", id, trash.Restore)
}

// RenameFile optimistically renames a file, reverting on failure.
func (e *Engine) RenameFile(id, title string) error {
	const op = "rename file"
	if err := validateTitle(title); err != nil {
		e.notifier.Warn(op, err.Error())
		return err
	}
	return e.updateFile(op, id, func(f *models.File) {
		f.Title = title
	})
}

// SetFileIcon optimistically changes a file's icon, reverting on failure.
func (e *Engine) SetFileIcon(id, iconID string) error {
	return e.updateFile("change file icon", id, func(f *models.File) {
		f.IconID = iconID
	})
}

// DeleteFileForever permanently removes a trashed file. On gateway failure
// the captured record is re-inserted with its original fields.
func (e *Engine) DeleteFileForever(id string) error {
	const op = "delete file"

	file, ok := e.store.File(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	if _, err := trash.Next(trash.StateOf(file.InTrash), trash.PurgeForever); err != nil {
		cerr := &domain.ConflictError{
			Message:      "file must be moved to trash before it can be deleted forever",
			ResourceType: "file",
			ResourceID:   id,
		}
		e.notifier.Error(op, cerr.Message)
		return cerr
	}

	e.mu.Lock()
	e.store.RemoveFile(id)
	seq := e.bumpLocked(id)
	e.mu.Unlock()

	e.dispatch(func() {
		_, err := e.files.Delete(e.ctx, id)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(id, seq, op) {
			return
		}

		if err != nil {
			e.store.AddFile(file)
			e.bumpLocked(id)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("File %q deleted.", file.Title))
	})

	return nil
}

func (e *Engine) transitionFile(op, id string, action trash.Action) error {
	file, ok := e.store.File(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	next, err := trash.Next(trash.StateOf(file.InTrash), action)
	if err != nil {
		cerr := &domain.ConflictError{
			Message:      err.Error(),
			ResourceType: "file",
			ResourceID:   id,
		}
		e.notifier.Error(op, cerr.Message)
		return cerr
	}

	return e.updateFile(op, id, func(f *models.File) {
		f.InTrash = next == trash.Trashed
	})
}

func (e *Engine) updateFile(op, id string, mutate func(*models.File)) error {
	before, ok := e.store.File(id)
	if !ok {
		err := &domain.NotFoundError{Message: fmt.Sprintf("file %s not found", id)}
		e.notifier.Error(op, err.Message)
		return err
	}

	updated := before
	mutate(&updated)

	e.mu.Lock()
	e.store.UpdateFile(updated)
	seq := e.bumpLocked(id)
	e.mu.Unlock()

	e.dispatch(func() {
		_, err := e.files.Update(e.ctx, &updated)

		e.mu.Lock()
		defer e.mu.Unlock()
		if e.ctx.Err() != nil || e.stale(id, seq, op) {
			return
		}

		if err != nil {
			e.store.UpdateFile(before)
			e.bumpLocked(id)
			e.notifier.Error(op, (&domain.PersistenceError{Op: op, Cause: err}).Error())
			return
		}

		e.notifier.Success(op, fmt.Sprintf("File %q updated.", updated.Title))
	})

	return nil
}
