package state

import (
	"lipi/internal/domain/models"
)

// Snapshot is an immutable value view of the store at one point in time.
// Consumers render from it and must not mutate the records it carries.
type Snapshot struct {
	User    *models.User
	Folders []models.Folder
	Files   []models.File
}

// Snapshot copies the current state out under the read lock.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Folders: append([]models.Folder(nil), s.folders...),
		Files:   append([]models.File(nil), s.files...),
	}
	if s.user != nil {
		u := *s.user
		snap.User = &u
	}
	return snap
}

// ActiveFolders returns the folders shown in the primary tree.
func (s Snapshot) ActiveFolders() []models.Folder {
	var out []models.Folder
	for _, f := range s.Folders {
		if !f.InTrash {
			out = append(out, f)
		}
	}
	return out
}

// TrashedFolders returns the folders shown only in the trash view.
func (s Snapshot) TrashedFolders() []models.Folder {
	var out []models.Folder
	for _, f := range s.Folders {
		if f.InTrash {
			out = append(out, f)
		}
	}
	return out
}

// ActiveFiles returns the non-trashed files of one folder, for the primary
// tree. Files keep their own trash state: a trashed folder's files still
// count as active here (no cascade).
func (s Snapshot) ActiveFiles(folderID string) []models.File {
	var out []models.File
	for _, f := range s.Files {
		if f.FolderID == folderID && !f.InTrash {
			out = append(out, f)
		}
	}
	return out
}

// TrashedFiles returns every trashed file in the workspace.
func (s Snapshot) TrashedFiles() []models.File {
	var out []models.File
	for _, f := range s.Files {
		if f.InTrash {
			out = append(out, f)
		}
	}
	return out
}

// FilesInFolder returns all files of a folder regardless of trash state.
func (s Snapshot) FilesInFolder(folderID string) []models.File {
	var out []models.File
	for _, f := range s.Files {
		if f.FolderID == folderID {
			out = append(out, f)
		}
	}
	return out
}
