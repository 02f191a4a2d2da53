package state

import (
	"log/slog"
	"sync"

	"lipi/internal/domain/models"
)

// Store is the single in-memory mirror of the active workspace: the current
// user plus the full folder and file collections. All interactive views read
// from it and every mutation flows through the primitives below; nothing else
// holds a writable reference to its collections.
//
// The primitives never perform I/O. They serialize under the store's write
// lock, so completion callbacks firing from dispatcher goroutines can never
// interleave mid-update with user actions.
type Store struct {
	mu      sync.RWMutex
	logger  *slog.Logger
	user    *models.User
	folders []models.Folder
	files   []models.File

	subMu   sync.Mutex
	subs    map[int]func()
	nextSub int
}

// NewStore creates an empty store. It holds nothing until Seed is called.
func NewStore(logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		logger: logger,
		subs:   make(map[int]func()),
	}
}

// Seed replaces the entire mirror in one step. The serving shell calls it
// once at session start with the hydrated folder and file lists; the store
// never refetches on its own.
func (s *Store) Seed(user *models.User, folders []models.Folder, files []models.File) {
	s.mu.Lock()
	if user != nil {
		u := *user
		s.user = &u
	} else {
		s.user = nil
	}
	s.folders = append([]models.Folder(nil), folders...)
	s.files = append([]models.File(nil), files...)
	s.mu.Unlock()

	s.notify()
}

// AddFolder appends a folder. Adding an ID that already exists is a no-op;
// it is logged and reported via the return value.
func (s *Store) AddFolder(folder models.Folder) bool {
	s.mu.Lock()
	if s.folderIndex(folder.ID) >= 0 {
		s.mu.Unlock()
		s.logger.Warn("store: folder already exists", "folder_id", folder.ID)
		return false
	}
	s.folders = append(s.folders, folder)
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateFolder replaces the folder with the same ID. Unknown IDs are a no-op.
func (s *Store) UpdateFolder(folder models.Folder) bool {
	s.mu.Lock()
	i := s.folderIndex(folder.ID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("store: update for unknown folder", "folder_id", folder.ID)
		return false
	}
	s.folders[i] = folder
	s.mu.Unlock()

	s.notify()
	return true
}

// RemoveFolder deletes the folder by ID. Unknown IDs are a no-op.
func (s *Store) RemoveFolder(id string) bool {
	s.mu.Lock()
	i := s.folderIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.folders = append(s.folders[:i], s.folders[i+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// AddFile appends a file. Adding an ID that already exists is a no-op.
func (s *Store) AddFile(file models.File) bool {
	s.mu.Lock()
	if s.fileIndex(file.ID) >= 0 {
		s.mu.Unlock()
		s.logger.Warn("store: file already exists", "file_id", file.ID)
		return false
	}
	s.files = append(s.files, file)
	s.mu.Unlock()

	s.notify()
	return true
}

// UpdateFile replaces the file with the same ID. Unknown IDs are a no-op.
func (s *Store) UpdateFile(file models.File) bool {
	s.mu.Lock()
	i := s.fileIndex(file.ID)
	if i < 0 {
		s.mu.Unlock()
		s.logger.Warn("store: update for unknown file", "file_id", file.ID)
		return false
	}
	s.files[i] = file
	s.mu.Unlock()

	s.notify()
	return true
}

// RemoveFile deletes the file by ID. Unknown IDs are a no-op.
func (s *Store) RemoveFile(id string) bool {
	s.mu.Lock()
	i := s.fileIndex(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.files = append(s.files[:i], s.files[i+1:]...)
	s.mu.Unlock()

	s.notify()
	return true
}

// Folder returns a copy of the folder with the given ID.
func (s *Store) Folder(id string) (models.Folder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.folderIndex(id); i >= 0 {
		return s.folders[i], true
	}
	return models.Folder{}, false
}

// File returns a copy of the file with the given ID.
func (s *Store) File(id string) (models.File, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.fileIndex(id); i >= 0 {
		return s.files[i], true
	}
	return models.File{}, false
}

// User returns a copy of the current user descriptor, or nil before Seed.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Subscribe registers a listener invoked after every effective mutation.
// The returned function removes the listener. Listeners run synchronously
// on the mutating goroutine and must not call back into mutation primitives.
func (s *Store) Subscribe(fn func()) func() {
	s.subMu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	listeners := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.subMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}

// folderIndex and fileIndex require the caller to hold mu.
func (s *Store) folderIndex(id string) int {
	for i := range s.folders {
		if s.folders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) fileIndex(id string) int {
	for i := range s.files {
		if s.files[i].ID == id {
			return i
		}
	}
	return -1
}
