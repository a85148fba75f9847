package store

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"midiwire/internal/domain"
)

const takeExt = ".take.json"

// ErrTakeNotFound is returned when no take exists with the given ID.
var ErrTakeNotFound = errors.New("take not found")

// FileStore stores takes as JSON files on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// on first save.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

func (s *FileStore) path(id string) string {
	return filepath.Join(s.dir, id+takeExt)
}

// SaveTake writes t to disk, replacing any take with the same ID.
func (s *FileStore) SaveTake(t domain.Take) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	return writeJSON(s.path(t.ID), t, 0o600)
}

// LoadTake reads the take with the given ID.
func (s *FileStore) LoadTake(id string) (domain.Take, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var t domain.Take
	if err := readJSON(s.path(id), &t); err != nil {
		if isNotExist(err) {
			return domain.Take{}, ErrTakeNotFound
		}
		return domain.Take{}, err
	}
	return t, nil
}

// ListTakes returns all stored takes, newest first.
func (s *FileStore) ListTakes() ([]domain.Take, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if isNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var takes []domain.Take
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), takeExt) {
			continue
		}
		var t domain.Take
		if err := readJSON(filepath.Join(s.dir, e.Name()), &t); err != nil {
			return nil, err
		}
		takes = append(takes, t)
	}
	sort.Slice(takes, func(i, j int) bool {
		return takes[i].CreatedAt.After(takes[j].CreatedAt)
	})
	return takes, nil
}

// DeleteTake removes the take with the given ID.
func (s *FileStore) DeleteTake(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if isNotExist(err) {
		return ErrTakeNotFound
	}
	return err
}

var _ domain.TakeStore = (*FileStore)(nil)
