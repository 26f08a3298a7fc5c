package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
	"github.com/gofrs/flock"

	"newsd/internal/models"
	"newsd/internal/structures"
)

// DocumentStore is read/modify/write access to a single JSON document.
type DocumentStore interface {
	Read(v any) error
	Write(v any) error
	Update(v any, apply func() error) error
}

// FileStore persists one JSON document guarded by an advisory file lock.
// The lock file sits next to the data file so the rename on write does not
// invalidate a held lock. Each operation takes its own lock handle, which
// keeps the semantics identical for goroutines and separate processes.
type FileStore struct {
	path     string
	lockPath string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Read loads the document under a shared lock. A missing backing file is
// reported as models.ErrNotFound so callers can substitute a default
// document.
func (s *FileStore) Read(v any) error {
	fl := flock.New(s.lockPath)
	if err := fl.RLock(); err != nil {
		return &models.StoreError{Op: "lock", Err: err}
	}
	defer fl.Unlock()

	return s.readLocked(v)
}

// Write replaces the document under an exclusive lock. The data goes to a
// temp file first and is renamed into place, so readers never observe a
// partial write.
func (s *FileStore) Write(v any) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	fl := flock.New(s.lockPath)
	if err := fl.Lock(); err != nil {
		return &models.StoreError{Op: "lock", Err: err}
	}
	defer fl.Unlock()

	return s.writeLocked(v)
}

// Update holds the exclusive lock across the whole read-modify-write span,
// so concurrent mutators serialize instead of overwriting each other. A
// missing backing file leaves v untouched, letting the caller start from a
// default document. When apply fails nothing is written.
func (s *FileStore) Update(v any, apply func() error) error {
	if err := s.ensureDir(); err != nil {
		return err
	}
	fl := flock.New(s.lockPath)
	if err := fl.Lock(); err != nil {
		return &models.StoreError{Op: "lock", Err: err}
	}
	defer fl.Unlock()

	if err := s.readLocked(v); err != nil && !errors.Is(err, models.ErrNotFound) {
		return err
	}
	if err := apply(); err != nil {
		return err
	}
	return s.writeLocked(v)
}

func (s *FileStore) ensureDir() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &models.StoreError{Op: "mkdir", Err: err}
	}
	return nil
}

func (s *FileStore) readLocked(v any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", s.path, models.ErrNotFound)
		}
		return &models.StoreError{Op: "read", Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &models.StoreError{Op: "decode", Err: err}
	}
	return nil
}

func (s *FileStore) writeLocked(v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return &models.StoreError{Op: "encode", Err: err}
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return &models.StoreError{Op: "write", Err: err}
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &models.StoreError{Op: "write", Err: err}
	}
	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return &models.StoreError{Op: "write", Err: err}
	}
	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return &models.StoreError{Op: "write", Err: err}
	}

	if err = os.Rename(tmpFile, s.path); err != nil {
		os.Remove(tmpFile)
		return &models.StoreError{Op: "write", Err: err}
	}
	return nil
}

// CardStore and VisitorStore pin the two collections to their configured
// paths for injection.
type CardStore struct {
	*FileStore
}

func NewCardStore(conf *structures.Config) *CardStore {
	return &CardStore{NewFileStore(conf.Storage.CardsPath)}
}

type VisitorStore struct {
	*FileStore
}

func NewVisitorStore(conf *structures.Config) *VisitorStore {
	return &VisitorStore{NewFileStore(conf.Storage.VisitorsPath)}
}
