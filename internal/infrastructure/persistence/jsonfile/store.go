// Package jsonfile stores the address book as a single JSON document on disk.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/tutorscontactpro/contacts/internal/domain/addressbook"
	"github.com/tutorscontactpro/contacts/internal/domain/shared"
	"github.com/tutorscontactpro/contacts/internal/infrastructure/persistence/snapshot"
	"github.com/tutorscontactpro/contacts/pkg/logger"
)

// Store implements addressbook.Repository on top of one file.
type Store struct {
	path string
	log  *logger.Logger
	mu   sync.Mutex
}

// NewStore returns a store backed by path. The file need not exist yet.
func NewStore(path string, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{
		path: path,
		log:  log.With(logger.Component("jsonfile"), logger.String("path", path)),
	}
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

// Load reads and decodes the file.
func (s *Store) Load(ctx context.Context) (*addressbook.AddressBook, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, shared.WrapError("jsonfile", "Load", shared.ErrSnapshotNotFound,
			fmt.Sprintf("Data file not found at %s", s.path), err)
	}
	if err != nil {
		return nil, fmt.Errorf("jsonfile: read %s: %w", s.path, err)
	}

	ab, err := snapshot.Decode(data)
	if err != nil {
		return nil, err
	}
	s.log.Debug("address book loaded", logger.Count("persons", len(ab.Persons())), logger.Count("groups", len(ab.Groups())))
	return ab, nil
}

// Save writes ab to a temporary file in the same directory and renames it
// over the target, so readers never see a partial document.
func (s *Store) Save(ctx context.Context, ab addressbook.ReadOnly) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := snapshot.Encode(ab)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("jsonfile: create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("jsonfile: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("jsonfile: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("jsonfile: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("jsonfile: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("jsonfile: replace %s: %w", s.path, err)
	}

	s.log.Debug("address book saved", logger.Count("bytes", len(data)))
	return nil
}

var _ addressbook.Repository = (*Store)(nil)
