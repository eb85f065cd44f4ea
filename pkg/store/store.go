// Package store owns the filesystem boundary for a profile's backing
// file. Reads ensure the file exists first (a fresh profile gets an
// empty-list payload), so a failed read means a genuine I/O problem, not
// a missing file. Writes overwrite the file in place; no other component
// writes the backing file directly.
package store

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/modstack/pkg/codec"
	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/logging"
	"github.com/arthur-debert/modstack/pkg/types"
)

// Store reads and writes a profile's backing file through a types.FS
type Store struct {
	fs types.FS
}

// New creates a Store over the given filesystem
func New(fs types.FS) *Store {
	return &Store{fs: fs}
}

// Read returns the backing file's payload, creating the file (and its
// parent directory) with an empty-list payload if it does not exist yet.
func (s *Store) Read(path string) ([]byte, error) {
	logger := logging.GetLogger("store.read")

	if err := s.ensureExists(path); err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrNotFound,
			"mods file %s could not be read", path).
			WithDetail("path", path)
	}

	logger.Trace().Str("path", path).Int("bytes", len(data)).Msg("Read backing file")
	return data, nil
}

// Write overwrites the backing file with the given payload
func (s *Store) Write(path string, data []byte) error {
	logger := logging.GetLogger("store.write")

	if err := s.fs.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrWrite,
			"mods file %s could not be written", path).
			WithDetail("path", path)
	}

	logger.Trace().Str("path", path).Int("bytes", len(data)).Msg("Wrote backing file")
	return nil
}

// ensureExists creates the backing file with an empty-list payload when
// absent. Stat failures other than non-existence surface on the read.
func (s *Store) ensureExists(path string) error {
	_, err := s.fs.Stat(path)
	if err == nil {
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrapf(err, errors.ErrNotFound,
			"mods file %s could not be accessed", path).
			WithDetail("path", path)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound,
			"profile directory for %s could not be created", path)
	}
	if err := s.fs.WriteFile(path, codec.EmptyListBytes, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrNotFound,
			"mods file %s could not be initialized", path)
	}

	logger := logging.GetLogger("store")
	logger.Debug().Str("path", path).Msg("Created empty backing file")
	return nil
}
