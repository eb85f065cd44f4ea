package types

import (
	"io/fs"
)

// FS is the filesystem interface required for modstack operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Other operations
	Remove(name string) error
	RemoveAll(path string) error
}

// Pather provides the path anchors modstack operates on
type Pather interface {
	// ProfilesRoot returns the root directory holding all profiles
	ProfilesRoot() string

	// ExportDir returns the directory export archives are written to
	ExportDir() string

	// ProfilePath returns the directory of a named profile
	ProfilePath(profileName string) string

	// ModsFilePath returns the backing list file of a profile
	ModsFilePath(profileName string) string

	// ConfigDirPath returns the profile's bundled configuration directory
	ConfigDirPath(profileName string) string
}
