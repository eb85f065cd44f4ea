package types

import (
	"path/filepath"
)

// Profile represents a directory grouping one mod list and its
// configuration
type Profile struct {
	// Name is the profile name (usually the directory name)
	Name string

	// Path is the absolute path to the profile directory
	Path string

	// Metadata contains any additional profile information from
	// profile.toml
	Metadata map[string]interface{}
}

// GetFilePath returns the full path to a file within the profile
func (p *Profile) GetFilePath(filename string) string {
	return filepath.Join(p.Path, filename)
}
