// Package export snapshots a profile into a single archive artifact: the
// serialized export envelope plus the profile's config directory tree.
package export

import (
	"archive/zip"
	"bytes"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/modstack/pkg/errors"
	"github.com/arthur-debert/modstack/pkg/logging"
	"github.com/arthur-debert/modstack/pkg/modlist"
	"github.com/arthur-debert/modstack/pkg/paths"
	"github.com/arthur-debert/modstack/pkg/reveal"
	"github.com/arthur-debert/modstack/pkg/types"
)

// EnvelopeEntryName is the archive entry holding the serialized envelope
const EnvelopeEntryName = "export.yml"

// ConfigEntryPrefix is the archive entry tree mirroring the profile's
// config directory
const ConfigEntryPrefix = "config"

// envelope is the serialized snapshot bundled into the archive
type envelope struct {
	Name string      `yaml:"name"`
	Mods []exportMod `yaml:"mods"`
}

// exportMod is the export-shaped representation of one record
type exportMod struct {
	Name   string                 `yaml:"name"`
	Fields map[string]interface{} `yaml:",inline"`
}

// Exporter builds export archives for profiles
type Exporter struct {
	fs       types.FS
	pather   types.Pather
	manager  *modlist.Manager
	revealer reveal.Revealer
	ext      string
}

// New creates an Exporter. ext is the archive extension without the dot,
// usually "zip".
func New(fs types.FS, pather types.Pather, manager *modlist.Manager, revealer reveal.Revealer, ext string) *Exporter {
	if revealer == nil {
		revealer = reveal.Noop()
	}
	return &Exporter{fs: fs, pather: pather, manager: manager, revealer: revealer, ext: ext}
}

// Export writes <exportDir>/<profileName>.<ext> containing the export
// envelope and the profile's config tree, and returns the archive path.
// The reveal action afterwards is best-effort and never fails the
// export.
func (e *Exporter) Export(profile types.Profile) (string, error) {
	logger := logging.GetLogger("export")

	exportDir := e.pather.ExportDir()
	if err := e.fs.MkdirAll(exportDir, 0755); err != nil {
		return "", errors.Wrapf(err, errors.ErrGeneric,
			"export directory %s could not be created", exportDir)
	}

	list, err := e.manager.List(profile)
	if err != nil {
		return "", err
	}

	env := envelope{Name: profile.Name, Mods: make([]exportMod, len(list))}
	for i, rec := range list {
		env.Mods[i] = exportMod{Name: rec.Name, Fields: rec.Fields}
	}

	payload, err := yaml.Marshal(env)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrConvert, "export envelope could not be serialized")
	}

	archive, err := e.buildArchive(profile, payload)
	if err != nil {
		return "", err
	}

	archivePath := filepath.Join(exportDir, profile.Name+"."+e.ext)
	if err := e.fs.WriteFile(archivePath, archive, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrWrite,
			"export archive %s could not be written", archivePath)
	}

	logger.Info().
		Str("profile", profile.Name).
		Str("archive", archivePath).
		Int("mods", len(list)).
		Msg("Exported profile")

	if err := e.revealer.Reveal(archivePath); err != nil {
		logger.Warn().Err(err).Str("archive", archivePath).Msg("Could not reveal export archive")
	}

	return archivePath, nil
}

// buildArchive assembles the zip payload in memory
func (e *Exporter) buildArchive(profile types.Profile, envelopePayload []byte) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	entry, err := zw.Create(EnvelopeEntryName)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGeneric, "export archive entry could not be created")
	}
	if _, err := entry.Write(envelopePayload); err != nil {
		return nil, errors.Wrap(err, errors.ErrGeneric, "export envelope could not be added to the archive")
	}

	configDir := filepath.Join(profile.Path, paths.ConfigDirName)
	if err := e.addTree(zw, configDir, ConfigEntryPrefix); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, errors.ErrGeneric, "export archive could not be finalized")
	}
	return buf.Bytes(), nil
}

// addTree recursively adds a directory's contents under entryPrefix. A
// missing directory is tolerated as an empty tree.
func (e *Exporter) addTree(zw *zip.Writer, dir, entryPrefix string) error {
	entries, err := e.fs.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrGeneric,
			"config directory %s could not be read", dir)
	}

	for _, dirEntry := range entries {
		src := filepath.Join(dir, dirEntry.Name())
		// Zip entry names always use forward slashes.
		name := path.Join(entryPrefix, dirEntry.Name())

		if dirEntry.IsDir() {
			if err := e.addTree(zw, src, name); err != nil {
				return err
			}
			continue
		}

		content, err := e.fs.ReadFile(src)
		if err != nil {
			return errors.Wrapf(err, errors.ErrGeneric,
				"config file %s could not be read", src)
		}
		w, err := zw.Create(name)
		if err != nil {
			return errors.Wrapf(err, errors.ErrGeneric,
				"archive entry %s could not be created", name)
		}
		if _, err := w.Write(content); err != nil {
			return errors.Wrapf(err, errors.ErrGeneric,
				"archive entry %s could not be written", name)
		}
	}

	return nil
}
