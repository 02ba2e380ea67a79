// Package store reads and writes the local catalog file.
package store

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/constants"
	"github.com/winsane/winsane/pkg/errors"
	"github.com/winsane/winsane/pkg/logging"
)

// File persists a catalog as a single YAML document. Every save overwrites
// the whole file; the last writer wins.
type File struct {
	Path string
}

// New returns a file store at path, or at DefaultPath when path is empty.
func New(path string) (*File, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return &File{Path: path}, nil
}

// DefaultPath returns %LOCALAPPDATA%\Winsane\data.yaml on Windows and
// <user config dir>/Winsane/data.yaml elsewhere.
func DefaultPath() (string, error) {
	if runtime.GOOS == "windows" {
		if dir := os.Getenv("LOCALAPPDATA"); dir != "" {
			return filepath.Join(dir, constants.AppDirName, constants.DataFileName), nil
		}
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.NewConfigError("store", "cannot determine user config directory", err)
	}
	return filepath.Join(dir, constants.AppDirName, constants.DataFileName), nil
}

// Load reads the catalog. A missing or empty file yields (nil, nil).
func (s *File) Load(ctx context.Context) (*catalogs.Catalog, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			logging.FromContext(ctx).Debug().Str("path", s.Path).Msg("No local catalog")
			return nil, nil
		}
		return nil, errors.NewPersistError("read", s.Path, err)
	}

	c, err := catalogs.Parse(data)
	if err != nil {
		return nil, errors.NewParseError("yaml", s.Path, "invalid local catalog", err)
	}
	return c, nil
}

// Save writes the catalog, creating the parent directory as needed. The
// document is written to a temporary file first and renamed into place.
func (s *File) Save(ctx context.Context, c *catalogs.Catalog) error {
	data, err := catalogs.Format(c)
	if err != nil {
		return errors.NewPersistError("encode", s.Path, err)
	}

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
		return errors.NewPersistError("create", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".data-*.yaml")
	if err != nil {
		return errors.NewPersistError("create", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.NewPersistError("write", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return errors.NewPersistError("write", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, constants.FilePermissions); err != nil {
		return errors.NewPersistError("chmod", tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return errors.NewPersistError("rename", s.Path, err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.Path).Int("bytes", len(data)).Msg("Saved local catalog")
	return nil
}

// RemoveLegacy deletes a data file left by older versions next to the
// executable. A missing file is not an error.
func RemoveLegacy(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewPersistError("remove", path, err)
	}
	logging.FromContext(ctx).Info().Str("path", path).Msg("Removed legacy data file")
	return nil
}

// LegacyPath returns the location older versions wrote to: data.yaml beside
// the running executable.
func LegacyPath() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	return filepath.Join(filepath.Dir(exe), constants.DataFileName)
}
