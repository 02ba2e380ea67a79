package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winsane/winsane/pkg/catalogs"
	"github.com/winsane/winsane/pkg/errors"
)

func TestLoadMissing(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	c, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "data.yaml")
	s, err := New(path)
	require.NoError(t, err)

	orig := catalogs.TestCatalog(t)
	require.NoError(t, s.Save(context.Background(), orig))

	back, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(orig, back, cmpopts.EquateEmpty()))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	s := &File{Path: path}

	require.NoError(t, s.Save(context.Background(), catalogs.TestCatalog(t)))
	small := catalogs.New()
	small.EnsureCategory("Optimizer", "User")
	require.NoError(t, s.Save(context.Background(), small))

	back, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, back.Features, 1)
}

func TestLoadHandWrittenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`theme: dark
tweaks:
- feature: Optimizer
  categories:
  - category: User
    items:
    - name: Mine
      true: Enable-Mine
      false: Disable-Mine
      enabled: true
`), 0o644))

	c, err := (&File{Path: path}).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "dark", c.Theme.Mode)

	mine := c.UserCategory().Tweak("Mine")
	require.NotNil(t, mine)
	assert.Equal(t, "Enable-Mine", mine.On)
	assert.Equal(t, "Disable-Mine", mine.Off)
	assert.True(t, mine.Enabled)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features: [oops"), 0o644))

	_, err := (&File{Path: path}).Load(context.Background())
	var parseErr *errors.ParseError
	assert.ErrorAs(t, err, &parseErr)
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	s := &File{Path: filepath.Join(blocker, "data.yaml")}
	err := s.Save(context.Background(), catalogs.TestCatalog(t))
	assert.True(t, errors.IsPersistError(err))
}

func TestSaveNil(t *testing.T) {
	s := &File{Path: filepath.Join(t.TempDir(), "data.yaml")}
	assert.True(t, errors.IsPersistError(s.Save(context.Background(), nil)))
}

func TestRemoveLegacy(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("features: []"), 0o644))

	require.NoError(t, RemoveLegacy(context.Background(), path))
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, RemoveLegacy(context.Background(), path))
	assert.NoError(t, RemoveLegacy(context.Background(), ""))
}

func TestDefaultPath(t *testing.T) {
	p, err := DefaultPath()
	if err != nil {
		t.Skipf("no user config dir: %v", err)
	}
	assert.Equal(t, "data.yaml", filepath.Base(p))
	assert.Equal(t, "Winsane", filepath.Base(filepath.Dir(p)))
}
