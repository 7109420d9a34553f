package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSFileSystem_ReadDirAndReadFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.cnxml"), []byte("<document/>"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "figure.png"), []byte("png"), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0755))

	p := NewOSFileSystem()

	infos, err := p.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "figure.png", infos[0].Name())
	assert.Equal(t, "index.cnxml", infos[1].Name())
	assert.Equal(t, "sub", infos[2].Name())
	assert.True(t, infos[2].IsDir())

	content, err := p.ReadFile(filepath.Join(dir, "index.cnxml"))
	require.NoError(t, err)
	assert.Equal(t, "<document/>", string(content))
}

func TestOSFileSystem_StatMissing(t *testing.T) {
	p := NewOSFileSystem()

	_, err := p.Stat(filepath.Join(t.TempDir(), "collection.xml"))
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestOSFileSystem_ReadDirFollowsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.png")
	require.NoError(t, os.WriteFile(target, []byte("png"), 0644))
	if err := os.Symlink(target, filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	infos, err := NewOSFileSystem().ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "link.png", infos[0].Name())
	assert.True(t, infos[0].Mode().IsRegular())
}

func TestOSFileSystem_ReadDirDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.cnxml"), []byte("<document/>"), 0644))
	if err := os.Symlink(filepath.Join(dir, "gone.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}

	infos, err := NewOSFileSystem().ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "link.png", infos[1].Name())
	assert.NotZero(t, infos[1].Mode()&fs.ModeSymlink)
	assert.False(t, infos[1].Mode().IsRegular())
}
