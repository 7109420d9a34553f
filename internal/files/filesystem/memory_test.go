package filesystem

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFileSystem_ReadFile(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddFile("m40646/index.cnxml", "<document/>")

	content, err := mfs.ReadFile("/book/m40646/index.cnxml")
	require.NoError(t, err)
	assert.Equal(t, "<document/>", string(content))

	relative, err := mfs.ReadFile("m40646/index.cnxml")
	require.NoError(t, err)
	assert.Equal(t, content, relative)
}

func TestMemoryFileSystem_ReadFileReturnsCopy(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddFile("collection.xml", "abc")

	content, err := mfs.ReadFile("collection.xml")
	require.NoError(t, err)
	content[0] = 'z'

	again, err := mfs.ReadFile("collection.xml")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}

func TestMemoryFileSystem_ReadFileErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddDir("empty")

	_, err := mfs.ReadFile("missing.xml")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadFile("empty")
	assert.Error(t, err)
}

func TestMemoryFileSystem_Stat(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddFile("m37154/index.cnxml", "<document/>")

	info, err := mfs.Stat("/book/m37154")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, "m37154", info.Name())

	info, err = mfs.Stat("/book/m37154/index.cnxml")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(len("<document/>")), info.Size())

	_, err = mfs.Stat("/book/m99999")
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestMemoryFileSystem_ReadDirListsDirectChildrenSorted(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddFile("collection.xml", "<collection/>")
	mfs.AddFile("m40646/index.cnxml", "<document/>")
	mfs.AddFile("m40646/Photodiode.png", "png")
	mfs.AddFile("m37154/index.cnxml", "<document/>")
	mfs.AddDir("notes")

	infos, err := mfs.ReadDir("/book")
	require.NoError(t, err)

	var names []string
	for _, info := range infos {
		names = append(names, info.Name())
	}
	assert.Equal(t, []string{"collection.xml", "m37154", "m40646", "notes"}, names)

	infos, err = mfs.ReadDir("/book/m40646")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "Photodiode.png", infos[0].Name())
	assert.Equal(t, "index.cnxml", infos[1].Name())
}

func TestMemoryFileSystem_ReadDirErrors(t *testing.T) {
	mfs := NewMemoryFileSystem("/book")
	mfs.AddFile("collection.xml", "<collection/>")

	_, err := mfs.ReadDir("/book/missing")
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = mfs.ReadDir("/book/collection.xml")
	assert.Error(t, err)
}

func TestMemoryFileSystem_RootListing(t *testing.T) {
	mfs := NewMemoryFileSystem("/")
	mfs.AddFile("collection.xml", "<collection/>")
	mfs.AddFile("m1/index.cnxml", "<document/>")

	infos, err := mfs.ReadDir("/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "collection.xml", infos[0].Name())
	assert.Equal(t, "m1", infos[1].Name())
}
