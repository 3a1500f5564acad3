package scaffold

import (
	"errors"
	"os"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"

	"github.com/hari-data/hari/internal/apperrors"
)

var errMocked = errors.New("mocked error")

type dummyTemplate struct {
	project string
}

func (d dummyTemplate) Filename() string {
	return d.project + "/dummy/dummy.txt"
}

func (d dummyTemplate) Text() string {
	return "# Hello, Hari!\n# This is a dummy template for testing purposes.\n"
}

type mkdirFailFS struct {
	billy.Filesystem
}

func (mkdirFailFS) MkdirAll(string, os.FileMode) error {
	return errMocked
}

type openFailFS struct {
	billy.Filesystem
}

func (openFailFS) OpenFile(string, int, os.FileMode) (billy.File, error) {
	return nil, errMocked
}

func TestCreateDirectories(t *testing.T) {
	fsys := memfs.New()

	created, err := CreateDirectories(fsys, dummyTemplate{project: projectName})
	require.NoError(t, err)
	require.Equal(t, []string{"test_project/dummy"}, created)

	info, err := fsys.Stat("test_project/dummy")
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestCreateDirectoriesAlreadyExists(t *testing.T) {
	fsys := memfs.New()
	tmpl := dummyTemplate{project: projectName}

	_, err := CreateDirectories(fsys, tmpl)
	require.NoError(t, err)

	created, err := CreateDirectories(fsys, tmpl)
	require.NoError(t, err)
	require.Empty(t, created)
}

func TestCreateDirectoriesError(t *testing.T) {
	_, err := CreateDirectories(mkdirFailFS{memfs.New()}, dummyTemplate{project: projectName})

	var dirErr *apperrors.DirectoryCreationError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, "test_project/dummy", dirErr.Path)
	require.ErrorIs(t, err, errMocked)
	require.Contains(t, err.Error(), "failed to create directory")
}

func TestMkdirAllRejectsFileInTheWay(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, util.WriteFile(fsys, "demo/configs", []byte("not a dir"), 0o644))

	_, err := MkdirAll(fsys, "demo/configs")

	var dirErr *apperrors.DirectoryCreationError
	require.ErrorAs(t, err, &dirErr)
}

func TestMkdirAllReportsOnlyNew(t *testing.T) {
	fsys := memfs.New()
	require.NoError(t, fsys.MkdirAll("demo/configs", 0o755))

	created, err := MkdirAll(fsys, "demo/configs", "demo/utils", ".", "")
	require.NoError(t, err)
	require.Equal(t, []string{"demo/utils"}, created)
}

func TestSaveToFile(t *testing.T) {
	fsys := memfs.New()
	tmpl := dummyTemplate{project: projectName}

	path, err := SaveToFile(fsys, tmpl)
	require.NoError(t, err)
	require.Equal(t, "test_project/dummy/dummy.txt", path)

	content, err := util.ReadFile(fsys, path)
	require.NoError(t, err)
	require.Equal(t, tmpl.Text(), string(content))
}

func TestSaveToFileAlreadyExists(t *testing.T) {
	fsys := memfs.New()
	tmpl := dummyTemplate{project: projectName}
	require.NoError(t, util.WriteFile(fsys, tmpl.Filename(), []byte("user edits"), 0o644))

	path, err := SaveToFile(fsys, tmpl)
	require.NoError(t, err)
	require.Empty(t, path)

	content, err := util.ReadFile(fsys, tmpl.Filename())
	require.NoError(t, err)
	require.Equal(t, "user edits", string(content))
}

func TestSaveToFileError(t *testing.T) {
	_, err := SaveToFile(openFailFS{memfs.New()}, dummyTemplate{project: projectName})

	var dirErr *apperrors.DirectoryCreationError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, "test_project/dummy/dummy.txt", dirErr.Path)
	require.ErrorIs(t, err, errMocked)
}

func TestSaveToFileMkdirError(t *testing.T) {
	_, err := SaveToFile(mkdirFailFS{memfs.New()}, dummyTemplate{project: projectName})

	var dirErr *apperrors.DirectoryCreationError
	require.ErrorAs(t, err, &dirErr)
	require.Equal(t, "test_project/dummy", dirErr.Path)
}
