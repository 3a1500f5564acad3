package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/hari-data/hari/internal/apperrors"
)

// MkdirAll creates every directory in dirs, parents included, and returns the
// ones that did not exist before the call.
func MkdirAll(fsys billy.Filesystem, dirs ...string) ([]string, error) {
	created := []string{}
	for _, dir := range dirs {
		if dir == "" || dir == "." {
			continue
		}

		info, err := fsys.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			continue
		case err == nil:
			return nil, &apperrors.DirectoryCreationError{Path: dir, Err: fmt.Errorf("%s exists and is not a directory", dir)}
		case !errors.Is(err, os.ErrNotExist):
			return nil, &apperrors.DirectoryCreationError{Path: dir, Err: err}
		}

		if err := fsys.MkdirAll(dir, 0o755); err != nil {
			return nil, &apperrors.DirectoryCreationError{Path: dir, Err: err}
		}
		created = append(created, dir)
	}
	return created, nil
}

// CreateDirectories creates the directory holding t's target file.
func CreateDirectories(fsys billy.Filesystem, t Template) ([]string, error) {
	return MkdirAll(fsys, filepath.Dir(t.Filename()))
}

// SaveToFile writes t's content to its target path. When the path already
// exists nothing is written and an empty path is returned.
func SaveToFile(fsys billy.Filesystem, t Template) (string, error) {
	target := t.Filename()

	_, err := fsys.Stat(target)
	switch {
	case err == nil:
		return "", nil
	case !errors.Is(err, os.ErrNotExist):
		return "", &apperrors.DirectoryCreationError{Path: target, Err: err}
	}

	if _, err := MkdirAll(fsys, filepath.Dir(target)); err != nil {
		return "", err
	}

	if err := util.WriteFile(fsys, target, []byte(t.Text()), 0o644); err != nil {
		return "", &apperrors.DirectoryCreationError{Path: target, Err: err}
	}
	return target, nil
}
