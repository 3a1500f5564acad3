// Package yamlutil reads and writes the YAML documents hari works with:
// session/logging configs on the way in, contracts on the way out.
package yamlutil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"gopkg.in/yaml.v3"

	"github.com/hari-data/hari/internal/apperrors"
)

// ReadMap loads a YAML mapping from path. An empty or null document yields an
// empty map. A missing file wraps apperrors.ErrFileNotFound and malformed
// content wraps apperrors.ErrYAMLParse.
func ReadMap(fsys billy.Filesystem, path string) (map[string]any, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	out := map[string]any{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrYAMLParse, path, err)
	}
	if out == nil {
		out = map[string]any{}
	}
	return out, nil
}

// Marshal encodes v with a two-space indent. Map key order follows whatever
// order v itself marshals in; yaml.Node and yaml.Marshaler values keep theirs.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes v to <dir>/<name>.yaml, creating dir when it is missing,
// and returns the written path.
func WriteFile(fsys billy.Filesystem, dir, name string, v any) (string, error) {
	if err := fsys.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating YAML file: %w", err)
	}

	data, err := Marshal(v)
	if err != nil {
		return "", fmt.Errorf("error writing YAML file: %w", err)
	}

	target := filepath.Join(dir, name+".yaml")
	if err := util.WriteFile(fsys, target, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing YAML file: %w", err)
	}
	return target, nil
}
