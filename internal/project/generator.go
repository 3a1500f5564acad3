// Package project lays out a new hari project from the built-in templates.
package project

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/hari-data/hari/internal/apperrors"
	"github.com/hari-data/hari/internal/model"
	"github.com/hari-data/hari/internal/scaffold"
)

// Result lists what a generation touched. FilesCreated holds every file the
// generator considered, including files that already existed and were left
// untouched.
type Result struct {
	DirsCreated  []string
	FilesCreated []string
}

type Generator struct {
	fs        billy.Filesystem
	logger    zerolog.Logger
	templates func(project string) []scaffold.Template
}

type Option func(*Generator)

func WithLogger(logger zerolog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithTemplates replaces the built-in template set.
func WithTemplates(templates func(project string) []scaffold.Template) Option {
	return func(g *Generator) {
		g.templates = templates
	}
}

func NewGenerator(fsys billy.Filesystem, opts ...Option) *Generator {
	g := &Generator{
		fs:        fsys,
		logger:    zerolog.Nop(),
		templates: scaffold.Builtins,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate materializes every template for name. Running it twice is safe:
// the second run creates no directory and overwrites no file. The first
// failure is returned as is and anything already written stays on disk.
func (g *Generator) Generate(name string) (*Result, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	result := &Result{
		DirsCreated:  []string{},
		FilesCreated: []string{},
	}
	seen := map[string]bool{}

	for _, t := range g.templates(name) {
		dirs, err := scaffold.CreateDirectories(g.fs, t)
		if err != nil {
			return nil, err
		}
		for _, dir := range dirs {
			if seen[dir] {
				continue
			}
			seen[dir] = true
			result.DirsCreated = append(result.DirsCreated, dir)
			g.logger.Debug().Str("dir", dir).Msg("directory created")
		}

		written, err := scaffold.SaveToFile(g.fs, t)
		if err != nil {
			return nil, err
		}
		if written == "" {
			g.logger.Debug().Str("file", t.Filename()).Msg("file exists, skipped")
		} else {
			g.logger.Debug().Str("file", written).Msg("file written")
		}
		result.FilesCreated = append(result.FilesCreated, t.Filename())
	}

	g.logger.Info().Msgf("project %s generated", name)
	return result, nil
}

// ValidateName rejects names that are not a single path element.
func ValidateName(name string) error {
	if err := model.ValidateName(name); err != nil {
		return apperrors.Validation("invalid project name: %v", err)
	}
	return nil
}

// IsProject reports whether dir holds a project lock file.
func IsProject(fsys billy.Filesystem, dir string) (bool, error) {
	_, err := fsys.Stat(filepath.Join(dir, scaffold.LockFile))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
