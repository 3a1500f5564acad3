// Package scaffold holds the built-in project templates and the functions that
// materialize them on a filesystem.
//
// A Template only computes a relative path and its content; CreateDirectories
// and SaveToFile do the I/O. Both are idempotent: existing directories are not
// reported again and existing files are never overwritten.
package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"path/filepath"
	"text/template"

	"github.com/hari-data/hari/internal/version"
)

// LockFile is the marker file whose presence identifies a project root.
const LockFile = "hari.lock"

//go:embed templates/*.tmpl
var templateFiles embed.FS

var tmpls = template.Must(template.New("").ParseFS(templateFiles, "templates/*.tmpl"))

// Template produces one scaffolded artifact. Filename and Text must be pure
// functions of the template's fields.
type Template interface {
	Filename() string
	Text() string
}

type tmplData struct {
	Project string
	Version string
}

func render(name string, data tmplData) string {
	buffer := new(bytes.Buffer)
	if err := tmpls.ExecuteTemplate(buffer, name, data); err != nil {
		panic(fmt.Sprintf("scaffold: render %s: %v", name, err))
	}
	return buffer.String()
}

type Configs struct {
	Project string
	Version string
}

func NewConfigs(project string) Configs {
	return Configs{Project: project, Version: version.Current()}
}

func (t Configs) Filename() string {
	return filepath.Join(t.Project, "configs", "configs.yaml")
}

func (t Configs) Text() string {
	return render("configs.yaml.tmpl", tmplData{Project: t.Project, Version: t.Version})
}

type Helpers struct {
	Project string
}

func (t Helpers) Filename() string {
	return filepath.Join(t.Project, "utils", "helpers.py")
}

func (t Helpers) Text() string {
	return render("helpers.py.tmpl", tmplData{Project: t.Project})
}

type Validators struct {
	Project string
}

func (t Validators) Filename() string {
	return filepath.Join(t.Project, "utils", "validators.py")
}

func (t Validators) Text() string {
	return render("validators.py.tmpl", tmplData{Project: t.Project})
}

// Job is the entry-point stub of a project.
type Job struct {
	Project string
}

func (t Job) Filename() string {
	return filepath.Join(t.Project, "job.py")
}

func (t Job) Text() string {
	return render("job.py.tmpl", tmplData{Project: t.Project})
}

type Readme struct {
	Project string
}

func (t Readme) Filename() string {
	return filepath.Join(t.Project, "README.md")
}

func (t Readme) Text() string {
	return render("README.md.tmpl", tmplData{Project: t.Project})
}

// Lock records the project name and the generator version. Other commands
// only check that the file exists; its content is informational.
type Lock struct {
	Project string
	Version string
}

func NewLock(project string) Lock {
	return Lock{Project: project, Version: version.Current()}
}

func (t Lock) Filename() string {
	return filepath.Join(t.Project, LockFile)
}

func (t Lock) Text() string {
	return render("hari.lock.tmpl", tmplData{Project: t.Project, Version: t.Version})
}

// Builtins returns every built-in template bound to project, in declaration
// order. The order drives the order of generated results.
func Builtins(project string) []Template {
	return []Template{
		NewConfigs(project),
		Helpers{Project: project},
		Validators{Project: project},
		Job{Project: project},
		Readme{Project: project},
		NewLock(project),
	}
}
