// Package contract builds data-contract documents and persists them as YAML.
//
// Two construction paths exist. Builder is stateful: it is created with the
// required fields, configured through setters, built, then persisted.
// Compose is a single call over an Input and is used by flag driven commands.
// Both omit optional keys instead of writing nulls.
package contract

import (
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"

	"github.com/hari-data/hari/internal/apperrors"
	"github.com/hari-data/hari/internal/model"
	"github.com/hari-data/hari/internal/version"
	"github.com/hari-data/hari/internal/yamlutil"
)

const (
	// DefaultVersion is the contract document version written by Builder.
	DefaultVersion = "1.0.0"
	// CreatedAtLayout formats the created_at field.
	CreatedAtLayout = "2006-01-02 15:04:05"
	// Dir is the directory, under the contract name, holding persisted contracts.
	Dir = "contracts"
)

type State int

const (
	StateCreated State = iota
	StateConfigured
	StateBuilt
	StatePersisted
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateConfigured:
		return "configured"
	case StateBuilt:
		return "built"
	case StatePersisted:
		return "persisted"
	default:
		return "unknown"
	}
}

type Builder struct {
	fs     billy.Filesystem
	logger zerolog.Logger
	now    func() time.Time

	version     string
	createdAt   string
	name        string
	description string
	ownerEmail  string
	table       model.OutputTable
	columns     []model.Column

	sla       bool
	frequency string
	tolerance string

	state State
	doc   *Document
}

type Option func(*Builder)

// WithSLA enables the SLA section. Both values are required; NewBuilder
// fails when either is empty.
func WithSLA(frequency, tolerance string) Option {
	return func(b *Builder) {
		b.sla = true
		b.frequency = frequency
		b.tolerance = tolerance
	}
}

func WithVersion(v string) Option {
	return func(b *Builder) {
		b.version = v
	}
}

func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(b *Builder) {
		b.logger = logger
	}
}

// NewBuilder returns a builder in StateCreated. An empty tableFormat falls
// back to model.DefaultTableFormat.
func NewBuilder(fsys billy.Filesystem, name, tableName, tableFormat string, opts ...Option) (*Builder, error) {
	if name == "" {
		return nil, apperrors.Validation("contract name is required")
	}
	if err := model.ValidateName(name); err != nil {
		return nil, apperrors.Validation("invalid contract name: %v", err)
	}
	if tableName == "" {
		return nil, apperrors.Validation("output table name is required")
	}

	b := &Builder{
		fs:      fsys,
		logger:  zerolog.Nop(),
		now:     time.Now,
		version: DefaultVersion,
		name:    name,
		table: model.OutputTable{
			Name:   tableName,
			Format: tableFormat,
		},
	}
	for _, opt := range opts {
		opt(b)
	}

	if err := version.Validate(b.version); err != nil {
		return nil, apperrors.Validation("%v", err)
	}
	if b.sla && (b.frequency == "" || b.tolerance == "") {
		return nil, apperrors.Validation("SLA requires frequency and tolerance")
	}

	b.table.Format = b.table.FormatOrDefault()
	b.createdAt = b.now().Format(CreatedAtLayout)
	return b, nil
}

func (b *Builder) State() State {
	return b.state
}

func (b *Builder) Name() string {
	return b.name
}

func (b *Builder) SLAEnabled() bool {
	return b.sla
}

func (b *Builder) PartitionColumns() []string {
	return b.table.PartitionedBy
}

// touch records a configuration change. A previously built document no
// longer reflects the builder and has to be built again.
func (b *Builder) touch() {
	b.state = StateConfigured
	b.doc = nil
}

func (b *Builder) SetDescription(description string) {
	b.description = description
	b.touch()
}

func (b *Builder) SetOwnerEmail(email string) {
	b.ownerEmail = email
	b.touch()
}

func (b *Builder) SetTablePath(path string) {
	b.table.Path = path
	b.touch()
}

// SetPartitionColumns replaces the partition columns. Repeated names are
// kept once, in first-seen order.
func (b *Builder) SetPartitionColumns(columns []string) {
	seen := make(map[string]bool, len(columns))
	unique := make([]string, 0, len(columns))
	for _, col := range columns {
		if seen[col] {
			continue
		}
		seen[col] = true
		unique = append(unique, col)
	}
	b.table.PartitionedBy = unique
	b.touch()
}

func (b *Builder) SetColumns(columns []model.Column) {
	b.columns = columns
	b.touch()
}

func (b *Builder) SetFrequency(frequency string) {
	b.frequency = frequency
	b.touch()
}

func (b *Builder) SetTolerance(tolerance string) {
	b.tolerance = tolerance
	b.touch()
}

// Build composes the contract document from the current fields.
func (b *Builder) Build() (*Document, error) {
	if b.sla && (b.frequency == "" || b.tolerance == "") {
		return nil, apperrors.Validation("SLA requires frequency and tolerance")
	}

	declared := make(map[string]bool, len(b.columns))
	for _, col := range b.columns {
		declared[col.Name] = true
	}
	for _, col := range b.table.PartitionedBy {
		if !declared[col] {
			return nil, apperrors.Validation("partition column %q is not a declared column", col)
		}
	}

	doc := NewDocument()
	doc.Set("version", b.version)
	doc.Set("created_at", b.createdAt)
	doc.Set("name", b.name)
	if b.description != "" {
		doc.Set("description", b.description)
	}
	if b.ownerEmail != "" {
		doc.Set("owner_email", b.ownerEmail)
	}

	columns := b.columns
	if columns == nil {
		columns = []model.Column{}
	}

	table := NewDocument()
	table.Set("name", b.table.Name)
	table.Set("format", b.table.Format)
	if len(b.table.PartitionedBy) > 0 {
		table.Set("partition", b.table.PartitionedBy)
	}
	if b.table.Path != "" {
		table.Set("path", b.table.Path)
	}
	table.Set("columns", columns)
	doc.Set("output_table", table)

	if b.sla {
		sla := NewDocument()
		sla.Set("frequency", b.frequency)
		sla.Set("tolerance", b.tolerance)
		doc.Set("sla", sla)
	}

	b.doc = doc
	b.state = StateBuilt
	return doc, nil
}

// Persist writes the built document to <name>/contracts/<name>.yaml and
// returns the path. Every failure comes back as *apperrors.ContractSaveError.
func (b *Builder) Persist() (string, error) {
	if b.doc == nil {
		return "", &apperrors.ContractSaveError{Err: apperrors.Validation("contract not built")}
	}

	dir := filepath.Join(b.name, Dir)
	path, err := yamlutil.WriteFile(b.fs, dir, b.name, b.doc)
	if err != nil {
		return "", &apperrors.ContractSaveError{Err: err}
	}

	b.state = StatePersisted
	b.logger.Info().Str("path", path).Msgf("contract %s saved", b.name)
	return path, nil
}
