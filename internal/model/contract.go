package model

import (
	"path/filepath"
	"strings"

	"github.com/hari-data/hari/internal/apperrors"
)

// DefaultTableFormat is used when an output table has no explicit format.
const DefaultTableFormat = "delta"

// Column describes one column of an output table. Use NewColumn to get the
// nullable default; the zero value is not nullable.
type Column struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Precision  string `yaml:"precision,omitempty"`
	IsNullable bool   `yaml:"is_nullable"`
	IsUnique   bool   `yaml:"is_unique"`
}

// NewColumn returns a nullable, non-unique column.
func NewColumn(name, typ string) Column {
	return Column{
		Name:       name,
		Type:       typ,
		IsNullable: true,
	}
}

type OutputTable struct {
	Name          string
	Path          string
	Format        string
	PartitionedBy []string
}

// FormatOrDefault returns the table format, falling back to DefaultTableFormat.
func (t OutputTable) FormatOrDefault() string {
	if t.Format == "" {
		return DefaultTableFormat
	}
	return t.Format
}

type SLA struct {
	Frequency string
	Tolerance string
}

// ColumnNames returns the names of columns in declaration order.
func ColumnNames(columns []Column) []string {
	names := make([]string, 0, len(columns))
	for _, col := range columns {
		names = append(names, col.Name)
	}
	return names
}

// SupportedTypes lists the column types accepted by the interactive
// column assembly.
var SupportedTypes = []string{
	"string",
	"integer",
	"int",
	"bigint",
	"long",
	"short",
	"byte",
	"float",
	"double",
	"decimal",
	"boolean",
	"date",
	"timestamp",
	"binary",
}

// NormalizeType lower-cases and trims a user supplied type name.
func NormalizeType(typ string) string {
	return strings.ToLower(strings.TrimSpace(typ))
}

func IsSupportedType(typ string) bool {
	typ = NormalizeType(typ)
	for _, supported := range SupportedTypes {
		if typ == supported {
			return true
		}
	}
	return false
}

// HasPrecision reports whether typ carries an optional precision.
func HasPrecision(typ string) bool {
	switch NormalizeType(typ) {
	case "float", "decimal", "double":
		return true
	default:
		return false
	}
}

// ValidateName rejects project and contract names that are not a single path
// element, since both name directories and files on disk.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return apperrors.Validation("name is required")
	case name == "." || name == "..":
		return apperrors.Validation("invalid name %q", name)
	case strings.ContainsAny(name, `/\`) || filepath.Base(name) != name:
		return apperrors.Validation("name %q must not contain path separators", name)
	}
	return nil
}
