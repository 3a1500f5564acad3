package model

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hari-data/hari/internal/apperrors"
)

func TestNewColumnDefaults(t *testing.T) {
	col := NewColumn("col1", "string")

	require.Equal(t, "col1", col.Name)
	require.Equal(t, "string", col.Type)
	require.True(t, col.IsNullable)
	require.False(t, col.IsUnique)
	require.Empty(t, col.Precision)
}

func TestColumnYAMLOmitsEmptyPrecision(t *testing.T) {
	out, err := yaml.Marshal(NewColumn("col1", "string"))
	require.NoError(t, err)
	require.Equal(t, "name: col1\ntype: string\nis_nullable: true\nis_unique: false\n", string(out))

	col := NewColumn("amount", "decimal")
	col.Precision = "10"
	out, err = yaml.Marshal(col)
	require.NoError(t, err)
	require.Contains(t, string(out), "precision: \"10\"")
}

func TestFormatOrDefault(t *testing.T) {
	require.Equal(t, "delta", OutputTable{}.FormatOrDefault())
	require.Equal(t, "csv", OutputTable{Format: "csv"}.FormatOrDefault())
}

func TestColumnNames(t *testing.T) {
	cols := []Column{NewColumn("a", "string"), NewColumn("b", "int")}
	require.Equal(t, []string{"a", "b"}, ColumnNames(cols))
	require.Empty(t, ColumnNames(nil))
}

func TestTypeHelpers(t *testing.T) {
	tests := []struct {
		typ       string
		supported bool
		precision bool
	}{
		{"string", true, false},
		{" Decimal ", true, true},
		{"DOUBLE", true, true},
		{"float", true, true},
		{"integer", true, false},
		{"invalid_type", false, false},
		{"", false, false},
	}

	for _, test := range tests {
		require.Equal(t, test.supported, IsSupportedType(test.typ), "IsSupportedType(%q)", test.typ)
		require.Equal(t, test.precision, HasPrecision(test.typ), "HasPrecision(%q)", test.typ)
	}
}

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "orders", false},
		{"unicode", "pedidos_diários", false},
		{"empty", "", true},
		{"dot", ".", true},
		{"dot dot", "..", true},
		{"nested", "a/b", true},
		{"absolute", "/orders", true},
		{"backslash", `a\b`, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateName(test.input)
			if test.wantErr {
				require.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
		})
	}
}
