package prompt

import (
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/hari-data/hari/internal/model"
)

type ColumnOptions struct {
	// DefaultYes keeps "yes" as the default answer to "add a column?" even
	// after the first column was added.
	DefaultYes bool
}

// AddColumns asks for columns of table until the user declines. At least one
// column is always collected. Columns with an unsupported type are
// discarded after a warning.
func AddColumns(p Prompter, table string, opts ColumnOptions) ([]model.Column, error) {
	columns := []model.Column{}
	names := map[string]bool{}

	for {
		add, err := p.Confirm(fmt.Sprintf("Add a column to %s?", table), opts.DefaultYes || len(columns) == 0)
		if err != nil {
			return nil, err
		}
		if !add {
			if len(columns) == 0 {
				p.Warn("At least one column is required.")
				continue
			}
			return columns, nil
		}

		name, err := p.Ask("Column name", "")
		if err != nil {
			return nil, err
		}
		if name == "" {
			p.Warn("Column name is required.")
			continue
		}
		if names[name] {
			p.Warn(fmt.Sprintf("Column '%s' already exists.", name))
			continue
		}

		typ, err := p.Ask("Column type", "string")
		if err != nil {
			return nil, err
		}
		typ = model.NormalizeType(typ)
		if !model.IsSupportedType(typ) {
			p.Warn(unsupportedTypeMessage(typ))
			continue
		}

		col := model.NewColumn(name, typ)
		if model.HasPrecision(typ) {
			if col.Precision, err = p.Ask("Precision (optional, e.g. 10,2)", ""); err != nil {
				return nil, err
			}
		}
		if col.IsNullable, err = p.Confirm("Is the column nullable?", true); err != nil {
			return nil, err
		}
		if col.IsUnique, err = p.Confirm("Is the column unique?", false); err != nil {
			return nil, err
		}

		names[name] = true
		columns = append(columns, col)
	}
}

func unsupportedTypeMessage(typ string) string {
	msg := fmt.Sprintf("Unsupported column type '%s'. Supported types: %s.", typ, strings.Join(model.SupportedTypes, ", "))
	if hint := SuggestType(typ); hint != "" {
		msg += fmt.Sprintf(" Did you mean '%s'?", hint)
	}
	return msg
}

// SuggestType returns the closest supported type to typ, or "" when nothing
// matches.
func SuggestType(typ string) string {
	if typ == "" {
		return ""
	}
	matches := fuzzy.Find(typ, model.SupportedTypes)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

// SelectPartitions lets the user pick partition columns among columns, one
// at a time, until an empty answer or until every column is selected.
func SelectPartitions(p Prompter, columns []string) ([]string, error) {
	declared := make(map[string]bool, len(columns))
	for _, col := range columns {
		declared[col] = true
	}

	selected := []string{}
	chosen := map[string]bool{}
	for {
		remaining := make([]string, 0, len(columns))
		for _, col := range columns {
			if !chosen[col] {
				remaining = append(remaining, col)
			}
		}
		if len(remaining) == 0 {
			p.Warn("All columns have been selected.")
			return selected, nil
		}

		choice, err := p.Select("Select a partition column (empty to finish)", remaining)
		if err != nil {
			return nil, err
		}
		switch {
		case choice == "":
			return selected, nil
		case chosen[choice]:
			p.Warn(fmt.Sprintf("Column '%s' already selected.", choice))
		case !declared[choice]:
			p.Warn(fmt.Sprintf("Column '%s' is not a declared column.", choice))
		default:
			chosen[choice] = true
			selected = append(selected, choice)
		}
	}
}

// AskSLA asks for the SLA frequency and tolerance, repeating each question
// until it gets an answer.
func AskSLA(p Prompter) (model.SLA, error) {
	frequency, err := AskRequired(p, "SLA frequency (e.g. daily, hourly)")
	if err != nil {
		return model.SLA{}, err
	}
	tolerance, err := AskRequired(p, "SLA tolerance (e.g. 1h, 30m)")
	if err != nil {
		return model.SLA{}, err
	}
	return model.SLA{Frequency: frequency, Tolerance: tolerance}, nil
}

// AskRequired repeats question until the answer is not empty.
func AskRequired(p Prompter, question string) (string, error) {
	for {
		answer, err := p.Ask(question, "")
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
		p.Warn("A value is required.")
	}
}
