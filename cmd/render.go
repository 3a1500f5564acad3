package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/hari-data/hari/internal/project"
	"github.com/hari-data/hari/internal/session"
)

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	kind    lipgloss.Style
	name    lipgloss.Style
	border  lipgloss.Style
	success lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	cell := r.NewStyle().Padding(0, 1)
	return styles{
		title:   r.NewStyle().Bold(true).Italic(true),
		header:  cell.Bold(true),
		kind:    cell.Foreground(lipgloss.Color("14")),
		name:    cell.Foreground(lipgloss.Color("13")),
		border:  r.NewStyle().Foreground(lipgloss.Color("8")),
		success: r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

func (s styles) table(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(s.border).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header
			case col == 0:
				return s.kind
			default:
				return s.name
			}
		})
}

func renderResult(out io.Writer, result *project.Result) string {
	s := newStyles(out)
	t := s.table("Type", "Name")
	for _, dir := range result.DirsCreated {
		t.Row("Directory", dir)
	}
	for _, file := range result.FilesCreated {
		t.Row("File", file)
	}
	return s.title.Render("Directories and Files Created") + "\n" + t.Render()
}

func renderSettings(out io.Writer, settings []session.Setting) string {
	s := newStyles(out)
	t := s.table("Key", "Value")
	for _, setting := range settings {
		t.Row(setting.Key, setting.Value)
	}
	return t.Render()
}
