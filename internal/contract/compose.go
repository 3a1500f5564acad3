package contract

import "github.com/hari-data/hari/internal/model"

// Input carries every field of a contract for the single-call construction
// path used by flag driven commands.
type Input struct {
	Version     string
	CreatedAt   string
	Name        string
	OutputTable model.OutputTable
	// Columns are written as given. Build them with model.NewColumn so they
	// default to nullable; a zero Column is written with is_nullable false.
	Columns     []model.Column
	Description string
	OwnerEmail  string
	SLA         *model.SLA
}

// Compose builds the contract document for in. Empty description and owner
// and a nil SLA are left out of the document entirely.
func Compose(in Input) *Document {
	doc := NewDocument()
	doc.Set("hari_version", in.Version)
	doc.Set("created_at", in.CreatedAt)
	doc.Set("name", in.Name)

	if in.Description != "" {
		doc.Set("description", in.Description)
	}
	if in.OwnerEmail != "" {
		doc.Set("owner_email", in.OwnerEmail)
	}

	partitionedBy := in.OutputTable.PartitionedBy
	if partitionedBy == nil {
		partitionedBy = []string{}
	}
	columns := in.Columns
	if columns == nil {
		columns = []model.Column{}
	}

	table := NewDocument()
	table.Set("name", in.OutputTable.Name)
	table.Set("path", in.OutputTable.Path)
	table.Set("format", in.OutputTable.FormatOrDefault())
	table.Set("partitioned_by", partitionedBy)
	table.Set("columns", columns)
	doc.Set("output_table", table)

	if in.SLA != nil {
		sla := NewDocument()
		sla.Set("frequency", in.SLA.Frequency)
		sla.Set("tolerance", in.SLA.Tolerance)
		doc.Set("sla", sla)
	}

	return doc
}
