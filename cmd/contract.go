package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hari-data/hari/internal/apperrors"
	"github.com/hari-data/hari/internal/contract"
	"github.com/hari-data/hari/internal/model"
	"github.com/hari-data/hari/internal/project"
	"github.com/hari-data/hari/internal/prompt"
	"github.com/hari-data/hari/internal/scaffold"
	"github.com/hari-data/hari/internal/version"
	"github.com/hari-data/hari/internal/yamlutil"
)

func newContractCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contract",
		Short: "Manage data contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newContractNewCmd(a), newContractWizardCmd(a))
	return cmd
}

type contractFlags struct {
	tableName   string
	tableFormat string
	tablePath   string
	sla         string
	description string
	ownerEmail  string
}

func newContractNewCmd(a *app) *cobra.Command {
	var flags contractFlags

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create a data contract in the current project",
		Example: `  hari contract new orders --output-table-name orders --output-table-format delta \
    --output-table-path catalog.sales.orders --sla y --owner-email data@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := project.IsProject(a.fs, ".")
			if err != nil {
				a.fail("Error checking project: %v", err)
				return nil
			}
			if !ok {
				a.fail("This command must be run inside a Hari project (no %s found).", scaffold.LockFile)
				return apperrors.ErrNotAProject
			}

			path, err := newContract(a, args[0], flags)
			if err != nil {
				a.fail("Error creating contract: %v", err)
				return nil
			}

			a.prompter().Success(fmt.Sprintf("Contract %s created successfully!", args[0]))
			fmt.Fprintf(a.out, "Saved to %s\n", path)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&flags.tableName, "output-table-name", "", "output table name")
	f.StringVar(&flags.tableFormat, "output-table-format", model.DefaultTableFormat, "output table format (e.g. delta, parquet, csv)")
	f.StringVar(&flags.tablePath, "output-table-path", "", "output table path (e.g. catalog.schema.table)")
	f.StringVar(&flags.sla, "sla", "", "add an SLA to the contract (y or n)")
	f.StringVar(&flags.description, "description", "", "contract description")
	f.StringVar(&flags.ownerEmail, "owner-email", "", "contract owner email")
	return cmd
}

func parseYesNo(s string) (value, set bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return false, false, nil
	case "y", "yes":
		return true, true, nil
	case "n", "no":
		return false, true, nil
	default:
		return false, false, apperrors.Validation("invalid --sla value %q, want y or n", s)
	}
}

// newContract asks for whatever flags do not provide and writes
// contracts/<name>.yaml relative to the project root.
func newContract(a *app, name string, flags contractFlags) (string, error) {
	if err := project.ValidateName(name); err != nil {
		return "", err
	}
	withSLA, slaSet, err := parseYesNo(flags.sla)
	if err != nil {
		return "", err
	}

	p := a.prompter()
	if flags.tableName == "" {
		if flags.tableName, err = prompt.AskRequired(p, "Output table name"); err != nil {
			return "", err
		}
	}

	columns, err := prompt.AddColumns(p, flags.tableName, prompt.ColumnOptions{})
	if err != nil {
		return "", err
	}

	var partitions []string
	addPartitions, err := p.Confirm("Add partition columns?", false)
	if err != nil {
		return "", err
	}
	if addPartitions {
		if partitions, err = prompt.SelectPartitions(p, model.ColumnNames(columns)); err != nil {
			return "", err
		}
	}

	if !slaSet {
		if withSLA, err = p.Confirm("Add an SLA to the contract?", false); err != nil {
			return "", err
		}
	}
	var sla *model.SLA
	if withSLA {
		answer, err := prompt.AskSLA(p)
		if err != nil {
			return "", err
		}
		sla = &answer
	}

	doc := contract.Compose(contract.Input{
		Version:   version.Current(),
		CreatedAt: a.now().Format(contract.CreatedAtLayout),
		Name:      name,
		OutputTable: model.OutputTable{
			Name:          flags.tableName,
			Path:          flags.tablePath,
			Format:        flags.tableFormat,
			PartitionedBy: partitions,
		},
		Columns:     columns,
		Description: flags.description,
		OwnerEmail:  flags.ownerEmail,
		SLA:         sla,
	})

	path, err := yamlutil.WriteFile(a.fs, contract.Dir, name, doc)
	if err != nil {
		return "", &apperrors.ContractSaveError{Err: err}
	}
	logger := a.logger()
	logger.Info().Str("path", path).Msgf("contract %s written", name)
	return path, nil
}

func newContractWizardCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard <project>",
		Short: "Build the contract of a project step by step",
		Long: `Asks for every contract field and writes the result to
<project>/contracts/<project>.yaml.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := runWizard(a, args[0])
			if err != nil {
				a.fail("Error creating contract: %v", err)
				return nil
			}
			a.prompter().Success(fmt.Sprintf("Contract saved to %s", path))
			return nil
		},
	}
}

func runWizard(a *app, name string) (string, error) {
	if err := project.ValidateName(name); err != nil {
		return "", err
	}

	p := a.prompter()
	p.Success("Enter the contract details:")

	description, err := p.Ask("Contract description (enter to skip)", "")
	if err != nil {
		return "", err
	}
	table, err := prompt.AskRequired(p, "Output table name (e.g. catalog uri, file name)")
	if err != nil {
		return "", err
	}
	format, err := p.Ask("Output table format (e.g. parquet, csv)", model.DefaultTableFormat)
	if err != nil {
		return "", err
	}

	columns, err := prompt.AddColumns(p, table, prompt.ColumnOptions{})
	if err != nil {
		return "", err
	}

	var partitions []string
	addPartitions, err := p.Confirm("Add partition columns?", false)
	if err != nil {
		return "", err
	}
	if addPartitions {
		if partitions, err = prompt.SelectPartitions(p, model.ColumnNames(columns)); err != nil {
			return "", err
		}
		if len(partitions) == 0 {
			p.Warn("No partition column selected.")
		} else {
			p.Success("Selected columns: " + strings.Join(partitions, ", "))
		}
	}

	owner, err := p.Ask("Contract owner email (enter to skip)", "")
	if err != nil {
		return "", err
	}

	opts := []contract.Option{contract.WithLogger(a.logger()), contract.WithClock(a.now)}
	withSLA, err := p.Confirm("Add an SLA to the contract?", false)
	if err != nil {
		return "", err
	}
	if withSLA {
		sla, err := prompt.AskSLA(p)
		if err != nil {
			return "", err
		}
		opts = append(opts, contract.WithSLA(sla.Frequency, sla.Tolerance))
	}

	b, err := contract.NewBuilder(a.fs, name, table, format, opts...)
	if err != nil {
		return "", err
	}
	b.SetDescription(description)
	b.SetOwnerEmail(owner)
	b.SetColumns(columns)
	b.SetPartitionColumns(partitions)

	p.Success("Processing contract:")
	if _, err := b.Build(); err != nil {
		return "", err
	}

	p.Success("Saving contract:")
	return b.Persist()
}
