package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hari-data/hari/internal/project"
)

func newCreateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "create <project>",
		Short:   "Create the directory structure of a new project",
		Example: "  hari create sales_daily",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]

			result, err := project.NewGenerator(a.fs, project.WithLogger(a.logger())).Generate(name)
			if err != nil {
				a.fail("Error creating project structure: %v", err)
				return nil
			}

			s := newStyles(a.out)
			fmt.Fprintln(a.out, renderResult(a.out, result))
			fmt.Fprintln(a.out, s.success.Render(fmt.Sprintf("Project %s created successfully!", name)))
			fmt.Fprintln(a.out, s.success.Render("Happy coding! 🚀"))
			return nil
		},
	}
}
