package main

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-git/go-billy/v5"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hari-data/hari/internal/logging"
	"github.com/hari-data/hari/internal/prompt"
	"github.com/hari-data/hari/internal/version"
)

// app carries the process dependencies shared by every command.
type app struct {
	fs     billy.Filesystem
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	now    func() time.Time
	logs   *logging.Manager

	logLevel  string
	logConfig string

	console *prompt.Console
}

func (a *app) logger() zerolog.Logger {
	return a.logs.Logger()
}

// prompter returns one console per process so buffered input is not lost
// between prompts.
func (a *app) prompter() prompt.Prompter {
	if a.console == nil {
		a.console = prompt.NewConsole(a.in, a.out)
	}
	return a.console
}

// fail reports an application error on the console. The command still exits
// successfully.
func (a *app) fail(format string, args ...any) {
	style := lipgloss.NewRenderer(a.out).NewStyle().Foreground(lipgloss.Color("9"))
	fmt.Fprintln(a.out, style.Render(fmt.Sprintf(format, args...)))
	logger := a.logger()
	logger.Debug().Msgf(format, args...)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "hari",
		Short: "Scaffold data projects and write their data contracts",
		Long: `Hari scaffolds data engineering projects and writes versioned data contracts
describing their output tables.

How to use:
  hari create <project>            create the structure of a new project
  hari contract new <name>         create a contract inside a project
  hari contract wizard <project>   build a project contract step by step
  hari session show                print the resolved session settings`,
		Version:       version.Current(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.logs.Configure(logging.Options{
				AppName:    "hari",
				Level:      a.logLevel,
				ConfigPath: a.logConfig,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.SetVersionTemplate("Hari CLI version: {{.Version}}\n")
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warning, error, critical)")
	root.PersistentFlags().StringVar(&a.logConfig, "log-config", "", "YAML file with app_name and log_level")

	root.AddCommand(newCreateCmd(a), newContractCmd(a), newSessionCmd(a))
	return root
}
