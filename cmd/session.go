package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hari-data/hari/internal/session"
)

func newSessionCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the processing engine session settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newSessionShowCmd(a), newSessionEnvCmd(a))
	return cmd
}

func newSessionShowCmd(a *app) *cobra.Command {
	var (
		configPath string
		env        string
		extras     map[string]string
	)

	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Print the resolved session settings",
		Example: "  hari session show --config configs/spark.yaml --env cluster --conf spark.executor.memory=2g",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sessionEnv, err := session.ParseEnv(env)
			if err != nil {
				a.fail("Error configuring session: %v", err)
				return nil
			}

			s, err := session.NewManager(a.fs, session.WithLogger(a.logger())).Configure(sessionEnv, configPath, extras)
			if err != nil {
				a.fail("Error configuring session: %v", err)
				return nil
			}

			fmt.Fprintln(a.out, renderSettings(a.out, s.Settings()))
			fmt.Fprintf(a.out, "spark-submit %s\n", strings.Join(s.SubmitArgs(), " "))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "session YAML config (app_name, master_url, spark_log_level, jars_path)")
	f.StringVar(&env, "env", string(session.EnvLocal), "session environment: local or cluster")
	f.StringToStringVar(&extras, "conf", nil, "extra engine option as key=value, repeatable")
	return cmd
}

func newSessionEnvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "List the environment variables that override the session config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usage, err := session.EnvUsage()
			if err != nil {
				a.fail("Error describing environment: %v", err)
				return nil
			}
			fmt.Fprintln(a.out, usage)
			return nil
		},
	}
}
