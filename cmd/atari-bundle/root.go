package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type commandContext struct {
	logLevel  string
	logFormat string
	logger    *slog.Logger
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "atari-bundle",
		Short:         "Inspect and create application bundles",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), ctx.logLevel, ctx.logFormat)
			if err != nil {
				return err
			}
			ctx.logger = logger
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&ctx.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ctx.logFormat, "log-format", "text", "Log format (text, json)")

	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newCreateCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))

	return rootCmd
}
