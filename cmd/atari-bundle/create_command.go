package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/atari-vcs/atari-bundle/internal/project"
	"github.com/atari-vcs/atari-bundle/pkg/bundler"
)

func newCreateCommand(ctx *commandContext) *cobra.Command {
	var (
		outputDir string
		fileName  string
		iniOnly   bool
		mtime     string
	)

	cmd := &cobra.Command{
		Use:   "create <project.toml>",
		Short: "Create a bundle archive from a project file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := project.Load(args[0])
			if err != nil {
				return err
			}
			cfg := p.Config()

			if iniOnly {
				if err := os.MkdirAll(outputDir, 0755); err != nil {
					return err
				}
				path := filepath.Join(outputDir, bundler.EntryName)
				if err := bundler.WriteFile(path, cfg); err != nil {
					return err
				}
				ctx.logger.Info("manifest written", "path", path)
				fmt.Fprintln(cmd.OutOrStdout(), path)
				return nil
			}

			opts := []bundler.Option{
				bundler.WithOutputDir(outputDir),
				bundler.WithFileName(fileName),
			}
			if mtime != "" {
				ts, err := time.Parse(time.RFC3339, mtime)
				if err != nil {
					return fmt.Errorf("mtime: %w", err)
				}
				opts = append(opts, bundler.WithTimestamp(ts))
			}

			payload, err := p.Payload()
			if err != nil {
				return err
			}
			result, err := bundler.Build(cfg, payload, opts...)
			if err != nil {
				return err
			}
			ctx.logger.Info("bundle created",
				"path", result.ArchivePath,
				"files", result.FileCount,
				"bytes", result.SizeBytes,
			)
			fmt.Fprintln(cmd.OutOrStdout(), result.ArchivePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Output directory")
	cmd.Flags().StringVar(&fileName, "name", bundler.DefaultArchiveName, "Archive file name")
	cmd.Flags().BoolVar(&iniOnly, "ini-only", false, "Write only bundle.ini instead of an archive")
	cmd.Flags().StringVar(&mtime, "mtime", "", "Fixed RFC 3339 modification time for reproducible archives")
	return cmd
}
