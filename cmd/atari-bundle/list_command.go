package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/atari-vcs/atari-bundle/pkg/bundler"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list <bundle.zip>",
		Short: "List the entries of a bundle archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := bundler.Inspect(args[0])
			if err != nil {
				return err
			}
			ctx.logger.Debug("archive inspected", "path", args[0], "files", result.FileCount)

			rows := make([][]string, 0, len(result.Files))
			for _, f := range result.Files {
				rows = append(rows, []string{f.Path, strconv.FormatInt(f.Size, 10), f.SHA256})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Path", "Size", "SHA256"}, rows))
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%s): %d files, %d bytes\n",
				result.Config.Bundle.Name, result.Config.Bundle.Type, result.FileCount, result.SizeBytes)
			return nil
		},
	}
}

// renderTable right-aligns the size column.
func renderTable(headers []string, rows [][]string) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, len(headers))
	for i, h := range headers {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, v := range row {
			r[i] = v
		}
		tw.AppendRow(r)
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
