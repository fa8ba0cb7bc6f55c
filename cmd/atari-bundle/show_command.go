package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"

	"github.com/atari-vcs/atari-bundle/pkg/bundler"
	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// Local file header and end of central directory; the latter opens an
// archive with no entries.
var zipSignatures = [][]byte{[]byte("PK\x03\x04"), []byte("PK\x05\x06")}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show <bundle.zip|bundle.ini>",
		Short: "Print the manifest of a bundle archive or manifest file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadManifest(ctx, args[0])
			if err != nil {
				return err
			}
			return writeManifest(cmd.OutOrStdout(), *cfg, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "ini", "Output format (ini, yaml, json)")
	return cmd
}

// loadManifest reads path as a zip bundle when it starts with the zip
// signature and as a bare manifest otherwise.
func loadManifest(ctx *commandContext, path string) (*types.BundleConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	head := make([]byte, 4)
	n, err := io.ReadFull(f, head)
	f.Close()
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if isZip(head[:n]) {
		ctx.logger.Debug("reading bundle archive", "path", path)
		return bundler.ReadArchiveFile(path)
	}
	ctx.logger.Debug("reading manifest file", "path", path)
	return bundler.ReadFile(path)
}

func isZip(head []byte) bool {
	for _, sig := range zipSignatures {
		if bytes.Equal(head, sig) {
			return true
		}
	}
	return false
}

func writeManifest(w io.Writer, cfg types.BundleConfig, format string) error {
	switch format {
	case "ini":
		return bundler.Encode(w, cfg)
	case "yaml":
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = w.Write(out)
		return err
	case "json":
		out, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	default:
		return fmt.Errorf("format: unsupported value %q", format)
	}
}
