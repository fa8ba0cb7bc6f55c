// Package bundler reads and writes bundle manifests and the zip archives
// that carry them.
package bundler

import (
	"fmt"
	"os"
	"time"

	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// Option configures the bundling process.
type Option func(*config)

type config struct {
	timestamp time.Time
	outputDir string
	fileName  string
}

// WithTimestamp sets a specific timestamp for deterministic output.
// If zero, defaults to time.Now() (which breaks determinism across runs).
func WithTimestamp(t time.Time) Option {
	return func(c *config) {
		c.timestamp = t
	}
}

// WithOutputDir sets the directory where the archive will be written.
func WithOutputDir(path string) Option {
	return func(c *config) {
		c.outputDir = path
	}
}

// WithFileName sets the archive file name, DefaultArchiveName otherwise.
func WithFileName(name string) Option {
	return func(c *config) {
		c.fileName = name
	}
}

// Build writes a bundle archive holding cfg as bundle.ini plus the payload
// files, keyed by their path inside the archive.
func Build(cfg types.BundleConfig, payload map[string][]byte, opts ...Option) (*types.BundleResult, error) {
	// 1. Configure
	c := &config{
		outputDir: ".",
		fileName:  DefaultArchiveName,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timestamp.IsZero() {
		c.timestamp = time.Now()
	}

	// 2. Manifest
	manifest, err := Marshal(cfg)
	if err != nil {
		return nil, err
	}
	archiveWriter := NewArchiveWriter(c.timestamp)
	archiveWriter.AddFile(EntryName, manifest)

	// 3. Payload
	for path, content := range payload {
		if path == "" || path == EntryName {
			return nil, fmt.Errorf("bundle: invalid payload path %q", path)
		}
		archiveWriter.AddFile(path, content)
	}

	inv := &inventory{}
	for _, p := range archiveWriter.Paths() {
		inv.AddFile(p, archiveWriter.files[p])
	}

	// 4. Write Archive
	archivePath, size, err := archiveWriter.WriteToDisk(c.outputDir, c.fileName)
	if err != nil {
		return nil, ioError("write archive", err)
	}

	return &types.BundleResult{
		ArchivePath: archivePath,
		FileCount:   len(inv.files),
		Files:       inv.files,
		SizeBytes:   size,
		Config:      cfg,
	}, nil
}

// Inspect reads the manifest of the archive at path and lists its entries.
func Inspect(path string) (*types.BundleResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open archive", err)
	}
	defer f.Close()

	zr, err := openZip(f)
	if err != nil {
		return nil, err
	}
	cfg, err := ReadArchive(zr)
	if err != nil {
		return nil, err
	}

	inv := &inventory{}
	for _, zf := range zr.File {
		if err := addZipEntry(inv, zf); err != nil {
			return nil, err
		}
	}

	return &types.BundleResult{
		ArchivePath: path,
		FileCount:   len(inv.files),
		Files:       inv.files,
		SizeBytes:   inv.total,
		Config:      *cfg,
	}, nil
}
