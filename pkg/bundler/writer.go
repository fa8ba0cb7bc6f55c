package bundler

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/klauspost/compress/zip"
)

// ArchiveWriter handles the creation of a bundle zip with deterministic
// ordering: bundle.ini first, then every other entry sorted by name.
type ArchiveWriter struct {
	files map[string][]byte
	ts    time.Time
}

// NewArchiveWriter creates a new writer instance. Every entry gets ts as
// its modification time.
func NewArchiveWriter(ts time.Time) *ArchiveWriter {
	return &ArchiveWriter{
		files: make(map[string][]byte),
		ts:    ts,
	}
}

// AddFile adds a file to be included in the archive.
// path is the entry name relative to the archive root (e.g. "bundle.ini", "bin/game").
func (w *ArchiveWriter) AddFile(path string, content []byte) {
	w.files[path] = content
}

// Paths returns the entry names in the order they will be written.
func (w *ArchiveWriter) Paths() []string {
	paths := make([]string, 0, len(w.files))
	for p := range w.files {
		if p != EntryName {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)
	if _, ok := w.files[EntryName]; ok {
		paths = append([]string{EntryName}, paths...)
	}
	return paths
}

// WriteZip writes the archive to out and returns the total uncompressed
// size of its entries, not the number of bytes written to out.
func (w *ArchiveWriter) WriteZip(out io.Writer) (int64, error) {
	zw := zip.NewWriter(out)

	var totalSize int64
	for _, p := range w.Paths() {
		content := w.files[p]

		header := &zip.FileHeader{
			Name:     p,
			Method:   zip.Deflate,
			Modified: w.ts,
		}
		header.SetMode(0644)

		fw, err := zw.CreateHeader(header)
		if err != nil {
			return 0, fmt.Errorf("failed to write header for %s: %w", p, err)
		}
		if _, err := fw.Write(content); err != nil {
			return 0, fmt.Errorf("failed to write content for %s: %w", p, err)
		}
		totalSize += int64(len(content))
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("failed to finish archive: %w", err)
	}
	return totalSize, nil
}

// WriteToDisk creates the archive as outputDir/fileName.
// It returns the absolute path to the created file and the total uncompressed size.
func (w *ArchiveWriter) WriteToDisk(outputDir, fileName string) (string, int64, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(outputDir, fileName))
	if err != nil {
		return "", 0, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", 0, fmt.Errorf("failed to create archive file: %w", err)
	}
	defer f.Close()

	size, err := w.WriteZip(f)
	if err != nil {
		return "", 0, err
	}
	if err := f.Close(); err != nil {
		return "", 0, fmt.Errorf("failed to close archive file: %w", err)
	}
	return absPath, size, nil
}
