package bundler

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zip"

	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// ReadArchive decodes the bundle.ini entry of an open archive.
func ReadArchive(r *zip.Reader) (*types.BundleConfig, error) {
	f := findEntry(r, EntryName)
	if f == nil {
		return nil, ErrEntryNotFound
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrInvalidArchive, EntryName, err)
	}
	defer rc.Close()

	return Decode(rc)
}

// ReadArchiveFile opens the archive at path and decodes its manifest.
func ReadArchiveFile(path string) (*types.BundleConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open archive", err)
	}
	defer f.Close()

	zr, err := openZip(f)
	if err != nil {
		return nil, err
	}
	return ReadArchive(zr)
}

// WriteArchive stores cfg as the bundle.ini entry of an archive being
// written, using the archive's default compression.
func WriteArchive(zw *zip.Writer, cfg types.BundleConfig) error {
	w, err := zw.Create(EntryName)
	if err != nil {
		return ioError("create "+EntryName, err)
	}
	return Encode(w, cfg)
}

// ReadFile decodes a bare manifest file.
func ReadFile(path string) (*types.BundleConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ioError("open manifest", err)
	}
	defer f.Close()

	return Decode(f)
}

// WriteFile writes cfg as a bare manifest file.
func WriteFile(path string, cfg types.BundleConfig) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return ioError("write manifest", err)
	}
	return nil
}

func openZip(f *os.File) (*zip.Reader, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, ioError("stat archive", err)
	}
	zr, err := zip.NewReader(f, info.Size())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArchive, err)
	}
	return zr, nil
}

func findEntry(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}
