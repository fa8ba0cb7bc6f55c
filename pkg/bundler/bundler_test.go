package bundler_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atari-vcs/atari-bundle/pkg/bundler"
	"github.com/atari-vcs/atari-bundle/pkg/types"
)

func TestBuild(t *testing.T) {
	outDir := t.TempDir()

	cfg := sampleConfig()
	payload := map[string][]byte{
		"bundle.img":  []byte("encrypted"),
		"bin/gamepad": []byte("#!/bin/sh\n"),
		"README.txt":  []byte("readme"),
	}

	// Use fixed timestamp for determinism
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	result, err := bundler.Build(cfg, payload,
		bundler.WithTimestamp(fixedTime),
		bundler.WithOutputDir(outDir),
		bundler.WithFileName("gamepad.zip"),
	)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outDir, "gamepad.zip"), result.ArchivePath)
	assert.Equal(t, 4, result.FileCount)
	require.Len(t, result.Files, 4)
	assert.Equal(t, bundler.EntryName, result.Files[0].Path)
	assert.Equal(t, []string{bundler.EntryName, "README.txt", "bin/gamepad", "bundle.img"},
		[]string{result.Files[0].Path, result.Files[1].Path, result.Files[2].Path, result.Files[3].Path})
	assert.Equal(t, cfg, result.Config)

	_, err = os.Stat(result.ArchivePath)
	require.NoError(t, err)

	inspected, err := bundler.Inspect(result.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, cfg, inspected.Config)
	assert.Equal(t, result.Files, inspected.Files)
	assert.Equal(t, result.SizeBytes, inspected.SizeBytes)

	got, err := bundler.ReadArchiveFile(result.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, cfg, *got)
}

func TestBuildDeterministic(t *testing.T) {
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	payload := map[string][]byte{"a": []byte("a"), "b": []byte("b"), "c": []byte("c")}

	build := func(dir string) []byte {
		result, err := bundler.Build(sampleConfig(), payload,
			bundler.WithTimestamp(fixedTime),
			bundler.WithOutputDir(dir),
		)
		require.NoError(t, err)
		assert.Equal(t, bundler.DefaultArchiveName, filepath.Base(result.ArchivePath))
		data, err := os.ReadFile(result.ArchivePath)
		require.NoError(t, err)
		return data
	}

	assert.Equal(t, build(t.TempDir()), build(t.TempDir()))
}

func TestBuildRejectsManifestPayload(t *testing.T) {
	_, err := bundler.Build(sampleConfig(), map[string][]byte{bundler.EntryName: []byte("x")},
		bundler.WithOutputDir(t.TempDir()))
	assert.Error(t, err)

	_, err = bundler.Build(types.BundleConfig{Bundle: types.Bundle{Name: "x", Type: types.BundleType(5)}}, nil,
		bundler.WithOutputDir(t.TempDir()))
	var encErr *bundler.EncodeError
	assert.ErrorAs(t, err, &encErr)
}

func TestArchiveWriterWriteZip(t *testing.T) {
	w := bundler.NewArchiveWriter(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	w.AddFile("data", bytes.Repeat([]byte("a"), 4096))
	w.AddFile(bundler.EntryName, []byte("[Bundle]\nName=x\nType=Game\n"))

	var buf bytes.Buffer
	size, err := w.WriteZip(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(4096+len("[Bundle]\nName=x\nType=Game\n")), size)
	assert.NotEqual(t, int64(buf.Len()), size)

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)
	assert.Equal(t, bundler.EntryName, zr.File[0].Name)

	cfg, err := bundler.ReadArchive(zr)
	require.NoError(t, err)
	assert.Equal(t, "x", cfg.Bundle.Name)
}
