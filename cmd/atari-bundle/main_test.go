package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atari-vcs/atari-bundle/pkg/bundler"
	"github.com/atari-vcs/atari-bundle/pkg/types"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gamepad"), []byte("binary"), 0755))
	path := filepath.Join(dir, "bundle.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
name = "Gamepad"
type = "Application"
store_id = "DummyStoreID"
version = "5"
encrypted_image = "bundle.img"
files = ["gamepad"]
`), 0644))
	return path
}

func TestCreateShowAndList(t *testing.T) {
	projectPath := writeTestProject(t)
	outDir := t.TempDir()

	out, err := runCLI(t, "create", projectPath, "-o", outDir, "--name", "gamepad.zip", "--mtime", "2024-01-01T12:00:00Z")
	require.NoError(t, err)
	archive := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(outDir, "gamepad.zip"), archive)

	out, err = runCLI(t, "show", archive)
	require.NoError(t, err)
	assert.Equal(t, "[Bundle]\nName=Gamepad\nType=Application\nStoreID=DummyStoreID\nEncryptedImage=bundle.img\nVersion=5\n", out)

	out, err = runCLI(t, "show", "--format", "yaml", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "Type: Application")
	assert.Contains(t, out, "StoreID: DummyStoreID")

	out, err = runCLI(t, "show", "-f", "json", archive)
	require.NoError(t, err)
	assert.Contains(t, out, `"EncryptedImage": "bundle.img"`)

	out, err = runCLI(t, "list", archive)
	require.NoError(t, err)
	assert.Contains(t, out, bundler.EntryName)
	assert.Contains(t, out, "gamepad")
	assert.Contains(t, out, "Gamepad (Application): 2 files")
}

func TestCreateIniOnly(t *testing.T) {
	outDir := t.TempDir()
	out, err := runCLI(t, "create", writeTestProject(t), "-o", outDir, "--ini-only")
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(outDir, bundler.EntryName), path)

	cfg, err := bundler.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, types.Str("DummyStoreID"), cfg.Bundle.StoreID)

	out, err = runCLI(t, "show", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "[Bundle]\nName=Gamepad\n"))
}

func TestShowErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, bundler.EntryName)
	require.NoError(t, os.WriteFile(bad, []byte("[Bundle]\nName=x\n"), 0644))

	_, err := runCLI(t, "show", bad)
	assert.ErrorIs(t, err, bundler.ErrMissingField)

	good := filepath.Join(dir, "good.ini")
	require.NoError(t, os.WriteFile(good, []byte("[Bundle]\nName=x\nType=Game\n"), 0644))
	_, err = runCLI(t, "show", "--format", "xml", good)
	assert.Error(t, err)

	_, err = runCLI(t, "--log-format", "xml", "show", good)
	assert.Error(t, err)

	_, err = runCLI(t, "list", good)
	assert.ErrorIs(t, err, bundler.ErrInvalidArchive)
}

func TestShowDetectsArchives(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.zip")
	f, err := os.Create(empty)
	require.NoError(t, err)
	require.NoError(t, zip.NewWriter(f).Close())
	require.NoError(t, f.Close())
	_, err = runCLI(t, "show", empty)
	assert.ErrorIs(t, err, bundler.ErrEntryNotFound)

	// Shorter than a zip signature, so read as a manifest.
	short := filepath.Join(dir, "short")
	require.NoError(t, os.WriteFile(short, []byte("PK"), 0644))
	_, err = runCLI(t, "show", short)
	assert.NotErrorIs(t, err, bundler.ErrInvalidArchive)
	var decErr *bundler.DecodeError
	assert.ErrorAs(t, err, &decErr)

	_, err = runCLI(t, "show", dir)
	assert.ErrorContains(t, err, "read "+dir)
}
