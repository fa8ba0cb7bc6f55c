package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/atari-vcs/atari-bundle/pkg/bundler"
	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// LauncherProvision describes a launcher the bundle itself provides.
type LauncherProvision struct {
	Exec string   `toml:"exec"`
	Tags []string `toml:"tags"`
}

// Project is a bundle project file.
type Project struct {
	Name             string             `toml:"name"`
	Type             *types.BundleType  `toml:"type"`
	StoreID          string             `toml:"store_id"`
	HomebrewID       string             `toml:"homebrew_id"`
	Exec             string             `toml:"exec"`
	Version          string             `toml:"version"`
	Background       bool               `toml:"background"`
	PreferXBoxMode   bool               `toml:"prefer_xbox_mode"`
	RequiresLauncher string             `toml:"requires_launcher"`
	EncryptedImage   string             `toml:"encrypted_image"`
	ProvidesLauncher *LauncherProvision `toml:"provides_launcher"`
	Files            []string           `toml:"files"`

	dir string
}

// Load reads, normalises and validates the project file at path.
func Load(path string) (*Project, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open project: %w", err)
	}
	defer file.Close()

	var p Project
	decoder := toml.NewDecoder(file).DisallowUnknownFields()
	if err := decoder.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse project: %w", err)
	}
	p.dir = filepath.Dir(path)

	p.normalize()
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *Project) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.StoreID = strings.TrimSpace(p.StoreID)
	p.HomebrewID = strings.TrimSpace(p.HomebrewID)
	p.Exec = strings.TrimSpace(p.Exec)
	p.Version = strings.TrimSpace(p.Version)
	p.RequiresLauncher = strings.TrimSpace(p.RequiresLauncher)
	p.EncryptedImage = strings.TrimSpace(p.EncryptedImage)
	if p.ProvidesLauncher != nil {
		p.ProvidesLauncher.Exec = strings.TrimSpace(p.ProvidesLauncher.Exec)
	}
}

// Validate ensures the project describes exactly one kind of bundle.
func (p *Project) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Type == nil {
		return errors.New("type is required (Game, Application or LauncherOnly)")
	}
	switch {
	case p.StoreID == "" && p.HomebrewID == "":
		return errors.New("one of store_id or homebrew_id is required")
	case p.StoreID != "" && p.HomebrewID != "":
		return errors.New("store_id and homebrew_id are mutually exclusive")
	}
	if p.HomebrewID != "" {
		if p.Background {
			return errors.New("background is only supported for store bundles")
		}
		if p.ProvidesLauncher != nil {
			return errors.New("provides_launcher is only supported for store bundles")
		}
		if p.EncryptedImage != "" {
			return errors.New("encrypted_image is only supported for store bundles")
		}
	}
	if p.ProvidesLauncher != nil && p.ProvidesLauncher.Exec == "" {
		return errors.New("provides_launcher.exec is required")
	}
	for _, f := range p.Files {
		if !filepath.IsLocal(f) || archivePath(f) == bundler.EntryName {
			return fmt.Errorf("files: invalid entry %q", f)
		}
	}
	return nil
}

// Config builds the manifest through the builder matching the project's identity.
func (p *Project) Config() types.BundleConfig {
	b := bundler.NewBuilder(p.Name, *p.Type)
	if p.HomebrewID != "" {
		hb := b.HomebrewID(p.HomebrewID).WithPreferXBoxMode(p.PreferXBoxMode)
		hb.SetExec(optional(p.Exec)).
			SetVersion(optional(p.Version)).
			SetRequiresLauncher(optional(p.RequiresLauncher))
		return hb.Build()
	}

	sb := b.StoreID(p.StoreID).
		WithBackground(p.Background).
		WithPreferXBoxMode(p.PreferXBoxMode)
	sb.SetExec(optional(p.Exec)).
		SetVersion(optional(p.Version)).
		SetRequiresLauncher(optional(p.RequiresLauncher)).
		SetEncryptedImage(optional(p.EncryptedImage))
	if p.ProvidesLauncher != nil {
		sb.WithProvidesLauncher(p.ProvidesLauncher.Exec, p.ProvidesLauncher.Tags)
	}
	return sb.Build()
}

// Payload reads the listed files, relative to the project file, keyed by
// their slash separated archive path.
func (p *Project) Payload() (map[string][]byte, error) {
	payload := make(map[string][]byte, len(p.Files))
	for _, f := range p.Files {
		data, err := os.ReadFile(filepath.Join(p.dir, f))
		if err != nil {
			return nil, fmt.Errorf("read payload %s: %w", f, err)
		}
		payload[archivePath(f)] = data
	}
	return payload, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func archivePath(f string) string {
	return filepath.ToSlash(filepath.Clean(f))
}
