package bundler

import "github.com/atari-vcs/atari-bundle/pkg/types"

// Builder starts a BundleConfig. Choose an identity with StoreID or
// HomebrewID to get the builder for that kind of bundle.
type Builder struct {
	name       string
	bundleType types.BundleType
}

func NewBuilder(name string, bundleType types.BundleType) *Builder {
	return &Builder{name: name, bundleType: bundleType}
}

// StoreID returns a builder for a bundle identified by a store-issued ID.
func (b *Builder) StoreID(id string) *StoreBuilder {
	return &StoreBuilder{name: b.name, bundleType: b.bundleType, storeID: id}
}

// HomebrewID returns a builder for a bundle with a locally assigned ID.
func (b *Builder) HomebrewID(id string) *HomebrewBuilder {
	return &HomebrewBuilder{name: b.name, bundleType: b.bundleType, homebrewID: id}
}

// StoreBuilder assembles a store bundle. The With methods chain when a
// record is assembled in one go; the Set methods take optional values,
// nil clearing the field, for incremental edits.
type StoreBuilder struct {
	name       string
	bundleType types.BundleType
	storeID    string

	exec           *string
	version        *string
	background     bool
	preferXBoxMode bool
	launcher       *string
	launcherTags   []string
	launcherExec   *string
	encryptedImage *string
}

func (b *StoreBuilder) WithExec(exec string) *StoreBuilder {
	return b.SetExec(&exec)
}

func (b *StoreBuilder) WithVersion(version string) *StoreBuilder {
	return b.SetVersion(&version)
}

func (b *StoreBuilder) WithBackground(background bool) *StoreBuilder {
	return b.SetBackground(&background)
}

func (b *StoreBuilder) WithPreferXBoxMode(prefer bool) *StoreBuilder {
	return b.SetPreferXBoxMode(&prefer)
}

// WithRequiresLauncher names a launcher this bundle needs to run.
func (b *StoreBuilder) WithRequiresLauncher(launcher string) *StoreBuilder {
	return b.SetRequiresLauncher(&launcher)
}

// WithProvidesLauncher marks the bundle as a launcher, started through exec
// and matched by tags. An empty exec leaves both fields untouched.
func (b *StoreBuilder) WithProvidesLauncher(exec string, tags []string) *StoreBuilder {
	if exec == "" {
		return b
	}
	return b.SetProvidesLauncher(&exec, tags)
}

func (b *StoreBuilder) WithEncryptedImage(image string) *StoreBuilder {
	return b.SetEncryptedImage(&image)
}

func (b *StoreBuilder) SetExec(exec *string) *StoreBuilder {
	b.exec = cloneString(exec)
	return b
}

func (b *StoreBuilder) SetVersion(version *string) *StoreBuilder {
	b.version = cloneString(version)
	return b
}

func (b *StoreBuilder) SetBackground(background *bool) *StoreBuilder {
	b.background = background != nil && *background
	return b
}

func (b *StoreBuilder) SetPreferXBoxMode(prefer *bool) *StoreBuilder {
	b.preferXBoxMode = prefer != nil && *prefer
	return b
}

func (b *StoreBuilder) SetRequiresLauncher(launcher *string) *StoreBuilder {
	b.launcher = cloneString(launcher)
	return b
}

// SetProvidesLauncher sets the launcher executable and tags together.
// Tags are meaningless without an executable, so a nil exec is a no-op.
func (b *StoreBuilder) SetProvidesLauncher(exec *string, tags []string) *StoreBuilder {
	if exec == nil {
		return b
	}
	b.launcherExec = cloneString(exec)
	b.launcherTags = cloneTags(tags)
	return b
}

func (b *StoreBuilder) SetEncryptedImage(image *string) *StoreBuilder {
	b.encryptedImage = cloneString(image)
	return b
}

func (b *StoreBuilder) Build() types.BundleConfig {
	return types.BundleConfig{
		Bundle: types.Bundle{
			Name:           b.name,
			Type:           b.bundleType,
			StoreID:        types.Str(b.storeID),
			Exec:           cloneString(b.exec),
			EncryptedImage: cloneString(b.encryptedImage),
			Version:        cloneString(b.version),
			Background:     b.background,
			PreferXBoxMode: b.preferXBoxMode,
			Launcher:       cloneString(b.launcher),
			LauncherTags:   cloneTags(b.launcherTags),
			LauncherExec:   cloneString(b.launcherExec),
		},
	}
}

// HomebrewBuilder assembles a homebrew bundle. Homebrew bundles never run
// in the background, provide a launcher or ship an encrypted image, so
// those fields cannot be set.
type HomebrewBuilder struct {
	name       string
	bundleType types.BundleType
	homebrewID string

	exec           *string
	version        *string
	preferXBoxMode bool
	launcher       *string
}

func (b *HomebrewBuilder) WithExec(exec string) *HomebrewBuilder {
	return b.SetExec(&exec)
}

func (b *HomebrewBuilder) WithVersion(version string) *HomebrewBuilder {
	return b.SetVersion(&version)
}

func (b *HomebrewBuilder) WithPreferXBoxMode(prefer bool) *HomebrewBuilder {
	return b.SetPreferXBoxMode(&prefer)
}

func (b *HomebrewBuilder) WithRequiresLauncher(launcher string) *HomebrewBuilder {
	return b.SetRequiresLauncher(&launcher)
}

func (b *HomebrewBuilder) SetExec(exec *string) *HomebrewBuilder {
	b.exec = cloneString(exec)
	return b
}

func (b *HomebrewBuilder) SetVersion(version *string) *HomebrewBuilder {
	b.version = cloneString(version)
	return b
}

func (b *HomebrewBuilder) SetPreferXBoxMode(prefer *bool) *HomebrewBuilder {
	b.preferXBoxMode = prefer != nil && *prefer
	return b
}

func (b *HomebrewBuilder) SetRequiresLauncher(launcher *string) *HomebrewBuilder {
	b.launcher = cloneString(launcher)
	return b
}

func (b *HomebrewBuilder) Build() types.BundleConfig {
	return types.BundleConfig{
		Bundle: types.Bundle{
			Name:           b.name,
			Type:           b.bundleType,
			HomebrewID:     types.Str(b.homebrewID),
			Exec:           cloneString(b.exec),
			Version:        cloneString(b.version),
			PreferXBoxMode: b.preferXBoxMode,
			Launcher:       cloneString(b.launcher),
		},
	}
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	return types.Str(*s)
}

// cloneTags copies tags, normalising an empty list to nil as decoding does.
func cloneTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	return append([]string(nil), tags...)
}
