package bundler

const (
	// EntryName is the manifest's entry at the root of a bundle archive.
	EntryName = "bundle.ini"

	// SectionName is the key file section holding the bundle record.
	SectionName = "Bundle"

	// DefaultArchiveName is the file name Build uses unless WithFileName is given.
	DefaultArchiveName = "bundle.zip"
)

// Manifest keys, in the order Encode emits them.
const (
	KeyName           = "Name"
	KeyType           = "Type"
	KeyStoreID        = "StoreID"
	KeyHomebrewID     = "HomebrewID"
	KeyExec           = "Exec"
	KeyEncryptedImage = "EncryptedImage"
	KeyVersion        = "Version"
	KeyBackground     = "Background"
	KeyPreferXBoxMode = "PreferXBoxMode"
	KeyLauncher       = "Launcher"
	KeyLauncherTags   = "LauncherTags"
	KeyLauncherExec   = "LauncherExec"
)
