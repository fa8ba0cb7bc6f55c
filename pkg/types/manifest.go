package types

// FileEntry represents a single file inside a bundle archive.
type FileEntry struct {
	// Path is the entry name inside the archive.
	Path string `json:"path" yaml:"path"`

	// Size is the uncompressed size in bytes.
	Size int64 `json:"size" yaml:"size"`

	// SHA256 is the checksum of the file content.
	SHA256 string `json:"sha256" yaml:"sha256"`
}

// BundleResult describes a bundle archive that was written or inspected.
type BundleResult struct {
	ArchivePath string       // The absolute path of the archive file
	FileCount   int          // Number of entries, bundle.ini included
	Files       []FileEntry  // Every entry in archive order
	SizeBytes   int64        // Total uncompressed size of all entries
	Config      BundleConfig // The manifest stored in the archive
}
