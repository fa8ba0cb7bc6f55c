package bundler

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/atari-vcs/atari-bundle/pkg/types"
)

// inventory records the size and checksum of each archive entry.
type inventory struct {
	files []types.FileEntry
	total int64
}

func (inv *inventory) AddFile(path string, data []byte) {
	hash := sha256.Sum256(data)
	inv.add(path, int64(len(data)), hex.EncodeToString(hash[:]))
}

// AddReader hashes r until EOF.
func (inv *inventory) AddReader(path string, r io.Reader) error {
	hasher := sha256.New()
	n, err := io.Copy(hasher, r)
	if err != nil {
		return err
	}
	inv.add(path, n, hex.EncodeToString(hasher.Sum(nil)))
	return nil
}

func (inv *inventory) add(path string, size int64, sum string) {
	inv.files = append(inv.files, types.FileEntry{
		Path:   path,
		Size:   size,
		SHA256: sum,
	})
	inv.total += size
}

func addZipEntry(inv *inventory, zf *zip.File) error {
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("%w: open %s: %w", ErrInvalidArchive, zf.Name, err)
	}
	defer rc.Close()

	if err := inv.AddReader(zf.Name, rc); err != nil {
		return ioError("read "+zf.Name, err)
	}
	return nil
}
