package images

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// blobScheme prefixes stored references so they are distinguishable from
// inline data URLs in a task's image list
const blobScheme = "blob:"

// BlobStore keeps original image bytes on disk under the data directory
type BlobStore struct {
	dir string
}

// NewBlobStore ensures the image directory exists
func NewBlobStore(dataDir string) (*BlobStore, error) {
	dir := filepath.Join(dataDir, "images")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating image dir: %w", err)
	}
	return &BlobStore{dir: dir}, nil
}

// IsBlobRef reports whether an image entry references the blob store
func IsBlobRef(ref string) bool {
	return strings.HasPrefix(ref, blobScheme)
}

// Save validates and writes the image, reporting progress in chunks so the
// UI can render an upload bar. Returns the reference to store on the task.
func (s *BlobStore) Save(data []byte, progress func(written, total int64)) (string, error) {
	if err := Validate(data); err != nil {
		return "", err
	}

	name := uuid.NewString() + ".img"
	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", err
	}
	defer f.Close()

	total := int64(len(data))
	const chunk = 64 * 1024
	for off := 0; off < len(data); off += chunk {
		end := off + chunk
		if end > len(data) {
			end = len(data)
		}
		if _, err := f.Write(data[off:end]); err != nil {
			os.Remove(filepath.Join(s.dir, name))
			return "", err
		}
		if progress != nil {
			progress(int64(end), total)
		}
	}
	return blobScheme + name, nil
}

// Load reads the bytes behind a blob reference
func (s *BlobStore) Load(ref string) ([]byte, error) {
	name := strings.TrimPrefix(ref, blobScheme)
	return os.ReadFile(filepath.Join(s.dir, filepath.Base(name)))
}

// Delete removes the bytes behind a blob reference. Missing files are not
// an error; the reference may already have been cleaned up.
func (s *BlobStore) Delete(ref string) error {
	name := strings.TrimPrefix(ref, blobScheme)
	err := os.Remove(filepath.Join(s.dir, filepath.Base(name)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
