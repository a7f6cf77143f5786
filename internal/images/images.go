// Package images prepares task attachments. Two strategies exist: embed,
// which compresses an image into a base64 data URL stored inline on the
// task, and blob, which writes the original bytes into the data directory
// and stores only a reference. Embed is the default; blob is for images
// the inline budget cannot hold.
package images

import (
	"errors"
	"net/http"
	"strings"
)

const (
	// MaxOriginalBytes caps the raw upload before any processing
	MaxOriginalBytes = 5 * 1024 * 1024
	// MaxEncodedBytes caps the inline data URL stored on a task
	MaxEncodedBytes = 1024 * 1024

	maxWidth    = 800
	maxHeight   = 600
	jpegQuality = 70

	// ThumbnailSize is the square edge used for card previews
	ThumbnailSize = 150
)

var (
	ErrNotImage    = errors.New("images: file is not an image")
	ErrTooLarge    = errors.New("images: image exceeds 5MB")
	ErrEncodeLimit = errors.New("images: compressed image still exceeds inline limit")
)

// Validate checks the raw bytes before any decode work: size ceiling
// first (cheap), then content sniffing
func Validate(data []byte) error {
	if len(data) > MaxOriginalBytes {
		return ErrTooLarge
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return ErrNotImage
	}
	return nil
}

// Attach picks the storage strategy for raw image bytes: embed when the
// compressed result fits inline, blob when it does not. A nil blob store
// disables the fallback.
func Attach(bs *BlobStore, data []byte) (string, error) {
	ref, err := EncodeDataURL(data)
	if errors.Is(err, ErrEncodeLimit) && bs != nil {
		return bs.Save(data, nil)
	}
	return ref, err
}
