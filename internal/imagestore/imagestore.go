// server/internal/imagestore/imagestore.go
package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"zk-salon-api-server/internal/models"
)

// ErrInvalidImage is returned for uploads outside the content-type allow-list
// or over the size cap.
var ErrInvalidImage = errors.New("invalid image upload")

// MaxFileSize is the upload cap (5 MiB).
const MaxFileSize = 5 << 20

var allowedTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Upload is a validated incoming image file.
type Upload struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
}

// Store persists product image binaries. One implementation per deployment
// mode, selected once at startup: local disk with metadata, local disk with a
// bare URL, or a remote object store.
type Store interface {
	// Save stores the binary under a fresh unique name and returns the image
	// reference to put on the owning product record.
	Save(ctx context.Context, up Upload, entityID string) (models.Image, error)
	// Delete removes the backing asset best-effort. Implementations may skip
	// deletion (remote object mode leaves orphans).
	Delete(img models.Image) error
	Mode() string
}

// Validate checks the declared content type and size against the allow-list
// and cap.
func Validate(contentType string, size int64) error {
	if _, ok := allowedTypes[contentType]; !ok {
		return fmt.Errorf("%w: type %q not allowed, only JPEG, PNG and WEBP", ErrInvalidImage, contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("%w: file too large, max 5MB allowed", ErrInvalidImage)
	}
	return nil
}

// SaveUpload validates a multipart file header and stores its content.
func SaveUpload(ctx context.Context, s Store, fh *multipart.FileHeader, entityID string) (models.Image, error) {
	contentType := fh.Header.Get("Content-Type")
	if err := Validate(contentType, fh.Size); err != nil {
		return models.Image{}, err
	}

	f, err := fh.Open()
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	return s.Save(ctx, Upload{
		Reader:      f,
		Filename:    fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
	}, entityID)
}
