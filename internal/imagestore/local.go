// server/internal/imagestore/local.go
package imagestore

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"zk-salon-api-server/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalStore writes image binaries under a directory on local disk. With
// BareURL set the product record carries just the relative URL string, the
// legacy document form; otherwise it carries the full metadata object.
type LocalStore struct {
	Dir     string // e.g. uploads/images
	BaseURL string // e.g. /uploads/images
	BareURL bool
}

func NewLocalStore(dir, baseURL string, bareURL bool) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}
	return &LocalStore{Dir: dir, BaseURL: strings.TrimRight(baseURL, "/"), BareURL: bareURL}, nil
}

func (l *LocalStore) Mode() string {
	if l.BareURL {
		return "local-url"
	}
	return "local"
}

func (l *LocalStore) Save(_ context.Context, up Upload, entityID string) (models.Image, error) {
	filename := uuid.New().String() + fileExt(up)
	path := filepath.Join(l.Dir, filename)

	dst, err := os.Create(path)
	if err != nil {
		return models.Image{}, fmt.Errorf("failed to create image file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, up.Reader)
	if err != nil {
		os.Remove(path)
		return models.Image{}, fmt.Errorf("failed to write image file: %w", err)
	}

	url := l.BaseURL + "/" + filename
	if l.BareURL {
		return models.Image{URL: url}, nil
	}
	return models.Image{
		URL: url,
		Meta: &models.ImageMetadata{
			Filename:     filename,
			Path:         path,
			URL:          url,
			FileType:     up.ContentType,
			FileSize:     size,
			UploadedDate: time.Now().Format("2006-01-02 15:04:05"),
			EntityID:     entityID,
		},
	}, nil
}

// Delete removes the backing file. Missing files are not an error; any other
// failure is logged and surfaced so callers can decide to ignore it.
func (l *LocalStore) Delete(img models.Image) error {
	path := l.assetPath(img)
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		zap.S().Errorf("Failed to delete image %s: %v", path, err)
		return err
	}
	return nil
}

func (l *LocalStore) assetPath(img models.Image) string {
	if img.Meta != nil {
		return img.Meta.Path
	}
	// Bare-URL form: only our own relative URLs map back to a file on disk.
	if img.URL == "" || !strings.HasPrefix(img.URL, l.BaseURL+"/") {
		return ""
	}
	return filepath.Join(l.Dir, filepath.Base(img.URL))
}

func fileExt(up Upload) string {
	if ext := strings.ToLower(filepath.Ext(up.Filename)); ext != "" {
		return ext
	}
	return allowedTypes[up.ContentType]
}
