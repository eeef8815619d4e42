package imagestore

import (
	"fmt"

	"zk-salon-api-server/config"
)

// New builds the image store for the configured uploads mode.
func New(cfg config.Config) (Store, error) {
	switch cfg.Uploads.Mode {
	case "s3":
		return NewS3Store(cfg.S3)
	case "local-url":
		return NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, true)
	case "", "local":
		return NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.BaseURL, false)
	default:
		return nil, fmt.Errorf("unknown uploads mode %q", cfg.Uploads.Mode)
	}
}
