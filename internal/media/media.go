// Package media forwards uploaded images to a hosted storage service and
// returns the public URL of the stored file.
package media

import (
	"context"
	"fmt"
	"io"
	"strings"

	"workshop-api/internal/apperr"
	"workshop-api/internal/config"
)

// Uploader stores file and returns its public HTTPS URL. Errors from the
// remote service are returned unmodified.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, filename string) (string, error)
}

const (
	ProviderCloudinary = "cloudinary"
	ProviderS3         = "s3"
)

// New 依 cfg.Provider 選擇上傳後端
func New(ctx context.Context, cfg config.Media) (Uploader, error) {
	switch strings.ToLower(cfg.Provider) {
	case "", ProviderCloudinary:
		u, err := NewCloudinaryUploader(cfg)
		if err != nil {
			return nil, err
		}
		return u, nil
	case ProviderS3:
		u, err := NewS3Uploader(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return u, nil
	default:
		return nil, apperr.New(apperr.ConfigurationFailure, fmt.Sprintf("unknown media provider %q", cfg.Provider))
	}
}
