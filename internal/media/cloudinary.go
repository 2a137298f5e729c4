package media

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"workshop-api/internal/apperr"
	"workshop-api/internal/config"
)

var errMissingCredentials = apperr.New(apperr.ConfigurationFailure, "Cloudinary credentials are not configured.")

type cloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

var newCloudinaryAPI = func(cfg config.Media) (cloudinaryAPI, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, err
	}
	cld.Config.URL.Secure = true
	return &cld.Upload, nil
}

// CloudinaryUploader uploads through the Cloudinary upload API.
type CloudinaryUploader struct {
	cfg    config.Media
	client cloudinaryAPI
}

// NewCloudinaryUploader 建立上傳器；未設定 API key 時仍可建立，但每次 Upload 都會失敗
func NewCloudinaryUploader(cfg config.Media) (*CloudinaryUploader, error) {
	u := &CloudinaryUploader{cfg: cfg}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return u, nil
	}
	client, err := newCloudinaryAPI(cfg)
	if err != nil {
		return nil, apperr.Wrap(apperr.ConfigurationFailure, "init cloudinary", err)
	}
	u.client = client
	return u, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if strings.TrimSpace(u.cfg.APIKey) == "" || u.client == nil {
		return "", errMissingCredentials
	}

	params := uploader.UploadParams{Folder: u.cfg.Folder}
	res, err := u.client.Upload(ctx, file, params)
	if err != nil {
		return "", err
	}
	if res.Error.Message != "" {
		return "", errors.New(res.Error.Message)
	}
	return res.SecureURL, nil
}

var _ Uploader = (*CloudinaryUploader)(nil)
