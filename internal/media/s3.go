// File: internal/media/s3.go
package media

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"workshop-api/internal/apperr"
	"workshop-api/internal/config"
)

type s3PutAPI interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

var newS3API = func(ctx context.Context, cfg config.Media) (s3PutAPI, error) {
	loadOpts := []func(*awscfg.LoadOptions) error{
		awscfg.WithRegion(cfg.Region),
	}
	if cfg.APIKey != "" {
		loadOpts = append(loadOpts, awscfg.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.APIKey, cfg.APISecret, ""),
		))
	}
	awsCfg, err := awscfg.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	return manager.NewUploader(client), nil
}

var newObjectID = func() string { return uuid.NewString() }

// S3Uploader stores images in an S3-compatible bucket.
type S3Uploader struct {
	cfg      config.Media
	uploader s3PutAPI
}

func NewS3Uploader(ctx context.Context, cfg config.Media) (*S3Uploader, error) {
	u := &S3Uploader{cfg: cfg}
	if strings.TrimSpace(cfg.Bucket) == "" {
		return u, nil
	}
	api, err := newS3API(ctx, cfg)
	if err != nil {
		return nil, apperr.Wrap(apperr.ConfigurationFailure, "init s3", err)
	}
	u.uploader = api
	return u, nil
}

func (u *S3Uploader) Upload(ctx context.Context, file io.Reader, filename string) (string, error) {
	if strings.TrimSpace(u.cfg.Bucket) == "" || u.uploader == nil {
		return "", apperr.New(apperr.ConfigurationFailure, "storage bucket is required")
	}

	key := u.objectKey(filename)
	input := &s3.PutObjectInput{
		Bucket: aws.String(u.cfg.Bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename))); ct != "" {
		input.ContentType = aws.String(ct)
	}

	out, err := u.uploader.Upload(ctx, input)
	if err != nil {
		return "", err
	}
	if base := strings.TrimRight(u.cfg.PublicBaseURL, "/"); base != "" {
		return base + "/" + key, nil
	}
	return out.Location, nil
}

func (u *S3Uploader) objectKey(filename string) string {
	name := newObjectID() + strings.ToLower(filepath.Ext(filename))
	folder := strings.Trim(u.cfg.Folder, "/")
	if folder == "" {
		return name
	}
	return path.Join(folder, name)
}

var _ Uploader = (*S3Uploader)(nil)
