// Package attachment moves booking images out of the request body and into object
// storage so the upstream only receives a URL.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/s3"
	"salon/shared/base64"
	"salon/shared/constant"

	"github.com/google/uuid"
)

type Uploader interface {
	// Upload stores a data URL and returns its public address.
	Upload(ctx context.Context, dataURL string) (url string, err error)
	// Discard removes an attachment whose booking did not go through.
	Discard(ctx context.Context, url string) error
}

var ErrForeignURL = errors.New("attachment url does not belong to the configured storage")

type uploaderImpl struct {
	store     s3.S3
	directory string
	otel      otel.Otel
}

func New(store s3.S3, cfg *config.Config, otel otel.Otel) Uploader {
	return &uploaderImpl{
		store:     store,
		directory: cfg.External.S3.Directory,
		otel:      otel,
	}
}

// NewFromConfig returns nil when storage is not configured; callers then send the data
// URL inline.
func NewFromConfig(cfg *config.Config, otel otel.Otel) Uploader {
	if !s3.Enabled(cfg) {
		return nil
	}

	return New(s3.New(cfg, otel), cfg, otel)
}

func (u *uploaderImpl) Upload(ctx context.Context, dataURL string) (url string, err error) {
	ctx, scope := u.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Upload")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	contentType, data, err := base64.Decode(dataURL)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to decode attachment: %w", err)
	}

	fileName := uuid.NewString() + base64.Extension(contentType)

	url, err = u.store.UploadFileBytes(ctx, u.directory, fileName, contentType, data)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to store attachment: %w", err)
	}

	return url, nil
}

func (u *uploaderImpl) Discard(ctx context.Context, url string) (err error) {
	ctx, scope := u.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Discard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	objectName := u.store.GetObjectNameFromURL(url)
	if objectName == constant.Empty {
		return ErrForeignURL
	}

	// objectName already carries the directory.
	return u.store.DeleteFile(ctx, constant.Empty, objectName)
}
