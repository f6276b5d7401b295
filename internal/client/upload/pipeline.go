// Package upload turns a local image file into a durable URL, or rejects it
// before any bytes leave the machine. The pipeline itself performs no
// retries; a failed upload is the caller's decision to abort or re-run.
package upload

import (
	"context"
	"errors"
	"fmt"

	"userdeck/internal/client/models"
)

// MaxImageSize is the upper bound for a profile picture payload.
const MaxImageSize = 5 << 20 // 5 MiB

var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

var (
	ErrUnsupportedType = errors.New("please select a valid image file (JPEG, PNG, GIF, or WebP)")
	ErrImageTooLarge   = errors.New("image size must be less than 5MB")
)

// Uploader exchanges a validated asset for a durable URL. Implementations:
// HostedUploader (the hosting provider's multipart endpoint) and S3Uploader
// (an S3-compatible object store).
type Uploader interface {
	Upload(ctx context.Context, asset *models.ImageAsset) (string, error)
}

// Validate checks the declared MIME type and size. The declared type is
// authoritative; a renamed file does not become an image by extension.
func Validate(asset *models.ImageAsset) error {
	if _, ok := allowedTypes[asset.MIMEType]; !ok {
		return fmt.Errorf("%w: got %s", ErrUnsupportedType, asset.MIMEType)
	}
	if asset.Size() > MaxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// Pipeline validates an asset and hands it to the configured Uploader.
// Invocations are independent; there is no shared mutable state between
// concurrent runs.
type Pipeline struct {
	uploader Uploader
}

func NewPipeline(uploader Uploader) *Pipeline {
	return &Pipeline{uploader: uploader}
}

// Run validates and uploads the asset. On success the asset's ResultURL is
// set and returned. Validation failures never touch the network.
func (p *Pipeline) Run(ctx context.Context, asset *models.ImageAsset) (string, error) {
	if err := Validate(asset); err != nil {
		return "", err
	}

	url, err := p.uploader.Upload(ctx, asset)
	if err != nil {
		return "", fmt.Errorf("image upload: %w", err)
	}

	asset.ResultURL = url
	return url, nil
}
