package models

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// ImageAsset is a candidate profile picture: raw bytes plus the declared
// MIME type. ResultURL stays empty until an upload round-trip succeeds.
type ImageAsset struct {
	Name      string
	Data      []byte
	MIMEType  string
	ResultURL string
}

// Size returns the payload size in bytes.
func (a *ImageAsset) Size() int64 {
	return int64(len(a.Data))
}

// LoadImageAsset reads a local file into an ImageAsset. The MIME type is
// detected from the leading bytes of the content, so a renamed file does not
// pass itself off as an image.
func LoadImageAsset(path string) (*ImageAsset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading image file: %w", err)
	}

	return &ImageAsset{
		Name:     filepath.Base(path),
		Data:     data,
		MIMEType: http.DetectContentType(data),
	}, nil
}
