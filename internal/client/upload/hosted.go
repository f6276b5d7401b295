package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"userdeck/internal/client/models"
	"userdeck/internal/common"
)

// HostedUploader posts the image to the hosting provider's public upload
// endpoint using a pre-shared unsigned upload policy. No server-side signing
// happens in this client.
type HostedUploader struct {
	endpoint     string
	cloudName    string
	uploadPreset string
	http         *http.Client
}

func NewHostedUploader(endpoint, cloudName, uploadPreset string) *HostedUploader {
	return &HostedUploader{
		endpoint:     endpoint,
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		http:         &http.Client{},
	}
}

type hostedResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (u *HostedUploader) Upload(ctx context.Context, asset *models.ImageAsset) (string, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", asset.Name)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(asset.Data); err != nil {
		return "", err
	}
	if err := mw.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", err
	}
	if err := mw.WriteField("cloud_name", u.cloudName); err != nil {
		return "", err
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := u.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("upload failed: %s; body: %s", resp.Status, string(b))
	}

	var hr hostedResponse
	if err := json.NewDecoder(resp.Body).Decode(&hr); err != nil {
		return "", fmt.Errorf("decoding upload response: %w", err)
	}
	if hr.SecureURL == "" {
		return "", fmt.Errorf("upload rejected: %s", hr.Error.Message)
	}
	return hr.SecureURL, nil
}
