package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/client/models"
)

type fakeUploader struct {
	url  string
	err  error
	seen *models.ImageAsset
}

func (f *fakeUploader) Upload(ctx context.Context, asset *models.ImageAsset) (string, error) {
	f.seen = asset
	return f.url, f.err
}

func asset(mime string, size int) *models.ImageAsset {
	return &models.ImageAsset{Name: "a.img", Data: make([]byte, size), MIMEType: mime}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		asset   *models.ImageAsset
		wantErr error
	}{
		{name: "1 MiB jpeg passes", asset: asset("image/jpeg", 1<<20), wantErr: nil},
		{name: "webp passes", asset: asset("image/webp", 100), wantErr: nil},
		{name: "gif passes", asset: asset("image/gif", 100), wantErr: nil},
		{name: "exactly 5 MiB passes", asset: asset("image/png", 5<<20), wantErr: nil},
		{name: "6 MiB png fails on size", asset: asset("image/png", 6<<20), wantErr: ErrImageTooLarge},
		{name: "text claiming png name still fails on declared type", asset: asset("text/plain; charset=utf-8", 4<<20), wantErr: ErrUnsupportedType},
		{name: "pdf fails on type", asset: asset("application/pdf", 100), wantErr: ErrUnsupportedType},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.asset)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestValidate_TypeCheckedBeforeSize(t *testing.T) {
	// An oversized non-image reports the type problem, mirroring the
	// validation order the caller sees on file selection.
	err := Validate(asset("text/plain", 6<<20))
	require.ErrorIs(t, err, ErrUnsupportedType)
}

func TestPipeline_Run_SetsResultURL(t *testing.T) {
	up := &fakeUploader{url: "https://img.example/abc.png"}
	p := NewPipeline(up)

	a := asset("image/png", 1024)
	url, err := p.Run(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/abc.png", url)
	assert.Equal(t, "https://img.example/abc.png", a.ResultURL)
	assert.Same(t, a, up.seen)
}

func TestPipeline_Run_InvalidAssetNeverReachesUploader(t *testing.T) {
	up := &fakeUploader{url: "https://img.example/abc.png"}
	p := NewPipeline(up)

	_, err := p.Run(context.Background(), asset("application/zip", 10))
	require.ErrorIs(t, err, ErrUnsupportedType)
	assert.Nil(t, up.seen, "uploader must not be called for an invalid asset")
}

func TestPipeline_Run_UploadFailureLeavesResultURLEmpty(t *testing.T) {
	boom := errors.New("provider down")
	p := NewPipeline(&fakeUploader{err: boom})

	a := asset("image/jpeg", 10)
	_, err := p.Run(context.Background(), a)
	require.ErrorIs(t, err, boom)
	assert.Empty(t, a.ResultURL)
}
