package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"userdeck/internal/client/config"
	"userdeck/internal/client/models"
	"userdeck/internal/client/upload"
)

func TestNewApp(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SessionDBPath = filepath.Join(t.TempDir(), "session.db")

	a, err := NewApp(cfg)
	require.NoError(t, err)
	defer a.db.Close()

	assert.NotNil(t, a.sessions)
	assert.NotNil(t, a.directory)
	assert.NotNil(t, a.registration)
	assert.False(t, a.isLoggedIn())
}

func TestNewUploader(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()

	_, ok := newUploader(cfg).(*upload.HostedUploader)
	assert.True(t, ok, "default provider is hosted")

	cfg.Provider = config.ProviderS3
	_, ok = newUploader(cfg).(*upload.S3Uploader)
	assert.True(t, ok)
}

func TestGetStatus(t *testing.T) {
	a := &App{}
	assert.Equal(t, "", a.getStatus())

	a.session = models.Session{Authenticated: true, Token: "t", User: models.UserSummary{ID: "u1", Name: "Ann"}}
	assert.Equal(t, "(Ann) ", a.getStatus())
}
