package config

import (
	"time"

	"userdeck/internal/timex"
)

// UploadProvider selects where profile pictures are stored.
type UploadProvider string

const (
	// ProviderHosted posts to the hosting provider's public multipart
	// endpoint using a pre-shared unsigned upload preset.
	ProviderHosted UploadProvider = "hosted"
	// ProviderS3 stores images in an S3-compatible bucket (MinIO or AWS).
	ProviderS3 UploadProvider = "s3"
)

// Config holds runtime settings for the userdeck CLI.
type Config struct {
	// BackendURL is the scheme://host[:port] of the user-account backend.
	// The /api/auth base path is appended by the API client.
	BackendURL string

	// SessionDBPath is the local SQLite file holding the durable session.
	SessionDBPath string

	// LogFormat is "text" (slog) or "json" (zap).
	LogFormat string

	// RequestTimeout caps every backend call end to end.
	RequestTimeout timex.Duration

	// Provider selects the image upload backend.
	Provider UploadProvider

	// Hosted provider settings.
	UploadEndpoint string
	CloudName      string
	UploadPreset   string

	// S3-compatible store settings, used when Provider is ProviderS3.
	S3BaseEndpoint  string
	S3Region        string
	S3Bucket        string
	S3AccessKey     string
	S3SecretKey     string
	S3PublicBaseURL string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BackendURL = "http://127.0.0.1:5000"
	c.SessionDBPath = "session.db"
	c.LogFormat = "text"
	c.RequestTimeout = timex.Duration{Duration: 10 * time.Second}
	c.Provider = ProviderHosted
	c.S3Region = "us-east-1"
	c.S3Bucket = "userdeck"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
