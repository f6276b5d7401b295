package config

import (
	"encoding/json"
	"os"

	"userdeck/internal/flagx"
	"userdeck/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Absent fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	BackendURL     *string         `json:"backend_url"`
	SessionDBPath  *string         `json:"session_db_path"`
	LogFormat      *string         `json:"log_format"`
	RequestTimeout *timex.Duration `json:"request_timeout"`

	UploadProvider *string `json:"upload_provider"`
	UploadEndpoint *string `json:"upload_endpoint"`
	CloudName      *string `json:"cloud_name"`
	UploadPreset   *string `json:"upload_preset"`

	S3BaseEndpoint  *string `json:"s3_base_endpoint"`
	S3Region        *string `json:"s3_region"`
	S3Bucket        *string `json:"s3_bucket"`
	S3AccessKey     *string `json:"s3_access_key"`
	S3SecretKey     *string `json:"s3_secret_key"`
	S3PublicBaseURL *string `json:"s3_public_base_url"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; the CLI treats a broken config file as fatal.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setIfPresent(&cfg.BackendURL, jc.BackendURL)
	setIfPresent(&cfg.SessionDBPath, jc.SessionDBPath)
	setIfPresent(&cfg.LogFormat, jc.LogFormat)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = *jc.RequestTimeout
	}
	if jc.UploadProvider != nil {
		cfg.Provider = UploadProvider(*jc.UploadProvider)
	}
	setIfPresent(&cfg.UploadEndpoint, jc.UploadEndpoint)
	setIfPresent(&cfg.CloudName, jc.CloudName)
	setIfPresent(&cfg.UploadPreset, jc.UploadPreset)
	setIfPresent(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setIfPresent(&cfg.S3Region, jc.S3Region)
	setIfPresent(&cfg.S3Bucket, jc.S3Bucket)
	setIfPresent(&cfg.S3AccessKey, jc.S3AccessKey)
	setIfPresent(&cfg.S3SecretKey, jc.S3SecretKey)
	setIfPresent(&cfg.S3PublicBaseURL, jc.S3PublicBaseURL)
}

func setIfPresent(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
