// Package config loads service configuration from environment variables and
// an optional config file.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const envPrefix = "SHIFT_REPORT"

type Config struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	UploadDir      string   `mapstructure:"upload_dir"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Storage        string   `mapstructure:"storage"` // "local" or "s3"
	S3Bucket       string   `mapstructure:"s3_bucket"`
	S3Region       string   `mapstructure:"s3_region"`
	AWSProfile     string   `mapstructure:"aws_profile"`
	Version        string   `mapstructure:"version"`
}

// Load reads configuration, applying defaults, then the file at path (when
// given), then SHIFT_REPORT_* environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "5000")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("allowed_origins", []string{"*"})
	v.SetDefault("storage", "local")
	v.SetDefault("s3_bucket", "")
	v.SetDefault("s3_region", "")
	v.SetDefault("aws_profile", "")
	v.SetDefault("version", "1.0.0")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	switch cfg.Storage {
	case "local":
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("storage is s3 but s3_bucket is not set")
		}
	default:
		return nil, fmt.Errorf("unsupported storage backend: %q", cfg.Storage)
	}

	return &cfg, nil
}
