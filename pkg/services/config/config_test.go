package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, "local", cfg.Storage)
	assert.Equal(t, "1.0.0", cfg.Version)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SHIFT_REPORT_PORT", "8080")
	t.Setenv("SHIFT_REPORT_UPLOAD_DIR", "/tmp/reports")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/tmp/reports", cfg.UploadDir)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "port: \"9000\"\nstorage: s3\ns3_bucket: shift-reports\ns3_region: us-east-1\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3", cfg.Storage)
	assert.Equal(t, "shift-reports", cfg.S3Bucket)
	assert.Equal(t, "us-east-1", cfg.S3Region)
}

func TestLoadRejectsS3WithoutBucket(t *testing.T) {
	t.Setenv("SHIFT_REPORT_STORAGE", "s3")

	_, err := Load("")
	assert.ErrorContains(t, err, "s3_bucket")
}

func TestLoadRejectsUnknownStorage(t *testing.T) {
	t.Setenv("SHIFT_REPORT_STORAGE", "ftp")

	_, err := Load("")
	assert.ErrorContains(t, err, "unsupported storage backend")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
