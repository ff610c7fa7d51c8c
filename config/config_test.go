package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadfromFile(t *testing.T) {
	require.NoError(t, os.WriteFile(".env",
		[]byte("MINIO_ROOT_USER=admin\nMINIO_ROOT_PASSWORD=secret\nREDIS_URI=redis://localhost:6379\n"), 0o600))
	t.Cleanup(func() {
		os.Remove(".env")
	})

	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address)
	assert.Equal(t, "media", cfg.MinIOClient.Bucket)
	assert.Equal(t, "admin", cfg.MinIOClient.AccessKey)
	assert.Equal(t, "secret", cfg.MinIOClient.SecretKey)
	assert.Equal(t, "redis://localhost:6379", cfg.ShortLink.URI)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./does-not-exist.yml")
	require.Error(t, err)
}
