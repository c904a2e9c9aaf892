package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), ".env"))
	require.NoError(t, err)

	assert.Equal(t, "conference-hall", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "API", config.App.AuditSource)
	assert.Equal(t, 30*time.Second, config.App.RequestTimeout)
	assert.Equal(t, []string{"https://localhost:7150", "http://localhost:5000"}, config.CORS.AllowedOrigins)
	assert.False(t, config.Redis.Enabled)
	assert.False(t, config.Auth.Required)
}

func TestLoadConfig_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "PORT=9090\nDB_NAME=conference\nJWT_SECRET=s3cret\nREDIS_ENABLED=true\nREDIS_TTL=1m\nAUTH_REQUIRED=true\nCORS_ALLOWED_ORIGINS=http://a.test,http://b.test\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "conference", config.Database.Name)
	assert.Equal(t, "s3cret", config.JWT.Secret)
	assert.True(t, config.Redis.Enabled)
	assert.Equal(t, time.Minute, config.Redis.TTL)
	assert.True(t, config.Auth.Required)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.AllowedOrigins)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\n"), 0o600))
	t.Setenv("PORT", "7070")

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", config.App.Port)
}

func TestParseHelpers(t *testing.T) {
	id, err := ParseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = ParseID("0")
	assert.Error(t, err)

	list, err := ParseIntList(" 3, ,4")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, list)

	_, err = ParseIntList("3,x")
	assert.Error(t, err)
}
