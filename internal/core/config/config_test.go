package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
app:
  name: my-api
  protect_users: true
  http:
    port: 9000
jwt:
  secret: test-secret
db:
  driver: postgres
  dsn: host=localhost
`)
	c := Load(path)
	assert.Equal(t, "my-api", c.App.Name)
	assert.True(t, c.App.ProtectUsers)
	assert.Equal(t, 9000, c.App.HTTP.Port)
	assert.Equal(t, "postgres", c.DB.Driver)

	// Defaults fill whatever the file leaves out.
	assert.Equal(t, "sha256", c.Hash.Algorithm)
	assert.Equal(t, 24*60, c.JWT.AccessTokenTTLMin)
	assert.Equal(t, "info", c.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: from-file
`)
	t.Setenv("APP_JWT_SECRET", "from-env")
	c := Load(path)
	assert.Equal(t, "from-env", c.JWT.Secret)
}
