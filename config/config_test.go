package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_Defaults(t *testing.T) {
	c := Get(filepath.Join(t.TempDir(), "missing.json"))

	assert.Equal(t, "8080", c.ApiPort)
	assert.Equal(t, "sqlite3", c.Database)
	assert.Equal(t, 24, c.Security.JwtExpiresHours)
	assert.Equal(t, 10, c.Security.ResetTokenTTLMin)
	assert.NotEmpty(t, c.Security.JwtSecret)
}

func TestGet_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"api_port": "9090",
		"database": "postgres",
		"security": {"jwt_secret": "s3cret", "jwt_expires_hours": 2, "reset_token_ttl_minutes": 5},
		"mail": {"host": "smtp.example.com", "port": "587", "from": "Tours <no-reply@example.com>"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c := Get(path)

	assert.Equal(t, "9090", c.ApiPort)
	assert.Equal(t, "postgres", c.Database)
	assert.Equal(t, "s3cret", c.Security.JwtSecret)
	assert.Equal(t, 2, c.Security.JwtExpiresHours)
	assert.Equal(t, 5, c.Security.ResetTokenTTLMin)
	assert.Equal(t, "smtp.example.com", c.Mail.Host)
	assert.Equal(t, "Tours <no-reply@example.com>", c.Mail.From)
}
