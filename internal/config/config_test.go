package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubdesk/internal/config"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-such.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "clubdesk.db", cfg.Database.Path)
	assert.Equal(t, 90*time.Second, cfg.Redis.TTL)
	assert.Equal(t, int64(5<<20), cfg.Uploads.MaxSizeBytes)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  addr: ":9090"
  read_timeout: 2s
database:
  path: /var/lib/clubdesk/club.db
redis:
  addr: localhost:6379
  ttl: 45s
email:
  from: "Club <hola@club.uy>"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, 2*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "/var/lib/clubdesk/club.db", cfg.Database.Path)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 45*time.Second, cfg.Redis.TTL)
	assert.Equal(t, "Club <hola@club.uy>", cfg.Email.From)
	// reply_to falls back to from
	assert.Equal(t, "Club <hola@club.uy>", cfg.Email.ReplyTo)
	// untouched sections still get defaults
	assert.Equal(t, "uploads", cfg.Uploads.Dir)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  addr: \":9090\"\n"), 0o600))

	t.Setenv("CLUBDESK_ADDR", ":7070")
	t.Setenv("CLUBDESK_ADMIN_EMAIL", "dt@club.uy")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "dt@club.uy", cfg.Admin.Email)
}

func TestDatabaseDSNCarriesPragmas(t *testing.T) {
	cfg := config.DefaultConfig()
	dsn := cfg.Database.DSN()
	assert.Contains(t, dsn, "clubdesk.db?")
	assert.Contains(t, dsn, "journal_mode(WAL)")
	assert.Contains(t, dsn, "foreign_keys(ON)")
}
