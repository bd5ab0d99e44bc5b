package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/tournament-standings-service/internal/config"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}
	// keep a developer's .env out of the test
	t.Chdir(dir)
	return path
}

func clearSecretEnv(t *testing.T) {
	for _, k := range []string{
		"APP_POSTGRES_USER", "APP_POSTGRES_PASSWORD", "APP_POSTGRES_DB",
		"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
		"DB_USER", "DB_PASSWORD", "DB_NAME",
	} {
		t.Setenv(k, "")
	}
}

func TestConfigLoad_FromYAMLAndEnv(t *testing.T) {
	yaml := `
app:
  name: tournament-standings-service
  version: 0.1.0
  env: test
  port: 18080
  shutdown_timeout: 3

logger:
  level: info
  format: json
  output_target: stdout
  time_format: rfc3339

postgres:
  host: 127.0.0.1
  port: 5432
  sslmode: disable
  max_conns: 5
  min_conns: 1

redis:
  enabled: true
  addr: 127.0.0.1:6379
  standings_ttl: 60
`
	path := writeTempConfig(t, yaml)
	clearSecretEnv(t)
	t.Setenv("APP_POSTGRES_USER", "testuser")
	t.Setenv("APP_POSTGRES_PASSWORD", "testpass")
	t.Setenv("APP_POSTGRES_DB", "testdb")
	t.Setenv("APP_APP_PORT", "19090")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 19090, cfg.App.Port, "env must override yaml")
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownGrace())
	assert.Equal(t, "testuser", cfg.Postgres.User)
	assert.Equal(t, "testpass", cfg.Postgres.Password)
	assert.Equal(t, "testdb", cfg.Postgres.DBName)
	assert.Equal(t, "127.0.0.1", cfg.Postgres.Host)
	assert.Equal(t, int32(5), cfg.Postgres.MaxConns)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "stdout", cfg.Logger.OutputTarget)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, time.Minute, cfg.Redis.TTL())
	assert.Equal(t, "migrations/goose_sql", cfg.Postgres.MigrationsDir, "defaults fill unspecified keys")
}

func TestConfigLoad_AlternateSecretNames(t *testing.T) {
	path := writeTempConfig(t, "postgres:\n  host: db\n")
	clearSecretEnv(t)
	t.Setenv("POSTGRES_USER", "u")
	t.Setenv("POSTGRES_PASSWORD", "p")
	t.Setenv("DB_NAME", "d")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "u", cfg.Postgres.User)
	assert.Equal(t, "d", cfg.Postgres.DBName)
}

func TestConfigLoad_MissingRequiredEnvFails(t *testing.T) {
	path := writeTempConfig(t, "postgres:\n  host: localhost\n  port: 5432\n")
	clearSecretEnv(t)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_RedisEnabledNeedsAddr(t *testing.T) {
	path := writeTempConfig(t, "redis:\n  enabled: true\n  addr: \"\"\n")
	clearSecretEnv(t)
	t.Setenv("APP_POSTGRES_USER", "u")
	t.Setenv("APP_POSTGRES_PASSWORD", "p")
	t.Setenv("APP_POSTGRES_DB", "d")

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestConfigLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
