package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Reads the yaml file", func(t *testing.T) {
		// Given: a config file
		path := filepath.Join(t.TempDir(), "config.yml")
		data := []byte(`log-level: debug
http-port: "8081"
session-ttl: 2h
sqlite-storage-path: /tmp/matches.db
redis:
  host: redis
  port: "6380"
  db: 2
`)
		require.NoError(t, os.WriteFile(path, data, 0o600))

		// When: loading it
		conf, err := Load(path)

		// Then: the values are read from the file
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "8081", conf.HTTPPort)
		assert.Equal(t, 2*time.Hour, conf.SessionTTL)
		assert.Equal(t, "/tmp/matches.db", conf.SQLiteStoragePath)
		assert.Equal(t, "redis:6380", conf.Redis.GetRedisAddr())
		assert.Equal(t, 2, conf.Redis.DB)
		assert.Equal(t, 5*time.Second, conf.ShutdownTimeout)
	})

	t.Run("Falls back to defaults without a file", func(t *testing.T) {
		// When: loading a missing file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: defaults are used
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, 24*time.Hour, conf.SessionTTL)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: environment overrides
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("REDIS_HOST", "cache")

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment wins
		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Returns an error for a broken file", func(t *testing.T) {
		// Given: an invalid yaml file
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("log-level: [unclosed"), 0o600))

		// When: loading it
		_, err := Load(path)

		// Then: an error is returned
		require.Error(t, err)
	})
}
