package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"driver":           "postgres",
		"database_dsn":     "talk.db",
		"postgres_dsn":     "postgres://db",
		"session_secret":   "my_secret_key",
		"session_validity": "48h",
		"s3_bucket":        "bucket",
		"s3_region":        "region",
		"s3_base_endpoint": "base_endpoint",
		"s3_access_key":    "user",
		"s3_secret_key":    "password",
		"s3_prefix":        "p/",
		"log_level":        "debug",
		"log_file":         "out.log",
	})

	t.Run("loads from json", func(t *testing.T) {
		cfg := &Config{}
		parseJson(cfg, []string{"-config", pathFlag})

		assert.Equal(t, "postgres", cfg.Driver)
		assert.Equal(t, "talk.db", cfg.DatabaseDSN)
		assert.Equal(t, "postgres://db", cfg.PostgresDSN)
		assert.Equal(t, "my_secret_key", cfg.SessionSecret)
		assert.Equal(t, 48*time.Hour, cfg.SessionValidity)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "region", cfg.S3Region)
		assert.Equal(t, "base_endpoint", cfg.S3BaseEndpoint)
		assert.Equal(t, "user", cfg.S3AccessKey)
		assert.Equal(t, "password", cfg.S3SecretKey)
		assert.Equal(t, "p/", cfg.S3Prefix)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "out.log", cfg.LogFile)
	})

	t.Run("no CONFIG flag → no changes", func(t *testing.T) {
		cfg := &Config{Driver: "memory", SessionValidity: time.Hour}
		parseJson(cfg, nil)

		assert.Equal(t, &Config{Driver: "memory", SessionValidity: time.Hour}, cfg)
	})

	t.Run("partial file keeps other values", func(t *testing.T) {
		p := writeTempJSON(t, dir, "partial.json", map[string]any{"log_level": "warn"})
		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg, []string{"-c", p})

		assert.Equal(t, "warn", cfg.LogLevel)
		assert.Equal(t, "sqlite", cfg.Driver)
		assert.Equal(t, 7*24*time.Hour, cfg.SessionValidity)
	})
}

func Test_parseJson_Panics(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))

	require.Panics(t, func() { parseJson(&Config{}, []string{"-c", bad}) })
	require.Panics(t, func() { parseJson(&Config{}, []string{"-c", filepath.Join(dir, "missing.json")}) })
}
