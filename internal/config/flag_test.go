package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{
			"-d", "s3", "-f", "a.db", "-p", "postgres://x", "-s", "secret", "-t", "30",
			"-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint", "-u", "user", "-k", "key",
			"-x", "pre/", "-l", "debug", "-o", "log.json",
		},
			expected: &Config{
				Driver:          "s3",
				DatabaseDSN:     "a.db",
				PostgresDSN:     "postgres://x",
				SessionSecret:   "secret",
				SessionValidity: 30 * time.Minute,
				S3Bucket:        "bucket",
				S3Region:        "us-west-1",
				S3BaseEndpoint:  "http://endpoint",
				S3AccessKey:     "user",
				S3SecretKey:     "key",
				S3Prefix:        "pre/",
				LogLevel:        "debug",
				LogFile:         "log.json",
			}},
		{name: "foreign flags ignored", args: []string{"-c", "cfg.json", "-d", "memory", "-env", "x.env"},
			expected: &Config{Driver: "memory"}},
		{name: "bad int panics", args: []string{"-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config, tt.args) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config, tt.args) })
			}
		})
	}
}
