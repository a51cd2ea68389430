package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/letstalk/internal/flagx"
	"github.com/dmitrijs2005/letstalk/internal/timex"
)

// JsonConfig is the on-disk shape of the optional JSON config file. Its
// values are copied into Config by parseJson; empty fields leave the current
// value untouched.
type JsonConfig struct {
	Driver          string         `json:"driver"`
	DatabaseDSN     string         `json:"database_dsn"`
	PostgresDSN     string         `json:"postgres_dsn"`
	SessionSecret   string         `json:"session_secret"`
	SessionValidity timex.Duration `json:"session_validity"`
	S3Bucket        string         `json:"s3_bucket"`
	S3Region        string         `json:"s3_region"`
	S3BaseEndpoint  string         `json:"s3_base_endpoint"`
	S3AccessKey     string         `json:"s3_access_key"`
	S3SecretKey     string         `json:"s3_secret_key"`
	S3Prefix        string         `json:"s3_prefix"`
	LogLevel        string         `json:"log_level"`
	LogFile         string         `json:"log_file"`
}

// parseJson overlays values from the file named by -c/-config. It panics if
// the file cannot be read or is not valid JSON.
func parseJson(config *Config, args []string) {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	overlay(&config.Driver, c.Driver)
	overlay(&config.DatabaseDSN, c.DatabaseDSN)
	overlay(&config.PostgresDSN, c.PostgresDSN)
	overlay(&config.SessionSecret, c.SessionSecret)
	if c.SessionValidity.Duration != 0 {
		config.SessionValidity = time.Duration(c.SessionValidity.Duration)
	}
	overlay(&config.S3Bucket, c.S3Bucket)
	overlay(&config.S3Region, c.S3Region)
	overlay(&config.S3BaseEndpoint, c.S3BaseEndpoint)
	overlay(&config.S3AccessKey, c.S3AccessKey)
	overlay(&config.S3SecretKey, c.S3SecretKey)
	overlay(&config.S3Prefix, c.S3Prefix)
	overlay(&config.LogLevel, c.LogLevel)
	overlay(&config.LogFile, c.LogFile)
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
