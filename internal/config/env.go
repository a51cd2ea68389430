package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/letstalk/internal/flagx"
	"github.com/joho/godotenv"
)

// parseEnv loads a dotenv file into the process environment and then reads
// LETSTALK_* variables. An explicit -env file must exist; the implicit ./.env
// is optional. Variables already set in the environment win over the file.
func parseEnv(config *Config, args []string) {
	if path := flagx.EnvFileFlag(args); path != "" {
		if err := godotenv.Load(path); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	envString(&config.Driver, "LETSTALK_DRIVER")
	envString(&config.DatabaseDSN, "LETSTALK_DATABASE_DSN")
	envString(&config.PostgresDSN, "LETSTALK_POSTGRES_DSN")
	envString(&config.SessionSecret, "LETSTALK_SESSION_SECRET")
	envDuration(&config.SessionValidity, "LETSTALK_SESSION_VALIDITY")
	envString(&config.S3Bucket, "LETSTALK_S3_BUCKET")
	envString(&config.S3Region, "LETSTALK_S3_REGION")
	envString(&config.S3BaseEndpoint, "LETSTALK_S3_BASE_ENDPOINT")
	envString(&config.S3AccessKey, "LETSTALK_S3_ACCESS_KEY")
	envString(&config.S3SecretKey, "LETSTALK_S3_SECRET_KEY")
	envString(&config.S3Prefix, "LETSTALK_S3_PREFIX")
	envString(&config.LogLevel, "LETSTALK_LOG_LEVEL")
	envString(&config.LogFile, "LETSTALK_LOG_FILE")
}

func envString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func envDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
