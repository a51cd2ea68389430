// Package config loads runtime configuration for the LetsTalk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env path, or ./.env when present) and LETSTALK_* environment variables.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   store driver: sqlite, postgres, memory or s3
//	-f string   SQLite database file (DSN)
//	-p string   PostgreSQL DSN
//	-s string   session signing secret
//	-t int      session validity (minutes)
//	-b string   S3 bucket
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-u string   S3 access key
//	-k string   S3 secret key
//	-x string   S3 object key prefix
//	-l string   log level (debug, info, warn, error)
//	-o string   log file (JSON lines); empty disables it
//
// # JSON schema
//
// Durations use timex.Duration, so they can be strings like "24h" or integer
// nanoseconds:
//
//	{
//	  "driver": "sqlite",
//	  "database_dsn": "letstalk.db",
//	  "session_validity": "24h",
//	  "log_level": "debug"
//	}
package config
