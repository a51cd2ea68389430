package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/letstalk/internal/flagx"
)

// parseFlags populates Config from command-line flags. Only the flags listed
// in the package doc are considered; everything else in args is ignored.
// The session validity flag is given in minutes.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-d", "-f", "-p", "-s", "-t", "-b", "-g", "-e", "-u", "-k", "-x", "-l", "-o"})

	fs := flag.NewFlagSet("letstalk", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.Driver, "d", config.Driver, "store driver")
	fs.StringVar(&config.DatabaseDSN, "f", config.DatabaseDSN, "sqlite database file")
	fs.StringVar(&config.PostgresDSN, "p", config.PostgresDSN, "postgres DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret")

	sessionValidity := fs.Int("t", int(config.SessionValidity.Minutes()), "session validity (in minutes)")

	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3AccessKey, "u", config.S3AccessKey, "S3 access key")
	fs.StringVar(&config.S3SecretKey, "k", config.S3SecretKey, "S3 secret key")
	fs.StringVar(&config.S3Prefix, "x", config.S3Prefix, "S3 key prefix")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFile, "o", config.LogFile, "log file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.SessionValidity = time.Duration(*sessionValidity) * time.Minute
}
