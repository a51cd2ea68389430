package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/letstalk/internal/config"
	"github.com/dmitrijs2005/letstalk/internal/logging"
	"github.com/dmitrijs2005/letstalk/internal/repositories/repomanager"
	"github.com/dmitrijs2005/letstalk/internal/services"
	"github.com/dmitrijs2005/letstalk/internal/store"
	"github.com/dmitrijs2005/letstalk/internal/timex"
)

// closers closes every member and joins the errors.
type closers []io.Closer

func (cs closers) Close() error {
	var errs []error
	for i := len(cs) - 1; i >= 0; i-- {
		errs = append(errs, cs[i].Close())
	}
	return errors.Join(errs...)
}

// NewAppFromConfig opens the configured store, builds the services and
// returns an App reading from stdin. The closer releases the log file and
// the store.
func NewAppFromConfig(ctx context.Context, cfg *config.Config) (*App, io.Closer, error) {
	log, logCloser, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFile)
	if err != nil {
		return nil, nil, fmt.Errorf("logging init error: %w", err)
	}

	s, storeCloser, err := store.Open(ctx, store.Options{
		Driver:      cfg.Driver,
		SQLitePath:  cfg.DatabaseDSN,
		PostgresDSN: cfg.PostgresDSN,
		S3: store.S3Options{
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
		},
		S3Bucket: cfg.S3Bucket,
		S3Prefix: cfg.S3Prefix,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, fmt.Errorf("store init error: %w", err)
	}
	log.Info(ctx, "store opened", "driver", cfg.Driver)

	clock := timex.SystemClock{}
	rm := repomanager.NewKVRepositoryManager(log)

	app := NewApp(
		services.NewAccountService(s, rm, cfg, clock, log),
		services.NewLedgerService(s, rm, clock, log),
		services.NewGraphService(s, rm, clock, log),
		clock, log, os.Stdin, os.Stdout,
	)
	return app, closers{logCloser, storeCloser}, nil
}
