package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/letstalk/internal/cli"
	"github.com/dmitrijs2005/letstalk/internal/config"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	app, closer, err := cli.NewAppFromConfig(ctx, cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer closer.Close()

	if err := app.Run(ctx); err != nil {
		log.Printf("%v", err)
	}

}
