package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/tweetheure/internal/buildinfo"
	"github.com/dmitrijs2005/tweetheure/internal/cli"
	"github.com/dmitrijs2005/tweetheure/internal/config"
	"github.com/dmitrijs2005/tweetheure/internal/cryptox"
	"github.com/dmitrijs2005/tweetheure/internal/logging"
	"github.com/dmitrijs2005/tweetheure/internal/screen"
	"github.com/dmitrijs2005/tweetheure/internal/session"
	"github.com/dmitrijs2005/tweetheure/internal/storage/repomanager"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer closer.Close()

	hasher, err := cryptox.NewPasswordHasher(cfg.HashAlgorithm, cfg.BcryptCost)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	logger.Info(ctx, "starting", "version", buildinfo.Version())

	app := cli.NewApp(cli.Options{
		Screen:         screen.New(os.Stdin, os.Stdout),
		Logger:         logger,
		Sessions:       session.NewFileStore(cfg.SessionPath, logger),
		Hasher:         hasher,
		Open:           repomanager.NewOpener(cfg, logger),
		DefaultBackend: cfg.DefaultBackend,
		MessageDelay:   cfg.MessageDelay,
	})

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		closer.Close()
		log.Fatalf("%v", err)
	}
}
