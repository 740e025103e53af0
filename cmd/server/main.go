package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/charmbracelet/log"

	"github.com/brioches/storefront/infra/initializer"
	"github.com/brioches/storefront/pkg/app"
	"github.com/brioches/storefront/pkg/config"
	"github.com/brioches/storefront/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	a := app.New(deps, cfg)

	// Resolve the first rate before serving so the catalog never
	// starts on the loading placeholder, then keep it fresh in the
	// background.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	a.PricingService.Init(ctx)
	a.RateService.Start(ctx)
	defer a.RateService.Stop()

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-shutdown
		logger.Info("shutting down")
		_ = fiberApp.Shutdown()
	}()

	return fiberApp.Listen(addr)
}
