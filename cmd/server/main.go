package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"talent-match/internal/app"
	"talent-match/internal/config"
	"talent-match/internal/database/migration"
	"talent-match/internal/database/seeder"
)

func main() {
	logger := log.Default()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		logger.Fatalf("failed to connect: %v", err)
	}
	defer func() {
		if err := container.Close(); err != nil {
			logger.Printf("close error: %v", err)
		}
	}()

	migCtx, cancelMig := context.WithTimeout(context.Background(), 2*time.Minute)
	if err := (migration.Runner{Dir: os.Getenv("MIGRATIONS_DIR")}).Run(migCtx, container.DB); err != nil {
		cancelMig()
		logger.Fatalf("migration failed: %v", err)
	}
	cancelMig()

	if cfg.Database.RunSeeders {
		seedCtx, cancelSeed := context.WithTimeout(context.Background(), time.Minute)
		if err := seeder.RunAll(seedCtx, container.DB, logger); err != nil {
			cancelSeed()
			logger.Fatalf("seeding failed: %v", err)
		}
		cancelSeed()
	}

	application, err := app.Bootstrap(container)
	if err != nil {
		logger.Fatalf("failed to bootstrap app: %v", err)
	}

	addr, err := app.ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		logger.Fatalf("invalid HTTP port: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Fiber.Listen(addr)
	}()
	logger.Printf("server started | app=%s addr=%s env=%s", cfg.App.AppName, addr, cfg.App.Environment)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatalf("server error: %v", err)
		}
	case <-sigCh:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := application.Fiber.ShutdownWithContext(ctx); err != nil {
			logger.Printf("shutdown error: %v", err)
		}
	}
}
