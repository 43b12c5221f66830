// Command server runs the Blogly web application.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"blogly/internal/bootstrap"
	"blogly/internal/config"
	"blogly/internal/middleware"
	"blogly/internal/server"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A missing .env is fine; the environment and config.yml cover everything.
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logCloser := middleware.InitLogger(cfg)
	defer func() { _ = logCloser.Close() }()

	db, err := bootstrap.InitRuntime(cfg, bootstrap.Options{Seed: cfg.SeedOnStart})
	if err != nil {
		return err
	}

	srv, err := server.NewServerWithDeps(cfg, db)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// Listen also returns after Shutdown; stop unblocks the shutdown goroutine
		// when the listener fails on its own.
		defer stop()
		return srv.Start()
	})
	g.Go(func() error {
		<-gctx.Done()
		middleware.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		middleware.Logger.Error("server stopped with error", slog.String("error", err.Error()))
		return err
	}
	return nil
}
