// Package bootstrap prepares the runtime dependencies shared by the commands.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/repository"
	"blogly/internal/seed"

	"gorm.io/gorm"
)

// Demo data created by SEED_ON_START on an empty database.
const (
	demoUsers        = 5
	demoPostsPerUser = 3
)

// Options control runtime initialization behavior.
type Options struct {
	Seed bool
}

// InitRuntime connects to the database, applies the schema and optionally seeds demo data.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if opts.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := seedIfEmpty(ctx, repository.NewStore(db)); err != nil {
			_ = database.Close(db)
			return nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, nil
}

// seedIfEmpty only seeds a database without users, so restarts do not pile up demo rows.
func seedIfEmpty(ctx context.Context, store repository.Store) error {
	n, err := store.Users().Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		middleware.Logger.InfoContext(ctx, "Skipping demo seed, users already exist", slog.Int64("users", n))
		return nil
	}

	_, err = seed.NewSeeder(store, 0).SeedRandom(ctx, demoUsers, demoPostsPerUser)
	return err
}
