// Command seed fills the database with demo users and posts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"blogly/internal/bootstrap"
	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/repository"
	"blogly/internal/seed"

	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	numUsers := flag.Int("users", 10, "Number of random users to create")
	postsPerUser := flag.Int("posts-per-user", 3, "Number of posts per random user")
	fixture := flag.String("fixture", "", "YAML fixture file to load instead of random data")
	clean := flag.Bool("clean", false, "Delete all users and posts before seeding")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logCloser := middleware.InitLogger(cfg)
	defer func() { _ = logCloser.Close() }()

	db, err := bootstrap.InitRuntime(cfg, bootstrap.Options{})
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	res, err := seed.NewSeeder(repository.NewStore(db), *randSeed).Run(context.Background(), seed.Options{
		Users:        *numUsers,
		PostsPerUser: *postsPerUser,
		Clean:        *clean,
		Fixture:      *fixture,
	})
	if err != nil {
		return fmt.Errorf("seeding failed: %w", err)
	}

	middleware.Logger.Info("Seeding complete",
		slog.Int("users", res.Users),
		slog.Int("posts", res.Posts))
	return nil
}
