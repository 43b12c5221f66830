package seed

import (
	"context"
	"fmt"
	"log/slog"

	"blogly/internal/middleware"
	"blogly/internal/repository"
	"blogly/internal/service"
)

// Options configures a seeding run.
type Options struct {
	Users        int
	PostsPerUser int
	Clean        bool
	// Fixture, when set, is loaded instead of generating random data.
	Fixture string
}

// Result counts what a run created.
type Result struct {
	Users int
	Posts int
}

// Seeder populates the database with demo data.
type Seeder struct {
	store   repository.Store
	users   *service.UserService
	posts   *service.PostService
	factory *Factory
}

// NewSeeder creates a Seeder on top of store. A zero randSeed picks a random one.
func NewSeeder(store repository.Store, randSeed int64) *Seeder {
	users := service.NewUserService(store)
	posts := service.NewPostService(store)
	return &Seeder{
		store:   store,
		users:   users,
		posts:   posts,
		factory: NewFactory(users, posts, randSeed),
	}
}

// Run performs a seeding run according to opts.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Clean {
		if err := s.ClearAll(ctx); err != nil {
			return Result{}, err
		}
	}

	if opts.Fixture != "" {
		fx, err := LoadFixtures(opts.Fixture)
		if err != nil {
			return Result{}, err
		}
		return s.ApplyFixtures(ctx, fx)
	}
	return s.SeedRandom(ctx, opts.Users, opts.PostsPerUser)
}

// ClearAll deletes every post and user in one transaction.
func (s *Seeder) ClearAll(ctx context.Context) error {
	var users, posts int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		all, err := tx.Users().List(ctx)
		if err != nil {
			return err
		}
		for _, u := range all {
			n, err := tx.Posts().DeleteByUserID(ctx, u.ID)
			if err != nil {
				return err
			}
			if err := tx.Users().Delete(ctx, u.ID); err != nil {
				return err
			}
			posts += n
			users++
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear data: %w", err)
	}

	middleware.Logger.InfoContext(ctx, "Cleared existing data",
		slog.Int64("users", users),
		slog.Int64("posts", posts))
	return nil
}

// SeedRandom creates n random users with postsPerUser posts each.
func (s *Seeder) SeedRandom(ctx context.Context, n, postsPerUser int) (Result, error) {
	var res Result
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser(ctx)
		if err != nil {
			return res, fmt.Errorf("create user %d: %w", i+1, err)
		}
		res.Users++

		for j := 0; j < postsPerUser; j++ {
			if _, err := s.factory.CreatePost(ctx, user.ID); err != nil {
				return res, fmt.Errorf("create post for user %d: %w", user.ID, err)
			}
			res.Posts++
		}
	}

	middleware.Logger.InfoContext(ctx, "Seeded random data",
		slog.Int("users", res.Users),
		slog.Int("posts", res.Posts))
	return res, nil
}

// ApplyFixtures persists every user and post in fx.
func (s *Seeder) ApplyFixtures(ctx context.Context, fx *Fixtures) (Result, error) {
	var res Result
	for i, fu := range fx.Users {
		user, err := s.users.CreateUser(ctx, service.CreateUserInput{
			FirstName: fu.FirstName,
			LastName:  fu.LastName,
			ImageURL:  fu.ImageURL,
		})
		if err != nil {
			return res, fmt.Errorf("fixture user %d: %w", i+1, err)
		}
		res.Users++

		for j, fp := range fu.Posts {
			if _, err := s.posts.CreatePost(ctx, service.CreatePostInput{
				UserID:  user.ID,
				Title:   fp.Title,
				Content: fp.Content,
			}); err != nil {
				return res, fmt.Errorf("fixture user %d post %d: %w", i+1, j+1, err)
			}
			res.Posts++
		}
	}

	middleware.Logger.InfoContext(ctx, "Applied fixtures",
		slog.Int("users", res.Users),
		slog.Int("posts", res.Posts))
	return res, nil
}
