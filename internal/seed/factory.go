// Package seed provides helpers to create demo data for development and tests.
// Everything goes through the services so the same rules apply as for form input.
package seed

import (
	"context"
	"fmt"

	"blogly/internal/models"
	"blogly/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// Factory builds random users and posts and persists them through the services.
type Factory struct {
	users *service.UserService
	posts *service.PostService
	faker *gofakeit.Faker
}

// NewFactory creates a Factory. A zero seed picks a random one.
func NewFactory(users *service.UserService, posts *service.PostService, seed int64) *Factory {
	return &Factory{users: users, posts: posts, faker: gofakeit.New(seed)}
}

// BuildUser returns a random user payload. Roughly one in four has no avatar so the
// default image is exercised.
func (f *Factory) BuildUser() service.CreateUserInput {
	in := service.CreateUserInput{
		FirstName: truncate(f.faker.FirstName(), models.MaxNameLength),
		LastName:  truncate(f.faker.LastName(), models.MaxNameLength),
	}
	if f.faker.Number(1, 4) > 1 {
		in.ImageURL = fmt.Sprintf("https://i.pravatar.cc/300?u=%s", f.faker.UUID())
	}
	return in
}

// BuildPost returns a random post payload for userID.
func (f *Factory) BuildPost(userID uint) service.CreatePostInput {
	return service.CreatePostInput{
		UserID:  userID,
		Title:   truncate(f.faker.Sentence(f.faker.Number(3, 8)), models.MaxTitleLength),
		Content: f.faker.Paragraph(f.faker.Number(1, 3), 4, 12, "\n\n"),
	}
}

func (f *Factory) CreateUser(ctx context.Context) (*models.User, error) {
	return f.users.CreateUser(ctx, f.BuildUser())
}

func (f *Factory) CreatePost(ctx context.Context, userID uint) (*models.Post, error) {
	return f.posts.CreatePost(ctx, f.BuildPost(userID))
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
