package service

import (
	"context"
	"log/slog"
	"strings"

	"blogly/internal/models"
	"blogly/internal/repository"
)

// UserService holds the user lifecycle rules.
type UserService struct {
	store repository.Store
}

// CreateUserInput is the payload of the user creation form.
type CreateUserInput struct {
	FirstName string
	LastName  string
	ImageURL  string
}

// UpdateUserInput is the payload of the user edit form. A blank ImageURL keeps the
// current avatar.
type UpdateUserInput struct {
	ID        uint
	FirstName string
	LastName  string
	ImageURL  string
}

func NewUserService(store repository.Store) *UserService {
	return &UserService{store: store}
}

func validateUserNames(first, last string) error {
	return validateFields(
		fieldRule{name: "first_name", label: "First name", value: first, max: models.MaxNameLength},
		fieldRule{name: "last_name", label: "Last name", value: last, max: models.MaxNameLength},
	)
}

func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.store.Users().List(ctx)
}

func (s *UserService) CreateUser(ctx context.Context, in CreateUserInput) (*models.User, error) {
	if err := validateUserNames(in.FirstName, in.LastName); err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		ImageURL:  imageURL,
	}
	if err := s.store.Users().Create(ctx, user); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user created", slog.Uint64("user_id", uint64(user.ID)))
	return user, nil
}

func (s *UserService) GetUser(ctx context.Context, id uint) (*models.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

// GetUserWithPosts returns the user with Posts filled newest first.
func (s *UserService) GetUserWithPosts(ctx context.Context, id uint) (*models.User, error) {
	return s.store.Users().GetByIDWithPosts(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, in UpdateUserInput) (*models.User, error) {
	var updated *models.User
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if err := validateUserNames(in.FirstName, in.LastName); err != nil {
			return err
		}

		user.FirstName = strings.TrimSpace(in.FirstName)
		user.LastName = strings.TrimSpace(in.LastName)
		if imageURL := strings.TrimSpace(in.ImageURL); imageURL != "" {
			user.ImageURL = imageURL
		}

		if err := tx.Users().Update(ctx, user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "user updated", slog.Uint64("user_id", uint64(in.ID)))
	return updated, nil
}

// DeleteUser removes the user's posts and then the user in one transaction.
func (s *UserService) DeleteUser(ctx context.Context, id uint) error {
	var removedPosts int64
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		n, err := tx.Posts().DeleteByUserID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Users().Delete(ctx, id); err != nil {
			return err
		}
		removedPosts = n
		return nil
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "user deleted",
		slog.Uint64("user_id", uint64(id)),
		slog.Int64("posts_removed", removedPosts))
	return nil
}
