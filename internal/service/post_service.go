package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"blogly/internal/models"
	"blogly/internal/repository"
)

// Clock supplies creation timestamps.
type Clock interface {
	NowUTC() time.Time
}

type realClock struct{}

func (realClock) NowUTC() time.Time { return time.Now().UTC() }

// PostService holds the post lifecycle rules.
type PostService struct {
	store repository.Store
	clock Clock
}

type CreatePostInput struct {
	UserID  uint
	Title   string
	Content string
}

type UpdatePostInput struct {
	PostID  uint
	Title   string
	Content string
}

func NewPostService(store repository.Store) *PostService {
	return &PostService{store: store, clock: realClock{}}
}

// WithClock replaces the clock used for CreatedAt.
func (s *PostService) WithClock(clock Clock) *PostService {
	s.clock = clock
	return s
}

func validatePost(title, content string) error {
	return validateFields(
		fieldRule{name: "title", label: "Title", value: title, max: models.MaxTitleLength},
		fieldRule{name: "content", label: "Content", value: content},
	)
}

// CreatePost looks up the author and inserts the post in one transaction. A missing
// author is NotFound; an author removed concurrently surfaces as an IntegrityError.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	var post *models.Post
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		user, err := tx.Users().GetByID(ctx, in.UserID)
		if err != nil {
			return err
		}
		if err := validatePost(in.Title, in.Content); err != nil {
			return err
		}

		p := &models.Post{
			Title:     strings.TrimSpace(in.Title),
			Content:   strings.TrimSpace(in.Content),
			CreatedAt: s.clock.NowUTC(),
			UserID:    user.ID,
		}
		if err := tx.Posts().Create(ctx, p); err != nil {
			return err
		}
		p.User = user
		post = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post created",
		slog.Uint64("post_id", uint64(post.ID)),
		slog.Uint64("user_id", uint64(post.UserID)))
	return post, nil
}

func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.store.Posts().GetByID(ctx, id)
}

// UpdatePost overwrites title and content. CreatedAt and UserID are left as stored.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	var updated *models.Post
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		post, err := tx.Posts().GetByID(ctx, in.PostID)
		if err != nil {
			return err
		}
		if err := validatePost(in.Title, in.Content); err != nil {
			return err
		}

		post.Title = strings.TrimSpace(in.Title)
		post.Content = strings.TrimSpace(in.Content)
		if err := tx.Posts().Update(ctx, post); err != nil {
			return err
		}
		updated = post
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "post updated", slog.Uint64("post_id", uint64(in.PostID)))
	return updated, nil
}

// DeletePost removes the post and returns the id of the user who owned it.
func (s *PostService) DeletePost(ctx context.Context, id uint) (uint, error) {
	var ownerID uint
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		post, err := tx.Posts().GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := tx.Posts().Delete(ctx, id); err != nil {
			return err
		}
		ownerID = post.UserID
		return nil
	})
	if err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "post deleted",
		slog.Uint64("post_id", uint64(id)),
		slog.Uint64("user_id", uint64(ownerID)))
	return ownerID, nil
}

// ListPostsForUser returns the user's posts newest first, or NotFound for an unknown user.
func (s *PostService) ListPostsForUser(ctx context.Context, userID uint) ([]models.Post, error) {
	if _, err := s.store.Users().GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.store.Posts().ListByUserID(ctx, userID)
}
