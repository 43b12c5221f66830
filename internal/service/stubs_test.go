package service

import (
	"context"

	"blogly/internal/models"
	"blogly/internal/repository"
)

// userRepoStub is a stub for repository.UserRepository.
type userRepoStub struct {
	listFn             func(context.Context) ([]models.User, error)
	getByIDFn          func(context.Context, uint) (*models.User, error)
	getByIDWithPostsFn func(context.Context, uint) (*models.User, error)
	createFn           func(context.Context, *models.User) error
	updateFn           func(context.Context, *models.User) error
	deleteFn           func(context.Context, uint) error
	countFn            func(context.Context) (int64, error)
}

func (s *userRepoStub) List(ctx context.Context) ([]models.User, error) { return s.listFn(ctx) }
func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByIDWithPosts(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDWithPostsFn(ctx, id)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error  { return s.deleteFn(ctx, id) }
func (s *userRepoStub) Count(ctx context.Context) (int64, error) { return s.countFn(ctx) }

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		listFn:             func(context.Context) ([]models.User, error) { return nil, nil },
		getByIDFn:          func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		getByIDWithPostsFn: func(_ context.Context, id uint) (*models.User, error) { return &models.User{ID: id}, nil },
		createFn:           func(context.Context, *models.User) error { return nil },
		updateFn:           func(context.Context, *models.User) error { return nil },
		deleteFn:           func(context.Context, uint) error { return nil },
		countFn:            func(context.Context) (int64, error) { return 0, nil },
	}
}

// postRepoStub is a stub for repository.PostRepository.
type postRepoStub struct {
	createFn         func(context.Context, *models.Post) error
	getByIDFn        func(context.Context, uint) (*models.Post, error)
	listByUserIDFn   func(context.Context, uint) ([]models.Post, error)
	updateFn         func(context.Context, *models.Post) error
	deleteFn         func(context.Context, uint) error
	deleteByUserIDFn func(context.Context, uint) (int64, error)
	countFn          func(context.Context) (int64, error)
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByUserID(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.listByUserIDFn(ctx, userID)
}
func (s *postRepoStub) Update(ctx context.Context, post *models.Post) error {
	return s.updateFn(ctx, post)
}
func (s *postRepoStub) Delete(ctx context.Context, id uint) error { return s.deleteFn(ctx, id) }
func (s *postRepoStub) DeleteByUserID(ctx context.Context, userID uint) (int64, error) {
	return s.deleteByUserIDFn(ctx, userID)
}
func (s *postRepoStub) Count(ctx context.Context) (int64, error) { return s.countFn(ctx) }

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:         func(context.Context, *models.Post) error { return nil },
		getByIDFn:        func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByUserIDFn:   func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		updateFn:         func(context.Context, *models.Post) error { return nil },
		deleteFn:         func(context.Context, uint) error { return nil },
		deleteByUserIDFn: func(context.Context, uint) (int64, error) { return 0, nil },
		countFn:          func(context.Context) (int64, error) { return 0, nil },
	}
}

// storeStub runs transactions inline against the same stubs and counts them.
type storeStub struct {
	users        *userRepoStub
	posts        *postRepoStub
	transactions int
}

func newStoreStub() *storeStub {
	return &storeStub{users: noopUserRepo(), posts: noopPostRepo()}
}

func (s *storeStub) Users() repository.UserRepository { return s.users }
func (s *storeStub) Posts() repository.PostRepository { return s.posts }
func (s *storeStub) Transaction(_ context.Context, fn func(repository.Store) error) error {
	s.transactions++
	return fn(s)
}
