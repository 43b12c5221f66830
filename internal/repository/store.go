package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store groups the repositories that share one connection or transaction.
type Store interface {
	Users() UserRepository
	Posts() PostRepository
	// Transaction runs fn against a Store bound to a single transaction. The
	// transaction commits when fn returns nil and rolls back otherwise.
	Transaction(ctx context.Context, fn func(tx Store) error) error
}

type gormStore struct {
	db    *gorm.DB
	users UserRepository
	posts PostRepository
}

// NewStore returns a Store backed by db.
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:    db,
		users: NewUserRepository(db),
		posts: NewPostRepository(db),
	}
}

func (s *gormStore) Users() UserRepository { return s.users }

func (s *gormStore) Posts() PostRepository { return s.posts }

func (s *gormStore) Transaction(ctx context.Context, fn func(tx Store) error) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
	return translateError(err)
}
