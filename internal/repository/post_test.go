package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"blogly/internal/models"
	"blogly/internal/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostRepository_DeleteByUserID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "posts" WHERE user_id = $1`)).
		WithArgs(3).
		WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectCommit()

	n, err := repo.DeleteByUserID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_SQLite(t *testing.T) {
	db := testutil.NewDB(t)
	users := NewUserRepository(db)
	posts := NewPostRepository(db)
	ctx := context.Background()

	author := &models.User{FirstName: "Ada", LastName: "Lovelace", ImageURL: "a"}
	require.NoError(t, users.Create(ctx, author))

	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	post := &models.Post{Title: "Notes", Content: "Engines", UserID: author.ID, CreatedAt: created}
	require.NoError(t, posts.Create(ctx, post))
	require.NotZero(t, post.ID)

	t.Run("GetByID preloads the author", func(t *testing.T) {
		got, err := posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		require.NotNil(t, got.User)
		assert.Equal(t, "Ada Lovelace", got.User.FullName())
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("Update keeps owner and created_at", func(t *testing.T) {
		require.NoError(t, posts.Update(ctx, &models.Post{ID: post.ID, Title: "Notes v2", Content: "More", UserID: 999}))

		got, err := posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Notes v2", got.Title)
		assert.Equal(t, author.ID, got.UserID)
		assert.True(t, created.Equal(got.CreatedAt))
	})

	t.Run("Create for a missing user is an integrity error", func(t *testing.T) {
		err := posts.Create(ctx, &models.Post{Title: "x", Content: "y", UserID: 4242, CreatedAt: created})
		assert.True(t, models.IsIntegrity(err), "got %v", err)
	})

	t.Run("Delete and missing ids", func(t *testing.T) {
		extra := &models.Post{Title: "Extra", Content: "z", UserID: author.ID, CreatedAt: created}
		require.NoError(t, posts.Create(ctx, extra))
		require.NoError(t, posts.Delete(ctx, extra.ID))

		assert.True(t, models.IsNotFound(posts.Delete(ctx, extra.ID)))
		_, err := posts.GetByID(ctx, extra.ID)
		assert.True(t, models.IsNotFound(err))
	})

	t.Run("ListByUserID and Count", func(t *testing.T) {
		list, err := posts.ListByUserID(ctx, author.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)

		n, err := posts.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)
	})
}
