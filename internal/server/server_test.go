package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"blogly/internal/models"
	"blogly/internal/service"
	"blogly/internal/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	app   *fiber.App
	users *service.UserService
	posts *service.PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	s, err := NewServerWithDeps(testutil.Config(), testutil.NewDB(t))
	require.NoError(t, err)
	return &testEnv{app: s.App(), users: s.userService, posts: s.postService}
}

func doRequest(t *testing.T, app *fiber.App, method, target string, form url.Values) (*http.Response, string) {
	t.Helper()

	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(raw)
}

func TestHealthProbes(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doRequest(t, env.app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, env.app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(body), &payload))
	assert.Equal(t, "healthy", payload["status"])
}

func TestReadinessWithoutDatabase(t *testing.T) {
	s := newServer(testutil.Config(), newMockStore())

	resp, _ := doRequest(t, s.App(), http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSecurityHeadersAndRequestID(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doRequest(t, env.app, http.MethodGet, "/users", nil)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))
	assert.Equal(t, "nosniff", resp.Header.Get(fiber.HeaderXContentTypeOptions))
	assert.Equal(t, "unsafe-none", resp.Header.Get("Cross-Origin-Embedder-Policy"))
}

func TestUnknownRouteRendersNotFoundPage(t *testing.T) {
	env := newTestEnv(t)

	resp, body := doRequest(t, env.app, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "<h1>404</h1>")
}

func TestErrorMapping_WithMockStore(t *testing.T) {
	t.Run("integrity error is a conflict", func(t *testing.T) {
		store := newMockStore()
		author := &models.User{ID: 1, FirstName: "Ada", LastName: "Lovelace"}
		store.users.On("GetByID", anyCtx, uint(1)).Return(author, nil)
		store.posts.On("Create", anyCtx, anyPost).
			Return(models.NewIntegrityError("The change conflicts with a user/post reference", nil))

		s := newServer(testutil.Config(), store)
		resp, body := doRequest(t, s.App(), http.MethodPost, "/users/1/posts/new",
			url.Values{"title": {"T"}, "content": {"C"}})

		assert.Equal(t, http.StatusConflict, resp.StatusCode)
		assert.Contains(t, body, "conflicts with a user/post reference")
		store.posts.AssertExpectations(t)
	})

	t.Run("unexpected error is a generic failure", func(t *testing.T) {
		store := newMockStore()
		store.users.On("List", anyCtx).Return(nil, models.NewInternalError(assert.AnError))

		s := newServer(testutil.Config(), store)
		resp, body := doRequest(t, s.App(), http.MethodGet, "/users", nil)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.NotContains(t, body, assert.AnError.Error())
	})
}

func TestHomeRedirectsToUsers(t *testing.T) {
	env := newTestEnv(t)

	resp, _ := doRequest(t, env.app, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/users", resp.Header.Get("Location"))
}

func mustCreateUser(t *testing.T, env *testEnv, first, last string) *models.User {
	t.Helper()
	u, err := env.users.CreateUser(context.Background(), service.CreateUserInput{FirstName: first, LastName: last})
	require.NoError(t, err)
	return u
}

func mustCreatePost(t *testing.T, env *testEnv, userID uint, title, content string) *models.Post {
	t.Helper()
	p, err := env.posts.CreatePost(context.Background(), service.CreatePostInput{UserID: userID, Title: title, Content: content})
	require.NoError(t, err)
	return p
}
