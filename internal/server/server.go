// Package server contains the HTTP handlers and page rendering for the blog.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"blogly/internal/config"
	"blogly/internal/database"
	"blogly/internal/middleware"
	"blogly/internal/repository"
	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers
type Server struct {
	config      *config.Config
	db          *gorm.DB
	app         *fiber.App
	store       repository.Store
	userService *service.UserService
	postService *service.PostService
}

// NewServerWithDeps creates a Server using an already-initialized database.
// Use this in tests or when a bootstrap layer has applied the schema and seeded data.
func NewServerWithDeps(cfg *config.Config, db *gorm.DB) (*Server, error) {
	if db == nil {
		return nil, fmt.Errorf("database handle is required")
	}
	s := newServer(cfg, repository.NewStore(db))
	s.db = db
	return s, nil
}

func newServer(cfg *config.Config, store repository.Store) *Server {
	s := &Server{
		config:      cfg,
		store:       store,
		userService: service.NewUserService(store),
		postService: service.NewPostService(store),
	}
	s.app = s.NewApp()
	return s
}

// App returns the Fiber application served by Start.
func (s *Server) App() *fiber.App {
	return s.app
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(recover.New())

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Propagate the request id into the request context for the logger.
	app.Use(middleware.ContextMiddleware())

	// Avatars are remote images, so the embedder policy stays open.
	app.Use(helmet.New(helmet.Config{
		CrossOriginEmbedderPolicy: "unsafe-none",
	}))

	app.Use(middleware.StructuredLogger())
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	health := app.Group("/health")
	health.Get("/live", s.LivenessCheck)
	health.Get("/ready", s.ReadinessCheck)

	app.Get("/", s.Home)

	users := app.Group("/users")
	users.Get("/", s.ListUsers)
	users.Get("/new", s.NewUserForm)
	users.Post("/new", s.CreateUser)
	users.Get("/:id", s.ShowUser)
	users.Get("/:id/edit", s.EditUserForm)
	users.Post("/:id/edit", s.UpdateUser)
	users.Post("/:id/delete", s.DeleteUser)
	users.Get("/:id/posts/new", s.NewPostForm)
	users.Post("/:id/posts/new", s.CreatePost)

	posts := app.Group("/posts")
	posts.Get("/:id", s.ShowPost)
	posts.Get("/:id/edit", s.EditPostForm)
	posts.Post("/:id/edit", s.UpdatePost)
	posts.Post("/:id/delete", s.DeletePost)
}

// NewApp builds the Fiber application with views, middleware and routes.
func (s *Server) NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Blogly",
		Views:        NewViewEngine(),
		ViewsLayout:  layoutView,
		ErrorHandler: ErrorHandler,
	})

	s.SetupMiddleware(app)
	s.SetupRoutes(app)
	return app
}

// LivenessCheck handles liveness probe requests
func (s *Server) LivenessCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "up",
		"time":   time.Now(),
	})
}

// ReadinessCheck reports whether the database answers.
func (s *Server) ReadinessCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	if s.db == nil {
		dbStatus = "unavailable"
	} else if err := database.Ping(ctx, s.db); err != nil {
		dbStatus = "unhealthy"
	}

	status := fiber.StatusOK
	overall := "healthy"
	if dbStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status": overall,
		"checks": fiber.Map{
			"database": dbStatus,
		},
		"time": time.Now(),
	})
}

// Start blocks serving on the configured port until Shutdown is called.
func (s *Server) Start() error {
	middleware.Logger.Info("Server starting", slog.String("port", s.config.Port))
	return s.app.Listen(":" + s.config.Port)
}

// Shutdown stops accepting requests, waits for in-flight ones and closes the database.
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.app.ShutdownWithContext(ctx); err != nil {
		middleware.Logger.Error("error shutting down HTTP server", slog.String("error", err.Error()))
	}

	if err := database.Close(s.db); err != nil {
		middleware.Logger.Error("error closing database", slog.String("error", err.Error()))
	}

	middleware.Logger.Info("Server shutdown complete")
	return nil
}
