package server

import (
	"errors"
	"fmt"
	"log/slog"

	"blogly/internal/models"

	"github.com/gofiber/fiber/v2"
)

// parseID extracts a route parameter as a positive uint. Anything else is treated
// as a path that does not exist.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, fiber.ErrNotFound
	}
	return uint(id), nil
}

// statusForError maps an error to the HTTP status of the error page.
func statusForError(err error) int {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	switch models.ErrorCode(err) {
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeIntegrity:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// publicMessage is the text shown on the error page; internal details stay in the logs.
func publicMessage(err error, status int) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) && appErr.Code != models.CodeInternal {
		return appErr.Message
	}
	var fe *fiber.Error
	if errors.As(err, &fe) && status < fiber.StatusInternalServerError {
		return fe.Message
	}
	return "Something went wrong. Please try again."
}

// ErrorHandler renders the error page for every error a handler returns.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status := statusForError(err)
	if status >= fiber.StatusInternalServerError {
		slog.ErrorContext(c.UserContext(), "request error", slog.String("error", err.Error()))
	}

	c.Status(status)
	renderErr := c.Render("error", fiber.Map{
		"Title":   fmt.Sprintf("%d", status),
		"Status":  status,
		"Message": publicMessage(err, status),
	})
	if renderErr != nil {
		return c.Status(status).SendString(publicMessage(err, status))
	}
	return nil
}

type userForm struct {
	FirstName string
	LastName  string
	ImageURL  string
}

func readUserForm(c *fiber.Ctx) userForm {
	return userForm{
		FirstName: c.FormValue("first_name"),
		LastName:  c.FormValue("last_name"),
		ImageURL:  c.FormValue("image_url"),
	}
}

type postForm struct {
	Title   string
	Content string
}

func readPostForm(c *fiber.Ctx) postForm {
	return postForm{
		Title:   c.FormValue("title"),
		Content: c.FormValue("content"),
	}
}

// validationFields returns the per-field messages of a validation error, or nil
// when err is something else.
func validationFields(err error) (map[string]string, string, bool) {
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != models.CodeValidation {
		return nil, "", false
	}
	fields := appErr.Fields
	if fields == nil {
		fields = map[string]string{}
	}
	return fields, appErr.Message, true
}

func noErrors() map[string]string { return map[string]string{} }
