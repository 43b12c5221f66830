package server

import (
	"fmt"

	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Home sends visitors to the user directory.
func (s *Server) Home(c *fiber.Ctx) error {
	return c.Redirect("/users")
}

// ListUsers handles GET /users
func (s *Server) ListUsers(c *fiber.Ctx) error {
	users, err := s.userService.ListUsers(c.UserContext())
	if err != nil {
		return err
	}
	return c.Render("users/list", fiber.Map{
		"Title": "Users",
		"Users": users,
	})
}

// NewUserForm handles GET /users/new
func (s *Server) NewUserForm(c *fiber.Ctx) error {
	return c.Render("users/new", fiber.Map{
		"Title":  "Create a user",
		"Form":   userForm{},
		"Errors": noErrors(),
	})
}

// CreateUser handles POST /users/new
func (s *Server) CreateUser(c *fiber.Ctx) error {
	form := readUserForm(c)
	_, err := s.userService.CreateUser(c.UserContext(), service.CreateUserInput{
		FirstName: form.FirstName,
		LastName:  form.LastName,
		ImageURL:  form.ImageURL,
	})
	if fields, msg, ok := validationFields(err); ok {
		return c.Status(fiber.StatusBadRequest).Render("users/new", fiber.Map{
			"Title":   "Create a user",
			"Form":    form,
			"Errors":  fields,
			"Message": msg,
		})
	}
	if err != nil {
		return err
	}
	return c.Redirect("/users")
}

// ShowUser handles GET /users/:id
func (s *Server) ShowUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.userService.GetUserWithPosts(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Render("users/detail", fiber.Map{
		"Title": user.FullName(),
		"User":  user,
	})
}

// EditUserForm handles GET /users/:id/edit
func (s *Server) EditUserForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Render("users/edit", fiber.Map{
		"Title":  "Edit a user",
		"UserID": user.ID,
		"Form": userForm{
			FirstName: user.FirstName,
			LastName:  user.LastName,
			ImageURL:  user.ImageURL,
		},
		"Errors": noErrors(),
	})
}

// UpdateUser handles POST /users/:id/edit
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	form := readUserForm(c)
	_, err = s.userService.UpdateUser(c.UserContext(), service.UpdateUserInput{
		ID:        id,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		ImageURL:  form.ImageURL,
	})
	if fields, msg, ok := validationFields(err); ok {
		return c.Status(fiber.StatusBadRequest).Render("users/edit", fiber.Map{
			"Title":   "Edit a user",
			"UserID":  id,
			"Form":    form,
			"Errors":  fields,
			"Message": msg,
		})
	}
	if err != nil {
		return err
	}
	return c.Redirect("/users")
}

// DeleteUser handles POST /users/:id/delete
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := s.userService.DeleteUser(c.UserContext(), id); err != nil {
		return err
	}
	return c.Redirect("/users")
}

func userPath(id uint) string {
	return fmt.Sprintf("/users/%d", id)
}
