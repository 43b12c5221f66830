package server

import (
	"fmt"
	"strconv"
	"strings"

	"blogly/internal/models"
	"blogly/internal/service"

	"github.com/gofiber/fiber/v2"
)

// NewPostForm handles GET /users/:id/posts/new
func (s *Server) NewPostForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := s.userService.GetUser(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Render("posts/new", fiber.Map{
		"Title":  "Add post for " + user.FullName(),
		"User":   user,
		"Form":   postForm{},
		"Errors": noErrors(),
	})
}

// checkFormOwner rejects a user_id form field that names a different user than the path.
func checkFormOwner(c *fiber.Ctx, pathID uint) error {
	raw := strings.TrimSpace(c.FormValue("user_id"))
	if raw == "" {
		return nil
	}
	formID, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || uint(formID) != pathID {
		return models.NewFieldValidationError(map[string]string{
			"user_id": "Posts can only be added for the user in the address",
		})
	}
	return nil
}

// CreatePost handles POST /users/:id/posts/new
func (s *Server) CreatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	form := readPostForm(c)
	err = checkFormOwner(c, id)
	if err == nil {
		_, err = s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
			UserID:  id,
			Title:   form.Title,
			Content: form.Content,
		})
	}
	if fields, msg, ok := validationFields(err); ok {
		user, lookupErr := s.userService.GetUser(c.UserContext(), id)
		if lookupErr != nil {
			return lookupErr
		}
		return c.Status(fiber.StatusBadRequest).Render("posts/new", fiber.Map{
			"Title":   "Add post for " + user.FullName(),
			"User":    user,
			"Form":    form,
			"Errors":  fields,
			"Message": msg,
		})
	}
	if err != nil {
		return err
	}
	return c.Redirect(userPath(id))
}

// ShowPost handles GET /posts/:id
func (s *Server) ShowPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Render("posts/detail", fiber.Map{
		"Title": post.Title,
		"Post":  post,
	})
}

// EditPostForm handles GET /posts/:id/edit
func (s *Server) EditPostForm(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Render("posts/edit", fiber.Map{
		"Title":  "Edit post",
		"Post":   post,
		"Form":   postForm{Title: post.Title, Content: post.Content},
		"Errors": noErrors(),
	})
}

// UpdatePost handles POST /posts/:id/edit
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	form := readPostForm(c)
	_, err = s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		PostID:  id,
		Title:   form.Title,
		Content: form.Content,
	})
	if fields, msg, ok := validationFields(err); ok {
		post, lookupErr := s.postService.GetPost(c.UserContext(), id)
		if lookupErr != nil {
			return lookupErr
		}
		return c.Status(fiber.StatusBadRequest).Render("posts/edit", fiber.Map{
			"Title":   "Edit post",
			"Post":    post,
			"Form":    form,
			"Errors":  fields,
			"Message": msg,
		})
	}
	if err != nil {
		return err
	}
	return c.Redirect(fmt.Sprintf("/posts/%d", id))
}

// DeletePost handles POST /posts/:id/delete
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	ownerID, err := s.postService.DeletePost(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.Redirect(userPath(ownerID))
}
