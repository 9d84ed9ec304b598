package server

import (
	"debateapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateAnonymousUser mints a fresh anonymous identity. Clients persist the
// returned pair locally and reuse it across sessions instead of calling
// this again.
func (s *Server) CreateAnonymousUser(c *fiber.Ctx) error {
	user, err := s.userService.CreateAnonymous(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.JSON(fiber.Map{
		"userId":   user.ID,
		"userName": user.Name,
	})
}

// GetUser returns a user by id.
func (s *Server) GetUser(c *fiber.Ctx) error {
	user, err := s.userService.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(user)
}

// GetUsers returns all users.
func (s *Server) GetUsers(c *fiber.Ctx) error {
	users, err := s.userService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(users)
}
