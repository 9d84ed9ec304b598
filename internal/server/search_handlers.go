package server

import (
	"debateapp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Search matches topics on title or description and debates on title,
// case-insensitively. An empty query matches everything.
func (s *Server) Search(c *fiber.Ctx) error {
	result, err := s.searchService.Search(c.UserContext(), c.Query("query"))
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(result)
}
