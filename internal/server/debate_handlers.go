package server

import (
	"debateapp/internal/models"
	"debateapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetDebates returns all debates with statuses refreshed against a single
// now, in creation order. Active-only filtering is a client concern.
func (s *Server) GetDebates(c *fiber.Ctx) error {
	debates, err := s.debateService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(debates)
}

// CreateDebate creates a standalone debate not linked to any topic.
func (s *Server) CreateDebate(c *fiber.Ctx) error {
	var req struct {
		Title     string `json:"title"`
		Category  string `json:"category"`
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	debate, err := s.debateService.Create(c.UserContext(), service.CreateDebateInput{
		Title:     req.Title,
		Category:  req.Category,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(debate)
}

// JoinDebate adds the user to the debate's participants. Idempotent.
func (s *Server) JoinDebate(c *fiber.Ctx) error {
	debateID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	debate, err := s.debateService.Join(c.UserContext(), debateID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(debate)
}

// CreateComment posts a comment to a debate.
func (s *Server) CreateComment(c *fiber.Ctx) error {
	debateID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID string `json:"userId"`
		Text   string `json:"text"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	comment, err := s.debateService.PostComment(c.UserContext(), service.PostCommentInput{
		DebateID: debateID,
		UserID:   req.UserID,
		Text:     req.Text,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}

// GetComments returns a debate's comments in post order. Clients poll this
// endpoint while a debate view is open.
func (s *Server) GetComments(c *fiber.Ctx) error {
	debateID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.debateService.ListComments(c.UserContext(), debateID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(comments)
}
