package server

import (
	"debateapp/internal/models"
	"debateapp/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetTopics returns all topics in creation order.
func (s *Server) GetTopics(c *fiber.Ctx) error {
	topics, err := s.topicService.List(c.UserContext())
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(topics)
}

// CreateTopic creates a topic together with its linked debate.
func (s *Server) CreateTopic(c *fiber.Ctx) error {
	var req struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Category    string `json:"category"`
		StartDate   string `json:"startDate"`
		EndDate     string `json:"endDate"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	topic, debate, err := s.topicService.Create(c.UserContext(), service.CreateTopicInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"topic":  topic,
		"debate": debate,
	})
}

// VoteTopic increments a topic's vote count for an existing user. There is
// no one-vote-per-user constraint.
func (s *Server) VoteTopic(c *fiber.Ctx) error {
	topicID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError("Invalid request body"))
	}

	topic, err := s.topicService.Vote(c.UserContext(), topicID, req.UserID)
	if err != nil {
		return models.RespondWithError(c, models.StatusForError(err), err)
	}
	return c.JSON(topic)
}
