package service

import (
	"context"
	"time"

	"debateapp/internal/cache"
	"debateapp/internal/middleware"
	"debateapp/internal/models"
	"debateapp/internal/repository"
)

type TopicService struct {
	topicRepo   repository.TopicRepository
	debateRepo  repository.DebateRepository
	userRepo    repository.UserRepository
	debateCache *cache.Debates
}

type CreateTopicInput struct {
	Title       string
	Description string
	Category    string
	StartDate   string
	EndDate     string
}

func NewTopicService(
	topicRepo repository.TopicRepository,
	debateRepo repository.DebateRepository,
	userRepo repository.UserRepository,
	debateCache *cache.Debates,
) *TopicService {
	return &TopicService{
		topicRepo:   topicRepo,
		debateRepo:  debateRepo,
		userRepo:    userRepo,
		debateCache: debateCache,
	}
}

// Create allocates a topic and its linked debate in one logical operation
// spanning both stores. The topic is written first; if the debate write
// fails the topic is removed again so no orphan survives a partial failure.
func (s *TopicService) Create(ctx context.Context, in CreateTopicInput) (*models.Topic, *models.Debate, error) {
	if in.Title == "" {
		return nil, nil, models.NewValidationError("Title is required")
	}
	start, end, err := parseWindow(in.StartDate, in.EndDate)
	if err != nil {
		return nil, nil, err
	}

	topic := &models.Topic{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Votes:       0,
	}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, nil, err
	}

	debate := &models.Debate{
		TopicID:      topic.ID,
		Title:        in.Title,
		Category:     in.Category,
		Status:       models.DeriveStatus(time.Now().UTC(), start, end),
		StartDate:    start,
		EndDate:      end,
		Participants: []string{},
		Comments:     []models.Comment{},
	}
	if err := s.debateRepo.Create(ctx, debate); err != nil {
		// Compensate the first write so the stores stay consistent.
		if rmErr := s.topicRepo.Remove(ctx, topic.ID); rmErr != nil {
			middleware.Logger.ErrorContext(ctx, "failed to remove topic after debate write failure",
				"topic_id", topic.ID, "error", rmErr.Error())
		}
		return nil, nil, err
	}

	s.debateCache.Invalidate(ctx)
	return topic, debate, nil
}

func (s *TopicService) List(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.List(ctx)
}

// Vote increments a topic's vote count on behalf of an existing user. The
// user is only checked for existence; repeat votes by the same user all
// count. That matches the current product behavior, flagged as a likely
// missing constraint rather than silently changed.
func (s *TopicService) Vote(ctx context.Context, topicID int, userID string) (*models.Topic, error) {
	if _, err := s.topicRepo.GetByID(ctx, topicID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.topicRepo.IncrementVotes(ctx, topicID)
}
