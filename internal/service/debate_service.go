package service

import (
	"context"
	"strings"
	"time"

	"debateapp/internal/cache"
	"debateapp/internal/models"
	"debateapp/internal/repository"
)

type DebateService struct {
	debateRepo  repository.DebateRepository
	userRepo    repository.UserRepository
	debateCache *cache.Debates
}

type CreateDebateInput struct {
	Title     string
	Category  string
	StartDate string
	EndDate   string
}

type PostCommentInput struct {
	DebateID int
	UserID   string
	Text     string
}

func NewDebateService(
	debateRepo repository.DebateRepository,
	userRepo repository.UserRepository,
	debateCache *cache.Debates,
) *DebateService {
	return &DebateService{
		debateRepo:  debateRepo,
		userRepo:    userRepo,
		debateCache: debateCache,
	}
}

// Create starts a standalone debate, one not linked to any topic.
func (s *DebateService) Create(ctx context.Context, in CreateDebateInput) (*models.Debate, error) {
	if in.Title == "" {
		return nil, models.NewValidationError("Title is required")
	}
	start, end, err := parseWindow(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	debate := &models.Debate{
		Title:        in.Title,
		Category:     in.Category,
		Status:       models.DeriveStatus(time.Now().UTC(), start, end),
		StartDate:    start,
		EndDate:      end,
		Participants: []string{},
		Comments:     []models.Comment{},
	}
	if err := s.debateRepo.Create(ctx, debate); err != nil {
		return nil, err
	}

	s.debateCache.Invalidate(ctx)
	return debate, nil
}

// List returns all debates in creation order with statuses refreshed
// against a single now, so statuses in one response are mutually
// consistent. The refreshed list is served from cache between mutations.
func (s *DebateService) List(ctx context.Context) ([]models.Debate, error) {
	if debates, ok := s.debateCache.Get(ctx); ok {
		return debates, nil
	}

	debates, err := s.debateRepo.RefreshStatuses(ctx, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	s.debateCache.Set(ctx, debates)
	return debates, nil
}

// Join adds the user to the debate's participant set. Joining twice is
// idempotent.
func (s *DebateService) Join(ctx context.Context, debateID int, userID string) (*models.Debate, error) {
	if _, err := s.debateRepo.GetByID(ctx, debateID); err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	debate, err := s.debateRepo.AddParticipant(ctx, debateID, userID)
	if err != nil {
		return nil, err
	}

	s.debateCache.Invalidate(ctx)
	return debate, nil
}

// PostComment appends a comment to a debate. The author name is a snapshot
// of the user's display name at post time.
func (s *DebateService) PostComment(ctx context.Context, in PostCommentInput) (*models.Comment, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, models.NewValidationError("Comment text is required")
	}

	if _, err := s.debateRepo.GetByID(ctx, in.DebateID); err != nil {
		return nil, err
	}
	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  in.UserID,
		Author:  user.Name,
		Content: in.Text,
		Date:    time.Now().UTC(),
	}
	if err := s.debateRepo.AppendComment(ctx, in.DebateID, comment); err != nil {
		return nil, err
	}

	s.debateCache.Invalidate(ctx)
	return comment, nil
}

// ListComments returns a debate's comments in post order.
func (s *DebateService) ListComments(ctx context.Context, debateID int) ([]models.Comment, error) {
	debate, err := s.debateRepo.GetByID(ctx, debateID)
	if err != nil {
		return nil, err
	}
	return debate.Comments, nil
}
