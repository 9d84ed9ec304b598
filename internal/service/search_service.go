package service

import (
	"context"
	"strings"

	"debateapp/internal/models"
	"debateapp/internal/repository"
)

type SearchService struct {
	topicRepo  repository.TopicRepository
	debateRepo repository.DebateRepository
}

// SearchResult holds the matches of one search across both collections.
type SearchResult struct {
	Topics  []models.Topic  `json:"topics"`
	Debates []models.Debate `json:"debates"`
}

func NewSearchService(topicRepo repository.TopicRepository, debateRepo repository.DebateRepository) *SearchService {
	return &SearchService{topicRepo: topicRepo, debateRepo: debateRepo}
}

// Search performs a case-insensitive substring match: topics on title or
// description, debates on title only. The empty query matches everything.
func (s *SearchService) Search(ctx context.Context, query string) (*SearchResult, error) {
	q := strings.ToLower(query)

	topics, err := s.topicRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	debates, err := s.debateRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &SearchResult{
		Topics:  []models.Topic{},
		Debates: []models.Debate{},
	}
	for _, topic := range topics {
		if strings.Contains(strings.ToLower(topic.Title), q) ||
			strings.Contains(strings.ToLower(topic.Description), q) {
			result.Topics = append(result.Topics, topic)
		}
	}
	for _, debate := range debates {
		if strings.Contains(strings.ToLower(debate.Title), q) {
			result.Debates = append(result.Debates, debate)
		}
	}
	return result, nil
}
