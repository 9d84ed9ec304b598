package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"debateapp/internal/models"
	"debateapp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// topicRepoStub is a stub for repository.TopicRepository.
type topicRepoStub struct {
	listFn           func(context.Context) ([]models.Topic, error)
	getByIDFn        func(context.Context, int) (*models.Topic, error)
	createFn         func(context.Context, *models.Topic) error
	removeFn         func(context.Context, int) error
	incrementVotesFn func(context.Context, int) (*models.Topic, error)
}

func (s *topicRepoStub) List(ctx context.Context) ([]models.Topic, error) { return s.listFn(ctx) }
func (s *topicRepoStub) GetByID(ctx context.Context, id int) (*models.Topic, error) {
	return s.getByIDFn(ctx, id)
}
func (s *topicRepoStub) Create(ctx context.Context, t *models.Topic) error { return s.createFn(ctx, t) }
func (s *topicRepoStub) Remove(ctx context.Context, id int) error          { return s.removeFn(ctx, id) }
func (s *topicRepoStub) IncrementVotes(ctx context.Context, id int) (*models.Topic, error) {
	return s.incrementVotesFn(ctx, id)
}

// debateRepoStub is a stub for repository.DebateRepository.
type debateRepoStub struct {
	listFn            func(context.Context) ([]models.Debate, error)
	getByIDFn         func(context.Context, int) (*models.Debate, error)
	createFn          func(context.Context, *models.Debate) error
	removeFn          func(context.Context, int) error
	addParticipantFn  func(context.Context, int, string) (*models.Debate, error)
	appendCommentFn   func(context.Context, int, *models.Comment) error
	refreshStatusesFn func(context.Context, time.Time) ([]models.Debate, error)
}

func (s *debateRepoStub) List(ctx context.Context) ([]models.Debate, error) { return s.listFn(ctx) }
func (s *debateRepoStub) GetByID(ctx context.Context, id int) (*models.Debate, error) {
	return s.getByIDFn(ctx, id)
}
func (s *debateRepoStub) Create(ctx context.Context, d *models.Debate) error {
	return s.createFn(ctx, d)
}
func (s *debateRepoStub) Remove(ctx context.Context, id int) error { return s.removeFn(ctx, id) }
func (s *debateRepoStub) AddParticipant(ctx context.Context, id int, userID string) (*models.Debate, error) {
	return s.addParticipantFn(ctx, id, userID)
}
func (s *debateRepoStub) AppendComment(ctx context.Context, id int, c *models.Comment) error {
	return s.appendCommentFn(ctx, id, c)
}
func (s *debateRepoStub) RefreshStatuses(ctx context.Context, now time.Time) ([]models.Debate, error) {
	return s.refreshStatusesFn(ctx, now)
}

func noopTopicRepo() *topicRepoStub {
	return &topicRepoStub{
		listFn:    func(context.Context) ([]models.Topic, error) { return nil, nil },
		getByIDFn: func(context.Context, int) (*models.Topic, error) { return &models.Topic{}, nil },
		createFn: func(_ context.Context, t *models.Topic) error {
			t.ID = 1
			return nil
		},
		removeFn:         func(context.Context, int) error { return nil },
		incrementVotesFn: func(context.Context, int) (*models.Topic, error) { return &models.Topic{}, nil },
	}
}

func noopDebateRepo() *debateRepoStub {
	return &debateRepoStub{
		listFn:    func(context.Context) ([]models.Debate, error) { return nil, nil },
		getByIDFn: func(context.Context, int) (*models.Debate, error) { return &models.Debate{}, nil },
		createFn: func(_ context.Context, d *models.Debate) error {
			d.ID = 1
			return nil
		},
		removeFn: func(context.Context, int) error { return nil },
		addParticipantFn: func(context.Context, int, string) (*models.Debate, error) {
			return &models.Debate{}, nil
		},
		appendCommentFn:   func(context.Context, int, *models.Comment) error { return nil },
		refreshStatusesFn: func(context.Context, time.Time) ([]models.Debate, error) { return nil, nil },
	}
}

func newTestRepos(t *testing.T) (repository.UserRepository, repository.TopicRepository, repository.DebateRepository) {
	t.Helper()
	dir := t.TempDir()
	users, err := repository.NewUserRepository(dir)
	require.NoError(t, err)
	topics, err := repository.NewTopicRepository(dir)
	require.NoError(t, err)
	debates, err := repository.NewDebateRepository(dir)
	require.NoError(t, err)
	return users, topics, debates
}

func assertValidationError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeValidation, appErr.Code)
}

func assertNotFoundError(t *testing.T, err error) {
	t.Helper()
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func isoDaysFromNow(days int) string {
	return time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
}

func TestUserService_CreateAnonymous(t *testing.T) {
	users, _, _ := newTestRepos(t)
	svc := NewUserService(users)
	ctx := context.Background()

	first, err := svc.CreateAnonymous(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.Name)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := svc.CreateAnonymous(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	got, err := svc.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Name, got.Name)
}

func TestTopicService_Create_Validation(t *testing.T) {
	svc := NewTopicService(noopTopicRepo(), noopDebateRepo(), nil, nil)
	ctx := context.Background()

	t.Run("missing title", func(t *testing.T) {
		_, _, err := svc.Create(ctx, CreateTopicInput{StartDate: isoDaysFromNow(-1), EndDate: isoDaysFromNow(1)})
		assertValidationError(t, err)
	})

	t.Run("missing dates", func(t *testing.T) {
		_, _, err := svc.Create(ctx, CreateTopicInput{Title: "X"})
		assertValidationError(t, err)
	})

	t.Run("garbage date", func(t *testing.T) {
		_, _, err := svc.Create(ctx, CreateTopicInput{Title: "X", StartDate: "soon", EndDate: isoDaysFromNow(1)})
		assertValidationError(t, err)
	})

	t.Run("inverted window", func(t *testing.T) {
		_, _, err := svc.Create(ctx, CreateTopicInput{Title: "X", StartDate: isoDaysFromNow(2), EndDate: isoDaysFromNow(1)})
		assertValidationError(t, err)
	})
}

func TestTopicService_Create_LinksDebateAndDerivesStatus(t *testing.T) {
	users, topics, debates := newTestRepos(t)
	svc := NewTopicService(topics, debates, users, nil)
	ctx := context.Background()

	tests := []struct {
		name     string
		start    string
		end      string
		expected models.Status
	}{
		{"window open", isoDaysFromNow(-1), isoDaysFromNow(1), models.StatusActive},
		{"window in future", isoDaysFromNow(1), isoDaysFromNow(2), models.StatusScheduled},
		{"window in past", isoDaysFromNow(-2), isoDaysFromNow(-1), models.StatusExpired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topic, debate, err := svc.Create(ctx, CreateTopicInput{
				Title:       "X",
				Description: "Y",
				Category:    "general",
				StartDate:   tt.start,
				EndDate:     tt.end,
			})
			require.NoError(t, err)
			assert.Equal(t, 0, topic.Votes)
			assert.Equal(t, topic.ID, debate.TopicID)
			assert.Equal(t, topic.Title, debate.Title)
			assert.Equal(t, tt.expected, debate.Status)
			assert.Empty(t, debate.Participants)
			assert.Empty(t, debate.Comments)
		})
	}
}

func TestTopicService_Create_CompensatesFailedDebateWrite(t *testing.T) {
	writeErr := models.NewStorageError(errors.New("disk full"))

	removed := 0
	topicRepo := noopTopicRepo()
	topicRepo.createFn = func(_ context.Context, topic *models.Topic) error {
		topic.ID = 7
		return nil
	}
	topicRepo.removeFn = func(_ context.Context, id int) error {
		assert.Equal(t, 7, id)
		removed++
		return nil
	}
	debateRepo := noopDebateRepo()
	debateRepo.createFn = func(context.Context, *models.Debate) error { return writeErr }

	svc := NewTopicService(topicRepo, debateRepo, nil, nil)
	_, _, err := svc.Create(context.Background(), CreateTopicInput{
		Title:     "X",
		StartDate: isoDaysFromNow(-1),
		EndDate:   isoDaysFromNow(1),
	})
	assert.ErrorIs(t, err, writeErr)
	assert.Equal(t, 1, removed, "staged topic should be removed exactly once")
}

func TestTopicService_Vote(t *testing.T) {
	users, topics, debates := newTestRepos(t)
	userSvc := NewUserService(users)
	svc := NewTopicService(topics, debates, users, nil)
	ctx := context.Background()

	topic, _, err := svc.Create(ctx, CreateTopicInput{
		Title: "voting", StartDate: isoDaysFromNow(-1), EndDate: isoDaysFromNow(1),
	})
	require.NoError(t, err)

	// Three different users vote once each.
	for i := 0; i < 3; i++ {
		voter, err := userSvc.CreateAnonymous(ctx)
		require.NoError(t, err)
		got, err := svc.Vote(ctx, topic.ID, voter.ID)
		require.NoError(t, err)
		assert.Equal(t, i+1, got.Votes)
	}

	// Repeat voting is allowed; no per-user constraint exists.
	repeat, err := userSvc.CreateAnonymous(ctx)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err := svc.Vote(ctx, topic.ID, repeat.ID)
		require.NoError(t, err)
	}
	got, err := topics.GetByID(ctx, topic.ID)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Votes)

	t.Run("unknown topic", func(t *testing.T) {
		_, err := svc.Vote(ctx, 999, repeat.ID)
		assertNotFoundError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Vote(ctx, topic.ID, "ghost")
		assertNotFoundError(t, err)
	})
}

func TestDebateService_JoinAndComment(t *testing.T) {
	users, topics, debates := newTestRepos(t)
	userSvc := NewUserService(users)
	topicSvc := NewTopicService(topics, debates, users, nil)
	svc := NewDebateService(debates, users, nil)
	ctx := context.Background()

	user, err := userSvc.CreateAnonymous(ctx)
	require.NoError(t, err)
	_, debate, err := topicSvc.Create(ctx, CreateTopicInput{
		Title: "joinable", StartDate: isoDaysFromNow(-1), EndDate: isoDaysFromNow(1),
	})
	require.NoError(t, err)

	// Idempotent join.
	joined, err := svc.Join(ctx, debate.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, joined.Participants)
	joined, err = svc.Join(ctx, debate.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{user.ID}, joined.Participants)

	t.Run("join unknown debate", func(t *testing.T) {
		_, err := svc.Join(ctx, 999, user.ID)
		assertNotFoundError(t, err)
	})
	t.Run("join as unknown user", func(t *testing.T) {
		_, err := svc.Join(ctx, debate.ID, "ghost")
		assertNotFoundError(t, err)
	})

	t.Run("whitespace comment rejected", func(t *testing.T) {
		_, err := svc.PostComment(ctx, PostCommentInput{DebateID: debate.ID, UserID: user.ID, Text: "   \t"})
		assertValidationError(t, err)
	})

	// Comments come back 1..N in post order with the author snapshotted.
	for i := 1; i <= 3; i++ {
		comment, err := svc.PostComment(ctx, PostCommentInput{
			DebateID: debate.ID,
			UserID:   user.ID,
			Text:     fmt.Sprintf("take %d", i),
		})
		require.NoError(t, err)
		assert.Equal(t, i, comment.ID)
		assert.Equal(t, user.Name, comment.Author)
	}

	comments, err := svc.ListComments(ctx, debate.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	for i, c := range comments {
		assert.Equal(t, i+1, c.ID)
	}

	t.Run("comments of unknown debate", func(t *testing.T) {
		_, err := svc.ListComments(ctx, 999)
		assertNotFoundError(t, err)
	})
}

func TestDebateService_ListUsesOneSharedNow(t *testing.T) {
	var seen []time.Time
	debateRepo := noopDebateRepo()
	debateRepo.refreshStatusesFn = func(_ context.Context, now time.Time) ([]models.Debate, error) {
		seen = append(seen, now)
		return []models.Debate{}, nil
	}

	svc := NewDebateService(debateRepo, nil, nil)
	_, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, seen, 1, "one refresh call with one now per listing")
}

func TestSearchService(t *testing.T) {
	users, topics, debates := newTestRepos(t)
	topicSvc := NewTopicService(topics, debates, users, nil)
	svc := NewSearchService(topics, debates)
	ctx := context.Background()

	_, _, err := topicSvc.Create(ctx, CreateTopicInput{
		Title: "Climate policy", Description: "Carbon pricing", Category: "politics",
		StartDate: isoDaysFromNow(-1), EndDate: isoDaysFromNow(1),
	})
	require.NoError(t, err)
	_, _, err = topicSvc.Create(ctx, CreateTopicInput{
		Title: "Space travel", Description: "Mars missions", Category: "science",
		StartDate: isoDaysFromNow(-1), EndDate: isoDaysFromNow(1),
	})
	require.NoError(t, err)

	t.Run("full title matches", func(t *testing.T) {
		result, err := svc.Search(ctx, "Climate policy")
		require.NoError(t, err)
		require.Len(t, result.Topics, 1)
		assert.Equal(t, "Climate policy", result.Topics[0].Title)
		require.Len(t, result.Debates, 1)
	})

	t.Run("matches description, case-insensitively", func(t *testing.T) {
		result, err := svc.Search(ctx, "cArBoN")
		require.NoError(t, err)
		require.Len(t, result.Topics, 1)
		// Debates match on title only, so the description hit stays topic-side.
		assert.Empty(t, result.Debates)
	})

	t.Run("unmatched query returns empty arrays", func(t *testing.T) {
		result, err := svc.Search(ctx, "quantum basket weaving")
		require.NoError(t, err)
		assert.Empty(t, result.Topics)
		assert.Empty(t, result.Debates)
		assert.NotNil(t, result.Topics)
		assert.NotNil(t, result.Debates)
	})

	t.Run("empty query matches everything", func(t *testing.T) {
		result, err := svc.Search(ctx, "")
		require.NoError(t, err)
		assert.Len(t, result.Topics, 2)
		assert.Len(t, result.Debates, 2)
	})
}
