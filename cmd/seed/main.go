// Command seed populates the data directory with demo users, topics and
// debates across all three statuses. Intended for development and demos.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"debateapp/internal/models"
	"debateapp/internal/namegen"
	"debateapp/internal/repository"
	"debateapp/internal/service"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
)

var categories = []string{"general", "politics", "technology", "science", "culture"}

func main() {
	dataDir := flag.String("data", "data", "data directory holding the JSON documents")
	userCount := flag.Int("users", 8, "number of demo users to create")
	topicCount := flag.Int("topics", 12, "number of demo topics (each with a linked debate)")
	wipe := flag.Bool("wipe", false, "delete existing JSON documents first")
	flag.Parse()

	gofakeit.Seed(time.Now().UnixNano())

	if *wipe {
		for _, name := range []string{"users.json", "topics.json", "debates.json"} {
			if err := os.Remove(filepath.Join(*dataDir, name)); err != nil && !os.IsNotExist(err) {
				log.Fatalf("wipe %s: %v", name, err)
			}
		}
	}

	userRepo, err := repository.NewUserRepository(*dataDir)
	if err != nil {
		log.Fatalf("open user store: %v", err)
	}
	topicRepo, err := repository.NewTopicRepository(*dataDir)
	if err != nil {
		log.Fatalf("open topic store: %v", err)
	}
	debateRepo, err := repository.NewDebateRepository(*dataDir)
	if err != nil {
		log.Fatalf("open debate store: %v", err)
	}

	ctx := context.Background()

	users := make([]*models.User, 0, *userCount)
	for i := 0; i < *userCount; i++ {
		user := &models.User{
			ID:        uuid.NewString(),
			Name:      namegen.Random(),
			CreatedAt: time.Now().UTC().Add(-time.Duration(gofakeit.Number(0, 90*24)) * time.Hour),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("create user: %v", err)
		}
		users = append(users, user)
	}

	topicSvc := service.NewTopicService(topicRepo, debateRepo, userRepo, nil)
	debateSvc := service.NewDebateService(debateRepo, userRepo, nil)

	now := time.Now().UTC()
	for i := 0; i < *topicCount; i++ {
		// Rotate through past, current and future windows so the demo set
		// contains all three statuses.
		var start, end time.Time
		switch i % 3 {
		case 0:
			start, end = now.Add(-48*time.Hour), now.Add(48*time.Hour)
		case 1:
			start, end = now.Add(24*time.Hour), now.Add(72*time.Hour)
		default:
			start, end = now.Add(-96*time.Hour), now.Add(-24*time.Hour)
		}

		topic, debate, err := topicSvc.Create(ctx, service.CreateTopicInput{
			Title:       gofakeit.Question(),
			Description: gofakeit.Paragraph(1, 3, 8, " "),
			Category:    categories[gofakeit.Number(0, len(categories)-1)],
			StartDate:   start.Format(time.RFC3339),
			EndDate:     end.Format(time.RFC3339),
		})
		if err != nil {
			log.Fatalf("create topic: %v", err)
		}

		for v := 0; v < gofakeit.Number(0, 3*len(users)); v++ {
			voter := users[gofakeit.Number(0, len(users)-1)]
			if _, err := topicSvc.Vote(ctx, topic.ID, voter.ID); err != nil {
				log.Fatalf("vote topic %d: %v", topic.ID, err)
			}
		}

		for c := 0; c < gofakeit.Number(0, 6); c++ {
			author := users[gofakeit.Number(0, len(users)-1)]
			if _, err := debateSvc.Join(ctx, debate.ID, author.ID); err != nil {
				log.Fatalf("join debate %d: %v", debate.ID, err)
			}
			if _, err := debateSvc.PostComment(ctx, service.PostCommentInput{
				DebateID: debate.ID,
				UserID:   author.ID,
				Text:     gofakeit.Sentence(gofakeit.Number(5, 20)),
			}); err != nil {
				log.Fatalf("comment on debate %d: %v", debate.ID, err)
			}
		}
	}

	fmt.Printf("Seeded %d users and %d topics with debates into %s\n", *userCount, *topicCount, *dataDir)
}
