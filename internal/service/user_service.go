// Package service implements the domain operations of the debate forum on
// top of the document repositories.
package service

import (
	"context"
	"time"

	"debateapp/internal/models"
	"debateapp/internal/namegen"
	"debateapp/internal/repository"

	"github.com/google/uuid"
)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateAnonymous mints a new anonymous identity: a unique id and a random
// two-word display name. Display names may collide; ids never do.
func (s *UserService) CreateAnonymous(ctx context.Context) (*models.User, error) {
	user := &models.User{
		ID:        uuid.NewString(),
		Name:      namegen.Random(),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}
