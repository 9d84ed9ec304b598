package repository

import (
	"context"

	"debateapp/internal/models"
)

// UserRepository provides access to the users document.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// userDocument is the on-disk envelope of users.json.
type userDocument struct {
	Users []models.User `json:"users"`
}

type fileUserRepository struct {
	store *store
}

// NewUserRepository creates a user repository backed by users.json under
// dataDir.
func NewUserRepository(dataDir string) (UserRepository, error) {
	s, err := newStore(dataDir, "users.json", "users")
	if err != nil {
		return nil, err
	}
	return &fileUserRepository{store: s}, nil
}

func (r *fileUserRepository) Create(ctx context.Context, user *models.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc userDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	doc.Users = append(doc.Users, *user)
	if err := r.store.save(ctx, &doc); err != nil {
		return models.NewStorageError(err)
	}
	return nil
}

func (r *fileUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc userDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	for i := range doc.Users {
		if doc.Users[i].ID == id {
			user := doc.Users[i]
			return &user, nil
		}
	}
	return nil, models.NewNotFoundError("User", id)
}

func (r *fileUserRepository) List(ctx context.Context) ([]models.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var doc userDocument
	if err := r.store.load(ctx, &doc); err != nil {
		return nil, models.NewStorageError(err)
	}
	if doc.Users == nil {
		doc.Users = []models.User{}
	}
	return doc.Users, nil
}
