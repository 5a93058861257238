package deck

import (
	"context"
	"time"

	"github.com/GoCardsEdu/GoCards-API/feature/deck/models"

	"github.com/google/uuid"
)

// Service handles deck operations.
type Service struct {
	store *Store
	now   func() time.Time
}

// NewService creates a new deck service.
func NewService(store *Store) *Service {
	return &Service{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Find returns a deck by id.
func (s *Service) Find(ctx context.Context, id string) (*models.Deck, error) {
	return s.store.Find(ctx, id)
}

// Create stores a new deck under a generated id and returns it.
func (s *Service) Create(ctx context.Context, name string) (*models.Deck, error) {
	id := uuid.NewString()
	if err := s.store.Create(ctx, id, name, s.now()); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, id)
}

// Rename changes a deck's name and returns the updated deck.
func (s *Service) Rename(ctx context.Context, id, name string) (*models.Deck, error) {
	if err := s.store.Rename(ctx, id, name, s.now()); err != nil {
		return nil, err
	}
	return s.store.Find(ctx, id)
}
