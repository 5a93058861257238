package deck

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/GoCardsEdu/GoCards-API/feature/deck/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when the targeted deck row does not exist.
var ErrNotFound = errors.New("deck not found")

// Store persists deck rows.
type Store struct {
	db *gorm.DB
}

// NewStore creates a deck store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Find returns the deck with the given id, or ErrNotFound.
func (s *Store) Find(ctx context.Context, id string) (*models.Deck, error) {
	var row models.DeckRow
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to find deck %s: %w", id, err)
	}
	deck := row.ToDomain()
	return &deck, nil
}

// Create inserts a new deck row with both timestamps set to now.
func (s *Store) Create(ctx context.Context, id, name string, now time.Time) error {
	row := models.DeckRow{
		ID:        id,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to create deck %s: %w", id, err)
	}
	return nil
}

// Rename updates the deck's name and bumps its updated_at timestamp.
func (s *Store) Rename(ctx context.Context, id, name string, now time.Time) error {
	result := s.db.WithContext(ctx).
		Model(&models.DeckRow{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "updated_at": now})
	if result.Error != nil {
		return fmt.Errorf("failed to rename deck %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// ExistsWithUpdateLock reads the deck row inside the caller's transaction,
// acquiring an exclusive row-level lock (SELECT ... FOR UPDATE) held until the
// transaction ends. It blocks while another transaction holds the lock, then
// reports whether the committed row exists.
//
// This is the sole serialization point for concurrent card-set replacements
// of the same deck.
func (s *Store) ExistsWithUpdateLock(ctx context.Context, tx *gorm.DB, id string) (bool, error) {
	q := tx.WithContext(ctx)
	if tx.Dialector.Name() != "sqlite" {
		// SQLite has no row locks; its single-writer database lock already
		// serializes writing transactions.
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	var row models.DeckRow
	err := q.
		Select("id").
		Where("id = ?", id).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to lock deck %s: %w", id, err)
	}
	return true, nil
}

// TouchUpdatedAt bumps the deck's updated_at inside the caller's transaction.
func (s *Store) TouchUpdatedAt(ctx context.Context, tx *gorm.DB, id string, now time.Time) error {
	result := tx.WithContext(ctx).
		Model(&models.DeckRow{}).
		Where("id = ?", id).
		Update("updated_at", now)
	if result.Error != nil {
		return fmt.Errorf("failed to touch deck %s: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}
