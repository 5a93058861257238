package card

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
	"github.com/GoCardsEdu/GoCards-API/feature/deck"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DeckGateway is the slice of the deck store the replace transaction needs:
// the locking existence check and the conditional timestamp bump.
type DeckGateway interface {
	ExistsWithUpdateLock(ctx context.Context, tx *gorm.DB, deckID string) (bool, error)
	TouchUpdatedAt(ctx context.Context, tx *gorm.DB, deckID string, now time.Time) error
}

// Reconciler applies a desired card list against a deck's persisted set.
type Reconciler interface {
	Reconcile(ctx context.Context, tx *gorm.DB, deckID string, desired []models.Card, now time.Time) (int, error)
}

// TxRunner runs a function inside a database transaction. *gorm.DB satisfies
// it directly.
type TxRunner interface {
	Transaction(fc func(tx *gorm.DB) error, opts ...*sql.TxOptions) error
}

// Service orchestrates the atomic replacement of a deck's card set.
type Service struct {
	db     TxRunner
	decks  DeckGateway
	cards  Reconciler
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates the card service.
func NewService(db *gorm.DB, decks *deck.Store, cards *Store, log *zap.Logger) *Service {
	return &Service{
		db:     db,
		decks:  decks,
		cards:  cards,
		logger: log,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Replace atomically swaps the deck's card set for the desired list. The
// whole operation runs in one transaction: the deck row is locked first,
// serializing concurrent replacements of the same deck, then the card set is
// reconciled, and the deck's updated_at is bumped only when the reconcile
// reported actual changes. Any failure rolls back every write.
func (s *Service) Replace(ctx context.Context, deckID string, desired []models.Card) error {
	return s.replace(ctx, deckID, desired, nil)
}

// replace is Replace with an optional beforeCommit hook, which runs after
// reconciliation but before the transaction commits. Tests use it to observe
// what concurrent readers see while a replacement is in flight.
func (s *Service) replace(ctx context.Context, deckID string, desired []models.Card, beforeCommit func() error) error {
	now := s.now()

	return s.db.Transaction(func(tx *gorm.DB) error {
		exists, err := s.decks.ExistsWithUpdateLock(ctx, tx, deckID)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", deck.ErrNotFound, deckID)
		}

		changed, err := s.cards.Reconcile(ctx, tx, deckID, desired, now)
		if err != nil {
			return err
		}

		if changed > 0 {
			// Same timestamp as the card mutations so the deck and its
			// cards report one consistent modification instant.
			if err := s.decks.TouchUpdatedAt(ctx, tx, deckID, now); err != nil {
				return err
			}
			s.logger.Debug("Card set replaced",
				zap.String("deck_id", deckID),
				zap.Int("changes", changed),
			)
		}

		if beforeCommit != nil {
			return beforeCommit()
		}
		return nil
	})
}
