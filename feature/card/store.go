package card

import (
	"context"
	"fmt"
	"time"

	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
	"github.com/GoCardsEdu/GoCards-API/feature/card/reconcile"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Store persists card identity rows and their facet rows for a deck.
type Store struct {
	db *gorm.DB
}

// NewStore creates a card store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// FindByDeck returns the deck's fully resolved cards in ordinal order.
func (s *Store) FindByDeck(ctx context.Context, deckID string) ([]models.Card, error) {
	return findByDeck(ctx, s.db, deckID)
}

// IDsByDeck returns the set of card ids persisted for the deck.
func (s *Store) IDsByDeck(ctx context.Context, deckID string) (map[string]struct{}, error) {
	var ids []string
	err := s.db.WithContext(ctx).
		Model(&models.CardRow{}).
		Where("deck_id = ?", deckID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list card ids for deck %s: %w", deckID, err)
	}

	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set, nil
}

// Reconcile replaces the deck's card set with the desired list inside the
// caller's transaction. Deletions are applied first, then updates, then
// creations, so facet rows never orphan and new rows never collide. The
// returned count is the number of created, updated and deleted cards; the
// caller uses it to decide whether the deck itself changed.
func (s *Store) Reconcile(ctx context.Context, tx *gorm.DB, deckID string, desired []models.Card, now time.Time) (int, error) {
	existing, err := findByDeck(ctx, tx, deckID)
	if err != nil {
		return 0, err
	}

	plan := reconcile.BuildPlan(desired, existing)

	if err := applyDeletions(ctx, tx, plan.Deletions); err != nil {
		return 0, err
	}
	if err := applyUpdates(ctx, tx, plan.Updates, existing, now); err != nil {
		return 0, err
	}
	if err := applyCreations(ctx, tx, deckID, plan.Creations, now); err != nil {
		return 0, err
	}

	return plan.ChangeCount(), nil
}

func findByDeck(ctx context.Context, db *gorm.DB, deckID string) ([]models.Card, error) {
	var rows []models.CardRow
	err := db.WithContext(ctx).
		Where("deck_id = ?", deckID).
		Order("ordinal").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cards for deck %s: %w", deckID, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}

	var frontRows []models.CardFrontRow
	if err := db.WithContext(ctx).Where("card_id IN ?", ids).Find(&frontRows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch card fronts for deck %s: %w", deckID, err)
	}
	var backRows []models.CardBackRow
	if err := db.WithContext(ctx).Where("card_id IN ?", ids).Find(&backRows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch card backs for deck %s: %w", deckID, err)
	}

	fronts := make(map[string]models.FacetMap, len(frontRows))
	for _, row := range frontRows {
		if fronts[row.CardID] == nil {
			fronts[row.CardID] = models.FacetMap{}
		}
		fronts[row.CardID][models.FacetName(row.Name)] = row.Content
	}
	backs := make(map[string]models.FacetMap, len(backRows))
	for _, row := range backRows {
		if backs[row.CardID] == nil {
			backs[row.CardID] = models.FacetMap{}
		}
		backs[row.CardID][models.FacetName(row.Name)] = row.Content
	}

	cards := make([]models.Card, 0, len(rows))
	for _, row := range rows {
		cards = append(cards, models.Card{
			ID:        row.ID,
			Ordinal:   row.Ordinal,
			Front:     fronts[row.ID],
			Back:      backs[row.ID],
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		})
	}
	return cards, nil
}

// applyDeletions removes the cards and their facet rows. Facet rows are
// deleted explicitly so no orphan survives even without a cascading foreign
// key.
func applyDeletions(ctx context.Context, tx *gorm.DB, deletions []models.Card) error {
	if len(deletions) == 0 {
		return nil
	}

	ids := make([]string, 0, len(deletions))
	for _, card := range deletions {
		ids = append(ids, card.ID)
	}

	if err := tx.WithContext(ctx).Where("card_id IN ?", ids).Delete(&models.CardFrontRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete card fronts: %w", err)
	}
	if err := tx.WithContext(ctx).Where("card_id IN ?", ids).Delete(&models.CardBackRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete card backs: %w", err)
	}
	if err := tx.WithContext(ctx).Where("id IN ?", ids).Delete(&models.CardRow{}).Error; err != nil {
		return fmt.Errorf("failed to delete cards: %w", err)
	}
	return nil
}

// applyUpdates bumps updated_at for every card in the update partition, even
// when only its facet content moved, and reconciles both facet sides against
// the rows resolved at fetch time.
func applyUpdates(ctx context.Context, tx *gorm.DB, updates, existing []models.Card, now time.Time) error {
	if len(updates) == 0 {
		return nil
	}

	ids := make([]string, 0, len(updates))
	fronts := make([]reconcile.CardFacets, 0, len(updates))
	backs := make([]reconcile.CardFacets, 0, len(updates))
	for _, card := range updates {
		ids = append(ids, card.ID)
		fronts = append(fronts, reconcile.CardFacets{CardID: card.ID, Desired: card.Front})
		backs = append(backs, reconcile.CardFacets{CardID: card.ID, Desired: card.Back})
	}

	err := tx.WithContext(ctx).
		Model(&models.CardRow{}).
		Where("id IN ?", ids).
		Update("updated_at", now).Error
	if err != nil {
		return fmt.Errorf("failed to bump card timestamps: %w", err)
	}

	updated := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		updated[id] = struct{}{}
	}
	var existingFronts, existingBacks []reconcile.FacetEntry
	for _, card := range existing {
		if _, ok := updated[card.ID]; !ok {
			continue
		}
		existingFronts = append(existingFronts, reconcile.EntriesFromMap(card.ID, card.Front)...)
		existingBacks = append(existingBacks, reconcile.EntriesFromMap(card.ID, card.Back)...)
	}

	if err := applyFacetPlan(ctx, tx, reconcile.PlanFacets(fronts, existingFronts), frontTable); err != nil {
		return err
	}
	return applyFacetPlan(ctx, tx, reconcile.PlanFacets(backs, existingBacks), backTable)
}

// applyCreations inserts identity rows with created_at = updated_at = now and
// their facet rows, each side as one grouped insert.
func applyCreations(ctx context.Context, tx *gorm.DB, deckID string, creations []models.Card, now time.Time) error {
	if len(creations) == 0 {
		return nil
	}

	rows := make([]models.CardRow, 0, len(creations))
	var frontEntries, backEntries []reconcile.FacetEntry
	for _, card := range creations {
		rows = append(rows, models.CardRow{
			ID:        card.ID,
			DeckID:    deckID,
			Ordinal:   card.Ordinal,
			CreatedAt: now,
			UpdatedAt: now,
		})
		frontEntries = append(frontEntries, reconcile.EntriesFromMap(card.ID, card.Front)...)
		backEntries = append(backEntries, reconcile.EntriesFromMap(card.ID, card.Back)...)
	}

	if err := tx.WithContext(ctx).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to create cards: %w", err)
	}
	if err := applyFacetPlan(ctx, tx, reconcile.FacetPlan{Creates: frontEntries}, frontTable); err != nil {
		return err
	}
	return applyFacetPlan(ctx, tx, reconcile.FacetPlan{Creates: backEntries}, backTable)
}

// facetSide adapts one facet table to the shared plan application code.
type facetSide struct {
	name    string
	rows    func([]reconcile.FacetEntry) any
	deleter func() any
}

var frontTable = facetSide{
	name: "card fronts",
	rows: func(entries []reconcile.FacetEntry) any {
		rows := make([]models.CardFrontRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, models.CardFrontRow{CardID: e.CardID, Name: string(e.Name), Content: e.Content})
		}
		return &rows
	},
	deleter: func() any { return &models.CardFrontRow{} },
}

var backTable = facetSide{
	name: "card backs",
	rows: func(entries []reconcile.FacetEntry) any {
		rows := make([]models.CardBackRow, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, models.CardBackRow{CardID: e.CardID, Name: string(e.Name), Content: e.Content})
		}
		return &rows
	},
	deleter: func() any { return &models.CardBackRow{} },
}

// applyFacetPlan executes a side's facet plan as three grouped writes: one
// multi-row insert, one upsert-based blind overwrite, one composite-key
// delete.
func applyFacetPlan(ctx context.Context, tx *gorm.DB, plan reconcile.FacetPlan, side facetSide) error {
	if plan.Empty() {
		return nil
	}

	if len(plan.Deletes) > 0 {
		keys := make([][]any, 0, len(plan.Deletes))
		for _, entry := range plan.Deletes {
			keys = append(keys, []any{entry.CardID, string(entry.Name)})
		}
		if err := tx.WithContext(ctx).Where("(card_id, name) IN ?", keys).Delete(side.deleter()).Error; err != nil {
			return fmt.Errorf("failed to delete %s: %w", side.name, err)
		}
	}

	if len(plan.Updates) > 0 {
		// The update partition only contains tags that already have a row;
		// the conflict target turns the grouped insert into the blind
		// overwrite the replace semantics call for.
		err := tx.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "card_id"}, {Name: "name"}},
				DoUpdates: clause.AssignmentColumns([]string{"content"}),
			}).
			Create(side.rows(plan.Updates)).Error
		if err != nil {
			return fmt.Errorf("failed to update %s: %w", side.name, err)
		}
	}

	if len(plan.Creates) > 0 {
		if err := tx.WithContext(ctx).Create(side.rows(plan.Creates)).Error; err != nil {
			return fmt.Errorf("failed to create %s: %w", side.name, err)
		}
	}

	return nil
}
