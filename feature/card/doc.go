// Package card implements the card-set reconciliation engine.
//
// A client replaces a deck's entire card set in one request. The engine
// computes the minimal create/update/delete mutation set against the
// persisted cards, reconciles each surviving card's front/back facet rows,
// and applies everything in a single transaction serialized per deck.
//
// # Concurrency
//
// The replace transaction opens by locking the deck row through
// deck.Store.ExistsWithUpdateLock (SELECT ... FOR UPDATE). Two replacements
// of the same deck therefore execute strictly one after the other; the
// second observes the first's committed card set as its baseline.
// Replacements of different decks share no lock. Readers run outside the
// lock and see either the pre-replace or the post-replace set, never a
// partial mix.
//
// # Components
//
//   - reconcile: pure planning of card and facet mutations.
//   - Store: resolved reads and grouped plan application via gorm.
//   - Service: the transactional orchestrator with the deck lock and the
//     conditional deck timestamp bump.
//   - Handler: Fiber endpoints (GET/PUT /deck/:deckId/cards) with the
//     deck-existence and card-id-membership validation that runs before the
//     engine is invoked.
package card
