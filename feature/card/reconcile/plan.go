package reconcile

import (
	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
)

// Plan partitions a desired card list against a deck's persisted card set.
// It does NOT touch the database; the card store applies it.
type Plan struct {
	// Creations are desired cards whose id is not persisted yet.
	Creations []models.Card

	// Updates are desired cards whose id exists and whose
	// (ordinal, front, back) content differs from the persisted card.
	Updates []models.Card

	// Deletions are persisted cards whose id is absent from the desired list.
	Deletions []models.Card
}

// ChangeCount is the number of mutations the plan carries. The orchestrator
// bumps the deck's updated_at iff this is positive.
func (p Plan) ChangeCount() int {
	return len(p.Updates) + len(p.Creations) + len(p.Deletions)
}

// BuildPlan diffs the desired card list against the existing resolved cards.
// Equality is evaluated over resolved content (Card.ContentEqual), never over
// raw facet rows, so a byte-identical resubmission plans zero changes.
func BuildPlan(desired, existing []models.Card) Plan {
	existingByID := make(map[string]models.Card, len(existing))
	for _, card := range existing {
		existingByID[card.ID] = card
	}

	desiredIDs := make(map[string]struct{}, len(desired))
	for _, card := range desired {
		desiredIDs[card.ID] = struct{}{}
	}

	var plan Plan
	for _, card := range desired {
		current, exists := existingByID[card.ID]
		switch {
		case !exists:
			plan.Creations = append(plan.Creations, card)
		case !card.ContentEqual(current):
			plan.Updates = append(plan.Updates, card)
		}
	}

	// Deletions are computed by id-set difference, independent of the
	// update/creation partition.
	for _, card := range existing {
		if _, wanted := desiredIDs[card.ID]; !wanted {
			plan.Deletions = append(plan.Deletions, card)
		}
	}

	return plan
}
