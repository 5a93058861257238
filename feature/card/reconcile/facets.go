package reconcile

import (
	"sort"

	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
)

// FacetEntry is one facet row of a card side: (card, tag, content).
type FacetEntry struct {
	CardID  string
	Name    models.FacetName
	Content string
}

// CardFacets pairs a card id with the desired facet map for one side.
type CardFacets struct {
	CardID  string
	Desired models.FacetMap
}

// FacetPlan holds the grouped facet mutations for a whole batch of cards.
// Each list is applied as a single grouped write.
type FacetPlan struct {
	Creates []FacetEntry
	Updates []FacetEntry
	Deletes []FacetEntry
}

// Empty reports whether the plan carries no mutations.
func (p FacetPlan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Updates) == 0 && len(p.Deletes) == 0
}

// PlanFacets reconciles desired facet maps against existing rows for a batch
// of cards. Per card: a desired tag with an existing row becomes an update
// (blind overwrite, no content comparison), a desired tag without a row
// becomes a create, and an existing row whose tag left the desired map
// becomes a delete. A row is never planned for both update and delete. An
// empty desired map deletes every existing row and creates nothing.
func PlanFacets(cards []CardFacets, existing []FacetEntry) FacetPlan {
	byCard := make(map[string][]FacetEntry, len(cards))
	for _, entry := range existing {
		byCard[entry.CardID] = append(byCard[entry.CardID], entry)
	}

	var plan FacetPlan
	for _, card := range cards {
		present := make(map[models.FacetName]struct{})
		for _, entry := range byCard[card.CardID] {
			if _, wanted := card.Desired[entry.Name]; wanted {
				plan.Updates = append(plan.Updates, FacetEntry{
					CardID:  card.CardID,
					Name:    entry.Name,
					Content: card.Desired[entry.Name],
				})
				present[entry.Name] = struct{}{}
			} else {
				plan.Deletes = append(plan.Deletes, entry)
			}
		}

		for _, name := range sortedNames(card.Desired) {
			if _, exists := present[name]; exists {
				continue
			}
			plan.Creates = append(plan.Creates, FacetEntry{
				CardID:  card.CardID,
				Name:    name,
				Content: card.Desired[name],
			})
		}
	}
	return plan
}

// EntriesFromMap flattens a facet map into entries for one card, in tag
// order.
func EntriesFromMap(cardID string, m models.FacetMap) []FacetEntry {
	entries := make([]FacetEntry, 0, len(m))
	for _, name := range sortedNames(m) {
		entries = append(entries, FacetEntry{CardID: cardID, Name: name, Content: m[name]})
	}
	return entries
}

// sortedNames returns the map's tags in a stable order.
func sortedNames(m models.FacetMap) []models.FacetName {
	names := make([]models.FacetName, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
