package reconcile

import (
	"testing"

	"github.com/GoCardsEdu/GoCards-API/feature/card/models"

	"github.com/stretchr/testify/assert"
)

func TestPlanFacets_NewTagIsCreated(t *testing.T) {
	plan := PlanFacets(
		[]CardFacets{{CardID: "c1", Desired: models.FacetMap{models.FacetTerm: "hello"}}},
		nil,
	)

	if assert.Len(t, plan.Creates, 1) {
		assert.Equal(t, FacetEntry{CardID: "c1", Name: models.FacetTerm, Content: "hello"}, plan.Creates[0])
	}
	assert.Empty(t, plan.Updates)
	assert.Empty(t, plan.Deletes)
}

func TestPlanFacets_ExistingTagIsBlindlyOverwritten(t *testing.T) {
	existing := []FacetEntry{{CardID: "c1", Name: models.FacetTerm, Content: "hello"}}

	// Same content; the overwrite is still queued as an update.
	plan := PlanFacets(
		[]CardFacets{{CardID: "c1", Desired: models.FacetMap{models.FacetTerm: "hello"}}},
		existing,
	)

	assert.Empty(t, plan.Creates)
	if assert.Len(t, plan.Updates, 1) {
		assert.Equal(t, "hello", plan.Updates[0].Content)
	}
	assert.Empty(t, plan.Deletes)
}

func TestPlanFacets_AbandonedTagIsDeleted(t *testing.T) {
	existing := []FacetEntry{{CardID: "c1", Name: models.FacetTerm, Content: "hello"}}

	plan := PlanFacets([]CardFacets{{CardID: "c1", Desired: nil}}, existing)

	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Updates)
	if assert.Len(t, plan.Deletes, 1) {
		assert.Equal(t, models.FacetTerm, plan.Deletes[0].Name)
	}
}

func TestPlanFacets_NoEntryInBothUpdateAndDelete(t *testing.T) {
	existing := []FacetEntry{
		{CardID: "c1", Name: "term", Content: "old"},
		{CardID: "c1", Name: "hint", Content: "obsolete"},
	}

	plan := PlanFacets(
		[]CardFacets{{CardID: "c1", Desired: models.FacetMap{"term": "new", "example": "fresh"}}},
		existing,
	)

	assert.Len(t, plan.Creates, 1)
	assert.Len(t, plan.Updates, 1)
	assert.Len(t, plan.Deletes, 1)

	assert.Equal(t, models.FacetName("example"), plan.Creates[0].Name)
	assert.Equal(t, models.FacetName("term"), plan.Updates[0].Name)
	assert.Equal(t, "new", plan.Updates[0].Content)
	assert.Equal(t, models.FacetName("hint"), plan.Deletes[0].Name)
}

func TestPlanFacets_BatchesAcrossCards(t *testing.T) {
	existing := []FacetEntry{
		{CardID: "c1", Name: models.FacetTerm, Content: "one"},
		{CardID: "c2", Name: models.FacetTerm, Content: "two"},
	}

	plan := PlanFacets(
		[]CardFacets{
			{CardID: "c1", Desired: models.FacetMap{models.FacetTerm: "one-changed"}},
			{CardID: "c2", Desired: nil},
			{CardID: "c3", Desired: models.FacetMap{models.FacetTerm: "three"}},
		},
		existing,
	)

	assert.Len(t, plan.Updates, 1)
	assert.Len(t, plan.Deletes, 1)
	assert.Len(t, plan.Creates, 1)
	assert.Equal(t, "c1", plan.Updates[0].CardID)
	assert.Equal(t, "c2", plan.Deletes[0].CardID)
	assert.Equal(t, "c3", plan.Creates[0].CardID)
}

func TestPlanFacets_EmptyDesiredMapDeletesEverything(t *testing.T) {
	existing := []FacetEntry{
		{CardID: "c1", Name: "term", Content: "a"},
		{CardID: "c1", Name: "hint", Content: "b"},
	}

	plan := PlanFacets([]CardFacets{{CardID: "c1", Desired: models.FacetMap{}}}, existing)

	assert.Empty(t, plan.Creates)
	assert.Empty(t, plan.Updates)
	assert.Len(t, plan.Deletes, 2)
}

func TestEntriesFromMap_StableOrder(t *testing.T) {
	m := models.FacetMap{"zeta": "z", "alpha": "a", "mid": "m"}

	entries := EntriesFromMap("c1", m)

	assert.Equal(t, []FacetEntry{
		{CardID: "c1", Name: "alpha", Content: "a"},
		{CardID: "c1", Name: "mid", Content: "m"},
		{CardID: "c1", Name: "zeta", Content: "z"},
	}, entries)
}
