package models

import (
	"time"

	"github.com/google/uuid"
)

// CardFrontPayload is the wire shape of a card's front side.
type CardFrontPayload struct {
	Term *string `json:"term"`
}

// CardBackPayload is the wire shape of a card's back side.
type CardBackPayload struct {
	Definition *string `json:"definition"`
}

// UpdateCardRequest is one entry of the PUT /deck/:deckId/cards body. A
// missing id requests creation under a generated id. ClientID is an opaque
// caller token echoed back so clients can match generated ids to their own.
type UpdateCardRequest struct {
	ID       *string           `json:"id"`
	ClientID string            `json:"clientId,omitempty"`
	Front    *CardFrontPayload `json:"front"`
	Back     *CardBackPayload  `json:"back"`
}

// UpdateCardResponse is one entry of the PUT /deck/:deckId/cards response.
type UpdateCardResponse struct {
	ID        string    `json:"id"`
	ClientID  string    `json:"clientId,omitempty"`
	Ordinal   int       `json:"ordinal"`
	Front     FacetMap  `json:"front"`
	Back      FacetMap  `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToDomain converts request entries into domain cards. The ordinal is the
// 1-based position in the request list. Cards without an id receive a
// generated one; clientIDs records the request's clientId under the final
// card id for response mapping.
func ToDomain(requests []UpdateCardRequest, clientIDs map[string]string) []Card {
	cards := make([]Card, 0, len(requests))
	for i, req := range requests {
		id := uuid.NewString()
		if req.ID != nil {
			id = *req.ID
		}
		if clientIDs != nil && req.ClientID != "" {
			clientIDs[id] = req.ClientID
		}

		card := Card{
			ID:      id,
			Ordinal: i + 1,
		}
		if req.Front != nil && req.Front.Term != nil {
			card.Front = FacetMap{FacetTerm: *req.Front.Term}
		}
		if req.Back != nil && req.Back.Definition != nil {
			card.Back = FacetMap{FacetDefinition: *req.Back.Definition}
		}
		cards = append(cards, card)
	}
	return cards
}

// ResponseFromDomain builds the response entry for a resolved card.
func ResponseFromDomain(card Card, clientIDs map[string]string) UpdateCardResponse {
	return UpdateCardResponse{
		ID:        card.ID,
		ClientID:  clientIDs[card.ID],
		Ordinal:   card.Ordinal,
		Front:     card.Front,
		Back:      card.Back,
		CreatedAt: card.CreatedAt,
		UpdatedAt: card.UpdatedAt,
	}
}
