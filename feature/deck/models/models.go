package models

import "time"

// Deck is a named collection of cards.
type Deck struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// DeckRow is the gorm mapping for the decks table.
type DeckRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	Name      string    `gorm:"column:name;size:50;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (DeckRow) TableName() string {
	return "decks"
}

// ToDomain converts the row to the domain type.
func (r DeckRow) ToDomain() Deck {
	return Deck{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// DeckRequest is the payload for creating or renaming a deck.
type DeckRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// DeckResponse is the serialized deck returned by the API.
type DeckResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ResponseFromDomain builds the API representation of a deck.
func ResponseFromDomain(d Deck) DeckResponse {
	return DeckResponse{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
