package models

import (
	"maps"
	"time"
)

// FacetName identifies one keyed content slot of a card side. The set of
// valid names is a closed enumeration: a front currently carries a term, a
// back a definition. New names can be added without migrating the card row.
type FacetName string

const (
	// FacetTerm is the front-side facet holding the term to learn.
	FacetTerm FacetName = "term"
	// FacetDefinition is the back-side facet holding the definition.
	FacetDefinition FacetName = "definition"
)

// FacetMap is one card side's content, keyed by facet name.
type FacetMap map[FacetName]string

// Equal reports whether both maps carry the same entries. A nil map equals
// an empty one.
func (m FacetMap) Equal(other FacetMap) bool {
	return maps.Equal(m, other)
}

// Card is a fully resolved card: identity plus facet content.
type Card struct {
	ID        string    `json:"id"`
	Ordinal   int       `json:"ordinal"`
	Front     FacetMap  `json:"front"`
	Back      FacetMap  `json:"back"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ContentEqual reports whether two cards carry the same id, ordinal and facet
// content. Timestamps are excluded so a resubmitted identical card is not
// classified as changed.
func (c Card) ContentEqual(other Card) bool {
	return c.ID == other.ID &&
		c.Ordinal == other.Ordinal &&
		c.Front.Equal(other.Front) &&
		c.Back.Equal(other.Back)
}

// CardRow is the gorm mapping for the cards table. Facet content lives in
// the card_fronts and card_backs tables.
type CardRow struct {
	ID        string    `gorm:"column:id;primaryKey"`
	DeckID    string    `gorm:"column:deck_id;index;not null"`
	Ordinal   int       `gorm:"column:ordinal"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName overrides the table name.
func (CardRow) TableName() string {
	return "cards"
}

// CardFrontRow is one persisted front facet.
type CardFrontRow struct {
	CardID  string `gorm:"column:card_id;primaryKey"`
	Name    string `gorm:"column:name;primaryKey"`
	Content string `gorm:"column:content"`
}

// TableName overrides the table name.
func (CardFrontRow) TableName() string {
	return "card_fronts"
}

// CardBackRow is one persisted back facet.
type CardBackRow struct {
	CardID  string `gorm:"column:card_id;primaryKey"`
	Name    string `gorm:"column:name;primaryKey"`
	Content string `gorm:"column:content"`
}

// TableName overrides the table name.
func (CardBackRow) TableName() string {
	return "card_backs"
}
