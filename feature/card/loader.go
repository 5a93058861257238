package card

import (
	"github.com/GoCardsEdu/GoCards-API/feature/deck"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the card feature. It shares the deck store so replace
// transactions lock the same deck rows deck CRUD operates on.
func NewFeature(db *gorm.DB, decks *deck.Store, log *zap.Logger) *Feature {
	store := NewStore(db)
	svc := NewService(db, decks, store, log)
	h := NewHandler(svc, store, decks, log)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "card"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
