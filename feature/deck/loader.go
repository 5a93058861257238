package deck

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	store   *Store
	service *Service
	handler *Handler
}

// NewFeature creates the deck feature.
func NewFeature(db *gorm.DB, log *zap.Logger) *Feature {
	store := NewStore(db)
	svc := NewService(store)
	h := NewHandler(svc, log)
	return &Feature{store: store, service: svc, handler: h}
}

// Store exposes the deck store so other features can validate deck existence
// and participate in the deck row lock.
func (f *Feature) Store() *Store {
	return f.store
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "deck"
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
