package card

import (
	"context"
	"errors"

	"github.com/GoCardsEdu/GoCards-API/core/logger"
	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
	"github.com/GoCardsEdu/GoCards-API/feature/deck"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for a deck's cards.
type Handler struct {
	service *Service
	store   *Store
	decks   *deck.Store
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, store *Store, decks *deck.Store, log *zap.Logger) *Handler {
	return &Handler{service: service, store: store, decks: decks, logger: log}
}

// RegisterRoutes registers the card routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/deck/:deckId/cards")
	group.Get("/", h.HandleFetchCards)
	group.Put("/", h.HandleUpdateCards)
}

// HandleFetchCards returns the deck's resolved cards in ordinal order.
// @Summary Fetch Cards
// @Description List a deck's cards with their facet content.
// @Tags cards
// @Accept json
// @Produce json
// @Param deckId path string true "Deck ID"
// @Success 200 {array} models.Card "Cards"
// @Failure 404 {object} map[string]string "Deck not found"
// @Router /deck/{deckId}/cards [get]
func (h *Handler) HandleFetchCards(c *fiber.Ctx) error {
	deckID := c.Params("deckId")
	l := logger.WithRayID(h.logger, c)

	if _, err := h.decks.Find(c.Context(), deckID); err != nil {
		return h.fail(c, l, err)
	}

	cards, err := h.store.FindByDeck(c.Context(), deckID)
	if err != nil {
		return h.fail(c, l, err)
	}
	if cards == nil {
		cards = []models.Card{}
	}
	return c.JSON(cards)
}

// HandleUpdateCards replaces the deck's entire card set.
// @Summary Replace Cards
// @Description Atomically replace the full card set of a deck.
// @Tags cards
// @Accept json
// @Produce json
// @Param deckId path string true "Deck ID"
// @Param request body []models.UpdateCardRequest true "Desired card list"
// @Success 200 {array} models.UpdateCardResponse "Resolved cards after the replace"
// @Failure 404 {object} map[string]string "Deck or card not found"
// @Router /deck/{deckId}/cards [put]
func (h *Handler) HandleUpdateCards(c *fiber.Ctx) error {
	deckID := c.Params("deckId")
	l := logger.WithRayID(h.logger, c)

	var requests []models.UpdateCardRequest
	if err := c.BodyParser(&requests); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Both validations run before the engine so it never partially applies a
	// set containing unknown ids.
	if _, err := h.decks.Find(c.Context(), deckID); err != nil {
		return h.fail(c, l, err)
	}
	if err := h.validateCardIDs(c.Context(), deckID, requests); err != nil {
		return h.fail(c, l, err)
	}

	clientIDs := make(map[string]string)
	desired := models.ToDomain(requests, clientIDs)

	if err := h.service.Replace(c.Context(), deckID, desired); err != nil {
		return h.fail(c, l, err)
	}

	cards, err := h.store.FindByDeck(c.Context(), deckID)
	if err != nil {
		return h.fail(c, l, err)
	}

	responses := make([]models.UpdateCardResponse, 0, len(cards))
	for _, card := range cards {
		responses = append(responses, models.ResponseFromDomain(card, clientIDs))
	}
	return c.JSON(responses)
}

// validateCardIDs rejects any client-supplied id that does not belong to the
// deck. Ids belonging to another deck are invisible here and rejected the
// same way, so a replace against one deck can never claim another deck's
// cards.
func (h *Handler) validateCardIDs(ctx context.Context, deckID string, requests []models.UpdateCardRequest) error {
	existing, err := h.store.IDsByDeck(ctx, deckID)
	if err != nil {
		return err
	}

	var invalid []string
	for _, req := range requests {
		if req.ID == nil {
			continue
		}
		if _, ok := existing[*req.ID]; !ok {
			invalid = append(invalid, *req.ID)
		}
	}

	if len(invalid) > 0 {
		return notFoundError(invalid)
	}
	return nil
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, deck.ErrNotFound) || errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Card request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
