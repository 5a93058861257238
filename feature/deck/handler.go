package deck

import (
	"errors"

	"github.com/GoCardsEdu/GoCards-API/core/logger"
	"github.com/GoCardsEdu/GoCards-API/feature/deck/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for decks.
type Handler struct {
	service  *Service
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, log *zap.Logger) *Handler {
	return &Handler{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   log,
	}
}

// RegisterRoutes registers the deck routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/deck")
	group.Post("/", h.HandleCreateDeck)
	group.Get("/:id", h.HandleFindDeck)
	group.Put("/:id", h.HandleUpdateDeck)
}

// HandleFindDeck returns a single deck.
// @Summary Get Deck
// @Description Fetch a deck by its id.
// @Tags deck
// @Accept json
// @Produce json
// @Param id path string true "Deck ID"
// @Success 200 {object} models.DeckResponse "Deck"
// @Failure 404 {object} map[string]string "Deck not found"
// @Router /deck/{id} [get]
func (h *Handler) HandleFindDeck(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.logger, c)

	deck, err := h.service.Find(c.Context(), id)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(models.ResponseFromDomain(*deck))
}

// HandleCreateDeck creates a new deck.
// @Summary Create Deck
// @Description Create a deck with a generated id.
// @Tags deck
// @Accept json
// @Produce json
// @Param request body models.DeckRequest true "Deck payload"
// @Success 201 {object} models.DeckResponse "Created deck"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Router /deck [post]
func (h *Handler) HandleCreateDeck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	req, err := h.parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	deck, err := h.service.Create(c.Context(), req.Name)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.Status(fiber.StatusCreated).JSON(models.ResponseFromDomain(*deck))
}

// HandleUpdateDeck renames an existing deck.
// @Summary Update Deck
// @Description Rename a deck and bump its updated_at timestamp.
// @Tags deck
// @Accept json
// @Produce json
// @Param id path string true "Deck ID"
// @Param request body models.DeckRequest true "Deck payload"
// @Success 200 {object} models.DeckResponse "Updated deck"
// @Failure 400 {object} map[string]string "Invalid payload"
// @Failure 404 {object} map[string]string "Deck not found"
// @Router /deck/{id} [put]
func (h *Handler) HandleUpdateDeck(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRayID(h.logger, c)

	req, err := h.parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	deck, err := h.service.Rename(c.Context(), id, req.Name)
	if err != nil {
		return h.fail(c, l, err)
	}
	return c.JSON(models.ResponseFromDomain(*deck))
}

func (h *Handler) parseRequest(c *fiber.Ctx) (*models.DeckRequest, error) {
	var req models.DeckRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, err
	}
	if err := h.validate.Struct(req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (h *Handler) fail(c *fiber.Ctx, l *zap.Logger, err error) error {
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	l.Error("Deck request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
