package card

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/GoCardsEdu/GoCards-API/feature/card/models"
	"github.com/GoCardsEdu/GoCards-API/feature/deck"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupHandlerApp(t *testing.T) (*fiber.App, *gorm.DB, *deck.Store, *Store) {
	t.Helper()

	db, decks, cards := setupServiceDB(t)
	service := NewService(db, decks, cards, zap.NewNop())
	handler := NewHandler(service, cards, decks, zap.NewNop())

	app := fiber.New()
	handler.RegisterRoutes(app)
	return app, db, decks, cards
}

func putCards(t *testing.T, app *fiber.App, deckID string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/deck/"+deckID+"/cards", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeCards(t *testing.T, resp *http.Response) []models.UpdateCardResponse {
	t.Helper()

	var out []models.UpdateCardResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func strPtr(s string) *string { return &s }

func requestCard(id *string, clientID, term, definition string) models.UpdateCardRequest {
	return models.UpdateCardRequest{
		ID:       id,
		ClientID: clientID,
		Front:    &models.CardFrontPayload{Term: strPtr(term)},
		Back:     &models.CardBackPayload{Definition: strPtr(definition)},
	}
}

func TestHandler_FetchCards_UnknownDeck(t *testing.T) {
	app, _, _, _ := setupHandlerApp(t)

	req := httptest.NewRequest(http.MethodGet, "/deck/nope/cards", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_FetchCards_EmptyDeck(t *testing.T) {
	app, _, decks, _ := setupHandlerApp(t)
	require.NoError(t, decks.Create(context.Background(), "d1", "Spanish", time.Now().UTC()))

	req := httptest.NewRequest(http.MethodGet, "/deck/d1/cards", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestHandler_UpdateCards_CreatesAndEchoesClientIDs(t *testing.T) {
	app, _, decks, _ := setupHandlerApp(t)
	require.NoError(t, decks.Create(context.Background(), "d1", "Spanish", time.Now().UTC()))

	resp := putCards(t, app, "d1", []models.UpdateCardRequest{
		requestCard(nil, "tmp-1", "perro", "dog"),
		requestCard(nil, "tmp-2", "gato", "cat"),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cards := decodeCards(t, resp)
	require.Len(t, cards, 2)

	assert.NotEmpty(t, cards[0].ID)
	assert.Equal(t, "tmp-1", cards[0].ClientID)
	assert.Equal(t, 1, cards[0].Ordinal)
	assert.Equal(t, models.FacetMap{models.FacetTerm: "perro"}, cards[0].Front)
	assert.Equal(t, models.FacetMap{models.FacetDefinition: "dog"}, cards[0].Back)

	assert.Equal(t, "tmp-2", cards[1].ClientID)
	assert.Equal(t, 2, cards[1].Ordinal)
	assert.NotEqual(t, cards[0].ID, cards[1].ID)
}

func TestHandler_UpdateCards_RoundTrip(t *testing.T) {
	app, _, decks, _ := setupHandlerApp(t)
	require.NoError(t, decks.Create(context.Background(), "d1", "Spanish", time.Now().UTC()))

	resp := putCards(t, app, "d1", []models.UpdateCardRequest{
		requestCard(nil, "tmp-1", "perro", "dog"),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	created := decodeCards(t, resp)
	require.Len(t, created, 1)

	// Resubmit under the persisted id with edited content and one new card.
	resp = putCards(t, app, "d1", []models.UpdateCardRequest{
		requestCard(&created[0].ID, "", "perro", "hound"),
		requestCard(nil, "tmp-2", "gato", "cat"),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	cards := decodeCards(t, resp)
	require.Len(t, cards, 2)
	assert.Equal(t, created[0].ID, cards[0].ID)
	assert.Equal(t, models.FacetMap{models.FacetDefinition: "hound"}, cards[0].Back)
	assert.Equal(t, "tmp-2", cards[1].ClientID)
}

func TestHandler_UpdateCards_UnknownDeck(t *testing.T) {
	app, _, _, _ := setupHandlerApp(t)

	resp := putCards(t, app, "nope", []models.UpdateCardRequest{
		requestCard(nil, "", "perro", "dog"),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_UpdateCards_UnknownCardID(t *testing.T) {
	app, db, decks, _ := setupHandlerApp(t)
	require.NoError(t, decks.Create(context.Background(), "d1", "Spanish", time.Now().UTC()))

	resp := putCards(t, app, "d1", []models.UpdateCardRequest{
		requestCard(strPtr("ghost"), "", "perro", "dog"),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// The whole request is rejected before any write.
	assert.EqualValues(t, 0, countRows(t, db, &models.CardRow{}))
}

func TestHandler_UpdateCards_RejectsForeignCardID(t *testing.T) {
	app, _, decks, _ := setupHandlerApp(t)
	ctx := context.Background()
	require.NoError(t, decks.Create(ctx, "d1", "Spanish", time.Now().UTC()))
	require.NoError(t, decks.Create(ctx, "d2", "French", time.Now().UTC()))

	resp := putCards(t, app, "d1", []models.UpdateCardRequest{
		requestCard(nil, "", "perro", "dog"),
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	created := decodeCards(t, resp)
	require.Len(t, created, 1)

	// Another deck cannot claim the card by id.
	resp = putCards(t, app, "d2", []models.UpdateCardRequest{
		requestCard(&created[0].ID, "", "chien", "dog"),
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandler_UpdateCards_MalformedBody(t *testing.T) {
	app, _, decks, _ := setupHandlerApp(t)
	require.NoError(t, decks.Create(context.Background(), "d1", "Spanish", time.Now().UTC()))

	req := httptest.NewRequest(http.MethodPut, "/deck/d1/cards", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
