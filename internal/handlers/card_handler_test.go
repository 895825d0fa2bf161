package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cardBody = `{
	"card_holder_name": "JOHN DOE",
	"card_number": "4111111111111111",
	"expiry_date": "12/27",
	"cvv": "123",
	"card_type": "visa"
}`

func createCard(t *testing.T, router http.Handler, token string) uint {
	t.Helper()
	rr := doJSON(t, router, http.MethodPost, "/api/cards", token, cardBody)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var resp struct {
		ID uint `json:"id"`
	}
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&resp))
	require.NotZero(t, resp.ID)
	return resp.ID
}

func TestCards_CreateAndList(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerUser(t, router, "cards@example.com")

	rr := doJSON(t, router, http.MethodPost, "/api/cards", token, cardBody)
	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var created map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&created))
	// в ответе создания только маска, без полного номера и CVV
	assert.Equal(t, "**** **** **** 1111", created["card_number_masked"])
	_, hasPlain := created["card_number_plain"]
	assert.False(t, hasPlain)

	rr = doJSON(t, router, http.MethodGet, "/api/cards", token, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var cards []map[string]any
	require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "4111111111111111", cards[0]["card_number_plain"])
	assert.Equal(t, "123", cards[0]["cvv_plain"])
	assert.Equal(t, "**** **** **** 1111", cards[0]["card_number_masked"])
}

func TestCards_Validation(t *testing.T) {
	router, _ := newTestRouter(t)
	token := registerUser(t, router, "badcards@example.com")

	t.Run("non-numeric number", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/cards", token,
			`{"card_holder_name":"X","card_number":"not-a-number","expiry_date":"12/27","cvv":"123","card_type":"visa"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("short cvv", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPost, "/api/cards", token,
			`{"card_holder_name":"X","card_number":"4111111111111111","expiry_date":"12/27","cvv":"1","card_type":"visa"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// Чужая карта неотличима от несуществующей: везде 404.
func TestCards_OwnershipIsolation(t *testing.T) {
	router, _ := newTestRouter(t)
	ownerToken := registerUser(t, router, "owner@example.com")
	strangerToken := registerUser(t, router, "stranger@example.com")

	cardID := createCard(t, router, ownerToken)
	idPath := "/api/cards/" + uitoa(cardID)

	t.Run("stranger sees empty list", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodGet, "/api/cards", strangerToken, "")
		assert.Equal(t, http.StatusOK, rr.Code)
		var cards []map[string]any
		require.NoError(t, json.NewDecoder(bytes.NewReader(rr.Body.Bytes())).Decode(&cards))
		assert.Empty(t, cards)
	})

	t.Run("stranger update -> 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodPut, idPath, strangerToken, cardBody)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("stranger delete -> 404", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, idPath, strangerToken, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("missing id for the owner looks the same", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, "/api/cards/99999", ownerToken, "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("owner still can delete", func(t *testing.T) {
		rr := doJSON(t, router, http.MethodDelete, idPath, ownerToken, "")
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}
