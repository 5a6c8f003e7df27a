package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

func testItems() []domain.MaterialItem {
	return []domain.MaterialItem{
		{ID: "deck-001", Name: "Pressure-treated decking boards", Quantity: 276, Unit: "sq ft", Description: "standard grade"},
		{ID: "deck-002", Name: "2x10 pressure-treated joist", Quantity: 16, Unit: "each"},
	}
}

// chatResponse wraps assistant content in a chat-completions reply body.
func chatResponse(t *testing.T, content string) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]any{
		"choices": []any{
			map[string]any{"message": map[string]any{"role": "assistant", "content": content}},
		},
	})
	require.NoError(t, err)
	return body
}

func newTestClient(url string) *Client {
	c := NewClient("test-key", "test-model")
	c.baseURL = url
	return c
}

func TestQuoteBatchSuccess(t *testing.T) {
	content := `{"materials": [
		{"material_id": "deck-001", "material_name": "Pressure-treated decking boards",
		 "quantity": 276, "unit": "sq ft", "unit_price": 4.85, "total_price": 1338.6,
		 "confidence": "high", "notes": "regional average"},
		{"material_id": "deck-002", "material_name": "2x10 pressure-treated joist",
		 "quantity": 16, "unit": "each", "unit_price": 19.25, "total_price": 308,
		 "confidence": "medium", "notes": ""}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Contains(t, req.Messages[1].Content, "ZIP code: 97202")
		assert.Contains(t, req.Messages[1].Content, "id=deck-001")
		assert.Contains(t, req.Messages[1].Content, "276 sq ft")

		_, _ = w.Write(chatResponse(t, content))
	}))
	defer srv.Close()

	quotes, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "97202")
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	assert.Equal(t, "deck-001", quotes[0].MaterialID)
	assert.Equal(t, 4.85, quotes[0].UnitPrice)
	assert.Equal(t, "high", quotes[0].Confidence)
}

func TestQuoteBatchParsesFencedJSON(t *testing.T) {
	content := "Here are the prices:\n```json\n" +
		`{"materials": [{"material_id": "deck-001", "unit_price": 4.85, "confidence": "high"}]}` +
		"\n```"

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, content))
	}))
	defer srv.Close()

	quotes, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, 4.85, quotes[0].UnitPrice)
}

func TestQuoteBatchDropsInvalidPrices(t *testing.T) {
	content := `{"materials": [
		{"material_id": "deck-001", "unit_price": 4.85, "confidence": "high"},
		{"material_id": "deck-002", "unit_price": -3, "confidence": "high"}
	]}`

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, content))
	}))
	defer srv.Close()

	quotes, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "deck-001", quotes[0].MaterialID)
}

func TestQuoteBatchMissingMaterialsKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, `{"prices": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	assert.ErrorContains(t, err, "missing materials key")
}

func TestQuoteBatchNoJSONInReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(chatResponse(t, "I cannot price these materials."))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	assert.ErrorContains(t, err, "no JSON object")
}

func TestQuoteBatchClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, `{"error": "invalid model"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	assert.ErrorContains(t, err, "status 400")
	assert.Equal(t, int32(1), calls.Load())
}

func TestQuoteBatchRetriesTransientError(t *testing.T) {
	content := `{"materials": [{"material_id": "deck-001", "unit_price": 4.85, "confidence": "high"}]}`

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "upstream overloaded", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write(chatResponse(t, content))
	}))
	defer srv.Close()

	quotes, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, int32(2), calls.Load())
}

func TestQuoteBatchNoAPIKey(t *testing.T) {
	c := NewClient("", "test-model")
	_, err := c.QuoteBatch(context.Background(), testItems(), "97202")
	assert.ErrorIs(t, err, ErrNoAPIKey)
}

func TestQuoteBatchNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).QuoteBatch(context.Background(), testItems(), "")
	assert.ErrorContains(t, err, "no choices")
}

func TestBuildUserMessage(t *testing.T) {
	msg := buildUserMessage(testItems(), "97202")

	assert.Contains(t, msg, "ZIP code: 97202")
	assert.Contains(t, msg, "- id=deck-001 | Pressure-treated decking boards | 276 sq ft | standard grade")
	assert.Contains(t, msg, "- id=deck-002 | 2x10 pressure-treated joist | 16 each")

	noZip := buildUserMessage(testItems(), "")
	assert.NotContains(t, noZip, "ZIP code")
}
