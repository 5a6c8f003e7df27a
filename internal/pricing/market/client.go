// Package market looks up current material prices through a chat-completion
// API. All unresolved items are batched into a single request; the model is
// instructed to answer with strict JSON that maps back to the request items
// by id or name.
package market

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/diaz199379-ctrl/quickquote-app-sub000/internal/domain"
)

const defaultBaseURL = "https://api.openai.com/v1/chat/completions"

// ErrNoAPIKey is returned when the client was constructed without a key;
// callers treat it like any other request-level failure and fall back.
var ErrNoAPIKey = errors.New("market: api key not configured")

const systemPrompt = `You are a construction materials pricing expert. Given a list of
materials and a US ZIP code, estimate the current per-unit contractor price for
each material in that region. Respond with JSON only, no prose, shaped exactly:
{"materials": [{"material_id": string, "material_name": string,
"quantity": number, "unit": string, "unit_price": number,
"total_price": number, "confidence": "high"|"medium"|"low", "notes": string}]}`

// Quote is one priced material in the model's response.
type Quote struct {
	MaterialID   string  `json:"material_id"`
	MaterialName string  `json:"material_name"`
	Quantity     float64 `json:"quantity"`
	Unit         string  `json:"unit"`
	UnitPrice    float64 `json:"unit_price"`
	TotalPrice   float64 `json:"total_price"`
	Confidence   string  `json:"confidence"`
	Notes        string  `json:"notes"`
}

type quoteEnvelope struct {
	Materials []Quote `json:"materials"`
}

// request types mirror the chat-completions API structure.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type request struct {
	Model    string    `json:"model"`
	Messages []message `json:"messages"`
}

type response struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// statusError is a non-2xx API reply. 429 and 5xx are transient.
type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("market api returned status %d: %s", e.code, e.body)
}

func (e *statusError) transient() bool {
	return e.code == http.StatusTooManyRequests || e.code >= 500
}

type Client struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey: apiKey,
		model:  model,
		// 30s covers a large batch completion; the retry below handles
		// transient failures with one backed-off second attempt.
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: defaultBaseURL,
	}
}

// QuoteBatch prices every item in one request. It returns an error for
// request-level failures (missing key, network, non-2xx, unparseable body);
// a well-formed response is returned as-is even when it omits some items,
// so partial successes are preserved by the caller.
func (c *Client) QuoteBatch(ctx context.Context, items []domain.MaterialItem, zipCode string) ([]Quote, error) {
	if c.apiKey == "" {
		return nil, ErrNoAPIKey
	}

	body := request{
		Model: c.model,
		Messages: []message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildUserMessage(items, zipCode)},
		},
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var content string
	backoff := retry.WithMaxRetries(1, retry.NewExponential(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		out, err := c.complete(ctx, payload)
		if err != nil {
			var se *statusError
			if errors.As(err, &se) && !se.transient() {
				return err
			}
			return retry.RetryableError(err)
		}
		content = out
		return nil
	})
	if err != nil {
		return nil, err
	}

	return parseQuotes(content)
}

func (c *Client) complete(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call market api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &statusError{code: resp.StatusCode, body: strings.TrimSpace(string(errBody))}
	}

	var respBody response
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if len(respBody.Choices) == 0 {
		return "", errors.New("market api returned no choices")
	}
	return respBody.Choices[0].Message.Content, nil
}

func buildUserMessage(items []domain.MaterialItem, zipCode string) string {
	var b strings.Builder
	if zipCode != "" {
		fmt.Fprintf(&b, "ZIP code: %s\n", zipCode)
	}
	b.WriteString("Materials:\n")
	for _, it := range items {
		fmt.Fprintf(&b, "- id=%s | %s | %g %s", it.ID, it.Name, it.Quantity, it.Unit)
		if it.Description != "" {
			fmt.Fprintf(&b, " | %s", it.Description)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// parseQuotes decodes the model reply. Any structural deviation (no JSON
// object, missing materials key, non-numeric price fields) is a parse
// failure; individual entries with out-of-range prices are dropped without
// failing the batch.
func parseQuotes(content string) ([]Quote, error) {
	raw, err := extractJSON(content)
	if err != nil {
		return nil, err
	}

	var envelope quoteEnvelope
	if err := json.Unmarshal([]byte(raw), &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse market response: %w", err)
	}
	if envelope.Materials == nil {
		return nil, errors.New("market response missing materials key")
	}

	quotes := make([]Quote, 0, len(envelope.Materials))
	for _, q := range envelope.Materials {
		if q.UnitPrice < 0 || math.IsNaN(q.UnitPrice) || math.IsInf(q.UnitPrice, 0) {
			continue
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// extractJSON trims markdown code fences and any prose around the outermost
// JSON object. Models occasionally wrap the payload despite the JSON-only
// instruction.
func extractJSON(content string) (string, error) {
	start := strings.IndexByte(content, '{')
	end := strings.LastIndexByte(content, '}')
	if start < 0 || end <= start {
		return "", errors.New("market response contains no JSON object")
	}
	return content[start : end+1], nil
}
