package extraction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMalformedReply is returned when the model's reply cannot be decoded as a
// single JSON object. Callers should treat it as "retry with different input",
// not as a transport failure.
var ErrMalformedReply = errors.New("extraction reply is not a JSON object")

// Fields is the transient result of one extraction call. All fields are
// optional; missing keys in the reply decode to empty strings. Date is always
// discarded downstream in favor of the user-supplied date.
type Fields struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Store  string `json:"store"`
}

const extractionInstruction = "Extract the date, amount, and store name from the following transaction message " +
	"and return in JSON format as {\"date\": \"\", \"amount\": \"\", \"store\": \"\"}.\n" +
	"Return ONLY valid raw JSON. Do NOT wrap the response in code fences."

// Client extracts structured expense fields from free text using Gemini.
type Client struct {
	client *genai.Client
	model  string
}

// NewClient creates an extraction client with an explicit API key so tests and
// callers never depend on ambient credentials.
func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("extraction.NewClient: create genai client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Extract sends one message to the model with the fixed instruction and
// decodes the reply. One shot: no conversation history, no retries.
func (c *Client) Extract(ctx context.Context, message string) (Fields, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: extractionInstruction},
				{Text: message},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return Fields{}, fmt.Errorf("extraction.Extract: generate content: %w", err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return Fields{}, fmt.Errorf("extraction.Extract: empty response from model")
	}

	return parseFields(rawText)
}

// parseFields decodes one JSON object out of the raw model reply.
func parseFields(raw string) (Fields, error) {
	clean := cleanReplyJSON(raw)

	var fields Fields
	if err := json.Unmarshal([]byte(clean), &fields); err != nil {
		return Fields{}, fmt.Errorf("%w: %v\nraw response: %s", ErrMalformedReply, err, raw)
	}
	return fields, nil
}

// cleanReplyJSON strips whitespace and Markdown fences the model may emit
// despite instructions, then keeps only the first-'{'-to-last-'}' substring so
// an object embedded in surrounding prose still decodes.
func cleanReplyJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		// Drop the first line (``` or ```json).
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	// Remove trailing ``` if present.
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
