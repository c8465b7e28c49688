package smsparse

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiParser implements Parser against the Gemini generateContent API,
// asking for a JSON response constrained to the ParsedSMS schema.
type GeminiParser struct {
	baseURL string
	model   string
	apiKey  string
	client  *http.Client
}

// NewGeminiParser creates a parser using the given API key and model name.
func NewGeminiParser(apiKey, model string) *GeminiParser {
	return &GeminiParser{
		baseURL: defaultBaseURL,
		model:   model,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
	Config   genConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMimeType string `json:"responseMimeType"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Parse sends the SMS text to the model and decodes the structured guess.
// Any transport, API, or decode failure maps to ErrParseFailed so callers
// surface a retry option instead of a half-parsed transaction.
func (p *GeminiParser) Parse(ctx context.Context, text string) (*ParsedSMS, error) {
	prompt := fmt.Sprintf(
		`Parse this Indian bank/UPI SMS and extract transaction details as JSON with keys `+
			`type ("debit" or "credit"), amount, merchant, date, account, category. SMS: %q`, text)

	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		Config:   genConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", p.baseURL, p.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		slog.Warn("sms parse request failed", "error", err)
		return nil, ErrParseFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		slog.Warn("sms parse request rejected", "status", resp.StatusCode, "body", string(body))
		return nil, ErrParseFailed
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Warn("sms parse response undecodable", "error", err)
		return nil, ErrParseFailed
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return nil, ErrParseFailed
	}

	var parsed ParsedSMS
	if err := json.Unmarshal([]byte(out.Candidates[0].Content.Parts[0].Text), &parsed); err != nil {
		slog.Warn("sms parse result undecodable", "error", err)
		return nil, ErrParseFailed
	}
	if parsed.Amount <= 0 || (parsed.Type != "debit" && parsed.Type != "credit") {
		return nil, ErrParseFailed
	}
	return &parsed, nil
}
