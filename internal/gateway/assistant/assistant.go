// Package assistant talks to the external generative-text service behind the
// route-optimization and email-organization endpoints. The service is a
// black box: we send a prompt, demand strict JSON back, and treat anything
// we cannot validate as an external failure.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"logistics-dashboard-service/internal/domain"
	"logistics-dashboard-service/internal/logx"
)

// Gateway is the assistant contract consumed by the HTTP handlers.
type Gateway interface {
	OptimizeRoutes(ctx context.Context, routes []domain.Route) ([]domain.RouteSuggestion, error)
	OrganizeEmails(ctx context.Context, emails []domain.Email) ([]domain.OrganizedEmail, error)
}

// StatusError is a non-2xx answer from the assistant API.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("assistant: status %d: %s", e.Code, e.Body)
}

// Temporary reports whether the status is worth retrying.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Config stores assistant client settings.
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client is the plain HTTP implementation of Gateway.
type Client struct {
	httpClient *http.Client
	cfg        Config
	logger     logx.Logger
}

// NewClient creates an assistant client. Timeout bounds every generate call.
func NewClient(cfg Config, logger logx.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 20 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

// generateContent wire shapes, prompt in / candidate text out.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("assistant: marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/models/" + c.cfg.Model + ":generateContent"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("assistant: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("assistant: decode response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("assistant: empty candidate set")
	}

	c.logger.Debug("assistant call complete",
		logx.Duration("duration", time.Since(start)),
		logx.Int("prompt_len", len(prompt)),
	)
	return out.Candidates[0].Content.Parts[0].Text, nil
}

// OptimizeRoutes asks the assistant for a visiting order over the given
// routes and validates that the answer covers exactly those route ids.
func (c *Client) OptimizeRoutes(ctx context.Context, routes []domain.Route) ([]domain.RouteSuggestion, error) {
	text, err := c.generate(ctx, optimizePrompt(routes))
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(routes))
	for _, r := range routes {
		ids = append(ids, r.RouteID)
	}
	return parseRouteSuggestions(text, ids)
}

// OrganizeEmails asks the assistant to classify the given emails into the
// closed category vocabulary.
func (c *Client) OrganizeEmails(ctx context.Context, emails []domain.Email) ([]domain.OrganizedEmail, error) {
	text, err := c.generate(ctx, organizePrompt(emails))
	if err != nil {
		return nil, err
	}
	return parseOrganizedEmails(text, len(emails))
}

var _ Gateway = (*Client)(nil)
