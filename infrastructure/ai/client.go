// Package ai holds the completion API client behind the palette and
// season proxies.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	pkgerrors "colorboard/pkg/errors"
)

// Client calls an OpenAI-compatible chat completion endpoint. One attempt
// per request with a hard deadline; the proxy surfaces failures rather
// than retrying, so a slow upstream cannot pile up work.
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	model      string
	timeout    time.Duration
	logger     *zap.Logger
}

// NewClient creates a completion client
func NewClient(apiURL, apiKey, model string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		httpClient: &http.Client{},
		apiURL:     apiURL,
		apiKey:     apiKey,
		model:      model,
		timeout:    timeout,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the prompt pair upstream and returns the raw completion
// text.
func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	if c.apiKey == "" {
		return "", pkgerrors.NewMissingCredentialsError("AI_API_KEY")
	}

	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to encode completion request").WithCause(err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", pkgerrors.NewInternalError("failed to build completion request").WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", pkgerrors.NewTimeoutError("completion")
		}
		return "", pkgerrors.NewUpstreamError("completion request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", pkgerrors.NewUpstreamError("failed to read completion response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("completion API returned an error",
			zap.Int("status", resp.StatusCode),
		)
		return "", pkgerrors.NewUpstreamError(
			fmt.Sprintf("completion API returned status %d", resp.StatusCode), nil)
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", pkgerrors.NewUpstreamError("completion response was not valid JSON", err)
	}
	if parsed.Error != nil {
		return "", pkgerrors.NewUpstreamError("completion API error: "+parsed.Error.Message, nil)
	}
	if len(parsed.Choices) == 0 {
		return "", pkgerrors.NewUpstreamError("completion response had no choices", nil)
	}
	return parsed.Choices[0].Message.Content, nil
}
