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

	"portfolio-builder/pkg/logger"
)

const defaultEndpoint = "https://openrouter.ai/api/v1/chat/completions"

// ErrNotConfigured is returned when no API key is available for the call.
var ErrNotConfigured = errors.New("ai: API key not configured")

// UpstreamCallError wraps a transport or HTTP-status failure from the
// chat-completions endpoint.
type UpstreamCallError struct {
	Err error
}

func (e *UpstreamCallError) Error() string { return "ai: upstream call failed: " + e.Err.Error() }
func (e *UpstreamCallError) Unwrap() error { return e.Err }

// UpstreamResponseError indicates the endpoint answered but the body did not
// have the expected choice structure.
type UpstreamResponseError struct {
	Reason string
}

func (e *UpstreamResponseError) Error() string { return "ai: invalid upstream response: " + e.Reason }

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request describes one completion call. Either Prompt or Messages must be
// set; a bare Prompt is wrapped as a single user message.
type Request struct {
	Model        string
	Prompt       string
	Messages     []Message
	ExtraHeaders map[string]string
}

// Completer is the single entry point to the chat-completions upstream.
// Both resume parsing and site generation go through it, and tests swap in
// a mock.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Client calls an OpenAI-style chat-completions endpoint with bearer auth.
// One attempt per call; retries are a caller concern.
type Client struct {
	endpoint     string
	apiKey       string
	defaultModel string
	http         *http.Client
	log          *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithEndpoint overrides the completions URL (useful for testing).
func WithEndpoint(url string) Option {
	return func(c *Client) { c.endpoint = url }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithDefaultModel sets the model used when a request leaves Model empty.
func WithDefaultModel(model string) Option {
	return func(c *Client) { c.defaultModel = model }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		endpoint: defaultEndpoint,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: 60 * time.Second},
		log:      logger.L(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
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

// Complete sends one chat-completion request and returns the text content of
// the first choice.
func (c *Client) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrNotConfigured
	}

	messages := req.Messages
	if len(messages) == 0 {
		messages = []Message{{Role: "user", Content: req.Prompt}}
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	body, err := json.Marshal(chatRequest{Model: model, Messages: messages})
	if err != nil {
		return "", fmt.Errorf("ai: marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	for k, v := range req.ExtraHeaders {
		httpReq.Header.Set(k, v)
	}

	c.log.Debug("ai completion request", zap.String("model", model), zap.Int("messages", len(messages)))

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return "", &UpstreamCallError{Err: err}
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UpstreamCallError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &UpstreamCallError{Err: fmt.Errorf("status %d: %s", resp.StatusCode, respBytes)}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", &UpstreamResponseError{Reason: "body is not valid JSON"}
	}
	if chatResp.Error != nil {
		return "", &UpstreamCallError{Err: errors.New(chatResp.Error.Message)}
	}
	if len(chatResp.Choices) == 0 {
		return "", &UpstreamResponseError{Reason: "no choices in response"}
	}

	return chatResp.Choices[0].Message.Content, nil
}
