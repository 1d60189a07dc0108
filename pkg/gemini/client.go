package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"google.golang.org/genai"

	"go-course-advisor-backend/config"
)

// Client wraps the Gemini API behind the domain.TextGenerator contract. When
// no API key is configured the client constructs fine but reports
// IsConfigured() == false, and callers degrade to their fallback texts.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	timeout := time.Duration(cfg.GeminiTimeoutSeconds) * time.Second

	if cfg.GeminiAPIKey == "" {
		return &Client{model: cfg.GeminiModel, timeout: timeout}, nil
	}

	gc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &Client{client: gc, model: cfg.GeminiModel, timeout: timeout}, nil
}

// IsConfigured reports whether generation calls can be attempted at all.
func (c *Client) IsConfigured() bool {
	return c.client != nil
}

// Generate sends one prompt and returns the response text. The call is bound
// by the configured timeout on top of the caller's context.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if c.client == nil {
		return "", errors.New("gemini: client not configured")
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content failed: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}
