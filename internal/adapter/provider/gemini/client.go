// Package gemini adapts google.golang.org/genai to the text generation and
// embedding calls used by the AI service. It works against either the
// Gemini API or Vertex AI.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/llm/prompt"
)

var (
	// ErrNotConfigured is returned by New when the selected backend has no credentials.
	ErrNotConfigured = errors.New("gemini: provider not configured")
	// ErrEmptyResponse is returned when the model produced no text or no vector.
	ErrEmptyResponse = errors.New("gemini: empty response")
)

// Client generates text and embeddings.
type Client struct {
	genai          *genai.Client
	textModel      string
	embeddingModel string
	log            *slog.Logger
}

// New creates a Client for cfg. It returns ErrNotConfigured when
// cfg.Configured() is false so callers can degrade instead of failing startup.
// A non-empty cfg.BaseURL overrides the API endpoint.
func New(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (*Client, error) {
	return newClient(ctx, cfg, genai.HTTPOptions{BaseURL: cfg.BaseURL}, logger)
}

// NewWithBaseURL creates a Client that talks to baseURL (for testing).
func NewWithBaseURL(ctx context.Context, cfg config.AIConfig, baseURL string, logger *slog.Logger) (*Client, error) {
	return newClient(ctx, cfg, genai.HTTPOptions{BaseURL: baseURL}, logger)
}

func newClient(ctx context.Context, cfg config.AIConfig, opts genai.HTTPOptions, logger *slog.Logger) (*Client, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	cc := &genai.ClientConfig{HTTPOptions: opts}
	switch cfg.Backend {
	case config.AIBackendVertex:
		cc.Backend = genai.BackendVertexAI
		cc.Project = cfg.Project
		cc.Location = cfg.Location
	default:
		cc.Backend = genai.BackendGeminiAPI
		cc.APIKey = cfg.APIKey
	}

	gc, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &Client{
		genai:          gc,
		textModel:      cfg.TextModel,
		embeddingModel: cfg.EmbeddingModel,
		log:            logger.With("adapter", "gemini", "backend", cfg.Backend),
	}, nil
}

// EmbeddingModel returns the model name used by Embed.
func (c *Client) EmbeddingModel() string { return c.embeddingModel }

// Generate sends a single-turn prompt and returns the concatenated text of
// the first candidate. There are no retries.
func (c *Client) Generate(ctx context.Context, text string, p prompt.Params) (string, error) {
	gcfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(p.Temperature),
		TopP:            genai.Ptr(p.TopP),
		TopK:            genai.Ptr(p.TopK),
		MaxOutputTokens: p.MaxOutputTokens,
	}
	if p.JSONResponse {
		gcfg.ResponseMIMEType = "application/json"
	}

	resp, err := c.genai.Models.GenerateContent(ctx, c.textModel, genai.Text(text), gcfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if len(resp.Candidates) == 0 {
		return "", ErrEmptyResponse
	}

	out := resp.Text()
	if strings.TrimSpace(out) == "" {
		return "", ErrEmptyResponse
	}

	c.log.DebugContext(ctx, "generated content",
		slog.String("model", c.textModel),
		slog.Int("response_length", len(out)),
	)
	return out, nil
}

// Embed returns the embedding vector for text.
func (c *Client) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := c.genai.Models.EmbedContent(ctx, c.embeddingModel, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini: embed content: %w", err)
	}
	if len(resp.Embeddings) == 0 || resp.Embeddings[0] == nil || len(resp.Embeddings[0].Values) == 0 {
		return nil, ErrEmptyResponse
	}
	return resp.Embeddings[0].Values, nil
}
