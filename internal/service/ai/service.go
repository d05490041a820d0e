// Package ai implements the consent-gated AI operations: context
// extraction, sentiment analysis, relationship insights and embeddings.
package ai

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/llm/parse"
	"github.com/heartmarshall/ecomind-backend/internal/llm/prompt"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
	"github.com/heartmarshall/ecomind-backend/internal/service/consent"
)

// insightsInteractionLimit is how many stored interactions feed insights
// when the caller supplies none.
const insightsInteractionLimit = 20

// Provider is the hosted model backend. A nil Provider means AI is not
// configured.
type Provider interface {
	Generate(ctx context.Context, text string, p prompt.Params) (string, error)
	Embed(ctx context.Context, text string) ([]float32, error)
	EmbeddingModel() string
}

type relationshipReader interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Relationship, error)
	GetInteraction(ctx context.Context, userID, relationshipID, id uuid.UUID) (*domain.Interaction, error)
	ListInteractions(ctx context.Context, userID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)
}

type historyWriter interface {
	Append(ctx context.Context, e domain.HistoryEntry) error
}

// Service implements AI operations.
type Service struct {
	log           *slog.Logger
	cfg           config.AIConfig
	provider      Provider
	gate          *consent.Gate
	parser        *parse.Parser
	relationships relationshipReader
	history       historyWriter
	now           func() time.Time
}

// NewService creates a new AI service. provider may be nil.
func NewService(
	logger *slog.Logger,
	cfg config.AIConfig,
	provider Provider,
	gate *consent.Gate,
	relationships relationshipReader,
	history historyWriter,
) *Service {
	log := logger.With("service", "ai")
	return &Service{
		log:           log,
		cfg:           cfg,
		provider:      provider,
		gate:          gate,
		parser:        parse.NewParser(log),
		relationships: relationships,
		history:       history,
		now:           time.Now,
	}
}

// begin resolves the caller and checks that a provider is configured. It
// runs before the consent gate so nothing is audited for an operation that
// cannot run.
func (s *Service) begin(ctx context.Context) (uuid.UUID, error) {
	userID, err := access.Caller(ctx)
	if err != nil {
		return uuid.Nil, err
	}
	if s.provider == nil {
		return uuid.Nil, domain.NewPreconditionError("AI provider is not configured")
	}
	return userID, nil
}

// generate calls the provider under the request timeout and logs failures
// without the input text.
func (s *Service) generate(ctx context.Context, userID uuid.UUID, op string, text string, p prompt.Params, inputLen int) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	start := time.Now()
	out, err := s.provider.Generate(ctx, text, p)
	if err != nil {
		s.logProviderError(ctx, userID, op, start, inputLen, err)
		return "", err
	}

	s.log.InfoContext(ctx, "ai operation completed",
		slog.String("user_id", userID.String()),
		slog.String("operation", op),
		slog.Duration("latency", time.Since(start)),
		slog.Int("input_length", inputLen),
	)
	return out, nil
}

func (s *Service) logProviderError(ctx context.Context, userID uuid.UUID, op string, start time.Time, inputLen int, err error) {
	s.log.ErrorContext(ctx, "ai provider call failed",
		slog.String("user_id", userID.String()),
		slog.String("operation", op),
		slog.Duration("latency", time.Since(start)),
		slog.Int("input_length", inputLen),
		slog.String("error", err.Error()),
	)
}

// ownRelationship returns the relationship when it belongs to userID.
func (s *Service) ownRelationship(ctx context.Context, userID uuid.UUID, id *uuid.UUID) (*domain.Relationship, error) {
	if id == nil {
		return nil, nil
	}
	return s.relationships.GetByID(ctx, userID, *id)
}

// ownTarget checks the relationship a result will be filed under and, when
// given, that the interaction was logged under that relationship by the
// same user. Either mismatch is not found.
func (s *Service) ownTarget(ctx context.Context, userID uuid.UUID, relationshipID, interactionID *uuid.UUID) error {
	if _, err := s.ownRelationship(ctx, userID, relationshipID); err != nil {
		return err
	}
	if interactionID == nil || relationshipID == nil {
		return nil
	}
	_, err := s.relationships.GetInteraction(ctx, userID, *relationshipID, *interactionID)
	return err
}

// appendHistory stores a result under its relationship. Failures are logged
// and never fail the operation.
func (s *Service) appendHistory(ctx context.Context, e domain.HistoryEntry) {
	e.ID = uuid.New()
	e.CreatedAt = s.now().UTC()

	if err := s.history.Append(ctx, e); err != nil {
		s.log.ErrorContext(ctx, "ai history not written",
			slog.String("user_id", e.UserID.String()),
			slog.String("kind", e.Kind.String()),
			slog.String("error", err.Error()),
		)
	}
}
