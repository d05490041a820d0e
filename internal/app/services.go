package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/deletion"
	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/erasure"
	"github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/history"
	privacyrepo "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/privacy"
	relationshiprepo "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/relationship"
	userrepo "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/ecomind-backend/internal/adapter/provider/gemini"
	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/service/ai"
	"github.com/heartmarshall/ecomind-backend/internal/service/audit"
	"github.com/heartmarshall/ecomind-backend/internal/service/consent"
	"github.com/heartmarshall/ecomind-backend/internal/service/privacy"
	"github.com/heartmarshall/ecomind-backend/internal/service/relationship"
	"github.com/heartmarshall/ecomind-backend/internal/service/user"
)

// Services is the wired service layer shared by the server and the
// one-shot commands.
type Services struct {
	Audit         *audit.Logger
	Gate          *consent.Gate
	User          *user.Service
	Privacy       *privacy.Service
	Relationships *relationship.Service
	AI            *ai.Service
	AIConfigured  bool
}

// NewServices builds repositories over db and the services on top of them.
// A missing AI provider is not an error: AI operations then fail with a
// precondition error.
func NewServices(ctx context.Context, cfg *config.Config, logger *slog.Logger, db postgres.Querier, txm *postgres.TxManager) (*Services, error) {
	users := userrepo.New(db)
	settings := privacyrepo.New(db)
	deletions := deletion.New(db)
	relationships := relationshiprepo.New(db)
	hist := history.New(db)

	auditLog := audit.NewLogger(logger, auditrepo.New(db))
	gate := consent.NewGate(logger, settings, auditLog, cfg.Consent.CurrentVersion)
	eraser := user.NewEraser(logger, erasure.New(db), txm, cfg.Erasure.MaxBatchSize)

	provider, err := newAIProvider(ctx, cfg.AI, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		Audit:         auditLog,
		Gate:          gate,
		User:          user.NewService(logger, cfg.Consent, users, settings, auditLog, eraser, txm),
		Privacy:       privacy.NewService(logger, cfg.Consent, settings, deletions, users, relationships, hist, auditLog, eraser, txm),
		Relationships: relationship.NewService(logger, relationships, users, txm),
		AI:            ai.NewService(logger, cfg.AI, provider, gate, relationships, hist),
		AIConfigured:  provider != nil,
	}, nil
}

// newAIProvider returns a nil interface, not a nil *gemini.Client, when no
// credentials are configured.
func newAIProvider(ctx context.Context, cfg config.AIConfig, logger *slog.Logger) (ai.Provider, error) {
	client, err := gemini.New(ctx, cfg, logger)
	switch {
	case err == nil:
		return client, nil
	case errors.Is(err, gemini.ErrNotConfigured):
		logger.Warn("AI provider not configured, AI operations disabled",
			slog.String("backend", cfg.Backend))
		return nil, nil
	default:
		return nil, fmt.Errorf("create AI provider: %w", err)
	}
}
