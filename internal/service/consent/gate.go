// Package consent gates AI operations on the user's current AI-processing
// consent and records an audit entry for every operation it lets through.
package consent

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

type settingsReader interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)
}

type auditRecorder interface {
	Record(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord)
}

// Gate checks consent against the configured policy version.
type Gate struct {
	log            *slog.Logger
	settings       settingsReader
	audit          auditRecorder
	currentVersion string
}

// NewGate creates a Gate.
func NewGate(logger *slog.Logger, settings settingsReader, audit auditRecorder, currentVersion string) *Gate {
	return &Gate{
		log:            logger.With("service", "consent"),
		settings:       settings,
		audit:          audit,
		currentVersion: currentVersion,
	}
}

// CheckConsent reports whether userID may use AI features right now. It
// never creates settings and never returns an error: a missing record, a
// refusal and a store failure all read as false.
func (g *Gate) CheckConsent(ctx context.Context, userID uuid.UUID) bool {
	s, err := g.settings.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			g.log.WarnContext(ctx, "no privacy settings, consent denied",
				slog.String("user_id", userID.String()))
			return false
		}
		g.log.ErrorContext(ctx, "consent check failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return false
	}

	if !s.AllowsAI(g.currentVersion) {
		g.log.InfoContext(ctx, "consent denied",
			slog.String("user_id", userID.String()),
			slog.Bool("ai_processing", s.AIProcessing),
			slog.Bool("version_current", s.ConsentCurrent(g.currentVersion)))
		return false
	}
	return true
}

// Run executes fn for userID only if consent is current. A refusal returns a
// ConsentError and fn is not called. Otherwise the operation is audited
// before fn runs, and fn's result and error are returned as they are.
func Run[T any](ctx context.Context, g *Gate, operation string, userID uuid.UUID, fn func(ctx context.Context) (T, error)) (T, error) {
	if !g.CheckConsent(ctx, userID) {
		var zero T
		return zero, &domain.ConsentError{Operation: operation}
	}

	g.audit.Record(ctx, userID, domain.AuditRecord{
		Operation:     operation,
		DataTypes:     []string{domain.DataTypeRelationshipData, domain.DataTypeInteractionData},
		Purposes:      []string{domain.PurposeAIAnalysis},
		Details:       map[string]any{"consentVersion": g.currentVersion},
		GDPRCompliant: true,
	})

	return fn(ctx)
}
