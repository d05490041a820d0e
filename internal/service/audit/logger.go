// Package audit writes the append-only compliance trail. Recording is best
// effort: a failed write is logged and never fails the caller.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/pkg/ctxutil"
)

type auditRepo interface {
	Create(ctx context.Context, rec domain.AuditRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

// Logger records audit entries.
type Logger struct {
	log    *slog.Logger
	repo   auditRepo
	now    func() time.Time
	suffix func() string
}

// NewLogger creates a Logger.
func NewLogger(logger *slog.Logger, repo auditRepo) *Logger {
	return &Logger{
		log:    logger.With("service", "audit"),
		repo:   repo,
		now:    time.Now,
		suffix: randomSuffix,
	}
}

// Record stores rec for userID. ID, Key and CreatedAt are assigned here;
// Actor is taken from the request context when rec has none. A key
// collision is retried once with a fresh suffix.
func (l *Logger) Record(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord) {
	now := l.now().UTC()

	rec.ID = uuid.New()
	rec.UserID = userID
	rec.CreatedAt = now
	rec.Key = domain.AuditKey(rec.Operation, now, l.suffix())
	if rec.Actor == (domain.Actor{}) {
		info := ctxutil.ClientInfoFromCtx(ctx)
		rec.Actor = domain.Actor{IPAddress: info.IPAddress, UserAgent: info.UserAgent}
	}

	err := l.repo.Create(ctx, rec)
	if errors.Is(err, domain.ErrAlreadyExists) {
		rec.ID = uuid.New()
		rec.Key = domain.AuditKey(rec.Operation, now, l.suffix())
		err = l.repo.Create(ctx, rec)
	}
	if err != nil {
		l.log.ErrorContext(ctx, "audit record not written",
			slog.String("user_id", userID.String()),
			slog.String("operation", rec.Operation),
			slog.String("error", err.Error()),
		)
	}
}

// List returns up to limit records for userID, newest first.
func (l *Logger) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	recs, err := l.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("audit.List: %w", err)
	}
	return recs, nil
}

func randomSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
