// Package privacy implements privacy settings, data deletion requests and
// user data export.
package privacy

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

type settingsRepo interface {
	GetSettings(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)
	GetSettingsForUpdate(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)
	CreateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)
	UpdateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)
}

type deletionRepo interface {
	CreateRequest(ctx context.Context, req domain.DeletionRequest) (*domain.DeletionRequest, bool, error)
	ListDue(ctx context.Context, now time.Time, limit int) ([]domain.DeletionRequest, error)
	MarkStatus(ctx context.Context, id uuid.UUID, status domain.DeletionStatus, completedAt *time.Time) error
}

type profileReader interface {
	GetByID(ctx context.Context, uid uuid.UUID) (*domain.UserProfile, error)
}

type relationshipReader interface {
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error)
	ListInteractions(ctx context.Context, userID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)
}

type historyReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, kind domain.HistoryKind, limit int) ([]domain.HistoryEntry, error)
}

type auditLogger interface {
	Record(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type accountEraser interface {
	Erase(ctx context.Context, userID uuid.UUID, reason string) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements privacy operations.
type Service struct {
	log           *slog.Logger
	consent       config.ConsentConfig
	settings      settingsRepo
	deletions     deletionRepo
	profiles      profileReader
	relationships relationshipReader
	history       historyReader
	audit         auditLogger
	eraser        accountEraser
	tx            txManager
	now           func() time.Time
}

// NewService creates a new privacy service.
func NewService(
	logger *slog.Logger,
	consent config.ConsentConfig,
	settings settingsRepo,
	deletions deletionRepo,
	profiles profileReader,
	relationships relationshipReader,
	history historyReader,
	audit auditLogger,
	eraser accountEraser,
	tx txManager,
) *Service {
	return &Service{
		log:           logger.With("service", "privacy"),
		consent:       consent,
		settings:      settings,
		deletions:     deletions,
		profiles:      profiles,
		relationships: relationships,
		history:       history,
		audit:         audit,
		eraser:        eraser,
		tx:            tx,
		now:           time.Now,
	}
}
