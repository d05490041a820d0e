// Package user implements profile lifecycle and account erasure.
package user

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/config"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by user service.
type profileRepo interface {
	GetByID(ctx context.Context, uid uuid.UUID) (*domain.UserProfile, error)
	Create(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, bool, error)
	Update(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error)
	TouchLastActive(ctx context.Context, uid uuid.UUID, at time.Time) error
}

// settingsRepo creates the default privacy settings on account creation.
type settingsRepo interface {
	CreateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)
}

type auditLogger interface {
	Record(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord)
}

type accountEraser interface {
	Erase(ctx context.Context, userID uuid.UUID, reason string) (int, error)
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements user profile operations.
type Service struct {
	log      *slog.Logger
	consent  config.ConsentConfig
	profiles profileRepo
	settings settingsRepo
	audit    auditLogger
	eraser   accountEraser
	tx       txManager
	now      func() time.Time
}

// NewService creates a new user service instance.
func NewService(
	logger *slog.Logger,
	consent config.ConsentConfig,
	profiles profileRepo,
	settings settingsRepo,
	audit auditLogger,
	eraser accountEraser,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		consent:  consent,
		profiles: profiles,
		settings: settings,
		audit:    audit,
		eraser:   eraser,
		tx:       tx,
		now:      time.Now,
	}
}
