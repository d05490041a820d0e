// Package relationship implements relationship and interaction tracking and
// keeps the profile counters in step with them.
package relationship

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

type relationshipRepo interface {
	Create(ctx context.Context, rel domain.Relationship) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Relationship, error)
	List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error)
	Delete(ctx context.Context, userID, id uuid.UUID) (int, error)
	CreateInteraction(ctx context.Context, in domain.Interaction) error
	ListInteractions(ctx context.Context, userID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)
}

type statsRepo interface {
	IncrementStats(ctx context.Context, uid uuid.UUID, relationships, interactions int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements relationship operations.
type Service struct {
	log   *slog.Logger
	repo  relationshipRepo
	stats statsRepo
	tx    txManager
	now   func() time.Time
}

// NewService creates a new relationship service.
func NewService(logger *slog.Logger, repo relationshipRepo, stats statsRepo, tx txManager) *Service {
	return &Service{
		log:   logger.With("service", "relationship"),
		repo:  repo,
		stats: stats,
		tx:    tx,
		now:   time.Now,
	}
}
