package relationship

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// CreateRelationship stores a relationship for the caller and bumps the
// profile's relationship counter in the same transaction.
func (s *Service) CreateRelationship(ctx context.Context, input CreateRelationshipInput) (*domain.Relationship, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := access.Caller(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rel := domain.Relationship{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(input.Name),
		Type:      input.Type,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.repo.Create(ctx, rel); err != nil {
			return err
		}
		return s.stats.IncrementStats(ctx, userID, 1, 0)
	})
	if err != nil {
		return nil, fmt.Errorf("relationship.CreateRelationship: %w", err)
	}

	s.log.InfoContext(ctx, "relationship created",
		slog.String("user_id", userID.String()),
		slog.String("relationship_id", rel.ID.String()),
	)
	return &rel, nil
}

// ListRelationships returns the caller's relationships, newest first.
func (s *Service) ListRelationships(ctx context.Context, limit int) ([]domain.Relationship, error) {
	userID, err := access.Caller(ctx)
	if err != nil {
		return nil, err
	}

	rels, err := s.repo.List(ctx, userID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("relationship.ListRelationships: %w", err)
	}
	return rels, nil
}

// GetRelationship returns one of the caller's relationships.
func (s *Service) GetRelationship(ctx context.Context, id uuid.UUID) (*domain.Relationship, error) {
	userID, err := access.Caller(ctx)
	if err != nil {
		return nil, err
	}

	rel, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("relationship.GetRelationship: %w", err)
	}
	return rel, nil
}

// DeleteRelationship removes a relationship with its interactions and AI
// history and lowers both profile counters accordingly.
func (s *Service) DeleteRelationship(ctx context.Context, id uuid.UUID) error {
	userID, err := access.Caller(ctx)
	if err != nil {
		return err
	}

	var removed int
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		n, err := s.repo.Delete(ctx, userID, id)
		if err != nil {
			return err
		}
		removed = n
		return s.stats.IncrementStats(ctx, userID, -1, -n)
	})
	if err != nil {
		return fmt.Errorf("relationship.DeleteRelationship: %w", err)
	}

	s.log.InfoContext(ctx, "relationship deleted",
		slog.String("user_id", userID.String()),
		slog.String("relationship_id", id.String()),
		slog.Int("interactions_removed", removed),
	)
	return nil
}
