package relationship

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// LogInteraction records an interaction with one of the caller's
// relationships and bumps the interaction counter in the same transaction.
func (s *Service) LogInteraction(ctx context.Context, relationshipID uuid.UUID, input LogInteractionInput) (*domain.Interaction, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := access.Caller(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	in := domain.Interaction{
		ID:             uuid.New(),
		UserID:         userID,
		RelationshipID: relationshipID,
		Type:           input.Type,
		Notes:          input.Notes,
		OccurredAt:     now,
		CreatedAt:      now,
	}
	if input.OccurredAt != nil {
		in.OccurredAt = input.OccurredAt.UTC()
	}

	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := s.repo.GetByID(ctx, userID, relationshipID); err != nil {
			return err
		}
		if err := s.repo.CreateInteraction(ctx, in); err != nil {
			return err
		}
		return s.stats.IncrementStats(ctx, userID, 0, 1)
	})
	if err != nil {
		return nil, fmt.Errorf("relationship.LogInteraction: %w", err)
	}
	return &in, nil
}

// ListInteractions returns the most recent interactions of one of the
// caller's relationships, newest first.
func (s *Service) ListInteractions(ctx context.Context, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error) {
	userID, err := access.Caller(ctx)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.GetByID(ctx, userID, relationshipID); err != nil {
		return nil, fmt.Errorf("relationship.ListInteractions: %w", err)
	}

	ins, err := s.repo.ListInteractions(ctx, userID, relationshipID, normalizeLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("relationship.ListInteractions: %w", err)
	}
	return ins, nil
}
