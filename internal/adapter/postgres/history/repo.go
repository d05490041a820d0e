// Package history stores write-once AI results (context, sentiment and
// insight history) in PostgreSQL.
package history

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var columns = []string{"id", "user_id", "relationship_id", "interaction_id", "payload", "created_at"}

// tableFor maps a history kind to its table.
func tableFor(kind domain.HistoryKind) (string, error) {
	switch kind {
	case domain.HistoryKindContext:
		return "context_history", nil
	case domain.HistoryKindSentiment:
		return "sentiment_history", nil
	case domain.HistoryKindInsight:
		return "insight_history", nil
	}
	return "", fmt.Errorf("unknown history kind %q", kind)
}

// Repo provides AI history persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new history repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Append writes e to the table for e.Kind.
func (r *Repo) Append(ctx context.Context, e domain.HistoryEntry) error {
	table, err := tableFor(e.Kind)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("%s marshal payload: %w", table, err)
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(e.ID, e.UserID, e.RelationshipID, e.InteractionID, payload, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build %s insert: %w", table, err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, e.ID)
	}
	return nil
}

// ListByUser returns the newest entries of kind for a user.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, kind domain.HistoryKind, limit int) ([]domain.HistoryEntry, error) {
	table, err := tableFor(kind)
	if err != nil {
		return nil, err
	}

	query, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s select: %w", table, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	defer rows.Close()

	out := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var (
			e       domain.HistoryEntry
			payload []byte
		)
		if err := rows.Scan(&e.ID, &e.UserID, &e.RelationshipID, &e.InteractionID, &payload, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		if err := json.Unmarshal(payload, &e.Payload); err != nil {
			return nil, fmt.Errorf("%s %s unmarshal payload: %w", table, e.ID, err)
		}
		e.Kind = kind
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	return out, nil
}
