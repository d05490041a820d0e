// Package erasure implements the low-level deletes behind account erasure
// and the erasure log that survives it.
package erasure

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// erasable lists the per-user tables that may be enumerated and deleted by id.
var erasable = map[string]bool{
	"context_history":   true,
	"sentiment_history": true,
	"insight_history":   true,
	"interactions":      true,
	"relationships":     true,
	"audit_records":     true,
}

// Repo provides erasure persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new erasure repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListDocumentIDs returns the ids of every row owned by userID in collection.
func (r *Repo) ListDocumentIDs(ctx context.Context, collection string, userID uuid.UUID) ([]uuid.UUID, error) {
	if !erasable[collection] {
		return nil, fmt.Errorf("erasure: unknown collection %q", collection)
	}

	query, args, err := postgres.Builder.Select("id").
		From(collection).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s ids: %w", collection, err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s ids: %w", collection, err)
	}
	defer rows.Close()

	ids := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan %s id: %w", collection, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s ids: %w", collection, err)
	}
	return ids, nil
}

// DeleteDocuments removes the given rows from collection and returns how
// many were deleted.
func (r *Repo) DeleteDocuments(ctx context.Context, collection string, ids []uuid.UUID) (int, error) {
	if !erasable[collection] {
		return 0, fmt.Errorf("erasure: unknown collection %q", collection)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := postgres.Builder.Delete(collection).
		Where(sq.Expr("id = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build %s delete: %w", collection, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete %s: %w", collection, err)
	}
	return int(tag.RowsAffected()), nil
}

// DeleteRoot removes the user's privacy settings and profile. Returns the
// number of rows removed.
func (r *Repo) DeleteRoot(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	total := 0
	for _, table := range []string{"privacy_settings", "user_profiles"} {
		query, args, err := postgres.Builder.Delete(table).
			Where(sq.Eq{"user_id": userID}).
			ToSql()
		if err != nil {
			return total, fmt.Errorf("build %s delete: %w", table, err)
		}

		tag, err := q.Exec(ctx, query, args...)
		if err != nil {
			return total, fmt.Errorf("delete %s: %w", table, err)
		}
		total += int(tag.RowsAffected())
	}
	return total, nil
}

// WriteLog appends an erasure log entry.
func (r *Repo) WriteLog(ctx context.Context, e domain.ErasureLogEntry) error {
	query, args, err := postgres.Builder.Insert("erasure_log").
		Columns("id", "user_id", "status", "reason", "documents_deleted",
			"requires_manual_cleanup", "error", "created_at").
		Values(e.ID, e.UserID, string(e.Status), e.Reason, e.DocumentsDeleted,
			e.RequiresManualCleanup, e.Error, e.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build erasure_log insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "erasure_log", e.ID)
	}
	return nil
}
