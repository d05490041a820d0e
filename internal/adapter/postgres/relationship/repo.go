// Package relationship implements relationship and interaction persistence
// using PostgreSQL.
package relationship

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var relationshipColumns = []string{
	"id", "user_id", "name", "type", "notes", "created_at", "updated_at",
}

var interactionColumns = []string{
	"id", "user_id", "relationship_id", "type", "notes", "occurred_at", "created_at",
}

// Repo provides relationship and interaction persistence. Every read is
// scoped by owner so one user can never see another user's rows.
type Repo struct {
	db postgres.Querier
}

// New creates a new relationship repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Relationships
// ---------------------------------------------------------------------------

// Create inserts a relationship.
func (r *Repo) Create(ctx context.Context, rel domain.Relationship) error {
	query, args, err := postgres.Builder.Insert("relationships").
		Columns(relationshipColumns...).
		Values(rel.ID, rel.UserID, rel.Name, string(rel.Type), rel.Notes, rel.CreatedAt, rel.UpdatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build relationships insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "relationship", rel.ID)
	}
	return nil
}

// GetByID returns the relationship if it exists and belongs to userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Relationship, error) {
	query, args, err := postgres.Builder.Select(relationshipColumns...).
		From("relationships").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relationships select: %w", err)
	}

	rel, err := scanRelationship(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "relationship", id)
	}
	return &rel, nil
}

// List returns the user's relationships, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error) {
	query, args, err := postgres.Builder.Select(relationshipColumns...).
		From("relationships").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build relationships list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Relationship, 0)
	for rows.Next() {
		rel, err := scanRelationship(rows)
		if err != nil {
			return nil, fmt.Errorf("scan relationship: %w", err)
		}
		out = append(out, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list relationships: %w", err)
	}
	return out, nil
}

// Delete removes a relationship and, by cascade, its interactions and AI
// history. Returns the number of interactions removed with it.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	count, err := r.CountInteractions(ctx, userID, id)
	if err != nil {
		return 0, err
	}

	query, args, err := postgres.Builder.Delete("relationships").
		Where(sq.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build relationships delete: %w", err)
	}

	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "relationship", id)
	}
	if tag.RowsAffected() == 0 {
		return 0, fmt.Errorf("relationship %s: %w", id, domain.ErrNotFound)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Interactions
// ---------------------------------------------------------------------------

// CreateInteraction inserts an interaction. The parent relationship must exist.
func (r *Repo) CreateInteraction(ctx context.Context, in domain.Interaction) error {
	query, args, err := postgres.Builder.Insert("interactions").
		Columns(interactionColumns...).
		Values(in.ID, in.UserID, in.RelationshipID, string(in.Type), in.Notes, in.OccurredAt, in.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build interactions insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "interaction", in.ID)
	}
	return nil
}

// ListInteractions returns the most recent interactions for a relationship,
// newest first.
func (r *Repo) ListInteractions(ctx context.Context, userID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error) {
	query, args, err := postgres.Builder.Select(interactionColumns...).
		From("interactions").
		Where(sq.Eq{"user_id": userID, "relationship_id": relationshipID}).
		OrderBy("occurred_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interactions list: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Interaction, 0)
	for rows.Next() {
		in, err := scanInteraction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		out = append(out, in)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	return out, nil
}

// GetInteraction returns the interaction only if it belongs to userID and
// was logged under relationshipID. Any mismatch is reported as not found.
func (r *Repo) GetInteraction(ctx context.Context, userID, relationshipID, id uuid.UUID) (*domain.Interaction, error) {
	query, args, err := postgres.Builder.Select(interactionColumns...).
		From("interactions").
		Where(sq.Eq{"id": id, "user_id": userID, "relationship_id": relationshipID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build interactions select: %w", err)
	}

	in, err := scanInteraction(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "interaction", id)
	}
	return &in, nil
}

// CountInteractions returns how many interactions a relationship has.
func (r *Repo) CountInteractions(ctx context.Context, userID, relationshipID uuid.UUID) (int, error) {
	query, args, err := postgres.Builder.Select("count(*)").
		From("interactions").
		Where(sq.Eq{"user_id": userID, "relationship_id": relationshipID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build interactions count: %w", err)
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count interactions: %w", err)
	}
	return n, nil
}

func scanRelationship(row pgx.Row) (domain.Relationship, error) {
	var (
		rel domain.Relationship
		typ string
	)
	if err := row.Scan(&rel.ID, &rel.UserID, &rel.Name, &typ, &rel.Notes, &rel.CreatedAt, &rel.UpdatedAt); err != nil {
		return domain.Relationship{}, err
	}
	rel.Type = domain.RelationshipType(typ)
	return rel, nil
}

func scanInteraction(row pgx.Row) (domain.Interaction, error) {
	var (
		in  domain.Interaction
		typ string
	)
	if err := row.Scan(&in.ID, &in.UserID, &in.RelationshipID, &typ, &in.Notes, &in.OccurredAt, &in.CreatedAt); err != nil {
		return domain.Interaction{}, err
	}
	in.Type = domain.InteractionType(typ)
	return in, nil
}
