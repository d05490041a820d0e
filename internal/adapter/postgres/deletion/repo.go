// Package deletion stores scheduled account deletion requests.
package deletion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const table = "deletion_requests"

var columns = []string{"id", "user_id", "reason", "status", "requested_at", "scheduled_for", "completed_at"}

// Repo provides deletion request persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new deletion request repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// CreateRequest inserts req unless the user already has a pending request,
// in which case the pending one is returned and created is false.
func (r *Repo) CreateRequest(ctx context.Context, req domain.DeletionRequest) (*domain.DeletionRequest, bool, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(req.ID, req.UserID, req.Reason, string(req.Status), req.RequestedAt, req.ScheduledFor, req.CompletedAt).
		Suffix("ON CONFLICT (user_id) WHERE status = 'pending' DO NOTHING RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build deletion_requests insert: %w", err)
	}

	created, err := scanRequest(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		pending, getErr := r.GetPending(ctx, req.UserID)
		if getErr != nil {
			return nil, false, getErr
		}
		return pending, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "deletion_request", req.ID)
	}
	return &created, true, nil
}

// GetPending returns the user's pending request or domain.ErrNotFound.
func (r *Repo) GetPending(ctx context.Context, userID uuid.UUID) (*domain.DeletionRequest, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID, "status": string(domain.DeletionStatusPending)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deletion_requests select: %w", err)
	}

	req, err := scanRequest(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "deletion_request", userID)
	}
	return &req, nil
}

// ListDue returns pending requests scheduled at or before now, oldest first.
func (r *Repo) ListDue(ctx context.Context, now time.Time, limit int) ([]domain.DeletionRequest, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"status": string(domain.DeletionStatusPending)}).
		Where(sq.LtOrEq{"scheduled_for": now}).
		OrderBy("scheduled_for ASC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build deletion_requests due: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list due deletion_requests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.DeletionRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan deletion_request: %w", err)
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list due deletion_requests: %w", err)
	}
	return out, nil
}

// MarkStatus moves a request to status. completedAt may be nil.
func (r *Repo) MarkStatus(ctx context.Context, id uuid.UUID, status domain.DeletionStatus, completedAt *time.Time) error {
	query, args, err := postgres.Builder.Update(table).
		Set("status", string(status)).
		Set("completed_at", completedAt).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build deletion_requests update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "deletion_request", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deletion_request %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func scanRequest(row pgx.Row) (domain.DeletionRequest, error) {
	var (
		req    domain.DeletionRequest
		status string
	)
	err := row.Scan(&req.ID, &req.UserID, &req.Reason, &status, &req.RequestedAt, &req.ScheduledFor, &req.CompletedAt)
	if err != nil {
		return domain.DeletionRequest{}, err
	}
	req.Status = domain.DeletionStatus(status)
	return req, nil
}
