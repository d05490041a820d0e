// Package audit implements the append-only compliance trail using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const table = "audit_records"

var columns = []string{
	"id", "user_id", "record_key", "operation", "data_types", "purposes",
	"ip_address", "user_agent", "before", "after", "changed_fields", "details",
	"gdpr_compliant", "created_at",
}

// Repo provides audit record persistence. Records are never updated.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new audit record.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) error {
	before, err := marshalJSONB(rec.Before)
	if err != nil {
		return fmt.Errorf("audit_record marshal before: %w", err)
	}
	after, err := marshalJSONB(rec.After)
	if err != nil {
		return fmt.Errorf("audit_record marshal after: %w", err)
	}
	details, err := marshalJSONB(rec.Details)
	if err != nil {
		return fmt.Errorf("audit_record marshal details: %w", err)
	}

	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(
			rec.ID, rec.UserID, rec.Key, rec.Operation, nonNil(rec.DataTypes), nonNil(rec.Purposes),
			rec.Actor.IPAddress, rec.Actor.UserAgent, before, after, nonNil(rec.ChangedFields), details,
			rec.GDPRCompliant, rec.CreatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("build audit_records insert: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, "audit_record", rec.ID)
	}
	return nil
}

// ListByUser returns the newest records for a user first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build audit_records select: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.db).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}
	defer rows.Close()

	records := make([]domain.AuditRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	return records, nil
}

func scanRecord(row pgx.Row) (domain.AuditRecord, error) {
	var (
		rec                   domain.AuditRecord
		before, after, details []byte
	)

	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Key, &rec.Operation, &rec.DataTypes, &rec.Purposes,
		&rec.Actor.IPAddress, &rec.Actor.UserAgent, &before, &after, &rec.ChangedFields, &details,
		&rec.GDPRCompliant, &rec.CreatedAt,
	)
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("scan audit_record: %w", err)
	}

	if rec.Before, err = unmarshalJSONB(before); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal before: %w", rec.ID, err)
	}
	if rec.After, err = unmarshalJSONB(after); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal after: %w", rec.ID, err)
	}
	if rec.Details, err = unmarshalJSONB(details); err != nil {
		return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal details: %w", rec.ID, err)
	}

	return rec, nil
}

// marshalJSONB encodes m for a nullable JSONB column (nil map -> NULL).
func marshalJSONB(m map[string]any) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func unmarshalJSONB(b []byte) (map[string]any, error) {
	if len(b) == 0 {
		return nil, nil
	}
	m := make(map[string]any)
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
