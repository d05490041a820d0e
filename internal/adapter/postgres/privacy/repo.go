// Package privacy implements the consent store: per-user privacy settings
// backed by PostgreSQL.
package privacy

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/ecomind-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const table = "privacy_settings"

var columns = []string{
	"user_id", "data_collection", "ai_processing", "analytics",
	"crash_reporting", "marketing", "last_updated", "consent_version",
}

// Repo provides privacy settings persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new privacy settings repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetSettings returns the settings for userID or domain.ErrNotFound.
func (r *Repo) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error) {
	return r.get(ctx, userID, false)
}

// GetSettingsForUpdate is GetSettings with a row lock. It must run inside a
// transaction to have any effect.
func (r *Repo) GetSettingsForUpdate(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error) {
	return r.get(ctx, userID, true)
}

func (r *Repo) get(ctx context.Context, userID uuid.UUID, lock bool) (*domain.PrivacySettings, error) {
	q := postgres.Builder.Select(columns...).From(table).Where(sq.Eq{"user_id": userID})
	if lock {
		q = q.Suffix("FOR UPDATE")
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build privacy_settings select: %w", err)
	}

	s, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, userID)
	}
	return &s, nil
}

// CreateSettings inserts s unless a row already exists, and returns the
// stored row either way.
func (r *Repo) CreateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(s.UserID, s.DataCollection, s.AIProcessing, s.Analytics,
			s.CrashReporting, s.Marketing, s.LastUpdated, s.ConsentVersion).
		Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build privacy_settings insert: %w", err)
	}

	created, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race against a concurrent first read.
		return r.GetSettings(ctx, s.UserID)
	}
	if err != nil {
		return nil, postgres.MapError(err, table, s.UserID)
	}
	return &created, nil
}

// UpdateSettings overwrites the stored settings for s.UserID.
func (r *Repo) UpdateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("data_collection", s.DataCollection).
		Set("ai_processing", s.AIProcessing).
		Set("analytics", s.Analytics).
		Set("crash_reporting", s.CrashReporting).
		Set("marketing", s.Marketing).
		Set("last_updated", s.LastUpdated).
		Set("consent_version", s.ConsentVersion).
		Where(sq.Eq{"user_id": s.UserID}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build privacy_settings update: %w", err)
	}

	updated, err := scanSettings(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, table, s.UserID)
	}
	return &updated, nil
}

func scanSettings(row pgx.Row) (domain.PrivacySettings, error) {
	var s domain.PrivacySettings
	err := row.Scan(
		&s.UserID, &s.DataCollection, &s.AIProcessing, &s.Analytics,
		&s.CrashReporting, &s.Marketing, &s.LastUpdated, &s.ConsentVersion,
	)
	return s, err
}
