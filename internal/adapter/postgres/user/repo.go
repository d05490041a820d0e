// Package user implements the user profile repository using PostgreSQL.
package user

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

const table = "user_profiles"

var columns = []string{
	"user_id", "email", "display_name", "photo_url",
	"theme", "notify_push", "notify_email", "notify_reminders",
	"privacy_data_collection", "privacy_ai_processing", "privacy_analytics",
	"subscription_tier", "subscription_features",
	"total_relationships", "total_interactions", "last_active_at",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

// Repo provides user profile persistence.
type Repo struct {
	db postgres.Querier
}

// New creates a new user profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// GetByID returns a profile by user ID.
func (r *Repo) GetByID(ctx context.Context, uid uuid.UUID) (*domain.UserProfile, error) {
	query, args, err := postgres.Builder.Select(columns...).
		From(table).
		Where(sq.Eq{"user_id": uid}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_profiles select: %w", err)
	}

	p, err := scanProfile(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", uid)
	}
	return &p, nil
}

// Create inserts p unless a profile already exists for p.UID. The returned
// bool is false when the existing profile was returned instead.
func (r *Repo) Create(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, bool, error) {
	query, args, err := postgres.Builder.Insert(table).
		Columns(columns...).
		Values(
			p.UID, p.Email, p.DisplayName, p.PhotoURL,
			string(p.Preferences.Theme), p.Preferences.Notifications.Push,
			p.Preferences.Notifications.Email, p.Preferences.Notifications.Reminders,
			p.Preferences.Privacy.DataCollection, p.Preferences.Privacy.AIProcessing,
			p.Preferences.Privacy.Analytics,
			string(p.Subscription.Tier), features(p.Subscription.Features),
			p.Stats.TotalRelationships, p.Stats.TotalInteractions, p.Stats.LastActiveAt,
			p.CreatedAt, p.UpdatedAt,
		).
		Suffix("ON CONFLICT (user_id) DO NOTHING " + returning).
		ToSql()
	if err != nil {
		return nil, false, fmt.Errorf("build user_profiles insert: %w", err)
	}

	created, err := scanProfile(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		existing, getErr := r.GetByID(ctx, p.UID)
		if getErr != nil {
			return nil, false, getErr
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, postgres.MapError(err, "user_profile", p.UID)
	}
	return &created, true, nil
}

// Update writes the user-editable fields of p and bumps updated_at and
// last_active_at to p.UpdatedAt.
func (r *Repo) Update(ctx context.Context, p domain.UserProfile) (*domain.UserProfile, error) {
	query, args, err := postgres.Builder.Update(table).
		Set("display_name", p.DisplayName).
		Set("photo_url", p.PhotoURL).
		Set("theme", string(p.Preferences.Theme)).
		Set("notify_push", p.Preferences.Notifications.Push).
		Set("notify_email", p.Preferences.Notifications.Email).
		Set("notify_reminders", p.Preferences.Notifications.Reminders).
		Set("updated_at", p.UpdatedAt).
		Set("last_active_at", p.UpdatedAt).
		Where(sq.Eq{"user_id": p.UID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user_profiles update: %w", err)
	}

	updated, err := scanProfile(postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user_profile", p.UID)
	}
	return &updated, nil
}

// TouchLastActive sets last_active_at.
func (r *Repo) TouchLastActive(ctx context.Context, uid uuid.UUID, at time.Time) error {
	query, args, err := postgres.Builder.Update(table).
		Set("last_active_at", at).
		Where(sq.Eq{"user_id": uid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user_profiles touch: %w", err)
	}

	return r.execOne(ctx, query, args, uid)
}

// IncrementStats adjusts the relationship and interaction counters in place.
// Counters never go below zero.
func (r *Repo) IncrementStats(ctx context.Context, uid uuid.UUID, relationships, interactions int) error {
	query, args, err := postgres.Builder.Update(table).
		Set("total_relationships", sq.Expr("GREATEST(total_relationships + ?, 0)", relationships)).
		Set("total_interactions", sq.Expr("GREATEST(total_interactions + ?, 0)", interactions)).
		Where(sq.Eq{"user_id": uid}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build user_profiles increment: %w", err)
	}

	return r.execOne(ctx, query, args, uid)
}

func (r *Repo) execOne(ctx context.Context, query string, args []any, uid uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "user_profile", uid)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user_profile %s: %w", uid, domain.ErrNotFound)
	}
	return nil
}

func scanProfile(row pgx.Row) (domain.UserProfile, error) {
	var (
		p           domain.UserProfile
		theme, tier string
	)

	err := row.Scan(
		&p.UID, &p.Email, &p.DisplayName, &p.PhotoURL,
		&theme, &p.Preferences.Notifications.Push,
		&p.Preferences.Notifications.Email, &p.Preferences.Notifications.Reminders,
		&p.Preferences.Privacy.DataCollection, &p.Preferences.Privacy.AIProcessing,
		&p.Preferences.Privacy.Analytics,
		&tier, &p.Subscription.Features,
		&p.Stats.TotalRelationships, &p.Stats.TotalInteractions, &p.Stats.LastActiveAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.UserProfile{}, err
	}

	p.Preferences.Theme = domain.Theme(theme)
	p.Subscription.Tier = domain.SubscriptionTier(tier)
	return p, nil
}

func features(f []string) []string {
	if f == nil {
		return []string{}
	}
	return f
}
