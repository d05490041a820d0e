//go:build integration

package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedProfile inserts a user profile with account-creation defaults.
func SeedProfile(t *testing.T, pool *pgxpool.Pool) domain.UserProfile {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	privacy := domain.DefaultPrivacySettings(uuid.New(), "1.0.0", now)
	p := domain.NewUserProfile(privacy.UserID, "user-"+suffix+"@example.com", "User "+suffix, nil, privacy, now)

	_, err := pool.Exec(ctx,
		`INSERT INTO user_profiles (user_id, email, display_name, subscription_features, last_active_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.UID, p.Email, p.DisplayName, p.Subscription.Features, now, now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: seed profile: %v", err)
	}

	return p
}

// SeedPrivacySettings inserts settings for userID.
func SeedPrivacySettings(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, aiProcessing bool) domain.PrivacySettings {
	t.Helper()

	s := domain.DefaultPrivacySettings(userID, "1.0.0", time.Now().UTC().Truncate(time.Microsecond))
	s.AIProcessing = aiProcessing

	_, err := pool.Exec(context.Background(),
		`INSERT INTO privacy_settings (user_id, data_collection, ai_processing, analytics, crash_reporting, marketing, last_updated, consent_version)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.UserID, s.DataCollection, s.AIProcessing, s.Analytics, s.CrashReporting, s.Marketing, s.LastUpdated, s.ConsentVersion,
	)
	if err != nil {
		t.Fatalf("testhelper: seed privacy settings: %v", err)
	}

	return s
}

// SeedRelationship inserts a relationship owned by userID.
func SeedRelationship(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Relationship {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Relationship{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      "Friend " + uniqueSuffix(),
		Type:      domain.RelationshipTypeFriend,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO relationships (id, user_id, name, type, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		r.ID, r.UserID, r.Name, string(r.Type), r.Notes, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed relationship: %v", err)
	}

	return r
}

// SeedInteraction inserts an interaction under rel.
func SeedInteraction(t *testing.T, pool *pgxpool.Pool, rel domain.Relationship, notes string) domain.Interaction {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	in := domain.Interaction{
		ID:             uuid.New(),
		UserID:         rel.UserID,
		RelationshipID: rel.ID,
		Type:           domain.InteractionTypeCall,
		Notes:          notes,
		OccurredAt:     now,
		CreatedAt:      now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO interactions (id, user_id, relationship_id, type, notes, occurred_at, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		in.ID, in.UserID, in.RelationshipID, string(in.Type), in.Notes, in.OccurredAt, in.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: seed interaction: %v", err)
	}

	return in
}
