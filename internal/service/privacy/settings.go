package privacy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// SettingsResult is the stored settings plus whether the consent they carry
// matches the current policy version.
type SettingsResult struct {
	Settings       domain.PrivacySettings
	ConsentCurrent bool
}

// GetPrivacySettings returns the user's settings, creating conservative
// defaults on first read.
func (s *Service) GetPrivacySettings(ctx context.Context, userID uuid.UUID) (*SettingsResult, error) {
	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	st, err := s.load(ctx, userID, false)
	if err != nil {
		return nil, fmt.Errorf("privacy.GetPrivacySettings: %w", err)
	}
	return s.result(*st), nil
}

// UpdatePrivacySettings merges patch over the stored settings under a row
// lock and stamps lastUpdated and the current consent version. An empty
// patch only re-stamps. The change is audited after commit.
func (s *Service) UpdatePrivacySettings(ctx context.Context, userID uuid.UUID, patch domain.PrivacySettingsPatch) (*SettingsResult, error) {
	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	var before, after domain.PrivacySettings
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.load(ctx, userID, true)
		if err != nil {
			return err
		}
		before = *cur

		next := patch.Apply(*cur)
		next.LastUpdated = s.now().UTC()
		next.ConsentVersion = s.consent.CurrentVersion

		updated, err := s.settings.UpdateSettings(ctx, next)
		if err != nil {
			return err
		}
		after = *updated
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("privacy.UpdatePrivacySettings: %w", err)
	}

	s.audit.Record(ctx, userID, domain.AuditRecord{
		Operation:     domain.OpPrivacySettingsUpdate,
		DataTypes:     []string{domain.DataTypePrivacySettings},
		Purposes:      []string{domain.PurposeConsentManagement},
		Before:        before.Snapshot(),
		After:         after.Snapshot(),
		ChangedFields: patch.FieldNames(),
		GDPRCompliant: true,
	})

	s.log.InfoContext(ctx, "privacy settings updated",
		slog.String("user_id", userID.String()),
		slog.Bool("ai_processing", after.AIProcessing),
	)

	return s.result(after), nil
}

// load reads settings, creating defaults when absent. With lock it must run
// inside a transaction and leaves the row locked.
func (s *Service) load(ctx context.Context, userID uuid.UUID, lock bool) (*domain.PrivacySettings, error) {
	get := s.settings.GetSettings
	if lock {
		get = s.settings.GetSettingsForUpdate
	}

	st, err := get(ctx, userID)
	if err == nil {
		return st, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	created, err := s.settings.CreateSettings(ctx, domain.DefaultPrivacySettings(userID, s.consent.CurrentVersion, s.now().UTC()))
	if err != nil {
		return nil, err
	}
	if lock {
		return get(ctx, userID)
	}
	return created, nil
}

func (s *Service) result(st domain.PrivacySettings) *SettingsResult {
	return &SettingsResult{
		Settings:       st,
		ConsentCurrent: st.ConsentCurrent(s.consent.CurrentVersion),
	}
}
