package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// CreateProfile initialises the account: the profile with its fixed
// defaults and the default privacy settings. Calling it again returns the
// existing profile unchanged.
func (s *Service) CreateProfile(ctx context.Context, userID uuid.UUID, input CreateProfileInput) (*domain.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var (
		profile *domain.UserProfile
		created bool
	)

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		settings, err := s.settings.CreateSettings(ctx, domain.DefaultPrivacySettings(userID, s.consent.CurrentVersion, now))
		if err != nil {
			return fmt.Errorf("create privacy settings: %w", err)
		}

		p := domain.NewUserProfile(userID, strings.TrimSpace(input.Email), input.DisplayName, input.PhotoURL, *settings, now)
		profile, created, err = s.profiles.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.CreateProfile: %w", err)
	}

	if created {
		s.audit.Record(ctx, userID, domain.AuditRecord{
			Operation:     domain.OpAccountCreated,
			DataTypes:     []string{domain.DataTypeProfile, domain.DataTypePrivacySettings},
			Purposes:      []string{domain.PurposeAccountManagement},
			Details:       map[string]any{"consentVersion": s.consent.CurrentVersion},
			GDPRCompliant: true,
		})
		s.log.InfoContext(ctx, "account created", slog.String("user_id", userID.String()))
	}

	return profile, nil
}

// GetProfile returns the profile after re-stamping its last activity.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.profiles.TouchLastActive(ctx, userID, s.now().UTC()); err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile merges the allow-listed fields of input into the stored
// profile and returns the re-read result.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, input UpdateProfileInput) (*domain.UserProfile, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	var updated *domain.UserProfile
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		cur, err := s.profiles.GetByID(ctx, userID)
		if err != nil {
			return err
		}

		next := input.Apply(*cur)
		next.UpdatedAt = s.now().UTC()

		updated, err = s.profiles.Update(ctx, next)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated", slog.String("user_id", userID.String()))

	return updated, nil
}

// DeleteAccount erases everything stored for the user immediately.
func (s *Service) DeleteAccount(ctx context.Context, userID uuid.UUID) (int, error) {
	if err := access.RequireSelf(ctx, userID); err != nil {
		return 0, err
	}

	n, err := s.eraser.Erase(ctx, userID, "user_requested")
	if err != nil {
		return n, fmt.Errorf("user.DeleteAccount: %w", err)
	}
	return n, nil
}
