package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const (
	maxEmailLength    = 320
	maxPhotoURLLength = 2048
)

// CreateProfileInput holds parameters for account initialisation.
type CreateProfileInput struct {
	Email       string
	DisplayName string
	PhotoURL    *string
}

// Validate validates the create profile input.
func (i CreateProfileInput) Validate() error {
	var errs []domain.FieldError

	email := strings.TrimSpace(i.Email)
	if email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(email) > maxEmailLength {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	} else if _, err := mail.ParseAddress(email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	if i.PhotoURL != nil && len(*i.PhotoURL) > maxPhotoURLLength {
		errs = append(errs, domain.FieldError{Field: "photoURL", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// NotificationsInput is a partial update of notification toggles.
type NotificationsInput struct {
	Push      *bool
	Email     *bool
	Reminders *bool
}

// PreferencesInput is a partial update of profile preferences.
// An unknown theme is coerced to auto rather than rejected.
type PreferencesInput struct {
	Theme         *domain.Theme
	Notifications *NotificationsInput
}

// UpdateProfileInput holds the allow-listed profile fields a client may
// change. Nil fields are left unchanged. An empty PhotoURL clears the photo.
type UpdateProfileInput struct {
	DisplayName *string
	PhotoURL    *string
	Preferences *PreferencesInput
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	if i.DisplayName == nil && i.PhotoURL == nil && i.Preferences == nil {
		return domain.NewValidationError("input", "no updatable fields provided")
	}

	var errs []domain.FieldError

	if i.DisplayName != nil && strings.TrimSpace(*i.DisplayName) == "" {
		errs = append(errs, domain.FieldError{Field: "displayName", Message: "cannot be empty"})
	}

	if i.PhotoURL != nil && len(*i.PhotoURL) > maxPhotoURLLength {
		errs = append(errs, domain.FieldError{Field: "photoURL", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Apply merges the input over p. Display names are trimmed and clamped.
func (i UpdateProfileInput) Apply(p domain.UserProfile) domain.UserProfile {
	if i.DisplayName != nil {
		p.DisplayName = domain.NormalizeDisplayName(*i.DisplayName)
	}

	if i.PhotoURL != nil {
		if *i.PhotoURL == "" {
			p.PhotoURL = nil
		} else {
			url := *i.PhotoURL
			p.PhotoURL = &url
		}
	}

	if prefs := i.Preferences; prefs != nil {
		if prefs.Theme != nil {
			p.Preferences.Theme = domain.CoerceTheme(*prefs.Theme)
		}
		if n := prefs.Notifications; n != nil {
			if n.Push != nil {
				p.Preferences.Notifications.Push = *n.Push
			}
			if n.Email != nil {
				p.Preferences.Notifications.Email = *n.Email
			}
			if n.Reminders != nil {
				p.Preferences.Notifications.Reminders = *n.Reminders
			}
		}
	}

	return p
}
