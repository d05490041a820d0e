package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxDisplayNameLength is the clamp applied to display names, in characters.
const MaxDisplayNameLength = 100

// FreeTierFeatures are granted to every new account.
var FreeTierFeatures = []string{"relationship_tracking", "basic_insights"}

// NotificationPreferences holds notification toggles.
type NotificationPreferences struct {
	Push      bool
	Email     bool
	Reminders bool
}

// PrivacyPreferences mirrors PrivacySettings at account creation.
// It is a separate copy and may drift afterwards.
type PrivacyPreferences struct {
	DataCollection bool
	AIProcessing   bool
	Analytics      bool
}

// Preferences holds user-editable profile preferences.
type Preferences struct {
	Theme         Theme
	Notifications NotificationPreferences
	Privacy       PrivacyPreferences
}

// Subscription describes the plan and the features it unlocks.
type Subscription struct {
	Tier     SubscriptionTier
	Features []string
}

// ProfileStats are counters maintained with atomic increments.
type ProfileStats struct {
	TotalRelationships int
	TotalInteractions  int
	LastActiveAt       time.Time
}

// UserProfile is the root user document.
type UserProfile struct {
	UID          uuid.UUID
	Email        string
	DisplayName  string
	PhotoURL     *string
	Preferences  Preferences
	Subscription Subscription
	Stats        ProfileStats
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUserProfile builds a profile with the fixed account-creation defaults.
func NewUserProfile(uid uuid.UUID, email, displayName string, photoURL *string, privacy PrivacySettings, now time.Time) UserProfile {
	return UserProfile{
		UID:         uid,
		Email:       email,
		DisplayName: NormalizeDisplayName(displayName),
		PhotoURL:    photoURL,
		Preferences: Preferences{
			Theme: ThemeAuto,
			Notifications: NotificationPreferences{
				Push:      true,
				Email:     false,
				Reminders: true,
			},
			Privacy: PrivacyPreferences{
				DataCollection: privacy.DataCollection,
				AIProcessing:   privacy.AIProcessing,
				Analytics:      privacy.Analytics,
			},
		},
		Subscription: Subscription{
			Tier:     SubscriptionTierFree,
			Features: append([]string(nil), FreeTierFeatures...),
		},
		Stats: ProfileStats{
			LastActiveAt: now,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeDisplayName trims whitespace and clamps to MaxDisplayNameLength characters.
func NormalizeDisplayName(s string) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= MaxDisplayNameLength {
		return s
	}
	return string([]rune(s)[:MaxDisplayNameLength])
}

// CoerceTheme returns t when valid, otherwise ThemeAuto.
func CoerceTheme(t Theme) Theme {
	if t.IsValid() {
		return t
	}
	return ThemeAuto
}
