package domain

import (
	"time"

	"github.com/google/uuid"
)

// PrivacySettings is the per-user consent record.
type PrivacySettings struct {
	UserID         uuid.UUID
	DataCollection bool
	AIProcessing   bool
	Analytics      bool
	CrashReporting bool
	Marketing      bool
	LastUpdated    time.Time
	ConsentVersion string
}

// DefaultPrivacySettings returns the conservative settings created on first read.
func DefaultPrivacySettings(userID uuid.UUID, consentVersion string, now time.Time) PrivacySettings {
	return PrivacySettings{
		UserID:         userID,
		DataCollection: true,
		AIProcessing:   false,
		Analytics:      false,
		CrashReporting: true,
		Marketing:      false,
		LastUpdated:    now,
		ConsentVersion: consentVersion,
	}
}

// ConsentCurrent reports whether the stored consent was given for currentVersion.
func (s PrivacySettings) ConsentCurrent(currentVersion string) bool {
	return s.ConsentVersion == currentVersion
}

// AllowsAI reports whether AI operations may run for this user.
func (s PrivacySettings) AllowsAI(currentVersion string) bool {
	return s.AIProcessing && s.ConsentCurrent(currentVersion)
}

// Snapshot renders the settings as a flat map for audit before/after records.
func (s PrivacySettings) Snapshot() map[string]any {
	return map[string]any{
		"dataCollection": s.DataCollection,
		"aiProcessing":   s.AIProcessing,
		"analytics":      s.Analytics,
		"crashReporting": s.CrashReporting,
		"marketing":      s.Marketing,
		"lastUpdated":    s.LastUpdated.UTC().Format(time.RFC3339Nano),
		"consentVersion": s.ConsentVersion,
	}
}

// PrivacySettingsPatch is a partial update. Nil fields are left unchanged.
// lastUpdated and consentVersion are not client-settable.
type PrivacySettingsPatch struct {
	DataCollection *bool
	AIProcessing   *bool
	Analytics      *bool
	CrashReporting *bool
	Marketing      *bool
}

// Apply shallow-merges the patch over s and returns the result.
func (p PrivacySettingsPatch) Apply(s PrivacySettings) PrivacySettings {
	if p.DataCollection != nil {
		s.DataCollection = *p.DataCollection
	}
	if p.AIProcessing != nil {
		s.AIProcessing = *p.AIProcessing
	}
	if p.Analytics != nil {
		s.Analytics = *p.Analytics
	}
	if p.CrashReporting != nil {
		s.CrashReporting = *p.CrashReporting
	}
	if p.Marketing != nil {
		s.Marketing = *p.Marketing
	}
	return s
}

// FieldNames lists the top-level field names supplied in the patch.
func (p PrivacySettingsPatch) FieldNames() []string {
	fields := make([]string, 0, 5)
	if p.DataCollection != nil {
		fields = append(fields, "dataCollection")
	}
	if p.AIProcessing != nil {
		fields = append(fields, "aiProcessing")
	}
	if p.Analytics != nil {
		fields = append(fields, "analytics")
	}
	if p.CrashReporting != nil {
		fields = append(fields, "crashReporting")
	}
	if p.Marketing != nil {
		fields = append(fields, "marketing")
	}
	return fields
}
