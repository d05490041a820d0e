package domain

// Theme is the UI theme preference stored on a profile.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
	ThemeAuto  Theme = "auto"
)

func (t Theme) String() string { return string(t) }

func (t Theme) IsValid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeAuto:
		return true
	}
	return false
}

// SubscriptionTier identifies the user's plan.
type SubscriptionTier string

const (
	SubscriptionTierFree    SubscriptionTier = "free"
	SubscriptionTierPremium SubscriptionTier = "premium"
)

func (t SubscriptionTier) String() string { return string(t) }

func (t SubscriptionTier) IsValid() bool {
	switch t {
	case SubscriptionTierFree, SubscriptionTierPremium:
		return true
	}
	return false
}

// RelationshipType categorises a tracked relationship.
type RelationshipType string

const (
	RelationshipTypeFamily    RelationshipType = "family"
	RelationshipTypeFriend    RelationshipType = "friend"
	RelationshipTypePartner   RelationshipType = "partner"
	RelationshipTypeColleague RelationshipType = "colleague"
	RelationshipTypeOther     RelationshipType = "other"
)

func (t RelationshipType) String() string { return string(t) }

func (t RelationshipType) IsValid() bool {
	switch t {
	case RelationshipTypeFamily, RelationshipTypeFriend, RelationshipTypePartner,
		RelationshipTypeColleague, RelationshipTypeOther:
		return true
	}
	return false
}

// InteractionType describes how an interaction happened.
type InteractionType string

const (
	InteractionTypeInPerson InteractionType = "in_person"
	InteractionTypeCall     InteractionType = "call"
	InteractionTypeMessage  InteractionType = "message"
	InteractionTypeVideo    InteractionType = "video"
	InteractionTypeOther    InteractionType = "other"
)

func (t InteractionType) String() string { return string(t) }

func (t InteractionType) IsValid() bool {
	switch t {
	case InteractionTypeInPerson, InteractionTypeCall, InteractionTypeMessage,
		InteractionTypeVideo, InteractionTypeOther:
		return true
	}
	return false
}

// Tone is the emotional tone vocabulary shared by context extraction and
// sentiment analysis.
type Tone string

const (
	ToneVeryPositive Tone = "very_positive"
	TonePositive     Tone = "positive"
	ToneNeutral      Tone = "neutral"
	ToneNegative     Tone = "negative"
	ToneVeryNegative Tone = "very_negative"
	ToneMixed        Tone = "mixed"
)

func (t Tone) String() string { return string(t) }

func (t Tone) IsValid() bool {
	switch t {
	case ToneVeryPositive, TonePositive, ToneNeutral, ToneNegative, ToneVeryNegative, ToneMixed:
		return true
	}
	return false
}

// Trend is the direction of a relationship over a timeframe.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

func (t Trend) String() string { return string(t) }

func (t Trend) IsValid() bool {
	switch t {
	case TrendImproving, TrendStable, TrendDeclining:
		return true
	}
	return false
}

// DeletionStatus is the lifecycle state of a data deletion request.
type DeletionStatus string

const (
	DeletionStatusPending   DeletionStatus = "pending"
	DeletionStatusCompleted DeletionStatus = "completed"
	DeletionStatusFailed    DeletionStatus = "failed"
)

func (s DeletionStatus) String() string { return string(s) }

func (s DeletionStatus) IsValid() bool {
	switch s {
	case DeletionStatusPending, DeletionStatusCompleted, DeletionStatusFailed:
		return true
	}
	return false
}

// ExportFormat is the serialization used for a user data export.
type ExportFormat string

const (
	ExportFormatJSON ExportFormat = "json"
	ExportFormatYAML ExportFormat = "yaml"
)

func (f ExportFormat) String() string { return string(f) }

func (f ExportFormat) IsValid() bool {
	switch f {
	case ExportFormatJSON, ExportFormatYAML:
		return true
	}
	return false
}
