package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Audited operation names.
const (
	OpPrivacySettingsUpdate   = "privacy_settings_update"
	OpDataDeletionRequest     = "data_deletion_request"
	OpDataExport              = "data_export"
	OpAccountCreated          = "account_created"
	OpExtractContext          = "extract_context"
	OpAnalyzeSentiment        = "analyze_sentiment"
	OpGenerateInsights        = "generate_insights"
	OpGenerateEmbedding       = "generate_embedding"
	OpGenerateBatchEmbeddings = "generate_batch_embeddings"
)

// Data category and purpose tags used on audit records.
const (
	DataTypePrivacySettings  = "privacy_settings"
	DataTypeProfile          = "profile"
	DataTypeRelationshipData = "relationship_data"
	DataTypeInteractionData  = "interaction_data"
	DataTypeAll              = "all_user_data"

	PurposeAIAnalysis        = "ai_analysis"
	PurposeConsentManagement = "consent_management"
	PurposeDataPortability   = "data_portability"
	PurposeRightToErasure    = "right_to_erasure"
	PurposeAccountManagement = "account_management"
)

// Actor identifies where a request came from.
type Actor struct {
	IPAddress string
	UserAgent string
}

// AuditRecord is an append-only compliance trail entry.
type AuditRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Key           string
	Operation     string
	DataTypes     []string
	Purposes      []string
	Actor         Actor
	Before        map[string]any
	After         map[string]any
	ChangedFields []string
	Details       map[string]any
	GDPRCompliant bool
	CreatedAt     time.Time
}

// AuditKey builds the per-user record key: operation, unix millis, and a
// random suffix so that same-millisecond records never collide.
func AuditKey(operation string, at time.Time, suffix string) string {
	return fmt.Sprintf("%s_%d_%s", operation, at.UnixMilli(), suffix)
}
