package privacy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/access"
)

// exportLimit bounds every list read by an export.
const exportLimit = 10000

// Export is a serialized user data export.
type Export struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ExportUserData collects everything stored for the user and serializes it
// as JSON (the default) or YAML.
func (s *Service) ExportUserData(ctx context.Context, userID uuid.UUID, format domain.ExportFormat) (*Export, error) {
	if format == "" {
		format = domain.ExportFormatJSON
	}
	if !format.IsValid() {
		return nil, domain.NewValidationError("format", "must be json or yaml")
	}

	if err := access.RequireSelf(ctx, userID); err != nil {
		return nil, err
	}

	doc, err := s.collect(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("privacy.ExportUserData: %w", err)
	}

	out := &Export{Filename: fmt.Sprintf("ecomind-export-%s.%s", userID, format)}
	switch format {
	case domain.ExportFormatYAML:
		out.ContentType = "application/yaml"
		out.Data, err = yaml.Marshal(doc)
	default:
		out.ContentType = "application/json"
		out.Data, err = json.MarshalIndent(doc, "", "  ")
	}
	if err != nil {
		return nil, fmt.Errorf("privacy.ExportUserData: encode %s: %w", format, err)
	}

	s.audit.Record(ctx, userID, domain.AuditRecord{
		Operation: domain.OpDataExport,
		DataTypes: []string{domain.DataTypeAll},
		Purposes:  []string{domain.PurposeDataPortability},
		Details: map[string]any{
			"format":        string(format),
			"relationships": len(doc.Relationships),
			"interactions":  len(doc.Interactions),
		},
		GDPRCompliant: true,
	})

	s.log.InfoContext(ctx, "user data exported",
		slog.String("user_id", userID.String()),
		slog.String("format", string(format)),
		slog.Int("bytes", len(out.Data)),
	)
	return out, nil
}

type exportDocument struct {
	ExportedAt      time.Time            `json:"exportedAt"      yaml:"exportedAt"`
	UserID          string               `json:"userId"          yaml:"userId"`
	Profile         *exportProfile       `json:"profile"         yaml:"profile"`
	PrivacySettings map[string]any       `json:"privacySettings" yaml:"privacySettings"`
	Relationships   []exportRelationship `json:"relationships"   yaml:"relationships"`
	Interactions    []exportInteraction  `json:"interactions"    yaml:"interactions"`
	AIHistory       exportHistory        `json:"aiHistory"       yaml:"aiHistory"`
	AuditTrail      []exportAudit        `json:"auditTrail"      yaml:"auditTrail"`
}

type exportProfile struct {
	Email        string         `json:"email"        yaml:"email"`
	DisplayName  string         `json:"displayName"  yaml:"displayName"`
	PhotoURL     *string        `json:"photoURL"     yaml:"photoURL"`
	Preferences  map[string]any `json:"preferences"  yaml:"preferences"`
	Subscription map[string]any `json:"subscription" yaml:"subscription"`
	Stats        map[string]any `json:"stats"        yaml:"stats"`
	CreatedAt    time.Time      `json:"createdAt"    yaml:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"    yaml:"updatedAt"`
}

type exportRelationship struct {
	ID        string    `json:"id"        yaml:"id"`
	Name      string    `json:"name"      yaml:"name"`
	Type      string    `json:"type"      yaml:"type"`
	Notes     string    `json:"notes"     yaml:"notes"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

type exportInteraction struct {
	ID             string    `json:"id"             yaml:"id"`
	RelationshipID string    `json:"relationshipId" yaml:"relationshipId"`
	Type           string    `json:"type"           yaml:"type"`
	Notes          string    `json:"notes"          yaml:"notes"`
	OccurredAt     time.Time `json:"occurredAt"     yaml:"occurredAt"`
}

type exportHistory struct {
	Context   []exportHistoryEntry `json:"context"   yaml:"context"`
	Sentiment []exportHistoryEntry `json:"sentiment" yaml:"sentiment"`
	Insight   []exportHistoryEntry `json:"insight"   yaml:"insight"`
}

type exportHistoryEntry struct {
	ID             string         `json:"id"                      yaml:"id"`
	RelationshipID string         `json:"relationshipId"          yaml:"relationshipId"`
	InteractionID  string         `json:"interactionId,omitempty" yaml:"interactionId,omitempty"`
	Payload        map[string]any `json:"payload"                 yaml:"payload"`
	CreatedAt      time.Time      `json:"createdAt"               yaml:"createdAt"`
}

type exportAudit struct {
	Key           string         `json:"key"                     yaml:"key"`
	Operation     string         `json:"operation"               yaml:"operation"`
	DataTypes     []string       `json:"dataTypes"               yaml:"dataTypes"`
	Purposes      []string       `json:"purposes"                yaml:"purposes"`
	IPAddress     string         `json:"ipAddress,omitempty"     yaml:"ipAddress,omitempty"`
	UserAgent     string         `json:"userAgent,omitempty"     yaml:"userAgent,omitempty"`
	Before        map[string]any `json:"before,omitempty"        yaml:"before,omitempty"`
	After         map[string]any `json:"after,omitempty"         yaml:"after,omitempty"`
	ChangedFields []string       `json:"changedFields,omitempty" yaml:"changedFields,omitempty"`
	Details       map[string]any `json:"details,omitempty"       yaml:"details,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"               yaml:"createdAt"`
}

func (s *Service) collect(ctx context.Context, userID uuid.UUID) (*exportDocument, error) {
	doc := &exportDocument{
		ExportedAt:    s.now().UTC(),
		UserID:        userID.String(),
		Relationships: []exportRelationship{},
		Interactions:  []exportInteraction{},
		AuditTrail:    []exportAudit{},
	}

	p, err := s.profiles.GetByID(ctx, userID)
	switch {
	case err == nil:
		doc.Profile = toExportProfile(*p)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("profile: %w", err)
	}

	st, err := s.settings.GetSettings(ctx, userID)
	switch {
	case err == nil:
		doc.PrivacySettings = st.Snapshot()
	case !errors.Is(err, domain.ErrNotFound):
		return nil, fmt.Errorf("privacy settings: %w", err)
	}

	rels, err := s.relationships.List(ctx, userID, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("relationships: %w", err)
	}
	for _, r := range rels {
		doc.Relationships = append(doc.Relationships, exportRelationship{
			ID: r.ID.String(), Name: r.Name, Type: r.Type.String(), Notes: r.Notes, CreatedAt: r.CreatedAt,
		})

		ins, err := s.relationships.ListInteractions(ctx, userID, r.ID, exportLimit)
		if err != nil {
			return nil, fmt.Errorf("interactions: %w", err)
		}
		for _, in := range ins {
			doc.Interactions = append(doc.Interactions, exportInteraction{
				ID: in.ID.String(), RelationshipID: in.RelationshipID.String(),
				Type: in.Type.String(), Notes: in.Notes, OccurredAt: in.OccurredAt,
			})
		}
	}

	for _, kind := range []domain.HistoryKind{domain.HistoryKindContext, domain.HistoryKindSentiment, domain.HistoryKindInsight} {
		entries, err := s.history.ListByUser(ctx, userID, kind, exportLimit)
		if err != nil {
			return nil, fmt.Errorf("%s history: %w", kind, err)
		}
		out := make([]exportHistoryEntry, 0, len(entries))
		for _, e := range entries {
			he := exportHistoryEntry{
				ID: e.ID.String(), RelationshipID: e.RelationshipID.String(),
				Payload: e.Payload, CreatedAt: e.CreatedAt,
			}
			if e.InteractionID != nil {
				he.InteractionID = e.InteractionID.String()
			}
			out = append(out, he)
		}
		switch kind {
		case domain.HistoryKindContext:
			doc.AIHistory.Context = out
		case domain.HistoryKindSentiment:
			doc.AIHistory.Sentiment = out
		case domain.HistoryKindInsight:
			doc.AIHistory.Insight = out
		}
	}

	recs, err := s.audit.List(ctx, userID, exportLimit)
	if err != nil {
		return nil, fmt.Errorf("audit trail: %w", err)
	}
	for _, r := range recs {
		doc.AuditTrail = append(doc.AuditTrail, exportAudit{
			Key: r.Key, Operation: r.Operation, DataTypes: r.DataTypes, Purposes: r.Purposes,
			IPAddress: r.Actor.IPAddress, UserAgent: r.Actor.UserAgent,
			Before: r.Before, After: r.After,
			ChangedFields: r.ChangedFields, Details: r.Details, CreatedAt: r.CreatedAt,
		})
	}

	return doc, nil
}

func toExportProfile(p domain.UserProfile) *exportProfile {
	return &exportProfile{
		Email:       p.Email,
		DisplayName: p.DisplayName,
		PhotoURL:    p.PhotoURL,
		Preferences: map[string]any{
			"theme": p.Preferences.Theme.String(),
			"notifications": map[string]any{
				"push":      p.Preferences.Notifications.Push,
				"email":     p.Preferences.Notifications.Email,
				"reminders": p.Preferences.Notifications.Reminders,
			},
			"privacy": map[string]any{
				"dataCollection": p.Preferences.Privacy.DataCollection,
				"aiProcessing":   p.Preferences.Privacy.AIProcessing,
				"analytics":      p.Preferences.Privacy.Analytics,
			},
		},
		Subscription: map[string]any{
			"tier":     p.Subscription.Tier.String(),
			"features": p.Subscription.Features,
		},
		Stats: map[string]any{
			"totalRelationships": p.Stats.TotalRelationships,
			"totalInteractions":  p.Stats.TotalInteractions,
			"lastActiveAt":       p.Stats.LastActiveAt.UTC().Format(time.RFC3339),
		},
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
