package relationship

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const (
	maxNameLength  = 100
	maxNotesLength = 10000

	// DefaultListLimit applies when a list request carries no limit.
	DefaultListLimit = 50
	// MaxListLimit caps list requests.
	MaxListLimit = 200
)

// CreateRelationshipInput holds parameters for creating a relationship.
type CreateRelationshipInput struct {
	Name  string
	Type  domain.RelationshipType
	Notes string
}

// Validate validates the create relationship input.
func (i CreateRelationshipInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if utf8.RuneCountInString(name) > maxNameLength {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid relationship type"})
	}

	if utf8.RuneCountInString(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LogInteractionInput holds parameters for logging an interaction.
// A nil OccurredAt means now.
type LogInteractionInput struct {
	Type       domain.InteractionType
	Notes      string
	OccurredAt *time.Time
}

// Validate validates the log interaction input.
func (i LogInteractionInput) Validate() error {
	var errs []domain.FieldError

	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "invalid interaction type"})
	}

	if utf8.RuneCountInString(i.Notes) > maxNotesLength {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}

	if i.OccurredAt != nil && i.OccurredAt.IsZero() {
		errs = append(errs, domain.FieldError{Field: "occurredAt", Message: "invalid timestamp"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// normalizeLimit applies the default and the cap.
func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultListLimit
	case limit > MaxListLimit:
		return MaxListLimit
	}
	return limit
}
