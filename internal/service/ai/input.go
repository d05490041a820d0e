package ai

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const (
	defaultTimeframeDays = 30
	maxTimeframeDays     = 365
)

// ExtractContextInput holds parameters for context extraction. When
// RelationshipID is set the result is also appended to its history.
type ExtractContextInput struct {
	Text            string
	InteractionType domain.InteractionType
	Metadata        map[string]any
	RelationshipID  *uuid.UUID
	InteractionID   *uuid.UUID
}

// SentimentInput holds parameters for sentiment analysis.
type SentimentInput struct {
	Text           string
	RelationshipID *uuid.UUID
	InteractionID  *uuid.UUID
}

// InsightsInput holds parameters for insight generation. Either
// RelationshipID or a non-empty Interactions list is required.
type InsightsInput struct {
	RelationshipID   *uuid.UUID
	RelationshipName string
	Interactions     []domain.Interaction
	TimeframeDays    int
}

func validateText(field, text string, maxChars int) *domain.FieldError {
	if strings.TrimSpace(text) == "" {
		return &domain.FieldError{Field: field, Message: "required"}
	}
	if utf8.RuneCountInString(text) > maxChars {
		return &domain.FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", maxChars)}
	}
	return nil
}

func (i ExtractContextInput) validate(maxChars int) error {
	var errs []domain.FieldError
	if fe := validateText("text", i.Text, maxChars); fe != nil {
		errs = append(errs, *fe)
	}
	if i.InteractionType != "" && !i.InteractionType.IsValid() {
		errs = append(errs, domain.FieldError{Field: "interactionType", Message: "invalid interaction type"})
	}
	if i.InteractionID != nil && i.RelationshipID == nil {
		errs = append(errs, domain.FieldError{Field: "relationshipId", Message: "required with interactionId"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i SentimentInput) validate(maxChars int) error {
	var errs []domain.FieldError
	if fe := validateText("text", i.Text, maxChars); fe != nil {
		errs = append(errs, *fe)
	}
	if i.InteractionID != nil && i.RelationshipID == nil {
		errs = append(errs, domain.FieldError{Field: "relationshipId", Message: "required with interactionId"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// validate bounds every supplied note, and all notes together, by maxChars:
// they are sent to the model in a single prompt.
func (i InsightsInput) validate(maxChars int) error {
	var errs []domain.FieldError
	if i.RelationshipID == nil && len(i.Interactions) == 0 {
		errs = append(errs, domain.FieldError{Field: "interactions", Message: "required without relationshipId"})
	}
	if i.TimeframeDays < 0 || i.TimeframeDays > maxTimeframeDays {
		errs = append(errs, domain.FieldError{Field: "timeframeDays", Message: fmt.Sprintf("must be between 1 and %d", maxTimeframeDays)})
	}
	total := 0
	for n, in := range i.Interactions {
		if in.Type != "" && !in.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("interactions[%d].type", n), Message: "invalid interaction type"})
		}
		chars := utf8.RuneCountInString(in.Notes)
		if chars > maxChars {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("interactions[%d].notes", n), Message: fmt.Sprintf("must be at most %d characters", maxChars)})
		}
		total += chars
	}
	if total > maxChars {
		errs = append(errs, domain.FieldError{Field: "interactions", Message: fmt.Sprintf("notes must total at most %d characters", maxChars)})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateBatch(texts []string, maxTexts, maxChars int) error {
	if len(texts) == 0 {
		return domain.NewValidationError("texts", "required")
	}
	if len(texts) > maxTexts {
		return domain.NewValidationError("texts", fmt.Sprintf("must contain at most %d items", maxTexts))
	}

	var errs []domain.FieldError
	for n, t := range texts {
		if fe := validateText(fmt.Sprintf("texts[%d]", n), t, maxChars); fe != nil {
			errs = append(errs, *fe)
		}
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
