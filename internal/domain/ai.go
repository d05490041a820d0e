package domain

import (
	"time"

	"github.com/google/uuid"
)

// ExtractedContext is the structured result of context extraction.
type ExtractedContext struct {
	Summary         string
	KeyPoints       []string
	EmotionalTone   Tone
	Topics          []string
	ActionItems     []string
	ConfidenceScore float64
	ProcessedAt     time.Time
}

// SentimentAnalysisResult is the structured result of sentiment analysis.
type SentimentAnalysisResult struct {
	OverallSentiment Tone
	SentimentScore   float64
	Emotions         []string
	KeyPhrases       []string
	Confidence       float64
	AnalyzedAt       time.Time
}

// InsightsResult is the structured result of relationship insight generation.
type InsightsResult struct {
	Summary         string
	Trend           Trend
	Strengths       []string
	Concerns        []string
	Recommendations []string
	Confidence      float64
	GeneratedAt     time.Time
}

// Embedding is a dense vector produced by the embedding model.
type Embedding struct {
	Values     []float32
	Model      string
	Dimensions int
}

// HistoryKind selects which AI history collection an entry belongs to.
type HistoryKind string

const (
	HistoryKindContext   HistoryKind = "context"
	HistoryKindSentiment HistoryKind = "sentiment"
	HistoryKindInsight   HistoryKind = "insight"
)

func (k HistoryKind) String() string { return string(k) }

func (k HistoryKind) IsValid() bool {
	switch k {
	case HistoryKindContext, HistoryKindSentiment, HistoryKindInsight:
		return true
	}
	return false
}

// HistoryEntry is a write-once AI result attached to a relationship.
type HistoryEntry struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	RelationshipID uuid.UUID
	InteractionID  *uuid.UUID
	Kind           HistoryKind
	Payload        map[string]any
	CreatedAt      time.Time
}
