package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/ai"
)

type aiService interface {
	ExtractContextFromText(ctx context.Context, input ai.ExtractContextInput) (*domain.ExtractedContext, error)
	AnalyzeInteractionSentiment(ctx context.Context, input ai.SentimentInput) (*domain.SentimentAnalysisResult, error)
	GenerateRelationshipInsights(ctx context.Context, input ai.InsightsInput) (*domain.InsightsResult, error)
	GenerateEmbedding(ctx context.Context, text string) (*domain.Embedding, error)
	GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]domain.Embedding, error)
}

// AIHandler serves the consent-gated AI endpoints.
type AIHandler struct {
	svc aiService
	log *slog.Logger
}

// NewAIHandler creates an AIHandler.
func NewAIHandler(svc aiService, logger *slog.Logger) *AIHandler {
	return &AIHandler{svc: svc, log: logger.With("handler", "ai")}
}

type extractContextRequest struct {
	Text            string         `json:"text"`
	InteractionType string         `json:"interactionType"`
	Metadata        map[string]any `json:"metadata"`
	RelationshipID  *uuid.UUID     `json:"relationshipId"`
	InteractionID   *uuid.UUID     `json:"interactionId"`
}

type sentimentRequest struct {
	Text           string     `json:"text"`
	RelationshipID *uuid.UUID `json:"relationshipId"`
	InteractionID  *uuid.UUID `json:"interactionId"`
}

type insightInteraction struct {
	Type       string    `json:"type"`
	Notes      string    `json:"notes"`
	OccurredAt time.Time `json:"occurredAt"`
}

type insightsRequest struct {
	RelationshipID   *uuid.UUID           `json:"relationshipId"`
	RelationshipName string               `json:"relationshipName"`
	Interactions     []insightInteraction `json:"interactions"`
	TimeframeDays    int                  `json:"timeframeDays"`
}

type embeddingRequest struct {
	Text string `json:"text"`
}

type batchEmbeddingRequest struct {
	Texts []string `json:"texts"`
}

type extractedContextResponse struct {
	Summary         string    `json:"summary"`
	KeyPoints       []string  `json:"keyPoints"`
	EmotionalTone   string    `json:"emotionalTone"`
	Topics          []string  `json:"topics"`
	ActionItems     []string  `json:"actionItems"`
	ConfidenceScore float64   `json:"confidenceScore"`
	ProcessedAt     time.Time `json:"processedAt"`
}

type sentimentResponse struct {
	OverallSentiment string    `json:"overallSentiment"`
	SentimentScore   float64   `json:"sentimentScore"`
	Emotions         []string  `json:"emotions"`
	KeyPhrases       []string  `json:"keyPhrases"`
	Confidence       float64   `json:"confidence"`
	AnalyzedAt       time.Time `json:"analyzedAt"`
}

type insightsResponse struct {
	Summary         string    `json:"summary"`
	Trend           string    `json:"trend"`
	Strengths       []string  `json:"strengths"`
	Concerns        []string  `json:"concerns"`
	Recommendations []string  `json:"recommendations"`
	Confidence      float64   `json:"confidence"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

type embeddingResponse struct {
	Embedding  []float32 `json:"embedding"`
	Model      string    `json:"model"`
	Dimensions int       `json:"dimensions"`
}

type batchEmbeddingResponse struct {
	Embeddings []embeddingResponse `json:"embeddings"`
	Count      int                 `json:"count"`
}

// ExtractContext handles POST /v1/ai/context.
func (h *AIHandler) ExtractContext(w http.ResponseWriter, r *http.Request) {
	var req extractContextRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.ExtractContextFromText(r.Context(), ai.ExtractContextInput{
		Text:            req.Text,
		InteractionType: domain.InteractionType(req.InteractionType),
		Metadata:        req.Metadata,
		RelationshipID:  req.RelationshipID,
		InteractionID:   req.InteractionID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, extractedContextResponse{
		Summary:         res.Summary,
		KeyPoints:       nonNil(res.KeyPoints),
		EmotionalTone:   string(res.EmotionalTone),
		Topics:          nonNil(res.Topics),
		ActionItems:     nonNil(res.ActionItems),
		ConfidenceScore: res.ConfidenceScore,
		ProcessedAt:     res.ProcessedAt,
	})
}

// AnalyzeSentiment handles POST /v1/ai/sentiment.
func (h *AIHandler) AnalyzeSentiment(w http.ResponseWriter, r *http.Request) {
	var req sentimentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	res, err := h.svc.AnalyzeInteractionSentiment(r.Context(), ai.SentimentInput{
		Text:           req.Text,
		RelationshipID: req.RelationshipID,
		InteractionID:  req.InteractionID,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, sentimentResponse{
		OverallSentiment: string(res.OverallSentiment),
		SentimentScore:   res.SentimentScore,
		Emotions:         nonNil(res.Emotions),
		KeyPhrases:       nonNil(res.KeyPhrases),
		Confidence:       res.Confidence,
		AnalyzedAt:       res.AnalyzedAt,
	})
}

// GenerateInsights handles POST /v1/ai/insights.
func (h *AIHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	in := ai.InsightsInput{
		RelationshipID:   req.RelationshipID,
		RelationshipName: req.RelationshipName,
		TimeframeDays:    req.TimeframeDays,
	}
	for _, it := range req.Interactions {
		in.Interactions = append(in.Interactions, domain.Interaction{
			Type:       domain.InteractionType(it.Type),
			Notes:      it.Notes,
			OccurredAt: it.OccurredAt,
		})
	}

	res, err := h.svc.GenerateRelationshipInsights(r.Context(), in)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, insightsResponse{
		Summary:         res.Summary,
		Trend:           string(res.Trend),
		Strengths:       nonNil(res.Strengths),
		Concerns:        nonNil(res.Concerns),
		Recommendations: nonNil(res.Recommendations),
		Confidence:      res.Confidence,
		GeneratedAt:     res.GeneratedAt,
	})
}

// GenerateEmbedding handles POST /v1/ai/embedding.
func (h *AIHandler) GenerateEmbedding(w http.ResponseWriter, r *http.Request) {
	var req embeddingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	e, err := h.svc.GenerateEmbedding(r.Context(), req.Text)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toEmbeddingResponse(*e))
}

// GenerateBatchEmbeddings handles POST /v1/ai/embeddings.
func (h *AIHandler) GenerateBatchEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req batchEmbeddingRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	es, err := h.svc.GenerateBatchEmbeddings(r.Context(), req.Texts)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	resp := batchEmbeddingResponse{Embeddings: make([]embeddingResponse, len(es)), Count: len(es)}
	for i, e := range es {
		resp.Embeddings[i] = toEmbeddingResponse(e)
	}
	writeJSON(w, http.StatusOK, resp)
}

func toEmbeddingResponse(e domain.Embedding) embeddingResponse {
	return embeddingResponse{Embedding: e.Values, Model: e.Model, Dimensions: e.Dimensions}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
