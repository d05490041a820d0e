package parse

import (
	"math"
	"strings"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// Confidence reported for results built from the fixed fallback and for
// parsed results that omit their own confidence.
const (
	FallbackConfidence = 0.5
	PartialConfidence  = 0.7
)

// Placeholder summaries used when the model omits one.
const (
	ContextSummaryPlaceholder  = "Context extraction completed"
	InsightsSummaryPlaceholder = "Relationship insights generated"
)

// ---------------------------------------------------------------------------
// Context
// ---------------------------------------------------------------------------

// FallbackContext is the result returned when no JSON object can be parsed.
func FallbackContext() domain.ExtractedContext {
	return domain.ExtractedContext{
		Summary:         ContextSummaryPlaceholder,
		KeyPoints:       []string{},
		EmotionalTone:   domain.ToneNeutral,
		Topics:          []string{},
		ActionItems:     []string{},
		ConfidenceScore: FallbackConfidence,
	}
}

// ContextFromObject defaults every missing or mistyped field of obj.
func ContextFromObject(obj map[string]any) domain.ExtractedContext {
	return domain.ExtractedContext{
		Summary:         stringField(obj, "summary", ContextSummaryPlaceholder),
		KeyPoints:       stringsField(obj, "keyPoints"),
		EmotionalTone:   toneField(obj, "emotionalTone"),
		Topics:          stringsField(obj, "topics"),
		ActionItems:     stringsField(obj, "actionItems"),
		ConfidenceScore: numberField(obj, "confidenceScore", PartialConfidence, 0, 1),
	}
}

// ContextObject is the inverse of ContextFromObject.
func ContextObject(c domain.ExtractedContext) map[string]any {
	return map[string]any{
		"summary":         c.Summary,
		"keyPoints":       c.KeyPoints,
		"emotionalTone":   string(c.EmotionalTone),
		"topics":          c.Topics,
		"actionItems":     c.ActionItems,
		"confidenceScore": c.ConfidenceScore,
	}
}

// ---------------------------------------------------------------------------
// Sentiment
// ---------------------------------------------------------------------------

// FallbackSentiment is the result returned when no JSON object can be parsed.
func FallbackSentiment() domain.SentimentAnalysisResult {
	return domain.SentimentAnalysisResult{
		OverallSentiment: domain.ToneNeutral,
		SentimentScore:   0,
		Emotions:         []string{},
		KeyPhrases:       []string{},
		Confidence:       FallbackConfidence,
	}
}

// SentimentFromObject defaults every missing or mistyped field of obj.
func SentimentFromObject(obj map[string]any) domain.SentimentAnalysisResult {
	return domain.SentimentAnalysisResult{
		OverallSentiment: toneField(obj, "overallSentiment"),
		SentimentScore:   numberField(obj, "sentimentScore", 0, -1, 1),
		Emotions:         stringsField(obj, "emotions"),
		KeyPhrases:       stringsField(obj, "keyPhrases"),
		Confidence:       numberField(obj, "confidence", PartialConfidence, 0, 1),
	}
}

// SentimentObject is the inverse of SentimentFromObject.
func SentimentObject(s domain.SentimentAnalysisResult) map[string]any {
	return map[string]any{
		"overallSentiment": string(s.OverallSentiment),
		"sentimentScore":   s.SentimentScore,
		"emotions":         s.Emotions,
		"keyPhrases":       s.KeyPhrases,
		"confidence":       s.Confidence,
	}
}

// ---------------------------------------------------------------------------
// Insights
// ---------------------------------------------------------------------------

// FallbackInsights is the result returned when no JSON object can be parsed.
func FallbackInsights() domain.InsightsResult {
	return domain.InsightsResult{
		Summary:         InsightsSummaryPlaceholder,
		Trend:           domain.TrendStable,
		Strengths:       []string{},
		Concerns:        []string{},
		Recommendations: []string{},
		Confidence:      FallbackConfidence,
	}
}

// InsightsFromObject defaults every missing or mistyped field of obj.
func InsightsFromObject(obj map[string]any) domain.InsightsResult {
	trend := domain.Trend(normalizeEnum(obj["trend"]))
	if !trend.IsValid() {
		trend = domain.TrendStable
	}

	return domain.InsightsResult{
		Summary:         stringField(obj, "summary", InsightsSummaryPlaceholder),
		Trend:           trend,
		Strengths:       stringsField(obj, "strengths"),
		Concerns:        stringsField(obj, "concerns"),
		Recommendations: stringsField(obj, "recommendations"),
		Confidence:      numberField(obj, "confidence", PartialConfidence, 0, 1),
	}
}

// InsightsObject is the inverse of InsightsFromObject.
func InsightsObject(r domain.InsightsResult) map[string]any {
	return map[string]any{
		"summary":         r.Summary,
		"trend":           string(r.Trend),
		"strengths":       r.Strengths,
		"concerns":        r.Concerns,
		"recommendations": r.Recommendations,
		"confidence":      r.Confidence,
	}
}

// ---------------------------------------------------------------------------
// Field helpers
// ---------------------------------------------------------------------------

// stringField returns the value unchanged when it is a string, and def when
// the field is missing or mistyped.
func stringField(obj map[string]any, key, def string) string {
	s, ok := obj[key].(string)
	if !ok {
		return def
	}
	return s
}

// stringsField keeps the string elements of an array field exactly as sent
// and skips elements of any other type. A missing or mistyped field yields
// an empty, non-nil slice.
func stringsField(obj map[string]any, key string) []string {
	arr, ok := obj[key].([]any)
	out := make([]string, 0, len(arr))
	if !ok {
		return out
	}
	for _, v := range arr {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func numberField(obj map[string]any, key string, def, lo, hi float64) float64 {
	f, ok := obj[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return math.Max(lo, math.Min(hi, f))
}

func toneField(obj map[string]any, key string) domain.Tone {
	t := domain.Tone(normalizeEnum(obj[key]))
	if !t.IsValid() {
		return domain.ToneNeutral
	}
	return t
}

// normalizeEnum accepts "Very Positive", "very-positive" and "very_positive" alike.
func normalizeEnum(v any) string {
	s, _ := v.(string)
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.NewReplacer(" ", "_", "-", "_").Replace(s)
}
