package parse

import (
	"log/slog"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

// Parser wraps the fallback-total parse functions and logs a warning each
// time a fallback is taken. Raw completion text is never logged.
type Parser struct {
	log *slog.Logger
}

// NewParser creates a Parser. A nil logger discards warnings.
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{log: logger.With("component", "llm_parser")}
}

// Context parses an extraction completion.
func (p *Parser) Context(raw string) domain.ExtractedContext {
	obj, ok := ExtractObject(raw)
	if !ok {
		p.fallback("context", raw)
		return FallbackContext()
	}
	return ContextFromObject(obj)
}

// Sentiment parses a sentiment completion.
func (p *Parser) Sentiment(raw string) domain.SentimentAnalysisResult {
	obj, ok := ExtractObject(raw)
	if !ok {
		p.fallback("sentiment", raw)
		return FallbackSentiment()
	}
	return SentimentFromObject(obj)
}

// Insights parses an insights completion.
func (p *Parser) Insights(raw string) domain.InsightsResult {
	obj, ok := ExtractObject(raw)
	if !ok {
		p.fallback("insights", raw)
		return FallbackInsights()
	}
	return InsightsFromObject(obj)
}

func (p *Parser) fallback(kind, raw string) {
	p.log.Warn("model response had no JSON object, using fallback",
		slog.String("kind", kind),
		slog.Int("response_length", len(raw)),
	)
}

var quiet = NewParser(nil)

// Context is Parser.Context without logging.
func Context(raw string) domain.ExtractedContext { return quiet.Context(raw) }

// Sentiment is Parser.Sentiment without logging.
func Sentiment(raw string) domain.SentimentAnalysisResult { return quiet.Sentiment(raw) }

// Insights is Parser.Insights without logging.
func Insights(raw string) domain.InsightsResult { return quiet.Insights(raw) }
