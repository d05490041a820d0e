package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/llm/parse"
	"github.com/heartmarshall/ecomind-backend/internal/llm/prompt"
	"github.com/heartmarshall/ecomind-backend/internal/service/consent"
)

// ExtractContextFromText turns free interaction notes into a structured
// summary. A malformed model response yields the fallback result, never an
// error.
func (s *Service) ExtractContextFromText(ctx context.Context, input ExtractContextInput) (*domain.ExtractedContext, error) {
	if err := input.validate(s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	userID, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	typ := input.InteractionType
	if typ == "" {
		typ = domain.InteractionTypeOther
	}

	out, err := consent.Run(ctx, s.gate, domain.OpExtractContext, userID, func(ctx context.Context) (*domain.ExtractedContext, error) {
		if err := s.ownTarget(ctx, userID, input.RelationshipID, input.InteractionID); err != nil {
			return nil, err
		}

		raw, err := s.generate(ctx, userID, domain.OpExtractContext,
			prompt.BuildExtractionPrompt(input.Text, typ, input.Metadata),
			prompt.ParamsFor(prompt.KindExtraction, s.cfg), len(input.Text))
		if err != nil {
			return nil, err
		}

		result := s.parser.Context(raw)
		result.ProcessedAt = s.now().UTC()

		if input.RelationshipID != nil {
			payload := parse.ContextObject(result)
			payload["processedAt"] = result.ProcessedAt.Format(time.RFC3339Nano)
			payload["interactionType"] = typ.String()
			s.appendHistory(ctx, domain.HistoryEntry{
				UserID:         userID,
				RelationshipID: *input.RelationshipID,
				InteractionID:  input.InteractionID,
				Kind:           domain.HistoryKindContext,
				Payload:        payload,
			})
		}
		return &result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai.ExtractContextFromText: %w", err)
	}
	return out, nil
}

// AnalyzeInteractionSentiment scores the emotional tone of a text.
func (s *Service) AnalyzeInteractionSentiment(ctx context.Context, input SentimentInput) (*domain.SentimentAnalysisResult, error) {
	if err := input.validate(s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	userID, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	out, err := consent.Run(ctx, s.gate, domain.OpAnalyzeSentiment, userID, func(ctx context.Context) (*domain.SentimentAnalysisResult, error) {
		if err := s.ownTarget(ctx, userID, input.RelationshipID, input.InteractionID); err != nil {
			return nil, err
		}

		raw, err := s.generate(ctx, userID, domain.OpAnalyzeSentiment,
			prompt.BuildSentimentPrompt(input.Text),
			prompt.ParamsFor(prompt.KindSentiment, s.cfg), len(input.Text))
		if err != nil {
			return nil, err
		}

		result := s.parser.Sentiment(raw)
		result.AnalyzedAt = s.now().UTC()

		if input.RelationshipID != nil {
			payload := parse.SentimentObject(result)
			payload["analyzedAt"] = result.AnalyzedAt.Format(time.RFC3339Nano)
			s.appendHistory(ctx, domain.HistoryEntry{
				UserID:         userID,
				RelationshipID: *input.RelationshipID,
				InteractionID:  input.InteractionID,
				Kind:           domain.HistoryKindSentiment,
				Payload:        payload,
			})
		}
		return &result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai.AnalyzeInteractionSentiment: %w", err)
	}
	return out, nil
}

// GenerateRelationshipInsights summarises a relationship's recent
// interactions. With a RelationshipID and no supplied interactions the
// most recent stored ones are used.
func (s *Service) GenerateRelationshipInsights(ctx context.Context, input InsightsInput) (*domain.InsightsResult, error) {
	if err := input.validate(s.cfg.MaxInputChars); err != nil {
		return nil, err
	}
	userID, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}

	days := input.TimeframeDays
	if days == 0 {
		days = defaultTimeframeDays
	}

	out, err := consent.Run(ctx, s.gate, domain.OpGenerateInsights, userID, func(ctx context.Context) (*domain.InsightsResult, error) {
		name := input.RelationshipName
		interactions := input.Interactions

		if input.RelationshipID != nil {
			rel, err := s.ownRelationship(ctx, userID, input.RelationshipID)
			if err != nil {
				return nil, err
			}
			if name == "" {
				name = rel.Name
			}
			if len(interactions) == 0 {
				interactions, err = s.relationships.ListInteractions(ctx, userID, rel.ID, insightsInteractionLimit)
				if err != nil {
					return nil, err
				}
			}
		}
		if len(interactions) == 0 {
			return nil, domain.NewValidationError("interactions", "relationship has no interactions")
		}
		if name == "" {
			name = "Unnamed relationship"
		}

		text := prompt.BuildInsightsPrompt(name, interactions, days)
		raw, err := s.generate(ctx, userID, domain.OpGenerateInsights, text,
			prompt.ParamsFor(prompt.KindInsights, s.cfg), notesLength(interactions))
		if err != nil {
			return nil, err
		}

		result := s.parser.Insights(raw)
		result.GeneratedAt = s.now().UTC()

		if input.RelationshipID != nil {
			payload := parse.InsightsObject(result)
			payload["generatedAt"] = result.GeneratedAt.Format(time.RFC3339Nano)
			payload["timeframeDays"] = days
			payload["interactionCount"] = len(interactions)
			s.appendHistory(ctx, domain.HistoryEntry{
				UserID:         userID,
				RelationshipID: *input.RelationshipID,
				Kind:           domain.HistoryKindInsight,
				Payload:        payload,
			})
		}
		return &result, nil
	})
	if err != nil {
		return nil, fmt.Errorf("ai.GenerateRelationshipInsights: %w", err)
	}
	return out, nil
}

func notesLength(ins []domain.Interaction) int {
	n := 0
	for _, in := range ins {
		n += len(in.Notes)
	}
	return n
}

