// Package prompt renders the fixed model prompts for context extraction,
// sentiment analysis and relationship insights. Rendering is deterministic:
// the same input always yields the same prompt.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

const privacyRule = "- Do not include names, addresses, phone numbers, health details or other sensitive personal information in the output"

// BuildExtractionPrompt renders the context extraction prompt. metadata is
// embedded as indented JSON and omitted when empty.
func BuildExtractionPrompt(text string, interactionType domain.InteractionType, metadata map[string]any) string {
	var b strings.Builder

	b.WriteString("You analyze notes about personal relationships and extract structured context.\n\n")
	fmt.Fprintf(&b, "Interaction type: %s\n\n", interactionType)
	fmt.Fprintf(&b, "Text:\n\"\"\"\n%s\n\"\"\"\n\n", text)

	if md := metadataJSON(metadata); md != "" {
		fmt.Fprintf(&b, "Additional metadata:\n%s\n\n", md)
	}

	b.WriteString(`Output ONLY a valid JSON object matching this exact schema:
{
  "summary": "<one or two sentence summary>",
  "keyPoints": ["<key point>"],
  "emotionalTone": "<very_positive|positive|neutral|negative|very_negative|mixed>",
  "topics": ["<topic>"],
  "actionItems": ["<follow-up the user could take>"],
  "confidenceScore": <number between 0 and 1>
}

Rules:
`)
	b.WriteString(privacyRule)
	b.WriteString(`
- Use an empty array when there is nothing to list
- Output ONLY the JSON, no markdown, no explanations`)

	return b.String()
}

// BuildSentimentPrompt renders the sentiment analysis prompt.
func BuildSentimentPrompt(text string) string {
	return fmt.Sprintf(`You analyze the sentiment of a note about a personal interaction.

Text:
"""
%s
"""

Output ONLY a valid JSON object matching this exact schema:
{
  "overallSentiment": "<very_positive|positive|neutral|negative|very_negative|mixed>",
  "sentimentScore": <number between -1 and 1>,
  "emotions": ["<emotion>"],
  "keyPhrases": ["<short phrase from the text>"],
  "confidence": <number between 0 and 1>
}

Rules:
%s
- Output ONLY the JSON, no markdown, no explanations`, text, privacyRule)
}

// BuildInsightsPrompt renders the relationship insights prompt over the
// given interactions, most recent first as supplied.
func BuildInsightsPrompt(relationshipName string, interactions []domain.Interaction, timeframeDays int) string {
	var b strings.Builder

	b.WriteString("You are a thoughtful relationship coach.\n\n")
	fmt.Fprintf(&b, "Relationship: %s\n", relationshipName)
	fmt.Fprintf(&b, "Timeframe: last %d days\n", timeframeDays)
	fmt.Fprintf(&b, "Interactions (%d):\n", len(interactions))
	for i, in := range interactions {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, in.OccurredAt.UTC().Format("2006-01-02"), in.Type)
		if notes := strings.TrimSpace(in.Notes); notes != "" {
			fmt.Fprintf(&b, ": %s", notes)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
Output ONLY a valid JSON object matching this exact schema:
{
  "summary": "<short overview of the relationship in this timeframe>",
  "trend": "<improving|stable|declining>",
  "strengths": ["<strength>"],
  "concerns": ["<concern>"],
  "recommendations": ["<concrete, kind suggestion>"],
  "confidence": <number between 0 and 1>
}

Rules:
`)
	b.WriteString(privacyRule)
	b.WriteString(`
- Output ONLY the JSON, no markdown, no explanations`)

	return b.String()
}

func metadataJSON(metadata map[string]any) string {
	if len(metadata) == 0 {
		return ""
	}
	// json sorts map keys, which keeps the output stable.
	b, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}
