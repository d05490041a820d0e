package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/ai"
)

var _ aiService = &aiServiceMock{}

type aiServiceMock struct {
	ExtractContextFromTextFunc       func(ctx context.Context, input ai.ExtractContextInput) (*domain.ExtractedContext, error)
	AnalyzeInteractionSentimentFunc  func(ctx context.Context, input ai.SentimentInput) (*domain.SentimentAnalysisResult, error)
	GenerateRelationshipInsightsFunc func(ctx context.Context, input ai.InsightsInput) (*domain.InsightsResult, error)
	GenerateEmbeddingFunc            func(ctx context.Context, text string) (*domain.Embedding, error)
	GenerateBatchEmbeddingsFunc      func(ctx context.Context, texts []string) ([]domain.Embedding, error)

	calls struct {
		ExtractContextFromText []struct {
			Ctx   context.Context
			Input ai.ExtractContextInput
		}
		AnalyzeInteractionSentiment []struct {
			Ctx   context.Context
			Input ai.SentimentInput
		}
		GenerateRelationshipInsights []struct {
			Ctx   context.Context
			Input ai.InsightsInput
		}
		GenerateEmbedding []struct {
			Ctx  context.Context
			Text string
		}
		GenerateBatchEmbeddings []struct {
			Ctx   context.Context
			Texts []string
		}
	}
	lockExtractContextFromText       sync.RWMutex
	lockAnalyzeInteractionSentiment  sync.RWMutex
	lockGenerateRelationshipInsights sync.RWMutex
	lockGenerateEmbedding            sync.RWMutex
	lockGenerateBatchEmbeddings      sync.RWMutex
}

func (mock *aiServiceMock) ExtractContextFromText(ctx context.Context, input ai.ExtractContextInput) (*domain.ExtractedContext, error) {
	if mock.ExtractContextFromTextFunc == nil {
		panic("aiServiceMock.ExtractContextFromTextFunc: method is nil but aiService.ExtractContextFromText was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.ExtractContextInput
	}{Ctx: ctx, Input: input}
	mock.lockExtractContextFromText.Lock()
	mock.calls.ExtractContextFromText = append(mock.calls.ExtractContextFromText, callInfo)
	mock.lockExtractContextFromText.Unlock()
	return mock.ExtractContextFromTextFunc(ctx, input)
}

func (mock *aiServiceMock) ExtractContextFromTextCalls() []struct {
	Ctx   context.Context
	Input ai.ExtractContextInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.ExtractContextInput
	}
	mock.lockExtractContextFromText.RLock()
	calls = mock.calls.ExtractContextFromText
	mock.lockExtractContextFromText.RUnlock()
	return calls
}

func (mock *aiServiceMock) AnalyzeInteractionSentiment(ctx context.Context, input ai.SentimentInput) (*domain.SentimentAnalysisResult, error) {
	if mock.AnalyzeInteractionSentimentFunc == nil {
		panic("aiServiceMock.AnalyzeInteractionSentimentFunc: method is nil but aiService.AnalyzeInteractionSentiment was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.SentimentInput
	}{Ctx: ctx, Input: input}
	mock.lockAnalyzeInteractionSentiment.Lock()
	mock.calls.AnalyzeInteractionSentiment = append(mock.calls.AnalyzeInteractionSentiment, callInfo)
	mock.lockAnalyzeInteractionSentiment.Unlock()
	return mock.AnalyzeInteractionSentimentFunc(ctx, input)
}

func (mock *aiServiceMock) AnalyzeInteractionSentimentCalls() []struct {
	Ctx   context.Context
	Input ai.SentimentInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.SentimentInput
	}
	mock.lockAnalyzeInteractionSentiment.RLock()
	calls = mock.calls.AnalyzeInteractionSentiment
	mock.lockAnalyzeInteractionSentiment.RUnlock()
	return calls
}

func (mock *aiServiceMock) GenerateRelationshipInsights(ctx context.Context, input ai.InsightsInput) (*domain.InsightsResult, error) {
	if mock.GenerateRelationshipInsightsFunc == nil {
		panic("aiServiceMock.GenerateRelationshipInsightsFunc: method is nil but aiService.GenerateRelationshipInsights was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input ai.InsightsInput
	}{Ctx: ctx, Input: input}
	mock.lockGenerateRelationshipInsights.Lock()
	mock.calls.GenerateRelationshipInsights = append(mock.calls.GenerateRelationshipInsights, callInfo)
	mock.lockGenerateRelationshipInsights.Unlock()
	return mock.GenerateRelationshipInsightsFunc(ctx, input)
}

func (mock *aiServiceMock) GenerateRelationshipInsightsCalls() []struct {
	Ctx   context.Context
	Input ai.InsightsInput
} {
	var calls []struct {
		Ctx   context.Context
		Input ai.InsightsInput
	}
	mock.lockGenerateRelationshipInsights.RLock()
	calls = mock.calls.GenerateRelationshipInsights
	mock.lockGenerateRelationshipInsights.RUnlock()
	return calls
}

func (mock *aiServiceMock) GenerateEmbedding(ctx context.Context, text string) (*domain.Embedding, error) {
	if mock.GenerateEmbeddingFunc == nil {
		panic("aiServiceMock.GenerateEmbeddingFunc: method is nil but aiService.GenerateEmbedding was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockGenerateEmbedding.Lock()
	mock.calls.GenerateEmbedding = append(mock.calls.GenerateEmbedding, callInfo)
	mock.lockGenerateEmbedding.Unlock()
	return mock.GenerateEmbeddingFunc(ctx, text)
}

func (mock *aiServiceMock) GenerateEmbeddingCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockGenerateEmbedding.RLock()
	calls = mock.calls.GenerateEmbedding
	mock.lockGenerateEmbedding.RUnlock()
	return calls
}

func (mock *aiServiceMock) GenerateBatchEmbeddings(ctx context.Context, texts []string) ([]domain.Embedding, error) {
	if mock.GenerateBatchEmbeddingsFunc == nil {
		panic("aiServiceMock.GenerateBatchEmbeddingsFunc: method is nil but aiService.GenerateBatchEmbeddings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Texts []string
	}{Ctx: ctx, Texts: texts}
	mock.lockGenerateBatchEmbeddings.Lock()
	mock.calls.GenerateBatchEmbeddings = append(mock.calls.GenerateBatchEmbeddings, callInfo)
	mock.lockGenerateBatchEmbeddings.Unlock()
	return mock.GenerateBatchEmbeddingsFunc(ctx, texts)
}

func (mock *aiServiceMock) GenerateBatchEmbeddingsCalls() []struct {
	Ctx   context.Context
	Texts []string
} {
	var calls []struct {
		Ctx   context.Context
		Texts []string
	}
	mock.lockGenerateBatchEmbeddings.RLock()
	calls = mock.calls.GenerateBatchEmbeddings
	mock.lockGenerateBatchEmbeddings.RUnlock()
	return calls
}
