package ai

import (
	"context"
	"sync"

	"github.com/heartmarshall/ecomind-backend/internal/llm/prompt"
)

var _ Provider = &ProviderMock{}

type ProviderMock struct {
	GenerateFunc       func(ctx context.Context, text string, p prompt.Params) (string, error)
	EmbedFunc          func(ctx context.Context, text string) ([]float32, error)
	EmbeddingModelFunc func() string

	calls struct {
		Generate []struct {
			Ctx  context.Context
			Text string
			P    prompt.Params
		}
		Embed []struct {
			Ctx  context.Context
			Text string
		}
		EmbeddingModel []struct{}
	}
	lockGenerate       sync.RWMutex
	lockEmbed          sync.RWMutex
	lockEmbeddingModel sync.RWMutex
}

func (mock *ProviderMock) Generate(ctx context.Context, text string, p prompt.Params) (string, error) {
	if mock.GenerateFunc == nil {
		panic("ProviderMock.GenerateFunc: method is nil but Provider.Generate was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
		P    prompt.Params
	}{Ctx: ctx, Text: text, P: p}
	mock.lockGenerate.Lock()
	mock.calls.Generate = append(mock.calls.Generate, callInfo)
	mock.lockGenerate.Unlock()
	return mock.GenerateFunc(ctx, text, p)
}

func (mock *ProviderMock) GenerateCalls() []struct {
	Ctx  context.Context
	Text string
	P    prompt.Params
} {
	var calls []struct {
		Ctx  context.Context
		Text string
		P    prompt.Params
	}
	mock.lockGenerate.RLock()
	calls = mock.calls.Generate
	mock.lockGenerate.RUnlock()
	return calls
}

func (mock *ProviderMock) Embed(ctx context.Context, text string) ([]float32, error) {
	if mock.EmbedFunc == nil {
		panic("ProviderMock.EmbedFunc: method is nil but Provider.Embed was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Text string
	}{Ctx: ctx, Text: text}
	mock.lockEmbed.Lock()
	mock.calls.Embed = append(mock.calls.Embed, callInfo)
	mock.lockEmbed.Unlock()
	return mock.EmbedFunc(ctx, text)
}

func (mock *ProviderMock) EmbedCalls() []struct {
	Ctx  context.Context
	Text string
} {
	var calls []struct {
		Ctx  context.Context
		Text string
	}
	mock.lockEmbed.RLock()
	calls = mock.calls.Embed
	mock.lockEmbed.RUnlock()
	return calls
}

func (mock *ProviderMock) EmbeddingModel() string {
	if mock.EmbeddingModelFunc == nil {
		panic("ProviderMock.EmbeddingModelFunc: method is nil but Provider.EmbeddingModel was just called")
	}
	mock.lockEmbeddingModel.Lock()
	mock.calls.EmbeddingModel = append(mock.calls.EmbeddingModel, struct{}{})
	mock.lockEmbeddingModel.Unlock()
	return mock.EmbeddingModelFunc()
}

func (mock *ProviderMock) EmbeddingModelCalls() []struct{} {
	var calls []struct{}
	mock.lockEmbeddingModel.RLock()
	calls = mock.calls.EmbeddingModel
	mock.lockEmbeddingModel.RUnlock()
	return calls
}
