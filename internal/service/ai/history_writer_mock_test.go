package ai

import (
	"context"
	"sync"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ historyWriter = &historyWriterMock{}

type historyWriterMock struct {
	AppendFunc func(ctx context.Context, e domain.HistoryEntry) error

	calls struct {
		Append []struct {
			Ctx context.Context
			E   domain.HistoryEntry
		}
	}
	lockAppend sync.RWMutex
}

func (mock *historyWriterMock) Append(ctx context.Context, e domain.HistoryEntry) error {
	if mock.AppendFunc == nil {
		panic("historyWriterMock.AppendFunc: method is nil but historyWriter.Append was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.HistoryEntry
	}{Ctx: ctx, E: e}
	mock.lockAppend.Lock()
	mock.calls.Append = append(mock.calls.Append, callInfo)
	mock.lockAppend.Unlock()
	return mock.AppendFunc(ctx, e)
}

func (mock *historyWriterMock) AppendCalls() []struct {
	Ctx context.Context
	E   domain.HistoryEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.HistoryEntry
	}
	mock.lockAppend.RLock()
	calls = mock.calls.Append
	mock.lockAppend.RUnlock()
	return calls
}
