package privacy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ historyReader = &historyReaderMock{}

type historyReaderMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, kind domain.HistoryKind, limit int) ([]domain.HistoryEntry, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kind   domain.HistoryKind
			Limit  int
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *historyReaderMock) ListByUser(ctx context.Context, userID uuid.UUID, kind domain.HistoryKind, limit int) ([]domain.HistoryEntry, error) {
	if mock.ListByUserFunc == nil {
		panic("historyReaderMock.ListByUserFunc: method is nil but historyReader.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   domain.HistoryKind
		Limit  int
	}{Ctx: ctx, UserID: userID, Kind: kind, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, kind, limit)
}

func (mock *historyReaderMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kind   domain.HistoryKind
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   domain.HistoryKind
		Limit  int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
