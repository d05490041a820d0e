package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ accountEraser = &accountEraserMock{}

type accountEraserMock struct {
	EraseFunc func(ctx context.Context, userID uuid.UUID, reason string) (int, error)

	calls struct {
		Erase []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Reason string
		}
	}
	lockErase sync.RWMutex
}

func (mock *accountEraserMock) Erase(ctx context.Context, userID uuid.UUID, reason string) (int, error) {
	if mock.EraseFunc == nil {
		panic("accountEraserMock.EraseFunc: method is nil but accountEraser.Erase was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Reason string
	}{Ctx: ctx, UserID: userID, Reason: reason}
	mock.lockErase.Lock()
	mock.calls.Erase = append(mock.calls.Erase, callInfo)
	mock.lockErase.Unlock()
	return mock.EraseFunc(ctx, userID, reason)
}

func (mock *accountEraserMock) EraseCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Reason string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Reason string
	}
	mock.lockErase.RLock()
	calls = mock.calls.Erase
	mock.lockErase.RUnlock()
	return calls
}
