package audit

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ auditRepo = &auditRepoMock{}

type auditRepoMock struct {
	CreateFunc     func(ctx context.Context, rec domain.AuditRecord) error
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rec domain.AuditRecord
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockCreate     sync.RWMutex
	lockListByUser sync.RWMutex
}

func (mock *auditRepoMock) Create(ctx context.Context, rec domain.AuditRecord) error {
	if mock.CreateFunc == nil {
		panic("auditRepoMock.CreateFunc: method is nil but auditRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}{Ctx: ctx, Rec: rec}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rec)
}

func (mock *auditRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rec domain.AuditRecord
} {
	var calls []struct {
		Ctx context.Context
		Rec domain.AuditRecord
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *auditRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListByUserFunc == nil {
		panic("auditRepoMock.ListByUserFunc: method is nil but auditRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *auditRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockListByUser.RLock()
	calls = mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
