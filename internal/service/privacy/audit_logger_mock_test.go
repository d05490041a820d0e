package privacy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	RecordFunc func(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord)
	ListFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error)

	calls struct {
		Record []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Rec    domain.AuditRecord
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockRecord sync.RWMutex
	lockList   sync.RWMutex
}

func (mock *auditLoggerMock) Record(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord) {
	if mock.RecordFunc == nil {
		panic("auditLoggerMock.RecordFunc: method is nil but auditLogger.Record was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Rec    domain.AuditRecord
	}{Ctx: ctx, UserID: userID, Rec: rec}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	mock.RecordFunc(ctx, userID, rec)
}

func (mock *auditLoggerMock) RecordCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Rec    domain.AuditRecord
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Rec    domain.AuditRecord
	}
	mock.lockRecord.RLock()
	calls = mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}

func (mock *auditLoggerMock) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	if mock.ListFunc == nil {
		panic("auditLoggerMock.ListFunc: method is nil but auditLogger.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, limit)
}

func (mock *auditLoggerMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
