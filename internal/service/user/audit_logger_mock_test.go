package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ auditLogger = &auditLoggerMock{}

type auditLoggerMock struct {
	RecordFunc func(ctx context.Context, userID uuid.UUID, rec domain.AuditRecord)

	calls struct {
		Record []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Rec    domain.AuditRecord
		}
	}
	lockRecord sync.RWMutex
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
