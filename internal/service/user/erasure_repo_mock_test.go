package user

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ erasureRepo = &erasureRepoMock{}

type erasureRepoMock struct {
	ListDocumentIDsFunc func(ctx context.Context, collection string, userID uuid.UUID) ([]uuid.UUID, error)
	DeleteDocumentsFunc func(ctx context.Context, collection string, ids []uuid.UUID) (int, error)
	DeleteRootFunc      func(ctx context.Context, userID uuid.UUID) (int, error)
	WriteLogFunc        func(ctx context.Context, e domain.ErasureLogEntry) error

	calls struct {
		ListDocumentIDs []struct {
			Ctx        context.Context
			Collection string
			UserID     uuid.UUID
		}
		DeleteDocuments []struct {
			Ctx        context.Context
			Collection string
			Ids        []uuid.UUID
		}
		DeleteRoot []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		WriteLog []struct {
			Ctx context.Context
			E   domain.ErasureLogEntry
		}
	}
	lockListDocumentIDs sync.RWMutex
	lockDeleteDocuments sync.RWMutex
	lockDeleteRoot      sync.RWMutex
	lockWriteLog        sync.RWMutex
}

func (mock *erasureRepoMock) ListDocumentIDs(ctx context.Context, collection string, userID uuid.UUID) ([]uuid.UUID, error) {
	if mock.ListDocumentIDsFunc == nil {
		panic("erasureRepoMock.ListDocumentIDsFunc: method is nil but erasureRepo.ListDocumentIDs was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		UserID     uuid.UUID
	}{Ctx: ctx, Collection: collection, UserID: userID}
	mock.lockListDocumentIDs.Lock()
	mock.calls.ListDocumentIDs = append(mock.calls.ListDocumentIDs, callInfo)
	mock.lockListDocumentIDs.Unlock()
	return mock.ListDocumentIDsFunc(ctx, collection, userID)
}

func (mock *erasureRepoMock) ListDocumentIDsCalls() []struct {
	Ctx        context.Context
	Collection string
	UserID     uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		Collection string
		UserID     uuid.UUID
	}
	mock.lockListDocumentIDs.RLock()
	calls = mock.calls.ListDocumentIDs
	mock.lockListDocumentIDs.RUnlock()
	return calls
}

func (mock *erasureRepoMock) DeleteDocuments(ctx context.Context, collection string, ids []uuid.UUID) (int, error) {
	if mock.DeleteDocumentsFunc == nil {
		panic("erasureRepoMock.DeleteDocumentsFunc: method is nil but erasureRepo.DeleteDocuments was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Collection string
		Ids        []uuid.UUID
	}{Ctx: ctx, Collection: collection, Ids: ids}
	mock.lockDeleteDocuments.Lock()
	mock.calls.DeleteDocuments = append(mock.calls.DeleteDocuments, callInfo)
	mock.lockDeleteDocuments.Unlock()
	return mock.DeleteDocumentsFunc(ctx, collection, ids)
}

func (mock *erasureRepoMock) DeleteDocumentsCalls() []struct {
	Ctx        context.Context
	Collection string
	Ids        []uuid.UUID
} {
	var calls []struct {
		Ctx        context.Context
		Collection string
		Ids        []uuid.UUID
	}
	mock.lockDeleteDocuments.RLock()
	calls = mock.calls.DeleteDocuments
	mock.lockDeleteDocuments.RUnlock()
	return calls
}

func (mock *erasureRepoMock) DeleteRoot(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteRootFunc == nil {
		panic("erasureRepoMock.DeleteRootFunc: method is nil but erasureRepo.DeleteRoot was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteRoot.Lock()
	mock.calls.DeleteRoot = append(mock.calls.DeleteRoot, callInfo)
	mock.lockDeleteRoot.Unlock()
	return mock.DeleteRootFunc(ctx, userID)
}

func (mock *erasureRepoMock) DeleteRootCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockDeleteRoot.RLock()
	calls = mock.calls.DeleteRoot
	mock.lockDeleteRoot.RUnlock()
	return calls
}

func (mock *erasureRepoMock) WriteLog(ctx context.Context, e domain.ErasureLogEntry) error {
	if mock.WriteLogFunc == nil {
		panic("erasureRepoMock.WriteLogFunc: method is nil but erasureRepo.WriteLog was just called")
	}
	callInfo := struct {
		Ctx context.Context
		E   domain.ErasureLogEntry
	}{Ctx: ctx, E: e}
	mock.lockWriteLog.Lock()
	mock.calls.WriteLog = append(mock.calls.WriteLog, callInfo)
	mock.lockWriteLog.Unlock()
	return mock.WriteLogFunc(ctx, e)
}

func (mock *erasureRepoMock) WriteLogCalls() []struct {
	Ctx context.Context
	E   domain.ErasureLogEntry
} {
	var calls []struct {
		Ctx context.Context
		E   domain.ErasureLogEntry
	}
	mock.lockWriteLog.RLock()
	calls = mock.calls.WriteLog
	mock.lockWriteLog.RUnlock()
	return calls
}
