package privacy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ relationshipReader = &relationshipReaderMock{}

type relationshipReaderMock struct {
	ListFunc             func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error)
	ListInteractionsFunc func(ctx context.Context, userID uuid.UUID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		ListInteractions []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			RelationshipID uuid.UUID
			Limit          int
		}
	}
	lockList             sync.RWMutex
	lockListInteractions sync.RWMutex
}

func (mock *relationshipReaderMock) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error) {
	if mock.ListFunc == nil {
		panic("relationshipReaderMock.ListFunc: method is nil but relationshipReader.List was just called")
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

func (mock *relationshipReaderMock) ListCalls() []struct {
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

func (mock *relationshipReaderMock) ListInteractions(ctx context.Context, userID uuid.UUID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error) {
	if mock.ListInteractionsFunc == nil {
		panic("relationshipReaderMock.ListInteractionsFunc: method is nil but relationshipReader.ListInteractions was just called")
	}
	callInfo := struct {
		Ctx            context.Context
		UserID         uuid.UUID
		RelationshipID uuid.UUID
		Limit          int
	}{Ctx: ctx, UserID: userID, RelationshipID: relationshipID, Limit: limit}
	mock.lockListInteractions.Lock()
	mock.calls.ListInteractions = append(mock.calls.ListInteractions, callInfo)
	mock.lockListInteractions.Unlock()
	return mock.ListInteractionsFunc(ctx, userID, relationshipID, limit)
}

func (mock *relationshipReaderMock) ListInteractionsCalls() []struct {
	Ctx            context.Context
	UserID         uuid.UUID
	RelationshipID uuid.UUID
	Limit          int
} {
	var calls []struct {
		Ctx            context.Context
		UserID         uuid.UUID
		RelationshipID uuid.UUID
		Limit          int
	}
	mock.lockListInteractions.RLock()
	calls = mock.calls.ListInteractions
	mock.lockListInteractions.RUnlock()
	return calls
}
