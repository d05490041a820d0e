package relationship

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ relationshipRepo = &relationshipRepoMock{}

type relationshipRepoMock struct {
	CreateFunc            func(ctx context.Context, rel domain.Relationship) error
	GetByIDFunc           func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Relationship, error)
	ListFunc              func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error)
	DeleteFunc            func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (int, error)
	CreateInteractionFunc func(ctx context.Context, in domain.Interaction) error
	ListInteractionsFunc  func(ctx context.Context, userID uuid.UUID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			Rel domain.Relationship
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		CreateInteraction []struct {
			Ctx context.Context
			In  domain.Interaction
		}
		ListInteractions []struct {
			Ctx            context.Context
			UserID         uuid.UUID
			RelationshipID uuid.UUID
			Limit          int
		}
	}
	lockCreate            sync.RWMutex
	lockGetByID           sync.RWMutex
	lockList              sync.RWMutex
	lockDelete            sync.RWMutex
	lockCreateInteraction sync.RWMutex
	lockListInteractions  sync.RWMutex
}

func (mock *relationshipRepoMock) Create(ctx context.Context, rel domain.Relationship) error {
	if mock.CreateFunc == nil {
		panic("relationshipRepoMock.CreateFunc: method is nil but relationshipRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Rel domain.Relationship
	}{Ctx: ctx, Rel: rel}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, rel)
}

func (mock *relationshipRepoMock) CreateCalls() []struct {
	Ctx context.Context
	Rel domain.Relationship
} {
	var calls []struct {
		Ctx context.Context
		Rel domain.Relationship
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Relationship, error) {
	if mock.GetByIDFunc == nil {
		panic("relationshipRepoMock.GetByIDFunc: method is nil but relationshipRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *relationshipRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) List(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Relationship, error) {
	if mock.ListFunc == nil {
		panic("relationshipRepoMock.ListFunc: method is nil but relationshipRepo.List was just called")
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

func (mock *relationshipRepoMock) ListCalls() []struct {
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

func (mock *relationshipRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) (int, error) {
	if mock.DeleteFunc == nil {
		panic("relationshipRepoMock.DeleteFunc: method is nil but relationshipRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *relationshipRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) CreateInteraction(ctx context.Context, in domain.Interaction) error {
	if mock.CreateInteractionFunc == nil {
		panic("relationshipRepoMock.CreateInteractionFunc: method is nil but relationshipRepo.CreateInteraction was just called")
	}
	callInfo := struct {
		Ctx context.Context
		In  domain.Interaction
	}{Ctx: ctx, In: in}
	mock.lockCreateInteraction.Lock()
	mock.calls.CreateInteraction = append(mock.calls.CreateInteraction, callInfo)
	mock.lockCreateInteraction.Unlock()
	return mock.CreateInteractionFunc(ctx, in)
}

func (mock *relationshipRepoMock) CreateInteractionCalls() []struct {
	Ctx context.Context
	In  domain.Interaction
} {
	var calls []struct {
		Ctx context.Context
		In  domain.Interaction
	}
	mock.lockCreateInteraction.RLock()
	calls = mock.calls.CreateInteraction
	mock.lockCreateInteraction.RUnlock()
	return calls
}

func (mock *relationshipRepoMock) ListInteractions(ctx context.Context, userID uuid.UUID, relationshipID uuid.UUID, limit int) ([]domain.Interaction, error) {
	if mock.ListInteractionsFunc == nil {
		panic("relationshipRepoMock.ListInteractionsFunc: method is nil but relationshipRepo.ListInteractions was just called")
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

func (mock *relationshipRepoMock) ListInteractionsCalls() []struct {
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
