package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/user"
)

var _ userService = &userServiceMock{}

type userServiceMock struct {
	CreateProfileFunc func(ctx context.Context, userID uuid.UUID, input user.CreateProfileInput) (*domain.UserProfile, error)
	GetProfileFunc    func(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error)
	UpdateProfileFunc func(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.UserProfile, error)
	DeleteAccountFunc func(ctx context.Context, userID uuid.UUID) (int, error)

	calls struct {
		CreateProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  user.CreateProfileInput
		}
		GetProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdateProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Input  user.UpdateProfileInput
		}
		DeleteAccount []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockCreateProfile sync.RWMutex
	lockGetProfile    sync.RWMutex
	lockUpdateProfile sync.RWMutex
	lockDeleteAccount sync.RWMutex
}

func (mock *userServiceMock) CreateProfile(ctx context.Context, userID uuid.UUID, input user.CreateProfileInput) (*domain.UserProfile, error) {
	if mock.CreateProfileFunc == nil {
		panic("userServiceMock.CreateProfileFunc: method is nil but userService.CreateProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  user.CreateProfileInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockCreateProfile.Lock()
	mock.calls.CreateProfile = append(mock.calls.CreateProfile, callInfo)
	mock.lockCreateProfile.Unlock()
	return mock.CreateProfileFunc(ctx, userID, input)
}

func (mock *userServiceMock) CreateProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  user.CreateProfileInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  user.CreateProfileInput
	}
	mock.lockCreateProfile.RLock()
	calls = mock.calls.CreateProfile
	mock.lockCreateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.UserProfile, error) {
	if mock.GetProfileFunc == nil {
		panic("userServiceMock.GetProfileFunc: method is nil but userService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, userID)
}

func (mock *userServiceMock) GetProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) UpdateProfile(ctx context.Context, userID uuid.UUID, input user.UpdateProfileInput) (*domain.UserProfile, error) {
	if mock.UpdateProfileFunc == nil {
		panic("userServiceMock.UpdateProfileFunc: method is nil but userService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  user.UpdateProfileInput
	}{Ctx: ctx, UserID: userID, Input: input}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, userID, input)
}

func (mock *userServiceMock) UpdateProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Input  user.UpdateProfileInput
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Input  user.UpdateProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}

func (mock *userServiceMock) DeleteAccount(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.DeleteAccountFunc == nil {
		panic("userServiceMock.DeleteAccountFunc: method is nil but userService.DeleteAccount was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDeleteAccount.Lock()
	mock.calls.DeleteAccount = append(mock.calls.DeleteAccount, callInfo)
	mock.lockDeleteAccount.Unlock()
	return mock.DeleteAccountFunc(ctx, userID)
}

func (mock *userServiceMock) DeleteAccountCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockDeleteAccount.RLock()
	calls = mock.calls.DeleteAccount
	mock.lockDeleteAccount.RUnlock()
	return calls
}
