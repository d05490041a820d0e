package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
	"github.com/heartmarshall/ecomind-backend/internal/service/privacy"
)

var _ privacyService = &privacyServiceMock{}

type privacyServiceMock struct {
	GetPrivacySettingsFunc    func(ctx context.Context, userID uuid.UUID) (*privacy.SettingsResult, error)
	UpdatePrivacySettingsFunc func(ctx context.Context, userID uuid.UUID, patch domain.PrivacySettingsPatch) (*privacy.SettingsResult, error)
	RequestDataDeletionFunc   func(ctx context.Context, userID uuid.UUID, reason string) (*domain.DeletionRequest, error)
	ExportUserDataFunc        func(ctx context.Context, userID uuid.UUID, format domain.ExportFormat) (*privacy.Export, error)

	calls struct {
		GetPrivacySettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		UpdatePrivacySettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Patch  domain.PrivacySettingsPatch
		}
		RequestDataDeletion []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Reason string
		}
		ExportUserData []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Format domain.ExportFormat
		}
	}
	lockGetPrivacySettings    sync.RWMutex
	lockUpdatePrivacySettings sync.RWMutex
	lockRequestDataDeletion   sync.RWMutex
	lockExportUserData        sync.RWMutex
}

func (mock *privacyServiceMock) GetPrivacySettings(ctx context.Context, userID uuid.UUID) (*privacy.SettingsResult, error) {
	if mock.GetPrivacySettingsFunc == nil {
		panic("privacyServiceMock.GetPrivacySettingsFunc: method is nil but privacyService.GetPrivacySettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetPrivacySettings.Lock()
	mock.calls.GetPrivacySettings = append(mock.calls.GetPrivacySettings, callInfo)
	mock.lockGetPrivacySettings.Unlock()
	return mock.GetPrivacySettingsFunc(ctx, userID)
}

func (mock *privacyServiceMock) GetPrivacySettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetPrivacySettings.RLock()
	calls = mock.calls.GetPrivacySettings
	mock.lockGetPrivacySettings.RUnlock()
	return calls
}

func (mock *privacyServiceMock) UpdatePrivacySettings(ctx context.Context, userID uuid.UUID, patch domain.PrivacySettingsPatch) (*privacy.SettingsResult, error) {
	if mock.UpdatePrivacySettingsFunc == nil {
		panic("privacyServiceMock.UpdatePrivacySettingsFunc: method is nil but privacyService.UpdatePrivacySettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Patch  domain.PrivacySettingsPatch
	}{Ctx: ctx, UserID: userID, Patch: patch}
	mock.lockUpdatePrivacySettings.Lock()
	mock.calls.UpdatePrivacySettings = append(mock.calls.UpdatePrivacySettings, callInfo)
	mock.lockUpdatePrivacySettings.Unlock()
	return mock.UpdatePrivacySettingsFunc(ctx, userID, patch)
}

func (mock *privacyServiceMock) UpdatePrivacySettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Patch  domain.PrivacySettingsPatch
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Patch  domain.PrivacySettingsPatch
	}
	mock.lockUpdatePrivacySettings.RLock()
	calls = mock.calls.UpdatePrivacySettings
	mock.lockUpdatePrivacySettings.RUnlock()
	return calls
}

func (mock *privacyServiceMock) RequestDataDeletion(ctx context.Context, userID uuid.UUID, reason string) (*domain.DeletionRequest, error) {
	if mock.RequestDataDeletionFunc == nil {
		panic("privacyServiceMock.RequestDataDeletionFunc: method is nil but privacyService.RequestDataDeletion was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Reason string
	}{Ctx: ctx, UserID: userID, Reason: reason}
	mock.lockRequestDataDeletion.Lock()
	mock.calls.RequestDataDeletion = append(mock.calls.RequestDataDeletion, callInfo)
	mock.lockRequestDataDeletion.Unlock()
	return mock.RequestDataDeletionFunc(ctx, userID, reason)
}

func (mock *privacyServiceMock) RequestDataDeletionCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Reason string
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Reason string
	}
	mock.lockRequestDataDeletion.RLock()
	calls = mock.calls.RequestDataDeletion
	mock.lockRequestDataDeletion.RUnlock()
	return calls
}

func (mock *privacyServiceMock) ExportUserData(ctx context.Context, userID uuid.UUID, format domain.ExportFormat) (*privacy.Export, error) {
	if mock.ExportUserDataFunc == nil {
		panic("privacyServiceMock.ExportUserDataFunc: method is nil but privacyService.ExportUserData was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Format domain.ExportFormat
	}{Ctx: ctx, UserID: userID, Format: format}
	mock.lockExportUserData.Lock()
	mock.calls.ExportUserData = append(mock.calls.ExportUserData, callInfo)
	mock.lockExportUserData.Unlock()
	return mock.ExportUserDataFunc(ctx, userID, format)
}

func (mock *privacyServiceMock) ExportUserDataCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Format domain.ExportFormat
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
		Format domain.ExportFormat
	}
	mock.lockExportUserData.RLock()
	calls = mock.calls.ExportUserData
	mock.lockExportUserData.RUnlock()
	return calls
}
