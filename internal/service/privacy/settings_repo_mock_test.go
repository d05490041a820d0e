package privacy

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	GetSettingsFunc          func(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)
	GetSettingsForUpdateFunc func(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)
	CreateSettingsFunc       func(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)
	UpdateSettingsFunc       func(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)

	calls struct {
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetSettingsForUpdate []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		CreateSettings []struct {
			Ctx context.Context
			S   domain.PrivacySettings
		}
		UpdateSettings []struct {
			Ctx context.Context
			S   domain.PrivacySettings
		}
	}
	lockGetSettings          sync.RWMutex
	lockGetSettingsForUpdate sync.RWMutex
	lockCreateSettings       sync.RWMutex
	lockUpdateSettings       sync.RWMutex
}

func (mock *settingsRepoMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsRepoMock.GetSettingsFunc: method is nil but settingsRepo.GetSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetSettingsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

func (mock *settingsRepoMock) GetSettingsForUpdate(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error) {
	if mock.GetSettingsForUpdateFunc == nil {
		panic("settingsRepoMock.GetSettingsForUpdateFunc: method is nil but settingsRepo.GetSettingsForUpdate was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetSettingsForUpdate.Lock()
	mock.calls.GetSettingsForUpdate = append(mock.calls.GetSettingsForUpdate, callInfo)
	mock.lockGetSettingsForUpdate.Unlock()
	return mock.GetSettingsForUpdateFunc(ctx, userID)
}

func (mock *settingsRepoMock) GetSettingsForUpdateCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetSettingsForUpdate.RLock()
	calls = mock.calls.GetSettingsForUpdate
	mock.lockGetSettingsForUpdate.RUnlock()
	return calls
}

func (mock *settingsRepoMock) CreateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error) {
	if mock.CreateSettingsFunc == nil {
		panic("settingsRepoMock.CreateSettingsFunc: method is nil but settingsRepo.CreateSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.PrivacySettings
	}{Ctx: ctx, S: s}
	mock.lockCreateSettings.Lock()
	mock.calls.CreateSettings = append(mock.calls.CreateSettings, callInfo)
	mock.lockCreateSettings.Unlock()
	return mock.CreateSettingsFunc(ctx, s)
}

func (mock *settingsRepoMock) CreateSettingsCalls() []struct {
	Ctx context.Context
	S   domain.PrivacySettings
} {
	var calls []struct {
		Ctx context.Context
		S   domain.PrivacySettings
	}
	mock.lockCreateSettings.RLock()
	calls = mock.calls.CreateSettings
	mock.lockCreateSettings.RUnlock()
	return calls
}

func (mock *settingsRepoMock) UpdateSettings(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("settingsRepoMock.UpdateSettingsFunc: method is nil but settingsRepo.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   domain.PrivacySettings
	}{Ctx: ctx, S: s}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, s)
}

func (mock *settingsRepoMock) UpdateSettingsCalls() []struct {
	Ctx context.Context
	S   domain.PrivacySettings
} {
	var calls []struct {
		Ctx context.Context
		S   domain.PrivacySettings
	}
	mock.lockUpdateSettings.RLock()
	calls = mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
