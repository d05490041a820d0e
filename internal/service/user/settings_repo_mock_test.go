package user

import (
	"context"
	"sync"

	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	CreateSettingsFunc func(ctx context.Context, s domain.PrivacySettings) (*domain.PrivacySettings, error)

	calls struct {
		CreateSettings []struct {
			Ctx context.Context
			S   domain.PrivacySettings
		}
	}
	lockCreateSettings sync.RWMutex
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
