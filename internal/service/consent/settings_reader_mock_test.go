package consent

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/ecomind-backend/internal/domain"
)

var _ settingsReader = &settingsReaderMock{}

type settingsReaderMock struct {
	GetSettingsFunc func(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error)

	calls struct {
		GetSettings []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetSettings sync.RWMutex
}

func (mock *settingsReaderMock) GetSettings(ctx context.Context, userID uuid.UUID) (*domain.PrivacySettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsReaderMock.GetSettingsFunc: method is nil but settingsReader.GetSettings was just called")
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

func (mock *settingsReaderMock) GetSettingsCalls() []struct {
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
