package settings

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/exceptions"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockSettingsRepository struct {
	mock.Mock
}

func (m *mockSettingsRepository) FindByKeys(ctx context.Context, keys []string) (map[string]string, error) {
	args := m.Called(ctx, keys)
	stored, _ := args.Get(0).(map[string]string)
	return stored, args.Error(1)
}

func (m *mockSettingsRepository) Upsert(ctx context.Context, key, value string) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func newTestUsecase(repo *mockSettingsRepository) *settingsUsecase {
	cfg := &config.InternalConfig{}
	cfg.App.BaseUrl = "https://example.com/"
	uc := NewSettingsUsecase(repo, cfg, zap.NewNop()).(*settingsUsecase)
	uc.Now = func() time.Time { return time.Date(2025, time.February, 27, 10, 0, 0, 0, time.UTC) }
	return uc
}

func TestSettingsUsecase_Load(t *testing.T) {
	t.Run("Applies Defaults", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		repo.On("FindByKeys", mock.Anything, settingsKeys).Return(map[string]string{
			constvars.SettingsKeyWebhookURL: "https://hooks.example.com/x",
		}, nil)

		settings, err := newTestUsecase(repo).Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "https://hooks.example.com/x", settings.WebhookURL)
		assert.Equal(t, constvars.DefaultSettingsPrefix, settings.APIPrefix)
		assert.Equal(t, constvars.DefaultSettingsDateForm, settings.DateFormat)
	})

	t.Run("Config Prefix Used When Unset", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		repo.On("FindByKeys", mock.Anything, settingsKeys).Return(map[string]string{}, nil)
		uc := newTestUsecase(repo)
		uc.InternalConfig.App.DefaultAPIPrefix = "optin"

		settings, err := uc.Load(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "optin", settings.APIPrefix)
	})

	t.Run("Store Failure Returns Defaults", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		repo.On("FindByKeys", mock.Anything, settingsKeys).Return(nil, errors.New("mongo down"))

		settings, err := newTestUsecase(repo).Load(context.Background())

		assert.Error(t, err)
		assert.Empty(t, settings.WebhookURL)
		assert.Equal(t, constvars.DefaultSettingsPrefix, settings.APIPrefix)
	})
}

func TestSettingsUsecase_Describe(t *testing.T) {
	repo := new(mockSettingsRepository)
	repo.On("FindByKeys", mock.Anything, settingsKeys).Return(map[string]string{
		constvars.SettingsKeyDateFormat: "DD.MM.YYYY",
	}, nil)

	response, err := newTestUsecase(repo).Describe(context.Background())

	require.NoError(t, err)
	assert.Equal(t,
		"https://example.com/double-optin/v1/confirm/?email=user%40example.com&expiration=27.02.2025&token=123456",
		response.ConfirmationLinkExample,
	)
}

func TestSettingsUsecase_Update(t *testing.T) {
	t.Run("Upserts Only Provided Fields", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		webhook := " https://hooks.example.com/x "
		prefix := "/newsletter/"
		repo.On("Upsert", mock.Anything, constvars.SettingsKeyWebhookURL, "https://hooks.example.com/x").Return(nil).Once()
		repo.On("Upsert", mock.Anything, constvars.SettingsKeyAPIPrefix, "newsletter").Return(nil).Once()
		repo.On("FindByKeys", mock.Anything, settingsKeys).Return(map[string]string{
			constvars.SettingsKeyWebhookURL: "https://hooks.example.com/x",
			constvars.SettingsKeyAPIPrefix:  "newsletter",
		}, nil)

		response, err := newTestUsecase(repo).Update(context.Background(), &requests.UpdateSettings{
			WebhookURL: &webhook,
			APIPrefix:  &prefix,
		})

		require.NoError(t, err)
		assert.Equal(t, "newsletter", response.APIPrefix)
		repo.AssertNumberOfCalls(t, "Upsert", 2)
	})

	t.Run("Rejects Invalid Date Pattern", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		pattern := "whenever"

		response, err := newTestUsecase(repo).Update(context.Background(), &requests.UpdateSettings{DateFormat: &pattern})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
	t.Run("Rejects Prefix Owned By Admin Routes", func(t *testing.T) {
		repo := new(mockSettingsRepository)
		prefix := "/admin/"

		response, err := newTestUsecase(repo).Update(context.Background(), &requests.UpdateSettings{APIPrefix: &prefix})

		assert.Nil(t, response)
		var customErr *exceptions.CustomError
		require.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
	})
}
