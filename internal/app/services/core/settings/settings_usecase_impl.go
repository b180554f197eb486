package settings

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/dto/responses"
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

var settingsKeys = []string{
	constvars.SettingsKeyWebhookURL,
	constvars.SettingsKeyAPIPrefix,
	constvars.SettingsKeyDateFormat,
	constvars.SettingsKeyLandingPage,
	constvars.SettingsKeyExpiredPage,
	constvars.SettingsKeyErrorPage,
}

type settingsUsecase struct {
	SettingsRepository contracts.SettingsRepository
	InternalConfig     *config.InternalConfig
	Log                *zap.Logger
	Now                func() time.Time
}

func NewSettingsUsecase(
	settingsRepository contracts.SettingsRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SettingsUsecase {
	return &settingsUsecase{
		SettingsRepository: settingsRepository,
		InternalConfig:     internalConfig,
		Log:                logger,
		Now:                time.Now,
	}
}

// Load reads every option on each call so edits apply to the very next confirmation.
func (uc *settingsUsecase) Load(ctx context.Context) (models.Settings, error) {
	stored, err := uc.SettingsRepository.FindByKeys(ctx, settingsKeys)
	if err != nil {
		return uc.defaultSettings(), err
	}
	settings := models.SettingsFromOptions(stored)
	if strings.Trim(strings.TrimSpace(stored[constvars.SettingsKeyAPIPrefix]), "/") == "" && uc.InternalConfig.App.DefaultAPIPrefix != "" {
		settings.APIPrefix = uc.InternalConfig.App.DefaultAPIPrefix
	}
	return settings, nil
}

func (uc *settingsUsecase) Describe(ctx context.Context) (*responses.Settings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.Describe called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	settings, err := uc.Load(ctx)
	if err != nil {
		uc.Log.Error("settingsUsecase.Describe error loading settings",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := settings.ConvertIntoResponse(uc.confirmationLinkExample(settings))
	return &response, nil
}

func (uc *settingsUsecase) Update(ctx context.Context, request *requests.UpdateSettings) (*responses.Settings, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("settingsUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	utils.SanitizeUpdateSettingsRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		uc.Log.Error("settingsUsecase.Update validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	updates := []struct {
		key   string
		value *string
	}{
		{constvars.SettingsKeyWebhookURL, request.WebhookURL},
		{constvars.SettingsKeyAPIPrefix, request.APIPrefix},
		{constvars.SettingsKeyDateFormat, request.DateFormat},
		{constvars.SettingsKeyLandingPage, request.LandingPageID},
		{constvars.SettingsKeyExpiredPage, request.ExpiredPageID},
		{constvars.SettingsKeyErrorPage, request.ErrorPageID},
	}
	for _, update := range updates {
		if update.value == nil {
			continue
		}
		if err := uc.SettingsRepository.Upsert(ctx, update.key, *update.value); err != nil {
			uc.Log.Error("settingsUsecase.Update error upserting option",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSettingsKey, update.key),
				zap.Error(err),
			)
			return nil, err
		}
	}

	uc.Log.Info("settingsUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.Describe(ctx)
}

func (uc *settingsUsecase) defaultSettings() models.Settings {
	settings := models.DefaultSettings()
	if uc.InternalConfig.App.DefaultAPIPrefix != "" {
		settings.APIPrefix = uc.InternalConfig.App.DefaultAPIPrefix
	}
	return settings
}

// confirmationLinkExample renders the link a mail template has to produce, with a sample
// address, code and today's date in the configured format.
func (uc *settingsUsecase) confirmationLinkExample(settings models.Settings) string {
	query := url.Values{}
	query.Set("email", constvars.ExampleConfirmationMail)
	query.Set("token", constvars.ExampleConfirmationCode)
	query.Set("expiration", utils.FormatDate(settings.DateFormat, uc.Now()))

	return strings.TrimRight(uc.InternalConfig.App.BaseUrl, "/") +
		"/" + settings.APIPrefix +
		"/" + constvars.ConfirmationAPIVersion +
		constvars.ConfirmationRoutePath + "/?" + query.Encode()
}
