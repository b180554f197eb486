package confirmation

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type confirmationUsecase struct {
	PageResolver    contracts.PageResolver
	Dispatcher      contracts.NotificationDispatcher
	OutcomeRecorder contracts.OutcomeRecorder
	InternalConfig  *config.InternalConfig
	Log             *zap.Logger
	Now             func() time.Time
}

func NewConfirmationUsecase(
	pageResolver contracts.PageResolver,
	dispatcher contracts.NotificationDispatcher,
	outcomeRecorder contracts.OutcomeRecorder,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.ConfirmationUsecase {
	return &confirmationUsecase{
		PageResolver:    pageResolver,
		Dispatcher:      dispatcher,
		OutcomeRecorder: outcomeRecorder,
		InternalConfig:  internalConfig,
		Log:             logger,
		Now:             time.Now,
	}
}

// Confirm always produces a redirect. Failures only change the destination, and the webhook
// is handed to the dispatcher for confirmed links only.
func (uc *confirmationUsecase) Confirm(ctx context.Context, request models.ConfirmationRequest, settings models.Settings, locale string) models.Decision {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("confirmationUsecase.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingLocaleKey, locale),
	)

	verdict := Decide(request, settings, uc.Now())
	redirectURL := uc.resolveDestination(ctx, settings, verdict.Destination, locale)

	decision := models.Decision{
		Outcome:      verdict.Outcome,
		RedirectURL:  redirectURL,
		Notification: verdict.Notification,
	}

	if decision.Forwards() {
		decision.Notification.ID = utils.GenerateNotificationID()
		uc.Dispatcher.Dispatch(ctx, *decision.Notification)
	}

	if uc.OutcomeRecorder != nil {
		uc.OutcomeRecorder.RecordOutcome(decision.Outcome)
	}

	fields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, string(decision.Outcome)),
		zap.String(constvars.LoggingDestinationKey, string(verdict.Destination)),
		zap.String(constvars.LoggingRedirectURLKey, redirectURL),
	}
	if verdict.Reason != nil {
		uc.Log.Warn("confirmationUsecase.Confirm redirecting away from landing",
			append(fields, zap.Error(verdict.Reason))...,
		)
	} else {
		uc.Log.Info("confirmationUsecase.Confirm succeeded",
			append(fields, zap.String(constvars.LoggingNotificationIDKey, decision.Notification.ID))...,
		)
	}
	return decision
}

// resolveDestination uses the configured page when there is one and it resolves, the
// destination's fallback path under the base URL otherwise.
func (uc *confirmationUsecase) resolveDestination(ctx context.Context, settings models.Settings, destination models.Destination, locale string) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	fallbackURL := strings.TrimRight(uc.InternalConfig.App.BaseUrl, "/") + destination.FallbackPath()

	pageID := settings.PageIDFor(destination)
	if pageID == "" {
		return fallbackURL
	}

	redirectURL, err := uc.PageResolver.Resolve(ctx, pageID, locale)
	if err != nil || redirectURL == "" {
		uc.Log.Warn("confirmationUsecase.resolveDestination using fallback path",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPageIDKey, pageID),
			zap.String(constvars.LoggingDestinationKey, string(destination)),
			zap.Error(err),
		)
		return fallbackURL
	}
	return redirectURL
}
