package controllers

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ConfirmationController struct {
	Log                 *zap.Logger
	SettingsUsecase     contracts.SettingsUsecase
	ConfirmationUsecase contracts.ConfirmationUsecase
	InternalConfig      *config.InternalConfig
}

func NewConfirmationController(
	logger *zap.Logger,
	settingsUsecase contracts.SettingsUsecase,
	confirmationUsecase contracts.ConfirmationUsecase,
	internalConfig *config.InternalConfig,
) *ConfirmationController {
	return &ConfirmationController{
		Log:                 logger,
		SettingsUsecase:     settingsUsecase,
		ConfirmationUsecase: confirmationUsecase,
		InternalConfig:      internalConfig,
	}
}

// Confirm handles GET /{prefix}/v1/confirm/. Requests that pass the prefix and query checks
// always end in a redirect.
func (ctrl *ConfirmationController) Confirm(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("ConfirmationController.Confirm requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("ConfirmationController.Confirm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	settings, err := ctrl.SettingsUsecase.Load(ctx)
	if err != nil {
		ctrl.Log.Error("ConfirmationController.Confirm error loading settings, continuing with defaults",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	prefix := chi.URLParam(r, "prefix")
	if prefix != settings.APIPrefix {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrRouteNotFound(nil, prefix))
		return
	}

	query := r.URL.Query()
	request := &requests.ConfirmDoubleOptIn{
		Email:      query.Get("email"),
		Token:      query.Get("token"),
		Expiration: query.Get("expiration"),
	}
	utils.SanitizeConfirmDoubleOptInRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		ctrl.Log.Error("ConfirmationController.Confirm validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	locale, _ := r.Context().Value(constvars.CONTEXT_LOCALE_KEY).(string)
	decision := ctrl.ConfirmationUsecase.Confirm(ctx, models.ConfirmationRequest{
		Email:         request.Email,
		Token:         request.Token,
		ExpirationRaw: request.Expiration,
	}, settings, locale)

	ctrl.Log.Info("ConfirmationController.Confirm redirecting",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOutcomeKey, string(decision.Outcome)),
		zap.String(constvars.LoggingRedirectURLKey, decision.RedirectURL),
	)
	http.Redirect(w, r, decision.RedirectURL, constvars.StatusFound)
}
