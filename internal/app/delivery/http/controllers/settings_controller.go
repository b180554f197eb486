package controllers

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type SettingsController struct {
	Log             *zap.Logger
	SettingsUsecase contracts.SettingsUsecase
	PageUsecase     contracts.PageUsecase
	InternalConfig  *config.InternalConfig
}

func NewSettingsController(
	logger *zap.Logger,
	settingsUsecase contracts.SettingsUsecase,
	pageUsecase contracts.PageUsecase,
	internalConfig *config.InternalConfig,
) *SettingsController {
	return &SettingsController{
		Log:             logger,
		SettingsUsecase: settingsUsecase,
		PageUsecase:     pageUsecase,
		InternalConfig:  internalConfig,
	}
}

func (ctrl *SettingsController) Get(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SettingsController.Get requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SettingsController.Get called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.SettingsUsecase.Describe(ctx)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "SettingsController.Get", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSettingsSuccessMessage, result)
}

func (ctrl *SettingsController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SettingsController.Update requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SettingsController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.UpdateSettings)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		ctrl.Log.Error("SettingsController.Update error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.SettingsUsecase.Update(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "SettingsController.Update", err)
		return
	}

	ctrl.Log.Info("SettingsController.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateSettingsSuccessMessage, result)
}

func (ctrl *SettingsController) ListPages(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("SettingsController.ListPages requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("SettingsController.ListPages called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), requestTimeout(ctrl.InternalConfig))
	defer cancel()

	result, err := ctrl.PageUsecase.FindAll(ctx)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "SettingsController.ListPages", err)
		return
	}

	ctrl.Log.Info("SettingsController.ListPages succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageCountKey, len(result)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetPagesSuccessMessage, result)
}

func (ctrl *SettingsController) handleUsecaseError(w http.ResponseWriter, requestID, caller string, err error) {
	ctrl.Log.Error(caller+" error from usecase",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err),
	)
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
