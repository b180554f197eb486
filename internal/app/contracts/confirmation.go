package contracts

import (
	"context"
	"double-optin-service/internal/app/models"
)

type ConfirmationUsecase interface {
	Confirm(ctx context.Context, request models.ConfirmationRequest, settings models.Settings, locale string) models.Decision
}

type OutcomeRecorder interface {
	RecordOutcome(outcome models.Outcome)
}
