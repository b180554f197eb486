package pages

import (
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/responses"

	"go.uber.org/zap"
)

type pageUsecase struct {
	PageRepository contracts.PageRepository
	Log            *zap.Logger
}

func NewPageUsecase(pageRepository contracts.PageRepository, logger *zap.Logger) contracts.PageUsecase {
	return &pageUsecase{
		PageRepository: pageRepository,
		Log:            logger,
	}
}

func (uc *pageUsecase) FindAll(ctx context.Context) ([]responses.Page, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("pageUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	pages, err := uc.PageRepository.FindAll(ctx)
	if err != nil {
		uc.Log.Error("pageUsecase.FindAll error fetching data from MongoDB",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := make([]responses.Page, len(pages))
	for i, eachPage := range pages {
		response[i] = eachPage.ConvertIntoResponse()
	}

	uc.Log.Info("pageUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPageCountKey, len(response)),
	)
	return response, nil
}
