package contracts

import (
	"context"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/dto/responses"
)

// PageRepository returns nil, nil when a page does not exist.
type PageRepository interface {
	FindByID(ctx context.Context, pageID string) (*models.Page, error)
	FindTranslation(ctx context.Context, translationGroup, language string) (*models.Page, error)
	FindAll(ctx context.Context) ([]models.Page, error)
}

// PageResolver turns a configured page identifier into the URL the browser is sent to.
type PageResolver interface {
	Resolve(ctx context.Context, pageID, locale string) (string, error)
}

type PageUsecase interface {
	FindAll(ctx context.Context) ([]responses.Page, error)
}
