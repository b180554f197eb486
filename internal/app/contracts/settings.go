package contracts

import (
	"context"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/dto/responses"
)

type SettingsRepository interface {
	FindByKeys(ctx context.Context, keys []string) (map[string]string, error)
	Upsert(ctx context.Context, key, value string) error
}

type SettingsUsecase interface {
	Load(ctx context.Context) (models.Settings, error)
	Describe(ctx context.Context) (*responses.Settings, error)
	Update(ctx context.Context, request *requests.UpdateSettings) (*responses.Settings, error)
}
