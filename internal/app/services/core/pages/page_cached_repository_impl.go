package pages

import (
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// pageCachedRepository keeps single page lookups in redis. Missing pages are not cached, and a
// redis failure only costs a trip to the underlying repository.
type pageCachedRepository struct {
	PageRepository  contracts.PageRepository
	RedisRepository contracts.RedisRepository
	Log             *zap.Logger
	TTL             time.Duration
}

func NewPageCachedRepository(
	pageRepository contracts.PageRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
	ttl time.Duration,
) contracts.PageRepository {
	return &pageCachedRepository{
		PageRepository:  pageRepository,
		RedisRepository: redisRepository,
		Log:             logger,
		TTL:             ttl,
	}
}

func (repo *pageCachedRepository) FindByID(ctx context.Context, pageID string) (*models.Page, error) {
	key := fmt.Sprintf(constvars.RedisKeyPageByID, pageID)
	return repo.cached(ctx, key, func() (*models.Page, error) {
		return repo.PageRepository.FindByID(ctx, pageID)
	})
}

func (repo *pageCachedRepository) FindTranslation(ctx context.Context, translationGroup, language string) (*models.Page, error) {
	key := fmt.Sprintf(constvars.RedisKeyPageTranslation, translationGroup, language)
	return repo.cached(ctx, key, func() (*models.Page, error) {
		return repo.PageRepository.FindTranslation(ctx, translationGroup, language)
	})
}

// FindAll backs the admin listing and always reads through.
func (repo *pageCachedRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	return repo.PageRepository.FindAll(ctx)
}

func (repo *pageCachedRepository) cached(ctx context.Context, key string, load func() (*models.Page, error)) (*models.Page, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cachedData, err := repo.RedisRepository.Get(ctx, key)
	if err != nil {
		repo.Log.Warn("pageCachedRepository error retrieving data from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}

	if cachedData != "" {
		var page models.Page
		if err := json.Unmarshal([]byte(cachedData), &page); err == nil {
			return &page, nil
		}
		repo.Log.Warn("pageCachedRepository error parsing JSON from Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
		)
	}

	page, err := load()
	if err != nil || page == nil {
		return page, err
	}

	if err := repo.RedisRepository.Set(ctx, key, page, repo.TTL); err != nil {
		repo.Log.Warn("pageCachedRepository error caching data in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
	}
	return page, nil
}
