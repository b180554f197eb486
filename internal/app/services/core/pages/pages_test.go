package pages

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/models"
	"errors"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryPageRepository struct {
	pages   []models.Page
	lookups int
}

func (repo *memoryPageRepository) FindByID(ctx context.Context, pageID string) (*models.Page, error) {
	repo.lookups++
	for _, page := range repo.pages {
		if page.ID == pageID {
			found := page
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *memoryPageRepository) FindTranslation(ctx context.Context, translationGroup, language string) (*models.Page, error) {
	repo.lookups++
	for _, page := range repo.pages {
		if page.TranslationGroup == translationGroup && page.Language == language {
			found := page
			return &found, nil
		}
	}
	return nil, nil
}

func (repo *memoryPageRepository) FindAll(ctx context.Context) ([]models.Page, error) {
	return repo.pages, nil
}

type mockRedisRepository struct {
	mock.Mock
}

func (m *mockRedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *mockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *mockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func testConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.App.BaseUrl = "https://example.com"
	cfg.Language.Default = "en"
	return cfg
}

func translatedPages() *memoryPageRepository {
	return &memoryPageRepository{pages: []models.Page{
		{ID: "10", Slug: "thank-you", Language: "en", TranslationGroup: "thanks"},
		{ID: "11", Slug: "danke", Language: "de", TranslationGroup: "thanks"},
		{ID: "20", Slug: "abgelaufen", Language: "de", TranslationGroup: "expired"},
		{ID: "21", Slug: "expired", Language: "en", TranslationGroup: "expired"},
		{ID: "30", Slug: "oops"},
	}}
}

func TestPageResolver_Resolve(t *testing.T) {
	resolver := NewPageResolver(translatedPages(), testConfig())

	t.Run("Permalink", func(t *testing.T) {
		url, err := resolver.Resolve(context.Background(), "10", "de")
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/thank-you/", url)
	})

	t.Run("Unknown Page", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), "99", "")
		assert.Error(t, err)
	})

	t.Run("Empty Page ID", func(t *testing.T) {
		_, err := resolver.Resolve(context.Background(), "", "")
		assert.Error(t, err)
	})
}

func TestLocalizedPageResolver_Resolve(t *testing.T) {
	testCases := []struct {
		name   string
		pageID string
		locale string
		want   string
	}{
		{"Translation For Locale", "10", "de", "https://example.com/de/danke/"},
		{"Same Language", "11", "de", "https://example.com/de/danke/"},
		{"Missing Translation Falls Back To Default Language", "20", "fr", "https://example.com/expired/"},
		{"No Locale Uses Default Language", "20", "", "https://example.com/expired/"},
		{"Untranslated Page", "30", "de", "https://example.com/oops/"},
	}

	resolver := NewLocalizedPageResolver(translatedPages(), testConfig())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			url, err := resolver.Resolve(context.Background(), tc.pageID, tc.locale)
			require.NoError(t, err)
			assert.Equal(t, tc.want, url)
		})
	}
}

func TestLocalizedPageResolver_Idempotent(t *testing.T) {
	resolver := NewLocalizedPageResolver(translatedPages(), testConfig())

	first, err := resolver.Resolve(context.Background(), "10", "de")
	require.NoError(t, err)
	second, err := resolver.Resolve(context.Background(), "10", "de")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPageCachedRepository_FindByID(t *testing.T) {
	t.Run("Cache Miss Stores Page", func(t *testing.T) {
		source := translatedPages()
		redisRepo := new(mockRedisRepository)
		redisRepo.On("Get", mock.Anything, "double_optin:page:id:10").Return("", nil)
		redisRepo.On("Set", mock.Anything, "double_optin:page:id:10", mock.Anything, time.Minute).Return(nil)

		page, err := NewPageCachedRepository(source, redisRepo, zap.NewNop(), time.Minute).FindByID(context.Background(), "10")

		require.NoError(t, err)
		assert.Equal(t, "thank-you", page.Slug)
		redisRepo.AssertExpectations(t)
	})

	t.Run("Cache Hit Skips Source", func(t *testing.T) {
		source := translatedPages()
		cached, _ := json.Marshal(models.Page{ID: "10", Slug: "cached"})
		redisRepo := new(mockRedisRepository)
		redisRepo.On("Get", mock.Anything, "double_optin:page:id:10").Return(string(cached), nil)

		page, err := NewPageCachedRepository(source, redisRepo, zap.NewNop(), time.Minute).FindByID(context.Background(), "10")

		require.NoError(t, err)
		assert.Equal(t, "cached", page.Slug)
		assert.Equal(t, 0, source.lookups)
	})

	t.Run("Missing Page Not Cached", func(t *testing.T) {
		redisRepo := new(mockRedisRepository)
		redisRepo.On("Get", mock.Anything, "double_optin:page:id:99").Return("", nil)

		page, err := NewPageCachedRepository(translatedPages(), redisRepo, zap.NewNop(), time.Minute).FindByID(context.Background(), "99")

		require.NoError(t, err)
		assert.Nil(t, page)
		redisRepo.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Redis Failure Reads Through", func(t *testing.T) {
		redisRepo := new(mockRedisRepository)
		redisRepo.On("Get", mock.Anything, "double_optin:page:translation:thanks:de").Return("", errors.New("redis down"))
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("redis down"))

		page, err := NewPageCachedRepository(translatedPages(), redisRepo, zap.NewNop(), time.Minute).FindTranslation(context.Background(), "thanks", "de")

		require.NoError(t, err)
		assert.Equal(t, "11", page.ID)
	})
}

func TestPageUsecase_FindAll(t *testing.T) {
	response, err := NewPageUsecase(translatedPages(), zap.NewNop()).FindAll(context.Background())

	require.NoError(t, err)
	require.Len(t, response, 5)
	assert.Equal(t, "thanks", response[0].TranslationGroup)
}
