package routers

import (
	"bytes"
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/delivery/http/controllers"
	"double-optin-service/internal/app/delivery/http/middlewares"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/app/services/shared/metrics"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/requests"
	"double-optin-service/internal/pkg/dto/responses"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSettingsUsecase struct {
	mock.Mock
}

func (m *MockSettingsUsecase) Load(ctx context.Context) (models.Settings, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.Settings), args.Error(1)
}

func (m *MockSettingsUsecase) Describe(ctx context.Context) (*responses.Settings, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.Settings)
	return result, args.Error(1)
}

func (m *MockSettingsUsecase) Update(ctx context.Context, request *requests.UpdateSettings) (*responses.Settings, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.Settings)
	return result, args.Error(1)
}

type MockConfirmationUsecase struct {
	mock.Mock
}

func (m *MockConfirmationUsecase) Confirm(ctx context.Context, request models.ConfirmationRequest, settings models.Settings, locale string) models.Decision {
	args := m.Called(ctx, request, settings, locale)
	return args.Get(0).(models.Decision)
}

type MockPageUsecase struct {
	mock.Mock
}

func (m *MockPageUsecase) FindAll(ctx context.Context) ([]responses.Page, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).([]responses.Page)
	return result, args.Error(1)
}

const testAPIKey = "test-admin-api-key-12345"

type testServer struct {
	router       *chi.Mux
	settings     *MockSettingsUsecase
	confirmation *MockConfirmationUsecase
	pages        *MockPageUsecase
}

func newTestServer() *testServer {
	logger := zap.NewNop()
	internalConfig := &config.InternalConfig{
		App: config.App{
			AdminAPIKey: testAPIKey,
			MaxRequests: 100,
		},
		Language: config.Language{
			Default:   "en",
			Supported: []string{"en", "de"},
		},
	}

	server := &testServer{
		router:       chi.NewRouter(),
		settings:     new(MockSettingsUsecase),
		confirmation: new(MockConfirmationUsecase),
		pages:        new(MockPageUsecase),
	}

	SetupRoutes(
		server.router,
		internalConfig,
		middlewares.NewMiddlewares(logger, internalConfig),
		metrics.New(prometheus.NewRegistry()),
		controllers.NewConfirmationController(logger, server.settings, server.confirmation, internalConfig),
		controllers.NewSettingsController(logger, server.settings, server.pages, internalConfig),
	)
	return server
}

func storedSettings() models.Settings {
	settings := models.DefaultSettings()
	settings.WebhookURL = "https://hooks.example.com/x"
	return settings
}

func TestConfirmRoute(t *testing.T) {
	t.Run("Redirects To Decision URL", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Load", mock.Anything).Return(storedSettings(), nil)
		server.confirmation.On("Confirm", mock.Anything, models.ConfirmationRequest{
			Email:         "user@example.com",
			Token:         "abc123",
			ExpirationRaw: "02-27-2025",
		}, storedSettings(), "de").Return(models.Decision{
			Outcome:     models.OutcomeConfirmed,
			RedirectURL: "https://example.com/de/danke/",
		}).Once()

		req := httptest.NewRequest(http.MethodGet, "/double-optin/v1/confirm/?email=user@example.com&token=abc123&expiration=02-27-2025", nil)
		req.Header.Set(constvars.HeaderAcceptLanguage, "de-DE")
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://example.com/de/danke/", rr.Header().Get("Location"))
		assert.NotEmpty(t, rr.Header().Get(constvars.HeaderXRequestID))
		server.confirmation.AssertExpectations(t)
	})

	t.Run("Without Trailing Slash", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Load", mock.Anything).Return(storedSettings(), nil)
		server.confirmation.On("Confirm", mock.Anything, mock.Anything, mock.Anything, "en").Return(models.Decision{
			Outcome:     models.OutcomeExpired,
			RedirectURL: "https://example.com/expired",
		})

		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/double-optin/v1/confirm?email=user@example.com&token=abc123&expiration=02-27-2025", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://example.com/expired", rr.Header().Get("Location"))
	})

	t.Run("Unknown Prefix", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Load", mock.Anything).Return(storedSettings(), nil)

		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/newsletter/v1/confirm/?email=user@example.com&token=abc123&expiration=02-27-2025", nil))

		assert.Equal(t, http.StatusNotFound, rr.Code)
		server.confirmation.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Changed Prefix Applies Immediately", func(t *testing.T) {
		server := newTestServer()
		settings := storedSettings()
		settings.APIPrefix = "newsletter"
		server.settings.On("Load", mock.Anything).Return(settings, nil)
		server.confirmation.On("Confirm", mock.Anything, mock.Anything, settings, "en").Return(models.Decision{
			RedirectURL: "https://example.com/thank-you",
		})

		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/newsletter/v1/confirm/?email=user@example.com&token=abc123&expiration=02-27-2025", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
	})

	testCases := []struct {
		name  string
		query string
	}{
		{"Invalid Email", "?email=not-an-email&token=abc123&expiration=02-27-2025"},
		{"Blank Token", "?email=user@example.com&token=%20%20&expiration=02-27-2025"},
		{"Missing Expiration", "?email=user@example.com&token=abc123"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := newTestServer()
			server.settings.On("Load", mock.Anything).Return(storedSettings(), nil)

			rr := httptest.NewRecorder()
			server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/double-optin/v1/confirm/"+tc.query, nil))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			server.confirmation.AssertNotCalled(t, "Confirm", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Settings Failure Uses Defaults", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Load", mock.Anything).Return(models.DefaultSettings(), errors.New("mongo down"))
		server.confirmation.On("Confirm", mock.Anything, mock.Anything, models.DefaultSettings(), "en").Return(models.Decision{
			Outcome:     models.OutcomeMisconfigured,
			RedirectURL: "https://example.com/error",
		})

		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/double-optin/v1/confirm/?email=user@example.com&token=abc123&expiration=02-27-2025", nil))

		assert.Equal(t, http.StatusFound, rr.Code)
		assert.Equal(t, "https://example.com/error", rr.Header().Get("Location"))
	})
}

func TestAdminRoutes(t *testing.T) {
	t.Run("Get Settings Requires API Key", func(t *testing.T) {
		server := newTestServer()

		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/v1/settings", nil))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		server.settings.AssertNotCalled(t, "Describe", mock.Anything)
	})

	t.Run("Get Settings", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Describe", mock.Anything).Return(&responses.Settings{
			APIPrefix:               "double-optin",
			ConfirmationLinkExample: "https://example.com/double-optin/v1/confirm/?email=user%40example.com",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/v1/settings", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"api_prefix":"double-optin"`)
		assert.Contains(t, rr.Body.String(), `"confirmation_link_example"`)
	})

	t.Run("Update Settings", func(t *testing.T) {
		server := newTestServer()
		server.settings.On("Update", mock.Anything, mock.MatchedBy(func(request *requests.UpdateSettings) bool {
			return request.WebhookURL != nil && *request.WebhookURL == "https://hooks.example.com/x" && request.APIPrefix == nil
		})).Return(&responses.Settings{WebhookURL: "https://hooks.example.com/x"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/admin/v1/settings", bytes.NewBufferString(`{"webhook_url":"https://hooks.example.com/x"}`))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		server.settings.AssertExpectations(t)
	})

	t.Run("Update Settings Malformed Body", func(t *testing.T) {
		server := newTestServer()

		req := httptest.NewRequest(http.MethodPut, "/admin/v1/settings", strings.NewReader(`{"webhook_url":`))
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		server.settings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("List Pages", func(t *testing.T) {
		server := newTestServer()
		server.pages.On("FindAll", mock.Anything).Return([]responses.Page{{ID: "10", Title: "Thank you"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/admin/v1/pages", nil)
		req.Header.Set(constvars.HeaderAPIKey, testAPIKey)
		rr := httptest.NewRecorder()
		server.router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), `"title":"Thank you"`)
	})
}

func TestMetricsRoute(t *testing.T) {
	server := newTestServer()

	rr := httptest.NewRecorder()
	server.router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "go_goroutines")
}
