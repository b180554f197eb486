package models

import (
	"double-optin-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettingsFromOptions(t *testing.T) {
	t.Run("Empty Store Uses Defaults", func(t *testing.T) {
		settings := SettingsFromOptions(map[string]string{})

		assert.Equal(t, constvars.DefaultSettingsPrefix, settings.APIPrefix)
		assert.Equal(t, constvars.DefaultSettingsDateForm, settings.DateFormat)
		assert.Empty(t, settings.WebhookURL)
	})

	t.Run("Stored Values Win", func(t *testing.T) {
		settings := SettingsFromOptions(map[string]string{
			constvars.SettingsKeyWebhookURL:  " https://hooks.example.com/optin ",
			constvars.SettingsKeyAPIPrefix:   "/newsletter/",
			constvars.SettingsKeyDateFormat:  "YYYY-MM-DD",
			constvars.SettingsKeyLandingPage: "12",
			constvars.SettingsKeyExpiredPage: "13",
			constvars.SettingsKeyErrorPage:   "14",
		})

		assert.Equal(t, "https://hooks.example.com/optin", settings.WebhookURL)
		assert.Equal(t, "newsletter", settings.APIPrefix)
		assert.Equal(t, "YYYY-MM-DD", settings.DateFormat)
		assert.Equal(t, "12", settings.PageIDFor(DestinationLanding))
		assert.Equal(t, "13", settings.PageIDFor(DestinationExpired))
		assert.Equal(t, "14", settings.PageIDFor(DestinationError))
	})
}

func TestDestinationFallbackPath(t *testing.T) {
	assert.Equal(t, "/thank-you", DestinationLanding.FallbackPath())
	assert.Equal(t, "/expired", DestinationExpired.FallbackPath())
	assert.Equal(t, "/error", DestinationError.FallbackPath())
}

func TestPagePermalink(t *testing.T) {
	page := Page{ID: "12", Slug: "welcome", Language: "en"}
	assert.Equal(t, "https://example.com/welcome/", page.Permalink("https://example.com/", "en"))

	translated := Page{ID: "13", Slug: "willkommen", Language: "de"}
	assert.Equal(t, "https://example.com/de/willkommen/", translated.Permalink("https://example.com", "en"))
}
