package models

import (
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/dto/responses"
	"strings"
)

// Settings is the configuration one confirmation is decided against. It is read from the
// options store for every request and handed around by value.
type Settings struct {
	WebhookURL    string
	APIPrefix     string
	DateFormat    string
	LandingPageID string
	ExpiredPageID string
	ErrorPageID   string
}

func DefaultSettings() Settings {
	return Settings{
		APIPrefix:  constvars.DefaultSettingsPrefix,
		DateFormat: constvars.DefaultSettingsDateForm,
	}
}

// SettingsFromOptions maps stored options onto Settings. Missing or blank prefix and date
// format fall back to their defaults; everything else stays empty.
func SettingsFromOptions(options map[string]string) Settings {
	settings := DefaultSettings()
	settings.WebhookURL = strings.TrimSpace(options[constvars.SettingsKeyWebhookURL])
	settings.LandingPageID = strings.TrimSpace(options[constvars.SettingsKeyLandingPage])
	settings.ExpiredPageID = strings.TrimSpace(options[constvars.SettingsKeyExpiredPage])
	settings.ErrorPageID = strings.TrimSpace(options[constvars.SettingsKeyErrorPage])
	if prefix := strings.Trim(strings.TrimSpace(options[constvars.SettingsKeyAPIPrefix]), "/"); prefix != "" {
		settings.APIPrefix = prefix
	}
	if dateFormat := strings.TrimSpace(options[constvars.SettingsKeyDateFormat]); dateFormat != "" {
		settings.DateFormat = dateFormat
	}
	return settings
}

func (s Settings) PageIDFor(destination Destination) string {
	switch destination {
	case DestinationLanding:
		return s.LandingPageID
	case DestinationExpired:
		return s.ExpiredPageID
	default:
		return s.ErrorPageID
	}
}

func (s Settings) ConvertIntoResponse(confirmationLinkExample string) responses.Settings {
	return responses.Settings{
		WebhookURL:              s.WebhookURL,
		APIPrefix:               s.APIPrefix,
		DateFormat:              s.DateFormat,
		LandingPageID:           s.LandingPageID,
		ExpiredPageID:           s.ExpiredPageID,
		ErrorPageID:             s.ErrorPageID,
		ConfirmationLinkExample: confirmationLinkExample,
	}
}
