package exceptions

import "double-optin-service/internal/pkg/constvars"

func ErrInvalidAPIKey(err error) error {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientInvalidAPIKey, constvars.ErrDevInvalidAPIKey)
}

func ErrAPIKeyRequired(err error) error {
	return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientAPIKeyRequired, constvars.ErrDevAPIKeyRequired)
}

func ErrAPIKeyNotConfigured(err error) error {
	return BuildNewCustomError(err, constvars.StatusServiceUnavailable, constvars.ErrClientNotAuthorized, constvars.ErrDevAPIKeyNotConfigured)
}
