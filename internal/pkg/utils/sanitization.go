package utils

import (
	"double-optin-service/internal/pkg/dto/requests"
	"strings"
)

func SanitizeConfirmDoubleOptInRequest(input *requests.ConfirmDoubleOptIn) {
	input.Email = strings.TrimSpace(input.Email)
	input.Token = strings.TrimSpace(input.Token)
	input.Expiration = strings.TrimSpace(input.Expiration)
}

func SanitizeUpdateSettingsRequest(input *requests.UpdateSettings) {
	for _, field := range []*string{
		input.WebhookURL,
		input.APIPrefix,
		input.DateFormat,
		input.LandingPageID,
		input.ExpiredPageID,
		input.ErrorPageID,
	} {
		if field != nil {
			*field = strings.TrimSpace(*field)
		}
	}
	if input.APIPrefix != nil {
		*input.APIPrefix = strings.Trim(*input.APIPrefix, "/")
	}
}
