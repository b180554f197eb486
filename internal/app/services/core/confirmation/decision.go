package confirmation

import (
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/exceptions"
	"double-optin-service/internal/pkg/utils"
	"time"
)

// GracePeriod is how long a link keeps working after the start of its expiration day.
const GracePeriod = 48 * time.Hour

// Decide applies the confirmation rules in order: an unparseable expiration or a missing
// webhook is an error whatever the expiration, a link past its grace period is expired, and
// anything else is confirmed and carries the notification for the webhook. The expiration date is read in
// now's location.
func Decide(request models.ConfirmationRequest, settings models.Settings, now time.Time) models.Verdict {
	expiresAt, err := utils.ParseDateInLocation(settings.DateFormat, request.ExpirationRaw, now.Location())
	if err != nil {
		return models.Verdict{
			Outcome:     models.OutcomeMisconfigured,
			Destination: models.DestinationError,
			Reason:      exceptions.ErrExpirationUnparseable,
		}
	}

	if settings.WebhookURL == "" {
		return models.Verdict{
			Outcome:     models.OutcomeMisconfigured,
			Destination: models.DestinationError,
			Reason:      exceptions.ErrWebhookNotConfigured,
		}
	}

	if now.After(expiresAt.Add(GracePeriod)) {
		return models.Verdict{
			Outcome:     models.OutcomeExpired,
			Destination: models.DestinationExpired,
			Reason:      exceptions.ErrLinkExpired,
		}
	}

	return models.Verdict{
		Outcome:     models.OutcomeConfirmed,
		Destination: models.DestinationLanding,
		Notification: &models.Notification{
			WebhookURL: settings.WebhookURL,
			Email:      request.Email,
			Token:      request.Token,
			CreatedAt:  now,
		},
	}
}
