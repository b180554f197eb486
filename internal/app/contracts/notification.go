package contracts

import (
	"context"
	"double-optin-service/internal/app/models"
)

// NotificationDispatcher hands a webhook notification off without waiting for its delivery.
// Delivery is best effort: at most once and never confirmed to the caller.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, notification models.Notification)
}

type WebhookSender interface {
	Send(ctx context.Context, notification models.Notification) error
}
