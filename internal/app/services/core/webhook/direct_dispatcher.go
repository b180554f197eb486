package webhook

import (
	"context"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

// DirectDispatcher sends each notification from its own goroutine, detached from the request.
type DirectDispatcher struct {
	Log    *zap.Logger
	Sender contracts.WebhookSender
	wg     sync.WaitGroup
}

func NewDirectDispatcher(logger *zap.Logger, sender contracts.WebhookSender) *DirectDispatcher {
	return &DirectDispatcher{
		Log:    logger,
		Sender: sender,
	}
}

func (d *DirectDispatcher) Dispatch(ctx context.Context, notification models.Notification) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		if err := d.Sender.Send(detached, notification); err != nil {
			d.Log.Warn("DirectDispatcher.Dispatch webhook delivery failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNotificationIDKey, notification.ID),
				zap.String(constvars.LoggingWebhookURLKey, notification.WebhookURL),
				zap.Error(err),
			)
		}
	}()
}

// Wait blocks until every in-flight delivery has returned.
func (d *DirectDispatcher) Wait() {
	d.wg.Wait()
}
