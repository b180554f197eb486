package webhook

import (
	"context"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/app/services/shared/webhookqueue"
	"double-optin-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// NotificationQueue is the subset of webhookqueue.Service used by the dispatcher and worker.
type NotificationQueue interface {
	Enqueue(ctx context.Context, in *webhookqueue.EnqueueInput) (*webhookqueue.EnqueueOutput, error)
	FetchN(ctx context.Context, in *webhookqueue.FetchNInput) (*webhookqueue.FetchNOutput, error)
	AckMessage(ctx context.Context, in *webhookqueue.AckMessageInput) (*webhookqueue.AckMessageOutput, error)
}

const enqueueTimeout = 5 * time.Second

// QueueDispatcher publishes notifications for the Worker to deliver.
type QueueDispatcher struct {
	Log   *zap.Logger
	Queue NotificationQueue
	wg    sync.WaitGroup
}

func NewQueueDispatcher(logger *zap.Logger, queue NotificationQueue) *QueueDispatcher {
	return &QueueDispatcher{
		Log:   logger,
		Queue: queue,
	}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, notification models.Notification) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	detached := context.WithoutCancel(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		enqueueCtx, cancel := context.WithTimeout(detached, enqueueTimeout)
		defer cancel()

		_, err := d.Queue.Enqueue(enqueueCtx, &webhookqueue.EnqueueInput{Notification: notification})
		if err != nil {
			d.Log.Warn("QueueDispatcher.Dispatch enqueue failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingNotificationIDKey, notification.ID),
				zap.Error(err),
			)
		}
	}()
}

func (d *QueueDispatcher) Wait() {
	d.wg.Wait()
}
