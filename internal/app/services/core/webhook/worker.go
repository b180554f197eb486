package webhook

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/services/shared/webhookqueue"
	"double-optin-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Worker drains the notification queue. Each message is acked before its single delivery
// attempt, so a webhook is called at most once per confirmation.
type Worker struct {
	log       *zap.Logger
	locker    contracts.LockerService
	queue     NotificationQueue
	sender    contracts.WebhookSender
	interval  time.Duration
	batchSize int
	stop      chan struct{}
	stopOnce  sync.Once
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, queue NotificationQueue, sender contracts.WebhookSender) *Worker {
	interval := time.Duration(cfg.Notification.WorkerIntervalInSeconds) * time.Second
	if interval <= 0 {
		interval = time.Duration(constvars.DefaultWorkerIntervalSecs) * time.Second
	}
	batchSize := cfg.Notification.WorkerBatchSize
	if batchSize <= 0 {
		batchSize = constvars.DefaultWorkerBatchSize
	}
	return &Worker{
		log:       log,
		locker:    lockerSvc,
		queue:     queue,
		sender:    sender,
		interval:  interval,
		batchSize: batchSize,
		stop:      make(chan struct{}),
	}
}

// Start begins the ticker loop. It returns a stop function that blocks until the loop exits.
func (w *Worker) Start(ctx context.Context) (stop func()) {
	ticker := time.NewTicker(w.interval)
	stopped := make(chan struct{})

	w.log.Info("Notification worker started", zap.Duration("interval", w.interval))

	go func() {
		defer close(stopped)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case now := <-ticker.C:
				w.runOnce(ctx, now)
			}
		}
	}()

	return func() {
		w.stopOnce.Do(func() { close(w.stop) })
		<-stopped
	}
}

func (w *Worker) runOnce(ctx context.Context, now time.Time) {
	ttl := w.interval - time.Second
	if ttl < time.Second {
		ttl = time.Second
	}
	acquired, lockVal, err := w.locker.TryLock(ctx, constvars.RedisKeyNotificationLock, ttl)
	if err != nil {
		w.log.Warn("worker lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Debug("worker lock not acquired; another instance is running", zap.Time("now", now))
		return
	}
	defer func() {
		if err := w.locker.Unlock(ctx, constvars.RedisKeyNotificationLock, lockVal); err != nil {
			w.log.Error("worker unlock failed", zap.Error(err))
		}
	}()

	out, err := w.queue.FetchN(ctx, &webhookqueue.FetchNInput{Max: w.batchSize})
	if err != nil {
		w.log.Warn("queue.FetchN error", zap.Error(err))
		return
	}
	if len(out.Items) == 0 {
		return
	}

	w.log.Info("queue.FetchN success", zap.Int(constvars.LoggingFetchedCountKey, len(out.Items)))

	for _, item := range out.Items {
		w.processItem(ctx, item)
	}
}

func (w *Worker) processItem(ctx context.Context, item webhookqueue.QueuedItem) {
	notification := item.Notification

	if _, err := w.queue.AckMessage(ctx, &webhookqueue.AckMessageInput{DeliveryTag: item.DeliveryTag}); err != nil {
		w.log.Error("ack failed; skipping delivery",
			zap.String(constvars.LoggingNotificationIDKey, notification.ID),
			zap.Error(err),
		)
		return
	}

	if err := w.sender.Send(ctx, notification); err != nil {
		w.log.Warn("webhook delivery failed; notification dropped",
			zap.String(constvars.LoggingNotificationIDKey, notification.ID),
			zap.String(constvars.LoggingWebhookURLKey, notification.WebhookURL),
			zap.Error(err),
		)
	}
}
