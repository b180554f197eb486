package webhookqueue

import (
	"context"
	"double-optin-service/internal/app/models"
	"double-optin-service/internal/pkg/constvars"
	"double-optin-service/internal/pkg/exceptions"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes confirmed-link notifications to a durable RabbitMQ queue and hands them
// back to the worker in batches.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	confirms  chan amqp.Confirmation
	mu        sync.Mutex
}

// NewService declares the durable queue, enables publisher confirms and sets QoS.
func NewService(conn *amqp.Connection, log *zap.Logger, queueName string, prefetch int) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	if prefetch <= 0 {
		prefetch = 1
	}
	if err := ch.Qos(prefetch, 0, false); err != nil {
		return nil, err
	}

	if err := ch.Confirm(false); err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
		confirms:  ch.NotifyPublish(make(chan amqp.Confirmation, 1)),
	}, nil
}

type EnqueueInput struct {
	Notification models.Notification
}

type EnqueueOutput struct{}

type FetchNInput struct {
	Max int
}

// QueuedItem is a fetched delivery and its decoded notification.
type QueuedItem struct {
	DeliveryTag  uint64
	Notification models.Notification
}

type FetchNOutput struct {
	Items []QueuedItem
}

type AckMessageInput struct {
	DeliveryTag uint64
}

type AckMessageOutput struct{}

// Enqueue publishes a persistent message and waits for the broker confirm.
func (s *Service) Enqueue(ctx context.Context, in *EnqueueInput) (*EnqueueOutput, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.log.Info("WebhookQueue.Enqueue called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingNotificationIDKey, in.Notification.ID),
	)

	body, err := json.Marshal(in.Notification)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
		MessageId:    in.Notification.ID,
	}

	if err := s.ch.PublishWithContext(ctx, "", s.queueName, false, false, msg); err != nil {
		return nil, exceptions.ErrRabbitMQPublishMessage(err, s.queueName)
	}

	select {
	case confirmed := <-s.confirms:
		if !confirmed.Ack {
			return nil, exceptions.ErrRabbitMQPublishMessage(fmt.Errorf("message not confirmed"), s.queueName)
		}
	case <-ctx.Done():
		return nil, exceptions.ErrRabbitMQPublishMessage(ctx.Err(), s.queueName)
	}
	return &EnqueueOutput{}, nil
}

// FetchN retrieves up to N messages using basic.get without auto-ack. Undecodable messages are
// acked and dropped.
func (s *Service) FetchN(ctx context.Context, in *FetchNInput) (*FetchNOutput, error) {
	n := in.Max
	if n <= 0 {
		n = 1
	}
	items := make([]QueuedItem, 0, n)

	for i := 0; i < n; i++ {
		d, ok, err := s.ch.Get(s.queueName, false)
		if err != nil {
			return nil, exceptions.ErrRabbitMQFetchMessage(err, s.queueName)
		}
		if !ok {
			break
		}
		var notification models.Notification
		if err := json.Unmarshal(d.Body, &notification); err != nil {
			s.log.Warn("WebhookQueue.FetchN dropping undecodable message",
				zap.String(constvars.LoggingQueueNameKey, s.queueName),
				zap.Error(err),
			)
			_ = d.Ack(false)
			continue
		}
		items = append(items, QueuedItem{DeliveryTag: d.DeliveryTag, Notification: notification})
	}

	return &FetchNOutput{Items: items}, nil
}

func (s *Service) AckMessage(ctx context.Context, in *AckMessageInput) (*AckMessageOutput, error) {
	if err := s.ch.Ack(in.DeliveryTag, false); err != nil {
		return nil, err
	}
	return &AckMessageOutput{}, nil
}

func (s *Service) Close() error {
	return s.ch.Close()
}
