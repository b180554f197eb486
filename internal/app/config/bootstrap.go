package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Logger         *zap.Logger
	Registry       *prometheus.Registry
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// DispatcherWait if set blocks until in-flight webhook deliveries have returned.
	DispatcherWait func()
	// WorkerStop if set will be called during Shutdown to stop the notification worker.
	WorkerStop func()
}

// Shutdown drains pending notifications before closing the drivers they depend on.
func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.DispatcherWait != nil {
		b.DispatcherWait()
		b.Logger.Info("Successfully drained webhook deliveries")
	}

	if b.WorkerStop != nil {
		b.WorkerStop()
		b.Logger.Info("Successfully stopped notification worker")
	}

	if b.RabbitMQ != nil {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		b.Logger.Info("Successfully closing RabbitMQ")
	}

	if err := b.Redis.Close(); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	_ = b.Logger.Sync()
	return nil
}
