package main

import (
	"context"
	"double-optin-service/internal/app/config"
	"double-optin-service/internal/app/contracts"
	"double-optin-service/internal/app/delivery/http/controllers"
	"double-optin-service/internal/app/delivery/http/middlewares"
	"double-optin-service/internal/app/delivery/http/routers"
	"double-optin-service/internal/app/drivers/database"
	"double-optin-service/internal/app/drivers/logger"
	"double-optin-service/internal/app/drivers/messaging"
	"double-optin-service/internal/app/services/core/confirmation"
	"double-optin-service/internal/app/services/core/pages"
	"double-optin-service/internal/app/services/core/settings"
	"double-optin-service/internal/app/services/core/webhook"
	"double-optin-service/internal/app/services/shared/locker"
	"double-optin-service/internal/app/services/shared/metrics"
	"double-optin-service/internal/app/services/shared/redis"
	"double-optin-service/internal/app/services/shared/webhookqueue"
	"double-optin-service/internal/pkg/constvars"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.Error(err))
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         log,
		Registry:       prometheus.NewRegistry(),
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if internalConfig.Notification.Driver == constvars.NotificationDriverQueue {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatal("Failed to bootstrap the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server listening", zap.String("address", server.Addr))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to release resources", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	log := bootstrap.Logger
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Redis
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockerService := locker.NewLockService(redisRepository, log)

	// Metrics
	appMetrics := metrics.New(bootstrap.Registry)

	// Middlewares
	middlewareInstance := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	// Settings
	settingsMongoRepository := settings.NewSettingsMongoRepository(bootstrap.MongoDB, dbName)
	settingsUsecase := settings.NewSettingsUsecase(settingsMongoRepository, bootstrap.InternalConfig, log)

	// Pages
	pageMongoRepository := pages.NewPageMongoRepository(bootstrap.MongoDB, dbName)
	pageRepository := pages.NewPageCachedRepository(
		pageMongoRepository,
		redisRepository,
		log,
		time.Duration(bootstrap.InternalConfig.Page.CacheTTLInSeconds)*time.Second,
	)
	var pageResolver contracts.PageResolver
	if bootstrap.InternalConfig.Language.MultiLanguageEnabled {
		pageResolver = pages.NewLocalizedPageResolver(pageRepository, bootstrap.InternalConfig)
	} else {
		pageResolver = pages.NewPageResolver(pageRepository, bootstrap.InternalConfig)
	}
	pageUsecase := pages.NewPageUsecase(pageMongoRepository, log)

	// Webhook
	webhookSender := webhook.NewWebhookSender(
		log,
		time.Duration(bootstrap.InternalConfig.Notification.HTTPTimeoutInMillis)*time.Millisecond,
	)
	var dispatcher contracts.NotificationDispatcher
	switch bootstrap.InternalConfig.Notification.Driver {
	case constvars.NotificationDriverQueue:
		queue, err := webhookqueue.NewService(
			bootstrap.RabbitMQ,
			log,
			bootstrap.InternalConfig.Notification.QueueName,
			bootstrap.InternalConfig.Notification.WorkerBatchSize,
		)
		if err != nil {
			return err
		}
		queueDispatcher := webhook.NewQueueDispatcher(log, queue)
		worker := webhook.NewWorker(log, bootstrap.InternalConfig, lockerService, queue, webhookSender)
		stopWorker := worker.Start(context.Background())

		dispatcher = queueDispatcher
		bootstrap.DispatcherWait = queueDispatcher.Wait
		bootstrap.WorkerStop = func() {
			stopWorker()
			_ = queue.Close()
		}
	default:
		directDispatcher := webhook.NewDirectDispatcher(log, webhookSender)
		dispatcher = directDispatcher
		bootstrap.DispatcherWait = directDispatcher.Wait
	}

	// Confirmation
	confirmationUsecase := confirmation.NewConfirmationUsecase(pageResolver, dispatcher, appMetrics, bootstrap.InternalConfig, log)

	// Controllers
	confirmationController := controllers.NewConfirmationController(log, settingsUsecase, confirmationUsecase, bootstrap.InternalConfig)
	settingsController := controllers.NewSettingsController(log, settingsUsecase, pageUsecase, bootstrap.InternalConfig)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewareInstance,
		appMetrics,
		confirmationController,
		settingsController,
	)
	return nil
}
