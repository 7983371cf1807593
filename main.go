package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.uber.org/zap"

	"userdesk/internal/config"
	"userdesk/internal/logging"
	"userdesk/internal/repositories"
	"userdesk/internal/server"
	"userdesk/internal/services"
	"userdesk/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(cfg config.Config, logger *zap.Logger) error {
	// --- Store ---
	connectCtx, cancel := context.WithTimeout(context.Background(), cfg.RequestTimeout)
	store, err := repositories.Open(connectCtx, cfg, logger.Named("store"))
	cancel()
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.StoreDriver, err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Warn("failed to close store", zap.Error(err))
		}
	}()

	// --- Events ---
	var events services.EventPublisher = services.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger.Named("rabbitmq"))
		if err != nil {
			return err
		}
		defer mqClient.Close()
		events = mqClient

		if cfg.AuditQueue != "" {
			if err := mqClient.ConsumeEvents(cfg.AuditQueue, auditEvents(logger.Named("audit"))); err != nil {
				return err
			}
			logger.Info("auditing events", zap.String("queue", cfg.AuditQueue))
		}
	}

	// --- HTTP ---
	app := server.New(server.Deps{
		Store:          store,
		Events:         events,
		Log:            logger,
		RequestTimeout: cfg.RequestTimeout,
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", zap.String("addr", cfg.Port), zap.String("store", store.Driver))
		listenErr <- app.Listen(cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return fmt.Errorf("server failed to start: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")
	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		return fmt.Errorf("error during shutdown: %w", err)
	}
	logger.Info("server gracefully stopped")
	return nil
}

// auditEvents logs every event delivered to the audit queue.
func auditEvents(logger *zap.Logger) func(amqp.Delivery) error {
	return func(msg amqp.Delivery) error {
		env, err := rabbitmq.Decode(msg.Body)
		if err != nil {
			return err
		}
		if env.Type == "" {
			return errors.New("event without type")
		}
		logger.Info("event",
			zap.String("type", env.Type),
			zap.Time("occurredAt", env.OccurredAt),
			zap.ByteString("data", env.Data),
			zap.Duration("age", time.Since(env.OccurredAt)),
		)
		return nil
	}
}
