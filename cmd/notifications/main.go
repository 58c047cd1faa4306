package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"turfly/internal/notifications/handler"
	"turfly/pkg/config"
	"turfly/pkg/kafka"
	kafka_config "turfly/pkg/kafka/config"
	kafkamw "turfly/pkg/kafka/middleware"
	"turfly/pkg/metrics"
)

const ServiceName = "notifications"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Notifications service")

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	notifications := handler.NewNotificationHandler(handler.NewLogSender(cfg.Log), cfg.Log)
	consumer, err := kafka.NewConsumer(
		kafkaCfg,
		cfg.BookingEventsTopic,
		kafkaCfg.ConsumerGroupID,
		cfg.BookingEventsDLQTopic,
		notifications.Handle,
		cfg.Log,
	)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka consumer", "error", err)
	}
	consumer.Use(kafkamw.LoggingConsumerMiddleware(cfg.Log))
	if cfg.MetricsEnabled {
		consumer.Use(kafkamw.MetricsConsumerMiddleware(metrics.New(ServiceName)))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg.Log.Info("Consuming booking events", "topic", cfg.BookingEventsTopic, "group_id", kafkaCfg.ConsumerGroupID)
	if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		cfg.Log.Error("Consumer stopped", "error", err)
	}

	if err := consumer.Close(); err != nil {
		cfg.Log.Error("Failed to close Kafka consumer", "error", err)
	}
	cfg.Log.Info("Notifications service stopped")
}
