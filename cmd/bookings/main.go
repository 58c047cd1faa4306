package main

import (
	"turfly/internal/bookings/events"
	"turfly/internal/server"
	"turfly/pkg/config"
	"turfly/pkg/kafka"
	kafka_config "turfly/pkg/kafka/config"
	kafkamw "turfly/pkg/kafka/middleware"
	"turfly/pkg/metrics"
	"turfly/pkg/sealer"
)

const ServiceName = "bookings"

func main() {
	cfg := config.Load(ServiceName)
	cfg.Log.Info("Starting Bookings service")

	if cfg.UsesMongo() {
		cfg.SetMongo()
	}

	tokens, err := sealer.New(cfg.TokenSecret)
	if err != nil {
		cfg.Log.Fatal("Failed to initialise token sealer", "error", err)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New(ServiceName)
	}

	publisher, closePublisher := initPublisher(cfg, m)

	serverApp := server.NewBookingsApplication(cfg, server.Dependencies{
		Tokens:    tokens,
		Publisher: publisher,
		Metrics:   m,
	})
	serverApp.OnShutdown(cfg.GracefulShutdown)
	serverApp.OnShutdown(closePublisher)
	serverApp.Run()
}

func initPublisher(cfg *config.Config, m *metrics.Metrics) (events.Publisher, func()) {
	if !cfg.EventsEnabled {
		cfg.Log.Info("Booking events disabled")
		return events.NewNoopPublisher(), func() {}
	}

	kafkaCfg, err := kafka_config.Load()
	if err != nil {
		cfg.Log.Fatal("Invalid Kafka configuration", "error", err)
	}
	kafkaCfg.LogConfiguration(cfg.Log)

	producer, err := kafka.NewProducer(kafkaCfg, cfg.BookingEventsTopic, cfg.BookingEventsDLQTopic, cfg.Log)
	if err != nil {
		cfg.Log.Fatal("Failed to create Kafka producer", "error", err)
	}
	producer.Use(kafkamw.LoggingProducerMiddleware(cfg.Log))
	producer.Use(kafkamw.MetricsProducerMiddleware(m))

	cfg.Log.Info("Publishing booking events", "topic", cfg.BookingEventsTopic)
	return events.NewKafkaPublisher(producer, cfg.Log), func() {
		if err := producer.Close(); err != nil {
			cfg.Log.Error("Failed to close Kafka producer", "error", err)
		}
	}
}
