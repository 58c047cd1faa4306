package kafka_middleware

import (
	"context"
	"turfly/pkg/kafka"
	"turfly/pkg/metrics"
)

func MetricsProducerMiddleware(m *metrics.Metrics) kafka.ProducerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next func(ctx context.Context, msg kafka.Message) error) error {
		err := next(ctx, msg)
		m.KafkaMessage("publish", err)
		return err
	}
}

func MetricsConsumerMiddleware(m *metrics.Metrics) kafka.ConsumerMiddleware {
	return func(ctx context.Context, msg kafka.Message, next kafka.MessageHandler) error {
		err := next(ctx, msg)
		m.KafkaMessage("consume", err)
		return err
	}
}
