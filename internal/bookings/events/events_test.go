package events

import (
	"context"
	"errors"
	"testing"
	"turfly/pkg/kafka"
	"turfly/pkg/logger"
	"turfly/pkg/middleware"
	"turfly/pkg/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	msgs []kafka.Message
	err  error
}

func (p *recordingProducer) Publish(_ context.Context, msg kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msg)
	return nil
}

func TestKafkaPublisher_BookingEvent(t *testing.T) {
	producer := &recordingProducer{}
	pub := &kafkaPublisher{producer: producer, log: logger.Nop()}

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	booking := &model.Booking{ID: "b1", TurfID: "t3", Status: model.StatusPending, TotalPrice: 3000}
	require.NoError(t, pub.Publish(ctx, NewBookingEvent(TypeBookingCreated, booking)))

	require.Len(t, producer.msgs, 1)
	msg := producer.msgs[0]
	assert.Equal(t, "t3", msg.Key)
	assert.Equal(t, TypeBookingCreated, msg.GetEventType())
	assert.Equal(t, "req-42", msg.GetCorrelationID())
	assert.Equal(t, Source, msg.Headers[kafka.HeaderSource])

	var decoded Event
	require.NoError(t, msg.DecodeValue(&decoded))
	assert.Equal(t, "b1", decoded.Booking.ID)
	assert.Equal(t, int64(3000), decoded.Booking.TotalPrice)
}

func TestKafkaPublisher_ClearedEvent(t *testing.T) {
	producer := &recordingProducer{}
	pub := &kafkaPublisher{producer: producer, log: logger.Nop()}

	require.NoError(t, pub.Publish(context.Background(), NewClearedEvent(7)))
	require.Len(t, producer.msgs, 1)
	assert.Equal(t, clearedKey, producer.msgs[0].Key)

	var decoded Event
	require.NoError(t, producer.msgs[0].DecodeValue(&decoded))
	assert.Equal(t, int64(7), decoded.Removed)
	assert.Nil(t, decoded.Booking)
}

func TestKafkaPublisher_Failure(t *testing.T) {
	pub := &kafkaPublisher{producer: &recordingProducer{err: errors.New("broker down")}, log: logger.Nop()}
	err := pub.Publish(context.Background(), NewClearedEvent(1))
	assert.ErrorContains(t, err, "bookings.cleared")
}

func TestNoopPublisher(t *testing.T) {
	assert.NoError(t, NewNoopPublisher().Publish(context.Background(), NewClearedEvent(0)))
}
