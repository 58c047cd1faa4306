package events

import (
	"context"
	"fmt"
	"time"
	"turfly/pkg/kafka"
	"turfly/pkg/logger"
	"turfly/pkg/middleware"
	"turfly/pkg/model"
)

const (
	TypeBookingCreated   = "booking.created"
	TypeBookingConfirmed = "booking.confirmed"
	TypeBookingCancelled = "booking.cancelled"
	TypeBookingsCleared  = "bookings.cleared"

	SchemaVersion = "1"
	Source        = "turfly-bookings"

	// clearedKey partitions bulk-clear events, which belong to no turf.
	clearedKey = "all"
)

// Event is the payload written to the booking events topic.
type Event struct {
	Type       string         `json:"type"`
	Booking    *model.Booking `json:"booking,omitempty"`
	Removed    int64          `json:"removed,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

func (e Event) Key() string {
	if e.Booking != nil {
		return e.Booking.TurfID
	}
	return clearedKey
}

// Publisher announces lifecycle changes. Implementations must not block the
// caller for long; failures are returned for logging only.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

func NewBookingEvent(eventType string, booking *model.Booking) Event {
	return Event{Type: eventType, Booking: booking, OccurredAt: time.Now().UTC()}
}

func NewClearedEvent(removed int64) Event {
	return Event{Type: TypeBookingsCleared, Removed: removed, OccurredAt: time.Now().UTC()}
}

type messagePublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type kafkaPublisher struct {
	producer messagePublisher
	log      *logger.Logger
}

func NewKafkaPublisher(producer *kafka.Producer, log *logger.Logger) Publisher {
	return &kafkaPublisher{producer: producer, log: log}
}

func (p *kafkaPublisher) Publish(ctx context.Context, event Event) error {
	msg, err := kafka.NewMessage().
		WithKey(event.Key()).
		WithValue(event).
		WithEventType(event.Type).
		WithCorrelationID(middleware.RequestIDFromContext(ctx)).
		WithSchemaVersion(SchemaVersion).
		WithSource(Source).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build %s event: %w", event.Type, err)
	}

	if err := p.producer.Publish(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish %s event: %w", event.Type, err)
	}
	return nil
}

type noopPublisher struct{}

// NewNoopPublisher drops every event. Used when EVENTS_ENABLED is off.
func NewNoopPublisher() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(context.Context, Event) error {
	return nil
}
