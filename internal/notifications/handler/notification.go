package handler

import (
	"context"
	"fmt"
	"turfly/internal/bookings/events"
	"turfly/pkg/kafka"
	"turfly/pkg/logger"
)

type Audience string

const (
	AudienceGuest   Audience = "guest"
	AudienceManager Audience = "manager"
	AudienceAdmin   Audience = "admin"
)

// Notification is one message addressed to one party of a booking.
type Notification struct {
	Audience  Audience
	BookingID string
	TurfID    string
	Recipient string
	Text      string
}

type Sender interface {
	Send(ctx context.Context, n Notification) error
}

type logSender struct {
	log *logger.Logger
}

// NewLogSender writes notifications to the service log. There is no outbound
// channel (SMS, email) yet.
func NewLogSender(log *logger.Logger) Sender {
	return &logSender{log: log}
}

func (s *logSender) Send(_ context.Context, n Notification) error {
	s.log.Info("Notification",
		"audience", n.Audience,
		"booking_id", n.BookingID,
		"turf_id", n.TurfID,
		"recipient", n.Recipient,
		"text", n.Text,
	)
	return nil
}

type NotificationHandler struct {
	sender Sender
	log    *logger.Logger
}

func NewNotificationHandler(sender Sender, log *logger.Logger) *NotificationHandler {
	return &NotificationHandler{sender: sender, log: log}
}

// Handle is a kafka.MessageHandler for the booking events topic.
func (h *NotificationHandler) Handle(ctx context.Context, msg kafka.Message) error {
	var event events.Event
	if err := msg.DecodeValue(&event); err != nil {
		return kafka.NewPermanentError("decode booking event", err)
	}

	notifications, err := notificationsFor(event)
	if err != nil {
		return kafka.NewPermanentError("unroutable booking event", err)
	}

	for _, n := range notifications {
		if err := h.sender.Send(ctx, n); err != nil {
			return kafka.NewTransientError(fmt.Sprintf("send %s notification", n.Audience), err)
		}
	}

	h.log.Debug("Booking event handled",
		"event_type", event.Type,
		"event_id", msg.GetEventID(),
		"correlation_id", msg.GetCorrelationID(),
		"notifications", len(notifications),
	)
	return nil
}

func notificationsFor(event events.Event) ([]Notification, error) {
	if event.Type == events.TypeBookingsCleared {
		return []Notification{{
			Audience: AudienceAdmin,
			Text:     fmt.Sprintf("All bookings cleared (%d removed)", event.Removed),
		}}, nil
	}

	b := event.Booking
	if b == nil {
		return nil, fmt.Errorf("%s event without booking", event.Type)
	}
	base := Notification{BookingID: b.ID, TurfID: b.TurfID}
	slot := fmt.Sprintf("%s %02d:00 for %dh", b.Date, b.StartTime, b.DurationHours)

	guest := base
	guest.Audience = AudienceGuest
	guest.Recipient = b.GuestContact

	switch event.Type {
	case events.TypeBookingCreated:
		guest.Text = "Booking successful! Manager will review it soon. " + slot
		manager := base
		manager.Audience = AudienceManager
		manager.Text = fmt.Sprintf("New booking request from %s: %s", b.GuestName, slot)
		return []Notification{guest, manager}, nil
	case events.TypeBookingConfirmed:
		guest.Text = "Booking confirmed: " + slot
		return []Notification{guest}, nil
	case events.TypeBookingCancelled:
		guest.Text = "Booking request declined: " + slot
		return []Notification{guest}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", event.Type)
	}
}
