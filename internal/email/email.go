package email

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Domenick1991/flightbooking/internal/kafka"
)

// Sender turns notification events into mail. Delivery is a log line; there
// is no SMTP transport.
type Sender struct {
	log *slog.Logger
}

func NewSender(log *slog.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.Event) error {
	subject, body, ok := Compose(event)
	if !ok {
		s.log.DebugContext(ctx, "no mail for event", "type", event.Type, "id", event.ID)
		return nil
	}
	s.log.InfoContext(ctx, "send email", "to", Recipient(event), "subject", subject, "body", body)
	return nil
}

// Recipient is the event's email address, or the booker's name for bookings,
// which are not tied to an account.
func Recipient(event kafka.Event) string {
	if event.Email != "" {
		return event.Email
	}
	return event.BookerName
}

// Compose renders the subject and body for an event, or false when the event
// type produces no mail.
func Compose(event kafka.Event) (subject, body string, ok bool) {
	switch event.Type {
	case kafka.EventBookingConfirmed:
		subject = fmt.Sprintf("Booking %s confirmed", event.BookingID)
		body = fmt.Sprintf("Dear %s, your seats %s on flight %s are confirmed.",
			event.BookerName, strings.Join(event.SeatIDs, ", "), strings.ToUpper(event.FlightID))
		return subject, body, true
	case kafka.EventUserRegistered:
		subject = "Welcome aboard"
		body = fmt.Sprintf("Hi %s, your account %s was created.", event.Name, event.Email)
		return subject, body, true
	default:
		return "", "", false
	}
}
