package kafka

import (
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingConfirmed = "booking_confirmed"
	EventUserRegistered   = "user_registered"
)

// Event is the JSON payload published for booking and account activity.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	BookingID  string    `json:"booking_id,omitempty"`
	FlightID   string    `json:"flight_id,omitempty"`
	SeatIDs    []string  `json:"seat_ids,omitempty"`
	BookerName string    `json:"booker_name,omitempty"`
	Email      string    `json:"email,omitempty"`
	Name       string    `json:"name,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewEvent(eventType string, now time.Time) Event {
	return Event{ID: uuid.NewString(), Type: eventType, OccurredAt: now}
}
