package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCompleted BookingStatus = "Completed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

type TripType string

const (
	TripTypeOneWay    TripType = "one_way"
	TripTypeRoundTrip TripType = "round_trip"
	TripTypeMultiCity TripType = "multi_city"
)

type Passengers struct {
	Adults   int `json:"adults" validate:"gte=0"`
	Children int `json:"children" validate:"gte=0"`
	Total    int `json:"total" validate:"gt=0"`
}

func NewPassengers(adults, children int) Passengers {
	return Passengers{Adults: adults, Children: children, Total: adults + children}
}

// SearchCriteria is what the booker filled in before picking a flight.
// DepartureDate is kept as the raw ISO string it was submitted with.
type SearchCriteria struct {
	From          Airport    `json:"from"`
	To            Airport    `json:"to"`
	DepartureDate string     `json:"departureDate" validate:"required"`
	Passengers    Passengers `json:"passengers"`
	BookerName    string     `json:"bookerName" validate:"required"`
	TripType      TripType   `json:"tripType" validate:"omitempty,oneof=one_way round_trip multi_city"`
}

type Booking struct {
	ID              string         `json:"id"`
	BookingDetails  SearchCriteria `json:"bookingDetails"`
	SelectedFlight  Flight         `json:"selectedFlight"`
	SelectedSeatIDs []string       `json:"selectedSeatIds"`
	Status          BookingStatus  `json:"status"`
}

const bookingIDPrefix = "BK"

func NewBookingID(now time.Time) string {
	return fmt.Sprintf("%s%d", bookingIDPrefix, now.UnixMilli())
}

// NextBookingID returns a "BK<millis>" id that is unique among existing. When
// an existing id is at or past now, the new id moves one millisecond past the
// latest of them.
func NextBookingID(now time.Time, existing []Booking) string {
	millis := now.UnixMilli()
	for _, b := range existing {
		raw, ok := strings.CutPrefix(b.ID, bookingIDPrefix)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			continue
		}
		if n >= millis {
			millis = n + 1
		}
	}
	return fmt.Sprintf("%s%d", bookingIDPrefix, millis)
}

var departureLayouts = []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"}

// ParseDeparture returns the departure instant, or false when the stored
// value is missing or not a date.
func ParseDeparture(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range departureLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// EffectiveStatus is the status shown to the user. A confirmed booking whose
// departure already passed reads as completed; the stored value is untouched.
func EffectiveStatus(stored BookingStatus, departure time.Time, hasDeparture bool, now time.Time) BookingStatus {
	if stored == "" {
		stored = BookingStatusConfirmed
	}
	if stored == BookingStatusConfirmed && hasDeparture && departure.Before(now) {
		return BookingStatusCompleted
	}
	return stored
}
