package booking

import (
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// Stats summarises the ledger by effective status.
type Stats struct {
	Total       int
	ByStatus    map[domain.BookingStatus]int
	SeatsBooked int
	Flights     int
}

func Summarize(bookings []domain.Booking, now time.Time) Stats {
	stats := Stats{Total: len(bookings), ByStatus: make(map[domain.BookingStatus]int)}
	flights := make(map[string]struct{})
	for _, b := range bookings {
		dep, ok := domain.ParseDeparture(b.BookingDetails.DepartureDate)
		stats.ByStatus[domain.EffectiveStatus(b.Status, dep, ok, now)]++
		stats.SeatsBooked += len(b.SelectedSeatIDs)
		flights[b.SelectedFlight.ID] = struct{}{}
	}
	stats.Flights = len(flights)
	return stats
}
