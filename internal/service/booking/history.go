package booking

import (
	"sort"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

// SortByDepartureDesc orders bookings latest departure first. Bookings with a
// missing or unparseable departure date sort as the zero time, so they end up
// last. Ties keep ledger order.
func SortByDepartureDesc(bookings []domain.Booking) {
	keys := make(map[string]time.Time, len(bookings))
	key := func(b domain.Booking) time.Time {
		if t, ok := keys[b.BookingDetails.DepartureDate]; ok {
			return t
		}
		t, _ := domain.ParseDeparture(b.BookingDetails.DepartureDate)
		keys[b.BookingDetails.DepartureDate] = t
		return t
	}
	sort.SliceStable(bookings, func(i, j int) bool {
		return key(bookings[i]).After(key(bookings[j]))
	})
}
