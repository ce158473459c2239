package seatmap

import "github.com/Domenick1991/flightbooking/internal/domain"

// SeatSet is a membership set of seat ids.
type SeatSet map[string]struct{}

func NewSeatSet(ids ...string) SeatSet {
	s := make(SeatSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

func (s SeatSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// ResolveOccupancy unions the seats of every booking on flightID. A seat held
// by two bookings is reported once; the overlap itself is not detected here.
func ResolveOccupancy(bookings []domain.Booking, flightID string) SeatSet {
	occupied := make(SeatSet)
	for _, b := range bookings {
		if b.SelectedFlight.ID != flightID {
			continue
		}
		for _, id := range b.SelectedSeatIDs {
			occupied[id] = struct{}{}
		}
	}
	return occupied
}

// Conflicts returns the requested seats that are already occupied, in
// request order.
func (s SeatSet) Conflicts(requested []string) []string {
	var taken []string
	for _, id := range requested {
		if s.Has(id) {
			taken = append(taken, id)
		}
	}
	return taken
}
