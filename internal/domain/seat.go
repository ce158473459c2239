package domain

type SeatStatus string

const (
	SeatStatusAvailable SeatStatus = "available"
	SeatStatusPremium   SeatStatus = "premium"
	SeatStatusAisle     SeatStatus = "aisle"
	SeatStatusOccupied  SeatStatus = "occupied"
	SeatStatusSelected  SeatStatus = "selected"
)

// Interactive reports whether a seat in this status may be toggled.
func (s SeatStatus) Interactive() bool {
	return s != SeatStatusAisle && s != SeatStatusOccupied
}
