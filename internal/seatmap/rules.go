package seatmap

import "github.com/Domenick1991/flightbooking/internal/domain"

type slotState struct {
	slot     Slot
	selected bool
	occupied bool
}

type statusRule struct {
	name    string
	matches func(slotState) bool
	status  domain.SeatStatus
}

// displayRules are evaluated top to bottom; the first match wins. A slot no
// rule matches shows its base classification.
var displayRules = []statusRule{
	{
		name:    "aisle",
		matches: func(s slotState) bool { return s.slot.Base == domain.SeatStatusAisle },
		status:  domain.SeatStatusAisle,
	},
	{
		name:    "selected",
		matches: func(s slotState) bool { return s.selected },
		status:  domain.SeatStatusSelected,
	},
	{
		name:    "occupied",
		matches: func(s slotState) bool { return s.occupied },
		status:  domain.SeatStatusOccupied,
	},
}

func displayStatus(st slotState) domain.SeatStatus {
	for _, r := range displayRules {
		if r.matches(st) {
			return r.status
		}
	}
	return st.slot.Base
}
