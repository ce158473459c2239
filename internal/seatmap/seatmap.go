package seatmap

import "github.com/Domenick1991/flightbooking/internal/domain"

type Cell struct {
	ID          string            `json:"id"`
	Row         int               `json:"row"`
	Column      string            `json:"column,omitempty"`
	Status      domain.SeatStatus `json:"status"`
	Interactive bool              `json:"interactive"`
}

type MapRow struct {
	Number int    `json:"row"`
	Cells  []Cell `json:"cells"`
}

type Map struct {
	FlightID string   `json:"flightId"`
	Rows     []MapRow `json:"rows"`
}

// Build renders every slot of the layout for one flight.
func Build(layout *Layout, flightID string, occupied SeatSet, selected []string) Map {
	chosen := NewSeatSet(selected...)

	m := Map{FlightID: flightID, Rows: make([]MapRow, 0, len(layout.Rows()))}
	for _, row := range layout.Rows() {
		mr := MapRow{Number: row.Number, Cells: make([]Cell, 0, len(row.Slots))}
		for _, slot := range row.Slots {
			status := displayStatus(slotState{
				slot:     slot,
				selected: chosen.Has(slot.ID),
				occupied: occupied.Has(slot.ID),
			})
			mr.Cells = append(mr.Cells, Cell{
				ID:          slot.ID,
				Row:         slot.Row,
				Column:      slot.Column,
				Status:      status,
				Interactive: status.Interactive(),
			})
		}
		m.Rows = append(m.Rows, mr)
	}
	return m
}

// Status returns the display status of seat id, or false if the id is not on
// the map.
func (m Map) Status(id string) (domain.SeatStatus, bool) {
	for _, row := range m.Rows {
		for _, c := range row.Cells {
			if c.ID == id {
				return c.Status, true
			}
		}
	}
	return "", false
}
