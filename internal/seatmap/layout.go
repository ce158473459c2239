// Package seatmap derives per-seat display status for a flight from the
// cabin template, the seats already booked and the booker's selection.
package seatmap

import (
	"fmt"

	"github.com/Domenick1991/flightbooking/internal/domain"
)

const (
	DefaultRows            = 21
	DefaultPremiumRowFirst = 10
	DefaultPremiumRowLast  = 14
)

// Columns left and right of the aisle.
var (
	leftColumns  = []string{"A", "B", "C"}
	rightColumns = []string{"D", "E", "F"}
)

// Slot is one position in a row: a seat or the aisle placeholder.
type Slot struct {
	ID     string            `json:"id"`
	Row    int               `json:"row"`
	Column string            `json:"column,omitempty"`
	Base   domain.SeatStatus `json:"base"`
}

type Row struct {
	Number int    `json:"row"`
	Slots  []Slot `json:"slots"`
}

type Layout struct {
	rows  []Row
	index map[string]Slot
}

func DefaultLayout() *Layout {
	return NewLayout(DefaultRows, DefaultPremiumRowFirst, DefaultPremiumRowLast)
}

// NewLayout builds rows 1..rows, each A B C aisle D E F. Rows inside
// [premiumFirst, premiumLast] are premium.
func NewLayout(rows, premiumFirst, premiumLast int) *Layout {
	l := &Layout{
		rows:  make([]Row, 0, rows),
		index: make(map[string]Slot, rows*7),
	}
	for n := 1; n <= rows; n++ {
		base := domain.SeatStatusAvailable
		if n >= premiumFirst && n <= premiumLast {
			base = domain.SeatStatusPremium
		}

		row := Row{Number: n, Slots: make([]Slot, 0, len(leftColumns)+1+len(rightColumns))}
		for _, col := range leftColumns {
			row.Slots = append(row.Slots, Slot{ID: SeatID(n, col), Row: n, Column: col, Base: base})
		}
		row.Slots = append(row.Slots, Slot{ID: fmt.Sprintf("aisle%d", n), Row: n, Base: domain.SeatStatusAisle})
		for _, col := range rightColumns {
			row.Slots = append(row.Slots, Slot{ID: SeatID(n, col), Row: n, Column: col, Base: base})
		}

		for _, s := range row.Slots {
			l.index[s.ID] = s
		}
		l.rows = append(l.rows, row)
	}
	return l
}

func SeatID(row int, column string) string {
	return fmt.Sprintf("%d%s", row, column)
}

func (l *Layout) Rows() []Row {
	return l.rows
}

func (l *Layout) Lookup(id string) (Slot, bool) {
	s, ok := l.index[id]
	return s, ok
}
