// Package selection tracks the seats a booker has picked, bounded by the
// number of passengers on the trip.
package selection

import (
	"errors"
	"fmt"
)

// ErrSelectionLimitReached is returned when a new seat is toggled on while
// every passenger already has one. It is a user notice, not a failure.
var ErrSelectionLimitReached = errors.New("selection limit reached")

// Controller holds the ordered selection. Callers must not toggle seats whose
// display status is occupied or aisle; the controller does not re-check.
type Controller struct {
	limit    int
	selected []string
}

func NewController(passengerTotal int) *Controller {
	if passengerTotal < 0 {
		passengerTotal = 0
	}
	return &Controller{limit: passengerTotal, selected: make([]string, 0, passengerTotal)}
}

// Restore rebuilds a controller from a previously returned selection.
// Duplicate ids collapse to their first occurrence.
func Restore(passengerTotal int, selected []string) (*Controller, error) {
	c := NewController(passengerTotal)
	for _, id := range selected {
		if c.Contains(id) {
			continue
		}
		if len(c.selected) >= c.limit {
			return nil, fmt.Errorf("restore %d seats for %d passengers: %w", len(selected), c.limit, ErrSelectionLimitReached)
		}
		c.selected = append(c.selected, id)
	}
	return c, nil
}

// Toggle removes seatID if selected, otherwise appends it when below the
// limit. It reports whether the seat ended up selected.
func (c *Controller) Toggle(seatID string) (bool, error) {
	for i, id := range c.selected {
		if id == seatID {
			c.selected = append(c.selected[:i], c.selected[i+1:]...)
			return false, nil
		}
	}
	if len(c.selected) >= c.limit {
		return false, ErrSelectionLimitReached
	}
	c.selected = append(c.selected, seatID)
	return true, nil
}

func (c *Controller) Contains(seatID string) bool {
	for _, id := range c.selected {
		if id == seatID {
			return true
		}
	}
	return false
}

// Selected returns the seats in the order they were picked.
func (c *Controller) Selected() []string {
	out := make([]string, len(c.selected))
	copy(out, c.selected)
	return out
}

func (c *Controller) Count() int { return len(c.selected) }

func (c *Controller) Limit() int { return c.limit }

// CanConfirm is true only when every passenger has exactly one seat.
func (c *Controller) CanConfirm() bool {
	return len(c.selected) == c.limit
}
