package repository

import (
	"context"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/storage"
)

type BookingRepository interface {
	Append(ctx context.Context, booking domain.Booking) error
	AppendIf(ctx context.Context, booking domain.Booking, guard func(existing []domain.Booking, booking *domain.Booking) error) (domain.Booking, error)
	ListAll(ctx context.Context) []domain.Booking
	ListByFlight(ctx context.Context, flightID string) []domain.Booking
}

type BookingLedger struct {
	ledger *ledger[domain.Booking]
}

func NewBookingLedger(store storage.Store, key string) *BookingLedger {
	return &BookingLedger{ledger: newLedger[domain.Booking](store, key)}
}

func (l *BookingLedger) Append(ctx context.Context, booking domain.Booking) error {
	_, err := l.ledger.appendIf(ctx, booking, nil)
	return err
}

// AppendIf appends only when guard, run against the current ledger under the
// write lock, returns nil. The guard may fill in fields of the booking, such
// as its id; the stored booking is returned.
func (l *BookingLedger) AppendIf(ctx context.Context, booking domain.Booking, guard func(existing []domain.Booking, booking *domain.Booking) error) (domain.Booking, error) {
	return l.ledger.appendIf(ctx, booking, guard)
}

// ListAll returns bookings in insertion order.
func (l *BookingLedger) ListAll(ctx context.Context) []domain.Booking {
	return l.ledger.list(ctx)
}

func (l *BookingLedger) ListByFlight(ctx context.Context, flightID string) []domain.Booking {
	return FilterByFlight(l.ListAll(ctx), flightID)
}

func FilterByFlight(bookings []domain.Booking, flightID string) []domain.Booking {
	out := make([]domain.Booking, 0)
	for _, b := range bookings {
		if b.SelectedFlight.ID == flightID {
			out = append(out, b)
		}
	}
	return out
}

var _ BookingRepository = (*BookingLedger)(nil)
