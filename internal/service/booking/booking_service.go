package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/logger"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/seatmap"
	"github.com/Domenick1991/flightbooking/internal/selection"
	"github.com/go-playground/validator/v10"
)

var (
	ErrIncompleteSearch  = errors.New("booking details are incomplete")
	ErrUnknownSeat       = errors.New("seat is not on the seat map")
	ErrSeatNotSelectable = errors.New("seat cannot be selected")
	ErrSeatCountMismatch = errors.New("number of seats must equal number of passengers")
	ErrSeatUnavailable   = errors.New("seat is already booked")
)

type BookingUseCase interface {
	SeatMap(ctx context.Context, input SeatMapInput) (*SeatMapView, error)
	ToggleSeat(ctx context.Context, input ToggleSeatInput) (*ToggleResult, error)
	ConfirmBooking(ctx context.Context, input ConfirmBookingInput) (*domain.Booking, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	layout             *seatmap.Layout
	producer           Producer
	bookingTopic       string
	notificationsTopic string
	validate           *validator.Validate
	now                func() time.Time
}

type SeatMapInput struct {
	FlightID       string
	PassengerTotal int
	Selected       []string
}

type SeatMapView struct {
	seatmap.Map
	SelectedSeatIDs []string `json:"selectedSeatIds"`
	SelectedCount   int      `json:"selectedCount"`
	PassengerTotal  int      `json:"passengerTotal"`
	CanConfirm      bool     `json:"canConfirm"`
}

type ToggleSeatInput struct {
	FlightID       string
	PassengerTotal int
	Selected       []string
	SeatID         string
}

// ToggleResult is the selection after a toggle. LimitReached means the seat
// was not added because every passenger already has a seat.
type ToggleResult struct {
	SeatID          string   `json:"seatId"`
	Selected        bool     `json:"selected"`
	LimitReached    bool     `json:"limitReached"`
	SelectedSeatIDs []string `json:"selectedSeatIds"`
	CanConfirm      bool     `json:"canConfirm"`
}

type ConfirmBookingInput struct {
	Criteria domain.SearchCriteria
	FlightID string
	SeatIDs  []string
}

// BookingView is a stored booking plus the status it should be shown with.
type BookingView struct {
	domain.Booking
	DisplayStatus domain.BookingStatus `json:"displayStatus"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func WithLayout(layout *seatmap.Layout) BookingServiceOption {
	return func(s *BookingService) {
		s.layout = layout
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

// NewBookingService wires the booking flow. producer may be nil, in which case
// no events are published.
func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	producer Producer,
	bookingTopic string,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		flights:      flights,
		layout:       seatmap.DefaultLayout(),
		producer:     producer,
		bookingTopic: bookingTopic,
		validate:     validator.New(),
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) SeatMap(ctx context.Context, input SeatMapInput) (*SeatMapView, error) {
	if _, err := s.flights.GetByID(ctx, input.FlightID); err != nil {
		return nil, err
	}
	if err := s.checkSeatsExist(input.Selected); err != nil {
		return nil, err
	}
	ctrl, err := selection.Restore(input.PassengerTotal, input.Selected)
	if err != nil {
		return nil, err
	}

	return s.view(ctx, input.FlightID, ctrl), nil
}

func (s *BookingService) ToggleSeat(ctx context.Context, input ToggleSeatInput) (*ToggleResult, error) {
	if _, err := s.flights.GetByID(ctx, input.FlightID); err != nil {
		return nil, err
	}
	if err := s.checkSeatsExist(append([]string{input.SeatID}, input.Selected...)); err != nil {
		return nil, err
	}
	ctrl, err := selection.Restore(input.PassengerTotal, input.Selected)
	if err != nil {
		return nil, err
	}

	current := s.view(ctx, input.FlightID, ctrl)
	status, _ := current.Status(input.SeatID)
	if !status.Interactive() {
		return nil, fmt.Errorf("%s is %s: %w", input.SeatID, status, ErrSeatNotSelectable)
	}

	result := &ToggleResult{SeatID: input.SeatID}
	added, err := ctrl.Toggle(input.SeatID)
	switch {
	case errors.Is(err, selection.ErrSelectionLimitReached):
		result.LimitReached = true
	case err != nil:
		return nil, err
	}
	result.Selected = added
	result.SelectedSeatIDs = ctrl.Selected()
	result.CanConfirm = ctrl.CanConfirm()
	return result, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, input ConfirmBookingInput) (*domain.Booking, error) {
	criteria := input.Criteria
	criteria.Passengers = domain.NewPassengers(criteria.Passengers.Adults, criteria.Passengers.Children)
	if criteria.TripType == "" {
		criteria.TripType = domain.TripTypeOneWay
	}
	if err := s.validate.Struct(criteria); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIncompleteSearch, err)
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if err := s.checkSelectable(input.SeatIDs); err != nil {
		return nil, err
	}
	if len(input.SeatIDs) != criteria.Passengers.Total {
		return nil, fmt.Errorf("%d seats for %d passengers: %w", len(input.SeatIDs), criteria.Passengers.Total, ErrSeatCountMismatch)
	}

	seats := make([]string, len(input.SeatIDs))
	copy(seats, input.SeatIDs)
	now := s.now()
	booking := domain.Booking{
		BookingDetails:  criteria,
		SelectedFlight:  *flight,
		SelectedSeatIDs: seats,
		Status:          domain.BookingStatusConfirmed,
	}

	// The id is assigned under the ledger lock so concurrent confirmations in
	// the same millisecond still get distinct ids.
	booking, err = s.bookings.AppendIf(ctx, booking, func(existing []domain.Booking, b *domain.Booking) error {
		taken := seatmap.ResolveOccupancy(existing, flight.ID).Conflicts(seats)
		if len(taken) > 0 {
			return fmt.Errorf("%s on flight %s: %w", strings.Join(taken, ", "), flight.ID, ErrSeatUnavailable)
		}
		b.ID = domain.NextBookingID(now, existing)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.InfoContext(ctx, "booking confirmed", "booking_id", booking.ID, "flight_id", flight.ID, "seats", seats)

	event := kafka.NewEvent(kafka.EventBookingConfirmed, now)
	event.BookingID = booking.ID
	event.FlightID = flight.ID
	event.SeatIDs = seats
	event.BookerName = criteria.BookerName
	event.Status = string(booking.Status)
	if err := s.publish(ctx, booking.ID, event); err != nil {
		logger.Log.WarnContext(ctx, "failed to publish booking event", "booking_id", booking.ID, "error", err)
	}
	return &booking, nil
}

// ListBookings returns every booking, latest departure first, each with its
// status as of now.
func (s *BookingService) ListBookings(ctx context.Context) ([]BookingView, error) {
	all := s.bookings.ListAll(ctx)
	SortByDepartureDesc(all)

	now := s.now()
	views := make([]BookingView, 0, len(all))
	for _, b := range all {
		dep, ok := domain.ParseDeparture(b.BookingDetails.DepartureDate)
		views = append(views, BookingView{
			Booking:       b,
			DisplayStatus: domain.EffectiveStatus(b.Status, dep, ok, now),
		})
	}
	return views, nil
}

func (s *BookingService) view(ctx context.Context, flightID string, ctrl *selection.Controller) *SeatMapView {
	occupied := seatmap.ResolveOccupancy(s.bookings.ListByFlight(ctx, flightID), flightID)
	selected := ctrl.Selected()
	return &SeatMapView{
		Map:             seatmap.Build(s.layout, flightID, occupied, selected),
		SelectedSeatIDs: selected,
		SelectedCount:   len(selected),
		PassengerTotal:  ctrl.Limit(),
		CanConfirm:      ctrl.CanConfirm(),
	}
}

func (s *BookingService) checkSeatsExist(ids []string) error {
	for _, id := range ids {
		if _, ok := s.layout.Lookup(id); !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownSeat)
		}
	}
	return nil
}

// checkSelectable rejects unknown ids, aisle slots and repeated seats.
func (s *BookingService) checkSelectable(ids []string) error {
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		slot, ok := s.layout.Lookup(id)
		if !ok {
			return fmt.Errorf("%q: %w", id, ErrUnknownSeat)
		}
		if slot.Base == domain.SeatStatusAisle {
			return fmt.Errorf("%s is an aisle: %w", id, ErrSeatNotSelectable)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s listed twice: %w", id, ErrSeatNotSelectable)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func (s *BookingService) publish(ctx context.Context, key string, event kafka.Event) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, key, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.producer.Publish(ctx, s.notificationsTopic, key, event)
	}
	return nil
}

var _ BookingUseCase = (*BookingService)(nil)
