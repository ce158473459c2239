package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Domenick1991/flightbooking/internal/domain"
	"github.com/Domenick1991/flightbooking/internal/kafka"
	"github.com/Domenick1991/flightbooking/internal/repository"
	"github.com/Domenick1991/flightbooking/internal/seatmap"
	"github.com/Domenick1991/flightbooking/internal/selection"
	"github.com/Domenick1991/flightbooking/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Append(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

// AppendIf runs guard against the ledger contents given to Return, then
// returns the finished booking.
func (m *MockBookingRepository) AppendIf(ctx context.Context, booking domain.Booking, guard func([]domain.Booking, *domain.Booking) error) (domain.Booking, error) {
	args := m.Called(ctx, booking, guard)
	if err := args.Error(1); err != nil {
		return domain.Booking{}, err
	}
	existing, _ := args.Get(0).([]domain.Booking)
	if err := guard(existing, &booking); err != nil {
		return domain.Booking{}, err
	}
	return booking, nil
}

func (m *MockBookingRepository) ListAll(ctx context.Context) []domain.Booking {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking)
}

func (m *MockBookingRepository) ListByFlight(ctx context.Context, flightID string) []domain.Booking {
	args := m.Called(ctx, flightID)
	return args.Get(0).([]domain.Booking)
}

type MockProducer struct {
	mock.Mock
}

func (m *MockProducer) Publish(ctx context.Context, topic, key string, value interface{}) error {
	args := m.Called(ctx, topic, key, value)
	return args.Error(0)
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testFlights() *repository.StaticFlightRepository {
	return repository.NewFlightRepositoryFrom(
		[]domain.Airport{{ID: "BKK"}, {ID: "CNX"}},
		[]domain.Flight{
			{ID: "f1", Airline: "Thai Smile", From: "BKK", To: "CNX", Price: 1950},
			{ID: "f2", Airline: "AirAsia", From: "BKK", To: "CNX", Price: 1790},
		},
	)
}

func criteria(adults, children int) domain.SearchCriteria {
	return domain.SearchCriteria{
		From:          domain.Airport{ID: "BKK"},
		To:            domain.Airport{ID: "CNX"},
		DepartureDate: "2025-07-01T08:00:00.000Z",
		Passengers:    domain.Passengers{Adults: adults, Children: children},
		BookerName:    "Somchai",
		TripType:      domain.TripTypeOneWay,
	}
}

func newLedgerService(t *testing.T, producer Producer, opts ...BookingServiceOption) (*BookingService, *repository.BookingLedger) {
	t.Helper()
	ledger := repository.NewBookingLedger(storage.NewMemoryStore(), "@myBookings")
	opts = append([]BookingServiceOption{WithClock(func() time.Time { return fixedNow })}, opts...)
	return NewBookingService(ledger, testFlights(), producer, "bookings", opts...), ledger
}

func seedBooking(t *testing.T, ledger *repository.BookingLedger, id, flightID string, seats ...string) {
	t.Helper()
	require.NoError(t, ledger.Append(context.Background(), domain.Booking{
		ID:              id,
		SelectedFlight:  domain.Flight{ID: flightID},
		SelectedSeatIDs: seats,
		Status:          domain.BookingStatusConfirmed,
	}))
}

func TestBookingService_SeatMap_OccupiedPremium(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	seedBooking(t, ledger, "BK1", "f1", "12A", "12B")
	seedBooking(t, ledger, "BK2", "f2", "12C")

	view, err := service.SeatMap(context.Background(), SeatMapInput{FlightID: "f1", PassengerTotal: 2})
	require.NoError(t, err)

	status := func(id string) domain.SeatStatus {
		s, ok := view.Status(id)
		require.True(t, ok)
		return s
	}
	assert.Equal(t, domain.SeatStatusOccupied, status("12A"))
	assert.Equal(t, domain.SeatStatusOccupied, status("12B"))
	assert.Equal(t, domain.SeatStatusPremium, status("12C"))
	assert.Equal(t, 0, view.SelectedCount)
	assert.Equal(t, 2, view.PassengerTotal)
	assert.False(t, view.CanConfirm)
}

func TestBookingService_SeatMap_WithSelection(t *testing.T) {
	service, _ := newLedgerService(t, nil)

	view, err := service.SeatMap(context.Background(), SeatMapInput{FlightID: "f1", PassengerTotal: 1, Selected: []string{"11D"}})
	require.NoError(t, err)

	s, _ := view.Status("11D")
	assert.Equal(t, domain.SeatStatusSelected, s)
	assert.True(t, view.CanConfirm)
	assert.Equal(t, []string{"11D"}, view.SelectedSeatIDs)
}

func TestBookingService_SeatMap_Errors(t *testing.T) {
	service, _ := newLedgerService(t, nil)
	ctx := context.Background()

	_, err := service.SeatMap(ctx, SeatMapInput{FlightID: "nope", PassengerTotal: 1})
	assert.ErrorIs(t, err, repository.ErrFlightNotFound)

	_, err = service.SeatMap(ctx, SeatMapInput{FlightID: "f1", PassengerTotal: 1, Selected: []string{"99Z"}})
	assert.ErrorIs(t, err, ErrUnknownSeat)

	_, err = service.SeatMap(ctx, SeatMapInput{FlightID: "f1", PassengerTotal: 1, Selected: []string{"1A", "1B"}})
	assert.ErrorIs(t, err, selection.ErrSelectionLimitReached)
}

func TestBookingService_ToggleSeat_LimitScenario(t *testing.T) {
	service, _ := newLedgerService(t, nil)
	ctx := context.Background()

	var selected []string
	for _, id := range []string{"1A", "1B"} {
		res, err := service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 2, Selected: selected, SeatID: id})
		require.NoError(t, err)
		assert.True(t, res.Selected)
		selected = res.SelectedSeatIDs
	}

	res, err := service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 2, Selected: selected, SeatID: "1C"})
	require.NoError(t, err)
	assert.True(t, res.LimitReached)
	assert.False(t, res.Selected)
	assert.Equal(t, []string{"1A", "1B"}, res.SelectedSeatIDs)
	assert.True(t, res.CanConfirm)

	res, err = service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 2, Selected: selected, SeatID: "1A"})
	require.NoError(t, err)
	assert.False(t, res.Selected)
	assert.Equal(t, []string{"1B"}, res.SelectedSeatIDs)
	assert.False(t, res.CanConfirm)
}

func TestBookingService_ToggleSeat_NotSelectable(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	seedBooking(t, ledger, "BK1", "f1", "4A")
	ctx := context.Background()

	_, err := service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 1, SeatID: "4A"})
	assert.ErrorIs(t, err, ErrSeatNotSelectable)

	_, err = service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 1, SeatID: "aisle4"})
	assert.ErrorIs(t, err, ErrSeatNotSelectable)

	_, err = service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f1", PassengerTotal: 1, SeatID: "40A"})
	assert.ErrorIs(t, err, ErrUnknownSeat)

	// the same seat on another flight is free
	res, err := service.ToggleSeat(ctx, ToggleSeatInput{FlightID: "f2", PassengerTotal: 1, SeatID: "4A"})
	require.NoError(t, err)
	assert.True(t, res.Selected)
}

func TestBookingService_ConfirmBooking_Success(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, testFlights(), mockProducer, "bookings",
		WithNotificationsTopic("notifications"),
		WithClock(func() time.Time { return fixedNow }),
	)
	ctx := context.Background()

	mockRepo.On("AppendIf", ctx, mock.AnythingOfType("domain.Booking"), mock.Anything).Return([]domain.Booking{}, nil).Once()
	mockProducer.On("Publish", ctx, "bookings", "BK1748779200000", mock.AnythingOfType("kafka.Event")).Return(nil).Once()
	mockProducer.On("Publish", ctx, "notifications", "BK1748779200000", mock.AnythingOfType("kafka.Event")).Return(nil).Once()

	booking, err := service.ConfirmBooking(ctx, ConfirmBookingInput{
		Criteria: criteria(1, 1),
		FlightID: "f1",
		SeatIDs:  []string{"3B", "3A"},
	})

	require.NoError(t, err)
	assert.Equal(t, "BK1748779200000", booking.ID)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, 2, booking.BookingDetails.Passengers.Total)
	assert.Equal(t, []string{"3B", "3A"}, booking.SelectedSeatIDs)
	assert.Equal(t, "Thai Smile", booking.SelectedFlight.Airline)

	mockRepo.AssertExpectations(t)
	mockProducer.AssertExpectations(t)

	event := mockProducer.Calls[0].Arguments.Get(3).(kafka.Event)
	assert.Equal(t, kafka.EventBookingConfirmed, event.Type)
	assert.Equal(t, "Somchai", event.BookerName)
	assert.Equal(t, []string{"3B", "3A"}, event.SeatIDs)
}

func TestBookingService_ConfirmBooking_ValidationErrors(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, testFlights(), nil, "")
	ctx := context.Background()

	noBooker := criteria(1, 0)
	noBooker.BookerName = ""
	noDate := criteria(1, 0)
	noDate.DepartureDate = ""
	noFrom := criteria(1, 0)
	noFrom.From = domain.Airport{}
	badTrip := criteria(1, 0)
	badTrip.TripType = "space"

	testCases := []struct {
		name        string
		input       ConfirmBookingInput
		expectedErr error
	}{
		{name: "missing booker", input: ConfirmBookingInput{Criteria: noBooker, FlightID: "f1", SeatIDs: []string{"1A"}}, expectedErr: ErrIncompleteSearch},
		{name: "missing date", input: ConfirmBookingInput{Criteria: noDate, FlightID: "f1", SeatIDs: []string{"1A"}}, expectedErr: ErrIncompleteSearch},
		{name: "missing origin", input: ConfirmBookingInput{Criteria: noFrom, FlightID: "f1", SeatIDs: []string{"1A"}}, expectedErr: ErrIncompleteSearch},
		{name: "no passengers", input: ConfirmBookingInput{Criteria: criteria(0, 0), FlightID: "f1"}, expectedErr: ErrIncompleteSearch},
		{name: "unknown trip type", input: ConfirmBookingInput{Criteria: badTrip, FlightID: "f1", SeatIDs: []string{"1A"}}, expectedErr: ErrIncompleteSearch},
		{name: "unknown flight", input: ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f9", SeatIDs: []string{"1A"}}, expectedErr: repository.ErrFlightNotFound},
		{name: "too few seats", input: ConfirmBookingInput{Criteria: criteria(2, 0), FlightID: "f1", SeatIDs: []string{"1A"}}, expectedErr: ErrSeatCountMismatch},
		{name: "too many seats", input: ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"1A", "1B"}}, expectedErr: ErrSeatCountMismatch},
		{name: "aisle seat", input: ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"aisle1"}}, expectedErr: ErrSeatNotSelectable},
		{name: "duplicate seat", input: ConfirmBookingInput{Criteria: criteria(2, 0), FlightID: "f1", SeatIDs: []string{"1A", "1A"}}, expectedErr: ErrSeatNotSelectable},
		{name: "unknown seat", input: ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"0A"}}, expectedErr: ErrUnknownSeat},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			booking, err := service.ConfirmBooking(ctx, tc.input)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Nil(t, booking)
		})
	}

	mockRepo.AssertNotCalled(t, "AppendIf", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_ConfirmBooking_RejectsTakenSeat(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	seedBooking(t, ledger, "BK1", "f1", "12A", "12B")
	ctx := context.Background()

	_, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(2, 0), FlightID: "f1", SeatIDs: []string{"12C", "12B"}})
	assert.ErrorIs(t, err, ErrSeatUnavailable)
	assert.Contains(t, err.Error(), "12B")
	assert.Len(t, ledger.ListAll(ctx), 1)

	// same seats on a different flight are fine
	_, err = service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(2, 0), FlightID: "f2", SeatIDs: []string{"12A", "12B"}})
	require.NoError(t, err)
	assert.Len(t, ledger.ListAll(ctx), 2)
}

func TestBookingService_ConfirmBooking_SameMillisecondGetsDistinctIDs(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	ctx := context.Background()

	first, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"1A"}})
	require.NoError(t, err)
	second, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"1B"}})
	require.NoError(t, err)

	assert.Equal(t, "BK1748779200000", first.ID)
	assert.Equal(t, "BK1748779200001", second.ID)

	all := ledger.ListAll(ctx)
	require.Len(t, all, 2)
	assert.NotEqual(t, all[0].ID, all[1].ID)
}

func TestBookingService_ConfirmBooking_ConcurrentIDsUnique(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	ctx := context.Background()

	seats := []string{"2A", "2B", "2C", "2D", "2E", "2F", "3A", "3B"}
	var wg sync.WaitGroup
	for _, seat := range seats {
		wg.Add(1)
		go func(seat string) {
			defer wg.Done()
			_, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{seat}})
			assert.NoError(t, err)
		}(seat)
	}
	wg.Wait()

	ids := make(map[string]struct{})
	for _, b := range ledger.ListAll(ctx) {
		ids[b.ID] = struct{}{}
	}
	assert.Len(t, ids, len(seats))
}

func TestBookingService_ConfirmBooking_RoundTrip(t *testing.T) {
	service, ledger := newLedgerService(t, nil)
	ctx := context.Background()

	booking, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(2, 0), FlightID: "f1", SeatIDs: []string{"7E", "7F"}})
	require.NoError(t, err)

	all := ledger.ListAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, *booking, all[0])

	view, err := service.SeatMap(ctx, SeatMapInput{FlightID: "f1", PassengerTotal: 1})
	require.NoError(t, err)
	s, _ := view.Status("7E")
	assert.Equal(t, domain.SeatStatusOccupied, s)
}

func TestBookingService_ConfirmBooking_WriteFailure(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	mockProducer := &MockProducer{}
	service := NewBookingService(mockRepo, testFlights(), mockProducer, "bookings")
	ctx := context.Background()

	mockRepo.On("AppendIf", ctx, mock.Anything, mock.Anything).Return(nil, errors.New("storage unavailable")).Once()

	booking, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"1A"}})
	assert.Error(t, err)
	assert.Nil(t, booking)
	mockProducer.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_ConfirmBooking_PublishFailureKeepsBooking(t *testing.T) {
	mockProducer := &MockProducer{}
	service, ledger := newLedgerService(t, mockProducer)
	ctx := context.Background()

	mockProducer.On("Publish", ctx, "bookings", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	booking, err := service.ConfirmBooking(ctx, ConfirmBookingInput{Criteria: criteria(1, 0), FlightID: "f1", SeatIDs: []string{"1A"}})
	require.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Len(t, ledger.ListAll(ctx), 1)
	mockProducer.AssertExpectations(t)
}

func TestBookingService_ListBookings(t *testing.T) {
	mockRepo := &MockBookingRepository{}
	service := NewBookingService(mockRepo, testFlights(), nil, "", WithClock(func() time.Time { return fixedNow }))
	ctx := context.Background()

	withDate := func(id, date string, status domain.BookingStatus) domain.Booking {
		return domain.Booking{ID: id, BookingDetails: domain.SearchCriteria{DepartureDate: date}, Status: status}
	}
	mockRepo.On("ListAll", ctx).Return([]domain.Booking{
		withDate("past", "2025-01-01T00:00:00.000Z", domain.BookingStatusConfirmed),
		withDate("broken", "not a date", domain.BookingStatusConfirmed),
		withDate("future", "2025-12-01T00:00:00.000Z", domain.BookingStatusConfirmed),
		withDate("cancelled", "2025-03-01T00:00:00.000Z", domain.BookingStatusCancelled),
		withDate("missing", "", domain.BookingStatusConfirmed),
	}).Once()

	views, err := service.ListBookings(ctx)
	require.NoError(t, err)

	ids := make([]string, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"future", "cancelled", "past", "broken", "missing"}, ids)

	assert.Equal(t, domain.BookingStatusConfirmed, views[0].DisplayStatus)
	assert.Equal(t, domain.BookingStatusCancelled, views[1].DisplayStatus)
	assert.Equal(t, domain.BookingStatusCompleted, views[2].DisplayStatus)
	assert.Equal(t, domain.BookingStatusConfirmed, views[3].DisplayStatus)
	// stored status is not rewritten
	assert.Equal(t, domain.BookingStatusConfirmed, views[2].Status)

	mockRepo.AssertExpectations(t)
}

func TestBookingService_WithLayout(t *testing.T) {
	service, _ := newLedgerService(t, nil, WithLayout(seatmap.NewLayout(2, 1, 1)))

	view, err := service.SeatMap(context.Background(), SeatMapInput{FlightID: "f1", PassengerTotal: 1})
	require.NoError(t, err)
	assert.Len(t, view.Rows, 2)

	_, err = service.ToggleSeat(context.Background(), ToggleSeatInput{FlightID: "f1", PassengerTotal: 1, SeatID: "3A"})
	assert.ErrorIs(t, err, ErrUnknownSeat)
}
