package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/flightbooking/internal/catalog"
	"github.com/Domenick1991/flightbooking/internal/domain"
)

var ErrFlightNotFound = errors.New("flight not found")

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, from, to string) ([]domain.Flight, error)
	Airports(ctx context.Context) ([]domain.Airport, error)
}

// StaticFlightRepository serves the read-only in-memory catalog.
type StaticFlightRepository struct {
	airports []domain.Airport
	flights  []domain.Flight
}

func NewFlightRepository() *StaticFlightRepository {
	return NewFlightRepositoryFrom(catalog.Airports(), catalog.Flights())
}

func NewFlightRepositoryFrom(airports []domain.Airport, flights []domain.Flight) *StaticFlightRepository {
	return &StaticFlightRepository{airports: airports, flights: flights}
}

func (r *StaticFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	out := make([]domain.Flight, len(r.flights))
	copy(out, r.flights)
	return out, nil
}

func (r *StaticFlightRepository) GetByID(_ context.Context, id string) (*domain.Flight, error) {
	for _, f := range r.flights {
		if f.ID == id {
			found := f
			return &found, nil
		}
	}
	return nil, ErrFlightNotFound
}

// Search returns flights whose origin and destination match exactly.
func (r *StaticFlightRepository) Search(_ context.Context, from, to string) ([]domain.Flight, error) {
	out := make([]domain.Flight, 0)
	for _, f := range r.flights {
		if f.From == from && f.To == to {
			out = append(out, f)
		}
	}
	return out, nil
}

func (r *StaticFlightRepository) Airports(_ context.Context) ([]domain.Airport, error) {
	out := make([]domain.Airport, len(r.airports))
	copy(out, r.airports)
	return out, nil
}

var _ FlightRepository = (*StaticFlightRepository)(nil)
