package backend

import (
	"context"
	"slices"
	"sync"

	"logistik-dashboard/internal/domain"
)

// MockBackend is an in-memory backend used by tests and BACKEND_MODE=mock.
// It records every call so tests can assert on request counts and payloads.
type MockBackend struct {
	mu sync.Mutex

	VehicleTypes []domain.VehicleType
	Distances    []domain.RouteDistance
	// Keyed by vehicle type + "|" + date. Missing keys mean every slot is free.
	Availability map[string][]string

	VehicleTypesErr error
	DistancesErr    error
	CreateErr       error
	AvailabilityErr error

	vehicleTypeCalls  int
	distanceCalls     int
	availabilityCalls int
	created           []domain.TransportOrderPayload
}

func NewMockBackend(vehicleTypes []domain.VehicleType, distances []domain.RouteDistance) *MockBackend {
	return &MockBackend{
		VehicleTypes: vehicleTypes,
		Distances:    distances,
		Availability: map[string][]string{},
	}
}

// NewDemoBackend returns a mock seeded with a few vehicle types and routes.
func NewDemoBackend() *MockBackend {
	available := func(n int) *int { return &n }
	return NewMockBackend(
		[]domain.VehicleType{
			{ID: 1, Name: "Traileryard", Available: available(8)},
			{ID: 2, Name: "Jumbo", Available: available(12)},
			{ID: 3, Name: "Bonsai", Available: available(5)},
			{ID: 4, Name: "Touren LKW PCC", Available: available(6)},
		},
		[]domain.RouteDistance{
			{From: "Bau 01-01", To: "Bau 02-02", Minutes: domain.TravelMinutes(15)},
			{From: "Bau 01-01", To: "Bau 3", Minutes: domain.TravelMinutes(8)},
			{From: "Bau 3", To: "Bau 20", Minutes: domain.TravelMinutes(12)},
			{From: "Bau 20", To: "Bau 93", Minutes: domain.TravelMinutes(22.5)},
		},
	)
}

func (m *MockBackend) ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.vehicleTypeCalls++
	if m.VehicleTypesErr != nil {
		return nil, m.VehicleTypesErr
	}
	return slices.Clone(m.VehicleTypes), nil
}

func (m *MockBackend) ListRouteDistances(ctx context.Context) ([]domain.RouteDistance, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.distanceCalls++
	if m.DistancesErr != nil {
		return nil, m.DistancesErr
	}
	return slices.Clone(m.Distances), nil
}

func (m *MockBackend) CreateTransportOrder(ctx context.Context, payload domain.TransportOrderPayload) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created = append(m.created, payload)
	return m.CreateErr
}

func (m *MockBackend) AvailableTimeSlots(ctx context.Context, vehicleType, date string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.availabilityCalls++
	if m.AvailabilityErr != nil {
		return nil, m.AvailabilityErr
	}
	if free, ok := m.Availability[vehicleType+"|"+date]; ok {
		return slices.Clone(free), nil
	}
	return domain.TimeSlots(), nil
}

func (m *MockBackend) VehicleTypeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vehicleTypeCalls
}

func (m *MockBackend) DistanceCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.distanceCalls
}

func (m *MockBackend) AvailabilityCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.availabilityCalls
}

// Created returns every payload passed to CreateTransportOrder, including failed ones.
func (m *MockBackend) Created() []domain.TransportOrderPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.created)
}
