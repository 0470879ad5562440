package ports

import (
	"context"

	"logistik-dashboard/internal/domain"
)

// Source of the bookable vehicle types.
type VehicleTypeLister interface {
	ListVehicleTypes(ctx context.Context) ([]domain.VehicleType, error)
}

// Source of the travel time matrix between facilities.
type RouteDistanceLister interface {
	// Return every known entry; callers search it themselves.
	ListRouteDistances(ctx context.Context) ([]domain.RouteDistance, error)
}

// Sink for finished transport orders.
type TransportOrderCreator interface {
	CreateTransportOrder(ctx context.Context, payload domain.TransportOrderPayload) error
}

// Optional: start times still free for a vehicle type on a date.
type TimeSlotAvailability interface {
	AvailableTimeSlots(ctx context.Context, vehicleType, date string) ([]string, error)
}

// Everything the transport order form needs from the backend.
type LogisticsBackend interface {
	VehicleTypeLister
	RouteDistanceLister
	TransportOrderCreator
	TimeSlotAvailability
}
