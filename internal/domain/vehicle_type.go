package domain

// A kind of vehicle that can be booked for a transport, as listed by the backend.
// Available is nil when the backend does not report a fleet count.
type VehicleType struct {
	ID        int64
	Name      string
	Available *int
}
