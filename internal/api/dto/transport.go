package dto

// TravelTimeResponse carries minutes as display text; empty when unknown.
type TravelTimeResponse struct {
	Minutes string `json:"weg_min"`
}

type TimeSlotResponse struct {
	Time   string `json:"time"`
	Booked bool   `json:"booked"`
}

type ListTimeSlotsResponse struct {
	Slots []TimeSlotResponse `json:"slots"`
}
