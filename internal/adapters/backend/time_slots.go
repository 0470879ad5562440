package backend

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"logistik-dashboard/internal/platform/obs"
)

type availableTimesResponse struct {
	Times []string `json:"verfuegbare_zeiten"`
}

// AvailableTimeSlots fetches GET /verfuegbare-zeiten/{fahrzeugtyp}/{datum}.
func (c *Client) AvailableTimeSlots(ctx context.Context, vehicleType, date string) (_ []string, err error) {
	defer obs.Time(ctx, c.log, "backend.AvailableTimeSlots")(&err)
	defer func() { c.record("available_time_slots", err) }()

	if vehicleType == "" || date == "" {
		return nil, errors.New("available time slots: vehicle type and date must be non-empty")
	}

	path := "/verfuegbare-zeiten/" + url.PathEscape(vehicleType) + "/" + url.PathEscape(date)

	var decoded availableTimesResponse
	if err := c.getJSON(ctx, path, &decoded); err != nil {
		return nil, fmt.Errorf("available time slots %q %q: %w", vehicleType, date, err)
	}

	// An explicit empty list means fully booked; a missing list is no answer.
	if decoded.Times == nil {
		return nil, fmt.Errorf("available time slots %q %q: response has no verfuegbare_zeiten", vehicleType, date)
	}
	return decoded.Times, nil
}
