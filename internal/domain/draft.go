package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrIncompleteDraft = errors.New("transport order draft is incomplete")
	ErrInvalidSchedule = errors.New("transport order date or start time is invalid")
)

const (
	timeWindowLayout    = "2006-01-02T15:04:05.000Z"
	scheduleInputLayout = "2006-01-02T15:04"
)

// In-progress transport order as entered on the form.
// A draft is a value: the With* methods return a modified copy and never
// change the receiver.
type TransportOrderDraft struct {
	VehicleType string
	Origin      string
	Destination string
	Date        string
	StartTime   string
}

func (d TransportOrderDraft) WithVehicleType(v string) TransportOrderDraft {
	d.VehicleType = v
	return d
}

func (d TransportOrderDraft) WithOrigin(v string) TransportOrderDraft {
	d.Origin = v
	return d
}

func (d TransportOrderDraft) WithDestination(v string) TransportOrderDraft {
	d.Destination = v
	return d
}

func (d TransportOrderDraft) WithDate(v string) TransportOrderDraft {
	d.Date = v
	return d
}

func (d TransportOrderDraft) WithStartTime(v string) TransportOrderDraft {
	d.StartTime = v
	return d
}

// Normalized trims surrounding whitespace from every field.
func (d TransportOrderDraft) Normalized() TransportOrderDraft {
	return TransportOrderDraft{
		VehicleType: strings.TrimSpace(d.VehicleType),
		Origin:      strings.TrimSpace(d.Origin),
		Destination: strings.TrimSpace(d.Destination),
		Date:        strings.TrimSpace(d.Date),
		StartTime:   strings.TrimSpace(d.StartTime),
	}
}

// Missing lists the wire names of empty fields in form order.
func (d TransportOrderDraft) Missing() []string {
	d = d.Normalized()

	var missing []string
	if d.VehicleType == "" {
		missing = append(missing, "fahrzeugtyp")
	}
	if d.Origin == "" {
		missing = append(missing, "abholort")
	}
	if d.Destination == "" {
		missing = append(missing, "zielort")
	}
	if d.Date == "" {
		missing = append(missing, "datum")
	}
	if d.StartTime == "" {
		missing = append(missing, "startzeit")
	}
	return missing
}

func (d TransportOrderDraft) Complete() bool {
	return len(d.Missing()) == 0
}

// HasRoute reports whether origin and destination are both set and differ,
// the precondition for a travel time lookup.
func (d TransportOrderDraft) HasRoute() bool {
	d = d.Normalized()
	return d.Origin != "" && d.Destination != "" && d.Origin != d.Destination
}

func (d TransportOrderDraft) IsZero() bool {
	return d == TransportOrderDraft{}
}

// Body of the create request sent to the backend.
type TransportOrderPayload struct {
	From        string
	To          string
	VehicleType string
	Date        string
	StartTime   string
	TimeWindow  string
}

// Payload renames the draft fields for the backend and derives the time window:
// date and start time read as UTC, rendered as ISO-8601 with milliseconds.
func (d TransportOrderDraft) Payload() (TransportOrderPayload, error) {
	d = d.Normalized()

	if missing := d.Missing(); len(missing) > 0 {
		return TransportOrderPayload{}, fmt.Errorf("build payload: %w: missing %s", ErrIncompleteDraft, strings.Join(missing, ", "))
	}

	window, err := TimeWindow(d.Date, d.StartTime)
	if err != nil {
		return TransportOrderPayload{}, fmt.Errorf("build payload: %w", err)
	}

	return TransportOrderPayload{
		From:        d.Origin,
		To:          d.Destination,
		VehicleType: d.VehicleType,
		Date:        d.Date,
		StartTime:   d.StartTime,
		TimeWindow:  window,
	}, nil
}

// TimeWindow combines date (YYYY-MM-DD) and start time (HH:MM) into a UTC timestamp string.
func TimeWindow(date, startTime string) (string, error) {
	t, err := time.ParseInLocation(scheduleInputLayout, date+"T"+startTime, time.UTC)
	if err != nil {
		return "", fmt.Errorf("%w: %q %q", ErrInvalidSchedule, date, startTime)
	}
	return t.UTC().Format(timeWindowLayout), nil
}
