package domain

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func completeDraft() TransportOrderDraft {
	return TransportOrderDraft{
		VehicleType: "LKW",
		Origin:      "Bau 01-01",
		Destination: "Bau 02-02",
		Date:        "2024-06-01",
		StartTime:   "08:00",
	}
}

func TestDraftWithReturnsCopy(t *testing.T) {
	d := TransportOrderDraft{}
	next := d.WithOrigin("Bau 3").WithDestination("Bau 4")

	if !d.IsZero() {
		t.Fatalf("original draft changed: %+v", d)
	}
	if next.Origin != "Bau 3" || next.Destination != "Bau 4" {
		t.Fatalf("next = %+v", next)
	}
}

func TestDraftMissing(t *testing.T) {
	tests := []struct {
		name  string
		draft TransportOrderDraft
		want  []string
	}{
		{"complete", completeDraft(), nil},
		{"empty", TransportOrderDraft{}, []string{"fahrzeugtyp", "abholort", "zielort", "datum", "startzeit"}},
		{"no vehicle", completeDraft().WithVehicleType(""), []string{"fahrzeugtyp"}},
		{"blank origin", completeDraft().WithOrigin("   "), []string{"abholort"}},
		{"no destination", completeDraft().WithDestination(""), []string{"zielort"}},
		{"no date", completeDraft().WithDate(""), []string{"datum"}},
		{"no start", completeDraft().WithStartTime(""), []string{"startzeit"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.draft.Missing()); diff != "" {
				t.Errorf("Missing() mismatch (-want +got):\n%s", diff)
			}
			if got := tt.draft.Complete(); got != (len(tt.want) == 0) {
				t.Errorf("Complete() = %v", got)
			}
		})
	}
}

func TestDraftHasRoute(t *testing.T) {
	tests := []struct {
		origin, destination string
		want                bool
	}{
		{"", "", false},
		{"Bau 3", "", false},
		{"", "Bau 3", false},
		{"Bau 3", "Bau 3", false},
		{"Bau 3", "Bau 4", true},
	}

	for _, tt := range tests {
		d := TransportOrderDraft{Origin: tt.origin, Destination: tt.destination}
		if got := d.HasRoute(); got != tt.want {
			t.Errorf("HasRoute(%q, %q) = %v, want %v", tt.origin, tt.destination, got, tt.want)
		}
	}
}

func TestDraftPayload(t *testing.T) {
	p, err := completeDraft().Payload()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := TransportOrderPayload{
		From:        "Bau 01-01",
		To:          "Bau 02-02",
		VehicleType: "LKW",
		Date:        "2024-06-01",
		StartTime:   "08:00",
		TimeWindow:  "2024-06-01T08:00:00.000Z",
	}
	if diff := cmp.Diff(want, p); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestDraftPayloadErrors(t *testing.T) {
	if _, err := completeDraft().WithDate("").Payload(); !errors.Is(err, ErrIncompleteDraft) {
		t.Fatalf("err = %v, want ErrIncompleteDraft", err)
	}

	if _, err := completeDraft().WithDate("01.06.2024").Payload(); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("err = %v, want ErrInvalidSchedule", err)
	}

	if _, err := completeDraft().WithStartTime("25:00").Payload(); !errors.Is(err, ErrInvalidSchedule) {
		t.Fatalf("err = %v, want ErrInvalidSchedule", err)
	}
}

func TestTimeWindowEveryDaySlot(t *testing.T) {
	for _, slot := range TimeSlots() {
		got, err := TimeWindow("2024-12-31", slot)
		if err != nil {
			t.Fatalf("TimeWindow(%q): %v", slot, err)
		}
		want := "2024-12-31T" + slot + ":00.000Z"
		if got != want {
			t.Fatalf("TimeWindow(%q) = %q, want %q", slot, got, want)
		}
	}
}
