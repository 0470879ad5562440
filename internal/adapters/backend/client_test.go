package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/logger"
	"logistik-dashboard/internal/platform/metrics"
	"logistik-dashboard/internal/platform/obs"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *metrics.Metrics) {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	m := metrics.New()
	c, err := NewClient(srv.Client(), srv.URL+"/", logger.Nop(), m)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return c, m
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(nil, "  ", nil, nil); err == nil {
		t.Fatal("expected error for empty base url")
	}
}

func TestListVehicleTypes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/fahrzeugtypen" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q", got)
		}
		_, _ = w.Write([]byte(`[{"id":1,"name":"LKW"},{"id":2,"name":"Jumbo","anzahl_verfuegbar":12}]`))
	}))

	got, err := c.ListVehicleTypes(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	twelve := 12
	want := []domain.VehicleType{
		{ID: 1, Name: "LKW"},
		{ID: 2, Name: "Jumbo", Available: &twelve},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("vehicle types mismatch (-want +got):\n%s", diff)
	}
}

func TestListRouteDistances(t *testing.T) {
	c, m := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/distanzmatrix" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`[{"id":7,"von":"Bau 02-02","nach":"Bau 01-01","weg_min":15.0}]`))
	}))

	got, err := c.ListRouteDistances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.RouteDistance{{From: "Bau 02-02", To: "Bau 01-01", Minutes: domain.TravelMinutes(15)}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("distances mismatch (-want +got):\n%s", diff)
	}

	if n := testutil.ToFloat64(m.BackendRequests.WithLabelValues("list_route_distances", metrics.OutcomeSuccess)); n != 1 {
		t.Fatalf("success counter = %v, want 1", n)
	}
}

func TestListRouteDistancesWithoutMinutes(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"von":"Bau 3","nach":"Bau 4","weg_min":null},{"von":"Bau 3","nach":"Bau 5"},{"von":"Bau 3","nach":"Bau 7","weg_min":0}]`))
	}))

	got, err := c.ListRouteDistances(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []domain.RouteDistance{
		{From: "Bau 3", To: "Bau 4"},
		{From: "Bau 3", To: "Bau 5"},
		{From: "Bau 3", To: "Bau 7", Minutes: domain.TravelMinutes(0)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("distances mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTransportOrder(t *testing.T) {
	var calls int
	var body map[string]string

	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if r.Method != http.MethodPost || r.URL.Path != "/transporte" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("X-Request-ID = %q, want req-1", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"id":1}`))
	}))

	payload := domain.TransportOrderPayload{
		From:        "Bau 01-01",
		To:          "Bau 02-02",
		VehicleType: "LKW",
		Date:        "2024-06-01",
		StartTime:   "08:00",
		TimeWindow:  "2024-06-01T08:00:00.000Z",
	}

	ctx := obs.WithRequestID(context.Background(), "req-1")
	if err := c.CreateTransportOrder(ctx, payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}

	want := map[string]string{
		"von":         "Bau 01-01",
		"nach":        "Bau 02-02",
		"fahrzeugtyp": "LKW",
		"datum":       "2024-06-01",
		"startzeit":   "08:00",
		"zeitfenster": "2024-06-01T08:00:00.000Z",
	}
	if diff := cmp.Diff(want, body); diff != "" {
		t.Fatalf("request body mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateTransportOrderRejected(t *testing.T) {
	c, m := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte("invalid vehicle type\n"))
	}))

	err := c.CreateTransportOrder(context.Background(), domain.TransportOrderPayload{})

	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want *StatusError", err)
	}
	if se.Code != http.StatusUnprocessableEntity || se.Body != "invalid vehicle type" {
		t.Fatalf("StatusError = %+v", se)
	}

	if n := testutil.ToFloat64(m.BackendRequests.WithLabelValues("create_transport_order", metrics.OutcomeRejected)); n != 1 {
		t.Fatalf("rejected counter = %v, want 1", n)
	}
}

func TestNetworkFailureIsNotStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewClient(&http.Client{}, url, logger.Nop(), nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}

	_, err = c.ListVehicleTypes(context.Background())
	if err == nil {
		t.Fatal("expected error from closed server")
	}
	var se *StatusError
	if errors.As(err, &se) {
		t.Fatalf("err = %v, want transport error", err)
	}
}

func TestAvailableTimeSlots(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/verfuegbare-zeiten/Touren%20LKW%20PCC/2024-06-01" {
			t.Errorf("path = %q", r.URL.EscapedPath())
		}
		_, _ = w.Write([]byte(`{"verfuegbare_zeiten":["08:00","08:30"]}`))
	}))

	got, err := c.AvailableTimeSlots(context.Background(), "Touren LKW PCC", "2024-06-01")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"08:00", "08:30"}, got); diff != "" {
		t.Fatalf("slots mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.AvailableTimeSlots(context.Background(), "", "2024-06-01"); err == nil {
		t.Fatal("expected error for empty vehicle type")
	}
}

func TestAvailableTimeSlotsResponseShape(t *testing.T) {
	bodies := map[string]string{
		"/verfuegbare-zeiten/LKW/2024-06-01": `{}`,
		"/verfuegbare-zeiten/LKW/2024-06-02": `{"verfuegbare_zeiten":null}`,
		"/verfuegbare-zeiten/LKW/2024-06-03": `{"verfuegbare_zeiten":[]}`,
	}
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bodies[r.URL.Path]))
	}))

	for _, date := range []string{"2024-06-01", "2024-06-02"} {
		if _, err := c.AvailableTimeSlots(context.Background(), "LKW", date); err == nil {
			t.Fatalf("%s: expected error for response without verfuegbare_zeiten", date)
		}
	}

	got, err := c.AvailableTimeSlots(context.Background(), "LKW", "2024-06-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("slots = %#v, want empty non-nil list", got)
	}
}

func TestDecodeFailure(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))

	if _, err := c.ListRouteDistances(context.Background()); err == nil {
		t.Fatal("expected decode error")
	}
}
