package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCountersAreRegistered(t *testing.T) {
	m := New()

	m.OrderSubmissions.WithLabelValues(OutcomeSuccess).Inc()
	m.OrderSubmissions.WithLabelValues(OutcomeSuccess).Inc()
	m.TravelTimeLookups.WithLabelValues(LookupHit).Inc()

	if got := testutil.ToFloat64(m.OrderSubmissions.WithLabelValues(OutcomeSuccess)); got != 2 {
		t.Fatalf("order submissions = %v, want 2", got)
	}

	n, err := testutil.GatherAndCount(m.Registry(), "dashboard_travel_time_lookups_total")
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if n != 1 {
		t.Fatalf("lookup series = %d, want 1", n)
	}
}
