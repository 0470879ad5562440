package services

import (
	"context"
	"fmt"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/ports"
)

// FindRouteDistance scans entries for the unordered pair {a, b} and returns
// the first match.
//
// The scan is linear over a collection fetched per lookup. The matrix is a
// few hundred entries at most; a symmetric map index would be the next step
// if it grows.
func FindRouteDistance(entries []domain.RouteDistance, a, b string) (domain.RouteDistance, bool) {
	for _, e := range entries {
		if e.Connects(a, b) {
			return e, true
		}
	}
	return domain.RouteDistance{}, false
}

// LookupTravelTime fetches the full matrix and returns the travel time between
// origin and destination as display text. found is false when no entry matches
// or the first matching entry carries no minutes.
// Callers must only invoke it for a valid route (both set and distinct).
func LookupTravelTime(
	ctx context.Context,
	distances ports.RouteDistanceLister,
	origin string,
	destination string,
) (minutes string, found bool, err error) {
	entries, err := distances.ListRouteDistances(ctx)
	if err != nil {
		return "", false, fmt.Errorf("lookup travel time %q <-> %q: %w", origin, destination, err)
	}

	entry, ok := FindRouteDistance(entries, origin, destination)
	if !ok || entry.Minutes == nil {
		return "", false, nil
	}

	return domain.FormatMinutes(*entry.Minutes), true, nil
}
