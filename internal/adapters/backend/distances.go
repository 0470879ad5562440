package backend

import (
	"context"
	"fmt"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/obs"
)

type routeDistanceResponse struct {
	From    string  `json:"von"`
	To      string  `json:"nach"`
	Minutes *float64 `json:"weg_min"`
}

// ListRouteDistances fetches the full GET /distanzmatrix collection.
func (c *Client) ListRouteDistances(ctx context.Context) (_ []domain.RouteDistance, err error) {
	defer obs.Time(ctx, c.log, "backend.ListRouteDistances")(&err)
	defer func() { c.record("list_route_distances", err) }()

	var decoded []routeDistanceResponse
	if err := c.getJSON(ctx, "/distanzmatrix", &decoded); err != nil {
		return nil, fmt.Errorf("list route distances: %w", err)
	}

	out := make([]domain.RouteDistance, 0, len(decoded))
	for _, d := range decoded {
		out = append(out, domain.RouteDistance{
			From:    d.From,
			To:      d.To,
			Minutes: d.Minutes,
		})
	}

	return out, nil
}
