package backend

import (
	"context"
	"fmt"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/obs"
)

type vehicleTypeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Available *int   `json:"anzahl_verfuegbar"`
}

// ListVehicleTypes fetches GET /fahrzeugtypen.
func (c *Client) ListVehicleTypes(ctx context.Context) (_ []domain.VehicleType, err error) {
	defer obs.Time(ctx, c.log, "backend.ListVehicleTypes")(&err)
	defer func() { c.record("list_vehicle_types", err) }()

	var decoded []vehicleTypeResponse
	if err := c.getJSON(ctx, "/fahrzeugtypen", &decoded); err != nil {
		return nil, fmt.Errorf("list vehicle types: %w", err)
	}

	out := make([]domain.VehicleType, 0, len(decoded))
	for _, v := range decoded {
		out = append(out, domain.VehicleType{
			ID:        v.ID,
			Name:      v.Name,
			Available: v.Available,
		})
	}

	return out, nil
}
