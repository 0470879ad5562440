package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"logistik-dashboard/internal/domain"
	"logistik-dashboard/internal/platform/obs"
)

type transportOrderRequest struct {
	From        string `json:"von"`
	To          string `json:"nach"`
	VehicleType string `json:"fahrzeugtyp"`
	Date        string `json:"datum"`
	StartTime   string `json:"startzeit"`
	TimeWindow  string `json:"zeitfenster"`
}

// CreateTransportOrder posts the payload to POST /transporte.
// The response body of a successful call is not used.
func (c *Client) CreateTransportOrder(ctx context.Context, payload domain.TransportOrderPayload) (err error) {
	defer obs.Time(ctx, c.log, "backend.CreateTransportOrder")(&err)
	defer func() { c.record("create_transport_order", err) }()

	body, err := json.Marshal(transportOrderRequest{
		From:        payload.From,
		To:          payload.To,
		VehicleType: payload.VehicleType,
		Date:        payload.Date,
		StartTime:   payload.StartTime,
		TimeWindow:  payload.TimeWindow,
	})
	if err != nil {
		return fmt.Errorf("create transport order: marshal request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/transporte", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create transport order: %w", err)
	}

	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("create transport order: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
