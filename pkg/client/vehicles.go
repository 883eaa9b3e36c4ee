package client

import (
	"context"
	"net/http"
	"net/url"
)

// VehicleService provides access to vehicle endpoints
type VehicleService struct {
	client *Client
}

// List retrieves all vehicles, optionally filtered by state and kind
func (s *VehicleService) List(ctx context.Context, state, kind string) ([]Vehicle, error) {
	q := url.Values{}
	if state != "" {
		q.Set("state", state)
	}
	if kind != "" {
		q.Set("kind", kind)
	}

	path := "/api/v1/vehicles"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var vehicles []Vehicle
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &vehicles); err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Get retrieves a single vehicle
func (s *VehicleService) Get(ctx context.Context, id string) (*Vehicle, error) {
	var v Vehicle
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/vehicles/"+id, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// CheckExpiry runs the document expiration rules against a vehicle and
// returns the raised alerts
func (s *VehicleService) CheckExpiry(ctx context.Context, id string) ([]Alert, error) {
	var alerts []Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/vehicles/"+id+"/check-expiry", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
