package client

import (
	"context"
	"net/http"
)

// DriverService provides access to driver endpoints
type DriverService struct {
	client *Client
}

// List retrieves all drivers
func (s *DriverService) List(ctx context.Context) ([]Driver, error) {
	var drivers []Driver
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/drivers", nil, &drivers); err != nil {
		return nil, err
	}
	return drivers, nil
}

// Get retrieves a single driver
func (s *DriverService) Get(ctx context.Context, id string) (*Driver, error) {
	var d Driver
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/drivers/"+id, nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// CheckExpiry runs the license expiration rules against a driver and
// returns the raised alerts
func (s *DriverService) CheckExpiry(ctx context.Context, id string) ([]Alert, error) {
	var alerts []Alert
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/drivers/"+id+"/check-expiry", nil, &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}
