package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AlertService provides access to alert endpoints
type AlertService struct {
	client *Client
}

// AlertListOptions filters alert listings
type AlertListOptions struct {
	Type      string
	Priority  string
	Status    string
	VehicleID string
	DriverID  string
	Page      int
	PageSize  int
}

// List retrieves alerts with optional filters
func (s *AlertService) List(ctx context.Context, opts *AlertListOptions) (*AlertPage, error) {
	q := url.Values{}
	if opts != nil {
		if opts.Type != "" {
			q.Set("type", opts.Type)
		}
		if opts.Priority != "" {
			q.Set("priority", opts.Priority)
		}
		if opts.Status != "" {
			q.Set("status", opts.Status)
		}
		if opts.VehicleID != "" {
			q.Set("vehicle_id", opts.VehicleID)
		}
		if opts.DriverID != "" {
			q.Set("driver_id", opts.DriverID)
		}
		if opts.Page > 0 {
			q.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(opts.PageSize))
		}
	}

	path := "/api/v1/alerts"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page AlertPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Get retrieves a single alert
func (s *AlertService) Get(ctx context.Context, id string) (*Alert, error) {
	var a Alert
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/alerts/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateStatus moves an alert through its lifecycle
func (s *AlertService) UpdateStatus(ctx context.Context, id, status, note string) error {
	body := map[string]string{"status": status}
	if note != "" {
		body["note"] = note
	}
	return s.client.doRequest(ctx, http.MethodPut, "/api/v1/alerts/"+id+"/status", body, nil)
}

// Summary retrieves alert counts grouped by status
func (s *AlertService) Summary(ctx context.Context) (map[string]int, error) {
	var summary map[string]int
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/alerts/summary", nil, &summary); err != nil {
		return nil, err
	}
	return summary, nil
}

// Delete removes an alert
func (s *AlertService) Delete(ctx context.Context, id string) error {
	return s.client.doRequest(ctx, http.MethodDelete, "/api/v1/alerts/"+id, nil, nil)
}
