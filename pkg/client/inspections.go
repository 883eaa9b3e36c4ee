package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// InspectionService provides access to inspection endpoints
type InspectionService struct {
	client *Client
}

// SubmitInspectionRequest is the payload for submitting an inspection
type SubmitInspectionRequest struct {
	VehicleID    string                       `json:"vehicle_id"`
	DriverID     string                       `json:"driver_id"`
	Date         string                       `json:"date,omitempty"`
	Time         string                       `json:"time,omitempty"`
	Mileage      int                          `json:"mileage"`
	Destination  string                       `json:"destination,omitempty"`
	Health       Health                       `json:"health"`
	Sections     map[string]map[string]string `json:"sections"`
	Observations string                       `json:"observations,omitempty"`
	SignatureRef string                       `json:"signature_ref,omitempty"`
}

// InspectionListOptions filters inspection listings
type InspectionListOptions struct {
	VehicleID string
	DriverID  string
	Verdict   string
	Page      int
	PageSize  int
}

// Submit records a completed inspection
func (s *InspectionService) Submit(ctx context.Context, req *SubmitInspectionRequest) (*SubmitInspectionResult, error) {
	var result SubmitInspectionResult
	if err := s.client.doRequest(ctx, http.MethodPost, "/api/v1/inspections", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Get retrieves a single inspection
func (s *InspectionService) Get(ctx context.Context, id string) (*Inspection, error) {
	var insp Inspection
	if err := s.client.doRequest(ctx, http.MethodGet, "/api/v1/inspections/"+id, nil, &insp); err != nil {
		return nil, err
	}
	return &insp, nil
}

// List retrieves inspections with optional filters
func (s *InspectionService) List(ctx context.Context, opts *InspectionListOptions) (*InspectionPage, error) {
	q := url.Values{}
	if opts != nil {
		if opts.VehicleID != "" {
			q.Set("vehicle_id", opts.VehicleID)
		}
		if opts.DriverID != "" {
			q.Set("driver_id", opts.DriverID)
		}
		if opts.Verdict != "" {
			q.Set("verdict", opts.Verdict)
		}
		if opts.Page > 0 {
			q.Set("page", strconv.Itoa(opts.Page))
		}
		if opts.PageSize > 0 {
			q.Set("page_size", strconv.Itoa(opts.PageSize))
		}
	}

	path := "/api/v1/inspections"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page InspectionPage
	if err := s.client.doRequest(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
