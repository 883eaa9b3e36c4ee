package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/preflight/internal/api/dto"
	"github.com/fleetops/preflight/internal/api/middleware"
	"github.com/fleetops/preflight/internal/domain/alert"
	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/utils"
	"github.com/fleetops/preflight/internal/pkg/validator"
)

type AlertHandler struct {
	service   alert.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertHandler(service alert.Service, log *logger.Logger, val *validator.Validator) *AlertHandler {
	return &AlertHandler{service: service, logger: log, validator: val}
}

// List returns all alerts with pagination and filtering
func (h *AlertHandler) List(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)

	filter := alert.Filter{
		Type:      r.URL.Query().Get("type"),
		Priority:  r.URL.Query().Get("priority"),
		Status:    r.URL.Query().Get("status"),
		VehicleID: r.URL.Query().Get("vehicle_id"),
		DriverID:  r.URL.Query().Get("driver_id"),
	}

	alerts, total, err := h.service.List(r.Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err, "Failed to list alerts")
		return
	}

	dtos := make([]dto.AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertToDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(dtos, params.Page, params.PageSize, total))
}

// Get returns a single alert by ID
func (h *AlertHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	a, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get alert")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, alertToDTO(a))
}

// Create creates a manual alert. The engine-generated types are not
// accepted here.
func (h *AlertHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	createdBy, _ := middleware.GetUserID(r)

	a := &alert.Alert{
		VehicleID:     req.VehicleID,
		DriverID:      req.DriverID,
		Type:          alert.Type(req.Type),
		Priority:      alert.Priority(req.Priority),
		Title:         req.Title,
		Description:   req.Description,
		AffectedItems: req.AffectedItems,
		CreatedBy:     createdBy,
	}

	id, err := h.service.Create(r.Context(), a)
	if err != nil {
		writeServiceError(w, err, "Failed to create alert")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]string{"id": id})
}

// UpdateStatus moves an alert through its lifecycle
func (h *AlertHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateAlertStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	if err := h.service.Transition(r.Context(), id, alert.Status(req.Status), req.Note); err != nil {
		writeServiceError(w, err, "Failed to update alert status")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Alert status updated", nil)
}

// Delete deletes an alert
func (h *AlertHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete alert")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Alert deleted successfully", nil)
}

// GetSummary returns alert counts grouped by status
func (h *AlertHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to get summary")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, summary)
}

func alertToDTO(a *alert.Alert) dto.AlertDTO {
	return dto.AlertDTO{
		ID:            a.ID,
		VehicleID:     a.VehicleID,
		DriverID:      a.DriverID,
		InspectionID:  a.InspectionID,
		Type:          string(a.Type),
		Priority:      string(a.Priority),
		Title:         a.Title,
		Description:   a.Description,
		AffectedItems: a.AffectedItems,
		Status:        string(a.Status),
		DetectedAt:    a.DetectedAt,
		ResolvedAt:    a.ResolvedAt,
		Notes:         a.Notes,
		CreatedBy:     a.CreatedBy,
		CreatedAt:     a.CreatedAt,
	}
}
