package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/preflight/internal/api/dto"
	"github.com/fleetops/preflight/internal/domain/driver"
	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/utils"
	"github.com/fleetops/preflight/internal/pkg/validator"
)

type DriverHandler struct {
	service   driver.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewDriverHandler(service driver.Service, log *logger.Logger, val *validator.Validator) *DriverHandler {
	return &DriverHandler{service: service, logger: log, validator: val}
}

// List returns all drivers
func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.service.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "Failed to list drivers")
		return
	}

	dtos := make([]dto.DriverDTO, len(drivers))
	for i, d := range drivers {
		dtos[i] = driverToDTO(d)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Get returns a single driver by ID
func (h *DriverHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get driver")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, driverToDTO(d))
}

// Create registers a new driver
func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	d := &driver.Driver{
		Name:            req.Name,
		NationalID:      req.NationalID,
		LicenseNumber:   req.LicenseNumber,
		LicenseCategory: req.LicenseCategory,
		Phone:           req.Phone,
		Email:           req.Email,
		LicenseExpiry:   req.LicenseExpiry,
	}

	id, err := h.service.Create(r.Context(), d)
	if err != nil {
		writeServiceError(w, err, "Failed to create driver")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]string{"id": id})
}

// Update updates an existing driver
func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	d, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get driver")
		return
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.NationalID != nil {
		d.NationalID = *req.NationalID
	}
	if req.LicenseNumber != nil {
		d.LicenseNumber = *req.LicenseNumber
	}
	if req.LicenseCategory != nil {
		d.LicenseCategory = *req.LicenseCategory
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.LicenseExpiry != nil {
		d.LicenseExpiry = *req.LicenseExpiry
	}

	if err := h.service.Update(r.Context(), d); err != nil {
		writeServiceError(w, err, "Failed to update driver")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Driver updated successfully", nil)
}

// Delete removes a driver
func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete driver")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Driver deleted successfully", nil)
}

// CheckExpiry runs the license expiration rules against the driver and
// returns the alerts that were raised
func (h *DriverHandler) CheckExpiry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	alerts, err := h.service.CheckExpiry(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to check license expiry")
		return
	}

	dtos := make([]dto.AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertToDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

func driverToDTO(d *driver.Driver) dto.DriverDTO {
	return dto.DriverDTO{
		ID:              d.ID,
		Name:            d.Name,
		NationalID:      d.NationalID,
		LicenseNumber:   d.LicenseNumber,
		LicenseCategory: d.LicenseCategory,
		Phone:           d.Phone,
		Email:           d.Email,
		LicenseExpiry:   d.LicenseExpiry,
		CreatedAt:       d.CreatedAt,
	}
}
