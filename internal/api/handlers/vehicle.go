package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/preflight/internal/api/dto"
	"github.com/fleetops/preflight/internal/domain/vehicle"
	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/utils"
	"github.com/fleetops/preflight/internal/pkg/validator"
)

type VehicleHandler struct {
	service   vehicle.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewVehicleHandler(service vehicle.Service, log *logger.Logger, val *validator.Validator) *VehicleHandler {
	return &VehicleHandler{service: service, logger: log, validator: val}
}

// List returns all vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := vehicle.Filter{
		State: r.URL.Query().Get("state"),
		Kind:  r.URL.Query().Get("kind"),
	}

	vehicles, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err, "Failed to list vehicles")
		return
	}

	dtos := make([]dto.VehicleDTO, len(vehicles))
	for i, v := range vehicles {
		dtos[i] = vehicleToDTO(v)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Get returns a single vehicle by ID
func (h *VehicleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get vehicle")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, vehicleToDTO(v))
}

// Create registers a new vehicle
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	v := &vehicle.Vehicle{
		Plate:                req.Plate,
		Make:                 req.Make,
		Model:                req.Model,
		Year:                 req.Year,
		Kind:                 req.Kind,
		Color:                req.Color,
		Mileage:              req.Mileage,
		SOATExpiry:           req.SOATExpiry,
		RoadworthinessExpiry: req.RoadworthinessExpiry,
	}

	id, err := h.service.Create(r.Context(), v)
	if err != nil {
		writeServiceError(w, err, "Failed to create vehicle")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, map[string]string{"id": id})
}

// Update updates an existing vehicle
func (h *VehicleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req dto.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	v, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get vehicle")
		return
	}

	if req.Plate != nil {
		v.Plate = *req.Plate
	}
	if req.Make != nil {
		v.Make = *req.Make
	}
	if req.Model != nil {
		v.Model = *req.Model
	}
	if req.Year != nil {
		v.Year = *req.Year
	}
	if req.Kind != nil {
		v.Kind = *req.Kind
	}
	if req.Color != nil {
		v.Color = *req.Color
	}
	if req.Mileage != nil {
		v.Mileage = *req.Mileage
	}
	if req.State != nil {
		v.State = vehicle.State(*req.State)
	}
	if req.SOATExpiry != nil {
		v.SOATExpiry = *req.SOATExpiry
	}
	if req.RoadworthinessExpiry != nil {
		v.RoadworthinessExpiry = *req.RoadworthinessExpiry
	}

	if err := h.service.Update(r.Context(), v); err != nil {
		writeServiceError(w, err, "Failed to update vehicle")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Vehicle updated successfully", nil)
}

// Delete removes a vehicle
func (h *VehicleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "Failed to delete vehicle")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Vehicle deleted successfully", nil)
}

// CheckExpiry runs the document expiration rules against the vehicle
// and returns the alerts that were raised
func (h *VehicleHandler) CheckExpiry(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	alerts, err := h.service.CheckExpiry(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to check document expiry")
		return
	}

	dtos := make([]dto.AlertDTO, len(alerts))
	for i, a := range alerts {
		dtos[i] = alertToDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

func vehicleToDTO(v *vehicle.Vehicle) dto.VehicleDTO {
	return dto.VehicleDTO{
		ID:                   v.ID,
		Plate:                v.Plate,
		Make:                 v.Make,
		Model:                v.Model,
		Year:                 v.Year,
		Kind:                 v.Kind,
		Color:                v.Color,
		Mileage:              v.Mileage,
		State:                string(v.State),
		SOATExpiry:           v.SOATExpiry,
		RoadworthinessExpiry: v.RoadworthinessExpiry,
		CreatedAt:            v.CreatedAt,
	}
}
