package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fleetops/preflight/internal/api/dto"
	"github.com/fleetops/preflight/internal/domain/checklist"
	"github.com/fleetops/preflight/internal/domain/inspection"
	"github.com/fleetops/preflight/internal/pkg/errors"
	"github.com/fleetops/preflight/internal/pkg/logger"
	"github.com/fleetops/preflight/internal/pkg/utils"
	"github.com/fleetops/preflight/internal/pkg/validator"
)

type InspectionHandler struct {
	service   inspection.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewInspectionHandler(service inspection.Service, log *logger.Logger, val *validator.Validator) *InspectionHandler {
	return &InspectionHandler{service: service, logger: log, validator: val}
}

// Submit records a completed pre-operational inspection
func (h *InspectionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req dto.SubmitInspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if errs := h.validator.Validate(req); len(errs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", errs))
		return
	}

	sections, err := sectionsFromDTO(req.Sections)
	if err != nil {
		utils.WriteError(w, err.(*errors.AppError))
		return
	}

	insp := &inspection.Inspection{
		VehicleID:   req.VehicleID,
		DriverID:    req.DriverID,
		Date:        req.Date,
		Time:        req.Time,
		Mileage:     req.Mileage,
		Destination: req.Destination,
		Health: inspection.Health{
			SleepHours: req.Health.SleepHours,
			Condition:  req.Health.Condition,
			Medication: req.Health.Medication,
		},
		Sections:     sections,
		Observations: req.Observations,
		SignatureRef: req.SignatureRef,
	}

	result, err := h.service.Submit(r.Context(), insp)
	if err != nil {
		writeServiceError(w, err, "Failed to submit inspection")
		return
	}

	resp := dto.SubmitInspectionResponse{
		ID:             result.Inspection.ID,
		Verdict:        string(result.Inspection.Verdict),
		AlertID:        result.AlertID,
		AlertGenerated: result.AlertGenerated,
	}
	if result.AlertErr != nil {
		resp.AlertError = result.AlertErr.Error()
	}

	utils.WriteSuccess(w, http.StatusCreated, resp)
}

// Get returns a single inspection by ID
func (h *InspectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	insp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "Failed to get inspection")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, inspectionToDTO(insp))
}

// List returns inspections with pagination and filtering
func (h *InspectionHandler) List(w http.ResponseWriter, r *http.Request) {
	params := utils.ParsePaginationParams(r)

	filter := inspection.Filter{
		VehicleID: r.URL.Query().Get("vehicle_id"),
		DriverID:  r.URL.Query().Get("driver_id"),
		Verdict:   r.URL.Query().Get("verdict"),
	}

	inspections, total, err := h.service.List(r.Context(), filter, params.PageSize, params.Offset)
	if err != nil {
		writeServiceError(w, err, "Failed to list inspections")
		return
	}

	dtos := make([]dto.InspectionDTO, len(inspections))
	for i, insp := range inspections {
		dtos[i] = inspectionToDTO(insp)
	}

	utils.WriteSuccess(w, http.StatusOK, utils.NewPaginatedResponse(dtos, params.Page, params.PageSize, total))
}

func sectionsFromDTO(in map[string]map[string]string) (checklist.Sections, error) {
	sections := make(checklist.Sections, len(in))
	for name, items := range in {
		section := make(checklist.Section, len(items))
		for item, answer := range items {
			r := checklist.Response(answer)
			if !r.Valid() {
				return nil, errors.BadRequest("Invalid response for item " + checklist.ItemKey(name, item))
			}
			section[item] = r
		}
		sections[name] = section
	}
	return sections, nil
}

func sectionsToDTO(in checklist.Sections) map[string]map[string]string {
	out := make(map[string]map[string]string, len(in))
	for name, items := range in {
		section := make(map[string]string, len(items))
		for item, answer := range items {
			section[item] = string(answer)
		}
		out[name] = section
	}
	return out
}

func inspectionToDTO(insp *inspection.Inspection) dto.InspectionDTO {
	return dto.InspectionDTO{
		ID:          insp.ID,
		VehicleID:   insp.VehicleID,
		DriverID:    insp.DriverID,
		Date:        insp.Date,
		Time:        insp.Time,
		Mileage:     insp.Mileage,
		Destination: insp.Destination,
		Health: dto.HealthDTO{
			SleepHours: insp.Health.SleepHours,
			Condition:  insp.Health.Condition,
			Medication: insp.Health.Medication,
		},
		Sections:     sectionsToDTO(insp.Sections),
		Observations: insp.Observations,
		SignatureRef: insp.SignatureRef,
		DocumentRef:  insp.DocumentRef,
		Verdict:      string(insp.Verdict),
		CreatedAt:    insp.CreatedAt,
	}
}
