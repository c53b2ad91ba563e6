package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type FleetHandler struct {
	fleetUsecase usecase.FleetUsecase
	validator    *validator.CustomValidator
}

func NewFleetHandler(fleetUsecase usecase.FleetUsecase, validator *validator.CustomValidator) *FleetHandler {
	return &FleetHandler{
		fleetUsecase: fleetUsecase,
		validator:    validator,
	}
}

func (h *FleetHandler) CreateVehicle(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.fleetUsecase.CreateVehicle(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPlateNumberTaken:
			response.Conflict(w, "Plate number already registered")
		default:
			response.InternalServerError(w, "Failed to create vehicle")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Vehicle created successfully", vehicle)
}

func (h *FleetHandler) GetVehicles(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.fleetUsecase.GetVehicles(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get vehicles")
		return
	}

	response.Success(w, http.StatusOK, "Vehicles retrieved successfully", vehicles)
}

func (h *FleetHandler) GetVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	vehicle, err := h.fleetUsecase.GetVehicle(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to get vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

func (h *FleetHandler) UpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid vehicle ID", nil)
		return
	}

	var req dto.UpdateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	vehicle, err := h.fleetUsecase.UpdateVehicle(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		default:
			response.InternalServerError(w, "Failed to update vehicle")
		}
		return
	}

	response.Success(w, http.StatusOK, "Vehicle updated successfully", vehicle)
}

func (h *FleetHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.fleetUsecase.CreateAssignment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrVehicleNotFound:
			response.NotFound(w, "Vehicle not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid assignment times", nil)
		default:
			response.InternalServerError(w, "Failed to create assignment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Assignment created successfully", assignment)
}

func (h *FleetHandler) GetAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.fleetUsecase.GetAssignments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get assignments")
		return
	}

	response.Success(w, http.StatusOK, "Assignments retrieved successfully", assignments)
}

func (h *FleetHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid assignment ID", nil)
		return
	}

	var req dto.UpdateAssignmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	assignment, err := h.fleetUsecase.UpdateAssignment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAssignmentNotFound:
			response.NotFound(w, "Assignment not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid end time", nil)
		default:
			response.InternalServerError(w, "Failed to update assignment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Assignment updated successfully", assignment)
}
