package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type LabHandler struct {
	labUsecase usecase.LabUsecase
	validator  *validator.CustomValidator
}

func NewLabHandler(labUsecase usecase.LabUsecase, validator *validator.CustomValidator) *LabHandler {
	return &LabHandler{
		labUsecase: labUsecase,
		validator:  validator,
	}
}

func (h *LabHandler) CreateSystem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	system, err := h.labUsecase.CreateSystem(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create lab system")
		return
	}

	response.Success(w, http.StatusCreated, "Lab system created successfully", system)
}

func (h *LabHandler) GetSystems(w http.ResponseWriter, r *http.Request) {
	systems, err := h.labUsecase.GetSystems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab systems")
		return
	}

	response.Success(w, http.StatusOK, "Lab systems retrieved successfully", systems)
}

func (h *LabHandler) GetSystem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab system ID", nil)
		return
	}

	system, err := h.labUsecase.GetSystem(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabSystemNotFound:
			response.NotFound(w, "Lab system not found")
		default:
			response.InternalServerError(w, "Failed to get lab system")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab system retrieved successfully", system)
}

func (h *LabHandler) UpdateSystem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab system ID", nil)
		return
	}

	var req dto.UpdateLabSystemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	system, err := h.labUsecase.UpdateSystem(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabSystemNotFound:
			response.NotFound(w, "Lab system not found")
		default:
			response.InternalServerError(w, "Failed to update lab system")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab system updated successfully", system)
}

func (h *LabHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab system ID", nil)
		return
	}

	result, err := h.labUsecase.TestConnection(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabSystemNotFound:
			response.NotFound(w, "Lab system not found")
		default:
			response.InternalServerError(w, "Failed to test connection")
		}
		return
	}

	response.Success(w, http.StatusOK, "Connection test completed", result)
}

func (h *LabHandler) SyncResults(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab system ID", nil)
		return
	}

	result, err := h.labUsecase.SyncResults(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrLabSystemNotFound:
			response.NotFound(w, "Lab system not found")
		case usecase.ErrLabUnreachable:
			response.Error(w, http.StatusBadGateway, "Lab system is unreachable", nil)
		default:
			response.InternalServerError(w, "Failed to sync lab results")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab results synced successfully", result)
}

func (h *LabHandler) CreateResult(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labUsecase.CreateResult(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrLabSystemNotFound:
			response.NotFound(w, "Lab system not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid result date", nil)
		default:
			response.InternalServerError(w, "Failed to create lab result")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Lab result created successfully", result)
}

func (h *LabHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	results, err := h.labUsecase.GetResults(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get lab results")
		return
	}

	response.Success(w, http.StatusOK, "Lab results retrieved successfully", results)
}

func (h *LabHandler) GetPatientResults(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDVar(r, "patientId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	results, err := h.labUsecase.GetPatientResults(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient lab results")
		return
	}

	response.Success(w, http.StatusOK, "Patient lab results retrieved successfully", results)
}

func (h *LabHandler) UpdateResult(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid lab result ID", nil)
		return
	}

	var req dto.UpdateLabResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.labUsecase.UpdateResult(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLabResultNotFound:
			response.NotFound(w, "Lab result not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid result date", nil)
		default:
			response.InternalServerError(w, "Failed to update lab result")
		}
		return
	}

	response.Success(w, http.StatusOK, "Lab result updated successfully", result)
}
