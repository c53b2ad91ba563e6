package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type AdmissionHandler struct {
	admissionUsecase usecase.AdmissionUsecase
	validator        *validator.CustomValidator
}

func NewAdmissionHandler(admissionUsecase usecase.AdmissionUsecase, validator *validator.CustomValidator) *AdmissionHandler {
	return &AdmissionHandler{
		admissionUsecase: admissionUsecase,
		validator:        validator,
	}
}

func (h *AdmissionHandler) CreateWard(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateWardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ward, err := h.admissionUsecase.CreateWard(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create ward")
		return
	}

	response.Success(w, http.StatusCreated, "Ward created successfully", ward)
}

func (h *AdmissionHandler) GetWards(w http.ResponseWriter, r *http.Request) {
	wards, err := h.admissionUsecase.GetWards(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get wards")
		return
	}

	response.Success(w, http.StatusOK, "Wards retrieved successfully", wards)
}

func (h *AdmissionHandler) UpdateWard(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ward ID", nil)
		return
	}

	var req dto.UpdateWardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	ward, err := h.admissionUsecase.UpdateWard(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrWardNotFound:
			response.NotFound(w, "Ward not found")
		default:
			response.InternalServerError(w, "Failed to update ward")
		}
		return
	}

	response.Success(w, http.StatusOK, "Ward updated successfully", ward)
}

func (h *AdmissionHandler) CreateBed(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.admissionUsecase.CreateBed(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrWardNotFound:
			response.NotFound(w, "Ward not found")
		case usecase.ErrBedNumberTaken:
			response.Conflict(w, "Bed number already exists")
		default:
			response.InternalServerError(w, "Failed to create bed")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bed created successfully", bed)
}

func (h *AdmissionHandler) GetBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := h.admissionUsecase.GetBeds(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get beds")
		return
	}

	response.Success(w, http.StatusOK, "Beds retrieved successfully", beds)
}

func (h *AdmissionHandler) GetAvailableBeds(w http.ResponseWriter, r *http.Request) {
	beds, err := h.admissionUsecase.GetAvailableBeds(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get available beds")
		return
	}

	response.Success(w, http.StatusOK, "Available beds retrieved successfully", beds)
}

func (h *AdmissionHandler) GetBedsByWard(w http.ResponseWriter, r *http.Request) {
	wardID, err := parseIDVar(r, "wardId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid ward ID", nil)
		return
	}

	beds, err := h.admissionUsecase.GetBedsByWard(r.Context(), wardID)
	if err != nil {
		response.InternalServerError(w, "Failed to get ward beds")
		return
	}

	response.Success(w, http.StatusOK, "Ward beds retrieved successfully", beds)
}

func (h *AdmissionHandler) UpdateBed(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bed ID", nil)
		return
	}

	var req dto.UpdateBedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bed, err := h.admissionUsecase.UpdateBed(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		default:
			response.InternalServerError(w, "Failed to update bed")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bed updated successfully", bed)
}

func (h *AdmissionHandler) AdmitPatient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.AdmitPatient(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrBedNotFound:
			response.NotFound(w, "Bed not found")
		case usecase.ErrBedUnavailable:
			response.Conflict(w, "Bed is not available")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid admission date", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid deposit amount", nil)
		default:
			response.InternalServerError(w, "Failed to admit patient")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Patient admitted successfully", admission)
}

func (h *AdmissionHandler) GetAdmissions(w http.ResponseWriter, r *http.Request) {
	// ?active=true narrows to current inpatients
	if r.URL.Query().Get("active") == "true" {
		admissions, err := h.admissionUsecase.GetActiveAdmissions(r.Context())
		if err != nil {
			response.InternalServerError(w, "Failed to get active admissions")
			return
		}
		response.Success(w, http.StatusOK, "Active admissions retrieved successfully", admissions)
		return
	}

	admissions, err := h.admissionUsecase.GetAdmissions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get admissions")
		return
	}

	response.Success(w, http.StatusOK, "Admissions retrieved successfully", admissions)
}

func (h *AdmissionHandler) GetAdmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	admission, err := h.admissionUsecase.GetAdmission(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to get admission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission retrieved successfully", admission)
}

func (h *AdmissionHandler) GetPatientAdmissions(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDVar(r, "patientId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	admissions, err := h.admissionUsecase.GetPatientAdmissions(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient admissions")
		return
	}

	response.Success(w, http.StatusOK, "Patient admissions retrieved successfully", admissions)
}

func (h *AdmissionHandler) UpdateAdmission(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	var req dto.UpdateAdmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	admission, err := h.admissionUsecase.UpdateAdmission(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid discharge date", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid deposit amount", nil)
		default:
			response.InternalServerError(w, "Failed to update admission")
		}
		return
	}

	response.Success(w, http.StatusOK, "Admission updated successfully", admission)
}

func (h *AdmissionHandler) DischargePatient(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid admission ID", nil)
		return
	}

	admission, err := h.admissionUsecase.DischargePatient(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAdmissionNotFound:
			response.NotFound(w, "Admission not found")
		default:
			response.InternalServerError(w, "Failed to discharge patient")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient discharged successfully", admission)
}
