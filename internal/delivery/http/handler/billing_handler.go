package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type BillingHandler struct {
	billingUsecase usecase.BillingUsecase
	validator      *validator.CustomValidator
}

func NewBillingHandler(billingUsecase usecase.BillingUsecase, validator *validator.CustomValidator) *BillingHandler {
	return &BillingHandler{
		billingUsecase: billingUsecase,
		validator:      validator,
	}
}

func (h *BillingHandler) CreateBill(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.CreateBill(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid amount", nil)
		default:
			response.InternalServerError(w, "Failed to create bill")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Bill created successfully", bill)
}

func (h *BillingHandler) GetBills(w http.ResponseWriter, r *http.Request) {
	// ?status=pending|partial|paid narrows the listing
	if status := r.URL.Query().Get("status"); status != "" {
		bills, err := h.billingUsecase.GetBillsByStatus(r.Context(), entity.BillStatus(status))
		if err != nil {
			response.InternalServerError(w, "Failed to get bills")
			return
		}
		response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
		return
	}

	bills, err := h.billingUsecase.GetBills(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get bills")
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}

func (h *BillingHandler) GetBill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return
	}

	bill, err := h.billingUsecase.GetBill(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		default:
			response.InternalServerError(w, "Failed to get bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill retrieved successfully", bill)
}

func (h *BillingHandler) GetPatientBills(w http.ResponseWriter, r *http.Request) {
	patientID, err := parseIDVar(r, "patientId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid patient ID", nil)
		return
	}

	bills, err := h.billingUsecase.GetPatientBills(r.Context(), patientID)
	if err != nil {
		response.InternalServerError(w, "Failed to get patient bills")
		return
	}

	response.Success(w, http.StatusOK, "Patient bills retrieved successfully", bills)
}

func (h *BillingHandler) UpdateBill(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return
	}

	var req dto.UpdateBillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.UpdateBill(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid amount", nil)
		default:
			response.InternalServerError(w, "Failed to update bill")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bill updated successfully", bill)
}

func (h *BillingHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid bill ID", nil)
		return
	}

	var req dto.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	bill, err := h.billingUsecase.RecordPayment(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrBillNotFound:
			response.NotFound(w, "Bill not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Payment amount must be positive", nil)
		default:
			response.InternalServerError(w, "Failed to record payment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Payment recorded successfully", bill)
}
