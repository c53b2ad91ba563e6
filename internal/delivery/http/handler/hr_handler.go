package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type HrHandler struct {
	hrUsecase usecase.HRUsecase
	validator *validator.CustomValidator
}

func NewHrHandler(hrUsecase usecase.HRUsecase, validator *validator.CustomValidator) *HrHandler {
	return &HrHandler{
		hrUsecase: hrUsecase,
		validator: validator,
	}
}

func (h *HrHandler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.hrUsecase.CreateEmployee(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			response.NotFound(w, "User not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid join date", nil)
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid salary", nil)
		default:
			response.InternalServerError(w, "Failed to create employee")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Employee created successfully", employee)
}

func (h *HrHandler) GetEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.hrUsecase.GetEmployees(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get employees")
		return
	}

	response.Success(w, http.StatusOK, "Employees retrieved successfully", employees)
}

func (h *HrHandler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	employee, err := h.hrUsecase.GetEmployee(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		default:
			response.InternalServerError(w, "Failed to get employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee retrieved successfully", employee)
}

func (h *HrHandler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	var req dto.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	employee, err := h.hrUsecase.UpdateEmployee(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid salary", nil)
		default:
			response.InternalServerError(w, "Failed to update employee")
		}
		return
	}

	response.Success(w, http.StatusOK, "Employee updated successfully", employee)
}

func (h *HrHandler) CreateLeave(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leave, err := h.hrUsecase.CreateLeave(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmployeeNotFound:
			response.NotFound(w, "Employee not found")
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid leave dates", nil)
		default:
			response.InternalServerError(w, "Failed to create leave request")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Leave request created successfully", leave)
}

func (h *HrHandler) GetLeaves(w http.ResponseWriter, r *http.Request) {
	leaves, err := h.hrUsecase.GetLeaves(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get leave requests")
		return
	}

	response.Success(w, http.StatusOK, "Leave requests retrieved successfully", leaves)
}

func (h *HrHandler) GetEmployeeLeaves(w http.ResponseWriter, r *http.Request) {
	employeeID, err := parseIDVar(r, "employeeId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid employee ID", nil)
		return
	}

	leaves, err := h.hrUsecase.GetEmployeeLeaves(r.Context(), employeeID)
	if err != nil {
		response.InternalServerError(w, "Failed to get employee leaves")
		return
	}

	response.Success(w, http.StatusOK, "Employee leaves retrieved successfully", leaves)
}

func (h *HrHandler) UpdateLeave(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid leave ID", nil)
		return
	}

	var req dto.UpdateLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	leave, err := h.hrUsecase.UpdateLeave(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrLeaveNotFound:
			response.NotFound(w, "Leave request not found")
		default:
			response.InternalServerError(w, "Failed to update leave request")
		}
		return
	}

	response.Success(w, http.StatusOK, "Leave request updated successfully", leave)
}
