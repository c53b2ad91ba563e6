package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type FinanceHandler struct {
	financeUsecase usecase.FinanceUsecase
	validator      *validator.CustomValidator
}

func NewFinanceHandler(financeUsecase usecase.FinanceUsecase, validator *validator.CustomValidator) *FinanceHandler {
	return &FinanceHandler{
		financeUsecase: financeUsecase,
		validator:      validator,
	}
}

func (h *FinanceHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	account, err := h.financeUsecase.CreateAccount(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAccountNumberTaken:
			response.Conflict(w, "Account number already exists")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid opening balance", nil)
		default:
			response.InternalServerError(w, "Failed to create account")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Account created successfully", account)
}

func (h *FinanceHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.financeUsecase.GetAccounts(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get accounts")
		return
	}

	response.Success(w, http.StatusOK, "Accounts retrieved successfully", accounts)
}

func (h *FinanceHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid account ID", nil)
		return
	}

	account, err := h.financeUsecase.GetAccount(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAccountNotFound:
			response.NotFound(w, "Account not found")
		default:
			response.InternalServerError(w, "Failed to get account")
		}
		return
	}

	response.Success(w, http.StatusOK, "Account retrieved successfully", account)
}

func (h *FinanceHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid account ID", nil)
		return
	}

	var req dto.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	account, err := h.financeUsecase.UpdateAccount(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrAccountNotFound:
			response.NotFound(w, "Account not found")
		default:
			response.InternalServerError(w, "Failed to update account")
		}
		return
	}

	response.Success(w, http.StatusOK, "Account updated successfully", account)
}

func (h *FinanceHandler) PostTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.financeUsecase.PostTransaction(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAccountNotFound:
			response.NotFound(w, "Account not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid amount", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid transaction date", nil)
		default:
			response.InternalServerError(w, "Failed to post transaction")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transaction posted successfully", transaction)
}

func (h *FinanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.financeUsecase.GetTransactions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get transactions")
		return
	}

	response.Success(w, http.StatusOK, "Transactions retrieved successfully", transactions)
}

func (h *FinanceHandler) GetAccountTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, err := parseIDVar(r, "accountId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid account ID", nil)
		return
	}

	transactions, err := h.financeUsecase.GetAccountTransactions(r.Context(), accountID)
	if err != nil {
		response.InternalServerError(w, "Failed to get account transactions")
		return
	}

	response.Success(w, http.StatusOK, "Account transactions retrieved successfully", transactions)
}

func (h *FinanceHandler) CreateTerminal(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePosTerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	terminal, err := h.financeUsecase.CreateTerminal(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create terminal")
		return
	}

	response.Success(w, http.StatusCreated, "Terminal created successfully", terminal)
}

func (h *FinanceHandler) GetTerminals(w http.ResponseWriter, r *http.Request) {
	terminals, err := h.financeUsecase.GetTerminals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get terminals")
		return
	}

	response.Success(w, http.StatusOK, "Terminals retrieved successfully", terminals)
}

func (h *FinanceHandler) UpdateTerminal(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid terminal ID", nil)
		return
	}

	var req dto.UpdatePosTerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	terminal, err := h.financeUsecase.UpdateTerminal(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTerminalNotFound:
			response.NotFound(w, "Terminal not found")
		default:
			response.InternalServerError(w, "Failed to update terminal")
		}
		return
	}

	response.Success(w, http.StatusOK, "Terminal updated successfully", terminal)
}

func (h *FinanceHandler) CreatePosTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePosTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transaction, err := h.financeUsecase.CreatePosTransaction(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrTerminalNotFound:
			response.NotFound(w, "Terminal not found")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid amount", nil)
		default:
			response.InternalServerError(w, "Failed to create POS transaction")
		}
		return
	}

	response.Success(w, http.StatusCreated, "POS transaction created successfully", transaction)
}

func (h *FinanceHandler) GetPosTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.financeUsecase.GetPosTransactions(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get POS transactions")
		return
	}

	response.Success(w, http.StatusOK, "POS transactions retrieved successfully", transactions)
}

func (h *FinanceHandler) CompletePosTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid POS transaction ID", nil)
		return
	}

	transaction, err := h.financeUsecase.CompletePosTransaction(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPosTransactionNotFound:
			response.NotFound(w, "POS transaction not found")
		case usecase.ErrNoAccountForMethod:
			response.Error(w, http.StatusUnprocessableEntity, "No active account for payment method", nil)
		default:
			response.InternalServerError(w, "Failed to complete POS transaction")
		}
		return
	}

	response.Success(w, http.StatusOK, "POS transaction completed successfully", transaction)
}

func (h *FinanceHandler) CancelPosTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid POS transaction ID", nil)
		return
	}

	transaction, err := h.financeUsecase.CancelPosTransaction(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrPosTransactionNotFound:
			response.NotFound(w, "POS transaction not found")
		default:
			response.InternalServerError(w, "Failed to cancel POS transaction")
		}
		return
	}

	response.Success(w, http.StatusOK, "POS transaction cancelled successfully", transaction)
}
