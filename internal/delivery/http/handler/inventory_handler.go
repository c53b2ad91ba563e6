package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type InventoryHandler struct {
	inventoryUsecase usecase.InventoryUsecase
	validator        *validator.CustomValidator
}

func NewInventoryHandler(inventoryUsecase usecase.InventoryUsecase, validator *validator.CustomValidator) *InventoryHandler {
	return &InventoryHandler{
		inventoryUsecase: inventoryUsecase,
		validator:        validator,
	}
}

func (h *InventoryHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	store, err := h.inventoryUsecase.CreateStore(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create store")
		return
	}

	response.Success(w, http.StatusCreated, "Store created successfully", store)
}

func (h *InventoryHandler) GetStores(w http.ResponseWriter, r *http.Request) {
	stores, err := h.inventoryUsecase.GetStores(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get stores")
		return
	}

	response.Success(w, http.StatusOK, "Stores retrieved successfully", stores)
}

func (h *InventoryHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid store ID", nil)
		return
	}

	var req dto.UpdateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	store, err := h.inventoryUsecase.UpdateStore(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrStoreNotFound:
			response.NotFound(w, "Store not found")
		default:
			response.InternalServerError(w, "Failed to update store")
		}
		return
	}

	response.Success(w, http.StatusOK, "Store updated successfully", store)
}

func (h *InventoryHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.CreateItem(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrStoreNotFound:
			response.NotFound(w, "Store not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid cost amount", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid expiry date", nil)
		default:
			response.InternalServerError(w, "Failed to create item")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Item created successfully", item)
}

func (h *InventoryHandler) GetItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.GetItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get items")
		return
	}

	response.Success(w, http.StatusOK, "Items retrieved successfully", items)
}

func (h *InventoryHandler) GetLowStockItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.inventoryUsecase.GetLowStockItems(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get low stock items")
		return
	}

	response.Success(w, http.StatusOK, "Low stock items retrieved successfully", items)
}

func (h *InventoryHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	item, err := h.inventoryUsecase.GetItem(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrItemNotFound:
			response.NotFound(w, "Item not found")
		default:
			response.InternalServerError(w, "Failed to get item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Item retrieved successfully", item)
}

func (h *InventoryHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	var req dto.UpdateInventoryItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	item, err := h.inventoryUsecase.UpdateItem(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrItemNotFound:
			response.NotFound(w, "Item not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid cost amount", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid expiry date", nil)
		default:
			response.InternalServerError(w, "Failed to update item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Item updated successfully", item)
}

func (h *InventoryHandler) CreateTransfer(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transfer, err := h.inventoryUsecase.CreateTransfer(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrStoreNotFound:
			response.NotFound(w, "Store not found")
		case usecase.ErrItemNotFound:
			response.NotFound(w, "Item not found")
		default:
			response.InternalServerError(w, "Failed to create transfer")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Transfer created successfully", transfer)
}

func (h *InventoryHandler) GetTransfers(w http.ResponseWriter, r *http.Request) {
	transfers, err := h.inventoryUsecase.GetTransfers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get transfers")
		return
	}

	response.Success(w, http.StatusOK, "Transfers retrieved successfully", transfers)
}

func (h *InventoryHandler) UpdateTransfer(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid transfer ID", nil)
		return
	}

	var req dto.UpdateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	transfer, err := h.inventoryUsecase.UpdateTransfer(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrTransferNotFound:
			response.NotFound(w, "Transfer not found")
		default:
			response.InternalServerError(w, "Failed to update transfer")
		}
		return
	}

	response.Success(w, http.StatusOK, "Transfer updated successfully", transfer)
}
