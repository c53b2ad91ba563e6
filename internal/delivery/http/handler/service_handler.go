package handler

import (
	"encoding/json"
	"net/http"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
	"hospital-erp/pkg/validator"
)

type ServiceHandler struct {
	serviceUsecase usecase.ServiceCatalogUsecase
	validator      *validator.CustomValidator
}

func NewServiceHandler(serviceUsecase usecase.ServiceCatalogUsecase, validator *validator.CustomValidator) *ServiceHandler {
	return &ServiceHandler{
		serviceUsecase: serviceUsecase,
		validator:      validator,
	}
}

func (h *ServiceHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.CreateService(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid price", nil)
		default:
			response.InternalServerError(w, "Failed to create service")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Service created successfully", service)
}

func (h *ServiceHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.serviceUsecase.GetServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

func (h *ServiceHandler) GetService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	service, err := h.serviceUsecase.GetService(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}

func (h *ServiceHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.UpdateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	service, err := h.serviceUsecase.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to update service")
		}
		return
	}

	response.Success(w, http.StatusOK, "Service updated successfully", service)
}

func (h *ServiceHandler) SetCurrentPrice(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	var req dto.SetPriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	version, err := h.serviceUsecase.SetCurrentPrice(r.Context(), serviceID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrInvalidAmount:
			response.Error(w, http.StatusBadRequest, "Invalid price", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid effective date", nil)
		default:
			response.InternalServerError(w, "Failed to set price")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Price set successfully", version)
}

func (h *ServiceHandler) GetPriceHistory(w http.ResponseWriter, r *http.Request) {
	serviceID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid service ID", nil)
		return
	}

	history, err := h.serviceUsecase.GetPriceHistory(r.Context(), serviceID)
	if err != nil {
		switch err {
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		default:
			response.InternalServerError(w, "Failed to get price history")
		}
		return
	}

	response.Success(w, http.StatusOK, "Price history retrieved successfully", history)
}

func (h *ServiceHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.serviceUsecase.CreateOrder(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.InternalServerError(w, "Failed to create order")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order created successfully", order)
}

func (h *ServiceHandler) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.serviceUsecase.GetOrders(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get orders")
		return
	}

	response.Success(w, http.StatusOK, "Orders retrieved successfully", orders)
}

func (h *ServiceHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	order, err := h.serviceUsecase.GetOrder(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrServiceOrderNotFound:
			response.NotFound(w, "Order not found")
		default:
			response.InternalServerError(w, "Failed to get order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order retrieved successfully", order)
}

func (h *ServiceHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	var req dto.UpdateServiceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.serviceUsecase.UpdateOrder(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceOrderNotFound:
			response.NotFound(w, "Order not found")
		default:
			response.InternalServerError(w, "Failed to update order")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order updated successfully", order)
}

func (h *ServiceHandler) AddOrderItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	var req dto.AddOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.serviceUsecase.AddOrderItem(r.Context(), orderID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceOrderNotFound:
			response.NotFound(w, "Order not found")
		case usecase.ErrServiceNotFound:
			response.NotFound(w, "Service not found")
		case usecase.ErrNoCurrentPrice:
			response.Error(w, http.StatusUnprocessableEntity, "Service has no current price", nil)
		default:
			response.InternalServerError(w, "Failed to add order item")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Order item added successfully", order)
}

func (h *ServiceHandler) UpdateOrderItem(w http.ResponseWriter, r *http.Request) {
	orderID, err := parseIDVar(r, "id")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid order ID", nil)
		return
	}

	itemID, err := parseIDVar(r, "itemId")
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid item ID", nil)
		return
	}

	var req dto.UpdateOrderItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	order, err := h.serviceUsecase.UpdateOrderItem(r.Context(), orderID, itemID, &req)
	if err != nil {
		switch err {
		case usecase.ErrServiceOrderNotFound:
			response.NotFound(w, "Order not found")
		case usecase.ErrOrderItemNotFound:
			response.NotFound(w, "Order item not found")
		default:
			response.InternalServerError(w, "Failed to update order item")
		}
		return
	}

	response.Success(w, http.StatusOK, "Order item updated successfully", order)
}
