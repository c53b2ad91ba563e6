package converter

import (
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
)

// ServiceToResponse converts a Service entity to ServiceResponse DTO.
// The current price is filled from the open price version if preloaded.
func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	response := &dto.ServiceResponse{
		ID:                  service.ID,
		Name:                service.Name,
		Category:            service.Category,
		Description:         service.Description,
		Duration:            service.Duration,
		Status:              service.Status,
		RequiresDoctor:      service.RequiresDoctor,
		RequiresAppointment: service.RequiresAppointment,
		Taxable:             service.Taxable,
		CreatedAt:           service.CreatedAt,
		UpdatedAt:           service.UpdatedAt,
	}

	for i := range service.PriceVersions {
		if service.PriceVersions[i].IsCurrent() {
			response.CurrentPrice = service.PriceVersions[i].Price.String()
			break
		}
	}

	return response
}

// ServicesToResponses converts a slice of Service entities to slice of ServiceResponse DTOs
func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i, service := range services {
		resp := ServiceToResponse(&service)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PriceVersionToResponse converts a ServicePriceVersion entity to PriceVersionResponse DTO
func PriceVersionToResponse(version *entity.ServicePriceVersion) *dto.PriceVersionResponse {
	if version == nil {
		return nil
	}

	return &dto.PriceVersionResponse{
		ID:            version.ID,
		ServiceID:     version.ServiceID,
		Price:         version.Price.String(),
		EffectiveDate: version.EffectiveDate,
		ExpiryDate:    version.ExpiryDate,
		Year:          version.Year,
		Current:       version.IsCurrent(),
	}
}

// PriceVersionsToResponses converts a slice of ServicePriceVersion entities to slice of PriceVersionResponse DTOs
func PriceVersionsToResponses(versions []entity.ServicePriceVersion) []dto.PriceVersionResponse {
	responses := make([]dto.PriceVersionResponse, len(versions))
	for i, version := range versions {
		resp := PriceVersionToResponse(&version)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// ServiceOrderToResponse converts a ServiceOrder entity to ServiceOrderResponse DTO
func ServiceOrderToResponse(order *entity.ServiceOrder) *dto.ServiceOrderResponse {
	if order == nil {
		return nil
	}

	response := &dto.ServiceOrderResponse{
		ID:          order.ID,
		PatientID:   order.PatientID,
		DoctorID:    order.DoctorID,
		Status:      string(order.Status),
		TotalAmount: order.TotalAmount.String(),
		BillID:      order.BillID,
		Notes:       order.Notes,
		CreatedAt:   order.CreatedAt,
		UpdatedAt:   order.UpdatedAt,
	}

	for _, item := range order.Items {
		itemResponse := dto.ServiceOrderItemResponse{
			ID:                    item.ID,
			ServiceID:             item.ServiceID,
			ServicePriceVersionID: item.ServicePriceVersionID,
			Quantity:              item.Quantity,
			UnitPrice:             item.UnitPrice.String(),
			TotalPrice:            item.TotalPrice.String(),
			Status:                item.Status,
		}
		if item.Service.ID != 0 {
			itemResponse.ServiceName = item.Service.Name
		}
		response.Items = append(response.Items, itemResponse)
	}

	return response
}

// ServiceOrdersToResponses converts a slice of ServiceOrder entities to slice of ServiceOrderResponse DTOs
func ServiceOrdersToResponses(orders []entity.ServiceOrder) []dto.ServiceOrderResponse {
	responses := make([]dto.ServiceOrderResponse, len(orders))
	for i, order := range orders {
		resp := ServiceOrderToResponse(&order)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
