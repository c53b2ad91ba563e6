package converter

import (
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
)

// BillToResponse converts a Bill entity to BillResponse DTO
func BillToResponse(bill *entity.Bill) *dto.BillResponse {
	if bill == nil {
		return nil
	}

	response := &dto.BillResponse{
		ID:                  bill.ID,
		PatientID:           bill.PatientID,
		TotalAmount:         bill.TotalAmount.String(),
		PaidAmount:          bill.PaidAmount.String(),
		Status:              string(bill.Status),
		PaymentMethod:       bill.PaymentMethod,
		StripePaymentStatus: bill.StripePaymentStatus,
		DueDate:             bill.DueDate,
		CreatedAt:           bill.CreatedAt,
		UpdatedAt:           bill.UpdatedAt,
	}

	if bill.Patient.ID != 0 {
		response.PatientName = bill.Patient.Name
	}

	for _, item := range bill.Items {
		response.Items = append(response.Items, dto.BillItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.String(),
			TotalPrice:  item.TotalPrice.String(),
		})
	}

	return response
}

// BillsToResponses converts a slice of Bill entities to slice of BillResponse DTOs
func BillsToResponses(bills []entity.Bill) []dto.BillResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i, bill := range bills {
		resp := BillToResponse(&bill)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
