package converter

import (
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
)

// InventoryItemToResponse converts an InventoryItem entity to InventoryItemResponse DTO
func InventoryItemToResponse(item *entity.InventoryItem) *dto.InventoryItemResponse {
	if item == nil {
		return nil
	}

	response := &dto.InventoryItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		StoreID:      item.StoreID,
		Quantity:     item.Quantity,
		Unit:         item.Unit,
		ReorderLevel: item.ReorderLevel,
		Location:     item.Location,
		Cost:         item.Cost.String(),
		ExpiryDate:   item.ExpiryDate,
		BatchNumber:  item.BatchNumber,
		Manufacturer: item.Manufacturer,
		LowStock:     item.IsLowStock(),
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}

	if item.Store != nil && item.Store.ID != 0 {
		response.StoreName = item.Store.Name
	}

	return response
}

// InventoryItemsToResponses converts a slice of InventoryItem entities to slice of InventoryItemResponse DTOs
func InventoryItemsToResponses(items []entity.InventoryItem) []dto.InventoryItemResponse {
	responses := make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		resp := InventoryItemToResponse(&item)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// TransferToResponse converts an InventoryTransfer entity to TransferResponse DTO
func TransferToResponse(transfer *entity.InventoryTransfer) *dto.TransferResponse {
	if transfer == nil {
		return nil
	}

	response := &dto.TransferResponse{
		ID:                 transfer.ID,
		ItemID:             transfer.ItemID,
		SourceStoreID:      transfer.SourceStoreID,
		DestinationStoreID: transfer.DestinationStoreID,
		Quantity:           transfer.Quantity,
		Status:             string(transfer.Status),
		CompletedDate:      transfer.CompletedDate,
		Notes:              transfer.Notes,
		CreatedAt:          transfer.CreatedAt,
		UpdatedAt:          transfer.UpdatedAt,
	}

	if transfer.Item.ID != 0 {
		response.ItemName = transfer.Item.Name
	}

	return response
}

// TransfersToResponses converts a slice of InventoryTransfer entities to slice of TransferResponse DTOs
func TransfersToResponses(transfers []entity.InventoryTransfer) []dto.TransferResponse {
	responses := make([]dto.TransferResponse, len(transfers))
	for i, transfer := range transfers {
		resp := TransferToResponse(&transfer)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
