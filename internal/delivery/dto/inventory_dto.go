package dto

import "time"

// Request DTOs

type CreateStoreRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=255"`
}

type UpdateStoreRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateInventoryItemRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Category     string `json:"category" validate:"omitempty,max=100"`
	StoreID      *uint  `json:"store_id" validate:"omitempty,min=1"`
	Quantity     int    `json:"quantity" validate:"omitempty,min=0"`
	Unit         string `json:"unit" validate:"omitempty,max=30"`
	ReorderLevel int    `json:"reorder_level" validate:"omitempty,min=0"`
	Location     string `json:"location" validate:"omitempty,max=100"`
	Cost         string `json:"cost" validate:"omitempty"`
	ExpiryDate   string `json:"expiry_date"`
	BatchNumber  string `json:"batch_number" validate:"omitempty,max=100"`
	Manufacturer string `json:"manufacturer" validate:"omitempty,max=255"`
}

type UpdateInventoryItemRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=255"`
	Category     *string `json:"category" validate:"omitempty,max=100"`
	StoreID      *uint   `json:"store_id" validate:"omitempty,min=1"`
	Quantity     *int    `json:"quantity" validate:"omitempty,min=0"`
	Unit         *string `json:"unit" validate:"omitempty,max=30"`
	ReorderLevel *int    `json:"reorder_level" validate:"omitempty,min=0"`
	Location     *string `json:"location" validate:"omitempty,max=100"`
	Cost         *string `json:"cost"`
	ExpiryDate   *string `json:"expiry_date"`
	BatchNumber  *string `json:"batch_number" validate:"omitempty,max=100"`
	Manufacturer *string `json:"manufacturer" validate:"omitempty,max=255"`
}

type CreateTransferRequest struct {
	ItemID             uint   `json:"item_id" validate:"required,min=1"`
	SourceStoreID      uint   `json:"source_store_id" validate:"required,min=1"`
	DestinationStoreID uint   `json:"destination_store_id" validate:"required,min=1"`
	Quantity           int    `json:"quantity" validate:"required,min=1"`
	Status             string `json:"status" validate:"omitempty,oneof=pending in-transit completed cancelled"`
	CompletedDate      string `json:"completed_date"`
	Notes              string `json:"notes"`
}

type UpdateTransferRequest struct {
	Status        *string `json:"status" validate:"omitempty,oneof=pending in-transit completed cancelled"`
	CompletedDate *string `json:"completed_date"`
	Notes         *string `json:"notes"`
}

// Response DTOs

type InventoryItemResponse struct {
	ID           uint       `json:"id"`
	Name         string     `json:"name"`
	Category     string     `json:"category"`
	StoreID      *uint      `json:"store_id"`
	StoreName    string     `json:"store_name,omitempty"`
	Quantity     int        `json:"quantity"`
	Unit         string     `json:"unit"`
	ReorderLevel int        `json:"reorder_level"`
	Location     string     `json:"location"`
	Cost         string     `json:"cost"`
	ExpiryDate   *time.Time `json:"expiry_date"`
	BatchNumber  string     `json:"batch_number"`
	Manufacturer string     `json:"manufacturer"`
	LowStock     bool       `json:"low_stock"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

type InventoryItemListResponse struct {
	Items []InventoryItemResponse `json:"items"`
	Total int                     `json:"total"`
}

type TransferResponse struct {
	ID                 uint       `json:"id"`
	ItemID             uint       `json:"item_id"`
	ItemName           string     `json:"item_name,omitempty"`
	SourceStoreID      uint       `json:"source_store_id"`
	DestinationStoreID uint       `json:"destination_store_id"`
	Quantity           int        `json:"quantity"`
	Status             string     `json:"status"`
	CompletedDate      *time.Time `json:"completed_date"`
	Notes              string     `json:"notes"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
