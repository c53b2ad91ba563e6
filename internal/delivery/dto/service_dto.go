package dto

import "time"

// Request DTOs

type CreateServiceRequest struct {
	Name                string `json:"name" validate:"required,max=255"`
	Category            string `json:"category" validate:"omitempty,max=100"`
	Description         string `json:"description"`
	Duration            int    `json:"duration" validate:"omitempty,min=0"`
	RequiresDoctor      bool   `json:"requires_doctor"`
	RequiresAppointment bool   `json:"requires_appointment"`
	Taxable             bool   `json:"taxable"`
	Price               string `json:"price" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	Name                *string `json:"name" validate:"omitempty,max=255"`
	Category            *string `json:"category" validate:"omitempty,max=100"`
	Description         *string `json:"description"`
	Duration            *int    `json:"duration" validate:"omitempty,min=0"`
	Status              *string `json:"status" validate:"omitempty,oneof=active inactive"`
	RequiresDoctor      *bool   `json:"requires_doctor"`
	RequiresAppointment *bool   `json:"requires_appointment"`
	Taxable             *bool   `json:"taxable"`
}

type SetPriceRequest struct {
	Price         string `json:"price" validate:"required"`
	EffectiveDate string `json:"effective_date"`
}

type CreateServiceOrderRequest struct {
	PatientID uint   `json:"patient_id" validate:"required,min=1"`
	DoctorID  *uint  `json:"doctor_id" validate:"omitempty,min=1"`
	Notes     string `json:"notes"`
}

type UpdateServiceOrderRequest struct {
	Status *string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
	BillID *uint   `json:"bill_id" validate:"omitempty,min=1"`
	Notes  *string `json:"notes"`
}

type AddOrderItemRequest struct {
	ServiceID uint `json:"service_id" validate:"required,min=1"`
	Quantity  int  `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateOrderItemRequest struct {
	Quantity *int    `json:"quantity" validate:"omitempty,min=1"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending completed cancelled"`
}

// Response DTOs

type ServiceResponse struct {
	ID                  uint      `json:"id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Description         string    `json:"description"`
	Duration            int       `json:"duration"`
	Status              string    `json:"status"`
	RequiresDoctor      bool      `json:"requires_doctor"`
	RequiresAppointment bool      `json:"requires_appointment"`
	Taxable             bool      `json:"taxable"`
	CurrentPrice        string    `json:"current_price,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}

type PriceVersionResponse struct {
	ID            uint       `json:"id"`
	ServiceID     uint       `json:"service_id"`
	Price         string     `json:"price"`
	EffectiveDate time.Time  `json:"effective_date"`
	ExpiryDate    *time.Time `json:"expiry_date"`
	Year          int        `json:"year"`
	Current       bool       `json:"current"`
}

type ServiceOrderItemResponse struct {
	ID                    uint   `json:"id"`
	ServiceID             uint   `json:"service_id"`
	ServiceName           string `json:"service_name,omitempty"`
	ServicePriceVersionID uint   `json:"service_price_version_id"`
	Quantity              int    `json:"quantity"`
	UnitPrice             string `json:"unit_price"`
	TotalPrice            string `json:"total_price"`
	Status                string `json:"status"`
}

type ServiceOrderResponse struct {
	ID          uint                       `json:"id"`
	PatientID   uint                       `json:"patient_id"`
	DoctorID    *uint                      `json:"doctor_id"`
	Status      string                     `json:"status"`
	TotalAmount string                     `json:"total_amount"`
	BillID      *uint                      `json:"bill_id"`
	Notes       string                     `json:"notes"`
	Items       []ServiceOrderItemResponse `json:"items,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

type ServiceOrderListResponse struct {
	Orders []ServiceOrderResponse `json:"orders"`
	Total  int                    `json:"total"`
}
