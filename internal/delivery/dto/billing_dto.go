package dto

import "time"

// Request DTOs

type CreateBillRequest struct {
	PatientID     uint                    `json:"patient_id" validate:"required,min=1"`
	TotalAmount   string                  `json:"total_amount" validate:"omitempty"`
	PaidAmount    string                  `json:"paid_amount" validate:"omitempty"`
	PaymentMethod string                  `json:"payment_method" validate:"omitempty,max=30"`
	DueDate       string                  `json:"due_date"`
	Items         []CreateBillItemRequest `json:"items" validate:"omitempty,dive"`
}

type CreateBillItemRequest struct {
	Description string `json:"description" validate:"required,max=255"`
	Quantity    int    `json:"quantity" validate:"omitempty,min=1"`
	UnitPrice   string `json:"unit_price" validate:"omitempty"`
	TotalPrice  string `json:"total_price" validate:"omitempty"`
}

type UpdateBillRequest struct {
	TotalAmount         *string `json:"total_amount"`
	PaidAmount          *string `json:"paid_amount"`
	PaymentMethod       *string `json:"payment_method" validate:"omitempty,max=30"`
	StripePaymentStatus *string `json:"stripe_payment_status" validate:"omitempty,max=30"`
	DueDate             *string `json:"due_date"`
}

type RecordPaymentRequest struct {
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,max=30"`
}

// Response DTOs

type BillItemResponse struct {
	ID          uint   `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
	TotalPrice  string `json:"total_price"`
}

type BillResponse struct {
	ID                  uint               `json:"id"`
	PatientID           uint               `json:"patient_id"`
	PatientName         string             `json:"patient_name,omitempty"`
	TotalAmount         string             `json:"total_amount"`
	PaidAmount          string             `json:"paid_amount"`
	Status              string             `json:"status"`
	PaymentMethod       string             `json:"payment_method"`
	StripePaymentStatus string             `json:"stripe_payment_status"`
	DueDate             *time.Time         `json:"due_date"`
	Items               []BillItemResponse `json:"items,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

type BillListResponse struct {
	Bills []BillResponse `json:"bills"`
	Total int            `json:"total"`
}
