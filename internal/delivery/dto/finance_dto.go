package dto

type CreateAccountRequest struct {
	Name          string `json:"name" validate:"required,max=255"`
	Type          string `json:"type" validate:"required,oneof=cash bank receivable payable"`
	AccountNumber string `json:"account_number" validate:"required,max=50"`
	Balance       string `json:"balance" validate:"omitempty"`
}

type UpdateAccountRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=255"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreateTransactionRequest struct {
	AccountID       uint   `json:"account_id" validate:"required,min=1"`
	Type            string `json:"type" validate:"required,oneof=credit debit"`
	Amount          string `json:"amount" validate:"required"`
	Description     string `json:"description" validate:"omitempty,max=255"`
	Reference       string `json:"reference" validate:"omitempty,max=100"`
	TransactionDate string `json:"transaction_date"`
}

type CreatePosTerminalRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Location string `json:"location" validate:"omitempty,max=255"`
}

type UpdatePosTerminalRequest struct {
	Name     *string `json:"name" validate:"omitempty,max=100"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Status   *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type CreatePosTransactionRequest struct {
	TerminalID    uint   `json:"terminal_id" validate:"required,min=1"`
	PatientID     *uint  `json:"patient_id" validate:"omitempty,min=1"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required,max=30"`
	Reference     string `json:"reference" validate:"omitempty,max=100"`
}
