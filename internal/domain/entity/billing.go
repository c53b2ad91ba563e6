package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus is derived from paid amount vs total, never set directly.
type BillStatus string

const (
	BillStatusPending BillStatus = "pending"
	BillStatusPartial BillStatus = "partial"
	BillStatusPaid    BillStatus = "paid"
)

// StripeStatusSucceeded is the gateway status that forces a bill to paid.
const StripeStatusSucceeded = "succeeded"

// Bill is an invoice against a patient.
type Bill struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	PatientID             uint            `gorm:"not null;index" json:"patient_id"`
	TotalAmount           decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	PaidAmount            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"paid_amount"`
	Status                BillStatus      `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	PaymentMethod         string          `gorm:"type:varchar(30)" json:"payment_method"`
	StripePaymentIntentID string          `gorm:"type:varchar(255)" json:"stripe_payment_intent_id"`
	StripePaymentStatus   string          `gorm:"type:varchar(30)" json:"stripe_payment_status"`
	DueDate               *time.Time      `json:"due_date"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

func (Bill) TableName() string {
	return "bills"
}

// RecalculateStatus derives the bill status from the paid amount:
// paid >= total => paid, 0 < paid < total => partial, else pending.
func (b *Bill) RecalculateStatus() {
	switch {
	case !b.PaidAmount.IsPositive():
		b.Status = BillStatusPending
	case b.PaidAmount.GreaterThanOrEqual(b.TotalAmount):
		b.Status = BillStatusPaid
	default:
		b.Status = BillStatusPartial
	}
}

func (b *Bill) IsPaid() bool {
	return b.Status == BillStatusPaid
}

// BillItem is a line on a bill. TotalPrice is caller-supplied and not
// recomputed from quantity and unit price.
type BillItem struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	BillID      uint            `gorm:"not null;index" json:"bill_id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Quantity    int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	TotalPrice  decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (BillItem) TableName() string {
	return "bill_items"
}
