package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is a billable catalog entry (consultation, procedure, test, ...).
type Service struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Name                string    `gorm:"type:varchar(255);not null" json:"name"`
	Category            string    `gorm:"type:varchar(100)" json:"category"`
	Description         string    `gorm:"type:text" json:"description"`
	Duration            int       `gorm:"not null;default:0" json:"duration"`
	Status              string    `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	RequiresDoctor      bool      `gorm:"not null;default:false" json:"requires_doctor"`
	RequiresAppointment bool      `gorm:"not null;default:false" json:"requires_appointment"`
	Taxable             bool      `gorm:"not null;default:false" json:"taxable"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	PriceVersions []ServicePriceVersion `gorm:"foreignKey:ServiceID" json:"price_versions,omitempty"`
}

func (Service) TableName() string {
	return "services"
}

// ServicePriceVersion is one price of a service over a validity window.
// The version with a nil ExpiryDate is the current price; at most one per
// service may be current at a time.
type ServicePriceVersion struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ServiceID     uint            `gorm:"not null;index" json:"service_id"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	EffectiveDate time.Time       `gorm:"not null" json:"effective_date"`
	ExpiryDate    *time.Time      `json:"expiry_date"`
	Year          int             `gorm:"not null;default:0" json:"year"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
}

func (ServicePriceVersion) TableName() string {
	return "service_price_versions"
}

// IsCurrent reports whether this version is the open (unexpired) price.
func (v *ServicePriceVersion) IsCurrent() bool {
	return v.ExpiryDate == nil
}

// ServiceOrderStatus represents the status of a service order.
type ServiceOrderStatus string

const (
	ServiceOrderStatusPending   ServiceOrderStatus = "pending"
	ServiceOrderStatusCompleted ServiceOrderStatus = "completed"
	ServiceOrderStatusCancelled ServiceOrderStatus = "cancelled"
)

// ServiceOrder is an itemized, billable collection of services ordered for a
// patient. TotalAmount is a running sum maintained incrementally as items are
// added or updated.
type ServiceOrder struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	PatientID   uint               `gorm:"not null;index" json:"patient_id"`
	DoctorID    *uint              `gorm:"index" json:"doctor_id"`
	Status      ServiceOrderStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalAmount decimal.Decimal    `gorm:"type:decimal(10,2);not null;default:0" json:"total_amount"`
	BillID      *uint              `gorm:"index" json:"bill_id"`
	Notes       string             `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient            `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Items   []ServiceOrderItem `gorm:"foreignKey:ServiceOrderID" json:"items,omitempty"`
}

func (ServiceOrder) TableName() string {
	return "service_orders"
}

// ServiceOrderItem is a line on a service order, priced from a specific
// price version.
type ServiceOrderItem struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	ServiceOrderID        uint            `gorm:"not null;index" json:"service_order_id"`
	ServiceID             uint            `gorm:"not null;index" json:"service_id"`
	ServicePriceVersionID uint            `gorm:"not null" json:"service_price_version_id"`
	Quantity              int             `gorm:"not null;default:1" json:"quantity"`
	UnitPrice             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"unit_price"`
	TotalPrice            decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"total_price"`
	Status                string          `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (ServiceOrderItem) TableName() string {
	return "service_order_items"
}
