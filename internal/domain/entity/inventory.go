package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PharmacyStore is a physical stock location (main pharmacy, ward store, ...).
type PharmacyStore struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PharmacyStore) TableName() string {
	return "pharmacy_stores"
}

// InventoryItem is a stocked item, optionally scoped to a pharmacy store.
type InventoryItem struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(255);not null;index" json:"name"`
	Category     string          `gorm:"type:varchar(100)" json:"category"`
	StoreID      *uint           `gorm:"index" json:"store_id"`
	Quantity     int             `gorm:"not null;default:0" json:"quantity"`
	Unit         string          `gorm:"type:varchar(30)" json:"unit"`
	ReorderLevel int             `gorm:"not null;default:0" json:"reorder_level"`
	Location     string          `gorm:"type:varchar(100)" json:"location"`
	Cost         decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"cost"`
	ExpiryDate   *time.Time      `json:"expiry_date"`
	BatchNumber  string          `gorm:"type:varchar(100)" json:"batch_number"`
	Manufacturer string          `gorm:"type:varchar(255)" json:"manufacturer"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Store *PharmacyStore `gorm:"foreignKey:StoreID" json:"store,omitempty"`
}

func (InventoryItem) TableName() string {
	return "inventory_items"
}

// IsLowStock reports whether the item has fallen to or below its reorder level.
func (i *InventoryItem) IsLowStock() bool {
	return i.Quantity <= i.ReorderLevel
}

// TransferStatus represents the status of a stock transfer between stores.
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusInTransit TransferStatus = "in-transit"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// InventoryTransfer moves quantity of an item from one store to another.
// Completing the transfer performs the stock bookkeeping.
type InventoryTransfer struct {
	ID                 uint           `gorm:"primaryKey" json:"id"`
	ItemID             uint           `gorm:"not null;index" json:"item_id"`
	SourceStoreID      uint           `gorm:"not null;index" json:"source_store_id"`
	DestinationStoreID uint           `gorm:"not null;index" json:"destination_store_id"`
	Quantity           int            `gorm:"not null" json:"quantity"`
	Status             TransferStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CompletedDate      *time.Time     `json:"completed_date"`
	Notes              string         `gorm:"type:text" json:"notes"`
	CreatedAt          time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Item             InventoryItem `gorm:"foreignKey:ItemID" json:"item,omitempty"`
	SourceStore      PharmacyStore `gorm:"foreignKey:SourceStoreID" json:"source_store,omitempty"`
	DestinationStore PharmacyStore `gorm:"foreignKey:DestinationStoreID" json:"destination_store,omitempty"`
}

func (InventoryTransfer) TableName() string {
	return "inventory_transfers"
}

func (t *InventoryTransfer) IsCompleted() bool {
	return t.Status == TransferStatusCompleted
}
