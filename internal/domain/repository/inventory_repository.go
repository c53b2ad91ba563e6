package repository

import (
	"time"

	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type InventoryRepository interface {
	CreateStore(db *gorm.DB, store *entity.PharmacyStore) error
	FindStoreByID(db *gorm.DB, id uint) (*entity.PharmacyStore, error)
	FindAllStores(db *gorm.DB) ([]entity.PharmacyStore, error)
	SaveStore(db *gorm.DB, store *entity.PharmacyStore) error

	CreateItem(db *gorm.DB, item *entity.InventoryItem) error
	FindItemByID(db *gorm.DB, id uint) (*entity.InventoryItem, error)
	FindAllItems(db *gorm.DB) ([]entity.InventoryItem, error)
	FindLowStockItems(db *gorm.DB) ([]entity.InventoryItem, error)
	FindItemByNameAndStore(db *gorm.DB, name string, storeID uint) (*entity.InventoryItem, error)
	SaveItem(db *gorm.DB, item *entity.InventoryItem) error

	// DecrementItemQuantity subtracts quantity from an item, flooring at zero.
	DecrementItemQuantity(db *gorm.DB, itemID uint, quantity int) error

	// IncrementItemQuantity adds quantity to an item.
	IncrementItemQuantity(db *gorm.DB, itemID uint, quantity int) error

	CreateTransfer(db *gorm.DB, transfer *entity.InventoryTransfer) error
	FindTransferByID(db *gorm.DB, id uint) (*entity.InventoryTransfer, error)
	FindAllTransfers(db *gorm.DB) ([]entity.InventoryTransfer, error)
	SaveTransfer(db *gorm.DB, transfer *entity.InventoryTransfer) error

	// MarkTransferCompleted atomically completes a transfer that is not yet
	// completed. Returns affected rows: 1 = success, 0 = already completed.
	MarkTransferCompleted(db *gorm.DB, id uint, completedDate time.Time) (int64, error)
}
