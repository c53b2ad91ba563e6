package repository

import (
	"errors"
	"time"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type inventoryRepository struct{}

func NewInventoryRepository() domainRepo.InventoryRepository {
	return &inventoryRepository{}
}

func (r *inventoryRepository) CreateStore(db *gorm.DB, store *entity.PharmacyStore) error {
	return db.Create(store).Error
}

func (r *inventoryRepository) FindStoreByID(db *gorm.DB, id uint) (*entity.PharmacyStore, error) {
	var store entity.PharmacyStore
	err := db.Where("id = ?", id).First(&store).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &store, nil
}

func (r *inventoryRepository) FindAllStores(db *gorm.DB) ([]entity.PharmacyStore, error) {
	var stores []entity.PharmacyStore
	err := db.Order("name ASC").Find(&stores).Error
	if err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *inventoryRepository) SaveStore(db *gorm.DB, store *entity.PharmacyStore) error {
	return db.Save(store).Error
}

func (r *inventoryRepository) CreateItem(db *gorm.DB, item *entity.InventoryItem) error {
	return db.Create(item).Error
}

func (r *inventoryRepository) FindItemByID(db *gorm.DB, id uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) FindAllItems(db *gorm.DB) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := db.Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) FindLowStockItems(db *gorm.DB) ([]entity.InventoryItem, error) {
	var items []entity.InventoryItem
	err := db.Where("quantity <= reorder_level").Order("name ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepository) FindItemByNameAndStore(db *gorm.DB, name string, storeID uint) (*entity.InventoryItem, error) {
	var item entity.InventoryItem
	err := db.Where("name = ? AND store_id = ?", name, storeID).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepository) SaveItem(db *gorm.DB, item *entity.InventoryItem) error {
	return db.Save(item).Error
}

// DecrementItemQuantity floors at zero in the statement itself so a transfer
// larger than the remaining stock empties the item instead of going negative.
func (r *inventoryRepository) DecrementItemQuantity(db *gorm.DB, itemID uint, quantity int) error {
	return db.Model(&entity.InventoryItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr(
			"CASE WHEN quantity >= ? THEN quantity - ? ELSE 0 END", quantity, quantity,
		)).Error
}

func (r *inventoryRepository) IncrementItemQuantity(db *gorm.DB, itemID uint, quantity int) error {
	return db.Model(&entity.InventoryItem{}).
		Where("id = ?", itemID).
		Update("quantity", gorm.Expr("quantity + ?", quantity)).Error
}

func (r *inventoryRepository) CreateTransfer(db *gorm.DB, transfer *entity.InventoryTransfer) error {
	return db.Create(transfer).Error
}

func (r *inventoryRepository) FindTransferByID(db *gorm.DB, id uint) (*entity.InventoryTransfer, error) {
	var transfer entity.InventoryTransfer
	err := db.Preload("Item").Preload("SourceStore").Preload("DestinationStore").
		Where("id = ?", id).First(&transfer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &transfer, nil
}

func (r *inventoryRepository) FindAllTransfers(db *gorm.DB) ([]entity.InventoryTransfer, error) {
	var transfers []entity.InventoryTransfer
	err := db.Preload("Item").Preload("SourceStore").Preload("DestinationStore").
		Order("created_at DESC").Find(&transfers).Error
	if err != nil {
		return nil, err
	}
	return transfers, nil
}

func (r *inventoryRepository) SaveTransfer(db *gorm.DB, transfer *entity.InventoryTransfer) error {
	return db.Save(transfer).Error
}

// MarkTransferCompleted guards against double completion: the stock
// bookkeeping must run exactly once per transfer.
func (r *inventoryRepository) MarkTransferCompleted(db *gorm.DB, id uint, completedDate time.Time) (int64, error) {
	result := db.Model(&entity.InventoryTransfer{}).
		Where("id = ? AND status != ?", id, entity.TransferStatusCompleted).
		Updates(map[string]interface{}{
			"status":         entity.TransferStatusCompleted,
			"completed_date": completedDate,
		})
	return result.RowsAffected, result.Error
}
