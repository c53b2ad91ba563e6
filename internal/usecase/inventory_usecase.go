package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/converter"
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrItemNotFound     = errors.New("inventory item not found")
	ErrTransferNotFound = errors.New("transfer not found")
)

type InventoryUsecase interface {
	CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*entity.PharmacyStore, error)
	GetStores(ctx context.Context) ([]entity.PharmacyStore, error)
	UpdateStore(ctx context.Context, id uint, req *dto.UpdateStoreRequest) (*entity.PharmacyStore, error)

	CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error)
	GetItem(ctx context.Context, id uint) (*dto.InventoryItemResponse, error)
	GetItems(ctx context.Context) (*dto.InventoryItemListResponse, error)
	GetLowStockItems(ctx context.Context) (*dto.InventoryItemListResponse, error)
	UpdateItem(ctx context.Context, id uint, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error)

	CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*dto.TransferResponse, error)
	GetTransfers(ctx context.Context) ([]dto.TransferResponse, error)
	UpdateTransfer(ctx context.Context, id uint, req *dto.UpdateTransferRequest) (*dto.TransferResponse, error)
}

type inventoryUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	inventoryRepo repository.InventoryRepository
}

func NewInventoryUsecase(db *gorm.DB, log *logrus.Logger, inventoryRepo repository.InventoryRepository) InventoryUsecase {
	return &inventoryUsecase{
		db:            db,
		log:           log,
		inventoryRepo: inventoryRepo,
	}
}

func (u *inventoryUsecase) CreateStore(ctx context.Context, req *dto.CreateStoreRequest) (*entity.PharmacyStore, error) {
	store := &entity.PharmacyStore{
		Name:     req.Name,
		Location: req.Location,
		Status:   "active",
	}

	if err := u.inventoryRepo.CreateStore(u.db.WithContext(ctx), store); err != nil {
		u.log.Warnf("Failed to create store: %+v", err)
		return nil, err
	}

	return store, nil
}

func (u *inventoryUsecase) GetStores(ctx context.Context) ([]entity.PharmacyStore, error) {
	stores, err := u.inventoryRepo.FindAllStores(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find stores: %+v", err)
		return nil, err
	}

	return stores, nil
}

func (u *inventoryUsecase) UpdateStore(ctx context.Context, id uint, req *dto.UpdateStoreRequest) (*entity.PharmacyStore, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	store, err := u.inventoryRepo.FindStoreByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find store %d: %+v", id, err)
		return nil, err
	}
	if store == nil {
		return nil, ErrStoreNotFound
	}

	if req.Name != nil {
		store.Name = *req.Name
	}
	if req.Location != nil {
		store.Location = *req.Location
	}
	if req.Status != nil {
		store.Status = *req.Status
	}

	if err := u.inventoryRepo.SaveStore(tx, store); err != nil {
		u.log.Warnf("Failed to update store %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return store, nil
}

func (u *inventoryUsecase) CreateItem(ctx context.Context, req *dto.CreateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	cost := decimal.Zero
	if req.Cost != "" {
		var err error
		cost, err = decimal.NewFromString(req.Cost)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	var expiryDate *time.Time
	if req.ExpiryDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		expiryDate = &parsed
	}

	if req.StoreID != nil {
		store, err := u.inventoryRepo.FindStoreByID(tx, *req.StoreID)
		if err != nil {
			u.log.Warnf("Failed to find store %d: %+v", *req.StoreID, err)
			return nil, err
		}
		if store == nil {
			return nil, ErrStoreNotFound
		}
	}

	item := &entity.InventoryItem{
		Name:         req.Name,
		Category:     req.Category,
		StoreID:      req.StoreID,
		Quantity:     req.Quantity,
		Unit:         req.Unit,
		ReorderLevel: req.ReorderLevel,
		Location:     req.Location,
		Cost:         cost,
		ExpiryDate:   expiryDate,
		BatchNumber:  req.BatchNumber,
		Manufacturer: req.Manufacturer,
	}

	if err := u.inventoryRepo.CreateItem(tx, item); err != nil {
		u.log.Warnf("Failed to create inventory item: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) GetItem(ctx context.Context, id uint) (*dto.InventoryItemResponse, error) {
	item, err := u.inventoryRepo.FindItemByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find item %d: %+v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) GetItems(ctx context.Context) (*dto.InventoryItemListResponse, error) {
	items, err := u.inventoryRepo.FindAllItems(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find items: %+v", err)
		return nil, err
	}

	return &dto.InventoryItemListResponse{
		Items: converter.InventoryItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) GetLowStockItems(ctx context.Context) (*dto.InventoryItemListResponse, error) {
	items, err := u.inventoryRepo.FindLowStockItems(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find low stock items: %+v", err)
		return nil, err
	}

	return &dto.InventoryItemListResponse{
		Items: converter.InventoryItemsToResponses(items),
		Total: len(items),
	}, nil
}

func (u *inventoryUsecase) UpdateItem(ctx context.Context, id uint, req *dto.UpdateInventoryItemRequest) (*dto.InventoryItemResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.inventoryRepo.FindItemByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find item %d: %+v", id, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.StoreID != nil {
		item.StoreID = req.StoreID
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Unit != nil {
		item.Unit = *req.Unit
	}
	if req.ReorderLevel != nil {
		item.ReorderLevel = *req.ReorderLevel
	}
	if req.Location != nil {
		item.Location = *req.Location
	}
	if req.Cost != nil {
		cost, err := decimal.NewFromString(*req.Cost)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		item.Cost = cost
	}
	if req.ExpiryDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.ExpiryDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		item.ExpiryDate = &parsed
	}
	if req.BatchNumber != nil {
		item.BatchNumber = *req.BatchNumber
	}
	if req.Manufacturer != nil {
		item.Manufacturer = *req.Manufacturer
	}

	if err := u.inventoryRepo.SaveItem(tx, item); err != nil {
		u.log.Warnf("Failed to update item %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.InventoryItemToResponse(item), nil
}

func (u *inventoryUsecase) CreateTransfer(ctx context.Context, req *dto.CreateTransferRequest) (*dto.TransferResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	item, err := u.inventoryRepo.FindItemByID(tx, req.ItemID)
	if err != nil {
		u.log.Warnf("Failed to find item %d: %+v", req.ItemID, err)
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	// Persist as pending first; a requested completed state goes through the
	// guarded completion path below so stock moves exactly once.
	status := entity.TransferStatusPending
	if req.Status != "" && entity.TransferStatus(req.Status) != entity.TransferStatusCompleted {
		status = entity.TransferStatus(req.Status)
	}

	transfer := &entity.InventoryTransfer{
		ItemID:             req.ItemID,
		SourceStoreID:      req.SourceStoreID,
		DestinationStoreID: req.DestinationStoreID,
		Quantity:           req.Quantity,
		Status:             status,
		Notes:              req.Notes,
	}

	if err := u.inventoryRepo.CreateTransfer(tx, transfer); err != nil {
		u.log.Warnf("Failed to create transfer: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// A transfer created directly in completed state still moves the stock
	if entity.TransferStatus(req.Status) == entity.TransferStatusCompleted {
		return u.completeTransfer(ctx, transfer.ID)
	}

	transfer.Item = *item
	return converter.TransferToResponse(transfer), nil
}

func (u *inventoryUsecase) GetTransfers(ctx context.Context) ([]dto.TransferResponse, error) {
	transfers, err := u.inventoryRepo.FindAllTransfers(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find transfers: %+v", err)
		return nil, err
	}

	return converter.TransfersToResponses(transfers), nil
}

func (u *inventoryUsecase) UpdateTransfer(ctx context.Context, id uint, req *dto.UpdateTransferRequest) (*dto.TransferResponse, error) {
	if req.Status != nil && entity.TransferStatus(*req.Status) == entity.TransferStatusCompleted {
		return u.completeTransfer(ctx, id)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transfer, err := u.inventoryRepo.FindTransferByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find transfer %d: %+v", id, err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}

	if req.Status != nil {
		transfer.Status = entity.TransferStatus(*req.Status)
	}
	if req.Notes != nil {
		transfer.Notes = *req.Notes
	}
	if req.CompletedDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.CompletedDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		transfer.CompletedDate = &parsed
	}

	if err := u.inventoryRepo.SaveTransfer(tx, transfer); err != nil {
		u.log.Warnf("Failed to update transfer %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.TransferToResponse(transfer), nil
}

// completeTransfer performs the stock movement exactly once. The guarded
// status flip wins or loses atomically, so a transfer completed twice moves
// stock only on the first call. The source decrement floors at zero and the
// destination side either tops up an item with the same name or creates a
// copy in the destination store.
func (u *inventoryUsecase) completeTransfer(ctx context.Context, id uint) (*dto.TransferResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	transfer, err := u.inventoryRepo.FindTransferByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find transfer %d: %+v", id, err)
		return nil, err
	}
	if transfer == nil {
		return nil, ErrTransferNotFound
	}

	now := time.Now()
	affected, err := u.inventoryRepo.MarkTransferCompleted(tx, id, now)
	if err != nil {
		u.log.Warnf("Failed to complete transfer %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Already completed, nothing more to move
		return converter.TransferToResponse(transfer), nil
	}

	sourceItem, err := u.inventoryRepo.FindItemByID(tx, transfer.ItemID)
	if err != nil {
		u.log.Warnf("Failed to find transfer item %d: %+v", transfer.ItemID, err)
		return nil, err
	}
	if sourceItem == nil {
		return nil, ErrItemNotFound
	}

	if err := u.inventoryRepo.DecrementItemQuantity(tx, sourceItem.ID, transfer.Quantity); err != nil {
		u.log.Warnf("Failed to decrement item %d: %+v", sourceItem.ID, err)
		return nil, err
	}

	destItem, err := u.inventoryRepo.FindItemByNameAndStore(tx, sourceItem.Name, transfer.DestinationStoreID)
	if err != nil {
		u.log.Warnf("Failed to find destination item: %+v", err)
		return nil, err
	}

	if destItem != nil {
		if err := u.inventoryRepo.IncrementItemQuantity(tx, destItem.ID, transfer.Quantity); err != nil {
			u.log.Warnf("Failed to increment item %d: %+v", destItem.ID, err)
			return nil, err
		}
	} else {
		destStoreID := transfer.DestinationStoreID
		newItem := &entity.InventoryItem{
			Name:         sourceItem.Name,
			Category:     sourceItem.Category,
			StoreID:      &destStoreID,
			Quantity:     transfer.Quantity,
			Unit:         sourceItem.Unit,
			ReorderLevel: sourceItem.ReorderLevel,
			Cost:         sourceItem.Cost,
			ExpiryDate:   sourceItem.ExpiryDate,
			BatchNumber:  sourceItem.BatchNumber,
			Manufacturer: sourceItem.Manufacturer,
		}
		if err := u.inventoryRepo.CreateItem(tx, newItem); err != nil {
			u.log.Warnf("Failed to create destination item: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Completed transfer %d: moved %d x item %d to store %d",
		id, transfer.Quantity, transfer.ItemID, transfer.DestinationStoreID)

	transfer.Status = entity.TransferStatusCompleted
	transfer.CompletedDate = &now
	transfer.Item = *sourceItem
	return converter.TransferToResponse(transfer), nil
}
