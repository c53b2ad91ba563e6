package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/repository"

	"gorm.io/gorm"
)

func newInventoryUsecaseForTest(t *testing.T) (InventoryUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewInventoryUsecase(db, newTestLogger(), repository.NewInventoryRepository()), db
}

func seedStore(t *testing.T, db *gorm.DB, name string) *entity.PharmacyStore {
	t.Helper()

	store := &entity.PharmacyStore{Name: name, Status: "active"}
	if err := db.Create(store).Error; err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}
	return store
}

func seedItem(t *testing.T, db *gorm.DB, name string, storeID uint, quantity, reorderLevel int) *entity.InventoryItem {
	t.Helper()

	item := &entity.InventoryItem{
		Name:         name,
		StoreID:      &storeID,
		Quantity:     quantity,
		ReorderLevel: reorderLevel,
		Unit:         "box",
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to seed item: %v", err)
	}
	return item
}

func itemQuantity(t *testing.T, db *gorm.DB, id uint) int {
	t.Helper()

	var item entity.InventoryItem
	if err := db.First(&item, id).Error; err != nil {
		t.Fatalf("failed to reload item %d: %v", id, err)
	}
	return item.Quantity
}

func TestCompleteTransferMovesStockToNewItem(t *testing.T) {
	uc, db := newInventoryUsecaseForTest(t)
	ctx := context.Background()

	source := seedStore(t, db, "Main Pharmacy")
	dest := seedStore(t, db, "Ward Store")
	item := seedItem(t, db, "Paracetamol 500mg", source.ID, 10, 2)

	resp, err := uc.CreateTransfer(ctx, &dto.CreateTransferRequest{
		ItemID:             item.ID,
		SourceStoreID:      source.ID,
		DestinationStoreID: dest.ID,
		Quantity:           4,
		Status:             "completed",
	})
	if err != nil {
		t.Fatalf("CreateTransfer returned error: %v", err)
	}
	if resp.Status != string(entity.TransferStatusCompleted) {
		t.Errorf("transfer status = %q, want completed", resp.Status)
	}
	if resp.CompletedDate == nil {
		t.Error("completed date not set")
	}

	if got := itemQuantity(t, db, item.ID); got != 6 {
		t.Errorf("source quantity = %d, want 6", got)
	}

	var destItem entity.InventoryItem
	if err := db.Where("name = ? AND store_id = ?", item.Name, dest.ID).First(&destItem).Error; err != nil {
		t.Fatalf("destination item not created: %v", err)
	}
	if destItem.Quantity != 4 {
		t.Errorf("destination quantity = %d, want 4", destItem.Quantity)
	}
}

func TestCompleteTransferTopsUpExistingItem(t *testing.T) {
	uc, db := newInventoryUsecaseForTest(t)
	ctx := context.Background()

	source := seedStore(t, db, "Main Pharmacy")
	dest := seedStore(t, db, "Ward Store")
	item := seedItem(t, db, "Gauze", source.ID, 20, 5)
	destItem := seedItem(t, db, "Gauze", dest.ID, 3, 5)

	resp, err := uc.CreateTransfer(ctx, &dto.CreateTransferRequest{
		ItemID:             item.ID,
		SourceStoreID:      source.ID,
		DestinationStoreID: dest.ID,
		Quantity:           7,
	})
	if err != nil {
		t.Fatalf("CreateTransfer returned error: %v", err)
	}
	if resp.Status != string(entity.TransferStatusPending) {
		t.Fatalf("transfer status = %q, want pending", resp.Status)
	}

	status := string(entity.TransferStatusCompleted)
	if _, err := uc.UpdateTransfer(ctx, resp.ID, &dto.UpdateTransferRequest{Status: &status}); err != nil {
		t.Fatalf("UpdateTransfer returned error: %v", err)
	}

	if got := itemQuantity(t, db, item.ID); got != 13 {
		t.Errorf("source quantity = %d, want 13", got)
	}
	if got := itemQuantity(t, db, destItem.ID); got != 10 {
		t.Errorf("destination quantity = %d, want 10", got)
	}

	// Completing again must not move stock a second time.
	if _, err := uc.UpdateTransfer(ctx, resp.ID, &dto.UpdateTransferRequest{Status: &status}); err != nil {
		t.Fatalf("second UpdateTransfer returned error: %v", err)
	}
	if got := itemQuantity(t, db, item.ID); got != 13 {
		t.Errorf("source quantity after repeat = %d, want 13", got)
	}
	if got := itemQuantity(t, db, destItem.ID); got != 10 {
		t.Errorf("destination quantity after repeat = %d, want 10", got)
	}
}

func TestCompleteTransferFloorsSourceAtZero(t *testing.T) {
	uc, db := newInventoryUsecaseForTest(t)
	ctx := context.Background()

	source := seedStore(t, db, "Main Pharmacy")
	dest := seedStore(t, db, "Ward Store")
	item := seedItem(t, db, "Insulin", source.ID, 5, 2)

	_, err := uc.CreateTransfer(ctx, &dto.CreateTransferRequest{
		ItemID:             item.ID,
		SourceStoreID:      source.ID,
		DestinationStoreID: dest.ID,
		Quantity:           50,
		Status:             "completed",
	})
	if err != nil {
		t.Fatalf("CreateTransfer returned error: %v", err)
	}

	if got := itemQuantity(t, db, item.ID); got != 0 {
		t.Errorf("source quantity = %d, want 0", got)
	}
}

func TestCreateTransferUnknownItem(t *testing.T) {
	uc, db := newInventoryUsecaseForTest(t)

	source := seedStore(t, db, "Main Pharmacy")
	dest := seedStore(t, db, "Ward Store")

	_, err := uc.CreateTransfer(context.Background(), &dto.CreateTransferRequest{
		ItemID:             999,
		SourceStoreID:      source.ID,
		DestinationStoreID: dest.ID,
		Quantity:           1,
	})
	if !errors.Is(err, ErrItemNotFound) {
		t.Errorf("error = %v, want ErrItemNotFound", err)
	}
}

func TestGetLowStockItems(t *testing.T) {
	uc, db := newInventoryUsecaseForTest(t)

	store := seedStore(t, db, "Main Pharmacy")
	seedItem(t, db, "Plenty", store.ID, 100, 10)
	low := seedItem(t, db, "Almost out", store.ID, 3, 10)

	resp, err := uc.GetLowStockItems(context.Background())
	if err != nil {
		t.Fatalf("GetLowStockItems returned error: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("low stock total = %d, want 1", resp.Total)
	}
	if resp.Items[0].ID != low.ID {
		t.Errorf("low stock item = %d, want %d", resp.Items[0].ID, low.ID)
	}
	if !resp.Items[0].LowStock {
		t.Error("low_stock flag not set")
	}
}
