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

func newServiceCatalogUsecaseForTest(t *testing.T) (ServiceCatalogUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	uc := NewServiceCatalogUsecase(
		db,
		newTestLogger(),
		repository.NewServiceCatalogRepository(),
		repository.NewPatientRepository(),
	)
	return uc, db
}

func TestSetCurrentPriceKeepsSingleOpenVersion(t *testing.T) {
	uc, db := newServiceCatalogUsecaseForTest(t)
	ctx := context.Background()

	created, err := uc.CreateService(ctx, &dto.CreateServiceRequest{
		Name:  "Chest X-Ray",
		Price: "100.00",
	})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}

	if _, err := uc.SetCurrentPrice(ctx, created.ID, &dto.SetPriceRequest{Price: "150.00"}); err != nil {
		t.Fatalf("SetCurrentPrice returned error: %v", err)
	}
	if _, err := uc.SetCurrentPrice(ctx, created.ID, &dto.SetPriceRequest{Price: "175.00"}); err != nil {
		t.Fatalf("second SetCurrentPrice returned error: %v", err)
	}

	history, err := uc.GetPriceHistory(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetPriceHistory returned error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("price history length = %d, want 3", len(history))
	}

	open := 0
	for _, version := range history {
		if version.Current {
			open++
			if version.Price != "175" {
				t.Errorf("current price = %q, want 175", version.Price)
			}
		}
	}
	if open != 1 {
		t.Errorf("open version count = %d, want 1", open)
	}

	var openRows int64
	if err := db.Model(&entity.ServicePriceVersion{}).
		Where("service_id = ? AND expiry_date IS NULL", created.ID).
		Count(&openRows).Error; err != nil {
		t.Fatalf("failed to count open versions: %v", err)
	}
	if openRows != 1 {
		t.Errorf("open rows in storage = %d, want 1", openRows)
	}
}

func TestSetCurrentPriceUnknownService(t *testing.T) {
	uc, _ := newServiceCatalogUsecaseForTest(t)

	_, err := uc.SetCurrentPrice(context.Background(), 999, &dto.SetPriceRequest{Price: "10"})
	if !errors.Is(err, ErrServiceNotFound) {
		t.Errorf("error = %v, want ErrServiceNotFound", err)
	}
}

func TestAddOrderItemPricesFromCurrentVersion(t *testing.T) {
	uc, db := newServiceCatalogUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	svc, err := uc.CreateService(ctx, &dto.CreateServiceRequest{Name: "Consultation", Price: "150.00"})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}

	order, err := uc.CreateOrder(ctx, &dto.CreateServiceOrderRequest{PatientID: patient.ID})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	updated, err := uc.AddOrderItem(ctx, order.ID, &dto.AddOrderItemRequest{ServiceID: svc.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddOrderItem returned error: %v", err)
	}
	if updated.TotalAmount != "300" {
		t.Errorf("order total = %q, want 300", updated.TotalAmount)
	}
	if len(updated.Items) != 1 {
		t.Fatalf("order item count = %d, want 1", len(updated.Items))
	}
	if updated.Items[0].UnitPrice != "150" {
		t.Errorf("unit price = %q, want 150", updated.Items[0].UnitPrice)
	}

	// A later price change must not reprice the already captured line.
	if _, err := uc.SetCurrentPrice(ctx, svc.ID, &dto.SetPriceRequest{Price: "999.00"}); err != nil {
		t.Fatalf("SetCurrentPrice returned error: %v", err)
	}
	reloaded, err := uc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder returned error: %v", err)
	}
	if reloaded.TotalAmount != "300" {
		t.Errorf("order total after reprice = %q, want 300", reloaded.TotalAmount)
	}
}

func TestAddOrderItemWithoutCurrentPrice(t *testing.T) {
	uc, db := newServiceCatalogUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	svc, err := uc.CreateService(ctx, &dto.CreateServiceRequest{Name: "Unpriced"})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	order, err := uc.CreateOrder(ctx, &dto.CreateServiceOrderRequest{PatientID: patient.ID})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}

	_, err = uc.AddOrderItem(ctx, order.ID, &dto.AddOrderItemRequest{ServiceID: svc.ID})
	if !errors.Is(err, ErrNoCurrentPrice) {
		t.Errorf("error = %v, want ErrNoCurrentPrice", err)
	}
}

func TestUpdateOrderItemAppliesDeltaToTotal(t *testing.T) {
	uc, db := newServiceCatalogUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	svc, err := uc.CreateService(ctx, &dto.CreateServiceRequest{Name: "Dressing", Price: "50.00"})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	order, err := uc.CreateOrder(ctx, &dto.CreateServiceOrderRequest{PatientID: patient.ID})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	withItem, err := uc.AddOrderItem(ctx, order.ID, &dto.AddOrderItemRequest{ServiceID: svc.ID, Quantity: 2})
	if err != nil {
		t.Fatalf("AddOrderItem returned error: %v", err)
	}

	quantity := 5
	updated, err := uc.UpdateOrderItem(ctx, order.ID, withItem.Items[0].ID, &dto.UpdateOrderItemRequest{Quantity: &quantity})
	if err != nil {
		t.Fatalf("UpdateOrderItem returned error: %v", err)
	}
	if updated.TotalAmount != "250" {
		t.Errorf("order total = %q, want 250", updated.TotalAmount)
	}
	if updated.Items[0].TotalPrice != "250" {
		t.Errorf("line total = %q, want 250", updated.Items[0].TotalPrice)
	}

	// The response must reflect what was committed.
	reloaded, err := uc.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("GetOrder returned error: %v", err)
	}
	if reloaded.TotalAmount != updated.TotalAmount {
		t.Errorf("stored total = %q, response total = %q", reloaded.TotalAmount, updated.TotalAmount)
	}
}

func TestUpdateOrderItemOfOtherOrder(t *testing.T) {
	uc, db := newServiceCatalogUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	svc, err := uc.CreateService(ctx, &dto.CreateServiceRequest{Name: "Lab Panel", Price: "80.00"})
	if err != nil {
		t.Fatalf("CreateService returned error: %v", err)
	}
	first, err := uc.CreateOrder(ctx, &dto.CreateServiceOrderRequest{PatientID: patient.ID})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	second, err := uc.CreateOrder(ctx, &dto.CreateServiceOrderRequest{PatientID: patient.ID})
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	withItem, err := uc.AddOrderItem(ctx, first.ID, &dto.AddOrderItemRequest{ServiceID: svc.ID})
	if err != nil {
		t.Fatalf("AddOrderItem returned error: %v", err)
	}

	quantity := 2
	_, err = uc.UpdateOrderItem(ctx, second.ID, withItem.Items[0].ID, &dto.UpdateOrderItemRequest{Quantity: &quantity})
	if !errors.Is(err, ErrOrderItemNotFound) {
		t.Errorf("error = %v, want ErrOrderItemNotFound", err)
	}
}
