package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/repository"

	"gorm.io/gorm"
)

func newBillingUsecaseForTest(t *testing.T) (BillingUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	uc := NewBillingUsecase(
		db,
		newTestLogger(),
		repository.NewBillingRepository(),
		repository.NewPatientRepository(),
	)
	return uc, db
}

func TestCreateBillDerivesStatus(t *testing.T) {
	uc, db := newBillingUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")

	tests := []struct {
		name       string
		total      string
		paid       string
		wantStatus string
	}{
		{"nothing paid", "200.00", "", "pending"},
		{"partially paid", "200.00", "50.00", "partial"},
		{"fully paid", "200.00", "200.00", "paid"},
		{"overpaid", "200.00", "250.00", "paid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill, err := uc.CreateBill(ctx, &dto.CreateBillRequest{
				PatientID:   patient.ID,
				TotalAmount: tt.total,
				PaidAmount:  tt.paid,
			})
			if err != nil {
				t.Fatalf("CreateBill returned error: %v", err)
			}
			if bill.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", bill.Status, tt.wantStatus)
			}
		})
	}
}

func TestCreateBillWithItems(t *testing.T) {
	uc, db := newBillingUsecaseForTest(t)

	patient := seedPatient(t, db, "P-001")

	bill, err := uc.CreateBill(context.Background(), &dto.CreateBillRequest{
		PatientID:   patient.ID,
		TotalAmount: "120.00",
		Items: []dto.CreateBillItemRequest{
			{Description: "Consultation", Quantity: 1, UnitPrice: "70.00", TotalPrice: "70.00"},
			{Description: "Dressing", Quantity: 2, UnitPrice: "25.00", TotalPrice: "50.00"},
		},
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}
	if len(bill.Items) != 2 {
		t.Fatalf("bill item count = %d, want 2", len(bill.Items))
	}
	if bill.Items[1].TotalPrice != "50" {
		t.Errorf("second line total = %q, want 50", bill.Items[1].TotalPrice)
	}
}

func TestCreateBillUnknownPatient(t *testing.T) {
	uc, _ := newBillingUsecaseForTest(t)

	_, err := uc.CreateBill(context.Background(), &dto.CreateBillRequest{PatientID: 999})
	if !errors.Is(err, ErrPatientNotFound) {
		t.Errorf("error = %v, want ErrPatientNotFound", err)
	}
}

func TestRecordPaymentAccumulates(t *testing.T) {
	uc, db := newBillingUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	bill, err := uc.CreateBill(ctx, &dto.CreateBillRequest{
		PatientID:   patient.ID,
		TotalAmount: "200.00",
	})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	partial, err := uc.RecordPayment(ctx, bill.ID, &dto.RecordPaymentRequest{Amount: "50.00", PaymentMethod: "cash"})
	if err != nil {
		t.Fatalf("RecordPayment returned error: %v", err)
	}
	if partial.Status != "partial" {
		t.Errorf("status after first payment = %q, want partial", partial.Status)
	}

	settled, err := uc.RecordPayment(ctx, bill.ID, &dto.RecordPaymentRequest{Amount: "150.00"})
	if err != nil {
		t.Fatalf("second RecordPayment returned error: %v", err)
	}
	if settled.Status != "paid" {
		t.Errorf("status after second payment = %q, want paid", settled.Status)
	}
	if settled.PaidAmount != "200" {
		t.Errorf("paid amount = %q, want 200", settled.PaidAmount)
	}
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	uc, db := newBillingUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	bill, err := uc.CreateBill(ctx, &dto.CreateBillRequest{PatientID: patient.ID, TotalAmount: "100.00"})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	for _, amount := range []string{"0", "-5", "abc"} {
		_, err := uc.RecordPayment(ctx, bill.ID, &dto.RecordPaymentRequest{Amount: amount})
		if !errors.Is(err, ErrInvalidAmount) {
			t.Errorf("amount %q: error = %v, want ErrInvalidAmount", amount, err)
		}
	}
}

func TestUpdateBillStripeSucceededSettlesInFull(t *testing.T) {
	uc, db := newBillingUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	bill, err := uc.CreateBill(ctx, &dto.CreateBillRequest{PatientID: patient.ID, TotalAmount: "300.00"})
	if err != nil {
		t.Fatalf("CreateBill returned error: %v", err)
	}

	stripeStatus := "succeeded"
	updated, err := uc.UpdateBill(ctx, bill.ID, &dto.UpdateBillRequest{StripePaymentStatus: &stripeStatus})
	if err != nil {
		t.Fatalf("UpdateBill returned error: %v", err)
	}
	if updated.Status != "paid" {
		t.Errorf("status = %q, want paid", updated.Status)
	}
	if updated.PaidAmount != updated.TotalAmount {
		t.Errorf("paid amount = %q, want %q", updated.PaidAmount, updated.TotalAmount)
	}
}
