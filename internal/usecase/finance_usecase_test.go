package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newFinanceUsecaseForTest(t *testing.T) (FinanceUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewFinanceUsecase(db, newTestLogger(), repository.NewFinanceRepository()), db
}

func accountBalance(t *testing.T, db *gorm.DB, id uint) decimal.Decimal {
	t.Helper()

	var account entity.Account
	if err := db.First(&account, id).Error; err != nil {
		t.Fatalf("failed to reload account %d: %v", id, err)
	}
	return account.Balance
}

func TestPostTransactionAdjustsBalance(t *testing.T) {
	uc, db := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	account, err := uc.CreateAccount(ctx, &dto.CreateAccountRequest{
		Name:          "Main Cash",
		Type:          "cash",
		AccountNumber: "1000",
		Balance:       "100.00",
	})
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	if _, err := uc.PostTransaction(ctx, &dto.CreateTransactionRequest{
		AccountID: account.ID,
		Type:      "credit",
		Amount:    "50.00",
	}); err != nil {
		t.Fatalf("credit PostTransaction returned error: %v", err)
	}
	if got := accountBalance(t, db, account.ID); !got.Equal(decimal.NewFromInt(150)) {
		t.Errorf("balance after credit = %s, want 150", got)
	}

	// Debits may overdraw, there is no balance floor.
	if _, err := uc.PostTransaction(ctx, &dto.CreateTransactionRequest{
		AccountID: account.ID,
		Type:      "debit",
		Amount:    "300.00",
	}); err != nil {
		t.Fatalf("debit PostTransaction returned error: %v", err)
	}
	if got := accountBalance(t, db, account.ID); !got.Equal(decimal.NewFromInt(-150)) {
		t.Errorf("balance after debit = %s, want -150", got)
	}
}

func TestPostTransactionRejectsNonPositiveAmount(t *testing.T) {
	uc, _ := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	account, err := uc.CreateAccount(ctx, &dto.CreateAccountRequest{
		Name:          "Main Cash",
		Type:          "cash",
		AccountNumber: "1000",
	})
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	_, err = uc.PostTransaction(ctx, &dto.CreateTransactionRequest{
		AccountID: account.ID,
		Type:      "credit",
		Amount:    "-10",
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("error = %v, want ErrInvalidAmount", err)
	}
}

func TestCreateAccountRejectsDuplicateNumber(t *testing.T) {
	uc, _ := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.CreateAccount(ctx, &dto.CreateAccountRequest{
		Name:          "Main Cash",
		Type:          "cash",
		AccountNumber: "1000",
	}); err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}

	_, err := uc.CreateAccount(ctx, &dto.CreateAccountRequest{
		Name:          "Other Cash",
		Type:          "cash",
		AccountNumber: "1000",
	})
	if !errors.Is(err, ErrAccountNumberTaken) {
		t.Errorf("error = %v, want ErrAccountNumberTaken", err)
	}
}

func TestCompletePosTransactionPostsLedgerOnce(t *testing.T) {
	uc, db := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	account, err := uc.CreateAccount(ctx, &dto.CreateAccountRequest{
		Name:          "Main Cash",
		Type:          "cash",
		AccountNumber: "1000",
	})
	if err != nil {
		t.Fatalf("CreateAccount returned error: %v", err)
	}
	terminal, err := uc.CreateTerminal(ctx, &dto.CreatePosTerminalRequest{Name: "Front Desk"})
	if err != nil {
		t.Fatalf("CreateTerminal returned error: %v", err)
	}

	posTransaction, err := uc.CreatePosTransaction(ctx, &dto.CreatePosTransactionRequest{
		TerminalID:    terminal.ID,
		Amount:        "80.00",
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("CreatePosTransaction returned error: %v", err)
	}

	completed, err := uc.CompletePosTransaction(ctx, posTransaction.ID)
	if err != nil {
		t.Fatalf("CompletePosTransaction returned error: %v", err)
	}
	if completed.Status != entity.PosTransactionStatusCompleted {
		t.Errorf("status = %q, want completed", completed.Status)
	}
	if got := accountBalance(t, db, account.ID); !got.Equal(decimal.NewFromInt(80)) {
		t.Errorf("balance = %s, want 80", got)
	}

	// Completing again must not post a second ledger entry.
	if _, err := uc.CompletePosTransaction(ctx, posTransaction.ID); err != nil {
		t.Fatalf("second CompletePosTransaction returned error: %v", err)
	}
	var ledgerCount int64
	if err := db.Model(&entity.Transaction{}).Count(&ledgerCount).Error; err != nil {
		t.Fatalf("failed to count transactions: %v", err)
	}
	if ledgerCount != 1 {
		t.Errorf("ledger entry count = %d, want 1", ledgerCount)
	}
	if got := accountBalance(t, db, account.ID); !got.Equal(decimal.NewFromInt(80)) {
		t.Errorf("balance after repeat = %s, want 80", got)
	}
}

func TestCompletePosTransactionWithoutMatchingAccount(t *testing.T) {
	uc, _ := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	terminal, err := uc.CreateTerminal(ctx, &dto.CreatePosTerminalRequest{Name: "Front Desk"})
	if err != nil {
		t.Fatalf("CreateTerminal returned error: %v", err)
	}
	posTransaction, err := uc.CreatePosTransaction(ctx, &dto.CreatePosTransactionRequest{
		TerminalID:    terminal.ID,
		Amount:        "80.00",
		PaymentMethod: "card",
	})
	if err != nil {
		t.Fatalf("CreatePosTransaction returned error: %v", err)
	}

	_, err = uc.CompletePosTransaction(ctx, posTransaction.ID)
	if !errors.Is(err, ErrNoAccountForMethod) {
		t.Errorf("error = %v, want ErrNoAccountForMethod", err)
	}
}

func TestCancelPosTransaction(t *testing.T) {
	uc, _ := newFinanceUsecaseForTest(t)
	ctx := context.Background()

	terminal, err := uc.CreateTerminal(ctx, &dto.CreatePosTerminalRequest{Name: "Front Desk"})
	if err != nil {
		t.Fatalf("CreateTerminal returned error: %v", err)
	}
	posTransaction, err := uc.CreatePosTransaction(ctx, &dto.CreatePosTransactionRequest{
		TerminalID:    terminal.ID,
		Amount:        "25.00",
		PaymentMethod: "cash",
	})
	if err != nil {
		t.Fatalf("CreatePosTransaction returned error: %v", err)
	}

	cancelled, err := uc.CancelPosTransaction(ctx, posTransaction.ID)
	if err != nil {
		t.Fatalf("CancelPosTransaction returned error: %v", err)
	}
	if cancelled.Status != entity.PosTransactionStatusCancelled {
		t.Errorf("status = %q, want cancelled", cancelled.Status)
	}
}
