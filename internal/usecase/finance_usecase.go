package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound        = errors.New("account not found")
	ErrAccountNumberTaken     = errors.New("account number already exists")
	ErrTerminalNotFound       = errors.New("pos terminal not found")
	ErrPosTransactionNotFound = errors.New("pos transaction not found")
	ErrNoAccountForMethod     = errors.New("no active account for payment method")
)

type FinanceUsecase interface {
	CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*entity.Account, error)
	GetAccount(ctx context.Context, id uint) (*entity.Account, error)
	GetAccounts(ctx context.Context) ([]entity.Account, error)
	UpdateAccount(ctx context.Context, id uint, req *dto.UpdateAccountRequest) (*entity.Account, error)

	PostTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*entity.Transaction, error)
	GetTransactions(ctx context.Context) ([]entity.Transaction, error)
	GetAccountTransactions(ctx context.Context, accountID uint) ([]entity.Transaction, error)

	CreateTerminal(ctx context.Context, req *dto.CreatePosTerminalRequest) (*entity.PosTerminal, error)
	GetTerminals(ctx context.Context) ([]entity.PosTerminal, error)
	UpdateTerminal(ctx context.Context, id uint, req *dto.UpdatePosTerminalRequest) (*entity.PosTerminal, error)

	CreatePosTransaction(ctx context.Context, req *dto.CreatePosTransactionRequest) (*entity.PosTransaction, error)
	GetPosTransactions(ctx context.Context) ([]entity.PosTransaction, error)
	CompletePosTransaction(ctx context.Context, id uint) (*entity.PosTransaction, error)
	CancelPosTransaction(ctx context.Context, id uint) (*entity.PosTransaction, error)
}

type financeUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	financeRepo repository.FinanceRepository
}

func NewFinanceUsecase(db *gorm.DB, log *logrus.Logger, financeRepo repository.FinanceRepository) FinanceUsecase {
	return &financeUsecase{
		db:          db,
		log:         log,
		financeRepo: financeRepo,
	}
}

func (u *financeUsecase) CreateAccount(ctx context.Context, req *dto.CreateAccountRequest) (*entity.Account, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.financeRepo.FindAccountByNumber(tx, req.AccountNumber)
	if err != nil {
		u.log.Warnf("Failed to check account number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrAccountNumberTaken
	}

	balance := decimal.Zero
	if req.Balance != "" {
		balance, err = decimal.NewFromString(req.Balance)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	account := &entity.Account{
		Name:          req.Name,
		Type:          entity.AccountType(req.Type),
		AccountNumber: req.AccountNumber,
		Balance:       balance,
		Status:        "active",
	}

	if err := u.financeRepo.CreateAccount(tx, account); err != nil {
		u.log.Warnf("Failed to create account: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return account, nil
}

func (u *financeUsecase) GetAccount(ctx context.Context, id uint) (*entity.Account, error) {
	account, err := u.financeRepo.FindAccountByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find account %d: %+v", id, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	return account, nil
}

func (u *financeUsecase) GetAccounts(ctx context.Context) ([]entity.Account, error) {
	accounts, err := u.financeRepo.FindAllAccounts(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find accounts: %+v", err)
		return nil, err
	}

	return accounts, nil
}

func (u *financeUsecase) UpdateAccount(ctx context.Context, id uint, req *dto.UpdateAccountRequest) (*entity.Account, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := u.financeRepo.FindAccountByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find account %d: %+v", id, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Status != nil {
		account.Status = *req.Status
	}

	if err := u.financeRepo.SaveAccount(tx, account); err != nil {
		u.log.Warnf("Failed to update account %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return account, nil
}

// PostTransaction writes the ledger row and adjusts the account balance by
// the signed amount in the same transaction. Debits may overdraw, balances
// have no floor.
func (u *financeUsecase) PostTransaction(ctx context.Context, req *dto.CreateTransactionRequest) (*entity.Transaction, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	account, err := u.financeRepo.FindAccountByID(tx, req.AccountID)
	if err != nil {
		u.log.Warnf("Failed to find account %d: %+v", req.AccountID, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	transactionDate := time.Now()
	if req.TransactionDate != "" {
		transactionDate, err = time.Parse("2006-01-02", req.TransactionDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	transaction := &entity.Transaction{
		AccountID:       req.AccountID,
		Type:            entity.TransactionType(req.Type),
		Amount:          amount,
		Description:     req.Description,
		Reference:       req.Reference,
		TransactionDate: transactionDate,
	}

	if err := u.financeRepo.CreateTransaction(tx, transaction); err != nil {
		u.log.Warnf("Failed to create transaction: %+v", err)
		return nil, err
	}

	if err := u.financeRepo.AdjustAccountBalance(tx, req.AccountID, transaction.SignedAmount()); err != nil {
		u.log.Warnf("Failed to adjust balance of account %d: %+v", req.AccountID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Posted %s of %s to account %d", transaction.Type, amount, req.AccountID)
	return transaction, nil
}

func (u *financeUsecase) GetTransactions(ctx context.Context) ([]entity.Transaction, error) {
	transactions, err := u.financeRepo.FindAllTransactions(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find transactions: %+v", err)
		return nil, err
	}

	return transactions, nil
}

func (u *financeUsecase) GetAccountTransactions(ctx context.Context, accountID uint) ([]entity.Transaction, error) {
	transactions, err := u.financeRepo.FindTransactionsByAccountID(u.db.WithContext(ctx), accountID)
	if err != nil {
		u.log.Warnf("Failed to find transactions for account %d: %+v", accountID, err)
		return nil, err
	}

	return transactions, nil
}

func (u *financeUsecase) CreateTerminal(ctx context.Context, req *dto.CreatePosTerminalRequest) (*entity.PosTerminal, error) {
	terminal := &entity.PosTerminal{
		Name:     req.Name,
		Location: req.Location,
		Status:   "active",
	}

	if err := u.financeRepo.CreateTerminal(u.db.WithContext(ctx), terminal); err != nil {
		u.log.Warnf("Failed to create terminal: %+v", err)
		return nil, err
	}

	return terminal, nil
}

func (u *financeUsecase) GetTerminals(ctx context.Context) ([]entity.PosTerminal, error) {
	terminals, err := u.financeRepo.FindAllTerminals(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find terminals: %+v", err)
		return nil, err
	}

	return terminals, nil
}

func (u *financeUsecase) UpdateTerminal(ctx context.Context, id uint, req *dto.UpdatePosTerminalRequest) (*entity.PosTerminal, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	terminal, err := u.financeRepo.FindTerminalByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find terminal %d: %+v", id, err)
		return nil, err
	}
	if terminal == nil {
		return nil, ErrTerminalNotFound
	}

	if req.Name != nil {
		terminal.Name = *req.Name
	}
	if req.Location != nil {
		terminal.Location = *req.Location
	}
	if req.Status != nil {
		terminal.Status = *req.Status
	}

	if err := u.financeRepo.SaveTerminal(tx, terminal); err != nil {
		u.log.Warnf("Failed to update terminal %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return terminal, nil
}

func (u *financeUsecase) CreatePosTransaction(ctx context.Context, req *dto.CreatePosTransactionRequest) (*entity.PosTransaction, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	terminal, err := u.financeRepo.FindTerminalByID(tx, req.TerminalID)
	if err != nil {
		u.log.Warnf("Failed to find terminal %d: %+v", req.TerminalID, err)
		return nil, err
	}
	if terminal == nil {
		return nil, ErrTerminalNotFound
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	posTransaction := &entity.PosTransaction{
		TerminalID:    req.TerminalID,
		PatientID:     req.PatientID,
		Amount:        amount,
		PaymentMethod: req.PaymentMethod,
		Status:        entity.PosTransactionStatusPending,
		Reference:     req.Reference,
	}

	if err := u.financeRepo.CreatePosTransaction(tx, posTransaction); err != nil {
		u.log.Warnf("Failed to create pos transaction: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return posTransaction, nil
}

func (u *financeUsecase) GetPosTransactions(ctx context.Context) ([]entity.PosTransaction, error) {
	posTransactions, err := u.financeRepo.FindAllPosTransactions(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find pos transactions: %+v", err)
		return nil, err
	}

	return posTransactions, nil
}

// CompletePosTransaction completes the payment and synthesizes a matching
// ledger credit against the account mapped from the payment method. The
// guarded status flip makes double completion post the ledger entry once.
func (u *financeUsecase) CompletePosTransaction(ctx context.Context, id uint) (*entity.PosTransaction, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	posTransaction, err := u.financeRepo.FindPosTransactionByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pos transaction %d: %+v", id, err)
		return nil, err
	}
	if posTransaction == nil {
		return nil, ErrPosTransactionNotFound
	}

	affected, err := u.financeRepo.MarkPosTransactionCompleted(tx, id)
	if err != nil {
		u.log.Warnf("Failed to complete pos transaction %d: %+v", id, err)
		return nil, err
	}
	if affected == 0 {
		// Already completed or cancelled, do not post the ledger entry again
		return posTransaction, nil
	}

	accountType := entity.AccountTypeForPaymentMethod(posTransaction.PaymentMethod)
	account, err := u.financeRepo.FindFirstActiveAccountByType(tx, accountType)
	if err != nil {
		u.log.Warnf("Failed to find %s account: %+v", accountType, err)
		return nil, err
	}
	if account == nil {
		return nil, ErrNoAccountForMethod
	}

	transaction := &entity.Transaction{
		AccountID:       account.ID,
		Type:            entity.TransactionTypeCredit,
		Amount:          posTransaction.Amount,
		Description:     fmt.Sprintf("POS payment at terminal %d", posTransaction.TerminalID),
		Reference:       fmt.Sprintf("pos:%d", posTransaction.ID),
		TransactionDate: time.Now(),
	}

	if err := u.financeRepo.CreateTransaction(tx, transaction); err != nil {
		u.log.Warnf("Failed to create ledger entry for pos transaction %d: %+v", id, err)
		return nil, err
	}

	if err := u.financeRepo.AdjustAccountBalance(tx, account.ID, transaction.SignedAmount()); err != nil {
		u.log.Warnf("Failed to adjust balance of account %d: %+v", account.ID, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Completed pos transaction %d, posted %s to account %d", id, posTransaction.Amount, account.ID)
	posTransaction.Status = entity.PosTransactionStatusCompleted
	return posTransaction, nil
}

func (u *financeUsecase) CancelPosTransaction(ctx context.Context, id uint) (*entity.PosTransaction, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	posTransaction, err := u.financeRepo.FindPosTransactionByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find pos transaction %d: %+v", id, err)
		return nil, err
	}
	if posTransaction == nil {
		return nil, ErrPosTransactionNotFound
	}

	posTransaction.Status = entity.PosTransactionStatusCancelled
	if err := u.financeRepo.SavePosTransaction(tx, posTransaction); err != nil {
		u.log.Warnf("Failed to cancel pos transaction %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return posTransaction, nil
}
