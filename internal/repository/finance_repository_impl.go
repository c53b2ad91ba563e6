package repository

import (
	"errors"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type financeRepository struct{}

func NewFinanceRepository() domainRepo.FinanceRepository {
	return &financeRepository{}
}

func (r *financeRepository) CreateAccount(db *gorm.DB, account *entity.Account) error {
	return db.Create(account).Error
}

func (r *financeRepository) FindAccountByID(db *gorm.DB, id uint) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("id = ?", id).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *financeRepository) FindAccountByNumber(db *gorm.DB, number string) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("account_number = ?", number).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *financeRepository) FindAllAccounts(db *gorm.DB) ([]entity.Account, error) {
	var accounts []entity.Account
	err := db.Order("name ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *financeRepository) FindFirstActiveAccountByType(db *gorm.DB, accountType entity.AccountType) (*entity.Account, error) {
	var account entity.Account
	err := db.Where("type = ? AND status = ?", accountType, "active").
		Order("id ASC").First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (r *financeRepository) SaveAccount(db *gorm.DB, account *entity.Account) error {
	return db.Save(account).Error
}

func (r *financeRepository) AdjustAccountBalance(db *gorm.DB, accountID uint, delta decimal.Decimal) error {
	return db.Model(&entity.Account{}).
		Where("id = ?", accountID).
		Update("balance", gorm.Expr("balance + ?", delta)).Error
}

func (r *financeRepository) CreateTransaction(db *gorm.DB, transaction *entity.Transaction) error {
	return db.Create(transaction).Error
}

func (r *financeRepository) FindAllTransactions(db *gorm.DB) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Preload("Account").Order("transaction_date DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *financeRepository) FindTransactionsByAccountID(db *gorm.DB, accountID uint) ([]entity.Transaction, error) {
	var transactions []entity.Transaction
	err := db.Where("account_id = ?", accountID).
		Order("transaction_date DESC").Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *financeRepository) CreateTerminal(db *gorm.DB, terminal *entity.PosTerminal) error {
	return db.Create(terminal).Error
}

func (r *financeRepository) FindTerminalByID(db *gorm.DB, id uint) (*entity.PosTerminal, error) {
	var terminal entity.PosTerminal
	err := db.Where("id = ?", id).First(&terminal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &terminal, nil
}

func (r *financeRepository) FindAllTerminals(db *gorm.DB) ([]entity.PosTerminal, error) {
	var terminals []entity.PosTerminal
	err := db.Order("name ASC").Find(&terminals).Error
	if err != nil {
		return nil, err
	}
	return terminals, nil
}

func (r *financeRepository) SaveTerminal(db *gorm.DB, terminal *entity.PosTerminal) error {
	return db.Save(terminal).Error
}

func (r *financeRepository) CreatePosTransaction(db *gorm.DB, posTransaction *entity.PosTransaction) error {
	return db.Create(posTransaction).Error
}

func (r *financeRepository) FindPosTransactionByID(db *gorm.DB, id uint) (*entity.PosTransaction, error) {
	var posTransaction entity.PosTransaction
	err := db.Preload("Terminal").Where("id = ?", id).First(&posTransaction).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &posTransaction, nil
}

func (r *financeRepository) FindAllPosTransactions(db *gorm.DB) ([]entity.PosTransaction, error) {
	var posTransactions []entity.PosTransaction
	err := db.Preload("Terminal").Order("created_at DESC").Find(&posTransactions).Error
	if err != nil {
		return nil, err
	}
	return posTransactions, nil
}

func (r *financeRepository) SavePosTransaction(db *gorm.DB, posTransaction *entity.PosTransaction) error {
	return db.Save(posTransaction).Error
}

// MarkPosTransactionCompleted guards against double completion so the
// synthesized ledger posting runs exactly once.
func (r *financeRepository) MarkPosTransactionCompleted(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.PosTransaction{}).
		Where("id = ? AND status = ?", id, entity.PosTransactionStatusPending).
		Update("status", entity.PosTransactionStatusCompleted)
	return result.RowsAffected, result.Error
}
