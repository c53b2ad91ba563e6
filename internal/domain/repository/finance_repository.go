package repository

import (
	"hospital-erp/internal/domain/entity"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type FinanceRepository interface {
	CreateAccount(db *gorm.DB, account *entity.Account) error
	FindAccountByID(db *gorm.DB, id uint) (*entity.Account, error)
	FindAccountByNumber(db *gorm.DB, number string) (*entity.Account, error)
	FindAllAccounts(db *gorm.DB) ([]entity.Account, error)
	FindFirstActiveAccountByType(db *gorm.DB, accountType entity.AccountType) (*entity.Account, error)
	SaveAccount(db *gorm.DB, account *entity.Account) error

	// AdjustAccountBalance applies a signed delta to the account balance in a
	// single statement so concurrent postings cannot lose updates.
	AdjustAccountBalance(db *gorm.DB, accountID uint, delta decimal.Decimal) error

	CreateTransaction(db *gorm.DB, transaction *entity.Transaction) error
	FindAllTransactions(db *gorm.DB) ([]entity.Transaction, error)
	FindTransactionsByAccountID(db *gorm.DB, accountID uint) ([]entity.Transaction, error)

	CreateTerminal(db *gorm.DB, terminal *entity.PosTerminal) error
	FindTerminalByID(db *gorm.DB, id uint) (*entity.PosTerminal, error)
	FindAllTerminals(db *gorm.DB) ([]entity.PosTerminal, error)
	SaveTerminal(db *gorm.DB, terminal *entity.PosTerminal) error

	CreatePosTransaction(db *gorm.DB, posTransaction *entity.PosTransaction) error
	FindPosTransactionByID(db *gorm.DB, id uint) (*entity.PosTransaction, error)
	FindAllPosTransactions(db *gorm.DB) ([]entity.PosTransaction, error)
	SavePosTransaction(db *gorm.DB, posTransaction *entity.PosTransaction) error

	// MarkPosTransactionCompleted atomically completes a pending POS
	// transaction. Returns affected rows: 1 = success, 0 = not pending.
	MarkPosTransactionCompleted(db *gorm.DB, id uint) (int64, error)
}
