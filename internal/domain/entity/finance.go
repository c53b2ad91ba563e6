package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies ledger accounts.
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeBank       AccountType = "bank"
	AccountTypeReceivable AccountType = "receivable"
	AccountTypePayable    AccountType = "payable"
)

// Account is a ledger account whose balance is adjusted by posted transactions.
type Account struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Type          AccountType     `gorm:"type:varchar(30);not null;index" json:"type"`
	AccountNumber string          `gorm:"type:varchar(50);uniqueIndex;not null" json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	Status        string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Account) TableName() string {
	return "accounts"
}

// TransactionType is the direction of a ledger posting.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// Transaction is a ledger posting. Creating one adjusts the referenced
// account balance by +amount (credit) or -amount (debit). Overdraft is
// allowed, there is no balance floor.
type Transaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	AccountID       uint            `gorm:"not null;index" json:"account_id"`
	Type            TransactionType `gorm:"type:varchar(10);not null" json:"type"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Description     string          `gorm:"type:varchar(255)" json:"description"`
	Reference       string          `gorm:"type:varchar(100)" json:"reference"`
	TransactionDate time.Time       `gorm:"not null" json:"transaction_date"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Account Account `gorm:"foreignKey:AccountID" json:"account,omitempty"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// SignedAmount returns the amount with the sign implied by the type.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeDebit {
		return t.Amount.Neg()
	}
	return t.Amount
}

// PosTerminal is a point-of-sale terminal at a cashier desk.
type PosTerminal struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PosTerminal) TableName() string {
	return "pos_terminals"
}

// PosTransactionStatus represents the status of a POS payment.
type PosTransactionStatus string

const (
	PosTransactionStatusPending   PosTransactionStatus = "pending"
	PosTransactionStatusCompleted PosTransactionStatus = "completed"
	PosTransactionStatusCancelled PosTransactionStatus = "cancelled"
)

// PosTransaction is a payment taken at a terminal. Completion synthesizes a
// matching ledger Transaction against a payment-method-mapped account.
type PosTransaction struct {
	ID            uint                 `gorm:"primaryKey" json:"id"`
	TerminalID    uint                 `gorm:"not null;index" json:"terminal_id"`
	PatientID     *uint                `gorm:"index" json:"patient_id"`
	Amount        decimal.Decimal      `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMethod string               `gorm:"type:varchar(30);not null" json:"payment_method"`
	Status        PosTransactionStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reference     string               `gorm:"type:varchar(100)" json:"reference"`
	CreatedAt     time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time            `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Terminal PosTerminal `gorm:"foreignKey:TerminalID" json:"terminal,omitempty"`
}

func (PosTransaction) TableName() string {
	return "pos_transactions"
}

// AccountTypeForPaymentMethod maps a POS payment method to the ledger account
// type the synthesized transaction should be posted against.
func AccountTypeForPaymentMethod(method string) AccountType {
	switch method {
	case "cash":
		return AccountTypeCash
	case "card", "transfer":
		return AccountTypeBank
	case "insurance", "credit":
		return AccountTypeReceivable
	default:
		return AccountTypeCash
	}
}

// CreditCompany is an insurer or corporate payer billed on credit.
type CreditCompany struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Name          string    `gorm:"type:varchar(255);not null" json:"name"`
	ContactPerson string    `gorm:"type:varchar(255)" json:"contact_person"`
	PhoneNumber   string    `gorm:"type:varchar(30)" json:"phone_number"`
	Email         string    `gorm:"type:varchar(255)" json:"email"`
	Status        string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CreditCompany) TableName() string {
	return "credit_companies"
}
