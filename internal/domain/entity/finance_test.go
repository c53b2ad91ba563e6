package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestTransactionSignedAmount(t *testing.T) {
	credit := Transaction{Type: TransactionTypeCredit, Amount: decimal.NewFromInt(75)}
	if got := credit.SignedAmount(); !got.Equal(decimal.NewFromInt(75)) {
		t.Errorf("credit signed amount = %s, want 75", got)
	}

	debit := Transaction{Type: TransactionTypeDebit, Amount: decimal.NewFromInt(75)}
	if got := debit.SignedAmount(); !got.Equal(decimal.NewFromInt(-75)) {
		t.Errorf("debit signed amount = %s, want -75", got)
	}
}

func TestAccountTypeForPaymentMethod(t *testing.T) {
	tests := []struct {
		method string
		want   AccountType
	}{
		{"cash", AccountTypeCash},
		{"card", AccountTypeBank},
		{"transfer", AccountTypeBank},
		{"insurance", AccountTypeReceivable},
		{"credit", AccountTypeReceivable},
		{"voucher", AccountTypeCash},
		{"", AccountTypeCash},
	}

	for _, tt := range tests {
		if got := AccountTypeForPaymentMethod(tt.method); got != tt.want {
			t.Errorf("AccountTypeForPaymentMethod(%q) = %q, want %q", tt.method, got, tt.want)
		}
	}
}
