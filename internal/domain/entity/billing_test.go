package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestBillRecalculateStatus(t *testing.T) {
	tests := []struct {
		name  string
		total string
		paid  string
		want  BillStatus
	}{
		{"nothing paid", "100", "0", BillStatusPending},
		{"negative paid", "100", "-10", BillStatusPending},
		{"partially paid", "100", "40", BillStatusPartial},
		{"almost paid", "100", "99.99", BillStatusPartial},
		{"exactly paid", "100", "100", BillStatusPaid},
		{"overpaid", "100", "120", BillStatusPaid},
		{"zero total with payment", "0", "10", BillStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := Bill{
				TotalAmount: decimal.RequireFromString(tt.total),
				PaidAmount:  decimal.RequireFromString(tt.paid),
			}
			bill.RecalculateStatus()
			if bill.Status != tt.want {
				t.Errorf("status = %q, want %q", bill.Status, tt.want)
			}
		})
	}
}

func TestBillIsPaid(t *testing.T) {
	bill := Bill{
		TotalAmount: decimal.NewFromInt(50),
		PaidAmount:  decimal.NewFromInt(50),
	}
	bill.RecalculateStatus()
	if !bill.IsPaid() {
		t.Error("IsPaid() = false for a settled bill")
	}
}
