package entity

import "testing"

func TestInventoryItemIsLowStock(t *testing.T) {
	tests := []struct {
		name         string
		quantity     int
		reorderLevel int
		want         bool
	}{
		{"well stocked", 100, 10, false},
		{"one above the line", 11, 10, false},
		{"at reorder level", 10, 10, true},
		{"below reorder level", 3, 10, true},
		{"empty", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := InventoryItem{Quantity: tt.quantity, ReorderLevel: tt.reorderLevel}
			if got := item.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() = %v, want %v", got, tt.want)
			}
		})
	}
}
