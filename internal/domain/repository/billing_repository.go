package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type BillingRepository interface {
	CreateBill(db *gorm.DB, bill *entity.Bill) error
	FindBillByID(db *gorm.DB, id uint) (*entity.Bill, error)
	FindAllBills(db *gorm.DB) ([]entity.Bill, error)
	FindBillsByPatientID(db *gorm.DB, patientID uint) ([]entity.Bill, error)
	FindBillsByStatus(db *gorm.DB, status entity.BillStatus) ([]entity.Bill, error)
	SaveBill(db *gorm.DB, bill *entity.Bill) error

	CreateBillItem(db *gorm.DB, item *entity.BillItem) error
	FindBillItemByID(db *gorm.DB, id uint) (*entity.BillItem, error)
	FindItemsByBillID(db *gorm.DB, billID uint) ([]entity.BillItem, error)
}
