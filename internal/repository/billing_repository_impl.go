package repository

import (
	"errors"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type billingRepository struct{}

func NewBillingRepository() domainRepo.BillingRepository {
	return &billingRepository{}
}

func (r *billingRepository) CreateBill(db *gorm.DB, bill *entity.Bill) error {
	return db.Create(bill).Error
}

func (r *billingRepository) FindBillByID(db *gorm.DB, id uint) (*entity.Bill, error) {
	var bill entity.Bill
	err := db.Preload("Items").Where("id = ?", id).First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billingRepository) FindAllBills(db *gorm.DB) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Preload("Patient").Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billingRepository) FindBillsByPatientID(db *gorm.DB, patientID uint) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Preload("Items").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billingRepository) FindBillsByStatus(db *gorm.DB, status entity.BillStatus) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := db.Preload("Patient").
		Where("status = ?", status).
		Order("created_at DESC").Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billingRepository) SaveBill(db *gorm.DB, bill *entity.Bill) error {
	return db.Save(bill).Error
}

func (r *billingRepository) CreateBillItem(db *gorm.DB, item *entity.BillItem) error {
	return db.Create(item).Error
}

func (r *billingRepository) FindBillItemByID(db *gorm.DB, id uint) (*entity.BillItem, error) {
	var item entity.BillItem
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *billingRepository) FindItemsByBillID(db *gorm.DB, billID uint) ([]entity.BillItem, error) {
	var items []entity.BillItem
	err := db.Where("bill_id = ?", billID).Order("id ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
