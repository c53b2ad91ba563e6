package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindByCode(db *gorm.DB, code string) (*entity.Patient, error)
	FindAll(db *gorm.DB) ([]entity.Patient, error)
	FindRecent(db *gorm.DB, limit int) ([]entity.Patient, error)
	Save(db *gorm.DB, patient *entity.Patient) error
}
