package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type LabRepository interface {
	CreateSystem(db *gorm.DB, system *entity.LabSystem) error
	FindSystemByID(db *gorm.DB, id uint) (*entity.LabSystem, error)
	FindAllSystems(db *gorm.DB) ([]entity.LabSystem, error)
	SaveSystem(db *gorm.DB, system *entity.LabSystem) error

	CreateResult(db *gorm.DB, result *entity.LabResult) error
	FindResultByID(db *gorm.DB, id uint) (*entity.LabResult, error)
	FindAllResults(db *gorm.DB) ([]entity.LabResult, error)
	FindResultsByPatientID(db *gorm.DB, patientID uint) ([]entity.LabResult, error)
	SaveResult(db *gorm.DB, result *entity.LabResult) error
}
