package repository

import (
	"errors"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type labRepository struct{}

func NewLabRepository() domainRepo.LabRepository {
	return &labRepository{}
}

func (r *labRepository) CreateSystem(db *gorm.DB, system *entity.LabSystem) error {
	return db.Create(system).Error
}

func (r *labRepository) FindSystemByID(db *gorm.DB, id uint) (*entity.LabSystem, error) {
	var system entity.LabSystem
	err := db.Where("id = ?", id).First(&system).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &system, nil
}

func (r *labRepository) FindAllSystems(db *gorm.DB) ([]entity.LabSystem, error) {
	var systems []entity.LabSystem
	err := db.Order("name ASC").Find(&systems).Error
	if err != nil {
		return nil, err
	}
	return systems, nil
}

func (r *labRepository) SaveSystem(db *gorm.DB, system *entity.LabSystem) error {
	return db.Save(system).Error
}

func (r *labRepository) CreateResult(db *gorm.DB, result *entity.LabResult) error {
	return db.Create(result).Error
}

func (r *labRepository) FindResultByID(db *gorm.DB, id uint) (*entity.LabResult, error) {
	var result entity.LabResult
	err := db.Where("id = ?", id).First(&result).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *labRepository) FindAllResults(db *gorm.DB) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := db.Preload("Patient").Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labRepository) FindResultsByPatientID(db *gorm.DB, patientID uint) ([]entity.LabResult, error) {
	var results []entity.LabResult
	err := db.Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&results).Error
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (r *labRepository) SaveResult(db *gorm.DB, result *entity.LabResult) error {
	return db.Save(result).Error
}
