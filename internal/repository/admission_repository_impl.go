package repository

import (
	"errors"
	"time"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type wardRepository struct{}

func NewWardRepository() domainRepo.WardRepository {
	return &wardRepository{}
}

func (r *wardRepository) CreateWard(db *gorm.DB, ward *entity.Ward) error {
	return db.Create(ward).Error
}

func (r *wardRepository) FindWardByID(db *gorm.DB, id uint) (*entity.Ward, error) {
	var ward entity.Ward
	err := db.Preload("Beds").Where("id = ?", id).First(&ward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &ward, nil
}

func (r *wardRepository) FindAllWards(db *gorm.DB) ([]entity.Ward, error) {
	var wards []entity.Ward
	err := db.Order("name ASC").Find(&wards).Error
	if err != nil {
		return nil, err
	}
	return wards, nil
}

func (r *wardRepository) SaveWard(db *gorm.DB, ward *entity.Ward) error {
	return db.Save(ward).Error
}

func (r *wardRepository) CreateBed(db *gorm.DB, bed *entity.Bed) error {
	return db.Create(bed).Error
}

func (r *wardRepository) FindBedByID(db *gorm.DB, id uint) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Where("id = ?", id).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *wardRepository) FindBedByNumber(db *gorm.DB, bedNumber string) (*entity.Bed, error) {
	var bed entity.Bed
	err := db.Where("bed_number = ?", bedNumber).First(&bed).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bed, nil
}

func (r *wardRepository) FindAllBeds(db *gorm.DB) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Preload("Ward").Order("bed_number ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *wardRepository) FindBedsByWard(db *gorm.DB, wardID uint) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Where("ward_id = ?", wardID).Order("bed_number ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *wardRepository) FindBedsByStatus(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error) {
	var beds []entity.Bed
	err := db.Preload("Ward").Where("status = ?", status).Order("bed_number ASC").Find(&beds).Error
	if err != nil {
		return nil, err
	}
	return beds, nil
}

func (r *wardRepository) SaveBed(db *gorm.DB, bed *entity.Bed) error {
	return db.Save(bed).Error
}

// OccupyBed flips an available bed to occupied in one statement so two
// concurrent admissions cannot both claim it.
func (r *wardRepository) OccupyBed(db *gorm.DB, bedID uint) (int64, error) {
	result := db.Model(&entity.Bed{}).
		Where("id = ? AND status = ?", bedID, entity.BedStatusAvailable).
		Update("status", entity.BedStatusOccupied)
	return result.RowsAffected, result.Error
}

func (r *wardRepository) ReleaseBed(db *gorm.DB, bedID uint) error {
	return db.Model(&entity.Bed{}).
		Where("id = ?", bedID).
		Update("status", entity.BedStatusAvailable).Error
}

func (r *wardRepository) CountBedsByWardAndStatus(db *gorm.DB, wardID uint, status entity.BedStatus) (int64, error) {
	var count int64
	err := db.Model(&entity.Bed{}).
		Where("ward_id = ? AND status = ?", wardID, status).
		Count(&count).Error
	return count, err
}

type admissionRepository struct{}

func NewAdmissionRepository() domainRepo.AdmissionRepository {
	return &admissionRepository{}
}

func (r *admissionRepository) Create(db *gorm.DB, admission *entity.Admission) error {
	return db.Create(admission).Error
}

func (r *admissionRepository) FindByID(db *gorm.DB, id uint) (*entity.Admission, error) {
	var admission entity.Admission
	err := db.Preload("Patient").Preload("Bed").Preload("Doctor").
		Where("id = ?", id).First(&admission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &admission, nil
}

func (r *admissionRepository) FindAll(db *gorm.DB) ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := db.Preload("Patient").Preload("Bed").Preload("Doctor").
		Order("admission_date DESC").Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) FindActive(db *gorm.DB) ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := db.Preload("Patient").Preload("Bed").
		Where("status = ?", entity.AdmissionStatusActive).
		Order("admission_date DESC").Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Admission, error) {
	var admissions []entity.Admission
	err := db.Preload("Bed").Preload("Doctor").
		Where("patient_id = ?", patientID).
		Order("admission_date DESC").Find(&admissions).Error
	if err != nil {
		return nil, err
	}
	return admissions, nil
}

func (r *admissionRepository) Save(db *gorm.DB, admission *entity.Admission) error {
	return db.Save(admission).Error
}

// MarkDischarged discharges an active admission in one statement. A second
// discharge of the same admission affects zero rows, which callers treat as
// a no-op on bed status.
func (r *admissionRepository) MarkDischarged(db *gorm.DB, id uint, dischargeDate time.Time) (int64, error) {
	result := db.Model(&entity.Admission{}).
		Where("id = ? AND status = ?", id, entity.AdmissionStatusActive).
		Updates(map[string]interface{}{
			"status":         entity.AdmissionStatusDischarged,
			"discharge_date": dischargeDate,
		})
	return result.RowsAffected, result.Error
}
