package repository

import (
	"time"

	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type WardRepository interface {
	CreateWard(db *gorm.DB, ward *entity.Ward) error
	FindWardByID(db *gorm.DB, id uint) (*entity.Ward, error)
	FindAllWards(db *gorm.DB) ([]entity.Ward, error)
	SaveWard(db *gorm.DB, ward *entity.Ward) error

	CreateBed(db *gorm.DB, bed *entity.Bed) error
	FindBedByID(db *gorm.DB, id uint) (*entity.Bed, error)
	FindBedByNumber(db *gorm.DB, bedNumber string) (*entity.Bed, error)
	FindAllBeds(db *gorm.DB) ([]entity.Bed, error)
	FindBedsByWard(db *gorm.DB, wardID uint) ([]entity.Bed, error)
	FindBedsByStatus(db *gorm.DB, status entity.BedStatus) ([]entity.Bed, error)
	SaveBed(db *gorm.DB, bed *entity.Bed) error

	// OccupyBed atomically flips an available bed to occupied.
	// Returns affected rows: 1 = success, 0 = bed was not available.
	OccupyBed(db *gorm.DB, bedID uint) (int64, error)

	// ReleaseBed sets a bed back to available.
	ReleaseBed(db *gorm.DB, bedID uint) error

	CountBedsByWardAndStatus(db *gorm.DB, wardID uint, status entity.BedStatus) (int64, error)
}

type AdmissionRepository interface {
	Create(db *gorm.DB, admission *entity.Admission) error
	FindByID(db *gorm.DB, id uint) (*entity.Admission, error)
	FindAll(db *gorm.DB) ([]entity.Admission, error)
	FindActive(db *gorm.DB) ([]entity.Admission, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Admission, error)
	Save(db *gorm.DB, admission *entity.Admission) error

	// MarkDischarged atomically discharges an active admission.
	// Returns affected rows: 1 = success, 0 = already discharged.
	MarkDischarged(db *gorm.DB, id uint, dischargeDate time.Time) (int64, error)
}
