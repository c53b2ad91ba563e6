package repository

import (
	"time"

	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindBetween(db *gorm.DB, start, end time.Time) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.Appointment, error)
	Save(db *gorm.DB, appointment *entity.Appointment) error
}

type MedicalRecordRepository interface {
	Create(db *gorm.DB, record *entity.MedicalRecord) error
	FindByID(db *gorm.DB, id uint) (*entity.MedicalRecord, error)
	FindAll(db *gorm.DB) ([]entity.MedicalRecord, error)
	FindByPatientID(db *gorm.DB, patientID uint) ([]entity.MedicalRecord, error)
}
