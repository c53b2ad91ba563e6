package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdmissionStatus represents the status of an inpatient admission.
type AdmissionStatus string

const (
	AdmissionStatusActive     AdmissionStatus = "active"
	AdmissionStatusDischarged AdmissionStatus = "discharged"
)

// Admission records a patient occupying a bed between an admission date and
// an optional discharge date. Creating an admission occupies the bed,
// discharging releases it.
type Admission struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	PatientID     uint            `gorm:"not null;index" json:"patient_id"`
	BedID         uint            `gorm:"not null;index" json:"bed_id"`
	DoctorID      uint            `gorm:"not null;index" json:"doctor_id"`
	AdmissionDate time.Time       `gorm:"not null" json:"admission_date"`
	DischargeDate *time.Time      `json:"discharge_date"`
	Diagnosis     string          `gorm:"type:text" json:"diagnosis"`
	Status        AdmissionStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	Deposit       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"deposit"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Bed     Bed     `gorm:"foreignKey:BedID" json:"bed,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Admission) TableName() string {
	return "admissions"
}

func (a *Admission) IsActive() bool {
	return a.Status == AdmissionStatusActive
}

func (a *Admission) IsDischarged() bool {
	return a.Status == AdmissionStatusDischarged
}
