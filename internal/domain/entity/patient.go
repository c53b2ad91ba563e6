package entity

import "time"

// PatientStatus represents the lifecycle status of a patient record.
// Records are never hard-deleted, deactivation is a status flip.
type PatientStatus string

const (
	PatientStatusActive   PatientStatus = "active"
	PatientStatusInactive PatientStatus = "inactive"
	PatientStatusDeceased PatientStatus = "deceased"
)

// Patient is the master patient record. PatientCode is the human-readable
// identifier printed on wristbands and cards (e.g. "P-2024-00042").
type Patient struct {
	ID               uint          `gorm:"primaryKey" json:"id"`
	PatientCode      string        `gorm:"type:varchar(50);uniqueIndex;not null" json:"patient_id"`
	Name             string        `gorm:"type:varchar(255);not null" json:"name"`
	DateOfBirth      time.Time     `gorm:"not null" json:"dob"`
	Gender           string        `gorm:"type:varchar(20)" json:"gender"`
	BloodType        string        `gorm:"type:varchar(5)" json:"blood_type"`
	PhoneNumber      string        `gorm:"type:varchar(30)" json:"phone_number"`
	Email            string        `gorm:"type:varchar(255)" json:"email"`
	Address          string        `gorm:"type:text" json:"address"`
	EmergencyContact string        `gorm:"type:varchar(255)" json:"emergency_contact"`
	Allergies        string        `gorm:"type:text" json:"allergies"`
	Status           PatientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt        time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
