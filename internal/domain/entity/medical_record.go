package entity

import "time"

// MedicalRecord is an append-only SOAP note. Records are created but never
// updated or deleted.
type MedicalRecord struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PatientID  uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID   uint      `gorm:"not null;index" json:"doctor_id"`
	Date       time.Time `gorm:"not null" json:"date"`
	Subjective string    `gorm:"type:text" json:"subjective"`
	Objective  string    `gorm:"type:text" json:"objective"`
	Assessment string    `gorm:"type:text" json:"assessment"`
	Plan       string    `gorm:"type:text" json:"plan"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}
