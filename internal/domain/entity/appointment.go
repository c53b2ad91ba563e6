package entity

import "time"

// AppointmentStatus represents the status of an appointment.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

// Appointment is a scheduled visit of a patient with a doctor.
type Appointment struct {
	ID        uint              `gorm:"primaryKey" json:"id"`
	PatientID uint              `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint              `gorm:"not null;index" json:"doctor_id"`
	Date      time.Time         `gorm:"not null;index" json:"date"`
	Duration  int               `gorm:"not null;default:30" json:"duration"`
	Type      string            `gorm:"type:varchar(50)" json:"type"`
	Status    AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes     string            `gorm:"type:text" json:"notes"`
	CreatedAt time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User    `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsScheduled() bool {
	return a.Status == AppointmentStatusScheduled
}
