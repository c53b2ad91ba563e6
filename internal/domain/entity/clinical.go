package entity

import "time"

// ClinicalGuideline is a published treatment protocol document.
type ClinicalGuideline struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	Category  string    `gorm:"type:varchar(100)" json:"category"`
	Content   string    `gorm:"type:text" json:"content"`
	Version   string    `gorm:"type:varchar(30)" json:"version"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (ClinicalGuideline) TableName() string {
	return "clinical_guidelines"
}

// DiagnosticSession is a structured diagnostic workup for a patient.
type DiagnosticSession struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	PatientID      uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID       uint      `gorm:"not null;index" json:"doctor_id"`
	ChiefComplaint string    `gorm:"type:text" json:"chief_complaint"`
	Findings       string    `gorm:"type:text" json:"findings"`
	Diagnosis      string    `gorm:"type:text" json:"diagnosis"`
	Status         string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DiagnosticSession) TableName() string {
	return "diagnostic_sessions"
}

// TreatmentPlan is a longitudinal plan of care for a patient.
type TreatmentPlan struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	PatientID   uint       `gorm:"not null;index" json:"patient_id"`
	DoctorID    uint       `gorm:"not null;index" json:"doctor_id"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	StartDate   time.Time  `gorm:"not null" json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TreatmentPlan) TableName() string {
	return "treatment_plans"
}

// MedicalOrder is a doctor's order (imaging, procedure, medication, ...).
type MedicalOrder struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PatientID uint      `gorm:"not null;index" json:"patient_id"`
	DoctorID  uint      `gorm:"not null;index" json:"doctor_id"`
	OrderType string    `gorm:"type:varchar(50)" json:"order_type"`
	Details   string    `gorm:"type:text" json:"details"`
	Priority  string    `gorm:"type:varchar(20);not null;default:'routine'" json:"priority"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MedicalOrder) TableName() string {
	return "medical_orders"
}

// OrderResult is the outcome recorded against a medical order.
type OrderResult struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"not null;index" json:"order_id"`
	ResultData string    `gorm:"type:text" json:"result_data"`
	Notes      string    `gorm:"type:text" json:"notes"`
	Status     string    `gorm:"type:varchar(20);not null;default:'final'" json:"status"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (OrderResult) TableName() string {
	return "order_results"
}

// DialysisUnit is a dialysis station with a session capacity.
type DialysisUnit struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Capacity  int       `gorm:"not null;default:0" json:"capacity"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DialysisUnit) TableName() string {
	return "dialysis_units"
}

// DialysisSession is a scheduled dialysis treatment on a unit.
type DialysisSession struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   uint      `gorm:"not null;index" json:"patient_id"`
	UnitID      uint      `gorm:"not null;index" json:"unit_id"`
	SessionDate time.Time `gorm:"not null" json:"session_date"`
	Duration    int       `gorm:"not null;default:0" json:"duration"`
	Status      string    `gorm:"type:varchar(20);not null;default:'scheduled'" json:"status"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DialysisSession) TableName() string {
	return "dialysis_sessions"
}

// EmergencyCase is an ER arrival, possibly before the patient is registered.
type EmergencyCase struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	PatientID   *uint     `gorm:"index" json:"patient_id"`
	Description string    `gorm:"type:text" json:"description"`
	TriageLevel string    `gorm:"type:varchar(20)" json:"triage_level"`
	Status      string    `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	ArrivalTime time.Time `gorm:"not null" json:"arrival_time"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (EmergencyCase) TableName() string {
	return "emergency_cases"
}
