package entity

import "time"

// LabSystem is an external laboratory system results are pulled from.
type LabSystem struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Name          string     `gorm:"type:varchar(255);not null" json:"name"`
	APIURL        string     `gorm:"type:varchar(512);not null" json:"api_url"`
	APIKey        string     `gorm:"type:text" json:"-"`
	Status        string     `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	SyncFrequency string     `gorm:"type:varchar(30)" json:"sync_frequency"`
	LastSyncAt    *time.Time `json:"last_sync_at"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Results []LabResult `gorm:"foreignKey:LabSystemID" json:"results,omitempty"`
}

func (LabSystem) TableName() string {
	return "lab_systems"
}

// LabResult is a single test result received from a lab system.
type LabResult struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	PatientID    uint       `gorm:"not null;index" json:"patient_id"`
	LabSystemID  uint       `gorm:"not null;index" json:"lab_system_id"`
	TestType     string     `gorm:"type:varchar(100)" json:"test_type"`
	TestName     string     `gorm:"type:varchar(255)" json:"test_name"`
	ResultData   string     `gorm:"type:text" json:"result_data"`
	Status       string     `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CriticalFlag bool       `gorm:"not null;default:false" json:"critical_flag"`
	ResultDate   *time.Time `json:"result_date"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	LabSystem LabSystem `gorm:"foreignKey:LabSystemID" json:"lab_system,omitempty"`
}

func (LabResult) TableName() string {
	return "lab_results"
}
