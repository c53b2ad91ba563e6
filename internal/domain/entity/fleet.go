package entity

import "time"

// VehicleStatus represents the availability of a fleet vehicle.
type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusInUse       VehicleStatus = "in-use"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

// Vehicle is an ambulance or utility vehicle in the hospital fleet.
type Vehicle struct {
	ID          uint          `gorm:"primaryKey" json:"id"`
	PlateNumber string        `gorm:"type:varchar(30);uniqueIndex;not null" json:"plate_number"`
	Model       string        `gorm:"type:varchar(100)" json:"model"`
	Type        string        `gorm:"type:varchar(50)" json:"type"`
	Status      VehicleStatus `gorm:"type:varchar(20);not null;default:'available';index" json:"status"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

// AssignmentStatus represents the lifecycle of a vehicle assignment.
type AssignmentStatus string

const (
	AssignmentStatusScheduled  AssignmentStatus = "scheduled"
	AssignmentStatusInProgress AssignmentStatus = "in-progress"
	AssignmentStatusCompleted  AssignmentStatus = "completed"
	AssignmentStatusCancelled  AssignmentStatus = "cancelled"
)

// VehicleAssignment dispatches a vehicle for a purpose. Entering in-progress
// marks the vehicle in-use; leaving it releases the vehicle once no other
// in-progress assignment remains.
type VehicleAssignment struct {
	ID        uint             `gorm:"primaryKey" json:"id"`
	VehicleID uint             `gorm:"not null;index" json:"vehicle_id"`
	DriverID  *uint            `gorm:"index" json:"driver_id"`
	Purpose   string           `gorm:"type:varchar(255)" json:"purpose"`
	StartTime time.Time        `gorm:"not null" json:"start_time"`
	EndTime   *time.Time       `json:"end_time"`
	Status    AssignmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	CreatedAt time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time        `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Vehicle Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
	Driver  *User   `gorm:"foreignKey:DriverID" json:"driver,omitempty"`
}

func (VehicleAssignment) TableName() string {
	return "vehicle_assignments"
}

func (a *VehicleAssignment) IsInProgress() bool {
	return a.Status == AssignmentStatusInProgress
}
