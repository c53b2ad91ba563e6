package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the HR record behind a staff user account.
type Employee struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	UserID                uint            `gorm:"not null;uniqueIndex" json:"user_id"`
	Department            string          `gorm:"type:varchar(100)" json:"department"`
	Position              string          `gorm:"type:varchar(100)" json:"position"`
	JoinDate              time.Time       `gorm:"not null" json:"join_date"`
	Salary                decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"salary"`
	Status                string          `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	EmergencyContactName  string          `gorm:"type:varchar(255)" json:"emergency_contact_name"`
	EmergencyContactPhone string          `gorm:"type:varchar(30)" json:"emergency_contact_phone"`
	CreatedAt             time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

// LeaveStatus represents the approval status of a leave request.
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "pending"
	LeaveStatusApproved LeaveStatus = "approved"
	LeaveStatusRejected LeaveStatus = "rejected"
)

// Leave is a leave request by an employee.
type Leave struct {
	ID         uint        `gorm:"primaryKey" json:"id"`
	EmployeeID uint        `gorm:"not null;index" json:"employee_id"`
	Type       string      `gorm:"type:varchar(50)" json:"type"`
	StartDate  time.Time   `gorm:"not null" json:"start_date"`
	EndDate    time.Time   `gorm:"not null" json:"end_date"`
	Status     LeaveStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Reason     string      `gorm:"type:text" json:"reason"`
	CreatedAt  time.Time   `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time   `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Employee Employee `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

func (Leave) TableName() string {
	return "leaves"
}

func (l *Leave) IsPending() bool {
	return l.Status == LeaveStatusPending
}
