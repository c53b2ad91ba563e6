package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type HRRepository interface {
	CreateEmployee(db *gorm.DB, employee *entity.Employee) error
	FindEmployeeByID(db *gorm.DB, id uint) (*entity.Employee, error)
	FindAllEmployees(db *gorm.DB) ([]entity.Employee, error)
	SaveEmployee(db *gorm.DB, employee *entity.Employee) error

	CreateLeave(db *gorm.DB, leave *entity.Leave) error
	FindLeaveByID(db *gorm.DB, id uint) (*entity.Leave, error)
	FindAllLeaves(db *gorm.DB) ([]entity.Leave, error)
	FindLeavesByEmployeeID(db *gorm.DB, employeeID uint) ([]entity.Leave, error)
	SaveLeave(db *gorm.DB, leave *entity.Leave) error
}
