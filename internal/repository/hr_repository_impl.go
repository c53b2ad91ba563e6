package repository

import (
	"errors"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type hrRepository struct{}

func NewHRRepository() domainRepo.HRRepository {
	return &hrRepository{}
}

func (r *hrRepository) CreateEmployee(db *gorm.DB, employee *entity.Employee) error {
	return db.Create(employee).Error
}

func (r *hrRepository) FindEmployeeByID(db *gorm.DB, id uint) (*entity.Employee, error) {
	var employee entity.Employee
	err := db.Preload("User").Where("id = ?", id).First(&employee).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &employee, nil
}

func (r *hrRepository) FindAllEmployees(db *gorm.DB) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := db.Preload("User").Order("created_at DESC").Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *hrRepository) SaveEmployee(db *gorm.DB, employee *entity.Employee) error {
	return db.Save(employee).Error
}

func (r *hrRepository) CreateLeave(db *gorm.DB, leave *entity.Leave) error {
	return db.Create(leave).Error
}

func (r *hrRepository) FindLeaveByID(db *gorm.DB, id uint) (*entity.Leave, error) {
	var leave entity.Leave
	err := db.Where("id = ?", id).First(&leave).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &leave, nil
}

func (r *hrRepository) FindAllLeaves(db *gorm.DB) ([]entity.Leave, error) {
	var leaves []entity.Leave
	err := db.Preload("Employee.User").Order("created_at DESC").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *hrRepository) FindLeavesByEmployeeID(db *gorm.DB, employeeID uint) ([]entity.Leave, error) {
	var leaves []entity.Leave
	err := db.Where("employee_id = ?", employeeID).
		Order("start_date DESC").Find(&leaves).Error
	if err != nil {
		return nil, err
	}
	return leaves, nil
}

func (r *hrRepository) SaveLeave(db *gorm.DB, leave *entity.Leave) error {
	return db.Save(leave).Error
}
