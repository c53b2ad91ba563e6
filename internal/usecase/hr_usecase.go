package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrLeaveNotFound    = errors.New("leave request not found")
)

type HRUsecase interface {
	CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*entity.Employee, error)
	GetEmployee(ctx context.Context, id uint) (*entity.Employee, error)
	GetEmployees(ctx context.Context) ([]entity.Employee, error)
	UpdateEmployee(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*entity.Employee, error)

	CreateLeave(ctx context.Context, req *dto.CreateLeaveRequest) (*entity.Leave, error)
	GetLeaves(ctx context.Context) ([]entity.Leave, error)
	GetEmployeeLeaves(ctx context.Context, employeeID uint) ([]entity.Leave, error)
	UpdateLeave(ctx context.Context, id uint, req *dto.UpdateLeaveRequest) (*entity.Leave, error)
}

type hrUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	hrRepo   repository.HRRepository
	userRepo repository.UserRepository
}

func NewHRUsecase(db *gorm.DB, log *logrus.Logger, hrRepo repository.HRRepository, userRepo repository.UserRepository) HRUsecase {
	return &hrUsecase{
		db:       db,
		log:      log,
		hrRepo:   hrRepo,
		userRepo: userRepo,
	}
}

func (u *hrUsecase) CreateEmployee(ctx context.Context, req *dto.CreateEmployeeRequest) (*entity.Employee, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, req.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user %d: %+v", req.UserID, err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	joinDate, err := time.Parse("2006-01-02", req.JoinDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	salary := decimal.Zero
	if req.Salary != "" {
		salary, err = decimal.NewFromString(req.Salary)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	employee := &entity.Employee{
		UserID:                req.UserID,
		Department:            req.Department,
		Position:              req.Position,
		JoinDate:              joinDate,
		Salary:                salary,
		Status:                "active",
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
	}

	if err := u.hrRepo.CreateEmployee(tx, employee); err != nil {
		u.log.Warnf("Failed to create employee: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	employee.User = *user
	return employee, nil
}

func (u *hrUsecase) GetEmployee(ctx context.Context, id uint) (*entity.Employee, error) {
	employee, err := u.hrRepo.FindEmployeeByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	return employee, nil
}

func (u *hrUsecase) GetEmployees(ctx context.Context) ([]entity.Employee, error) {
	employees, err := u.hrRepo.FindAllEmployees(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find employees: %+v", err)
		return nil, err
	}

	return employees, nil
}

func (u *hrUsecase) UpdateEmployee(ctx context.Context, id uint, req *dto.UpdateEmployeeRequest) (*entity.Employee, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.hrRepo.FindEmployeeByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", id, err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	if req.Department != nil {
		employee.Department = *req.Department
	}
	if req.Position != nil {
		employee.Position = *req.Position
	}
	if req.Salary != nil {
		salary, err := decimal.NewFromString(*req.Salary)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		employee.Salary = salary
	}
	if req.Status != nil {
		employee.Status = *req.Status
	}
	if req.EmergencyContactName != nil {
		employee.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		employee.EmergencyContactPhone = *req.EmergencyContactPhone
	}

	if err := u.hrRepo.SaveEmployee(tx, employee); err != nil {
		u.log.Warnf("Failed to update employee %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return employee, nil
}

func (u *hrUsecase) CreateLeave(ctx context.Context, req *dto.CreateLeaveRequest) (*entity.Leave, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	employee, err := u.hrRepo.FindEmployeeByID(tx, req.EmployeeID)
	if err != nil {
		u.log.Warnf("Failed to find employee %d: %+v", req.EmployeeID, err)
		return nil, err
	}
	if employee == nil {
		return nil, ErrEmployeeNotFound
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	leave := &entity.Leave{
		EmployeeID: req.EmployeeID,
		Type:       req.Type,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     entity.LeaveStatusPending,
		Reason:     req.Reason,
	}

	if err := u.hrRepo.CreateLeave(tx, leave); err != nil {
		u.log.Warnf("Failed to create leave request: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return leave, nil
}

func (u *hrUsecase) GetLeaves(ctx context.Context) ([]entity.Leave, error) {
	leaves, err := u.hrRepo.FindAllLeaves(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find leaves: %+v", err)
		return nil, err
	}

	return leaves, nil
}

func (u *hrUsecase) GetEmployeeLeaves(ctx context.Context, employeeID uint) ([]entity.Leave, error) {
	leaves, err := u.hrRepo.FindLeavesByEmployeeID(u.db.WithContext(ctx), employeeID)
	if err != nil {
		u.log.Warnf("Failed to find leaves for employee %d: %+v", employeeID, err)
		return nil, err
	}

	return leaves, nil
}

func (u *hrUsecase) UpdateLeave(ctx context.Context, id uint, req *dto.UpdateLeaveRequest) (*entity.Leave, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	leave, err := u.hrRepo.FindLeaveByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find leave %d: %+v", id, err)
		return nil, err
	}
	if leave == nil {
		return nil, ErrLeaveNotFound
	}

	if req.Status != nil {
		leave.Status = entity.LeaveStatus(*req.Status)
	}
	if req.Reason != nil {
		leave.Reason = *req.Reason
	}

	if err := u.hrRepo.SaveLeave(tx, leave); err != nil {
		u.log.Warnf("Failed to update leave %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return leave, nil
}
