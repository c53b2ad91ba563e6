package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrPlateNumberTaken   = errors.New("plate number already exists")
	ErrAssignmentNotFound = errors.New("vehicle assignment not found")
)

type FleetUsecase interface {
	CreateVehicle(ctx context.Context, req *dto.CreateVehicleRequest) (*entity.Vehicle, error)
	GetVehicle(ctx context.Context, id uint) (*entity.Vehicle, error)
	GetVehicles(ctx context.Context) ([]entity.Vehicle, error)
	UpdateVehicle(ctx context.Context, id uint, req *dto.UpdateVehicleRequest) (*entity.Vehicle, error)

	CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*entity.VehicleAssignment, error)
	GetAssignments(ctx context.Context) ([]entity.VehicleAssignment, error)
	UpdateAssignment(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*entity.VehicleAssignment, error)
}

type fleetUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	fleetRepo repository.FleetRepository
}

func NewFleetUsecase(db *gorm.DB, log *logrus.Logger, fleetRepo repository.FleetRepository) FleetUsecase {
	return &fleetUsecase{
		db:        db,
		log:       log,
		fleetRepo: fleetRepo,
	}
}

func (u *fleetUsecase) CreateVehicle(ctx context.Context, req *dto.CreateVehicleRequest) (*entity.Vehicle, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.fleetRepo.FindVehicleByPlate(tx, req.PlateNumber)
	if err != nil {
		u.log.Warnf("Failed to check plate number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrPlateNumberTaken
	}

	vehicle := &entity.Vehicle{
		PlateNumber: req.PlateNumber,
		Model:       req.Model,
		Type:        req.Type,
		Status:      entity.VehicleStatusAvailable,
	}

	if err := u.fleetRepo.CreateVehicle(tx, vehicle); err != nil {
		u.log.Warnf("Failed to create vehicle: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return vehicle, nil
}

func (u *fleetUsecase) GetVehicle(ctx context.Context, id uint) (*entity.Vehicle, error) {
	vehicle, err := u.fleetRepo.FindVehicleByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %d: %+v", id, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	return vehicle, nil
}

func (u *fleetUsecase) GetVehicles(ctx context.Context) ([]entity.Vehicle, error) {
	vehicles, err := u.fleetRepo.FindAllVehicles(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find vehicles: %+v", err)
		return nil, err
	}

	return vehicles, nil
}

func (u *fleetUsecase) UpdateVehicle(ctx context.Context, id uint, req *dto.UpdateVehicleRequest) (*entity.Vehicle, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.fleetRepo.FindVehicleByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %d: %+v", id, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Type != nil {
		vehicle.Type = *req.Type
	}
	if req.Status != nil {
		vehicle.Status = entity.VehicleStatus(*req.Status)
	}

	if err := u.fleetRepo.SaveVehicle(tx, vehicle); err != nil {
		u.log.Warnf("Failed to update vehicle %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return vehicle, nil
}

func (u *fleetUsecase) CreateAssignment(ctx context.Context, req *dto.CreateAssignmentRequest) (*entity.VehicleAssignment, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	vehicle, err := u.fleetRepo.FindVehicleByID(tx, req.VehicleID)
	if err != nil {
		u.log.Warnf("Failed to find vehicle %d: %+v", req.VehicleID, err)
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	startTime, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		startTime, err = time.Parse("2006-01-02", req.StartTime)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	assignment := &entity.VehicleAssignment{
		VehicleID: req.VehicleID,
		DriverID:  req.DriverID,
		Purpose:   req.Purpose,
		StartTime: startTime,
		Status:    entity.AssignmentStatusScheduled,
	}

	if req.EndTime != "" {
		endTime, err := time.Parse(time.RFC3339, req.EndTime)
		if err != nil {
			endTime, err = time.Parse("2006-01-02", req.EndTime)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		assignment.EndTime = &endTime
	}

	if err := u.fleetRepo.CreateAssignment(tx, assignment); err != nil {
		u.log.Warnf("Failed to create assignment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return assignment, nil
}

func (u *fleetUsecase) GetAssignments(ctx context.Context) ([]entity.VehicleAssignment, error) {
	assignments, err := u.fleetRepo.FindAllAssignments(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find assignments: %+v", err)
		return nil, err
	}

	return assignments, nil
}

// UpdateAssignment moves the assignment through its lifecycle. Entering
// in-progress marks the vehicle in-use. Leaving in-progress releases the
// vehicle only when no other in-progress assignment still holds it.
func (u *fleetUsecase) UpdateAssignment(ctx context.Context, id uint, req *dto.UpdateAssignmentRequest) (*entity.VehicleAssignment, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	assignment, err := u.fleetRepo.FindAssignmentByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find assignment %d: %+v", id, err)
		return nil, err
	}
	if assignment == nil {
		return nil, ErrAssignmentNotFound
	}

	previousStatus := assignment.Status

	if req.Purpose != nil {
		assignment.Purpose = *req.Purpose
	}
	if req.EndTime != nil {
		endTime, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			endTime, err = time.Parse("2006-01-02", *req.EndTime)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		assignment.EndTime = &endTime
	}
	if req.Status != nil {
		assignment.Status = entity.AssignmentStatus(*req.Status)
	}

	if err := u.fleetRepo.SaveAssignment(tx, assignment); err != nil {
		u.log.Warnf("Failed to update assignment %d: %+v", id, err)
		return nil, err
	}

	if req.Status != nil && assignment.Status != previousStatus {
		switch assignment.Status {
		case entity.AssignmentStatusInProgress:
			if err := u.fleetRepo.UpdateVehicleStatus(tx, assignment.VehicleID, entity.VehicleStatusInUse); err != nil {
				u.log.Warnf("Failed to mark vehicle %d in use: %+v", assignment.VehicleID, err)
				return nil, err
			}
		case entity.AssignmentStatusCompleted, entity.AssignmentStatusCancelled:
			if previousStatus == entity.AssignmentStatusInProgress {
				remaining, err := u.fleetRepo.CountInProgressByVehicle(tx, assignment.VehicleID, assignment.ID)
				if err != nil {
					u.log.Warnf("Failed to count in-progress assignments for vehicle %d: %+v", assignment.VehicleID, err)
					return nil, err
				}
				if remaining == 0 {
					if err := u.fleetRepo.UpdateVehicleStatus(tx, assignment.VehicleID, entity.VehicleStatusAvailable); err != nil {
						u.log.Warnf("Failed to release vehicle %d: %+v", assignment.VehicleID, err)
						return nil, err
					}
				}
			}
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return assignment, nil
}
