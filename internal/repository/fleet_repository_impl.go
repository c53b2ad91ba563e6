package repository

import (
	"errors"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type fleetRepository struct{}

func NewFleetRepository() domainRepo.FleetRepository {
	return &fleetRepository{}
}

func (r *fleetRepository) CreateVehicle(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Create(vehicle).Error
}

func (r *fleetRepository) FindVehicleByID(db *gorm.DB, id uint) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := db.Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *fleetRepository) FindVehicleByPlate(db *gorm.DB, plateNumber string) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := db.Where("plate_number = ?", plateNumber).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (r *fleetRepository) FindAllVehicles(db *gorm.DB) ([]entity.Vehicle, error) {
	var vehicles []entity.Vehicle
	err := db.Order("plate_number ASC").Find(&vehicles).Error
	if err != nil {
		return nil, err
	}
	return vehicles, nil
}

func (r *fleetRepository) SaveVehicle(db *gorm.DB, vehicle *entity.Vehicle) error {
	return db.Save(vehicle).Error
}

func (r *fleetRepository) UpdateVehicleStatus(db *gorm.DB, vehicleID uint, status entity.VehicleStatus) error {
	return db.Model(&entity.Vehicle{}).
		Where("id = ?", vehicleID).
		Update("status", status).Error
}

func (r *fleetRepository) CreateAssignment(db *gorm.DB, assignment *entity.VehicleAssignment) error {
	return db.Create(assignment).Error
}

func (r *fleetRepository) FindAssignmentByID(db *gorm.DB, id uint) (*entity.VehicleAssignment, error) {
	var assignment entity.VehicleAssignment
	err := db.Preload("Vehicle").Where("id = ?", id).First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assignment, nil
}

func (r *fleetRepository) FindAllAssignments(db *gorm.DB) ([]entity.VehicleAssignment, error) {
	var assignments []entity.VehicleAssignment
	err := db.Preload("Vehicle").Order("start_time DESC").Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (r *fleetRepository) SaveAssignment(db *gorm.DB, assignment *entity.VehicleAssignment) error {
	return db.Save(assignment).Error
}

func (r *fleetRepository) CountInProgressByVehicle(db *gorm.DB, vehicleID, excludeAssignmentID uint) (int64, error) {
	var count int64
	err := db.Model(&entity.VehicleAssignment{}).
		Where("vehicle_id = ? AND status = ? AND id != ?",
			vehicleID, entity.AssignmentStatusInProgress, excludeAssignmentID).
		Count(&count).Error
	return count, err
}
