package repository

import (
	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type FleetRepository interface {
	CreateVehicle(db *gorm.DB, vehicle *entity.Vehicle) error
	FindVehicleByID(db *gorm.DB, id uint) (*entity.Vehicle, error)
	FindVehicleByPlate(db *gorm.DB, plateNumber string) (*entity.Vehicle, error)
	FindAllVehicles(db *gorm.DB) ([]entity.Vehicle, error)
	SaveVehicle(db *gorm.DB, vehicle *entity.Vehicle) error
	UpdateVehicleStatus(db *gorm.DB, vehicleID uint, status entity.VehicleStatus) error

	CreateAssignment(db *gorm.DB, assignment *entity.VehicleAssignment) error
	FindAssignmentByID(db *gorm.DB, id uint) (*entity.VehicleAssignment, error)
	FindAllAssignments(db *gorm.DB) ([]entity.VehicleAssignment, error)
	SaveAssignment(db *gorm.DB, assignment *entity.VehicleAssignment) error

	// CountInProgressByVehicle counts assignments still in progress for a
	// vehicle, excluding the given assignment id.
	CountInProgressByVehicle(db *gorm.DB, vehicleID, excludeAssignmentID uint) (int64, error)
}
