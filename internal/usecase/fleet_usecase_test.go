package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/repository"

	"gorm.io/gorm"
)

func newFleetUsecaseForTest(t *testing.T) (FleetUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	return NewFleetUsecase(db, newTestLogger(), repository.NewFleetRepository()), db
}

func vehicleStatus(t *testing.T, db *gorm.DB, id uint) entity.VehicleStatus {
	t.Helper()

	var vehicle entity.Vehicle
	if err := db.First(&vehicle, id).Error; err != nil {
		t.Fatalf("failed to reload vehicle %d: %v", id, err)
	}
	return vehicle.Status
}

func TestCreateVehicleRejectsDuplicatePlate(t *testing.T) {
	uc, _ := newFleetUsecaseForTest(t)
	ctx := context.Background()

	if _, err := uc.CreateVehicle(ctx, &dto.CreateVehicleRequest{PlateNumber: "B 1234 XY", Type: "ambulance"}); err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}

	_, err := uc.CreateVehicle(ctx, &dto.CreateVehicleRequest{PlateNumber: "B 1234 XY"})
	if !errors.Is(err, ErrPlateNumberTaken) {
		t.Errorf("error = %v, want ErrPlateNumberTaken", err)
	}
}

func TestAssignmentLifecycleTracksVehicleStatus(t *testing.T) {
	uc, db := newFleetUsecaseForTest(t)
	ctx := context.Background()

	vehicle, err := uc.CreateVehicle(ctx, &dto.CreateVehicleRequest{PlateNumber: "B 1234 XY", Type: "ambulance"})
	if err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}

	assignment, err := uc.CreateAssignment(ctx, &dto.CreateAssignmentRequest{
		VehicleID: vehicle.ID,
		Purpose:   "patient transport",
		StartTime: "2026-02-01",
	})
	if err != nil {
		t.Fatalf("CreateAssignment returned error: %v", err)
	}
	if assignment.Status != entity.AssignmentStatusScheduled {
		t.Errorf("assignment status = %q, want scheduled", assignment.Status)
	}
	if got := vehicleStatus(t, db, vehicle.ID); got != entity.VehicleStatusAvailable {
		t.Errorf("vehicle status after scheduling = %q, want available", got)
	}

	inProgress := string(entity.AssignmentStatusInProgress)
	if _, err := uc.UpdateAssignment(ctx, assignment.ID, &dto.UpdateAssignmentRequest{Status: &inProgress}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}
	if got := vehicleStatus(t, db, vehicle.ID); got != entity.VehicleStatusInUse {
		t.Errorf("vehicle status during assignment = %q, want in-use", got)
	}

	completed := string(entity.AssignmentStatusCompleted)
	if _, err := uc.UpdateAssignment(ctx, assignment.ID, &dto.UpdateAssignmentRequest{Status: &completed}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}
	if got := vehicleStatus(t, db, vehicle.ID); got != entity.VehicleStatusAvailable {
		t.Errorf("vehicle status after completion = %q, want available", got)
	}
}

func TestVehicleStaysInUseWhileAnotherAssignmentRuns(t *testing.T) {
	uc, db := newFleetUsecaseForTest(t)
	ctx := context.Background()

	vehicle, err := uc.CreateVehicle(ctx, &dto.CreateVehicleRequest{PlateNumber: "B 1234 XY"})
	if err != nil {
		t.Fatalf("CreateVehicle returned error: %v", err)
	}

	first, err := uc.CreateAssignment(ctx, &dto.CreateAssignmentRequest{VehicleID: vehicle.ID, StartTime: "2026-02-01"})
	if err != nil {
		t.Fatalf("CreateAssignment returned error: %v", err)
	}
	second, err := uc.CreateAssignment(ctx, &dto.CreateAssignmentRequest{VehicleID: vehicle.ID, StartTime: "2026-02-01"})
	if err != nil {
		t.Fatalf("CreateAssignment returned error: %v", err)
	}

	inProgress := string(entity.AssignmentStatusInProgress)
	if _, err := uc.UpdateAssignment(ctx, first.ID, &dto.UpdateAssignmentRequest{Status: &inProgress}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}
	if _, err := uc.UpdateAssignment(ctx, second.ID, &dto.UpdateAssignmentRequest{Status: &inProgress}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}

	// Ending one of two running assignments must not release the vehicle.
	completed := string(entity.AssignmentStatusCompleted)
	if _, err := uc.UpdateAssignment(ctx, first.ID, &dto.UpdateAssignmentRequest{Status: &completed}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}
	if got := vehicleStatus(t, db, vehicle.ID); got != entity.VehicleStatusInUse {
		t.Errorf("vehicle status = %q, want in-use", got)
	}

	if _, err := uc.UpdateAssignment(ctx, second.ID, &dto.UpdateAssignmentRequest{Status: &completed}); err != nil {
		t.Fatalf("UpdateAssignment returned error: %v", err)
	}
	if got := vehicleStatus(t, db, vehicle.ID); got != entity.VehicleStatusAvailable {
		t.Errorf("vehicle status = %q, want available", got)
	}
}

func TestCreateAssignmentUnknownVehicle(t *testing.T) {
	uc, _ := newFleetUsecaseForTest(t)

	_, err := uc.CreateAssignment(context.Background(), &dto.CreateAssignmentRequest{VehicleID: 999, StartTime: "2026-02-01"})
	if !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("error = %v, want ErrVehicleNotFound", err)
	}
}
