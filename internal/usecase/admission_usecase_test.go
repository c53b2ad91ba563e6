package usecase

import (
	"context"
	"errors"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/repository"
	"hospital-erp/internal/service"

	"gorm.io/gorm"
)

func newAdmissionUsecaseForTest(t *testing.T) (AdmissionUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	audit := service.NewAuditService(db, log, repository.NewAuditLogRepository())
	uc := NewAdmissionUsecase(
		db,
		log,
		repository.NewWardRepository(),
		repository.NewAdmissionRepository(),
		repository.NewPatientRepository(),
		audit,
	)
	return uc, db
}

func seedWardWithBed(t *testing.T, db *gorm.DB, bedNumber string) *entity.Bed {
	t.Helper()

	ward := &entity.Ward{Name: "General", Type: "general", Capacity: 10}
	if err := db.Create(ward).Error; err != nil {
		t.Fatalf("failed to seed ward: %v", err)
	}
	bed := &entity.Bed{BedNumber: bedNumber, WardID: ward.ID, Status: entity.BedStatusAvailable}
	if err := db.Create(bed).Error; err != nil {
		t.Fatalf("failed to seed bed: %v", err)
	}
	return bed
}

func TestAdmitPatientOccupiesBed(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	doctor := seedDoctor(t, db, "dr.house")
	bed := seedWardWithBed(t, db, "A-101")

	resp, err := uc.AdmitPatient(ctx, &dto.CreateAdmissionRequest{
		PatientID:     patient.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-10",
		Diagnosis:     "pneumonia",
		Deposit:       "500.00",
	})
	if err != nil {
		t.Fatalf("AdmitPatient returned error: %v", err)
	}
	if resp.Status != string(entity.AdmissionStatusActive) {
		t.Errorf("admission status = %q, want %q", resp.Status, entity.AdmissionStatusActive)
	}

	var stored entity.Bed
	if err := db.First(&stored, bed.ID).Error; err != nil {
		t.Fatalf("failed to reload bed: %v", err)
	}
	if stored.Status != entity.BedStatusOccupied {
		t.Errorf("bed status = %q, want %q", stored.Status, entity.BedStatusOccupied)
	}

	var auditCount int64
	if err := db.Model(&entity.AuditLog{}).Where("action = ?", "admission.admit").Count(&auditCount).Error; err != nil {
		t.Fatalf("failed to count audit logs: %v", err)
	}
	if auditCount != 1 {
		t.Errorf("admit audit log count = %d, want 1", auditCount)
	}
}

func TestAdmitPatientRejectsOccupiedBed(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)
	ctx := context.Background()

	first := seedPatient(t, db, "P-001")
	second := seedPatient(t, db, "P-002")
	doctor := seedDoctor(t, db, "dr.house")
	bed := seedWardWithBed(t, db, "A-101")

	if _, err := uc.AdmitPatient(ctx, &dto.CreateAdmissionRequest{
		PatientID:     first.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-10",
	}); err != nil {
		t.Fatalf("first admission returned error: %v", err)
	}

	_, err := uc.AdmitPatient(ctx, &dto.CreateAdmissionRequest{
		PatientID:     second.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-11",
	})
	if !errors.Is(err, ErrBedUnavailable) {
		t.Errorf("second admission error = %v, want ErrBedUnavailable", err)
	}
}

func TestAdmitPatientInvalidDeposit(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)

	patient := seedPatient(t, db, "P-001")
	doctor := seedDoctor(t, db, "dr.house")
	bed := seedWardWithBed(t, db, "A-101")

	_, err := uc.AdmitPatient(context.Background(), &dto.CreateAdmissionRequest{
		PatientID:     patient.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-10",
		Deposit:       "not-a-number",
	})
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("error = %v, want ErrInvalidAmount", err)
	}
}

func TestDischargePatientReleasesBedOnce(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	doctor := seedDoctor(t, db, "dr.house")
	bed := seedWardWithBed(t, db, "A-101")

	resp, err := uc.AdmitPatient(ctx, &dto.CreateAdmissionRequest{
		PatientID:     patient.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-10",
	})
	if err != nil {
		t.Fatalf("AdmitPatient returned error: %v", err)
	}

	discharged, err := uc.DischargePatient(ctx, resp.ID)
	if err != nil {
		t.Fatalf("DischargePatient returned error: %v", err)
	}
	if discharged.Status != string(entity.AdmissionStatusDischarged) {
		t.Errorf("admission status = %q, want discharged", discharged.Status)
	}
	if discharged.DischargeDate == nil {
		t.Error("discharge date not set")
	}

	var stored entity.Bed
	if err := db.First(&stored, bed.ID).Error; err != nil {
		t.Fatalf("failed to reload bed: %v", err)
	}
	if stored.Status != entity.BedStatusAvailable {
		t.Errorf("bed status after discharge = %q, want available", stored.Status)
	}

	// A repeated discharge must not touch the bed again or write a second
	// audit row.
	if _, err := uc.DischargePatient(ctx, resp.ID); err != nil {
		t.Fatalf("second discharge returned error: %v", err)
	}
	var auditCount int64
	if err := db.Model(&entity.AuditLog{}).Where("action = ?", "admission.discharge").Count(&auditCount).Error; err != nil {
		t.Fatalf("failed to count audit logs: %v", err)
	}
	if auditCount != 1 {
		t.Errorf("discharge audit log count = %d, want 1", auditCount)
	}
}

func TestUpdateAdmissionStatusRoutesThroughDischarge(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)
	ctx := context.Background()

	patient := seedPatient(t, db, "P-001")
	doctor := seedDoctor(t, db, "dr.house")
	bed := seedWardWithBed(t, db, "A-101")

	resp, err := uc.AdmitPatient(ctx, &dto.CreateAdmissionRequest{
		PatientID:     patient.ID,
		BedID:         bed.ID,
		DoctorID:      doctor.ID,
		AdmissionDate: "2026-01-10",
	})
	if err != nil {
		t.Fatalf("AdmitPatient returned error: %v", err)
	}

	status := string(entity.AdmissionStatusDischarged)
	updated, err := uc.UpdateAdmission(ctx, resp.ID, &dto.UpdateAdmissionRequest{Status: &status})
	if err != nil {
		t.Fatalf("UpdateAdmission returned error: %v", err)
	}
	if updated.Status != status {
		t.Errorf("admission status = %q, want discharged", updated.Status)
	}

	var stored entity.Bed
	if err := db.First(&stored, bed.ID).Error; err != nil {
		t.Fatalf("failed to reload bed: %v", err)
	}
	if stored.Status != entity.BedStatusAvailable {
		t.Errorf("bed status = %q, want available", stored.Status)
	}
}

func TestCreateBedRejectsDuplicateNumber(t *testing.T) {
	uc, db := newAdmissionUsecaseForTest(t)
	ctx := context.Background()

	bed := seedWardWithBed(t, db, "A-101")

	_, err := uc.CreateBed(ctx, &dto.CreateBedRequest{BedNumber: "A-101", WardID: bed.WardID})
	if !errors.Is(err, ErrBedNumberTaken) {
		t.Errorf("error = %v, want ErrBedNumberTaken", err)
	}
}
