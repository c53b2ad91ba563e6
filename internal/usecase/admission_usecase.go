package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"hospital-erp/internal/converter"
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/delivery/http/middleware"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"
	"hospital-erp/internal/service"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrWardNotFound      = errors.New("ward not found")
	ErrBedNotFound       = errors.New("bed not found")
	ErrBedNumberTaken    = errors.New("bed number already exists")
	ErrBedUnavailable    = errors.New("bed is not available")
	ErrAdmissionNotFound = errors.New("admission not found")
	ErrInvalidAmount     = errors.New("invalid amount")
)

type AdmissionUsecase interface {
	CreateWard(ctx context.Context, req *dto.CreateWardRequest) (*entity.Ward, error)
	GetWards(ctx context.Context) ([]entity.Ward, error)
	UpdateWard(ctx context.Context, id uint, req *dto.UpdateWardRequest) (*entity.Ward, error)

	CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error)
	GetBeds(ctx context.Context) (*dto.BedListResponse, error)
	GetAvailableBeds(ctx context.Context) (*dto.BedListResponse, error)
	GetBedsByWard(ctx context.Context, wardID uint) (*dto.BedListResponse, error)
	UpdateBed(ctx context.Context, id uint, req *dto.UpdateBedRequest) (*dto.BedResponse, error)

	AdmitPatient(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error)
	GetAdmission(ctx context.Context, id uint) (*dto.AdmissionResponse, error)
	GetAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error)
	GetActiveAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error)
	GetPatientAdmissions(ctx context.Context, patientID uint) (*dto.AdmissionListResponse, error)
	UpdateAdmission(ctx context.Context, id uint, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error)
	DischargePatient(ctx context.Context, id uint) (*dto.AdmissionResponse, error)
}

type admissionUsecase struct {
	db            *gorm.DB
	log           *logrus.Logger
	wardRepo      repository.WardRepository
	admissionRepo repository.AdmissionRepository
	patientRepo   repository.PatientRepository
	audit         service.AuditService
}

func NewAdmissionUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	wardRepo repository.WardRepository,
	admissionRepo repository.AdmissionRepository,
	patientRepo repository.PatientRepository,
	audit service.AuditService,
) AdmissionUsecase {
	return &admissionUsecase{
		db:            db,
		log:           log,
		wardRepo:      wardRepo,
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		audit:         audit,
	}
}

// actorFromContext returns the authenticated user for audit rows, nil when
// the call did not come through the auth middleware.
func actorFromContext(ctx context.Context) *uint {
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		return &userID
	}
	return nil
}

func (u *admissionUsecase) CreateWard(ctx context.Context, req *dto.CreateWardRequest) (*entity.Ward, error) {
	ward := &entity.Ward{
		Name:     req.Name,
		Type:     req.Type,
		Capacity: req.Capacity,
	}

	if err := u.wardRepo.CreateWard(u.db.WithContext(ctx), ward); err != nil {
		u.log.Warnf("Failed to create ward: %+v", err)
		return nil, err
	}

	return ward, nil
}

func (u *admissionUsecase) GetWards(ctx context.Context) ([]entity.Ward, error) {
	wards, err := u.wardRepo.FindAllWards(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find wards: %+v", err)
		return nil, err
	}

	return wards, nil
}

func (u *admissionUsecase) UpdateWard(ctx context.Context, id uint, req *dto.UpdateWardRequest) (*entity.Ward, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ward, err := u.wardRepo.FindWardByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find ward %d: %+v", id, err)
		return nil, err
	}
	if ward == nil {
		return nil, ErrWardNotFound
	}

	if req.Name != nil {
		ward.Name = *req.Name
	}
	if req.Type != nil {
		ward.Type = *req.Type
	}
	if req.Capacity != nil {
		ward.Capacity = *req.Capacity
	}

	if err := u.wardRepo.SaveWard(tx, ward); err != nil {
		u.log.Warnf("Failed to update ward %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return ward, nil
}

func (u *admissionUsecase) CreateBed(ctx context.Context, req *dto.CreateBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	ward, err := u.wardRepo.FindWardByID(tx, req.WardID)
	if err != nil {
		u.log.Warnf("Failed to find ward %d: %+v", req.WardID, err)
		return nil, err
	}
	if ward == nil {
		return nil, ErrWardNotFound
	}

	existing, err := u.wardRepo.FindBedByNumber(tx, req.BedNumber)
	if err != nil {
		u.log.Warnf("Failed to check bed number: %+v", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrBedNumberTaken
	}

	bed := &entity.Bed{
		BedNumber: req.BedNumber,
		WardID:    req.WardID,
		Status:    entity.BedStatusAvailable,
	}

	if err := u.wardRepo.CreateBed(tx, bed); err != nil {
		u.log.Warnf("Failed to create bed: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	bed.Ward = *ward
	return converter.BedToResponse(bed), nil
}

func (u *admissionUsecase) GetBeds(ctx context.Context) (*dto.BedListResponse, error) {
	beds, err := u.wardRepo.FindAllBeds(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find beds: %+v", err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

func (u *admissionUsecase) GetAvailableBeds(ctx context.Context) (*dto.BedListResponse, error) {
	beds, err := u.wardRepo.FindBedsByStatus(u.db.WithContext(ctx), entity.BedStatusAvailable)
	if err != nil {
		u.log.Warnf("Failed to find available beds: %+v", err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

func (u *admissionUsecase) GetBedsByWard(ctx context.Context, wardID uint) (*dto.BedListResponse, error) {
	beds, err := u.wardRepo.FindBedsByWard(u.db.WithContext(ctx), wardID)
	if err != nil {
		u.log.Warnf("Failed to find beds for ward %d: %+v", wardID, err)
		return nil, err
	}

	return &dto.BedListResponse{
		Beds:  converter.BedsToResponses(beds),
		Total: len(beds),
	}, nil
}

func (u *admissionUsecase) UpdateBed(ctx context.Context, id uint, req *dto.UpdateBedRequest) (*dto.BedResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bed, err := u.wardRepo.FindBedByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find bed %d: %+v", id, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	if req.WardID != nil {
		bed.WardID = *req.WardID
	}
	if req.Status != nil {
		bed.Status = entity.BedStatus(*req.Status)
	}

	if err := u.wardRepo.SaveBed(tx, bed); err != nil {
		u.log.Warnf("Failed to update bed %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BedToResponse(bed), nil
}

// AdmitPatient creates an admission and occupies the bed in one transaction.
// The occupy is a conditional update, so two concurrent admissions for the
// same bed cannot both succeed.
func (u *admissionUsecase) AdmitPatient(ctx context.Context, req *dto.CreateAdmissionRequest) (*dto.AdmissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admissionDate, err := time.Parse(time.RFC3339, req.AdmissionDate)
	if err != nil {
		admissionDate, err = time.Parse("2006-01-02", req.AdmissionDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	deposit := decimal.Zero
	if req.Deposit != "" {
		deposit, err = decimal.NewFromString(req.Deposit)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	bed, err := u.wardRepo.FindBedByID(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to find bed %d: %+v", req.BedID, err)
		return nil, err
	}
	if bed == nil {
		return nil, ErrBedNotFound
	}

	affected, err := u.wardRepo.OccupyBed(tx, req.BedID)
	if err != nil {
		u.log.Warnf("Failed to occupy bed %d: %+v", req.BedID, err)
		return nil, err
	}
	if affected == 0 {
		return nil, ErrBedUnavailable
	}

	admission := &entity.Admission{
		PatientID:     req.PatientID,
		BedID:         req.BedID,
		DoctorID:      req.DoctorID,
		AdmissionDate: admissionDate,
		Diagnosis:     req.Diagnosis,
		Status:        entity.AdmissionStatusActive,
		Deposit:       deposit,
	}

	if err := u.admissionRepo.Create(tx, admission); err != nil {
		u.log.Warnf("Failed to create admission: %+v", err)
		return nil, err
	}

	admissionID := strconv.FormatUint(uint64(admission.ID), 10)
	if err := u.audit.LogCreate(tx, actorFromContext(ctx), "admission.admit", "admissions", admissionID, admission); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Admitted patient %d to bed %d (admission %d)", req.PatientID, req.BedID, admission.ID)

	admission.Patient = *patient
	admission.Bed = *bed
	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) GetAdmission(ctx context.Context, id uint) (*dto.AdmissionResponse, error) {
	admission, err := u.admissionRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find admission %d: %+v", id, err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	return converter.AdmissionToResponse(admission), nil
}

func (u *admissionUsecase) GetAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error) {
	admissions, err := u.admissionRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find admissions: %+v", err)
		return nil, err
	}

	return &dto.AdmissionListResponse{
		Admissions: converter.AdmissionsToResponses(admissions),
		Total:      len(admissions),
	}, nil
}

func (u *admissionUsecase) GetActiveAdmissions(ctx context.Context) (*dto.AdmissionListResponse, error) {
	admissions, err := u.admissionRepo.FindActive(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find active admissions: %+v", err)
		return nil, err
	}

	return &dto.AdmissionListResponse{
		Admissions: converter.AdmissionsToResponses(admissions),
		Total:      len(admissions),
	}, nil
}

func (u *admissionUsecase) GetPatientAdmissions(ctx context.Context, patientID uint) (*dto.AdmissionListResponse, error) {
	admissions, err := u.admissionRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find admissions for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AdmissionListResponse{
		Admissions: converter.AdmissionsToResponses(admissions),
		Total:      len(admissions),
	}, nil
}

func (u *admissionUsecase) UpdateAdmission(ctx context.Context, id uint, req *dto.UpdateAdmissionRequest) (*dto.AdmissionResponse, error) {
	// A status flip to discharged goes through the guarded discharge path so
	// the bed release happens exactly once.
	if req.Status != nil && entity.AdmissionStatus(*req.Status) == entity.AdmissionStatusDischarged {
		return u.DischargePatient(ctx, id)
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admission %d: %+v", id, err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	if req.Diagnosis != nil {
		admission.Diagnosis = *req.Diagnosis
	}
	if req.Deposit != nil {
		deposit, err := decimal.NewFromString(*req.Deposit)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		admission.Deposit = deposit
	}
	if req.DischargeDate != nil {
		dischargeDate, err := time.Parse(time.RFC3339, *req.DischargeDate)
		if err != nil {
			dischargeDate, err = time.Parse("2006-01-02", *req.DischargeDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		admission.DischargeDate = &dischargeDate
	}

	if err := u.admissionRepo.Save(tx, admission); err != nil {
		u.log.Warnf("Failed to update admission %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdmissionToResponse(admission), nil
}

// DischargePatient marks the admission discharged and releases the bed.
// Discharging an already discharged admission is a no-op for the bed, so a
// later admission holding the same bed is never released by accident.
func (u *admissionUsecase) DischargePatient(ctx context.Context, id uint) (*dto.AdmissionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	admission, err := u.admissionRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find admission %d: %+v", id, err)
		return nil, err
	}
	if admission == nil {
		return nil, ErrAdmissionNotFound
	}

	now := time.Now()
	affected, err := u.admissionRepo.MarkDischarged(tx, id, now)
	if err != nil {
		u.log.Warnf("Failed to discharge admission %d: %+v", id, err)
		return nil, err
	}

	if affected > 0 {
		if err := u.wardRepo.ReleaseBed(tx, admission.BedID); err != nil {
			u.log.Warnf("Failed to release bed %d: %+v", admission.BedID, err)
			return nil, err
		}
		previousStatus := admission.Status
		admission.Status = entity.AdmissionStatusDischarged
		admission.DischargeDate = &now

		admissionID := strconv.FormatUint(uint64(admission.ID), 10)
		if err := u.audit.LogUpdate(tx, actorFromContext(ctx), "admission.discharge", "admissions", admissionID, previousStatus, admission.Status); err != nil {
			return nil, err
		}
		u.log.Infof("Discharged admission %d, released bed %d", id, admission.BedID)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AdmissionToResponse(admission), nil
}
