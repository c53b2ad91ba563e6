package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/converter"
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound   = errors.New("appointment not found")
	ErrDoctorNotFound        = errors.New("doctor not found")
	ErrMedicalRecordNotFound = errors.New("medical record not found")
)

const defaultAppointmentDuration = 30

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetTodayAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)

	CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error)
	GetPatientMedicalRecords(ctx context.Context, patientID uint) ([]entity.MedicalRecord, error)
}

type appointmentUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	apptRepo    repository.AppointmentRepository
	recordRepo  repository.MedicalRecordRepository
	patientRepo repository.PatientRepository
	userRepo    repository.UserRepository
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	apptRepo repository.AppointmentRepository,
	recordRepo repository.MedicalRecordRepository,
	patientRepo repository.PatientRepository,
	userRepo repository.UserRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:          db,
		log:         log,
		apptRepo:    apptRepo,
		recordRepo:  recordRepo,
		patientRepo: patientRepo,
		userRepo:    userRepo,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		// Fall back to plain date for walk-in bookings entered by hand
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
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

	doctor, err := u.userRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %d: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrDoctorNotFound
	}

	duration := req.Duration
	if duration == 0 {
		duration = defaultAppointmentDuration
	}

	appointment := &entity.Appointment{
		PatientID: req.PatientID,
		DoctorID:  req.DoctorID,
		Date:      date,
		Duration:  duration,
		Type:      req.Type,
		Status:    entity.AppointmentStatusScheduled,
		Notes:     req.Notes,
	}

	if err := u.apptRepo.Create(tx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	appointment.Patient = *patient
	appointment.Doctor = *doctor
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.apptRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	appointments, err := u.apptRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetTodayAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24 * time.Hour)

	appointments, err := u.apptRepo.FindBetween(u.db.WithContext(ctx), start, end)
	if err != nil {
		u.log.Warnf("Failed to find today's appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uint) (*dto.AppointmentListResponse, error) {
	appointments, err := u.apptRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uint, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.apptRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			date, err = time.Parse("2006-01-02", *req.Date)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		appointment.Date = date
	}
	if req.Duration != nil {
		appointment.Duration = *req.Duration
	}
	if req.Type != nil {
		appointment.Type = *req.Type
	}
	if req.Status != nil {
		appointment.Status = entity.AppointmentStatus(*req.Status)
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}

	if err := u.apptRepo.Save(tx, appointment); err != nil {
		u.log.Warnf("Failed to update appointment %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) CreateMedicalRecord(ctx context.Context, req *dto.CreateMedicalRecordRequest) (*entity.MedicalRecord, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	date, err := time.Parse(time.RFC3339, req.Date)
	if err != nil {
		date, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, ErrInvalidDateFormat
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

	record := &entity.MedicalRecord{
		PatientID:  req.PatientID,
		DoctorID:   req.DoctorID,
		Date:       date,
		Subjective: req.Subjective,
		Objective:  req.Objective,
		Assessment: req.Assessment,
		Plan:       req.Plan,
	}

	if err := u.recordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create medical record: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return record, nil
}

func (u *appointmentUsecase) GetPatientMedicalRecords(ctx context.Context, patientID uint) ([]entity.MedicalRecord, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find medical records for patient %d: %+v", patientID, err)
		return nil, err
	}

	return records, nil
}
