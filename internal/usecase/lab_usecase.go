package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"
	"hospital-erp/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrLabSystemNotFound = errors.New("lab system not found")
	ErrLabResultNotFound = errors.New("lab result not found")
	ErrLabUnreachable    = errors.New("lab system is unreachable")
)

type LabUsecase interface {
	CreateSystem(ctx context.Context, req *dto.CreateLabSystemRequest) (*entity.LabSystem, error)
	GetSystem(ctx context.Context, id uint) (*entity.LabSystem, error)
	GetSystems(ctx context.Context) ([]entity.LabSystem, error)
	UpdateSystem(ctx context.Context, id uint, req *dto.UpdateLabSystemRequest) (*entity.LabSystem, error)
	TestConnection(ctx context.Context, id uint) (*dto.LabConnectionResponse, error)
	SyncResults(ctx context.Context, id uint) (*dto.LabSyncResponse, error)

	CreateResult(ctx context.Context, req *dto.CreateLabResultRequest) (*entity.LabResult, error)
	GetResults(ctx context.Context) ([]entity.LabResult, error)
	GetPatientResults(ctx context.Context, patientID uint) ([]entity.LabResult, error)
	UpdateResult(ctx context.Context, id uint, req *dto.UpdateLabResultRequest) (*entity.LabResult, error)
}

type labUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	labRepo     repository.LabRepository
	patientRepo repository.PatientRepository
	syncService *service.LabSyncService
}

func NewLabUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	labRepo repository.LabRepository,
	patientRepo repository.PatientRepository,
	syncService *service.LabSyncService,
) LabUsecase {
	return &labUsecase{
		db:          db,
		log:         log,
		labRepo:     labRepo,
		patientRepo: patientRepo,
		syncService: syncService,
	}
}

func (u *labUsecase) CreateSystem(ctx context.Context, req *dto.CreateLabSystemRequest) (*entity.LabSystem, error) {
	system := &entity.LabSystem{
		Name:          req.Name,
		APIURL:        req.APIURL,
		APIKey:        req.APIKey,
		Status:        "active",
		SyncFrequency: req.SyncFrequency,
	}

	if err := u.labRepo.CreateSystem(u.db.WithContext(ctx), system); err != nil {
		u.log.Warnf("Failed to create lab system: %+v", err)
		return nil, err
	}

	return system, nil
}

func (u *labUsecase) GetSystem(ctx context.Context, id uint) (*entity.LabSystem, error) {
	system, err := u.labRepo.FindSystemByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find lab system %d: %+v", id, err)
		return nil, err
	}
	if system == nil {
		return nil, ErrLabSystemNotFound
	}

	return system, nil
}

func (u *labUsecase) GetSystems(ctx context.Context) ([]entity.LabSystem, error) {
	systems, err := u.labRepo.FindAllSystems(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find lab systems: %+v", err)
		return nil, err
	}

	return systems, nil
}

func (u *labUsecase) UpdateSystem(ctx context.Context, id uint, req *dto.UpdateLabSystemRequest) (*entity.LabSystem, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	system, err := u.labRepo.FindSystemByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab system %d: %+v", id, err)
		return nil, err
	}
	if system == nil {
		return nil, ErrLabSystemNotFound
	}

	if req.Name != nil {
		system.Name = *req.Name
	}
	if req.APIURL != nil {
		system.APIURL = *req.APIURL
	}
	if req.APIKey != nil {
		system.APIKey = *req.APIKey
	}
	if req.Status != nil {
		system.Status = *req.Status
	}
	if req.SyncFrequency != nil {
		system.SyncFrequency = *req.SyncFrequency
	}

	if err := u.labRepo.SaveSystem(tx, system); err != nil {
		u.log.Warnf("Failed to update lab system %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return system, nil
}

func (u *labUsecase) TestConnection(ctx context.Context, id uint) (*dto.LabConnectionResponse, error) {
	system, err := u.labRepo.FindSystemByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find lab system %d: %+v", id, err)
		return nil, err
	}
	if system == nil {
		return nil, ErrLabSystemNotFound
	}

	if err := u.syncService.TestConnection(ctx, system); err != nil {
		return &dto.LabConnectionResponse{Connected: false, Message: err.Error()}, nil
	}

	return &dto.LabConnectionResponse{Connected: true}, nil
}

func (u *labUsecase) SyncResults(ctx context.Context, id uint) (*dto.LabSyncResponse, error) {
	system, err := u.labRepo.FindSystemByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find lab system %d: %+v", id, err)
		return nil, err
	}
	if system == nil {
		return nil, ErrLabSystemNotFound
	}

	synced, lastSyncAt, err := u.syncService.Sync(ctx, system)
	if err != nil {
		if errors.Is(err, service.ErrLabUnreachable) {
			return nil, ErrLabUnreachable
		}
		return nil, err
	}

	return &dto.LabSyncResponse{
		Synced:     synced,
		LastSyncAt: lastSyncAt,
	}, nil
}

func (u *labUsecase) CreateResult(ctx context.Context, req *dto.CreateLabResultRequest) (*entity.LabResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	patient, err := u.patientRepo.FindByID(tx, req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %d: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	system, err := u.labRepo.FindSystemByID(tx, req.LabSystemID)
	if err != nil {
		u.log.Warnf("Failed to find lab system %d: %+v", req.LabSystemID, err)
		return nil, err
	}
	if system == nil {
		return nil, ErrLabSystemNotFound
	}

	status := req.Status
	if status == "" {
		status = "pending"
	}

	result := &entity.LabResult{
		PatientID:    req.PatientID,
		LabSystemID:  req.LabSystemID,
		TestType:     req.TestType,
		TestName:     req.TestName,
		ResultData:   req.ResultData,
		Status:       status,
		CriticalFlag: req.CriticalFlag,
	}

	if req.ResultDate != "" {
		resultDate, err := time.Parse(time.RFC3339, req.ResultDate)
		if err != nil {
			resultDate, err = time.Parse("2006-01-02", req.ResultDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		result.ResultDate = &resultDate
	}

	if err := u.labRepo.CreateResult(tx, result); err != nil {
		u.log.Warnf("Failed to create lab result: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	if result.CriticalFlag {
		u.log.Infof("Critical lab result %d recorded for patient %d", result.ID, result.PatientID)
	}
	return result, nil
}

func (u *labUsecase) GetResults(ctx context.Context) ([]entity.LabResult, error) {
	results, err := u.labRepo.FindAllResults(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find lab results: %+v", err)
		return nil, err
	}

	return results, nil
}

func (u *labUsecase) GetPatientResults(ctx context.Context, patientID uint) ([]entity.LabResult, error) {
	results, err := u.labRepo.FindResultsByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find lab results for patient %d: %+v", patientID, err)
		return nil, err
	}

	return results, nil
}

func (u *labUsecase) UpdateResult(ctx context.Context, id uint, req *dto.UpdateLabResultRequest) (*entity.LabResult, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	result, err := u.labRepo.FindResultByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find lab result %d: %+v", id, err)
		return nil, err
	}
	if result == nil {
		return nil, ErrLabResultNotFound
	}

	if req.ResultData != nil {
		result.ResultData = *req.ResultData
	}
	if req.Status != nil {
		result.Status = *req.Status
	}
	if req.CriticalFlag != nil {
		result.CriticalFlag = *req.CriticalFlag
	}
	if req.ResultDate != nil {
		resultDate, err := time.Parse(time.RFC3339, *req.ResultDate)
		if err != nil {
			resultDate, err = time.Parse("2006-01-02", *req.ResultDate)
			if err != nil {
				return nil, ErrInvalidDateFormat
			}
		}
		result.ResultDate = &resultDate
	}

	if err := u.labRepo.SaveResult(tx, result); err != nil {
		u.log.Warnf("Failed to update lab result %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return result, nil
}
