package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hospital-erp/config"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrLabUnreachable = errors.New("lab system is unreachable")

// labResultPayload is the wire format lab systems return from /results.
type labResultPayload struct {
	PatientID    uint   `json:"patient_id"`
	TestType     string `json:"test_type"`
	TestName     string `json:"test_name"`
	ResultData   string `json:"result_data"`
	Status       string `json:"status"`
	CriticalFlag bool   `json:"critical_flag"`
	ResultDate   string `json:"result_date"`
}

// LabSyncService talks to external lab systems over HTTP: connection probes
// and result pulls. Pulled results are stored and the system's last sync
// timestamp is advanced.
type LabSyncService struct {
	db      *gorm.DB
	log     *logrus.Logger
	labRepo repository.LabRepository
	client  *http.Client
}

func NewLabSyncService(db *gorm.DB, log *logrus.Logger, labRepo repository.LabRepository, cfg config.LabConfig) *LabSyncService {
	return &LabSyncService{
		db:      db,
		log:     log,
		labRepo: labRepo,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// TestConnection probes the lab system's health endpoint.
func (s *LabSyncService) TestConnection(ctx context.Context, system *entity.LabSystem) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, system.APIURL+"/health", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+system.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Lab system %d connection test failed: %+v", system.ID, err)
		return ErrLabUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.log.Warnf("Lab system %d health check returned %d", system.ID, resp.StatusCode)
		return fmt.Errorf("lab system returned status %d", resp.StatusCode)
	}

	return nil
}

// Sync pulls pending results from the lab system, stores them and advances
// LastSyncAt. Returns the number of results stored and the new sync time.
func (s *LabSyncService) Sync(ctx context.Context, system *entity.LabSystem) (int, time.Time, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, system.APIURL+"/results", nil)
	if err != nil {
		return 0, time.Time{}, err
	}
	req.Header.Set("Authorization", "Bearer "+system.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Warnf("Lab system %d sync failed: %+v", system.ID, err)
		return 0, time.Time{}, ErrLabUnreachable
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, time.Time{}, fmt.Errorf("lab system returned status %d", resp.StatusCode)
	}

	var payloads []labResultPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		s.log.Warnf("Failed to decode lab results from system %d: %+v", system.ID, err)
		return 0, time.Time{}, err
	}

	tx := s.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	stored := 0
	for _, payload := range payloads {
		result := &entity.LabResult{
			PatientID:    payload.PatientID,
			LabSystemID:  system.ID,
			TestType:     payload.TestType,
			TestName:     payload.TestName,
			ResultData:   payload.ResultData,
			Status:       payload.Status,
			CriticalFlag: payload.CriticalFlag,
		}
		if result.Status == "" {
			result.Status = "pending"
		}
		if payload.ResultDate != "" {
			if resultDate, err := time.Parse(time.RFC3339, payload.ResultDate); err == nil {
				result.ResultDate = &resultDate
			}
		}

		if err := s.labRepo.CreateResult(tx, result); err != nil {
			s.log.Warnf("Failed to store lab result: %+v", err)
			return 0, time.Time{}, err
		}
		stored++
	}

	now := time.Now()
	system.LastSyncAt = &now
	if err := s.labRepo.SaveSystem(tx, system); err != nil {
		s.log.Warnf("Failed to update last sync time for system %d: %+v", system.ID, err)
		return 0, time.Time{}, err
	}

	if err := tx.Commit().Error; err != nil {
		s.log.Warnf("Failed commit transaction: %+v", err)
		return 0, time.Time{}, err
	}

	s.log.Infof("Synced %d results from lab system %d", stored, system.ID)
	return stored, now, nil
}
