package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-erp/config"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/repository"
	"hospital-erp/internal/service"

	"gorm.io/gorm"
)

func newLabUsecaseForTest(t *testing.T) (LabUsecase, *gorm.DB) {
	t.Helper()

	db := newTestDB(t)
	log := newTestLogger()
	labRepo := repository.NewLabRepository()
	syncService := service.NewLabSyncService(db, log, labRepo, config.LabConfig{RequestTimeout: time.Second})
	uc := NewLabUsecase(db, log, labRepo, repository.NewPatientRepository(), syncService)
	return uc, db
}

func seedLabSystem(t *testing.T, db *gorm.DB, apiURL string) *entity.LabSystem {
	t.Helper()

	system := &entity.LabSystem{
		Name:   "Central Lab",
		APIURL: apiURL,
		APIKey: "test-key",
		Status: "active",
	}
	if err := db.Create(system).Error; err != nil {
		t.Fatalf("failed to seed lab system: %v", err)
	}
	return system
}

func TestSyncResultsStoresPulledResults(t *testing.T) {
	uc, db := newLabUsecaseForTest(t)
	patient := seedPatient(t, db, "P-100")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/results" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `[
			{"patient_id": %d, "test_type": "hematology", "test_name": "CBC", "result_data": "within range", "status": "final"},
			{"patient_id": %d, "test_type": "chemistry", "test_name": "Basic Metabolic Panel", "result_data": "within range"}
		]`, patient.ID, patient.ID)
	}))
	defer server.Close()

	system := seedLabSystem(t, db, server.URL)

	result, err := uc.SyncResults(context.Background(), system.ID)
	if err != nil {
		t.Fatalf("SyncResults returned error: %v", err)
	}
	if result.Synced != 2 {
		t.Errorf("synced = %d, want 2", result.Synced)
	}
	if result.LastSyncAt.IsZero() {
		t.Error("last sync timestamp is zero")
	}

	var count int64
	if err := db.Model(&entity.LabResult{}).Where("lab_system_id = ?", system.ID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count lab results: %v", err)
	}
	if count != 2 {
		t.Errorf("stored results = %d, want 2", count)
	}

	var reloaded entity.LabSystem
	if err := db.First(&reloaded, system.ID).Error; err != nil {
		t.Fatalf("failed to reload lab system: %v", err)
	}
	if reloaded.LastSyncAt == nil {
		t.Fatal("last sync timestamp not persisted")
	}
	if d := reloaded.LastSyncAt.Sub(result.LastSyncAt); d < -time.Second || d > time.Second {
		t.Errorf("response timestamp %v does not match stored %v", result.LastSyncAt, *reloaded.LastSyncAt)
	}
}

func TestSyncResultsUnreachableLab(t *testing.T) {
	uc, db := newLabUsecaseForTest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	system := seedLabSystem(t, db, server.URL)

	_, err := uc.SyncResults(context.Background(), system.ID)
	if !errors.Is(err, ErrLabUnreachable) {
		t.Errorf("error = %v, want ErrLabUnreachable", err)
	}
}

func TestSyncResultsUnknownSystem(t *testing.T) {
	uc, _ := newLabUsecaseForTest(t)

	_, err := uc.SyncResults(context.Background(), 999)
	if !errors.Is(err, ErrLabSystemNotFound) {
		t.Errorf("error = %v, want ErrLabSystemNotFound", err)
	}
}

func TestTestConnectionReportsUnreachable(t *testing.T) {
	uc, db := newLabUsecaseForTest(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	system := seedLabSystem(t, db, server.URL)

	result, err := uc.TestConnection(context.Background(), system.ID)
	if err != nil {
		t.Fatalf("TestConnection returned error: %v", err)
	}
	if result.Connected {
		t.Error("connection to a closed server reported as connected")
	}
}
