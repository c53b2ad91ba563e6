package usecase

import (
	"io"
	"testing"
	"time"

	"hospital-erp/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database and migrates the schema.
// The pool is pinned to a single connection so every session sees the same
// in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get underlying connection: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Patient{},
		&entity.Ward{},
		&entity.Bed{},
		&entity.Admission{},
		&entity.PharmacyStore{},
		&entity.InventoryItem{},
		&entity.InventoryTransfer{},
		&entity.Bill{},
		&entity.BillItem{},
		&entity.Service{},
		&entity.ServicePriceVersion{},
		&entity.ServiceOrder{},
		&entity.ServiceOrderItem{},
		&entity.Account{},
		&entity.Transaction{},
		&entity.PosTerminal{},
		&entity.PosTransaction{},
		&entity.Vehicle{},
		&entity.VehicleAssignment{},
		&entity.LabSystem{},
		&entity.LabResult{},
		&entity.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test schema: %v", err)
	}

	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func seedPatient(t *testing.T, db *gorm.DB, code string) *entity.Patient {
	t.Helper()

	patient := &entity.Patient{
		PatientCode: code,
		Name:        "Test Patient",
		DateOfBirth: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		Status:      entity.PatientStatusActive,
	}
	if err := db.Create(patient).Error; err != nil {
		t.Fatalf("failed to seed patient: %v", err)
	}
	return patient
}

func seedDoctor(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	doctor := &entity.User{
		Username: username,
		Password: "hashed",
		Name:     "Dr. Test",
		Role:     entity.RoleDoctor,
		IsActive: true,
	}
	if err := db.Create(doctor).Error; err != nil {
		t.Fatalf("failed to seed doctor: %v", err)
	}
	return doctor
}
