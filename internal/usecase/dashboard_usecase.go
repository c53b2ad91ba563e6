package usecase

import (
	"context"
	"encoding/json"
	"time"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	dashboardStatsCacheKey = "dashboard:stats"
	dashboardCacheTTL      = 60 * time.Second
)

type DashboardUsecase interface {
	GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error)
	GetResourceUtilization(ctx context.Context) (*dto.ResourceUtilizationResponse, error)
}

type dashboardUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	wardRepo    repository.WardRepository
	redisClient *redis.Client
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	wardRepo repository.WardRepository,
	redisClient *redis.Client,
) DashboardUsecase {
	return &dashboardUsecase{
		db:          db,
		log:         log,
		wardRepo:    wardRepo,
		redisClient: redisClient,
	}
}

// GetStats aggregates headline counts. The counts are cached in Redis for a
// minute since every logged-in client polls them.
func (u *dashboardUsecase) GetStats(ctx context.Context) (*dto.DashboardStatsResponse, error) {
	if cached, err := u.redisClient.Get(ctx, dashboardStatsCacheKey).Result(); err == nil {
		var stats dto.DashboardStatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			return &stats, nil
		}
	}

	db := u.db.WithContext(ctx)
	stats := &dto.DashboardStatsResponse{}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	counts := []*gorm.DB{
		db.Model(&entity.Patient{}).Count(&stats.TotalPatients),
		db.Model(&entity.Patient{}).Where("status = ?", entity.PatientStatusActive).Count(&stats.ActivePatients),
		db.Model(&entity.Appointment{}).Where("date >= ? AND date < ?", todayStart, todayStart.Add(24*time.Hour)).Count(&stats.TodayAppointments),
		db.Model(&entity.Admission{}).Where("status = ?", entity.AdmissionStatusActive).Count(&stats.ActiveAdmissions),
		db.Model(&entity.Bed{}).Where("status = ?", entity.BedStatusAvailable).Count(&stats.AvailableBeds),
		db.Model(&entity.Bed{}).Where("status = ?", entity.BedStatusOccupied).Count(&stats.OccupiedBeds),
		db.Model(&entity.InventoryItem{}).Where("quantity <= reorder_level").Count(&stats.LowStockItems),
		db.Model(&entity.Bill{}).Where("status = ?", entity.BillStatusPending).Count(&stats.PendingBills),
		db.Model(&entity.LabResult{}).Where("critical_flag = ?", true).Count(&stats.CriticalLabResults),
	}

	for _, result := range counts {
		if result.Error != nil {
			u.log.Warnf("Failed to count dashboard stat: %+v", result.Error)
			return nil, result.Error
		}
	}

	if payload, err := json.Marshal(stats); err == nil {
		if err := u.redisClient.Set(ctx, dashboardStatsCacheKey, payload, dashboardCacheTTL).Err(); err != nil {
			u.log.Warnf("Failed to cache dashboard stats: %+v", err)
		}
	}

	return stats, nil
}

// GetResourceUtilization reports per-ward bed occupancy.
func (u *dashboardUsecase) GetResourceUtilization(ctx context.Context) (*dto.ResourceUtilizationResponse, error) {
	db := u.db.WithContext(ctx)

	wards, err := u.wardRepo.FindAllWards(db)
	if err != nil {
		u.log.Warnf("Failed to find wards: %+v", err)
		return nil, err
	}

	response := &dto.ResourceUtilizationResponse{
		Wards: make([]dto.WardUtilizationResponse, 0, len(wards)),
	}

	for _, ward := range wards {
		occupied, err := u.wardRepo.CountBedsByWardAndStatus(db, ward.ID, entity.BedStatusOccupied)
		if err != nil {
			u.log.Warnf("Failed to count occupied beds for ward %d: %+v", ward.ID, err)
			return nil, err
		}
		available, err := u.wardRepo.CountBedsByWardAndStatus(db, ward.ID, entity.BedStatusAvailable)
		if err != nil {
			u.log.Warnf("Failed to count available beds for ward %d: %+v", ward.ID, err)
			return nil, err
		}

		utilization := dto.WardUtilizationResponse{
			WardID:        ward.ID,
			WardName:      ward.Name,
			Capacity:      ward.Capacity,
			OccupiedBeds:  occupied,
			AvailableBeds: available,
		}
		if total := occupied + available; total > 0 {
			utilization.OccupancyRate = float64(occupied) / float64(total)
		}
		response.Wards = append(response.Wards, utilization)
	}

	return response, nil
}
