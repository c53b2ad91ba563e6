package repository

import (
	"errors"
	"time"

	"hospital-erp/internal/domain/entity"
	domainRepo "hospital-erp/internal/domain/repository"

	"gorm.io/gorm"
)

type serviceCatalogRepository struct{}

func NewServiceCatalogRepository() domainRepo.ServiceCatalogRepository {
	return &serviceCatalogRepository{}
}

func (r *serviceCatalogRepository) CreateService(db *gorm.DB, service *entity.Service) error {
	return db.Create(service).Error
}

func (r *serviceCatalogRepository) FindServiceByID(db *gorm.DB, id uint) (*entity.Service, error) {
	var service entity.Service
	err := db.Preload("PriceVersions").Where("id = ?", id).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceCatalogRepository) FindAllServices(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Order("name ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceCatalogRepository) SaveService(db *gorm.DB, service *entity.Service) error {
	return db.Save(service).Error
}

func (r *serviceCatalogRepository) CreatePriceVersion(db *gorm.DB, version *entity.ServicePriceVersion) error {
	return db.Create(version).Error
}

func (r *serviceCatalogRepository) FindPriceVersionByID(db *gorm.DB, id uint) (*entity.ServicePriceVersion, error) {
	var version entity.ServicePriceVersion
	err := db.Where("id = ?", id).First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &version, nil
}

func (r *serviceCatalogRepository) FindPriceVersionsByService(db *gorm.DB, serviceID uint) ([]entity.ServicePriceVersion, error) {
	var versions []entity.ServicePriceVersion
	err := db.Where("service_id = ?", serviceID).
		Order("effective_date DESC").Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *serviceCatalogRepository) FindOpenVersionsByService(db *gorm.DB, serviceID uint) ([]entity.ServicePriceVersion, error) {
	var versions []entity.ServicePriceVersion
	err := db.Where("service_id = ? AND expiry_date IS NULL", serviceID).
		Find(&versions).Error
	if err != nil {
		return nil, err
	}
	return versions, nil
}

// ExpireOpenVersions closes every open version in one statement, so setting
// a new current price leaves exactly one open version behind.
func (r *serviceCatalogRepository) ExpireOpenVersions(db *gorm.DB, serviceID uint, expiry time.Time) (int64, error) {
	result := db.Model(&entity.ServicePriceVersion{}).
		Where("service_id = ? AND expiry_date IS NULL", serviceID).
		Update("expiry_date", expiry)
	return result.RowsAffected, result.Error
}

func (r *serviceCatalogRepository) CreateOrder(db *gorm.DB, order *entity.ServiceOrder) error {
	return db.Create(order).Error
}

func (r *serviceCatalogRepository) FindOrderByID(db *gorm.DB, id uint) (*entity.ServiceOrder, error) {
	var order entity.ServiceOrder
	err := db.Preload("Items").Where("id = ?", id).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *serviceCatalogRepository) FindAllOrders(db *gorm.DB) ([]entity.ServiceOrder, error) {
	var orders []entity.ServiceOrder
	err := db.Preload("Patient").Preload("Items").
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *serviceCatalogRepository) FindOrdersByPatientID(db *gorm.DB, patientID uint) ([]entity.ServiceOrder, error) {
	var orders []entity.ServiceOrder
	err := db.Preload("Items").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *serviceCatalogRepository) SaveOrder(db *gorm.DB, order *entity.ServiceOrder) error {
	return db.Save(order).Error
}

func (r *serviceCatalogRepository) CreateOrderItem(db *gorm.DB, item *entity.ServiceOrderItem) error {
	return db.Create(item).Error
}

func (r *serviceCatalogRepository) FindOrderItemByID(db *gorm.DB, id uint) (*entity.ServiceOrderItem, error) {
	var item entity.ServiceOrderItem
	err := db.Where("id = ?", id).First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *serviceCatalogRepository) SaveOrderItem(db *gorm.DB, item *entity.ServiceOrderItem) error {
	return db.Save(item).Error
}
