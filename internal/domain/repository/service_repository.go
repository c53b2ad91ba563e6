package repository

import (
	"time"

	"hospital-erp/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceCatalogRepository interface {
	CreateService(db *gorm.DB, service *entity.Service) error
	FindServiceByID(db *gorm.DB, id uint) (*entity.Service, error)
	FindAllServices(db *gorm.DB) ([]entity.Service, error)
	SaveService(db *gorm.DB, service *entity.Service) error

	CreatePriceVersion(db *gorm.DB, version *entity.ServicePriceVersion) error
	FindPriceVersionByID(db *gorm.DB, id uint) (*entity.ServicePriceVersion, error)
	FindPriceVersionsByService(db *gorm.DB, serviceID uint) ([]entity.ServicePriceVersion, error)
	FindOpenVersionsByService(db *gorm.DB, serviceID uint) ([]entity.ServicePriceVersion, error)

	// ExpireOpenVersions closes every open price version of a service as of
	// the given date. Returns the number of versions expired.
	ExpireOpenVersions(db *gorm.DB, serviceID uint, expiry time.Time) (int64, error)

	CreateOrder(db *gorm.DB, order *entity.ServiceOrder) error
	FindOrderByID(db *gorm.DB, id uint) (*entity.ServiceOrder, error)
	FindAllOrders(db *gorm.DB) ([]entity.ServiceOrder, error)
	FindOrdersByPatientID(db *gorm.DB, patientID uint) ([]entity.ServiceOrder, error)
	SaveOrder(db *gorm.DB, order *entity.ServiceOrder) error

	CreateOrderItem(db *gorm.DB, item *entity.ServiceOrderItem) error
	FindOrderItemByID(db *gorm.DB, id uint) (*entity.ServiceOrderItem, error)
	SaveOrderItem(db *gorm.DB, item *entity.ServiceOrderItem) error
}
