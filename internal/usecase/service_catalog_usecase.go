package usecase

import (
	"context"
	"errors"
	"time"

	"hospital-erp/internal/converter"
	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrServiceNotFound      = errors.New("service not found")
	ErrServiceOrderNotFound = errors.New("service order not found")
	ErrOrderItemNotFound    = errors.New("service order item not found")
	ErrNoCurrentPrice       = errors.New("service has no current price")
)

type ServiceCatalogUsecase interface {
	CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error)
	GetService(ctx context.Context, id uint) (*dto.ServiceResponse, error)
	GetServices(ctx context.Context) (*dto.ServiceListResponse, error)
	UpdateService(ctx context.Context, id uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error)

	SetCurrentPrice(ctx context.Context, serviceID uint, req *dto.SetPriceRequest) (*dto.PriceVersionResponse, error)
	GetPriceHistory(ctx context.Context, serviceID uint) ([]dto.PriceVersionResponse, error)

	CreateOrder(ctx context.Context, req *dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error)
	GetOrder(ctx context.Context, id uint) (*dto.ServiceOrderResponse, error)
	GetOrders(ctx context.Context) (*dto.ServiceOrderListResponse, error)
	UpdateOrder(ctx context.Context, id uint, req *dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error)
	AddOrderItem(ctx context.Context, orderID uint, req *dto.AddOrderItemRequest) (*dto.ServiceOrderResponse, error)
	UpdateOrderItem(ctx context.Context, orderID, itemID uint, req *dto.UpdateOrderItemRequest) (*dto.ServiceOrderResponse, error)
}

type serviceCatalogUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	catalogRepo repository.ServiceCatalogRepository
	patientRepo repository.PatientRepository
}

func NewServiceCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	catalogRepo repository.ServiceCatalogRepository,
	patientRepo repository.PatientRepository,
) ServiceCatalogUsecase {
	return &serviceCatalogUsecase{
		db:          db,
		log:         log,
		catalogRepo: catalogRepo,
		patientRepo: patientRepo,
	}
}

func (u *serviceCatalogUsecase) CreateService(ctx context.Context, req *dto.CreateServiceRequest) (*dto.ServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	service := &entity.Service{
		Name:                req.Name,
		Category:            req.Category,
		Description:         req.Description,
		Duration:            req.Duration,
		Status:              "active",
		RequiresDoctor:      req.RequiresDoctor,
		RequiresAppointment: req.RequiresAppointment,
		Taxable:             req.Taxable,
	}

	if err := u.catalogRepo.CreateService(tx, service); err != nil {
		u.log.Warnf("Failed to create service: %+v", err)
		return nil, err
	}

	// Optional opening price recorded as the first version
	if req.Price != "" {
		price, err := decimal.NewFromString(req.Price)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		now := time.Now()
		version := &entity.ServicePriceVersion{
			ServiceID:     service.ID,
			Price:         price,
			EffectiveDate: now,
			Year:          now.Year(),
		}
		if err := u.catalogRepo.CreatePriceVersion(tx, version); err != nil {
			u.log.Warnf("Failed to create opening price version: %+v", err)
			return nil, err
		}
		service.PriceVersions = append(service.PriceVersions, *version)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceCatalogUsecase) GetService(ctx context.Context, id uint) (*dto.ServiceResponse, error) {
	service, err := u.catalogRepo.FindServiceByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	return converter.ServiceToResponse(service), nil
}

func (u *serviceCatalogUsecase) GetServices(ctx context.Context) (*dto.ServiceListResponse, error) {
	services, err := u.catalogRepo.FindAllServices(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find services: %+v", err)
		return nil, err
	}

	return &dto.ServiceListResponse{
		Services: converter.ServicesToResponses(services),
		Total:    len(services),
	}, nil
}

func (u *serviceCatalogUsecase) UpdateService(ctx context.Context, id uint, req *dto.UpdateServiceRequest) (*dto.ServiceResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	service, err := u.catalogRepo.FindServiceByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", id, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	if req.Name != nil {
		service.Name = *req.Name
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Duration != nil {
		service.Duration = *req.Duration
	}
	if req.Status != nil {
		service.Status = *req.Status
	}
	if req.RequiresDoctor != nil {
		service.RequiresDoctor = *req.RequiresDoctor
	}
	if req.RequiresAppointment != nil {
		service.RequiresAppointment = *req.RequiresAppointment
	}
	if req.Taxable != nil {
		service.Taxable = *req.Taxable
	}

	if err := u.catalogRepo.SaveService(tx, service); err != nil {
		u.log.Warnf("Failed to update service %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceToResponse(service), nil
}

// SetCurrentPrice closes every open price version of the service, dating the
// expiry to yesterday, and opens a new current version. Running both steps in
// one transaction keeps the one-open-version invariant.
func (u *serviceCatalogUsecase) SetCurrentPrice(ctx context.Context, serviceID uint, req *dto.SetPriceRequest) (*dto.PriceVersionResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	service, err := u.catalogRepo.FindServiceByID(tx, serviceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", serviceID, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	price, err := decimal.NewFromString(req.Price)
	if err != nil {
		return nil, ErrInvalidAmount
	}

	effectiveDate := time.Now()
	if req.EffectiveDate != "" {
		effectiveDate, err = time.Parse("2006-01-02", req.EffectiveDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
	}

	expiry := time.Now().AddDate(0, 0, -1)
	if _, err := u.catalogRepo.ExpireOpenVersions(tx, serviceID, expiry); err != nil {
		u.log.Warnf("Failed to expire open price versions for service %d: %+v", serviceID, err)
		return nil, err
	}

	version := &entity.ServicePriceVersion{
		ServiceID:     serviceID,
		Price:         price,
		EffectiveDate: effectiveDate,
		Year:          effectiveDate.Year(),
	}
	if err := u.catalogRepo.CreatePriceVersion(tx, version); err != nil {
		u.log.Warnf("Failed to create price version: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Set price of service %d to %s", serviceID, price)
	return converter.PriceVersionToResponse(version), nil
}

func (u *serviceCatalogUsecase) GetPriceHistory(ctx context.Context, serviceID uint) ([]dto.PriceVersionResponse, error) {
	versions, err := u.catalogRepo.FindPriceVersionsByService(u.db.WithContext(ctx), serviceID)
	if err != nil {
		u.log.Warnf("Failed to find price versions for service %d: %+v", serviceID, err)
		return nil, err
	}

	return converter.PriceVersionsToResponses(versions), nil
}

func (u *serviceCatalogUsecase) CreateOrder(ctx context.Context, req *dto.CreateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
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

	order := &entity.ServiceOrder{
		PatientID:   req.PatientID,
		DoctorID:    req.DoctorID,
		Status:      entity.ServiceOrderStatusPending,
		TotalAmount: decimal.Zero,
		Notes:       req.Notes,
	}

	if err := u.catalogRepo.CreateOrder(tx, order); err != nil {
		u.log.Warnf("Failed to create service order: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceOrderToResponse(order), nil
}

func (u *serviceCatalogUsecase) GetOrder(ctx context.Context, id uint) (*dto.ServiceOrderResponse, error) {
	order, err := u.catalogRepo.FindOrderByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find service order %d: %+v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}

	return converter.ServiceOrderToResponse(order), nil
}

func (u *serviceCatalogUsecase) GetOrders(ctx context.Context) (*dto.ServiceOrderListResponse, error) {
	orders, err := u.catalogRepo.FindAllOrders(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find service orders: %+v", err)
		return nil, err
	}

	return &dto.ServiceOrderListResponse{
		Orders: converter.ServiceOrdersToResponses(orders),
		Total:  len(orders),
	}, nil
}

func (u *serviceCatalogUsecase) UpdateOrder(ctx context.Context, id uint, req *dto.UpdateServiceOrderRequest) (*dto.ServiceOrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.catalogRepo.FindOrderByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find service order %d: %+v", id, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}

	if req.Status != nil {
		order.Status = entity.ServiceOrderStatus(*req.Status)
	}
	if req.BillID != nil {
		order.BillID = req.BillID
	}
	if req.Notes != nil {
		order.Notes = *req.Notes
	}

	if err := u.catalogRepo.SaveOrder(tx, order); err != nil {
		u.log.Warnf("Failed to update service order %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.ServiceOrderToResponse(order), nil
}

// AddOrderItem prices the line from the service's current price version and
// bumps the order total by the line total.
func (u *serviceCatalogUsecase) AddOrderItem(ctx context.Context, orderID uint, req *dto.AddOrderItemRequest) (*dto.ServiceOrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.catalogRepo.FindOrderByID(tx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find service order %d: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}

	service, err := u.catalogRepo.FindServiceByID(tx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find service %d: %+v", req.ServiceID, err)
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	openVersions, err := u.catalogRepo.FindOpenVersionsByService(tx, req.ServiceID)
	if err != nil {
		u.log.Warnf("Failed to find open price versions for service %d: %+v", req.ServiceID, err)
		return nil, err
	}
	if len(openVersions) == 0 {
		return nil, ErrNoCurrentPrice
	}
	current := openVersions[0]

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	lineTotal := current.Price.Mul(decimal.NewFromInt(int64(quantity)))

	item := &entity.ServiceOrderItem{
		ServiceOrderID:        orderID,
		ServiceID:             req.ServiceID,
		ServicePriceVersionID: current.ID,
		Quantity:              quantity,
		UnitPrice:             current.Price,
		TotalPrice:            lineTotal,
		Status:                "pending",
	}
	if err := u.catalogRepo.CreateOrderItem(tx, item); err != nil {
		u.log.Warnf("Failed to create order item: %+v", err)
		return nil, err
	}

	order.TotalAmount = order.TotalAmount.Add(lineTotal)
	if err := u.catalogRepo.SaveOrder(tx, order); err != nil {
		u.log.Warnf("Failed to update order total: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	order.Items = append(order.Items, *item)
	return converter.ServiceOrderToResponse(order), nil
}

// UpdateOrderItem adjusts a line and applies the delta between old and new
// line totals to the order total.
func (u *serviceCatalogUsecase) UpdateOrderItem(ctx context.Context, orderID, itemID uint, req *dto.UpdateOrderItemRequest) (*dto.ServiceOrderResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	order, err := u.catalogRepo.FindOrderByID(tx, orderID)
	if err != nil {
		u.log.Warnf("Failed to find service order %d: %+v", orderID, err)
		return nil, err
	}
	if order == nil {
		return nil, ErrServiceOrderNotFound
	}

	item, err := u.catalogRepo.FindOrderItemByID(tx, itemID)
	if err != nil {
		u.log.Warnf("Failed to find order item %d: %+v", itemID, err)
		return nil, err
	}
	if item == nil || item.ServiceOrderID != orderID {
		return nil, ErrOrderItemNotFound
	}

	oldTotal := item.TotalPrice

	if req.Quantity != nil {
		item.Quantity = *req.Quantity
		item.TotalPrice = item.UnitPrice.Mul(decimal.NewFromInt(int64(*req.Quantity)))
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	if err := u.catalogRepo.SaveOrderItem(tx, item); err != nil {
		u.log.Warnf("Failed to update order item %d: %+v", itemID, err)
		return nil, err
	}

	delta := item.TotalPrice.Sub(oldTotal)
	if !delta.IsZero() {
		order.TotalAmount = order.TotalAmount.Add(delta)
		if err := u.catalogRepo.SaveOrder(tx, order); err != nil {
			u.log.Warnf("Failed to update order total: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	for i := range order.Items {
		if order.Items[i].ID == item.ID {
			order.Items[i] = *item
			break
		}
	}
	return converter.ServiceOrderToResponse(order), nil
}
