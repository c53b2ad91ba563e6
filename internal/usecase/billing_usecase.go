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

var ErrBillNotFound = errors.New("bill not found")

type BillingUsecase interface {
	CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error)
	GetBill(ctx context.Context, id uint) (*dto.BillResponse, error)
	GetBills(ctx context.Context) (*dto.BillListResponse, error)
	GetPatientBills(ctx context.Context, patientID uint) (*dto.BillListResponse, error)
	GetBillsByStatus(ctx context.Context, status entity.BillStatus) (*dto.BillListResponse, error)
	UpdateBill(ctx context.Context, id uint, req *dto.UpdateBillRequest) (*dto.BillResponse, error)
	RecordPayment(ctx context.Context, id uint, req *dto.RecordPaymentRequest) (*dto.BillResponse, error)
}

type billingUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	billingRepo repository.BillingRepository
	patientRepo repository.PatientRepository
}

func NewBillingUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	billingRepo repository.BillingRepository,
	patientRepo repository.PatientRepository,
) BillingUsecase {
	return &billingUsecase{
		db:          db,
		log:         log,
		billingRepo: billingRepo,
		patientRepo: patientRepo,
	}
}

func (u *billingUsecase) CreateBill(ctx context.Context, req *dto.CreateBillRequest) (*dto.BillResponse, error) {
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

	totalAmount := decimal.Zero
	if req.TotalAmount != "" {
		totalAmount, err = decimal.NewFromString(req.TotalAmount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	paidAmount := decimal.Zero
	if req.PaidAmount != "" {
		paidAmount, err = decimal.NewFromString(req.PaidAmount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
	}

	var dueDate *time.Time
	if req.DueDate != "" {
		parsed, err := time.Parse("2006-01-02", req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		dueDate = &parsed
	}

	bill := &entity.Bill{
		PatientID:     req.PatientID,
		TotalAmount:   totalAmount,
		PaidAmount:    paidAmount,
		PaymentMethod: req.PaymentMethod,
		DueDate:       dueDate,
	}
	bill.RecalculateStatus()

	if err := u.billingRepo.CreateBill(tx, bill); err != nil {
		u.log.Warnf("Failed to create bill: %+v", err)
		return nil, err
	}

	for _, itemReq := range req.Items {
		unitPrice := decimal.Zero
		if itemReq.UnitPrice != "" {
			unitPrice, err = decimal.NewFromString(itemReq.UnitPrice)
			if err != nil {
				return nil, ErrInvalidAmount
			}
		}
		totalPrice := decimal.Zero
		if itemReq.TotalPrice != "" {
			totalPrice, err = decimal.NewFromString(itemReq.TotalPrice)
			if err != nil {
				return nil, ErrInvalidAmount
			}
		}
		quantity := itemReq.Quantity
		if quantity == 0 {
			quantity = 1
		}

		item := &entity.BillItem{
			BillID:      bill.ID,
			Description: itemReq.Description,
			Quantity:    quantity,
			UnitPrice:   unitPrice,
			TotalPrice:  totalPrice,
		}
		if err := u.billingRepo.CreateBillItem(tx, item); err != nil {
			u.log.Warnf("Failed to create bill item: %+v", err)
			return nil, err
		}
		bill.Items = append(bill.Items, *item)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	bill.Patient = *patient
	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetBill(ctx context.Context, id uint) (*dto.BillResponse, error) {
	bill, err := u.billingRepo.FindBillByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find bill %d: %+v", id, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) GetBills(ctx context.Context) (*dto.BillListResponse, error) {
	bills, err := u.billingRepo.FindAllBills(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find bills: %+v", err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

func (u *billingUsecase) GetPatientBills(ctx context.Context, patientID uint) (*dto.BillListResponse, error) {
	bills, err := u.billingRepo.FindBillsByPatientID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find bills for patient %d: %+v", patientID, err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

func (u *billingUsecase) GetBillsByStatus(ctx context.Context, status entity.BillStatus) (*dto.BillListResponse, error) {
	bills, err := u.billingRepo.FindBillsByStatus(u.db.WithContext(ctx), status)
	if err != nil {
		u.log.Warnf("Failed to find bills by status %s: %+v", status, err)
		return nil, err
	}

	return &dto.BillListResponse{
		Bills: converter.BillsToResponses(bills),
		Total: len(bills),
	}, nil
}

// UpdateBill patches amounts and rederives the status. A stripe status of
// "succeeded" settles the bill in full regardless of the recorded amounts.
func (u *billingUsecase) UpdateBill(ctx context.Context, id uint, req *dto.UpdateBillRequest) (*dto.BillResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bill, err := u.billingRepo.FindBillByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill %d: %+v", id, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	if req.TotalAmount != nil {
		totalAmount, err := decimal.NewFromString(*req.TotalAmount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		bill.TotalAmount = totalAmount
	}
	if req.PaidAmount != nil {
		paidAmount, err := decimal.NewFromString(*req.PaidAmount)
		if err != nil {
			return nil, ErrInvalidAmount
		}
		bill.PaidAmount = paidAmount
	}
	if req.PaymentMethod != nil {
		bill.PaymentMethod = *req.PaymentMethod
	}
	if req.StripePaymentStatus != nil {
		bill.StripePaymentStatus = *req.StripePaymentStatus
	}
	if req.DueDate != nil {
		parsed, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		bill.DueDate = &parsed
	}

	bill.RecalculateStatus()
	if bill.StripePaymentStatus == entity.StripeStatusSucceeded {
		bill.Status = entity.BillStatusPaid
		bill.PaidAmount = bill.TotalAmount
	}

	if err := u.billingRepo.SaveBill(tx, bill); err != nil {
		u.log.Warnf("Failed to update bill %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.BillToResponse(bill), nil
}

func (u *billingUsecase) RecordPayment(ctx context.Context, id uint, req *dto.RecordPaymentRequest) (*dto.BillResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	bill, err := u.billingRepo.FindBillByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find bill %d: %+v", id, err)
		return nil, err
	}
	if bill == nil {
		return nil, ErrBillNotFound
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	bill.PaidAmount = bill.PaidAmount.Add(amount)
	if req.PaymentMethod != "" {
		bill.PaymentMethod = req.PaymentMethod
	}
	bill.RecalculateStatus()

	if err := u.billingRepo.SaveBill(tx, bill); err != nil {
		u.log.Warnf("Failed to record payment on bill %d: %+v", id, err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Recorded payment of %s on bill %d, status now %s", amount, id, bill.Status)
	return converter.BillToResponse(bill), nil
}
