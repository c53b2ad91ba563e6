package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hospital-erp/internal/delivery/dto"
	"hospital-erp/internal/domain/entity"
	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/validator"

	"github.com/gorilla/mux"
)

type labUsecaseStub struct {
	syncErr error
}

func (s *labUsecaseStub) CreateSystem(ctx context.Context, req *dto.CreateLabSystemRequest) (*entity.LabSystem, error) {
	return nil, nil
}

func (s *labUsecaseStub) GetSystem(ctx context.Context, id uint) (*entity.LabSystem, error) {
	return nil, nil
}

func (s *labUsecaseStub) GetSystems(ctx context.Context) ([]entity.LabSystem, error) {
	return nil, nil
}

func (s *labUsecaseStub) UpdateSystem(ctx context.Context, id uint, req *dto.UpdateLabSystemRequest) (*entity.LabSystem, error) {
	return nil, nil
}

func (s *labUsecaseStub) TestConnection(ctx context.Context, id uint) (*dto.LabConnectionResponse, error) {
	return nil, nil
}

func (s *labUsecaseStub) SyncResults(ctx context.Context, id uint) (*dto.LabSyncResponse, error) {
	if s.syncErr != nil {
		return nil, s.syncErr
	}
	return &dto.LabSyncResponse{}, nil
}

func (s *labUsecaseStub) CreateResult(ctx context.Context, req *dto.CreateLabResultRequest) (*entity.LabResult, error) {
	return nil, nil
}

func (s *labUsecaseStub) GetResults(ctx context.Context) ([]entity.LabResult, error) {
	return nil, nil
}

func (s *labUsecaseStub) GetPatientResults(ctx context.Context, patientID uint) ([]entity.LabResult, error) {
	return nil, nil
}

func (s *labUsecaseStub) UpdateResult(ctx context.Context, id uint, req *dto.UpdateLabResultRequest) (*entity.LabResult, error) {
	return nil, nil
}

func syncRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/lab-systems/"+id+"/sync", nil)
	return mux.SetURLVars(req, map[string]string{"id": id})
}

func TestSyncResultsUnreachableLabReturnsBadGateway(t *testing.T) {
	h := NewLabHandler(&labUsecaseStub{syncErr: usecase.ErrLabUnreachable}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.SyncResults(rec, syncRequest("1"))

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
}

func TestSyncResultsUnknownSystemReturnsNotFound(t *testing.T) {
	h := NewLabHandler(&labUsecaseStub{syncErr: usecase.ErrLabSystemNotFound}, validator.NewValidator())

	rec := httptest.NewRecorder()
	h.SyncResults(rec, syncRequest("42"))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
