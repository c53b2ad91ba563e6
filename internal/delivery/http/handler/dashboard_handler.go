package handler

import (
	"net/http"

	"hospital-erp/internal/usecase"
	"hospital-erp/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
	}
}

func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get dashboard stats")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

func (h *DashboardHandler) GetResourceUtilization(w http.ResponseWriter, r *http.Request) {
	utilization, err := h.dashboardUsecase.GetResourceUtilization(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to get resource utilization")
		return
	}

	response.Success(w, http.StatusOK, "Resource utilization retrieved successfully", utilization)
}
