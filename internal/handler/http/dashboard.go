package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/employee_dashboard"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	AdminStats(w http.ResponseWriter, r *http.Request)
	EmployeeStats(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService         dashboard.DashboardService
	employeeDashboardService employee_dashboard.EmployeeDashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, employeeDashboardService employee_dashboard.EmployeeDashboardService) DashboardHandler {
	return &DashboardHandlerImpl{
		dashboardService:         dashboardService,
		employeeDashboardService: employeeDashboardService,
	}
}

// AdminStats implements DashboardHandler.
func (h *DashboardHandlerImpl) AdminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.GetAdminStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}

// EmployeeStats implements DashboardHandler.
func (h *DashboardHandlerImpl) EmployeeStats(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	stats, err := h.employeeDashboardService.GetStats(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, stats)
}
