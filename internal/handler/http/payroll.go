package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/auth"
	"github.com/hrms-labs/hrms-backend-go/internal/domain/payroll"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/middleware"
	"github.com/hrms-labs/hrms-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	Process(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	MarkPaid(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollService}
}

// Process implements PayrollHandler.
func (h *PayrollHandlerImpl) Process(w http.ResponseWriter, r *http.Request) {
	var req payroll.ProcessPayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Process payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.payrollService.ProcessPayroll(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll record created", created)
}

// Get implements PayrollHandler.
func (h *PayrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	record, err := h.payrollService.GetRecord(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.payrollService.ListRecords(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// ListByEmployee implements PayrollHandler.
func (h *PayrollHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeID")
	if employeeID == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	list, err := h.payrollService.ListRecordsByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, list)
}

// Update implements PayrollHandler.
func (h *PayrollHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	var req payroll.UpdatePayrollRecordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.payrollService.UpdateRecord(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, updated)
}

// MarkPaid implements PayrollHandler. The payer is taken from the verified
// access token.
func (h *PayrollHandlerImpl) MarkPaid(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	payerID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	paid, err := h.payrollService.MarkPaid(r.Context(), id, payerID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record marked paid", paid)
}

// Delete implements PayrollHandler.
func (h *PayrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll record ID is required", nil)
		return
	}

	if err := h.payrollService.DeleteRecord(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll record deleted", nil)
}
